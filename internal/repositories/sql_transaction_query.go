package repositories

import (
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	sq "github.com/Masterminds/squirrel"
)

var (
	queryTransactionUpsert = `
		INSERT INTO transaction(
			"accountId", "providerTransactionId", "amount", "currency", "date",
			"category", "description", "pending", "createdAt"
		)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT ("accountId", "providerTransactionId") DO UPDATE SET
			"amount" = EXCLUDED."amount",
			"currency" = EXCLUDED."currency",
			"date" = EXCLUDED."date",
			"category" = EXCLUDED."category",
			"description" = EXCLUDED."description",
			"pending" = EXCLUDED."pending";
	`

	queryTransactionDeleteByProviderConnection = `
		DELETE FROM transaction
		WHERE "accountId" IN (
			SELECT a."id" FROM account a
			JOIN institution_connection ic ON ic."id" = a."institutionConnectionId"
			WHERE ic."providerConnectionId" = $1
		);
	`
)

func transactionFilterConditions(builder sq.SelectBuilder, opts models.TransactionFilterOptions) sq.SelectBuilder {
	if opts.UserID != "" {
		builder = builder.
			Join(`account a ON a."id" = t."accountId"`).
			Join(`institution_connection ic ON ic."id" = a."institutionConnectionId"`).
			Join(`provider_connection pc ON pc."id" = ic."providerConnectionId"`).
			Where(sq.Eq{`pc."userId"`: opts.UserID})
	}
	if opts.AccountID != 0 {
		builder = builder.Where(sq.Eq{`t."accountId"`: opts.AccountID})
	}
	if opts.Category != "" {
		builder = builder.Where(sq.Eq{`t."category"`: opts.Category})
	}
	if !opts.DateFrom.IsZero() {
		builder = builder.Where(sq.GtOrEq{`t."date"`: opts.DateFrom})
	}
	if !opts.DateTo.IsZero() {
		builder = builder.Where(sq.LtOrEq{`t."date"`: opts.DateTo})
	}
	return builder
}

func buildListTransactionQuery(opts models.TransactionFilterOptions) (string, []interface{}, error) {
	builder := sq.Select(
		`t."id"`, `t."accountId"`, `t."providerTransactionId"`, `t."amount"`, `t."currency"`,
		`t."date"`, `t."category"`, `t."description"`, `t."pending"`, `t."createdAt"`,
	).From("transaction t").PlaceholderFormat(sq.Dollar)

	builder = transactionFilterConditions(builder, opts)
	builder = builder.OrderBy(`t."date" DESC`, `t."id" DESC`)

	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}

func buildCountTransactionQuery(opts models.TransactionFilterOptions) (string, []interface{}, error) {
	builder := sq.Select("COUNT(1)").From("transaction t").PlaceholderFormat(sq.Dollar)
	builder = transactionFilterConditions(builder, opts)
	return builder.ToSql()
}
