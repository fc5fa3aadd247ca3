package repositories

import (
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	sq "github.com/Masterminds/squirrel"
)

var (
	queryAccountUpsert = `
		INSERT INTO account(
			"institutionConnectionId", "providerAccountId", "name", "type", "subtype",
			"currency", "value", "costBasis", "metadata", "createdAt", "updatedAt"
		)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT ("institutionConnectionId", "providerAccountId") DO UPDATE SET
			"name" = EXCLUDED."name",
			"type" = EXCLUDED."type",
			"subtype" = EXCLUDED."subtype",
			"currency" = EXCLUDED."currency",
			"value" = EXCLUDED."value",
			"costBasis" = EXCLUDED."costBasis",
			"metadata" = EXCLUDED."metadata",
			"updatedAt" = now()
		RETURNING "id";
	`

	queryAccountGetOneByID = `
		SELECT "id", "institutionConnectionId", "providerAccountId", "name", "type", "subtype",
			"currency", "value", "costBasis", "metadata", "createdAt", "updatedAt"
		FROM account
		WHERE "id" = $1;
	`

	queryAccountDeleteByProviderConnection = `
		DELETE FROM account
		WHERE "institutionConnectionId" IN (
			SELECT "id" FROM institution_connection WHERE "providerConnectionId" = $1
		);
	`

	queryAccountStaleTransactionsDelete = `
		DELETE FROM transaction
		WHERE "accountId" IN (
			SELECT "id" FROM account
			WHERE "institutionConnectionId" = $1
				AND NOT ("providerAccountId" = ANY($2))
		);
	`

	queryAccountDeleteStale = `
		DELETE FROM account
		WHERE "institutionConnectionId" = $1
			AND NOT ("providerAccountId" = ANY($2));
	`
)

func accountFilterConditions(builder sq.SelectBuilder, opts models.AccountFilterOptions) sq.SelectBuilder {
	if opts.UserID != "" {
		builder = builder.
			Join(`institution_connection ic ON ic."id" = a."institutionConnectionId"`).
			Join(`provider_connection pc ON pc."id" = ic."providerConnectionId"`).
			Where(sq.Eq{`pc."userId"`: opts.UserID})
	}
	if opts.InstitutionConnectionID != 0 {
		builder = builder.Where(sq.Eq{`a."institutionConnectionId"`: opts.InstitutionConnectionID})
	}
	if opts.Type != "" {
		builder = builder.Where(sq.Eq{`a."type"`: opts.Type})
	}
	return builder
}

func buildListAccountQuery(opts models.AccountFilterOptions) (string, []interface{}, error) {
	builder := sq.Select(
		`a."id"`, `a."institutionConnectionId"`, `a."providerAccountId"`, `a."name"`, `a."type"`, `a."subtype"`,
		`a."currency"`, `a."value"`, `a."costBasis"`, `a."metadata"`, `a."createdAt"`, `a."updatedAt"`,
	).From("account a").PlaceholderFormat(sq.Dollar)

	builder = accountFilterConditions(builder, opts)
	builder = builder.OrderBy(`a."id" ASC`)

	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}

func buildCountAccountQuery(opts models.AccountFilterOptions) (string, []interface{}, error) {
	builder := sq.Select("COUNT(1)").From("account a").PlaceholderFormat(sq.Dollar)
	builder = accountFilterConditions(builder, opts)
	return builder.ToSql()
}
