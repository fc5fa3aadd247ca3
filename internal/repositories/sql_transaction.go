package repositories

import (
	"context"
	"fmt"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

type TransactionRepository interface {
	// Upsert replays a provider transaction; the conflict key is
	// (accountId, providerTransactionId) so provider-side corrections
	// update in place instead of duplicating.
	Upsert(ctx context.Context, in models.TransactionUpsert) (err error)
	GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error)
	CountAll(ctx context.Context, opts models.TransactionFilterOptions) (total int, err error)
	DeleteByProviderConnection(ctx context.Context, providerConnectionID int) (err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func (tr *transactionRepository) Upsert(ctx context.Context, in models.TransactionUpsert) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(in)
	if err != nil {
		return
	}

	res, err := db.ExecContext(ctx, queryTransactionUpsert, args...)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func (tr *transactionRepository) GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxRead(ctx)

	query, args, err := buildListTransactionQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var tx models.Transaction
		err = rows.Scan(
			&tx.ID,
			&tx.AccountID,
			&tx.ProviderTransactionID,
			&tx.Amount,
			&tx.Currency,
			&tx.Date,
			&tx.Category,
			&tx.Description,
			&tx.Pending,
			&tx.CreatedAt,
		)
		if err != nil {
			return
		}
		result = append(result, tx)
	}

	err = rows.Err()
	return
}

func (tr *transactionRepository) CountAll(ctx context.Context, opts models.TransactionFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxRead(ctx)

	query, args, err := buildCountTransactionQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	return
}

func (tr *transactionRepository) DeleteByProviderConnection(ctx context.Context, providerConnectionID int) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryTransactionDeleteByProviderConnection, providerConnectionID)
	return
}
