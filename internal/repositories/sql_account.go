package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

type AccountRepository interface {
	// Upsert replays a provider account snapshot; the conflict key is
	// (institutionConnectionId, providerAccountId).
	Upsert(ctx context.Context, in models.AccountUpsert) (id int, err error)
	GetList(ctx context.Context, opts models.AccountFilterOptions) (result []models.Account, err error)
	CountAll(ctx context.Context, opts models.AccountFilterOptions) (total int, err error)
	GetOneByID(ctx context.Context, id int) (result models.Account, err error)
	DeleteByProviderConnection(ctx context.Context, providerConnectionID int) (err error)

	// DeleteStale removes accounts under an institution connection that the
	// provider stopped reporting, dependent transactions first.
	DeleteStale(ctx context.Context, institutionConnectionID int, keep []string) (removed int, err error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (ar *accountRepository) Upsert(ctx context.Context, in models.AccountUpsert) (id int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(in)
	if err != nil {
		return
	}

	err = db.QueryRowContext(ctx, queryAccountUpsert, args...).Scan(&id)
	return
}

func scanAccount(rows interface{ Scan(...interface{}) error }, account *models.Account) error {
	return rows.Scan(
		&account.ID,
		&account.InstitutionConnectionID,
		&account.ProviderAccountID,
		&account.Name,
		&account.Type,
		&account.Subtype,
		&account.Currency,
		&account.Value,
		&account.CostBasis,
		&account.Metadata,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
}

func (ar *accountRepository) GetList(ctx context.Context, opts models.AccountFilterOptions) (result []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	query, args, err := buildListAccountQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var account models.Account
		if err = scanAccount(rows, &account); err != nil {
			return
		}
		result = append(result, account)
	}

	err = rows.Err()
	return
}

func (ar *accountRepository) CountAll(ctx context.Context, opts models.AccountFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	query, args, err := buildCountAccountQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	return
}

func (ar *accountRepository) GetOneByID(ctx context.Context, id int) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	err = scanAccount(db.QueryRowContext(ctx, queryAccountGetOneByID, id), &result)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}

func (ar *accountRepository) DeleteStale(ctx context.Context, institutionConnectionID int, keep []string) (removed int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryAccountStaleTransactionsDelete, institutionConnectionID, pq.Array(keep))
	if err != nil {
		return
	}

	res, err := db.ExecContext(ctx, queryAccountDeleteStale, institutionConnectionID, pq.Array(keep))
	if err != nil {
		return
	}

	affected, err := res.RowsAffected()
	removed = int(affected)
	return
}

func (ar *accountRepository) DeleteByProviderConnection(ctx context.Context, providerConnectionID int) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryAccountDeleteByProviderConnection, providerConnectionID)
	return
}
