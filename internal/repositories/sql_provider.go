package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

// ProviderRepository persists the provider reference rows. Rows are seeded
// on startup from the adapter registry and never deleted.
type ProviderRepository interface {
	Seed(ctx context.Context, name string) (err error)
	GetAll(ctx context.Context) (result []models.Provider, err error)
	GetOneByID(ctx context.Context, id int) (result models.Provider, err error)
	GetOneByName(ctx context.Context, name string) (result models.Provider, err error)
}

type providerRepository sqlRepo

var _ ProviderRepository = (*providerRepository)(nil)

func (pr *providerRepository) Seed(ctx context.Context, name string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := pr.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryProviderSeed, name)
	return
}

func (pr *providerRepository) GetAll(ctx context.Context) (result []models.Provider, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := pr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryProviderGetAll)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var provider models.Provider
		if err = rows.Scan(&provider.ID, &provider.Name, &provider.CreatedAt); err != nil {
			return
		}
		result = append(result, provider)
	}

	err = rows.Err()
	return
}

func (pr *providerRepository) GetOneByID(ctx context.Context, id int) (result models.Provider, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := pr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryProviderGetOneByID, id).
		Scan(&result.ID, &result.Name, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}

func (pr *providerRepository) GetOneByName(ctx context.Context, name string) (result models.Provider, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := pr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryProviderGetOneByName, name).
		Scan(&result.ID, &result.Name, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}
