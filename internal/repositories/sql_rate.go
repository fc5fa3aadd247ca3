package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

type RateRepository interface {
	// SeedCurrency keeps the currency reference table in step with the
	// codes the rate source reports.
	SeedCurrency(ctx context.Context, code string) (err error)
	// Upsert writes one currency's rate for a date. A refresh on the same
	// date updates in place; a new date inserts, keeping history intact.
	Upsert(ctx context.Context, in models.RateUpsert) (err error)
	// GetLatest returns the most recent rate per currency.
	GetLatest(ctx context.Context) (result []models.Rate, err error)
	GetLatestDate(ctx context.Context) (date time.Time, err error)
}

type rateRepository sqlRepo

var _ RateRepository = (*rateRepository)(nil)

func (rr *rateRepository) SeedCurrency(ctx context.Context, code string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryCurrencySeed, code)
	return
}

func (rr *rateRepository) Upsert(ctx context.Context, in models.RateUpsert) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(in)
	if err != nil {
		return
	}

	res, err := db.ExecContext(ctx, queryRateUpsert, args...)
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

func (rr *rateRepository) GetLatest(ctx context.Context) (result []models.Rate, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryRateGetLatest)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var rate models.Rate
		err = rows.Scan(&rate.ID, &rate.CurrencyCode, &rate.Rate, &rate.Date, &rate.CreatedAt)
		if err != nil {
			return
		}
		result = append(result, rate)
	}

	err = rows.Err()
	return
}

func (rr *rateRepository) GetLatestDate(ctx context.Context) (date time.Time, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryRateGetLatestDate).Scan(&date)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}
