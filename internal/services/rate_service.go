package services

import (
	"context"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/cache"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"

	"github.com/shopspring/decimal"
)

const rateCacheKey = "rates:latest"

type RateService interface {
	// Refresh pulls today's table from the rate source and upserts it,
	// recording the run in the sync ledger.
	Refresh(ctx context.Context) (run models.SyncRun, err error)
	// GetTable returns the latest stored table. Rates are served even when
	// a refresh has failed for days; staleness shows in the Date field.
	GetTable(ctx context.Context) (table models.RateTable, err error)
	// Convert moves amount between currencies through the base:
	// amount / rate[from] * rate[to].
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (result decimal.Decimal, err error)
}

type rate service

var _ RateService = (*rate)(nil)

func (rs *rate) Refresh(ctx context.Context) (run models.SyncRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	base := rs.srv.conf.Rates.BaseCurrency
	runRepo := rs.srv.sqlRepo.GetSyncRunRepository()

	run, err = newSyncRun(ctx, runRepo, models.SyncRunRates, 0)
	if err != nil {
		return
	}

	finish := func(status models.SyncRunStatus, runErr error) {
		if ferr := finishRun(ctx, runRepo, &run, status, runErr); ferr != nil {
			err = ferr
		}
		if rs.srv.metrics != nil {
			rs.srv.metrics.GetSyncPrometheus().Record(
				rs.srv.rateSource.Name(), string(models.SyncRunRates), string(status),
				run.RecordsUpserted, run.RecordsSkipped, run.FinishedAt.Sub(run.StartedAt),
			)
		}
	}

	if err = advanceRun(ctx, runRepo, &run, models.SyncRunFetching); err != nil {
		finish(models.SyncRunFailed, err)
		return
	}

	var rates map[string]decimal.Decimal
	err = rs.srv.retryer.Do(ctx, func() error {
		var fetchErr error
		rates, fetchErr = rs.srv.rateSource.Latest(ctx, base)
		return fetchErr
	})
	if err != nil {
		finish(models.SyncRunFailed, err)
		err = checkProviderError(err)
		return
	}

	if err = advanceRun(ctx, runRepo, &run, models.SyncRunTransforming); err != nil {
		finish(models.SyncRunFailed, err)
		return
	}
	if err = advanceRun(ctx, runRepo, &run, models.SyncRunUpserting); err != nil {
		finish(models.SyncRunFailed, err)
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	rateRepo := rs.srv.sqlRepo.GetRateRepository()
	for code, value := range rates {
		normalized, normErr := common.NormalizeCurrency(code)
		if normErr != nil {
			run.RecordsSkipped++
			continue
		}

		if seedErr := rateRepo.SeedCurrency(ctx, normalized); seedErr != nil {
			finish(models.SyncRunFailed, seedErr)
			err = seedErr
			return
		}

		if upErr := rateRepo.Upsert(ctx, models.RateUpsert{
			CurrencyCode: normalized,
			Rate:         value,
			Date:         today,
		}); upErr != nil {
			finish(models.SyncRunFailed, upErr)
			err = upErr
			return
		}
		run.RecordsUpserted++
	}

	// drop the cached table so readers see the fresh rates immediately
	if rs.srv.rateCache != nil {
		_ = rs.srv.rateCache.Delete(ctx, rateCacheKey)
	}

	finish(models.SyncRunDone, nil)
	return
}

func (rs *rate) GetTable(ctx context.Context) (table models.RateTable, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	load := func() (models.RateTable, error) {
		rates, loadErr := rs.srv.sqlRepo.GetRateRepository().GetLatest(ctx)
		if loadErr != nil {
			return models.RateTable{}, loadErr
		}
		if len(rates) == 0 {
			return models.RateTable{}, models.GetErrMap(models.ErrKeyRateNotFound)
		}

		t := models.RateTable{
			Base:  rs.srv.conf.Rates.BaseCurrency,
			Rates: make(map[string]decimal.Decimal, len(rates)),
		}
		for _, r := range rates {
			t.Rates[r.CurrencyCode] = r.Rate
			if r.Date.After(t.Date) {
				t.Date = r.Date
			}
		}
		return t, nil
	}

	if rs.srv.rateCache == nil {
		return load()
	}

	table, err = rs.srv.rateCache.GetOrSet(ctx, cache.GetOrSetOpts[models.RateTable]{
		Key:      rateCacheKey,
		TTL:      rs.srv.conf.Rates.CacheTTL,
		Callback: load,
	})
	return
}

func (rs *rate) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (result decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if from, err = common.NormalizeCurrency(from); err != nil {
		return
	}
	if to, err = common.NormalizeCurrency(to); err != nil {
		return
	}
	if from == to {
		result = amount
		return
	}

	table, err := rs.GetTable(ctx)
	if err != nil {
		return
	}

	rateFor := func(code string) (decimal.Decimal, error) {
		if code == table.Base {
			return decimal.NewFromInt(1), nil
		}
		r, ok := table.Rates[code]
		if !ok || r.IsZero() {
			return decimal.Decimal{}, models.GetErrMap(models.ErrKeyRateNotFound, code)
		}
		return r, nil
	}

	rateFrom, err := rateFor(from)
	if err != nil {
		return
	}
	rateTo, err := rateFor(to)
	if err != nil {
		return
	}

	result = amount.Div(rateFrom).Mul(rateTo)
	return
}
