package services

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/nature"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/repositories"
	xlog "bitbucket.org/Amartha/go-x/log"
)

// SyncService is the orchestrator: one run per provider per kind, walked
// through the run state machine. A provider failing marks its own run
// failed and never rolls back or blocks the others.
type SyncService interface {
	SyncInstitutions(ctx context.Context) (report models.SyncReport, err error)
	SyncAccounts(ctx context.Context) (report models.SyncReport, err error)
	// SyncConnection refreshes accounts and transactions for one provider
	// connection, for on-demand refreshes from the dashboard.
	SyncConnection(ctx context.Context, providerConnectionID int) (run models.SyncRun, err error)
	GetRuns(ctx context.Context, kind models.SyncRunKind, limit int) (runs []models.SyncRun, err error)
}

type sync service

var _ SyncService = (*sync)(nil)

func (ss *sync) SyncInstitutions(ctx context.Context) (report models.SyncReport, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	for _, name := range ss.srv.registry.Names() {
		adapter, regErr := ss.srv.registry.Get(name)
		if regErr != nil {
			err = regErr
			return
		}

		run, runErr := ss.syncProviderInstitutions(ctx, adapter)
		if runErr != nil && run.ID == "" {
			// ledger bookkeeping failed, nothing recorded to report
			err = runErr
			return
		}

		report.Runs = append(report.Runs, run)

		if runErr != nil && ss.srv.conf.Sync.StopOnProviderError {
			return
		}
	}
	return
}

func (ss *sync) syncProviderInstitutions(ctx context.Context, adapter providers.Adapter) (run models.SyncRun, err error) {
	provider, err := ss.srv.sqlRepo.GetProviderRepository().GetOneByName(ctx, adapter.Name())
	if err != nil {
		return
	}

	runRepo := ss.srv.sqlRepo.GetSyncRunRepository()

	run, err = newSyncRun(ctx, runRepo, models.SyncRunInstitutions, provider.ID)
	if err != nil {
		return
	}

	defer ss.record(adapter.Name(), &run)

	if err = advanceRun(ctx, runRepo, &run, models.SyncRunFetching); err != nil {
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	var fetched []providers.Institution
	err = ss.srv.retryer.Do(ctx, func() error {
		var fetchErr error
		fetched, fetchErr = adapter.GetInstitutions(ctx)
		if providers.IsAuthError(fetchErr) {
			return ss.srv.retryer.StopRetryWithErr(fetchErr)
		}
		return fetchErr
	})
	if err != nil {
		xlog.Warn(ctx, "[SYNC.INSTITUTIONS.FETCH_FAILED]", xlog.String("provider", adapter.Name()), xlog.Err(err))
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	if err = advanceRun(ctx, runRepo, &run, models.SyncRunTransforming); err != nil {
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	upserts := make([]models.InstitutionUpsert, 0, len(fetched))
	for _, inst := range fetched {
		upserts = append(upserts, models.InstitutionUpsert{
			ProviderID:            provider.ID,
			ProviderInstitutionID: inst.ProviderInstitutionID,
			Name:                  inst.Name,
			LogoURL:               inst.LogoURL,
			Country:               inst.Country,
			Enabled:               inst.Enabled,
			Demo:                  inst.Demo,
		})
	}

	if err = advanceRun(ctx, runRepo, &run, models.SyncRunUpserting); err != nil {
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	err = ss.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		for _, upsert := range upserts {
			if upErr := r.GetInstitutionRepository().Upsert(ctx, upsert); upErr != nil {
				return upErr
			}
			run.RecordsUpserted++
		}
		return nil
	})
	if err != nil {
		run.RecordsUpserted = 0
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	err = finishRun(ctx, runRepo, &run, models.SyncRunDone, nil)
	return
}

func (ss *sync) SyncAccounts(ctx context.Context) (report models.SyncReport, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	for _, name := range ss.srv.registry.Names() {
		adapter, regErr := ss.srv.registry.Get(name)
		if regErr != nil {
			err = regErr
			return
		}

		run, runErr := ss.syncProviderAccounts(ctx, adapter)
		if runErr != nil && run.ID == "" {
			err = runErr
			return
		}

		report.Runs = append(report.Runs, run)

		if runErr != nil && ss.srv.conf.Sync.StopOnProviderError {
			return
		}
	}
	return
}

// fetchedAccounts is one sync target's upstream snapshot, transactions
// keyed by provider account id.
type fetchedAccounts struct {
	target       models.SyncTarget
	accounts     []providers.Account
	transactions map[string][]providers.Transaction
}

func (ss *sync) syncProviderAccounts(ctx context.Context, adapter providers.Adapter) (run models.SyncRun, err error) {
	provider, err := ss.srv.sqlRepo.GetProviderRepository().GetOneByName(ctx, adapter.Name())
	if err != nil {
		return
	}

	run, err = ss.runAccountSync(ctx, adapter, provider.ID, func(ctx context.Context) ([]models.SyncTarget, error) {
		return ss.srv.sqlRepo.GetConnectionRepository().GetSyncTargets(ctx, provider.ID)
	})
	return
}

func (ss *sync) SyncConnection(ctx context.Context, providerConnectionID int) (run models.SyncRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	conn, err := ss.srv.sqlRepo.GetConnectionRepository().GetProviderConnectionByID(ctx, providerConnectionID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyConnectionNotFound)
		return
	}

	provider, err := ss.srv.sqlRepo.GetProviderRepository().GetOneByID(ctx, conn.ProviderID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyProviderNotFound)
		return
	}

	adapter, err := ss.srv.registry.Get(provider.Name)
	if err != nil {
		err = models.GetErrMap(models.ErrKeyUnknownProvider, provider.Name)
		return
	}

	run, err = ss.runAccountSync(ctx, adapter, provider.ID, func(ctx context.Context) ([]models.SyncTarget, error) {
		return ss.srv.sqlRepo.GetConnectionRepository().GetSyncTargetsByConnection(ctx, conn.ID)
	})
	return
}

func (ss *sync) runAccountSync(ctx context.Context, adapter providers.Adapter, providerID int, loadTargets func(ctx context.Context) ([]models.SyncTarget, error)) (run models.SyncRun, err error) {
	runRepo := ss.srv.sqlRepo.GetSyncRunRepository()

	run, err = newSyncRun(ctx, runRepo, models.SyncRunAccounts, providerID)
	if err != nil {
		return
	}

	defer ss.record(adapter.Name(), &run)

	targets, err := loadTargets(ctx)
	if err != nil {
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	if err = advanceRun(ctx, runRepo, &run, models.SyncRunFetching); err != nil {
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	windowDays := ss.srv.conf.Sync.TransactionWindowDays
	if windowDays <= 0 {
		windowDays = 90
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays)

	snapshots := make([]fetchedAccounts, 0, len(targets))
	for _, target := range targets {
		snapshot, fetchErr := ss.fetchTarget(ctx, adapter, target, since)
		if fetchErr != nil {
			xlog.Warn(ctx, "[SYNC.ACCOUNTS.FETCH_FAILED]",
				xlog.String("provider", adapter.Name()),
				xlog.String("externalId", target.ExternalID),
				xlog.Err(fetchErr),
			)
			err = fetchErr
			err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
			return
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = advanceRun(ctx, runRepo, &run, models.SyncRunTransforming); err != nil {
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	type upsertUnit struct {
		account      models.AccountUpsert
		transactions []providers.Transaction
	}
	var units []upsertUnit

	for _, snapshot := range snapshots {
		for _, acc := range snapshot.accounts {
			class, mapErr := nature.Map(acc.Nature)
			if mapErr != nil {
				// one unmapped record never fails the batch; it is skipped
				// and counted so the gap shows up in the run ledger
				xlog.Warn(ctx, "[SYNC.ACCOUNTS.UNMAPPED_NATURE]",
					xlog.String("provider", adapter.Name()),
					xlog.String("nature", acc.Nature),
					xlog.String("providerAccountId", acc.ProviderAccountID),
				)
				run.RecordsSkipped++
				continue
			}

			currency, curErr := common.NormalizeCurrency(acc.Currency)
			if curErr != nil {
				xlog.Warn(ctx, "[SYNC.ACCOUNTS.INVALID_CURRENCY]",
					xlog.String("provider", adapter.Name()),
					xlog.String("currency", acc.Currency),
				)
				run.RecordsSkipped++
				continue
			}

			units = append(units, upsertUnit{
				account: models.AccountUpsert{
					InstitutionConnectionID: snapshot.target.InstitutionConnectionID,
					ProviderAccountID:       acc.ProviderAccountID,
					Name:                    acc.Name,
					Type:                    class.Type,
					Subtype:                 class.Subtype,
					Currency:                currency,
					Value:                   acc.Value,
					CostBasis:               acc.CostBasis,
					Metadata:                models.AccountMetadata(acc.Extra),
				},
				transactions: snapshot.transactions[acc.ProviderAccountID],
			})
		}
	}

	if err = advanceRun(ctx, runRepo, &run, models.SyncRunUpserting); err != nil {
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	upserted := 0
	err = ss.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		for _, unit := range units {
			accountID, upErr := r.GetAccountRepository().Upsert(ctx, unit.account)
			if upErr != nil {
				return upErr
			}
			upserted++

			for _, tx := range unit.transactions {
				currency, curErr := common.NormalizeCurrency(tx.Currency)
				if curErr != nil {
					run.RecordsSkipped++
					continue
				}

				txErr := r.GetTransactionRepository().Upsert(ctx, models.TransactionUpsert{
					AccountID:             accountID,
					ProviderTransactionID: tx.ProviderTransactionID,
					Amount:                tx.Amount,
					Currency:              currency,
					Date:                  tx.Date,
					Category:              tx.Category,
					Description:           tx.Description,
					Pending:               tx.Pending,
				})
				if txErr != nil {
					return txErr
				}
				upserted++
			}
		}

		// accounts the provider stopped reporting leave stale balances
		// behind; drop them with their transactions in the same tx
		for _, snapshot := range snapshots {
			keep := make([]string, 0, len(snapshot.accounts))
			for _, acc := range snapshot.accounts {
				keep = append(keep, acc.ProviderAccountID)
			}

			removed, delErr := r.GetAccountRepository().DeleteStale(ctx, snapshot.target.InstitutionConnectionID, keep)
			if delErr != nil {
				return delErr
			}
			if removed > 0 {
				xlog.Info(ctx, "[SYNC.ACCOUNTS.PRUNED]",
					xlog.String("provider", adapter.Name()),
					xlog.Int("institutionConnectionId", snapshot.target.InstitutionConnectionID),
					xlog.Int("removed", removed),
				)
			}
		}
		return nil
	})
	if err != nil {
		err = errors.Join(err, finishRun(ctx, runRepo, &run, models.SyncRunFailed, err))
		return
	}

	run.RecordsUpserted = upserted
	err = finishRun(ctx, runRepo, &run, models.SyncRunDone, nil)
	return
}

func (ss *sync) fetchTarget(ctx context.Context, adapter providers.Adapter, target models.SyncTarget, since time.Time) (snapshot fetchedAccounts, err error) {
	snapshot = fetchedAccounts{
		target:       target,
		transactions: make(map[string][]providers.Transaction),
	}

	err = ss.srv.retryer.Do(ctx, func() error {
		var fetchErr error
		snapshot.accounts, fetchErr = adapter.GetAccounts(ctx, target.ProviderUserID, target.ExternalID)
		if providers.IsAuthError(fetchErr) {
			return ss.srv.retryer.StopRetryWithErr(fetchErr)
		}
		return fetchErr
	})
	if err != nil {
		return
	}

	for _, acc := range snapshot.accounts {
		account := acc
		err = ss.srv.retryer.Do(ctx, func() error {
			txs, fetchErr := adapter.GetTransactions(ctx, target.ExternalID, account, since)
			if providers.IsAuthError(fetchErr) {
				return ss.srv.retryer.StopRetryWithErr(fetchErr)
			}
			if fetchErr != nil {
				return fetchErr
			}
			snapshot.transactions[account.ProviderAccountID] = txs
			return nil
		})
		if err != nil {
			return
		}
	}
	return
}

func (ss *sync) record(providerName string, run *models.SyncRun) {
	if ss.srv.metrics == nil {
		return
	}

	// a run that never reached finishRun has no finish time; zero beats a
	// negative duration in the histogram
	var duration time.Duration
	if !run.FinishedAt.IsZero() {
		duration = run.FinishedAt.Sub(run.StartedAt)
	}

	ss.srv.metrics.GetSyncPrometheus().Record(
		providerName, string(run.Kind), string(run.Status),
		run.RecordsUpserted, run.RecordsSkipped, duration,
	)
}

func (ss *sync) GetRuns(ctx context.Context, kind models.SyncRunKind, limit int) (runs []models.SyncRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	runs, err = ss.srv.sqlRepo.GetSyncRunRepository().GetList(ctx, kind, limit)
	return
}
