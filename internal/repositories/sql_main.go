package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	xlog "bitbucket.org/Amartha/go-x/log"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	pr  *providerRepository
	ir  *institutionRepository
	cr  *connectionRepository
	ar  *accountRepository
	tr  *transactionRepository
	rr  *rateRepository
	srr *syncRunRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.pr = (*providerRepository)(&rtx.common)
	rtx.ir = (*institutionRepository)(&rtx.common)
	rtx.cr = (*connectionRepository)(&rtx.common)
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.rr = (*rateRepository)(&rtx.common)
	rtx.srr = (*syncRunRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetProviderRepository() ProviderRepository
	GetInstitutionRepository() InstitutionRepository
	GetConnectionRepository() ConnectionRepository
	GetAccountRepository() AccountRepository
	GetTransactionRepository() TransactionRepository
	GetRateRepository() RateRepository
	GetSyncRunRepository() SyncRunRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
				}
			}

			xlog.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetProviderRepository() ProviderRepository {
	return r.pr
}

func (r *Repository) GetInstitutionRepository() InstitutionRepository {
	return r.ir
}

func (r *Repository) GetConnectionRepository() ConnectionRepository {
	return r.cr
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetRateRepository() RateRepository {
	return r.rr
}

func (r *Repository) GetSyncRunRepository() SyncRunRepository {
	return r.srr
}
