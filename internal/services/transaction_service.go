package services

import (
	"context"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

type TransactionService interface {
	GetList(ctx context.Context, opts models.TransactionFilterOptions) (transactions []models.Transaction, total int, err error)
}

type transaction service

var _ TransactionService = (*transaction)(nil)

func (ts *transaction) GetList(ctx context.Context, opts models.TransactionFilterOptions) (transactions []models.Transaction, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	txRepo := ts.srv.sqlRepo.GetTransactionRepository()

	transactions, err = txRepo.GetList(ctx, opts)
	if err != nil {
		return
	}

	total, err = txRepo.CountAll(ctx, opts)
	return
}
