package services

import (
	"context"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

type InstitutionService interface {
	GetList(ctx context.Context, opts models.InstitutionFilterOptions) (institutions []models.Institution, total int, err error)
	GetOneByID(ctx context.Context, id int) (result models.Institution, err error)
}

type institution service

var _ InstitutionService = (*institution)(nil)

func (is *institution) GetList(ctx context.Context, opts models.InstitutionFilterOptions) (institutions []models.Institution, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	instRepo := is.srv.sqlRepo.GetInstitutionRepository()

	institutions, err = instRepo.GetList(ctx, opts)
	if err != nil {
		return
	}

	total, err = instRepo.CountAll(ctx, opts)
	return
}

func (is *institution) GetOneByID(ctx context.Context, id int) (result models.Institution, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = is.srv.sqlRepo.GetInstitutionRepository().GetOneByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyInstitutionNotFound)
	}
	return
}
