package services

import (
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/cache"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/metrics"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/retry"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo    repositories.SQLRepository
	registry   *providers.Registry
	rateSource providers.RateSource
	rateCache  cache.Client[models.RateTable]
	retryer    retry.Retryer
	metrics    metrics.Metrics

	common service

	Connection  *connection
	Institution *institution
	Account     *account
	Transaction *transaction
	Rate        *rate
	Sync        *sync
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	registry *providers.Registry,
	rateSource providers.RateSource,
	rateCache cache.Client[models.RateTable],
	retryer retry.Retryer,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:       conf,
		sqlRepo:    sqlRepo,
		registry:   registry,
		rateSource: rateSource,
		rateCache:  rateCache,
		retryer:    retryer,
		metrics:    metrics,
	}
	srv.common.srv = srv
	srv.Connection = (*connection)(&srv.common)
	srv.Institution = (*institution)(&srv.common)
	srv.Account = (*account)(&srv.common)
	srv.Transaction = (*transaction)(&srv.common)
	srv.Rate = (*rate)(&srv.common)
	srv.Sync = (*sync)(&srv.common)

	return srv
}
