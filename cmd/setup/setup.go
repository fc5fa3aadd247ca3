package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slices"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/cache"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/graceful"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/httpclient"
	cMetrics "bitbucket.org/Amartha/go-fp-aggregation/internal/common/metrics"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/nature"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/retry"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers/currencybeacon"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers/enablebanking"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers/saltedge"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers/snaptrade"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers/vezgo"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/repositories"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/services"

	confLoader "bitbucket.org/Amartha/go-config-loader-library"
	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/go-resty/resty/v2"
	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

type Setup struct {
	Config   config.Config
	NewRelic *newrelic.Application
	WriteDB  *sql.DB
	ReadDB   *sql.DB
	Cache    *redis.Client
	Registry *providers.Registry
	Service  *services.Services
	Metrics  cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	var cfg config.Config
	l := confLoader.New(
		"GO_FP_AGGREGATION",
		"",
		os.Getenv(""),
		confLoader.WithConfigFileName("config"),
		confLoader.WithConfigFileSearchPaths("/config", "."),
	)
	err = l.Load(&cfg)
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.DebugLogLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = xlog.InfoLogLevel()
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	redisCache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = redisCache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return redisCache.Close() })

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}

		// register redis prometheus metrics
		err = mtc.RegisterRedis(redisCache, cfg.App.Name, command)
		if err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)

	registry, err := setupRegistry(ctx, cfg, sqlRepo, mtc)
	if err != nil {
		return
	}

	rateSource := currencybeacon.New(cfg.Rates, httpclient.NewRequestWrapper(
		restyClient(cfg.Rates.BaseURL, cfg.Rates.Timeout), mtc, cfg.App.Name, "[CURRENCYBEACON]"))

	rateCache := cache.NewRedisClient[models.RateTable](redisCache)

	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		registry,
		rateSource,
		rateCache,
		retryer,
		mtc,
	)

	return &Setup{
		Config:   cfg,
		NewRelic: newRelic,
		WriteDB:  writeDB,
		ReadDB:   readDB,
		Cache:    redisCache,
		Registry: registry,
		Service:  srv,
		Metrics:  mtc,
	}, stopper, nil
}

// setupRegistry builds one adapter per enabled provider block, verifies
// every nature the adapter can emit is mapped, and seeds the provider row
// so syncs have a stable id to hang records off.
func setupRegistry(ctx context.Context, cfg config.Config, sqlRepo repositories.SQLRepository, mtc cMetrics.Metrics) (*providers.Registry, error) {
	var adapters []providers.Adapter

	if cfg.Providers.SaltEdge.Enabled {
		adapters = append(adapters, saltedge.New(cfg.Providers.SaltEdge, httpclient.NewRequestWrapper(
			restyClient(cfg.Providers.SaltEdge.BaseURL, cfg.Providers.SaltEdge.Timeout), mtc, cfg.App.Name, "[SALTEDGE]")))
	}

	if cfg.Providers.SnapTrade.Enabled {
		adapters = append(adapters, snaptrade.New(cfg.Providers.SnapTrade, httpclient.NewRequestWrapper(
			restyClient(cfg.Providers.SnapTrade.BaseURL, cfg.Providers.SnapTrade.Timeout), mtc, cfg.App.Name, "[SNAPTRADE]")))
	}

	if cfg.Providers.Vezgo.Enabled {
		adapters = append(adapters, vezgo.New(cfg.Providers.Vezgo, httpclient.NewRequestWrapper(
			restyClient(cfg.Providers.Vezgo.BaseURL, cfg.Providers.Vezgo.Timeout), mtc, cfg.App.Name, "[VEZGO]")))
	}

	if cfg.Providers.EnableBanking.Enabled {
		eb, err := enablebanking.New(cfg.Providers.EnableBanking, httpclient.NewRequestWrapper(
			restyClient(cfg.Providers.EnableBanking.BaseURL, cfg.Providers.EnableBanking.Timeout), mtc, cfg.App.Name, "[ENABLEBANKING]"))
		if err != nil {
			return nil, fmt.Errorf("failed to build enablebanking adapter: %w", err)
		}
		adapters = append(adapters, eb)
	}

	providerRepo := sqlRepo.GetProviderRepository()
	for _, adapter := range adapters {
		if err := nature.Check(adapter.KnownNatures()); err != nil {
			return nil, fmt.Errorf("adapter %s: %w", adapter.Name(), err)
		}
		if err := providerRepo.Seed(ctx, adapter.Name()); err != nil {
			return nil, fmt.Errorf("failed to seed provider %s: %w", adapter.Name(), err)
		}
	}

	return providers.NewRegistry(adapters...)
}

func restyClient(baseURL string, timeout time.Duration) *resty.Client {
	const defaultTimeout = 30 * time.Second

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		logger, ok := xlog.Loggers.Load(xlog.DefaultLogger)
		if !ok {
			return nil
		}
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			func(config *newrelic.Config) {
				config.Logger = nrzap.Transform(logger)
			},
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
