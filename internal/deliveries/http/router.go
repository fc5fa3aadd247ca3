package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/graceful"
	commonhttp "bitbucket.org/Amartha/go-fp-aggregation/internal/common/http"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/http/middleware"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/deliveries/http/health"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/services"
	xlog "bitbucket.org/Amartha/go-x/log"

	v1account "bitbucket.org/Amartha/go-fp-aggregation/internal/deliveries/http/v1/account"
	v1connection "bitbucket.org/Amartha/go-fp-aggregation/internal/deliveries/http/v1/connection"
	v1institution "bitbucket.org/Amartha/go-fp-aggregation/internal/deliveries/http/v1/institution"
	v1rate "bitbucket.org/Amartha/go-fp-aggregation/internal/deliveries/http/v1/rate"
	v1sync "bitbucket.org/Amartha/go-fp-aggregation/internal/deliveries/http/v1/sync"
	v1transaction "bitbucket.org/Amartha/go-fp-aggregation/internal/deliveries/http/v1/transaction"

	"bitbucket.org/Amartha/go-x/log/ctxdata"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	connectionService services.ConnectionService,
	institutionService services.InstitutionService,
	accountService services.AccountService,
	transactionService services.TransactionService,
	rateService services.RateService,
	syncService services.SyncService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth)
	// v1Group register api
	v1connection.New(v1Group, connectionService)
	v1institution.New(v1Group, institutionService)
	v1account.New(v1Group, accountService)
	v1transaction.New(v1Group, transactionService)
	v1rate.New(v1Group, rateService)

	// syncGroup: trigger endpoints hit by the scheduler, not by users
	syncGroup := apiGroup.Group("/v1", m.CronAuth)
	v1sync.New(syncGroup, syncService, rateService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
