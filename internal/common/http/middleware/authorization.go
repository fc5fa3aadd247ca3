package middleware

import (
	"fmt"
	nethttp "net/http"
	"strings"

	commonhttp "bitbucket.org/Amartha/go-fp-aggregation/internal/common/http"

	"github.com/labstack/echo/v4"
)

// InternalAuth guards the user-facing v1 resources: callers are the
// dashboard's own backend services, authenticated by a shared secret header.
func (m *AppMiddleware) InternalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secretKey := c.Request().Header.Get("X-Secret-Key")
		statusCode := nethttp.StatusUnauthorized
		if secretKey == "" {
			return commonhttp.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "required secret key"))
		}

		if secretKey != m.conf.SecretKey {
			return commonhttp.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "invalid secret key"))
		}

		return next(c)
	}
}

// CronAuth guards the scheduled sync endpoints. The external scheduler
// sends "Authorization: Bearer <secret>"; anything else is a 401.
func (m *AppMiddleware) CronAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		statusCode := nethttp.StatusUnauthorized

		authorization := c.Request().Header.Get("Authorization")
		token, found := strings.CutPrefix(authorization, "Bearer ")
		if !found || token == "" {
			return commonhttp.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "required bearer token"))
		}

		if token != m.conf.CronSecret {
			return commonhttp.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "invalid bearer token"))
		}

		return next(c)
	}
}
