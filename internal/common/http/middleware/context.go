package middleware

import (
	"bitbucket.org/Amartha/go-x/log/ctxdata"

	"github.com/labstack/echo/v4"
)

// Context seeds correlation data (request id, trace fields) onto the
// request context so every log line downstream carries it.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := ctxdata.SetContextFromHTTP(req.Context(), req, "")
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
