package rate

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/http"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/services"

	"github.com/labstack/echo/v4"
)

type rateHandler struct {
	rateSvc services.RateService
}

// New rate handler will initialize the rates/ resources endpoint
func New(app *echo.Group, rateSvc services.RateService) {
	handler := rateHandler{
		rateSvc: rateSvc,
	}
	api := app.Group("/rates")
	api.GET("", handler.getRateTable)
}

// getRateTable serves the latest stored table. A stale table is still
// served; the date field tells the caller how old it is.
func (h *rateHandler) getRateTable(c echo.Context) error {
	res, err := h.rateSvc.GetTable(c.Request().Context())
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}
