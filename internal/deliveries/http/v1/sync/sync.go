package sync

import (
	nethttp "net/http"
	"strconv"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/http"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/validation"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/services"

	"github.com/labstack/echo/v4"
)

type syncHandler struct {
	syncSvc services.SyncService
	rateSvc services.RateService
}

// New sync handler will initialize the sync/ trigger endpoints. The routes
// are mounted behind cron authentication; a run that partially fails still
// answers 200 with the per-provider statuses in the body.
func New(app *echo.Group, syncSvc services.SyncService, rateSvc services.RateService) {
	handler := syncHandler{
		syncSvc: syncSvc,
		rateSvc: rateSvc,
	}
	api := app.Group("/sync")
	api.POST("/institutions", handler.syncInstitutions)
	api.POST("/accounts", handler.syncAccounts)
	api.POST("/rates", handler.syncRates)
	api.POST("/connections/:id/accounts", handler.syncConnection)
	api.GET("/runs", handler.getRuns)
}

func (h *syncHandler) syncInstitutions(c echo.Context) error {
	res, err := h.syncSvc.SyncInstitutions(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) syncAccounts(c echo.Context) error {
	res, err := h.syncSvc.SyncAccounts(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) syncRates(c echo.Context) error {
	res, err := h.rateSvc.Refresh(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

// syncConnection refreshes one provider connection on demand, for the
// dashboard's refresh button.
func (h *syncHandler) syncConnection(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidID)
	}

	res, err := h.syncSvc.SyncConnection(c.Request().Context(), id)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) getRuns(c echo.Context) error {
	req := new(models.GetSyncRunsRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.syncSvc.GetRuns(c.Request().Context(), models.SyncRunKind(req.Kind), req.Limit)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, len(res))
}
