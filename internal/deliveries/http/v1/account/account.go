package account

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

type accountHandler struct {
	accountSvc services.AccountService
}

// New account handler will initialize the accounts/ resources endpoint
func New(app *echo.Group, accountSvc services.AccountService) {
	handler := accountHandler{
		accountSvc: accountSvc,
	}
	api := app.Group("/accounts")
	api.GET("", handler.getAllAccount)
	api.GET("/net-worth", handler.getNetWorth)
	api.GET("/:id", handler.getOneAccount)
}

// getAllAccount lists a user's accounts with values converted into the
// requested display currency.
func (h *accountHandler) getAllAccount(c echo.Context) error {
	req := new(models.GetListAccountRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, total, err := h.accountSvc.GetList(c.Request().Context(), req.ToFilterOpts(), req.Currency)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, total)
}

func (h *accountHandler) getNetWorth(c echo.Context) error {
	req := new(models.GetNetWorthRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.accountSvc.GetNetWorth(c.Request().Context(), req.UserID, req.Currency)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *accountHandler) getOneAccount(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidID)
	}

	res, err := h.accountSvc.GetOneByID(c.Request().Context(), id)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}
