package connection

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/http"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/validation"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/services"

	"github.com/labstack/echo/v4"
)

type connectionHandler struct {
	connectionSvc services.ConnectionService
}

// New connection handler will initialize the connections/ resources endpoint
func New(app *echo.Group, connectionSvc services.ConnectionService) {
	handler := connectionHandler{
		connectionSvc: connectionSvc,
	}
	api := app.Group("/connections")
	api.POST("", handler.registerConnection)
	api.GET("", handler.getConnections)
	api.DELETE("/:provider", handler.deregisterConnection)
	api.POST("/:id/institutions", handler.attachInstitution)
}

// registerConnection links a user to a provider. Registering an already
// linked pair returns the existing connection instead of failing.
func (h *connectionHandler) registerConnection(c echo.Context) error {
	req := new(models.RegisterConnectionRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.connectionSvc.Register(c.Request().Context(), req.UserID, req.Provider)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

func (h *connectionHandler) getConnections(c echo.Context) error {
	req := new(models.GetConnectionsRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.connectionSvc.GetByUser(c.Request().Context(), req.UserID)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, len(res))
}

func (h *connectionHandler) deregisterConnection(c echo.Context) error {
	req := new(models.DeregisterConnectionRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	err := h.connectionSvc.Deregister(c.Request().Context(), req.UserID, c.Param("provider"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusNoContent, nil)
}

// attachInstitution records the institution a user picked inside the
// provider's hosted connect flow.
func (h *connectionHandler) attachInstitution(c echo.Context) error {
	connectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidID)
	}

	req := new(models.AttachInstitutionRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.connectionSvc.AttachInstitution(c.Request().Context(), models.AttachInstitutionIn{
		ProviderConnectionID: connectionID,
		InstitutionID:        req.InstitutionID,
		ExternalID:           req.ExternalID,
	})
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}
