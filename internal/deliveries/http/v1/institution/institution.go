package institution

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

type institutionHandler struct {
	institutionSvc services.InstitutionService
}

// New institution handler will initialize the institutions/ resources endpoint
func New(app *echo.Group, institutionSvc services.InstitutionService) {
	handler := institutionHandler{
		institutionSvc: institutionSvc,
	}
	api := app.Group("/institutions")
	api.GET("", handler.getAllInstitution)
	api.GET("/:id", handler.getOneInstitution)
}

func (h *institutionHandler) getAllInstitution(c echo.Context) error {
	req := new(models.GetListInstitutionRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, total, err := h.institutionSvc.GetList(c.Request().Context(), req.ToFilterOpts())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, total)
}

func (h *institutionHandler) getOneInstitution(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidID)
	}

	res, err := h.institutionSvc.GetOneByID(c.Request().Context(), id)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}
