package http

import (
	"errors"
	"net/http"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = echoErr.Message.(string)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, errors interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errors.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// HandleServiceError maps service errors onto HTTP statuses: not-found
// details become 404, everything else is a 500.
func HandleServiceError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		switch detail.Code {
		case models.ErrKeyProviderNotFound,
			models.ErrKeyInstitutionNotFound,
			models.ErrKeyConnectionNotFound,
			models.ErrKeyAccountNotFound,
			models.ErrKeyRateNotFound:
			return RestErrorResponse(c, http.StatusNotFound, err)
		}
	}

	if errors.Is(err, common.ErrDataNotFound) {
		return RestErrorResponse(c, http.StatusNotFound, err)
	}

	return RestErrorResponse(c, http.StatusInternalServerError, err)
}
