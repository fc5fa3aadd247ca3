package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New()

func init() {
	registerISO4217()
	registerDate()
}

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateStruct validates request payloads, reporting every failed field
// through a multierror so the caller can return them all at once.
func ValidateStruct(toValidate interface{}) error {
	// use json tag names in error output
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				key := fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag())
				if data, found := models.MapErrors[key]; found {
					errs = multierror.Append(errs, ErrorValidateResponse{
						Code:    data.Code,
						Field:   valErr.Field(),
						Message: data.ErrorMessage.Error(),
					})
					continue
				}

				errs = multierror.Append(errs, ErrorValidateResponse{
					Code:    "UNKNOWN",
					Field:   valErr.Field(),
					Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
				})
			}
		}
	}

	return errs.ErrorOrNil()
}

// iso4217: 3 uppercase-or-lowercase letters; normalization to uppercase is
// the mapper's job, validation only rejects shapes that can never be a code.
func registerISO4217() {
	validate.RegisterValidation("iso4217", func(fl validator.FieldLevel) bool {
		code, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		if code == "" {
			return true // pair with required when the field is mandatory
		}
		if len(code) != 3 {
			return false
		}
		for _, r := range strings.ToUpper(code) {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
		return true
	})
}

func registerDate() {
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		data, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		if data == "" {
			return true
		}
		_, err := time.Parse(time.DateOnly, data)
		return err == nil
	})
}
