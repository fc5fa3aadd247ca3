package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

const (
	ErrKeyProviderNotFound       = "PROVIDER_NOT_FOUND"
	ErrKeyInstitutionNotFound    = "INSTITUTION_NOT_FOUND"
	ErrKeyConnectionNotFound     = "CONNECTION_NOT_FOUND"
	ErrKeyAccountNotFound        = "ACCOUNT_NOT_FOUND"
	ErrKeyRateNotFound           = "RATE_NOT_FOUND"
	ErrKeyUnmappedNature         = "UNMAPPED_NATURE"
	ErrKeyUnknownProvider        = "UNKNOWN_PROVIDER"
	ErrKeyProviderUpstream       = "PROVIDER_UPSTREAM_ERROR"
	ErrKeyConnectionAlreadyExist = "CONNECTION_ALREADY_EXISTS"
)

var MapErrors = MapErrs{
	ErrKeyProviderNotFound:       {Code: ErrKeyProviderNotFound, ErrorMessage: errors.New("provider not found")},
	ErrKeyInstitutionNotFound:    {Code: ErrKeyInstitutionNotFound, ErrorMessage: errors.New("institution not found")},
	ErrKeyConnectionNotFound:     {Code: ErrKeyConnectionNotFound, ErrorMessage: errors.New("connection not found")},
	ErrKeyAccountNotFound:        {Code: ErrKeyAccountNotFound, ErrorMessage: errors.New("account not found")},
	ErrKeyRateNotFound:           {Code: ErrKeyRateNotFound, ErrorMessage: errors.New("no exchange rate stored for requested day")},
	ErrKeyUnmappedNature:         {Code: ErrKeyUnmappedNature, ErrorMessage: errors.New("provider account nature has no mapping")},
	ErrKeyUnknownProvider:        {Code: ErrKeyUnknownProvider, ErrorMessage: errors.New("provider is not registered")},
	ErrKeyProviderUpstream:       {Code: ErrKeyProviderUpstream, ErrorMessage: errors.New("upstream provider request failed")},
	ErrKeyConnectionAlreadyExist: {Code: ErrKeyConnectionAlreadyExist, ErrorMessage: errors.New("provider connection already exists")},
}

// request validation failures, keyed <json field>_<tag> the way
// ValidateStruct builds its lookup
var (
	errMissingField     = errors.New("field is missing")
	errInvalidCurrency  = errors.New("field must be a 3-letter ISO-4217 code")
	errInvalidDate      = errors.New("field must be formatted as YYYY-MM-DD")
	errUnsupportedValue = errors.New("field has an unsupported value")
	errOutOfRange       = errors.New("field is out of range")
)

func init() {
	for key, detail := range MapErrs{
		"userId_required":               {Code: "MISSING_FIELD", ErrorMessage: errMissingField},
		"provider_required":             {Code: "MISSING_FIELD", ErrorMessage: errMissingField},
		"institutionId_required":        {Code: "MISSING_FIELD", ErrorMessage: errMissingField},
		"externalId_required":           {Code: "MISSING_FIELD", ErrorMessage: errMissingField},
		"providerConnectionId_required": {Code: "MISSING_FIELD", ErrorMessage: errMissingField},
		"currency_iso4217":              {Code: "INVALID_CURRENCY_CODE", ErrorMessage: errInvalidCurrency},
		"dateFrom_date":                 {Code: "INVALID_DATE", ErrorMessage: errInvalidDate},
		"dateTo_date":                   {Code: "INVALID_DATE", ErrorMessage: errInvalidDate},
		"type_oneof":                    {Code: "INVALID_VALUE", ErrorMessage: errUnsupportedValue},
		"kind_oneof":                    {Code: "INVALID_VALUE", ErrorMessage: errUnsupportedValue},
		"limit_min":                     {Code: "INVALID_RANGE", ErrorMessage: errOutOfRange},
		"limit_max":                     {Code: "INVALID_RANGE", ErrorMessage: errOutOfRange},
		"offset_min":                    {Code: "INVALID_RANGE", ErrorMessage: errOutOfRange},
	} {
		MapErrors[key] = detail
	}
}
