package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrDataExist           = errors.New("data exist")
	ErrUnableToCreate      = errors.New("unable to create data")
	ErrUnableToUpdate      = errors.New("unable to update data")
	ErrInvalidCurrency     = errors.New("invalid ISO-4217 currency code")
	ErrInvalidID           = errors.New("id must be a number")
	ErrUnmappedNature      = errors.New("unmapped account nature")
	ErrUnknownProvider     = errors.New("unknown provider")
	ErrInvalidSyncState    = errors.New("invalid sync run state transition")
	ErrRateUnavailable     = errors.New("no exchange rate available")
	ErrNoRows              = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
