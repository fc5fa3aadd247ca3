package services

import (
	"errors"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"
)

// checkDatabaseError translates repository sentinels into API error
// details; code overrides the generic not-found mapping.
func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrDataNotFound) {
		if len(code) > 0 {
			return models.GetErrMap(code[0])
		}
		return models.GetErrMap(models.ErrKeyConnectionNotFound)
	}
	return err
}

// checkProviderError wraps upstream adapter failures for the API surface,
// keeping the adapter detail in the message.
func checkProviderError(err error) error {
	var pErr *providers.Error
	if errors.As(err, &pErr) {
		return models.GetErrMap(models.ErrKeyProviderUpstream, pErr.Error())
	}
	return err
}
