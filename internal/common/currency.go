package common

import (
	"strings"
)

// NormalizeCurrency uppercases a provider-supplied currency code and
// rejects anything that is not a 3-letter ISO-4217 code. Codes pass through
// otherwise unchanged.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return code, nil
}
