package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Rate is one day's exchange rate for a currency versus the deployment base
// currency, expressed as units of currency per 1 unit of base. A new day's
// refresh supersedes, never mutates, the prior day's row.
type Rate struct {
	ID           int             `json:"id"`
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type RateUpsert struct {
	CurrencyCode string
	Rate         decimal.Decimal
	Date         time.Time
}

// RateTable is a day's rates keyed by currency code, with the base the
// table was fetched against.
type RateTable struct {
	Base  string                     `json:"base"`
	Date  time.Time                  `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}
