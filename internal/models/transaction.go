package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a ledger entry on an account. Rows are inserted by sync or
// a provider enrichment callback and are never mutated except by
// provider-driven updates, which replay through the same conflict key.
type Transaction struct {
	ID                    int             `json:"id"`
	AccountID             int             `json:"accountId"`
	ProviderTransactionID string          `json:"providerTransactionId"`
	// Amount keeps the canonical sign convention: negative = money out.
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Pending     bool            `json:"pending"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type TransactionUpsert struct {
	AccountID             int
	ProviderTransactionID string
	Amount                decimal.Decimal
	Currency              string
	Date                  time.Time
	Category              string
	Description           string
	Pending               bool
}

type TransactionFilterOptions struct {
	UserID    string
	AccountID int
	Category  string
	DateFrom  time.Time
	DateTo    time.Time
	Limit     int
	Offset    int
}

type GetListTransactionRequest struct {
	UserID    string `query:"userId" json:"userId" validate:"required"`
	AccountID int    `query:"accountId" json:"accountId"`
	Category  string `query:"category" json:"category"`
	DateFrom  string `query:"dateFrom" json:"dateFrom" validate:"omitempty,date"`
	DateTo    string `query:"dateTo" json:"dateTo" validate:"omitempty,date"`
	Limit     int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=200"`
	Offset    int    `query:"offset" json:"offset" validate:"omitempty,min=0"`
}

// ToFilterOpts parses the date bounds; validation already guarantees the
// format so parse errors only surface on unvalidated input.
func (r GetListTransactionRequest) ToFilterOpts() (TransactionFilterOptions, error) {
	opts := TransactionFilterOptions{
		UserID:    r.UserID,
		AccountID: r.AccountID,
		Category:  r.Category,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}

	var err error
	if r.DateFrom != "" {
		if opts.DateFrom, err = time.Parse(time.DateOnly, r.DateFrom); err != nil {
			return opts, err
		}
	}
	if r.DateTo != "" {
		if opts.DateTo, err = time.Parse(time.DateOnly, r.DateTo); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
