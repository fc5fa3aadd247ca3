package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the canonical classification an account nature maps into.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
)

// AccountSubtype refines AccountType. The set is closed; the nature mapper
// is the only producer.
type AccountSubtype string

const (
	AccountSubtypeDepository AccountSubtype = "depository"
	AccountSubtypeInvestment AccountSubtype = "investment"
	AccountSubtypeCrypto     AccountSubtype = "crypto"
	AccountSubtypeProperty   AccountSubtype = "property"
	AccountSubtypeCreditCard AccountSubtype = "creditcard"
	AccountSubtypeLoan       AccountSubtype = "loan"
	AccountSubtypeOther      AccountSubtype = "other"
)

type Account struct {
	ID                      int             `json:"id"`
	InstitutionConnectionID int             `json:"institutionConnectionId"`
	ProviderAccountID       string          `json:"providerAccountId"`
	Name                    string          `json:"name"`
	Type                    AccountType     `json:"type"`
	Subtype                 AccountSubtype  `json:"subtype"`
	Currency                string          `json:"currency"`
	Value                   decimal.Decimal `json:"value"`
	CostBasis               decimal.Decimal `json:"costBasis"`
	Metadata                AccountMetadata `json:"metadata,omitempty"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
}

type AccountMetadata map[string]any

func (e *AccountMetadata) Scan(src interface{}) error {
	var raw []byte
	switch src := src.(type) {
	case string:
		raw = []byte(src)
	case []byte:
		raw = src
	default:
		return fmt.Errorf("type %T not supported by Scan", src)
	}

	return json.Unmarshal(raw, e)
}

func (e AccountMetadata) Value() (driver.Value, error) {
	return json.Marshal(e)
}

// AccountUpsert is the sync write shape, keyed by
// (institutionConnectionId, providerAccountId).
type AccountUpsert struct {
	InstitutionConnectionID int
	ProviderAccountID       string
	Name                    string
	Type                    AccountType
	Subtype                 AccountSubtype
	Currency                string
	Value                   decimal.Decimal
	CostBasis               decimal.Decimal
	Metadata                AccountMetadata
}

type AccountFilterOptions struct {
	UserID                  string
	InstitutionConnectionID int
	Type                    AccountType
	Limit                   int
	Offset                  int
}

type GetListAccountRequest struct {
	UserID                  string `query:"userId" json:"userId" validate:"required"`
	InstitutionConnectionID int    `query:"institutionConnectionId" json:"institutionConnectionId"`
	Type                    string `query:"type" json:"type" validate:"omitempty,oneof=asset liability"`
	Currency                string `query:"currency" json:"currency" validate:"omitempty,iso4217"`
	Limit                   int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Offset                  int    `query:"offset" json:"offset" validate:"omitempty,min=0"`
}

func (r GetListAccountRequest) ToFilterOpts() AccountFilterOptions {
	return AccountFilterOptions{
		UserID:                  r.UserID,
		InstitutionConnectionID: r.InstitutionConnectionID,
		Type:                    AccountType(r.Type),
		Limit:                   r.Limit,
		Offset:                  r.Offset,
	}
}

type GetNetWorthRequest struct {
	UserID   string `query:"userId" json:"userId" validate:"required"`
	Currency string `query:"currency" json:"currency" validate:"omitempty,iso4217"`
}

// AccountView is an account with its value converted into the requested
// display currency.
type AccountView struct {
	Account
	DisplayCurrency string          `json:"displayCurrency"`
	DisplayValue    decimal.Decimal `json:"displayValue"`
}

// NetWorth summarizes converted balances per canonical type.
type NetWorth struct {
	Currency    string          `json:"currency"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Total       decimal.Decimal `json:"total"`
}
