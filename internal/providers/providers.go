// Package providers defines the adapter contract every external
// financial-data aggregator is wrapped behind. Adapters own authentication
// and pagination for one upstream API and never touch storage; the sync
// service owns normalization and persistence.
package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Institution is an upstream bank/brokerage as one provider reports it,
// before persistence.
type Institution struct {
	ProviderInstitutionID string
	Name                  string
	LogoURL               string
	Country               string
	Enabled               bool
	Demo                  bool
}

// Account is an upstream holding. Nature is the provider-native
// classification; the nature mapper translates it downstream. Currency is
// raw as received, normalization happens downstream too.
type Account struct {
	ProviderAccountID string
	Name              string
	Nature            string
	Currency          string
	Value             decimal.Decimal
	CostBasis         decimal.Decimal
	Extra             map[string]any
}

type Transaction struct {
	ProviderTransactionID string
	ProviderAccountID     string
	Amount                decimal.Decimal
	Currency              string
	Date                  time.Time
	Category              string
	Description           string
	Pending               bool
}

// Registration is the result of registering a user with a provider.
// ProviderUserID is the identity to persist; some providers require it for
// every subsequent call and for deregistration.
type Registration struct {
	ProviderUserID string
	// RedirectURL is where the dashboard sends the user to link an
	// institution, for providers with a hosted connect flow.
	RedirectURL string
}

type Adapter interface {
	Name() string

	// KnownNatures lists every nature string this adapter can emit, checked
	// against the mapper at startup.
	KnownNatures() []string

	GetInstitutions(ctx context.Context) ([]Institution, error)
	GetAccounts(ctx context.Context, providerUserID, connectionExternalID string) ([]Account, error)
	GetTransactions(ctx context.Context, connectionExternalID string, account Account, since time.Time) ([]Transaction, error)
	Register(ctx context.Context, userID string) (Registration, error)
	Deregister(ctx context.Context, providerUserID string) error
}

// RateSource is the single upstream exchange-rate provider of a deployment.
type RateSource interface {
	Name() string
	// Latest returns today's rates as units of currency per 1 unit of base.
	Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// Error is the typed failure adapters return. StatusCode is the upstream
// HTTP status when one was received, zero otherwise.
type Error struct {
	Provider   string
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s: upstream status %d: %v", e.Provider, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(provider, op string, statusCode int, err error) *Error {
	return &Error{Provider: provider, Op: op, StatusCode: statusCode, Err: err}
}

// IsAuthError reports whether err is an upstream authentication failure.
// Auth failures are permanent for a sync run: retrying can not fix expired
// or revoked credentials.
func IsAuthError(err error) bool {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.StatusCode == 401 || pErr.StatusCode == 403
	}
	return false
}

func IsNotFound(err error) bool {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.StatusCode == 404
	}
	return false
}
