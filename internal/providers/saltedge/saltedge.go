// Package saltedge wraps the Salt Edge Account Information API v5 behind
// the provider adapter contract. Salt Edge authenticates with App-id and
// Secret headers; list endpoints paginate with a from_id cursor.
package saltedge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/httpclient"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const providerName = "saltedge"

type Client struct {
	cfg     config.SaltEdgeConfig
	wrapper *httpclient.RequestWrapper
}

var _ providers.Adapter = (*Client)(nil)

func New(cfg config.SaltEdgeConfig, wrapper *httpclient.RequestWrapper) *Client {
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 100
	}
	return &Client{cfg: cfg, wrapper: wrapper}
}

func (c *Client) Name() string { return providerName }

func (c *Client) KnownNatures() []string {
	return []string{
		"account", "checking", "savings", "card", "debit_card", "credit_card",
		"credit", "bonus", "ewallet", "insurance", "investment", "mortgage", "loan",
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		NextID string `json:"next_id"`
	} `json:"meta"`
}

type seProvider struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	CountryCode string `json:"country_code"`
	Status      string `json:"status"`
	Regulated   bool   `json:"regulated"`
}

type seAccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Nature   string          `json:"nature"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency_code"`
	Extra    map[string]any  `json:"extra"`
}

type seTransaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency_code"`
	MadeOn      string          `json:"made_on"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

type seCustomer struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
}

func (c *Client) get(ctx context.Context, op, url string, query map[string]string, out *envelope) error {
	res, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, func(r *resty.Request) *resty.Request {
		return r.SetHeaders(c.authHeaders()).SetQueryParams(query)
	})
	if err != nil {
		return providers.NewError(providerName, op, 0, err)
	}
	if res.IsError() {
		return providers.NewError(providerName, op, res.StatusCode(), fmt.Errorf("unexpected response: %s", res.Status()))
	}

	if err := json.Unmarshal(res.Body(), out); err != nil {
		return providers.NewError(providerName, op, 0, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{
		"App-id": c.cfg.AppID,
		"Secret": c.cfg.Secret,
		"Accept": "application/json",
	}
}

// GetInstitutions walks /providers with the from_id cursor until the API
// stops returning one.
func (c *Client) GetInstitutions(ctx context.Context) ([]providers.Institution, error) {
	var result []providers.Institution

	fromID := ""
	for {
		query := map[string]string{"per_page": fmt.Sprint(c.cfg.PageLimit)}
		if fromID != "" {
			query["from_id"] = fromID
		}

		var env envelope
		if err := c.get(ctx, "GetInstitutions", c.cfg.BaseURL+"/providers", query, &env); err != nil {
			return nil, err
		}

		var page []seProvider
		if err := json.Unmarshal(env.Data, &page); err != nil {
			return nil, providers.NewError(providerName, "GetInstitutions", 0, fmt.Errorf("decode providers: %w", err))
		}

		for _, p := range page {
			result = append(result, providers.Institution{
				ProviderInstitutionID: p.Code,
				Name:                  p.Name,
				LogoURL:               p.LogoURL,
				Country:               p.CountryCode,
				Enabled:               p.Status == "active",
				Demo:                  p.CountryCode == "XF", // Salt Edge fake-bank country
			})
		}

		if env.Meta.NextID == "" {
			break
		}
		fromID = env.Meta.NextID
	}

	return result, nil
}

func (c *Client) GetAccounts(ctx context.Context, providerUserID, connectionExternalID string) ([]providers.Account, error) {
	var env envelope
	query := map[string]string{
		"customer_id":   providerUserID,
		"connection_id": connectionExternalID,
	}
	if err := c.get(ctx, "GetAccounts", c.cfg.BaseURL+"/accounts", query, &env); err != nil {
		return nil, err
	}

	var accounts []seAccount
	if err := json.Unmarshal(env.Data, &accounts); err != nil {
		return nil, providers.NewError(providerName, "GetAccounts", 0, fmt.Errorf("decode accounts: %w", err))
	}

	result := make([]providers.Account, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, providers.Account{
			ProviderAccountID: a.ID,
			Name:              a.Name,
			Nature:            a.Nature,
			Currency:          a.Currency,
			Value:             a.Balance,
			Extra:             a.Extra,
		})
	}
	return result, nil
}

func (c *Client) GetTransactions(ctx context.Context, connectionExternalID string, account providers.Account, since time.Time) ([]providers.Transaction, error) {
	var result []providers.Transaction

	fromID := ""
	for {
		query := map[string]string{
			"connection_id": connectionExternalID,
			"account_id":    account.ProviderAccountID,
		}
		if !since.IsZero() {
			query["from_date"] = since.Format(time.DateOnly)
		}
		if fromID != "" {
			query["from_id"] = fromID
		}

		var env envelope
		if err := c.get(ctx, "GetTransactions", c.cfg.BaseURL+"/transactions", query, &env); err != nil {
			return nil, err
		}

		var page []seTransaction
		if err := json.Unmarshal(env.Data, &page); err != nil {
			return nil, providers.NewError(providerName, "GetTransactions", 0, fmt.Errorf("decode transactions: %w", err))
		}

		for _, tx := range page {
			madeOn, err := time.Parse(time.DateOnly, tx.MadeOn)
			if err != nil {
				return nil, providers.NewError(providerName, "GetTransactions", 0, fmt.Errorf("parse made_on %q: %w", tx.MadeOn, err))
			}

			result = append(result, providers.Transaction{
				ProviderTransactionID: tx.ID,
				ProviderAccountID:     tx.AccountID,
				Amount:                tx.Amount,
				Currency:              tx.Currency,
				Date:                  madeOn,
				Category:              tx.Category,
				Description:           tx.Description,
				Pending:               tx.Status == "pending",
			})
		}

		if env.Meta.NextID == "" {
			break
		}
		fromID = env.Meta.NextID
	}

	return result, nil
}

// Register creates a Salt Edge customer for the user. The returned customer
// id is required on every account fetch.
func (c *Client) Register(ctx context.Context, userID string) (providers.Registration, error) {
	payload := map[string]any{"data": map[string]string{"identifier": userID}}

	res, err := c.wrapper.DoRequest(ctx, http.MethodPost, c.cfg.BaseURL+"/customers", func(r *resty.Request) *resty.Request {
		return r.SetHeaders(c.authHeaders()).SetBody(payload)
	})
	if err != nil {
		return providers.Registration{}, providers.NewError(providerName, "Register", 0, err)
	}
	if res.IsError() {
		return providers.Registration{}, providers.NewError(providerName, "Register", res.StatusCode(), fmt.Errorf("unexpected response: %s", res.Status()))
	}

	var env struct {
		Data seCustomer `json:"data"`
	}
	if err := json.Unmarshal(res.Body(), &env); err != nil {
		return providers.Registration{}, providers.NewError(providerName, "Register", 0, fmt.Errorf("decode customer: %w", err))
	}

	return providers.Registration{ProviderUserID: env.Data.ID}, nil
}

func (c *Client) Deregister(ctx context.Context, providerUserID string) error {
	res, err := c.wrapper.DoRequest(ctx, http.MethodDelete, c.cfg.BaseURL+"/customers/"+providerUserID, func(r *resty.Request) *resty.Request {
		return r.SetHeaders(c.authHeaders())
	})
	if err != nil {
		return providers.NewError(providerName, "Deregister", 0, err)
	}
	if res.IsError() {
		return providers.NewError(providerName, "Deregister", res.StatusCode(), fmt.Errorf("unexpected response: %s", res.Status()))
	}
	return nil
}
