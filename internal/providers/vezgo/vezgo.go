// Package vezgo wraps the Vezgo crypto-aggregation API. Authentication is a
// two-step exchange: client credentials buy a short-lived bearer token,
// optionally scoped to one user via the loginName header. Tokens are cached
// per login until shortly before expiry.
package vezgo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/httpclient"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const providerName = "vezgo"

// tokens live 20 minutes upstream; refresh early to avoid mid-sync expiry.
const tokenLifetime = 15 * time.Minute

type Client struct {
	cfg     config.VezgoConfig
	wrapper *httpclient.RequestWrapper
	now     func() time.Time

	mu     sync.Mutex
	tokens map[string]cachedToken // keyed by loginName, "" for client scope
}

type cachedToken struct {
	token     string
	expiresAt time.Time
}

var _ providers.Adapter = (*Client)(nil)

func New(cfg config.VezgoConfig, wrapper *httpclient.RequestWrapper) *Client {
	return &Client{
		cfg:     cfg,
		wrapper: wrapper,
		now:     time.Now,
		tokens:  make(map[string]cachedToken),
	}
}

func (c *Client) Name() string { return providerName }

func (c *Client) KnownNatures() []string {
	return []string{"wallet", "exchange", "defi", "crypto"}
}

// token exchanges client credentials for a bearer token, scoped to loginName
// when one is given. Cached tokens are reused until close to expiry.
func (c *Client) token(ctx context.Context, loginName string) (string, error) {
	c.mu.Lock()
	cached, ok := c.tokens[loginName]
	c.mu.Unlock()
	if ok && c.now().Before(cached.expiresAt) {
		return cached.token, nil
	}

	basic := base64.StdEncoding.EncodeToString([]byte(c.cfg.ClientID + ":" + c.cfg.APISecret))

	res, err := c.wrapper.DoRequest(ctx, http.MethodPost, c.cfg.BaseURL+"/auth/token", func(r *resty.Request) *resty.Request {
		r = r.SetHeader("Authorization", "Basic "+basic)
		if loginName != "" {
			r = r.SetHeader("loginName", loginName)
		}
		return r
	})
	if err != nil {
		return "", providers.NewError(providerName, "token", 0, err)
	}
	if res.IsError() {
		return "", providers.NewError(providerName, "token", res.StatusCode(), fmt.Errorf("unexpected response: %s", res.Status()))
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return "", providers.NewError(providerName, "token", 0, fmt.Errorf("decode token: %w", err))
	}

	c.mu.Lock()
	c.tokens[loginName] = cachedToken{token: payload.Token, expiresAt: c.now().Add(tokenLifetime)}
	c.mu.Unlock()

	return payload.Token, nil
}

func (c *Client) get(ctx context.Context, op, loginName, url string, query map[string]string) ([]byte, error) {
	token, err := c.token(ctx, loginName)
	if err != nil {
		return nil, err
	}

	res, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, func(r *resty.Request) *resty.Request {
		return r.SetAuthToken(token).SetQueryParams(query)
	})
	if err != nil {
		return nil, providers.NewError(providerName, op, 0, err)
	}
	if res.IsError() {
		return nil, providers.NewError(providerName, op, res.StatusCode(), fmt.Errorf("unexpected response: %s", res.Status()))
	}
	return res.Body(), nil
}

type vzProvider struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	LogoURL     string `json:"logo"`
	Status      string `json:"status"`
	IsTestnet   bool   `json:"is_testnet"`
}

type vzAccount struct {
	ID       string `json:"id"`
	Provider struct {
		Name string `json:"name"`
		Type string `json:"resource_type"`
	} `json:"provider"`
	Fiat struct {
		Value    decimal.Decimal `json:"value"`
		Currency string          `json:"ticker"`
	} `json:"fiat_value"`
}

type vzTransaction struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"account"`
	Type       string          `json:"transaction_type"`
	FiatValue  decimal.Decimal `json:"fiat_value"`
	FiatTicker string          `json:"fiat_ticker"`
	Timestamp  int64           `json:"timestamp"`
	Status     string          `json:"status"`
}

func (c *Client) GetInstitutions(ctx context.Context) ([]providers.Institution, error) {
	body, err := c.get(ctx, "GetInstitutions", "", c.cfg.BaseURL+"/providers", nil)
	if err != nil {
		return nil, err
	}

	var page []vzProvider
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, providers.NewError(providerName, "GetInstitutions", 0, fmt.Errorf("decode providers: %w", err))
	}

	result := make([]providers.Institution, 0, len(page))
	for _, p := range page {
		result = append(result, providers.Institution{
			ProviderInstitutionID: p.Name,
			Name:                  p.DisplayName,
			LogoURL:               p.LogoURL,
			Enabled:               p.Status == "live",
			Demo:                  p.IsTestnet,
		})
	}
	return result, nil
}

func (c *Client) GetAccounts(ctx context.Context, providerUserID, connectionExternalID string) ([]providers.Account, error) {
	body, err := c.get(ctx, "GetAccounts", providerUserID, c.cfg.BaseURL+"/accounts", nil)
	if err != nil {
		return nil, err
	}

	var accounts []vzAccount
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, providers.NewError(providerName, "GetAccounts", 0, fmt.Errorf("decode accounts: %w", err))
	}

	result := make([]providers.Account, 0, len(accounts))
	for _, a := range accounts {
		if connectionExternalID != "" && a.Provider.Name != connectionExternalID {
			continue
		}

		nature := a.Provider.Type
		if nature == "" {
			nature = "crypto"
		}

		result = append(result, providers.Account{
			ProviderAccountID: a.ID,
			Name:              a.Provider.Name,
			Nature:            nature,
			Currency:          a.Fiat.Currency,
			Value:             a.Fiat.Value,
		})
	}
	return result, nil
}

func (c *Client) GetTransactions(ctx context.Context, connectionExternalID string, account providers.Account, since time.Time) ([]providers.Transaction, error) {
	query := map[string]string{}
	if !since.IsZero() {
		query["from"] = since.Format(time.DateOnly)
	}

	url := c.cfg.BaseURL + "/accounts/" + account.ProviderAccountID + "/transactions"
	body, err := c.get(ctx, "GetTransactions", connectionExternalID, url, query)
	if err != nil {
		return nil, err
	}

	var txs []vzTransaction
	if err := json.Unmarshal(body, &txs); err != nil {
		return nil, providers.NewError(providerName, "GetTransactions", 0, fmt.Errorf("decode transactions: %w", err))
	}

	result := make([]providers.Transaction, 0, len(txs))
	for _, tx := range txs {
		result = append(result, providers.Transaction{
			ProviderTransactionID: tx.ID,
			ProviderAccountID:     tx.AccountID,
			Amount:                tx.FiatValue,
			Currency:              tx.FiatTicker,
			Date:                  time.Unix(tx.Timestamp, 0).UTC(),
			Category:              tx.Type,
			Pending:               tx.Status == "pending",
		})
	}
	return result, nil
}

// Register needs no upstream call: Vezgo scopes users by loginName on the
// token exchange, so the user exists once a token is minted for it.
func (c *Client) Register(ctx context.Context, userID string) (providers.Registration, error) {
	if _, err := c.token(ctx, userID); err != nil {
		return providers.Registration{}, err
	}
	return providers.Registration{ProviderUserID: userID}, nil
}

func (c *Client) Deregister(ctx context.Context, providerUserID string) error {
	token, err := c.token(ctx, "")
	if err != nil {
		return err
	}

	res, err := c.wrapper.DoRequest(ctx, http.MethodDelete, c.cfg.BaseURL+"/users/"+providerUserID, func(r *resty.Request) *resty.Request {
		return r.SetAuthToken(token)
	})
	if err != nil {
		return providers.NewError(providerName, "Deregister", 0, err)
	}
	if res.IsError() {
		return providers.NewError(providerName, "Deregister", res.StatusCode(), fmt.Errorf("unexpected response: %s", res.Status()))
	}

	c.mu.Lock()
	delete(c.tokens, providerUserID)
	c.mu.Unlock()

	return nil
}
