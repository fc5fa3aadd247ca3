// Package snaptrade wraps the SnapTrade brokerage API. Every request carries
// clientId and timestamp query parameters plus a Signature header, an HMAC
// over the request path, query and body keyed by the consumer key. User
// identity is a (userId, userSecret) pair issued at registration.
package snaptrade

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/httpclient"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const providerName = "snaptrade"

type Client struct {
	cfg     config.SnapTradeConfig
	wrapper *httpclient.RequestWrapper
	now     func() time.Time
}

var _ providers.Adapter = (*Client)(nil)

func New(cfg config.SnapTradeConfig, wrapper *httpclient.RequestWrapper) *Client {
	return &Client{cfg: cfg, wrapper: wrapper, now: time.Now}
}

func (c *Client) Name() string { return providerName }

func (c *Client) KnownNatures() []string {
	return []string{
		"investment", "brokerage", "tfsa", "rrsp", "ira", "roth_ira", "401k",
		"pension", "crypto", "savings",
	}
}

// sign produces the Signature header for one request: base64 HMAC-SHA256 of
// a canonical JSON object {content, path, query} keyed by the consumer key.
func (c *Client) sign(path string, query url.Values, body any) (string, error) {
	sigObject := map[string]any{
		"content": body,
		"path":    path,
		"query":   canonicalQuery(query),
	}
	encoded, err := json.Marshal(sigObject)
	if err != nil {
		return "", fmt.Errorf("encode signature object: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(c.cfg.ConsumerKey))
	mac.Write(encoded)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// canonicalQuery renders query parameters sorted by key so the signature is
// independent of map iteration order.
func canonicalQuery(query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range query[k] {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, "&")
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (*resty.Response, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("clientId", c.cfg.ClientID)
	query.Set("timestamp", fmt.Sprint(c.now().Unix()))

	signature, err := c.sign(path, query, body)
	if err != nil {
		return nil, providers.NewError(providerName, op, 0, err)
	}

	res, err := c.wrapper.DoRequest(ctx, method, c.cfg.BaseURL+path, func(r *resty.Request) *resty.Request {
		r = r.SetHeader("Signature", signature).SetQueryParamsFromValues(query)
		if body != nil {
			r = r.SetBody(body)
		}
		return r
	})
	if err != nil {
		return nil, providers.NewError(providerName, op, 0, err)
	}
	if res.IsError() {
		return nil, providers.NewError(providerName, op, res.StatusCode(), fmt.Errorf("unexpected response: %s", res.Status()))
	}
	return res, nil
}

type stBrokerage struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	LogoURL         string `json:"aws_s3_logo_url"`
	Enabled         bool   `json:"enabled"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

type stAccount struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RawType         string `json:"raw_type"`
	InstitutionName string `json:"institution_name"`
	Balance         struct {
		Total struct {
			Amount   decimal.Decimal `json:"amount"`
			Currency string          `json:"currency"`
		} `json:"total"`
	} `json:"balance"`
	Meta map[string]any `json:"meta"`
}

type stActivity struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    struct {
		Code string `json:"code"`
	} `json:"currency"`
	TradeDate time.Time `json:"trade_date"`
	Account   struct {
		ID string `json:"id"`
	} `json:"account"`
}

func (c *Client) GetInstitutions(ctx context.Context) ([]providers.Institution, error) {
	res, err := c.do(ctx, "GetInstitutions", http.MethodGet, "/api/v1/brokerages", nil, nil)
	if err != nil {
		return nil, err
	}

	var brokerages []stBrokerage
	if err := json.Unmarshal(res.Body(), &brokerages); err != nil {
		return nil, providers.NewError(providerName, "GetInstitutions", 0, fmt.Errorf("decode brokerages: %w", err))
	}

	result := make([]providers.Institution, 0, len(brokerages))
	for _, b := range brokerages {
		result = append(result, providers.Institution{
			ProviderInstitutionID: b.ID,
			Name:                  b.Name,
			LogoURL:               b.LogoURL,
			Enabled:               b.Enabled && !b.MaintenanceMode,
		})
	}
	return result, nil
}

func (c *Client) GetAccounts(ctx context.Context, providerUserID, connectionExternalID string) ([]providers.Account, error) {
	userID, userSecret, err := splitUserIdentity(providerUserID)
	if err != nil {
		return nil, providers.NewError(providerName, "GetAccounts", 0, err)
	}

	query := url.Values{}
	query.Set("userId", userID)
	query.Set("userSecret", userSecret)

	res, err := c.do(ctx, "GetAccounts", http.MethodGet, "/api/v1/accounts", query, nil)
	if err != nil {
		return nil, err
	}

	var accounts []stAccount
	if err := json.Unmarshal(res.Body(), &accounts); err != nil {
		return nil, providers.NewError(providerName, "GetAccounts", 0, fmt.Errorf("decode accounts: %w", err))
	}

	result := make([]providers.Account, 0, len(accounts))
	for _, a := range accounts {
		if connectionExternalID != "" && a.InstitutionName != connectionExternalID {
			continue
		}
		result = append(result, providers.Account{
			ProviderAccountID: a.ID,
			Name:              a.Name,
			Nature:            strings.ToLower(a.RawType),
			Currency:          a.Balance.Total.Currency,
			Value:             a.Balance.Total.Amount,
			Extra:             a.Meta,
		})
	}
	return result, nil
}

func (c *Client) GetTransactions(ctx context.Context, connectionExternalID string, account providers.Account, since time.Time) ([]providers.Transaction, error) {
	query := url.Values{}
	query.Set("accounts", account.ProviderAccountID)
	if !since.IsZero() {
		query.Set("startDate", since.Format(time.DateOnly))
	}

	res, err := c.do(ctx, "GetTransactions", http.MethodGet, "/api/v1/activities", query, nil)
	if err != nil {
		return nil, err
	}

	var activities []stActivity
	if err := json.Unmarshal(res.Body(), &activities); err != nil {
		return nil, providers.NewError(providerName, "GetTransactions", 0, fmt.Errorf("decode activities: %w", err))
	}

	result := make([]providers.Transaction, 0, len(activities))
	for _, act := range activities {
		result = append(result, providers.Transaction{
			ProviderTransactionID: act.ID,
			ProviderAccountID:     act.Account.ID,
			Amount:                act.Amount,
			Currency:              act.Currency.Code,
			Date:                  act.TradeDate,
			Category:              strings.ToLower(act.Type),
			Description:           act.Description,
		})
	}
	return result, nil
}

// Register creates a SnapTrade user. SnapTrade returns a per-user secret
// that must accompany every later call, so both halves are packed into the
// stored provider user id.
func (c *Client) Register(ctx context.Context, userID string) (providers.Registration, error) {
	res, err := c.do(ctx, "Register", http.MethodPost, "/api/v1/snapTrade/registerUser", nil, map[string]string{"userId": userID})
	if err != nil {
		return providers.Registration{}, err
	}

	var registered struct {
		UserID     string `json:"userId"`
		UserSecret string `json:"userSecret"`
	}
	if err := json.Unmarshal(res.Body(), &registered); err != nil {
		return providers.Registration{}, providers.NewError(providerName, "Register", 0, fmt.Errorf("decode registration: %w", err))
	}

	loginQuery := url.Values{}
	loginQuery.Set("userId", registered.UserID)
	loginQuery.Set("userSecret", registered.UserSecret)
	loginBody := map[string]string{"customRedirect": c.cfg.RedirectURI}

	loginRes, err := c.do(ctx, "Register", http.MethodPost, "/api/v1/snapTrade/login", loginQuery, loginBody)
	if err != nil {
		return providers.Registration{}, err
	}

	var login struct {
		RedirectURI string `json:"redirectURI"`
	}
	if err := json.Unmarshal(loginRes.Body(), &login); err != nil {
		return providers.Registration{}, providers.NewError(providerName, "Register", 0, fmt.Errorf("decode login: %w", err))
	}

	return providers.Registration{
		ProviderUserID: joinUserIdentity(registered.UserID, registered.UserSecret),
		RedirectURL:    login.RedirectURI,
	}, nil
}

func (c *Client) Deregister(ctx context.Context, providerUserID string) error {
	userID, _, err := splitUserIdentity(providerUserID)
	if err != nil {
		return providers.NewError(providerName, "Deregister", 0, err)
	}

	query := url.Values{}
	query.Set("userId", userID)

	_, err = c.do(ctx, "Deregister", http.MethodDelete, "/api/v1/snapTrade/deleteUser", query, nil)
	return err
}

func joinUserIdentity(userID, userSecret string) string {
	return userID + ":" + userSecret
}

func splitUserIdentity(providerUserID string) (userID, userSecret string, err error) {
	userID, userSecret, ok := strings.Cut(providerUserID, ":")
	if !ok {
		return "", "", fmt.Errorf("provider user id is missing the user secret")
	}
	return userID, userSecret, nil
}
