// Package enablebanking wraps the Enable Banking open-banking API. Every
// request is authenticated with a short-lived RS256 JWT signed by the
// application's private key; the application id travels in the token's kid
// header.
package enablebanking

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/httpclient"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
)

const providerName = "enablebanking"

const tokenLifetime = 10 * time.Minute

type Client struct {
	cfg        config.EnableBankingConfig
	wrapper    *httpclient.RequestWrapper
	privateKey *rsa.PrivateKey
	now        func() time.Time

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

var _ providers.Adapter = (*Client)(nil)

func New(cfg config.EnableBankingConfig, wrapper *httpclient.RequestWrapper) (*Client, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("parse enablebanking private key: %w", err)
	}
	return &Client{cfg: cfg, wrapper: wrapper, privateKey: key, now: time.Now}, nil
}

func (c *Client) Name() string { return providerName }

func (c *Client) KnownNatures() []string {
	// Enable Banking reports ISO 20022 cash-account codes.
	return []string{"cacc", "svgs", "tran", "card", "loan"}
}

// bearer mints (or reuses) the signed application JWT.
func (c *Client) bearer() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExp) {
		return c.token, nil
	}

	now := c.now()
	claims := jwt.MapClaims{
		"iss": "enablebanking.com",
		"aud": "api.enablebanking.com",
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = c.cfg.ApplicationID

	signed, err := token.SignedString(c.privateKey)
	if err != nil {
		return "", fmt.Errorf("sign application token: %w", err)
	}

	c.token = signed
	c.tokenExp = now.Add(tokenLifetime - time.Minute)
	return signed, nil
}

func (c *Client) do(ctx context.Context, op, method, url string, query map[string]string, body any) ([]byte, error) {
	bearer, err := c.bearer()
	if err != nil {
		return nil, providers.NewError(providerName, op, 0, err)
	}

	res, err := c.wrapper.DoRequest(ctx, method, url, func(r *resty.Request) *resty.Request {
		r = r.SetAuthToken(bearer).SetQueryParams(query)
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
	return res.Body(), nil
}

type ebASPSP struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	LogoURL string `json:"logo"`
	Sandbox bool   `json:"sandbox"`
	Beta    bool   `json:"beta"`
}

type ebAccount struct {
	UID             string `json:"uid"`
	Name            string `json:"name"`
	CashAccountType string `json:"cash_account_type"`
	Currency        string `json:"currency"`
	Balances        []struct {
		BalanceAmount struct {
			Amount   decimal.Decimal `json:"amount"`
			Currency string          `json:"currency"`
		} `json:"balance_amount"`
		BalanceType string `json:"balance_type"`
	} `json:"balances"`
}

type ebTransaction struct {
	EntryReference    string `json:"entry_reference"`
	TransactionAmount struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	} `json:"transaction_amount"`
	CreditDebitIndicator  string   `json:"credit_debit_indicator"`
	BookingDate           string   `json:"booking_date"`
	Status                string   `json:"status"`
	RemittanceInformation []string `json:"remittance_information"`
}

// GetInstitutions fetches the ASPSP directory for every configured country.
func (c *Client) GetInstitutions(ctx context.Context) ([]providers.Institution, error) {
	var result []providers.Institution

	countries := c.cfg.Countries
	if len(countries) == 0 {
		countries = []string{""}
	}

	for _, country := range countries {
		query := map[string]string{}
		if country != "" {
			query["country"] = country
		}

		body, err := c.do(ctx, "GetInstitutions", http.MethodGet, c.cfg.BaseURL+"/aspsps", query, nil)
		if err != nil {
			return nil, err
		}

		var payload struct {
			ASPSPs []ebASPSP `json:"aspsps"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, providers.NewError(providerName, "GetInstitutions", 0, fmt.Errorf("decode aspsps: %w", err))
		}

		for _, a := range payload.ASPSPs {
			result = append(result, providers.Institution{
				// ASPSP identity is (name, country); the directory has no
				// standalone id field.
				ProviderInstitutionID: a.Name + "/" + a.Country,
				Name:                  a.Name,
				LogoURL:               a.LogoURL,
				Country:               a.Country,
				Enabled:               !a.Beta,
				Demo:                  a.Sandbox,
			})
		}
	}

	return result, nil
}

func (c *Client) GetAccounts(ctx context.Context, providerUserID, connectionExternalID string) ([]providers.Account, error) {
	body, err := c.do(ctx, "GetAccounts", http.MethodGet, c.cfg.BaseURL+"/sessions/"+connectionExternalID, nil, nil)
	if err != nil {
		return nil, err
	}

	var session struct {
		Accounts []ebAccount `json:"accounts"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, providers.NewError(providerName, "GetAccounts", 0, fmt.Errorf("decode session: %w", err))
	}

	result := make([]providers.Account, 0, len(session.Accounts))
	for _, a := range session.Accounts {
		value := decimal.Zero
		for _, b := range a.Balances {
			// booked balance wins; fall back to whatever is reported first.
			if b.BalanceType == "XPCD" || value.IsZero() {
				value = b.BalanceAmount.Amount
			}
		}

		result = append(result, providers.Account{
			ProviderAccountID: a.UID,
			Name:              a.Name,
			Nature:            a.CashAccountType,
			Currency:          a.Currency,
			Value:             value,
		})
	}
	return result, nil
}

func (c *Client) GetTransactions(ctx context.Context, connectionExternalID string, account providers.Account, since time.Time) ([]providers.Transaction, error) {
	query := map[string]string{}
	if !since.IsZero() {
		query["date_from"] = since.Format(time.DateOnly)
	}

	url := c.cfg.BaseURL + "/accounts/" + account.ProviderAccountID + "/transactions"
	var result []providers.Transaction

	for {
		body, err := c.do(ctx, "GetTransactions", http.MethodGet, url, query, nil)
		if err != nil {
			return nil, err
		}

		var payload struct {
			Transactions    []ebTransaction `json:"transactions"`
			ContinuationKey string          `json:"continuation_key"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, providers.NewError(providerName, "GetTransactions", 0, fmt.Errorf("decode transactions: %w", err))
		}

		for _, tx := range payload.Transactions {
			booked, err := time.Parse(time.DateOnly, tx.BookingDate)
			if err != nil {
				return nil, providers.NewError(providerName, "GetTransactions", 0, fmt.Errorf("parse booking_date %q: %w", tx.BookingDate, err))
			}

			amount := tx.TransactionAmount.Amount
			if tx.CreditDebitIndicator == "DBIT" {
				amount = amount.Neg()
			}

			description := ""
			if len(tx.RemittanceInformation) > 0 {
				description = tx.RemittanceInformation[0]
			}

			result = append(result, providers.Transaction{
				ProviderTransactionID: tx.EntryReference,
				ProviderAccountID:     account.ProviderAccountID,
				Amount:                amount,
				Currency:              tx.TransactionAmount.Currency,
				Date:                  booked,
				Description:           description,
				Pending:               tx.Status == "PDNG",
			})
		}

		if payload.ContinuationKey == "" {
			break
		}
		query["continuation_key"] = payload.ContinuationKey
	}

	return result, nil
}

// Register starts a user authorization. Enable Banking has no standing user
// object; identity is the psu id echoed back on session creation, and the
// returned URL is where the user completes bank authentication.
func (c *Client) Register(ctx context.Context, userID string) (providers.Registration, error) {
	payload := map[string]any{
		"psu_id": userID,
		"state":  userID,
	}

	body, err := c.do(ctx, "Register", http.MethodPost, c.cfg.BaseURL+"/auth", nil, payload)
	if err != nil {
		return providers.Registration{}, err
	}

	var auth struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &auth); err != nil {
		return providers.Registration{}, providers.NewError(providerName, "Register", 0, fmt.Errorf("decode auth: %w", err))
	}

	return providers.Registration{ProviderUserID: userID, RedirectURL: auth.URL}, nil
}

func (c *Client) Deregister(ctx context.Context, providerUserID string) error {
	_, err := c.do(ctx, "Deregister", http.MethodDelete, c.cfg.BaseURL+"/psu/"+providerUserID, nil, nil)
	return err
}
