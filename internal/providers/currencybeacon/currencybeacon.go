// Package currencybeacon implements the exchange-rate source against the
// Currency Beacon API.
package currencybeacon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/httpclient"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const sourceName = "currencybeacon"

type Client struct {
	cfg     config.RatesConfig
	wrapper *httpclient.RequestWrapper
}

var _ providers.RateSource = (*Client)(nil)

func New(cfg config.RatesConfig, wrapper *httpclient.RequestWrapper) *Client {
	return &Client{cfg: cfg, wrapper: wrapper}
}

func (c *Client) Name() string { return sourceName }

// Latest fetches today's rates quoted against base. Currency Beacon wraps
// the payload in a response envelope.
func (c *Client) Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	res, err := c.wrapper.DoRequest(ctx, http.MethodGet, c.cfg.BaseURL+"/v1/latest", func(r *resty.Request) *resty.Request {
		return r.SetQueryParams(map[string]string{
			"api_key": c.cfg.APIKey,
			"base":    base,
		})
	})
	if err != nil {
		return nil, providers.NewError(sourceName, "Latest", 0, err)
	}
	if res.IsError() {
		return nil, providers.NewError(sourceName, "Latest", res.StatusCode(), fmt.Errorf("unexpected response: %s", res.Status()))
	}

	var payload struct {
		Response struct {
			Base  string                     `json:"base"`
			Date  string                     `json:"date"`
			Rates map[string]decimal.Decimal `json:"rates"`
		} `json:"response"`
	}
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, providers.NewError(sourceName, "Latest", 0, fmt.Errorf("decode rates: %w", err))
	}

	if len(payload.Response.Rates) == 0 {
		return nil, providers.NewError(sourceName, "Latest", 0, fmt.Errorf("empty rate table for base %s", base))
	}
	return payload.Response.Rates, nil
}
