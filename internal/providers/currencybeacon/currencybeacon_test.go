package currencybeacon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	xlog "bitbucket.org/Amartha/go-x/log"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/httpclient"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newTestClient(baseURL string) *Client {
	wrapper := httpclient.NewRequestWrapper(resty.New(), nil, "currencybeacon", "[RATES TEST]")
	return New(config.RatesConfig{BaseURL: baseURL, APIKey: "key-1"}, wrapper)
}

func TestLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/latest", r.URL.Path)
		assert.Equal(t, "key-1", r.URL.Query().Get("api_key"))
		assert.Equal(t, "USD", r.URL.Query().Get("base"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": map[string]any{
				"base": "USD",
				"date": "2026-08-29",
				"rates": map[string]any{
					"USD": 1,
					"EUR": 0.92,
					"IDR": 16250.0,
				},
			},
		})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Latest(context.Background(), "USD")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, decimal.NewFromFloat(0.92).Equal(got["EUR"]))
}

func TestLatest_EmptyTableIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"response": map[string]any{"rates": map[string]any{}}})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Latest(context.Background(), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty rate table")
}

func TestLatest_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Latest(context.Background(), "USD")
	require.Error(t, err)
}
