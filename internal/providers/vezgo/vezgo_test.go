package vezgo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	xlog "bitbucket.org/Amartha/go-x/log"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/httpclient"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newTestClient(baseURL string) *Client {
	wrapper := httpclient.NewRequestWrapper(resty.New(), nil, "vezgo", "[VEZGO TEST]")
	return New(config.VezgoConfig{
		BaseURL:   baseURL,
		ClientID:  "client-1",
		APISecret: "secret-1",
	}, wrapper)
}

func TestToken_CachedPerLogin(t *testing.T) {
	var tokenCalls int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token":
			atomic.AddInt64(&tokenCalls, 1)
			assert.NotEmpty(t, r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-" + r.Header.Get("loginName")})
		case "/accounts":
			_ = json.NewEncoder(w).Encode([]map[string]any{})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.GetAccounts(context.Background(), "user-1", "")
	require.NoError(t, err)
	_, err = c.GetAccounts(context.Background(), "user-1", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&tokenCalls))
}

func TestToken_RefreshesAfterExpiry(t *testing.T) {
	var tokenCalls int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token" {
			atomic.AddInt64(&tokenCalls, 1)
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	current := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	_, err := c.GetAccounts(context.Background(), "user-1", "")
	require.NoError(t, err)

	current = current.Add(tokenLifetime + time.Minute)
	_, err = c.GetAccounts(context.Background(), "user-1", "")
	require.NoError(t, err)

	assert.Equal(t, int64(2), atomic.LoadInt64(&tokenCalls))
}

func TestGetAccounts_DefaultsNature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token" {
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
			return
		}

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":         "acc-1",
				"provider":   map[string]any{"name": "coinbase", "resource_type": "exchange"},
				"fiat_value": map[string]any{"value": "1234.56", "ticker": "USD"},
			},
			{
				"id":         "acc-2",
				"provider":   map[string]any{"name": "ledger", "resource_type": ""},
				"fiat_value": map[string]any{"value": "10", "ticker": "USD"},
			},
		})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GetAccounts(context.Background(), "user-1", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "exchange", got[0].Nature)
	assert.Equal(t, "crypto", got[1].Nature)
}

func TestGetTransactions_UnixTimestamps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token" {
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
			return
		}
		require.Equal(t, "/accounts/acc-1/transactions", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "tx-1", "account": "acc-1", "transaction_type": "deposit", "fiat_value": "50", "fiat_ticker": "USD", "timestamp": 1754042400, "status": "completed"},
		})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GetTransactions(context.Background(), "user-1", providers.Account{ProviderAccountID: "acc-1"}, time.Time{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.Unix(1754042400, 0).UTC(), got[0].Date)
	assert.False(t, got[0].Pending)
}
