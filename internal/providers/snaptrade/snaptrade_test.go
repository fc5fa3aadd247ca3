package snaptrade

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	xlog "bitbucket.org/Amartha/go-x/log"
	"github.com/go-resty/resty/v2"
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
	wrapper := httpclient.NewRequestWrapper(resty.New(), nil, "snaptrade", "[SNAPTRADE TEST]")
	c := New(config.SnapTradeConfig{
		BaseURL:     baseURL,
		ClientID:    "client-1",
		ConsumerKey: "consumer-key",
		RedirectURI: "https://app.example.com/linked",
	}, wrapper)
	c.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestSign_IsDeterministic(t *testing.T) {
	c := newTestClient("http://unused")

	query := url.Values{}
	query.Set("userId", "u1")
	query.Set("clientId", "client-1")

	first, err := c.sign("/api/v1/accounts", query, nil)
	require.NoError(t, err)
	second, err := c.sign("/api/v1/accounts", query, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)

	other, err := c.sign("/api/v1/activities", query, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestGetInstitutions_SendsClientIDAndSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/brokerages", r.URL.Path)
		assert.Equal(t, "client-1", r.URL.Query().Get("clientId"))
		assert.NotEmpty(t, r.URL.Query().Get("timestamp"))
		assert.NotEmpty(t, r.Header.Get("Signature"))

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "brk-1", "name": "Questrade", "enabled": true, "maintenance_mode": false},
			{"id": "brk-2", "name": "Downbroker", "enabled": true, "maintenance_mode": true},
		})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GetInstitutions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Enabled)
	assert.False(t, got[1].Enabled)
}

func TestGetAccounts_RequiresPackedIdentity(t *testing.T) {
	_, err := newTestClient("http://unused").GetAccounts(context.Background(), "no-secret-here", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user secret")
}

func TestGetAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/accounts", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		assert.Equal(t, "sec1", r.URL.Query().Get("userSecret"))

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id": "acc-1", "name": "TFSA", "raw_type": "TFSA", "institution_name": "Questrade",
				"balance": map[string]any{"total": map[string]any{"amount": 9000.5, "currency": "CAD"}},
			},
		})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GetAccounts(context.Background(), "u1:sec1", "Questrade")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tfsa", got[0].Nature)
	assert.Equal(t, "CAD", got[0].Currency)
}

func TestRegister_PacksUserSecretAndReturnsRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/snapTrade/registerUser":
			_ = json.NewEncoder(w).Encode(map[string]string{"userId": "u1", "userSecret": "sec1"})
		case "/api/v1/snapTrade/login":
			assert.Equal(t, "u1", r.URL.Query().Get("userId"))
			_ = json.NewEncoder(w).Encode(map[string]string{"redirectURI": "https://app.snaptrade.com/connect/abc"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Register(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1:sec1", got.ProviderUserID)
	assert.Equal(t, "https://app.snaptrade.com/connect/abc", got.RedirectURL)
}
