package account

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Handler_getAllAccount(t *testing.T) {
	testHelper := accountTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/accounts?userId=user-1&currency=USD",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"id":10,"institutionConnectionId":3,"providerAccountId":"acc-1","name":"Main Checking","type":"asset","subtype":"depository","currency":"EUR","value":"92","costBasis":"0","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z","displayCurrency":"USD","displayValue":"100"}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetList(context.Background(), models.AccountFilterOptions{UserID: "user-1"}, "USD").
					Return([]models.AccountView{{
						Account: models.Account{
							ID:                      10,
							InstitutionConnectionID: 3,
							ProviderAccountID:       "acc-1",
							Name:                    "Main Checking",
							Type:                    models.AccountTypeAsset,
							Subtype:                 models.AccountSubtypeDepository,
							Currency:                "EUR",
							Value:                   decimal.RequireFromString("92"),
						},
						DisplayCurrency: "USD",
						DisplayValue:    decimal.RequireFromString("100"),
					}}, 1, nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/accounts?userId=user-1&type=weird",
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"INVALID_VALUE","field":"type","message":"field has an unsupported value"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error missing rate",
			urlCalled: "/api/v1/accounts?userId=user-1&currency=JPY",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"RATE_NOT_FOUND","message":"no exchange rate stored for requested day"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetList(context.Background(), models.AccountFilterOptions{UserID: "user-1"}, "JPY").
					Return(nil, 0, models.GetErrMap(models.ErrKeyRateNotFound))
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_getNetWorth(t *testing.T) {
	testHelper := accountTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/accounts/net-worth?userId=user-1&currency=USD",
			expectation: Expectation{
				wantRes:  `{"currency":"USD","assets":"1100","liabilities":"400","total":"700"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetNetWorth(context.Background(), "user-1", "USD").
					Return(models.NetWorth{
						Currency:    "USD",
						Assets:      decimal.RequireFromString("1100"),
						Liabilities: decimal.RequireFromString("400"),
						Total:       decimal.RequireFromString("700"),
					}, nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/accounts/net-worth?currency=US",
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"MISSING_FIELD","field":"userId","message":"field is missing"},{"code":"INVALID_CURRENCY_CODE","field":"currency","message":"field must be a 3-letter ISO-4217 code"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/accounts/net-worth?userId=user-1",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetNetWorth(context.Background(), "user-1", "").
					Return(models.NetWorth{}, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_getOneAccount(t *testing.T) {
	testHelper := accountTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/accounts/10",
			expectation: Expectation{
				wantRes:  `{"id":10,"institutionConnectionId":3,"providerAccountId":"acc-1","name":"Main Checking","type":"asset","subtype":"depository","currency":"EUR","value":"92","costBasis":"0","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetOneByID(context.Background(), 10).
					Return(models.Account{
						ID:                      10,
						InstitutionConnectionID: 3,
						ProviderAccountID:       "acc-1",
						Name:                    "Main Checking",
						Type:                    models.AccountTypeAsset,
						Subtype:                 models.AccountSubtypeDepository,
						Currency:                "EUR",
						Value:                   decimal.RequireFromString("92"),
					}, nil)
			},
		},
		{
			name:      "error invalid id",
			urlCalled: "/api/v1/accounts/abc",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":400,"message":"id must be a number"}`,
				wantCode: 400,
			},
		},
		{
			name:      "error not found",
			urlCalled: "/api/v1/accounts/99",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"ACCOUNT_NOT_FOUND","message":"account not found"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetOneByID(context.Background(), 99).
					Return(models.Account{}, models.GetErrMap(models.ErrKeyAccountNotFound))
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
