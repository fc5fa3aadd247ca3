package transaction

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/services/mock"

	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Handler_getAllTransaction(t *testing.T) {
	testHelper := transactionTestHelper(t)

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
			name:      "success with date window",
			urlCalled: "/api/v1/transactions?userId=user-1&dateFrom=2026-08-01&dateTo=2026-08-31",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"id":1,"accountId":10,"providerTransactionId":"pt-1","amount":"-12.5","currency":"USD","date":"2026-08-10T00:00:00Z","category":"groceries","description":"MARKET","pending":false,"createdAt":"0001-01-01T00:00:00Z"}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetList(context.Background(), models.TransactionFilterOptions{
						UserID:   "user-1",
						DateFrom: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
						DateTo:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
					}).
					Return([]models.Transaction{{
						ID:                    1,
						AccountID:             10,
						ProviderTransactionID: "pt-1",
						Amount:                decimal.RequireFromString("-12.5"),
						Currency:              "USD",
						Date:                  time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
						Category:              "groceries",
						Description:           "MARKET",
					}}, 1, nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/transactions?userId=user-1&dateFrom=01-08-2026",
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"INVALID_DATE","field":"dateFrom","message":"field must be formatted as YYYY-MM-DD"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/transactions?userId=user-1",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetList(context.Background(), models.TransactionFilterOptions{UserID: "user-1"}).
					Return(nil, 0, assert.AnError)
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

type testTransactionHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockTransactionService
}

func transactionTestHelper(t *testing.T) testTransactionHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockTransactionService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testTransactionHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
