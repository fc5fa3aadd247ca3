package services_test

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRateService_Refresh(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockRateSource.EXPECT().
		Latest(gomock.Any(), "USD").
		Return(map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.92"),
			"zz":  decimal.NewFromInt(1), // not a currency code, skipped
		}, nil)

	testHelper.mockSyncRunRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	testHelper.mockSyncRunRepository.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.SyncRunFetching).Return(nil)
	testHelper.mockSyncRunRepository.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.SyncRunTransforming).Return(nil)
	testHelper.mockSyncRunRepository.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.SyncRunUpserting).Return(nil)

	testHelper.mockRateRepository.EXPECT().
		SeedCurrency(gomock.Any(), "EUR").Return(nil)
	testHelper.mockRateRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, up models.RateUpsert) error {
			assert.Equal(t, "EUR", up.CurrencyCode)
			assert.True(t, up.Rate.Equal(decimal.RequireFromString("0.92")))
			return nil
		})

	testHelper.mockSyncRunRepository.EXPECT().
		Finish(gomock.Any(), gomock.Any()).Return(nil)

	run, err := testHelper.rateService.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncRunDone, run.Status)
	assert.Equal(t, models.SyncRunRates, run.Kind)
	assert.Equal(t, 1, run.RecordsUpserted)
	assert.Equal(t, 1, run.RecordsSkipped)
}

func TestRateService_Refresh_SourceDown(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockSyncRunRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	testHelper.mockSyncRunRepository.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.SyncRunFetching).Return(nil)

	// transient failures are retried once given the test backoff budget
	testHelper.mockRateSource.EXPECT().
		Latest(gomock.Any(), "USD").
		Return(nil, assert.AnError).
		Times(2)

	testHelper.mockSyncRunRepository.EXPECT().
		Finish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run models.SyncRun) error {
			assert.Equal(t, models.SyncRunFailed, run.Status)
			assert.NotEmpty(t, run.Error)
			return nil
		})

	_, err := testHelper.rateService.Refresh(ctx)
	assert.Error(t, err)
}

func TestRateService_Refresh_StatusWriteFailureClosesRun(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockSyncRunRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	testHelper.mockSyncRunRepository.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.SyncRunFetching).
		Return(assert.AnError)

	// the ledger row is still closed as failed when the status write breaks
	testHelper.mockSyncRunRepository.EXPECT().
		Finish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run models.SyncRun) error {
			assert.Equal(t, models.SyncRunFailed, run.Status)
			assert.False(t, run.FinishedAt.IsZero())
			return nil
		})

	_, err := testHelper.rateService.Refresh(ctx)
	assert.Error(t, err)
}

func TestRateService_GetTable(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	// a table is served even when the newest rows are days old; the Date
	// field carries the staleness
	staleDay := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	testHelper.mockRateRepository.EXPECT().
		GetLatest(gomock.Any()).
		Return([]models.Rate{
			{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92"), Date: staleDay},
			{CurrencyCode: "GBP", Rate: decimal.RequireFromString("0.79"), Date: staleDay.AddDate(0, 0, -1)},
		}, nil)

	table, err := testHelper.rateService.GetTable(ctx)

	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.Equal(t, staleDay, table.Date)
	assert.True(t, table.Rates["EUR"].Equal(decimal.RequireFromString("0.92")))
	assert.True(t, table.Rates["GBP"].Equal(decimal.RequireFromString("0.79")))
}

func TestRateService_GetTable_Empty(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockRateRepository.EXPECT().GetLatest(gomock.Any()).Return(nil, nil)

	_, err := testHelper.rateService.GetTable(ctx)
	assert.Error(t, err)
}

func TestRateService_Convert(t *testing.T) {
	rates := []models.Rate{
		{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92")},
		{CurrencyCode: "GBP", Rate: decimal.RequireFromString("0.79")},
	}

	type args struct {
		amount string
		from   string
		to     string
	}
	tests := []struct {
		name      string
		args      args
		loadTable bool
		want      string
		wantErr   bool
	}{
		{
			name:      "to the base",
			args:      args{amount: "100", from: "EUR", to: "USD"},
			loadTable: true,
			want:      "108.70",
		},
		{
			name:      "from the base",
			args:      args{amount: "100", from: "USD", to: "EUR"},
			loadTable: true,
			want:      "92.00",
		},
		{
			name:      "cross currency through the base",
			args:      args{amount: "92", from: "EUR", to: "GBP"},
			loadTable: true,
			want:      "79.00",
		},
		{
			name: "same currency is identity",
			args: args{amount: "55.10", from: "usd", to: "USD"},
			want: "55.10",
		},
		{
			name:      "missing rate",
			args:      args{amount: "100", from: "JPY", to: "USD"},
			loadTable: true,
			wantErr:   true,
		},
		{
			name:    "invalid currency code",
			args:    args{amount: "100", from: "eu", to: "USD"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			testHelper := serviceTestHelper(t)
			if tt.loadTable {
				testHelper.mockRateRepository.EXPECT().GetLatest(gomock.Any()).Return(rates, nil)
			}

			got, err := testHelper.rateService.Convert(
				context.Background(),
				decimal.RequireFromString(tt.args.amount),
				tt.args.from, tt.args.to,
			)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
