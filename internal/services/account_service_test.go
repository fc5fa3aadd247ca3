package services_test

import (
	"context"
	"testing"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountService_GetList(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	opts := models.AccountFilterOptions{UserID: "user-1"}

	testHelper.mockAccountRepository.EXPECT().
		GetList(gomock.Any(), opts).
		Return([]models.Account{
			{ID: 1, Name: "Checking", Currency: "EUR", Value: decimal.RequireFromString("92")},
		}, nil)
	testHelper.mockRateRepository.EXPECT().
		GetLatest(gomock.Any()).
		Return([]models.Rate{{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92")}}, nil)
	testHelper.mockAccountRepository.EXPECT().
		CountAll(gomock.Any(), opts).Return(1, nil)

	accounts, total, err := testHelper.accountService.GetList(ctx, opts, "")

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, accounts, 1)
	// empty display currency falls back to the configured base
	assert.Equal(t, "USD", accounts[0].DisplayCurrency)
	assert.Equal(t, "100.00", accounts[0].DisplayValue.StringFixed(2))
}

func TestAccountService_GetOneByID(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockAccountRepository.EXPECT().
		GetOneByID(gomock.Any(), 42).
		Return(models.Account{}, common.ErrDataNotFound)

	_, err := testHelper.accountService.GetOneByID(ctx, 42)
	assert.Error(t, err)
}

func TestAccountService_GetNetWorth(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockAccountRepository.EXPECT().
		GetList(gomock.Any(), models.AccountFilterOptions{UserID: "user-1"}).
		Return([]models.Account{
			{Type: models.AccountTypeAsset, Currency: "USD", Value: decimal.RequireFromString("1000")},
			{Type: models.AccountTypeAsset, Currency: "EUR", Value: decimal.RequireFromString("92")},
			{Type: models.AccountTypeLiability, Currency: "USD", Value: decimal.RequireFromString("400")},
		}, nil)
	testHelper.mockRateRepository.EXPECT().
		GetLatest(gomock.Any()).
		Return([]models.Rate{{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92")}}, nil).
		AnyTimes()

	result, err := testHelper.accountService.GetNetWorth(ctx, "user-1", "USD")

	require.NoError(t, err)
	assert.Equal(t, "USD", result.Currency)
	assert.Equal(t, "1100.00", result.Assets.StringFixed(2))
	assert.Equal(t, "400.00", result.Liabilities.StringFixed(2))
	assert.Equal(t, "700.00", result.Total.StringFixed(2))
}

func TestAccountService_GetNetWorth_MissingRate(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockAccountRepository.EXPECT().
		GetList(gomock.Any(), models.AccountFilterOptions{UserID: "user-1"}).
		Return([]models.Account{
			{Type: models.AccountTypeAsset, Currency: "JPY", Value: decimal.RequireFromString("5000")},
		}, nil)
	testHelper.mockRateRepository.EXPECT().
		GetLatest(gomock.Any()).
		Return([]models.Rate{{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92")}}, nil)

	_, err := testHelper.accountService.GetNetWorth(ctx, "user-1", "USD")
	assert.Error(t, err)
}
