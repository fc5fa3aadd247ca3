package services

import (
	"context"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"

	"github.com/shopspring/decimal"
)

type AccountService interface {
	GetList(ctx context.Context, opts models.AccountFilterOptions, displayCurrency string) (accounts []models.AccountView, total int, err error)
	GetOneByID(ctx context.Context, id int) (result models.Account, err error)
	// GetNetWorth sums converted balances per canonical type. Liability
	// values are stored positive and subtracted here.
	GetNetWorth(ctx context.Context, userID, displayCurrency string) (result models.NetWorth, err error)
}

type account service

var _ AccountService = (*account)(nil)

func (as *account) GetList(ctx context.Context, opts models.AccountFilterOptions, displayCurrency string) (accounts []models.AccountView, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	accRepo := as.srv.sqlRepo.GetAccountRepository()

	stored, err := accRepo.GetList(ctx, opts)
	if err != nil {
		return
	}

	if displayCurrency == "" {
		displayCurrency = as.srv.conf.Rates.BaseCurrency
	}

	accounts = make([]models.AccountView, 0, len(stored))
	for _, acc := range stored {
		view := models.AccountView{Account: acc, DisplayCurrency: displayCurrency}
		view.DisplayValue, err = as.srv.Rate.Convert(ctx, acc.Value, acc.Currency, displayCurrency)
		if err != nil {
			return
		}
		accounts = append(accounts, view)
	}

	total, err = accRepo.CountAll(ctx, opts)
	return
}

func (as *account) GetOneByID(ctx context.Context, id int) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyAccountNotFound)
	}
	return
}

func (as *account) GetNetWorth(ctx context.Context, userID, displayCurrency string) (result models.NetWorth, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if displayCurrency == "" {
		displayCurrency = as.srv.conf.Rates.BaseCurrency
	}

	stored, err := as.srv.sqlRepo.GetAccountRepository().GetList(ctx, models.AccountFilterOptions{UserID: userID})
	if err != nil {
		return
	}

	result = models.NetWorth{
		Currency:    displayCurrency,
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
	}

	for _, acc := range stored {
		converted, convErr := as.srv.Rate.Convert(ctx, acc.Value, acc.Currency, displayCurrency)
		if convErr != nil {
			err = convErr
			return
		}

		switch acc.Type {
		case models.AccountTypeAsset:
			result.Assets = result.Assets.Add(converted)
		case models.AccountTypeLiability:
			result.Liabilities = result.Liabilities.Add(converted)
		}
	}

	result.Total = result.Assets.Sub(result.Liabilities)
	return
}
