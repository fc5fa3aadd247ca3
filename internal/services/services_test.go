package services_test

import (
	"context"
	"os"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/retry"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"
	mockProviders "bitbucket.org/Amartha/go-fp-aggregation/internal/providers/mock"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/repositories"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/repositories/mock"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/services"

	xlog "bitbucket.org/Amartha/go-x/log"

	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl *gomock.Controller
	config   config.Config

	mockSQLRepository         *mock.MockSQLRepository
	mockProviderRepository    *mock.MockProviderRepository
	mockInstitutionRepository *mock.MockInstitutionRepository
	mockConnectionRepository  *mock.MockConnectionRepository
	mockAccountRepository     *mock.MockAccountRepository
	mockTrxRepository         *mock.MockTransactionRepository
	mockRateRepository        *mock.MockRateRepository
	mockSyncRunRepository     *mock.MockSyncRunRepository

	mockRateSource *mockProviders.MockRateSource
	mockAdapters   map[string]*mockProviders.MockAdapter

	connectionService  services.ConnectionService
	institutionService services.InstitutionService
	accountService     services.AccountService
	transactionService services.TransactionService
	rateService        services.RateService
	syncService        services.SyncService
}

func serviceTestHelper(t *testing.T, adapterNames ...string) testServiceHelper {
	return serviceTestHelperWithConfig(t, nil, adapterNames...)
}

// serviceTestHelperWithConfig lets a test tweak the config before the
// services are built, for the non-default sync and rate settings.
func serviceTestHelperWithConfig(t *testing.T, mutateConf func(*config.Config), adapterNames ...string) testServiceHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockProviderRepository := mock.NewMockProviderRepository(mockCtrl)
	mockInstitutionRepository := mock.NewMockInstitutionRepository(mockCtrl)
	mockConnectionRepository := mock.NewMockConnectionRepository(mockCtrl)
	mockAccountRepository := mock.NewMockAccountRepository(mockCtrl)
	mockTransactionRepository := mock.NewMockTransactionRepository(mockCtrl)
	mockRateRepository := mock.NewMockRateRepository(mockCtrl)
	mockSyncRunRepository := mock.NewMockSyncRunRepository(mockCtrl)
	mockRateSource := mockProviders.NewMockRateSource(mockCtrl)

	mockSQLRepository.EXPECT().GetProviderRepository().Return(mockProviderRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetInstitutionRepository().Return(mockInstitutionRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetConnectionRepository().Return(mockConnectionRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetAccountRepository().Return(mockAccountRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetTransactionRepository().Return(mockTransactionRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetRateRepository().Return(mockRateRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetSyncRunRepository().Return(mockSyncRunRepository).AnyTimes()

	mockAdapters := make(map[string]*mockProviders.MockAdapter, len(adapterNames))
	adapters := make([]providers.Adapter, 0, len(adapterNames))
	for _, name := range adapterNames {
		adapter := mockProviders.NewMockAdapter(mockCtrl)
		adapter.EXPECT().Name().Return(name).AnyTimes()
		mockAdapters[name] = adapter
		adapters = append(adapters, adapter)
	}

	registry, err := providers.NewRegistry(adapters...)
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}

	conf := config.Config{
		Rates: config.RatesConfig{
			BaseCurrency: "USD",
			CacheTTL:     time.Minute,
		},
		// Sync deliberately stays zero-valued so tests exercise the
		// default: a failing provider does not stop the others
		Sync: config.SyncConfig{
			TransactionWindowDays: 90,
		},
		ExponentialBackoff: config.ExponentialBackOffConfig{
			// wide enough for the one retry the budget allows, so retry
			// behaviour stays observable without slowing the suite down
			MaxBackoffTime:    2 * time.Second,
			BackoffMultiplier: 1.1,
			MaxRetries:        1,
		},
	}
	if mutateConf != nil {
		mutateConf(&conf)
	}

	serv := services.New(
		conf,
		mockSQLRepository,
		registry,
		mockRateSource,
		nil, // rate cache, table reads fall through to storage
		retry.NewExponentialBackOff(&conf.ExponentialBackoff),
		nil, // metrics
	)

	return testServiceHelper{
		mockCtrl:                  mockCtrl,
		config:                    conf,
		mockSQLRepository:         mockSQLRepository,
		mockProviderRepository:    mockProviderRepository,
		mockInstitutionRepository: mockInstitutionRepository,
		mockConnectionRepository:  mockConnectionRepository,
		mockAccountRepository:     mockAccountRepository,
		mockTrxRepository:         mockTransactionRepository,
		mockRateRepository:        mockRateRepository,
		mockSyncRunRepository:     mockSyncRunRepository,
		mockRateSource:            mockRateSource,
		mockAdapters:              mockAdapters,

		connectionService:  serv.Connection,
		institutionService: serv.Institution,
		accountService:     serv.Account,
		transactionService: serv.Transaction,
		rateService:        serv.Rate,
		syncService:        serv.Sync,
	}
}

// expectAtomic executes the transactional steps against the same mocked
// repository so per-statement expectations keep working inside Atomic.
func (h testServiceHelper) expectAtomic() *gomock.Call {
	return h.mockSQLRepository.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, steps func(ctx context.Context, r repositories.SQLRepository) error) error {
			return steps(ctx, h.mockSQLRepository)
		})
}
