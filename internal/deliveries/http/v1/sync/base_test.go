package sync

import (
	"os"
	"testing"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/services/mock"

	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/mock/gomock"
)

type testSyncHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockSyncSvc *mock.MockSyncService
	mockRateSvc *mock.MockRateService
}

func syncTestHelper(t *testing.T) testSyncHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSyncSvc := mock.NewMockSyncService(mockCtrl)
	mockRateSvc := mock.NewMockRateService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSyncSvc, mockRateSvc)

	return testSyncHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockSyncSvc: mockSyncSvc,
		mockRateSvc: mockRateSvc,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
