package health

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	xlog "bitbucket.org/Amartha/go-x/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_healthCheck(t *testing.T) {
	t.Parallel()

	app := echo.New()
	New(app.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"kind":"health","status":"server is up and running"}`, strings.TrimSuffix(rec.Body.String(), "\n"))
}
