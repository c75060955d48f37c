package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/alchemorsel-v2/price-estimator/config"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/logging"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T, apiURL, apiKey string) *config.Config {
	t.Helper()
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "favicon.ico"), []byte{0, 0, 1, 0}, 0o644))
	return &config.Config{
		ServerHost:         "127.0.0.1",
		ServerPort:         "0",
		SpoonacularAPIKey:  apiKey,
		SpoonacularAPIURL:  apiURL,
		SpoonacularTimeout: time.Second,
		StaticDir:          staticDir,
		LogLevel:           "info",
		MetricsEnabled:     true,
	}
}

func TestNew(t *testing.T) {
	srv := New(testConfig(t, "http://127.0.0.1:1", ""), logging.Discard(), prometheus.NewRegistry())
	require.NotNil(t, srv)

	t.Run("root is healthy without configuration", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("favicon", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/vnd.microsoft.icon", w.Header().Get("Content-Type"))
	})

	t.Run("price estimator without key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/price-estimator", strings.NewReader("ingredientList=apple"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<div>X</div>"))
	}))
	defer upstream.Close()

	srv := New(testConfig(t, upstream.URL, "key"), logging.Discard(), prometheus.NewRegistry())

	form := url.Values{"ingredientList": {"apple"}}
	req := httptest.NewRequest(http.MethodPost, "/price-estimator", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `price_estimator_requests_total{outcome="success"} 1`)
	assert.Contains(t, w.Body.String(), `price_estimator_upstream_duration_seconds_count{status="200"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1", "key")
	cfg.MetricsEnabled = false
	srv := New(cfg, logging.Discard(), prometheus.NewRegistry())

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartAndShutdown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := testConfig(t, "http://127.0.0.1:1", "")
	cfg.ServerPort = strconv.Itoa(port)
	srv := New(cfg, logging.Discard(), nil)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Addr() + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}
