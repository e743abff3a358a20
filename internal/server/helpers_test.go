package server

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/logging"
	"jobboard/internal/metrics"
	"jobboard/internal/middleware"
	"jobboard/internal/service"
	"jobboard/internal/storage"
	"jobboard/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router  *gin.Engine
	store   *storage.Store
	jwtUtil *utils.JWTUtil
	reg     *prometheus.Registry
}

type appOption func(*Deps)

func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()

	store := storage.NewMemory()
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	deps := Deps{
		Logger:      logging.Discard(),
		AuthService: service.NewAuthService(store.Users, jwtUtil, collector, time.Second),
		JobService:  service.NewJobService(store.Jobs, time.Second),
		JWTUtil:     jwtUtil,
		Metrics:     collector,
		Gatherer:    reg,
		HealthCheck: store.Ping,
		CORSOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(&deps)
	}

	return &testApp{
		router:  NewRouter(deps),
		store:   store,
		jwtUtil: jwtUtil,
		reg:     reg,
	}
}

func withAuthLimiter(t *testing.T, cfg middleware.RateLimiterConfig) appOption {
	return func(d *Deps) {
		rl := middleware.NewRateLimiter(cfg)
		t.Cleanup(rl.Stop)
		d.AuthLimiter = rl
	}
}

func (a *testApp) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func assertJSON(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
