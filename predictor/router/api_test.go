package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	mock_component "opencsg.com/persona-predictor/_mocks/opencsg.com/persona-predictor/predictor/component"
	"opencsg.com/persona-predictor/common/config"
	_ "opencsg.com/persona-predictor/docs"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Generator.DefaultNumResults = 3
	cfg.Generator.MaxNumResults = 10
	return cfg
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(newTestConfig(), mock_component.NewMockPredictorComponent(t))
	require.NoError(t, err)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"API is running"}`, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "persona_predictor_http_requests_total")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ModelUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(newTestConfig(), nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"prompt":"hi","persona":"lawyer"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Model is not available."}`, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(newTestConfig(), nil)
	require.NoError(t, err)

	t.Run("preflight on api", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
		req.Header.Set("Origin", "https://frontend.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		w := serve(r, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("simple request on api", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.Header.Set("Origin", "https://frontend.example.com")
		w := serve(r, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no cors outside api", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://frontend.example.com")
		w := serve(r, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_Optional(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := newTestConfig()
	cfg.APIServer.EnablePprof = true
	cfg.EnableSwagger = true
	r, err := NewRouter(cfg, nil)
	require.NoError(t, err)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/check-coherence")
}
