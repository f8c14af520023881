package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	bld "opencsg.com/persona-predictor/builder/prometheus"
	"opencsg.com/persona-predictor/common/config"
	"opencsg.com/persona-predictor/common/utils/trace"
)

func newInfraEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetInfraMiddleware(r, &config.Config{}, "test")
	return r
}

func TestInfraMiddleware_Healthz(t *testing.T) {
	r := newInfraEngine()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, w.Header().Get(trace.HeaderRequestID), 32)
}

func TestInfraMiddleware_RequestIDEcho(t *testing.T) {
	r := newInfraEngine()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(trace.HeaderRequestID, "req-123")
	r.ServeHTTP(w, req)

	require.Equal(t, "req-123", w.Header().Get(trace.HeaderRequestID))
}

func TestInfraMiddleware_Recovery(t *testing.T) {
	r := newInfraEngine()
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	before := testutil.ToFloat64(bld.HttpPanicsTotal)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"An internal server error occurred."}`, w.Body.String())
	require.Equal(t, before+1, testutil.ToFloat64(bld.HttpPanicsTotal))
}

func TestInfraMiddleware_Metrics(t *testing.T) {
	r := newInfraEngine()
	counter := bld.HttpRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, before+1, testutil.ToFloat64(counter))
}
