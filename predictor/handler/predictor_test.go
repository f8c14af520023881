package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mock_component "opencsg.com/persona-predictor/_mocks/opencsg.com/persona-predictor/predictor/component"
	"opencsg.com/persona-predictor/common/config"
	"opencsg.com/persona-predictor/common/errorx"
	"opencsg.com/persona-predictor/common/types"
	"opencsg.com/persona-predictor/predictor/component"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Generator.DefaultNumResults = 3
	cfg.Generator.MaxNumResults = 10
	return cfg
}

func newTestRouter(c component.PredictorComponent) *gin.Engine {
	return newTestRouterWithConfig(newTestConfig(), c)
}

func newTestRouterWithConfig(cfg *config.Config, c component.PredictorComponent) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPredictorHandler(cfg, c)
	r := gin.New()
	r.GET("/api/", h.Status)
	r.POST("/api/generate", h.Generate)
	r.POST("/api/check-coherence", h.CheckCoherence)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPredictorHandler_Status(t *testing.T) {
	r := newTestRouter(nil)
	w := doRequest(r, http.MethodGet, "/api/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"API is running"}`, w.Body.String())
}

func TestPredictorHandler_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouter(mc)
		mc.EXPECT().GenerateNextSentence(mock.Anything, "The meeting starts late", "lawyer", 2).
			Return([]string{"the court must be informed", "delays are costly"}, nil).Once()

		w := doRequest(r, http.MethodPost, "/api/generate", `{"prompt":"The meeting starts late","persona":"lawyer","num_results":2}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"generated_sentences":["the court must be informed","delays are costly"]}`, w.Body.String())
	})

	t.Run("default num results", func(t *testing.T) {
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouter(mc)
		mc.EXPECT().GenerateNextSentence(mock.Anything, "hi", "doctor", 3).Return([]string{}, nil).Once()

		w := doRequest(r, http.MethodPost, "/api/generate", `{"prompt":"hi","persona":"doctor"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"generated_sentences":[]}`, w.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouter(mc)
		for _, body := range []string{
			`{"prompt":"The meeting starts late"}`,
			`{"persona":"lawyer"}`,
			`{"prompt":"","persona":"lawyer"}`,
			`{}`,
			``,
		} {
			w := doRequest(r, http.MethodPost, "/api/generate", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.JSONEq(t, `{"error":"Missing 'prompt' or 'persona'."}`, w.Body.String(), body)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r := newTestRouter(mock_component.NewMockPredictorComponent(t))
		w := doRequest(r, http.MethodPost, "/api/generate", `{"prompt":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid JSON body."}`, w.Body.String())
	})

	t.Run("num results out of range", func(t *testing.T) {
		r := newTestRouter(mock_component.NewMockPredictorComponent(t))
		for _, body := range []string{
			`{"prompt":"hi","persona":"lawyer","num_results":0}`,
			`{"prompt":"hi","persona":"lawyer","num_results":-1}`,
			`{"prompt":"hi","persona":"lawyer","num_results":11}`,
		} {
			w := doRequest(r, http.MethodPost, "/api/generate", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.JSONEq(t, `{"error":"'num_results' must be between 1 and 10."}`, w.Body.String(), body)
		}
	})

	t.Run("num results unbounded by default", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Generator.MaxNumResults = 0
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouterWithConfig(cfg, mc)
		mc.EXPECT().GenerateNextSentence(mock.Anything, "p", "lawyer", 12).Return([]string{"a"}, nil).Once()

		w := doRequest(r, http.MethodPost, "/api/generate", `{"prompt":"p","persona":"lawyer","num_results":12}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"generated_sentences":["a"]}`, w.Body.String())

		w = doRequest(r, http.MethodPost, "/api/generate", `{"prompt":"p","persona":"lawyer","num_results":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"'num_results' must be at least 1."}`, w.Body.String())
	})

	t.Run("num results as numeric string", func(t *testing.T) {
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouter(mc)
		mc.EXPECT().GenerateNextSentence(mock.Anything, "hi", "teacher", 2).Return([]string{"a", "b"}, nil).Once()

		w := doRequest(r, http.MethodPost, "/api/generate", `{"prompt":"hi","persona":"teacher","num_results":"2"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"generated_sentences":["a","b"]}`, w.Body.String())

		w = doRequest(r, http.MethodPost, "/api/generate", `{"prompt":"hi","persona":"teacher","num_results":"two"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid JSON body."}`, w.Body.String())
	})

	t.Run("invalid persona", func(t *testing.T) {
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouter(mc)
		mc.EXPECT().GenerateNextSentence(mock.Anything, "hi", "pirate", 3).
			Return(nil, errorx.InvalidPersona("pirate")).Once()

		w := doRequest(r, http.MethodPost, "/api/generate", `{"prompt":"hi","persona":"pirate"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An internal server error occurred."}`, w.Body.String())
	})

	t.Run("inference failure", func(t *testing.T) {
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouter(mc)
		mc.EXPECT().GenerateNextSentence(mock.Anything, "hi", "writer", 3).
			Return(nil, errorx.Inference(errors.New("connection refused"), nil)).Once()

		w := doRequest(r, http.MethodPost, "/api/generate", `{"prompt":"hi","persona":"writer"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An internal server error occurred."}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestPredictorHandler_CheckCoherence(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouter(mc)
		mc.EXPECT().CheckCoherence(mock.Anything, "It is raining heavily outside.", "The sun is shining brightly.").
			Return(&types.CoherenceResult{Label: types.LabelIncoherent, Confidence: 0.97}, nil).Once()

		w := doRequest(r, http.MethodPost, "/api/check-coherence",
			`{"sentence_a":"It is raining heavily outside.","sentence_b":"The sun is shining brightly."}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"label":"Incoherent","confidence":0.97}`, w.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		r := newTestRouter(mock_component.NewMockPredictorComponent(t))
		for _, body := range []string{
			`{"sentence_a":"a"}`,
			`{"sentence_b":"b"}`,
			`{"sentence_a":"","sentence_b":"b"}`,
			``,
		} {
			w := doRequest(r, http.MethodPost, "/api/check-coherence", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.JSONEq(t, `{"error":"Missing 'sentence_a' or 'sentence_b'."}`, w.Body.String(), body)
		}
	})

	t.Run("inference failure", func(t *testing.T) {
		mc := mock_component.NewMockPredictorComponent(t)
		r := newTestRouter(mc)
		mc.EXPECT().CheckCoherence(mock.Anything, "a", "b").
			Return(nil, errorx.Inference(errors.New("timeout"), nil)).Once()

		w := doRequest(r, http.MethodPost, "/api/check-coherence", `{"sentence_a":"a","sentence_b":"b"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An internal server error occurred."}`, w.Body.String())
	})
}

func TestPredictorHandler_ModelUnavailable(t *testing.T) {
	r := newTestRouter(nil)
	for _, tc := range []struct{ path, body string }{
		{"/api/generate", `{"prompt":"hi","persona":"lawyer"}`},
		{"/api/generate", `not json`},
		{"/api/check-coherence", `{"sentence_a":"a","sentence_b":"b"}`},
		{"/api/check-coherence", ``},
	} {
		w := doRequest(r, http.MethodPost, tc.path, tc.body)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.JSONEq(t, `{"error":"Model is not available."}`, w.Body.String())
	}
}
