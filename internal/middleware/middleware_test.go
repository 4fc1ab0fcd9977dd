package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/samvaad/backend/internal/metrics"
)

func TestLoggerWritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(Logger(zerolog.New(&buf)))
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	line := buf.String()
	assert.Contains(t, line, `"path":"/ping"`)
	assert.Contains(t, line, `"status":418`)
	assert.Contains(t, line, `"request_id":`)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	counter := metrics.RequestCount.WithLabelValues(http.MethodGet, "/items/{id}", "200")
	before := testutil.ToFloat64(counter)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
