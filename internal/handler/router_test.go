package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
	"github.com/zhouzirui/samvaad/backend/internal/analysis/topic"
	"github.com/zhouzirui/samvaad/backend/internal/config"
	chatService "github.com/zhouzirui/samvaad/backend/internal/service/chat"
	emotionservice "github.com/zhouzirui/samvaad/backend/internal/service/emotion"
)

func newTestRouter(metricsEnabled bool) http.Handler {
	detector := emotionservice.NewService(emotion.NewLexicon(), emotionservice.Config{Backend: emotionservice.BackendLexicon})
	svc := chatService.NewService(
		chatService.NewStore(),
		chatService.NewSelector(topic.NewMatcher(topic.DefaultContexts(), nil), nil),
		detector,
		"",
	)
	cfg := config.ServerConfig{AllowedOrigins: []string{"*"}, MetricsEnabled: metricsEnabled}
	return NewRouter(cfg, zerolog.New(io.Discard), svc)
}

func TestRouterServesAPI(t *testing.T) {
	r := newTestRouter(true)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"I feel so happy and excited today","user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"emotion":"joy"`)

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"model_loaded":true`)
	assert.Contains(t, resp.Body.String(), `"active_conversations":1`)

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Samvaad Chatbot Backend")
}

func TestRouterMetrics(t *testing.T) {
	r := newTestRouter(true)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "samvaad_requests_total")

	resp = httptest.NewRecorder()
	newTestRouter(false).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRouterCORSPreflight(t *testing.T) {
	r := newTestRouter(false)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}
