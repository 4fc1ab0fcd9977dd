package system

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatus struct {
	loaded bool
	active int
}

func (s stubStatus) ClassifierLoaded() bool   { return s.loaded }
func (s stubStatus) ActiveConversations() int { return s.active }

func TestHealth(t *testing.T) {
	r := chi.NewRouter()
	New(stubStatus{loaded: true, active: 3}).RegisterRoutes(r)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"healthy","model_loaded":true,"message":"Chatbot backend is running","active_conversations":3}`, resp.Body.String())
}

func TestRootDescriptor(t *testing.T) {
	resp := httptest.NewRecorder()
	New(stubStatus{}).HandleRoot(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, resp.Code)

	var body descriptor
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Samvaad Chatbot Backend", body.Message)
	assert.Equal(t, Version, body.Version)
	assert.Contains(t, body.Features, "Emotion-aware responses")
	assert.Equal(t, "/api/chat (POST)", body.Endpoints["chat"])
}
