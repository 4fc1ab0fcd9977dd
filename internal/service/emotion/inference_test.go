package emotion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysis "github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
)

func TestInferenceClientNestedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "I miss them", body["inputs"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[{"label":"sadness","score":0.93},{"label":"joy","score":0.02}]]`))
	}))
	defer srv.Close()

	scores, err := NewInferenceClient(srv.URL, "secret", srv.Client()).Classify(context.Background(), "I miss them")
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, analysis.Sadness, scores[0].Label)
	assert.InDelta(t, 0.93, scores[0].Score, 1e-9)
}

func TestInferenceClientFlatResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"label":"fear","score":0.7}]`))
	}))
	defer srv.Close()

	scores, err := NewInferenceClient(srv.URL, "", nil).Classify(context.Background(), "storm tonight")
	require.NoError(t, err)
	assert.Equal(t, []analysis.Score{{Label: analysis.Fear, Score: 0.7}}, scores)
}

func TestInferenceClientErrors(t *testing.T) {
	cases := map[string]func(w http.ResponseWriter){
		"status": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"model is loading"}`))
		},
		"empty":   func(w http.ResponseWriter) { _, _ = w.Write([]byte(`[[]]`)) },
		"garbage": func(w http.ResponseWriter) { _, _ = w.Write([]byte(`<html>`)) },
	}

	for name, respond := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { respond(w) }))
			defer srv.Close()

			_, err := NewInferenceClient(srv.URL, "", srv.Client()).Classify(context.Background(), "text")
			assert.Error(t, err)
		})
	}
}
