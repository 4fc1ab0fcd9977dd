package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondStatus(rec, http.StatusInternalServerError, "Error resetting conversation", "error")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"message": "Error resetting conversation", "status": "error"}, body)
}
