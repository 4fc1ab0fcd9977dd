package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "METRICS_ENABLED", "CONVERSATION_TTL", "CONVERSATION_HISTORY_LIMIT",
		"DEFAULT_USER_ID", "CLASSIFIER_BACKEND", "CLASSIFIER_TIMEOUT", "EMOTION_API_URL", "EMOTION_API_TOKEN",
		"EMOTION_MODEL", "ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "Model", "ARK_TEMPERATURE",
		"ARK_TOP_P", "ARK_MAX_TOKENS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Server.MetricsEnabled)
	assert.Equal(t, 24*time.Hour, cfg.Conversation.TTL)
	assert.Equal(t, 20, cfg.Conversation.HistoryLimit)
	assert.Equal(t, "default_user", cfg.Conversation.DefaultUserID)
	assert.Equal(t, "lexicon", cfg.Classifier.Backend)
	assert.Equal(t, 10*time.Second, cfg.Classifier.Timeout)
	assert.False(t, cfg.AI.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CONVERSATION_TTL", "90m")
	t.Setenv("CONVERSATION_HISTORY_LIMIT", "5")
	t.Setenv("CLASSIFIER_BACKEND", "Inference")
	t.Setenv("EMOTION_MODEL", "bhadresh-savani/distilbert-base-uncased-emotion")
	t.Setenv("ARK_API_KEY", "key")
	t.Setenv("Model", "doubao")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 90*time.Minute, cfg.Conversation.TTL)
	assert.Equal(t, 5, cfg.Conversation.HistoryLimit)
	assert.Equal(t, "inference", cfg.Classifier.Backend)
	assert.Equal(t, "https://api-inference.huggingface.co/models/bhadresh-savani/distilbert-base-uncased-emotion", cfg.Classifier.APIURL)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                       "80 80",
		"CONVERSATION_TTL":           "forever",
		"CONVERSATION_HISTORY_LIMIT": "0",
		"CLASSIFIER_TIMEOUT":         "-1s",
		"METRICS_ENABLED":            "maybe",
		"ARK_MAX_TOKENS":             "lots",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
