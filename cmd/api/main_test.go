package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/zhouzirui/samvaad/backend/internal/config"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("user_id", "u1").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"user_id":"u1"`)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger := newLogger(config.LogConfig{Level: "chatty"}, &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
