package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeReadsStdin(t *testing.T) {
	t.Setenv("CLASSIFIER_BACKEND", "lexicon")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetIn(strings.NewReader("hello\n\nthank you so much\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--user", "probe"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "#1]")
	assert.Contains(t, lines[1], "#2]")
}

func TestProbeMessagesAndHistory(t *testing.T) {
	t.Setenv("CLASSIFIER_BACKEND", "none")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-m", "the sky looks grey today", "-m", "  ", "--history"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[neutral 0.000 #1]")
	assert.Contains(t, out.String(), "! message is required")
	assert.Contains(t, out.String(), `"emotion_history": [`)
}

func TestProbeRejectsUnknownBackend(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--backend", "crystal-ball", "-m", "hi"})

	assert.Error(t, cmd.Execute())
}
