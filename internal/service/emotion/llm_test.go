package emotion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysis "github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
)

func TestParseClassifierOutput(t *testing.T) {
	content := "Sure:\n```json\n{\"emotions\":[{\"label\":\"Anger\",\"score\":0.8},{\"label\":\"rage\",\"score\":0.5},{\"label\":\"fear\",\"score\":0.1}]}\n```"

	scores, err := parseClassifierOutput(content)
	require.NoError(t, err)
	assert.Equal(t, []analysis.Score{
		{Label: analysis.Anger, Score: 0.8},
		{Label: analysis.Fear, Score: 0.1},
	}, scores)
}

func TestParseClassifierOutputRejectsNoise(t *testing.T) {
	for _, content := range []string{"no json here", `{"emotions":[]}`, `{"emotions":[{"label":"meh","score":1}]}`, `{broken`} {
		_, err := parseClassifierOutput(content)
		assert.Error(t, err, content)
	}
}

func TestNewLLMClassifierNeedsModel(t *testing.T) {
	_, err := NewLLMClassifier(context.Background(), nil)
	assert.Error(t, err)
}
