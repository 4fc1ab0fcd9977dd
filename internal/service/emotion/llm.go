package emotion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	analysis "github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
)

var ErrEmptyCompletion = errors.New("chat model returned no content")

// LLMClassifier 让大模型为情绪标签打分
type LLMClassifier struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewLLMClassifier 将提示词与 chatModel 编译为调用链
func NewLLMClassifier(ctx context.Context, chatModel model.ChatModel) (*LLMClassifier, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(classifierSystemPrompt),
		schema.UserMessage(classifierUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile emotion classifier chain: %w", err)
	}
	return &LLMClassifier{chain: runnable}, nil
}

// Classify 实现 analysis.Classifier
func (c *LLMClassifier) Classify(ctx context.Context, text string) ([]analysis.Score, error) {
	msg, err := c.chain.Invoke(ctx, map[string]any{"message": strings.TrimSpace(text)})
	if err != nil {
		return nil, fmt.Errorf("classifier invoke failed: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return nil, ErrEmptyCompletion
	}
	return parseClassifierOutput(msg.Content)
}

type classifierPayload struct {
	Emotions []analysis.Score `json:"emotions"`
}

// parseClassifierOutput 解析大模型返回的 JSON，允许前后夹带多余文本。
func parseClassifierOutput(content string) ([]analysis.Score, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("missing json object")
	}

	payload := &classifierPayload{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), payload); err != nil {
		return nil, err
	}

	scores := make([]analysis.Score, 0, len(payload.Emotions))
	for _, s := range payload.Emotions {
		label := analysis.Normalize(string(s.Label))
		if !label.Known() || s.Score < 0 {
			continue
		}
		scores = append(scores, analysis.Score{Label: label, Score: s.Score})
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("no usable emotion scores")
	}
	return scores, nil
}

const classifierSystemPrompt = "You are an emotion classifier for a mental health support chat. Read the user's message and score how strongly it expresses each of these emotions: joy, sadness, anger, fear, surprise, love, neutral. Scores are numbers between 0 and 1. Reply with a single JSON object whose only field is emotions, a list of objects with the fields label and score, sorted from highest to lowest score. Output nothing else."

const classifierUserPrompt = "User message:\n{message}"
