package emotion

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	analysis "github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
	"github.com/zhouzirui/samvaad/backend/internal/config"
)

const (
	BackendLexicon   = "lexicon"
	BackendInference = "inference"
	BackendLLM       = "llm"
	BackendNone      = "none"
)

// NewClassifier 按 cfg.Classifier.Backend 创建分类器，BackendNone 返回 nil 且不报错
func NewClassifier(ctx context.Context, cfg *config.Config) (analysis.Classifier, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Classifier.Backend))
	switch backend {
	case "", BackendLexicon:
		return analysis.NewLexicon(), nil
	case BackendInference:
		if cfg.Classifier.APIURL == "" {
			return nil, fmt.Errorf("EMOTION_API_URL is required for the %s backend", BackendInference)
		}
		httpClient := &http.Client{Timeout: cfg.Classifier.Timeout}
		return NewInferenceClient(cfg.Classifier.APIURL, cfg.Classifier.APIToken, httpClient), nil
	case BackendLLM:
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", err)
		}
		classifier, err := NewLLMClassifier(ctx, chatModel)
		if err != nil {
			return nil, err
		}
		return classifier, nil
	case BackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", backend)
	}
}
