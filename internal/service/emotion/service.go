package emotion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	analysis "github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
	"github.com/zhouzirui/samvaad/backend/internal/metrics"
)

// Config 控制情绪分析服务的行为。
type Config struct {
	Backend string
	Timeout time.Duration
}

// Service 封装分类器，分类失败时一律退回 analysis.Fallback。
type Service struct {
	classifier analysis.Classifier
	backend    string
	timeout    time.Duration
}

// NewService 创建情绪分析服务，classifier 可以为空。后端名为空时视为 lexicon。
func NewService(classifier analysis.Classifier, cfg Config) *Service {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = BackendLexicon
	}
	return &Service{
		classifier: classifier,
		backend:    backend,
		timeout:    cfg.Timeout,
	}
}

// Enabled 返回是否加载了分类器。
func (s *Service) Enabled() bool {
	return s != nil && s.classifier != nil
}

// Backend 返回当前使用的分类后端名称。
func (s *Service) Backend() string {
	if !s.Enabled() {
		return BackendNone
	}
	return s.backend
}

// Detect 对文本分类一次，返回得分最高的标签及置信度。
func (s *Service) Detect(ctx context.Context, text string) analysis.Detection {
	if !s.Enabled() {
		return analysis.Fallback
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	scores, err := s.classify(ctx, text)
	metrics.ClassifierLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		log.Warn().Err(err).Str("backend", s.backend).Msg("emotion classifier failed, using neutral")
		metrics.ClassifierFallbacks.WithLabelValues(s.backend, "error").Inc()
		return analysis.Fallback
	}

	top, ok := analysis.Top(scores)
	if !ok {
		metrics.ClassifierFallbacks.WithLabelValues(s.backend, "empty").Inc()
		return analysis.Fallback
	}

	confidence := top.Score
	if confidence < 0 {
		confidence = 0
	}
	return analysis.Detection{Label: analysis.Normalize(string(top.Label)), Confidence: confidence}
}

func (s *Service) classify(ctx context.Context, text string) (scores []analysis.Score, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()
	return s.classifier.Classify(ctx, text)
}
