package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
	"github.com/zhouzirui/samvaad/backend/internal/metrics"
	"github.com/zhouzirui/samvaad/backend/internal/model/chat"
)

// DefaultUserID 请求未携带用户ID时使用
const DefaultUserID = "default_user"

const metricsOtherLabel = "other"

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrTurnFailed   = errors.New("failed to produce reply")
)

// Detector 识别消息的情绪。实现不应返回错误，失败时退回 emotion.Fallback。
type Detector interface {
	Detect(ctx context.Context, text string) emotion.Detection
	Enabled() bool
}

// Request 一条入站聊天消息
type Request struct {
	UserID    string
	Message   string
	Timestamp string
}

// Reply 一轮对话的结果
type Reply struct {
	Response           string        `json:"response"`
	Emotion            emotion.Label `json:"emotion"`
	Confidence         float64       `json:"confidence"`
	Timestamp          string        `json:"timestamp"`
	ConversationLength int           `json:"conversation_length"`
}

// Service 基于会话存储处理对话
type Service struct {
	store       *Store
	selector    *Selector
	detector    Detector
	defaultUser string
}

// NewService 创建对话服务。detector 为空时所有消息按 neutral 处理。
func NewService(store *Store, selector *Selector, detector Detector, defaultUser string) *Service {
	if strings.TrimSpace(defaultUser) == "" {
		defaultUser = DefaultUserID
	}
	return &Service{
		store:       store,
		selector:    selector,
		detector:    detector,
		defaultUser: defaultUser,
	}
}

// UserID 解析请求实际使用的用户ID
func (s *Service) UserID(raw string) string {
	if id := strings.TrimSpace(raw); id != "" {
		return id
	}
	return s.defaultUser
}

// Chat 处理一条用户消息
func (s *Service) Chat(ctx context.Context, req Request) (Reply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}
	userID := s.UserID(req.UserID)

	s.expire()

	rec := s.store.GetOrCreate(userID)
	rec.Lock()
	defer rec.Unlock()

	detection := s.detect(ctx, message)
	history := rec.EmotionHistory()

	response, rule, err := s.selectReply(message, detection.Label, history)
	if err != nil {
		return Reply{}, err
	}

	length := s.store.AppendTurn(rec, chat.Turn{
		ID:          uuid.NewString(),
		UserMessage: message,
		BotResponse: response,
		Emotion:     detection.Label,
		Confidence:  detection.Confidence,
		Timestamp:   s.store.Now().UTC(),
	})

	metrics.ChatTurns.WithLabelValues(metricLabel(detection.Label), string(rule)).Inc()
	log.Info().
		Str("user_id", userID).
		Str("user_message", message).
		Str("emotion", string(detection.Label)).
		Float64("confidence", detection.Confidence).
		Str("rule", string(rule)).
		Msg("chat turn")

	return Reply{
		Response:           response,
		Emotion:            detection.Label,
		Confidence:         detection.Confidence,
		Timestamp:          req.Timestamp,
		ConversationLength: length,
	}, nil
}

// Reset 清空用户会话，未知用户不视为错误
func (s *Service) Reset(_ context.Context, userID string) error {
	id := s.UserID(userID)
	if s.store.Reset(id) {
		log.Info().Str("user_id", id).Msg("conversation reset")
	}
	metrics.ActiveConversations.Set(float64(s.store.Count()))
	return nil
}

// History 返回用户会话的副本
func (s *Service) History(_ context.Context, userID string) (chat.History, error) {
	history, _ := s.store.Snapshot(s.UserID(userID))
	return history, nil
}

// ActiveConversations 返回当前会话数量
func (s *Service) ActiveConversations() int {
	return s.store.Count()
}

// ClassifierLoaded 返回是否加载了情绪分类器
func (s *Service) ClassifierLoaded() bool {
	return s.detector != nil && s.detector.Enabled()
}

func (s *Service) expire() {
	expired := s.store.ExpireStale(s.store.Now())
	for _, id := range expired {
		log.Info().Str("user_id", id).Msg("cleaned idle conversation")
	}
	metrics.ExpiredConversations.Add(float64(len(expired)))
	metrics.ActiveConversations.Set(float64(s.store.Count()))
}

// metricLabel 将未知标签归并为 other
func metricLabel(label emotion.Label) string {
	if label.Known() {
		return string(label)
	}
	return metricsOtherLabel
}

func (s *Service) detect(ctx context.Context, message string) emotion.Detection {
	if s.detector == nil {
		return emotion.Fallback
	}
	return s.detector.Detect(ctx, message)
}

func (s *Service) selectReply(message string, label emotion.Label, history []emotion.Label) (reply string, rule Rule, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTurnFailed, r)
		}
	}()

	reply, rule = s.selector.Select(message, label, history)
	if reply == "" {
		return "", "", fmt.Errorf("%w: empty reply from rule %s", ErrTurnFailed, rule)
	}
	return reply, rule, nil
}
