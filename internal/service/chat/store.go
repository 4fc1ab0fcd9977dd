package chat

import (
	"sync"
	"time"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
	"github.com/zhouzirui/samvaad/backend/internal/model/chat"
)

const (
	DefaultConversationTTL = 24 * time.Hour
	DefaultHistoryLimit    = 20
)

// Record 保护单个用户的会话。持锁者可以读取会话并追加轮次，加锁顺序为先 Record 后 Store。
type Record struct {
	mu   sync.Mutex
	conv chat.Conversation
}

// Lock 串行化同一用户的对话轮次
func (r *Record) Lock() { r.mu.Lock() }

// Unlock 释放记录
func (r *Record) Unlock() { r.mu.Unlock() }

// EmotionHistory 返回情绪历史的副本，调用方必须持有锁
func (r *Record) EmotionHistory() []emotion.Label {
	return append([]emotion.Label(nil), r.conv.EmotionHistory...)
}

// Store 在内存中保存所有会话
type Store struct {
	// mu 保护 records 以及每条记录的 LastInteraction
	mu      sync.Mutex
	records map[string]*Record
	now     func() time.Time
	ttl     time.Duration
	limit   int
}

// StoreOption 定制 Store
type StoreOption func(*Store)

// WithClock 替换 time.Now
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTTL 设置空闲会话的存活时间
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithHistoryLimit 设置每个会话保留的最大轮次
func WithHistoryLimit(limit int) StoreOption {
	return func(s *Store) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// NewStore 创建空的会话存储
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		records: make(map[string]*Record),
		now:     time.Now,
		ttl:     DefaultConversationTTL,
		limit:   DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now 读取存储使用的时钟
func (s *Store) Now() time.Time {
	return s.now()
}

// GetOrCreate 获取用户记录，首次使用时创建
func (s *Store) GetOrCreate(userID string) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[userID]; ok {
		return rec
	}

	now := s.now()
	rec := &Record{conv: chat.Conversation{
		UserID:            userID,
		Messages:          make([]chat.Turn, 0, s.limit),
		EmotionHistory:    make([]emotion.Label, 0, s.limit),
		LastInteraction:   now,
		ConversationStart: now,
	}}
	s.records[userID] = rec
	return rec
}

// Reset 删除用户会话，并返回会话是否存在
func (s *Store) Reset(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[userID]; !ok {
		return false
	}
	delete(s.records, userID)
	return true
}

// ExpireStale 删除空闲超过 TTL 的会话，返回被清理的用户ID
func (s *Store) ExpireStale(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []string
	for userID, rec := range s.records {
		if now.Sub(rec.conv.LastInteraction) > s.ttl {
			expired = append(expired, userID)
			delete(s.records, userID)
		}
	}
	return expired
}

// AppendTurn 追加一轮对话，刷新最后交互时间并按上限截断历史，返回当前轮次数。
// 调用方必须持有 rec 的锁。
func (s *Store) AppendTurn(rec *Record, turn chat.Turn) int {
	conv := &rec.conv
	conv.Messages = append(conv.Messages, turn)
	conv.EmotionHistory = append(conv.EmotionHistory, turn.Emotion)

	if overflow := len(conv.Messages) - s.limit; overflow > 0 {
		conv.Messages = append([]chat.Turn(nil), conv.Messages[overflow:]...)
		conv.EmotionHistory = append([]emotion.Label(nil), conv.EmotionHistory[overflow:]...)
	}

	s.mu.Lock()
	conv.LastInteraction = s.now()
	s.mu.Unlock()

	return len(conv.Messages)
}

// Snapshot 复制用户会话
func (s *Store) Snapshot(userID string) (chat.History, bool) {
	s.mu.Lock()
	rec, ok := s.records[userID]
	s.mu.Unlock()
	if !ok {
		return chat.EmptyHistory(), false
	}

	rec.Lock()
	defer rec.Unlock()

	start := rec.conv.ConversationStart
	return chat.History{
		Messages:          append([]chat.Turn{}, rec.conv.Messages...),
		EmotionHistory:    append([]emotion.Label{}, rec.conv.EmotionHistory...),
		ConversationStart: &start,
	}, true
}

// Count 返回当前会话数量
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
