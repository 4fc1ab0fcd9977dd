package chat

import (
	"time"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
)

// Conversation 表示单个用户的滚动会话状态，Messages 与 EmotionHistory 长度始终一致。
type Conversation struct {
	UserID            string
	Messages          []Turn
	EmotionHistory    []emotion.Label
	LastInteraction   time.Time
	ConversationStart time.Time
}

// History 返回给客户端的只读视图
type History struct {
	Messages          []Turn          `json:"messages"`
	EmotionHistory    []emotion.Label `json:"emotion_history"`
	ConversationStart *time.Time      `json:"conversation_start"`
}

// EmptyHistory 返回未知用户看到的空历史
func EmptyHistory() History {
	return History{
		Messages:       []Turn{},
		EmotionHistory: []emotion.Label{},
	}
}
