package chat

import (
	"time"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
)

// Turn 一条用户消息及其对应的回复
type Turn struct {
	ID          string        `json:"id"`
	UserMessage string        `json:"user_message"`
	BotResponse string        `json:"bot_response"`
	Emotion     emotion.Label `json:"emotion"`
	Confidence  float64       `json:"confidence"`
	Timestamp   time.Time     `json:"timestamp"`
}
