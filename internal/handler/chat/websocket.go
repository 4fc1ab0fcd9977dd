package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
	chatService "github.com/zhouzirui/samvaad/backend/internal/service/chat"
)

const writeWait = 10 * time.Second

// WebSocketHandler 通过WebSocket提供与 /chat 相同的对话流程
type WebSocketHandler struct {
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(chatSvc *chatService.Service) *WebSocketHandler {
	return &WebSocketHandler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type textMessage struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// handleWebSocket 处理WebSocket连接
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID := h.chatSvc.UserID(r.URL.Query().Get("user_id"))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := hlog.FromRequest(r).With().
		Str("connection_id", uuid.NewString()).
		Str("user_id", userID).
		Logger()
	logger.Info().Msg("websocket connected")

	ctx := r.Context()

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("websocket read failed")
			}
			logger.Info().Msg("websocket closed")
			return
		}

		out := h.dispatch(ctx, logger, userID, msg)
		if err := writeMessage(conn, out); err != nil {
			logger.Warn().Err(err).Msg("websocket write failed")
			return
		}
	}
}

func (h *WebSocketHandler) dispatch(ctx context.Context, logger zerolog.Logger, userID string, msg inboundMessage) outgoingMessage {
	switch msg.Type {
	case "message":
		var text textMessage
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &text); err != nil {
				logger.Error().Err(err).Msg("error processing chat message")
				return errorMessage(apologyMessage)
			}
		}

		reply, err := h.chatSvc.Chat(ctx, chatService.Request{UserID: userID, Message: text.Message, Timestamp: text.Timestamp})
		switch {
		case errors.Is(err, chatService.ErrEmptyMessage):
			return errorMessage(promptMessage)
		case err != nil:
			logger.Error().Err(err).Msg("error processing chat message")
			return errorMessage(apologyMessage)
		}
		return outgoingMessage{Type: "reply", Data: reply}

	case "reset":
		if err := h.chatSvc.Reset(ctx, userID); err != nil {
			logger.Error().Err(err).Msg("error resetting conversation")
			return outgoingMessage{Type: "error", Data: map[string]string{"message": "Error resetting conversation", "status": "error"}}
		}
		return outgoingMessage{Type: "reset", Data: map[string]string{"message": "Conversation reset successfully", "status": "success"}}

	case "ping":
		return outgoingMessage{Type: "pong"}

	default:
		return outgoingMessage{Type: "error", Data: map[string]string{"message": "unsupported message type: " + msg.Type}}
	}
}

func errorMessage(text string) outgoingMessage {
	return outgoingMessage{Type: "error", Data: fallbackReply{Response: text, Emotion: emotion.Neutral}}
}

func writeMessage(conn *websocket.Conn, msg outgoingMessage) error {
	msg.Timestamp = time.Now().UnixMilli()
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}
