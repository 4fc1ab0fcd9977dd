package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
	chatService "github.com/zhouzirui/samvaad/backend/internal/service/chat"
	"github.com/zhouzirui/samvaad/backend/pkg/utils"
)

const (
	promptMessage  = "I'm here to listen. Please share what's on your mind."
	apologyMessage = "I'm having trouble processing your message right now. Please try again in a moment."

	maxBodyBytes = 64 << 10
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
	ws      *WebSocketHandler
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		ws:      NewWebSocketHandler(chatSvc),
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/chat/reset", h.handleReset)
	r.Get("/chat/history", h.handleHistory)
	r.Get("/chat/ws", h.ws.handleWebSocket)
}

type chatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
}

type fallbackReply struct {
	Response   string        `json:"response"`
	Emotion    emotion.Label `json:"emotion"`
	Confidence float64       `json:"confidence"`
}

// handleChat 处理一条用户消息
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := decodeBody(w, r, &payload); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error processing chat message")
		respondFallback(w, http.StatusInternalServerError, apologyMessage)
		return
	}

	reply, err := h.chatSvc.Chat(r.Context(), chatService.Request{
		UserID:    payload.UserID,
		Message:   payload.Message,
		Timestamp: payload.Timestamp,
	})
	switch {
	case errors.Is(err, chatService.ErrEmptyMessage):
		respondFallback(w, http.StatusBadRequest, promptMessage)
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("error processing chat message")
		respondFallback(w, http.StatusInternalServerError, apologyMessage)
	default:
		utils.RespondJSON(w, http.StatusOK, reply)
	}
}

// handleReset 清空用户会话
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := decodeBody(w, r, &payload); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error resetting conversation")
		utils.RespondStatus(w, http.StatusInternalServerError, "Error resetting conversation", "error")
		return
	}

	if err := h.chatSvc.Reset(r.Context(), payload.UserID); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error resetting conversation")
		utils.RespondStatus(w, http.StatusInternalServerError, "Error resetting conversation", "error")
		return
	}

	utils.RespondStatus(w, http.StatusOK, "Conversation reset successfully", "success")
}

// handleHistory 返回用户会话历史
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.chatSvc.History(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error getting conversation history")
		utils.RespondStatus(w, http.StatusInternalServerError, "Error retrieving conversation history", "error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, history)
}

// decodeBody 允许空请求体，其他情况必须是合法 JSON，且不超过 maxBodyBytes
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func respondFallback(w http.ResponseWriter, status int, message string) {
	utils.RespondJSON(w, status, fallbackReply{
		Response:   message,
		Emotion:    emotion.Neutral,
		Confidence: 0,
	})
}
