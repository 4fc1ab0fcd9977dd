package system

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/samvaad/backend/pkg/utils"
)

// Version 根描述中返回的接口版本
const Version = "2.0.0"

// Status 提供健康检查所需的运行状态
type Status interface {
	ClassifierLoaded() bool
	ActiveConversations() int
}

// Handler 系统信息的HTTP处理器
type Handler struct {
	status Status
}

// New 创建系统处理器
func New(status Status) *Handler {
	return &Handler{status: status}
}

// RegisterRoutes 注册健康检查路由，根描述由路由器挂载在 / 上
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
}

type healthResponse struct {
	Status              string `json:"status"`
	ModelLoaded         bool   `json:"model_loaded"`
	Message             string `json:"message"`
	ActiveConversations int    `json:"active_conversations"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, healthResponse{
		Status:              "healthy",
		ModelLoaded:         h.status.ClassifierLoaded(),
		Message:             "Chatbot backend is running",
		ActiveConversations: h.status.ActiveConversations(),
	})
}

type descriptor struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Features  []string          `json:"features"`
	Endpoints map[string]string `json:"endpoints"`
}

// HandleRoot 返回服务能力描述
func (h *Handler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, descriptor{
		Message: "Samvaad Chatbot Backend",
		Version: Version,
		Features: []string{
			"Emotion-aware responses",
			"Conversation memory",
			"Contextual responses",
			"Mental health support",
		},
		Endpoints: map[string]string{
			"chat":         "/api/chat (POST)",
			"chat_reset":   "/api/chat/reset (POST)",
			"chat_history": "/api/chat/history (GET)",
			"chat_ws":      "/api/chat/ws (WebSocket)",
			"health":       "/api/health (GET)",
		},
	})
}
