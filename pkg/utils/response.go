package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// RespondStatus 发送会话管理接口使用的 {message, status} 响应
func RespondStatus(w http.ResponseWriter, status int, message, state string) {
	RespondJSON(w, status, map[string]string{"message": message, "status": state})
}
