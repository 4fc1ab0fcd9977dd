package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// Logger 将 logger 注入请求上下文，并为每个请求写一行访问日志
func Logger(logger zerolog.Logger) func(http.Handler) http.Handler {
	attach := hlog.NewHandler(logger)
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})
	return func(next http.Handler) http.Handler {
		return attach(access(next))
	}
}
