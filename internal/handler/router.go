package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/samvaad/backend/internal/config"
	"github.com/zhouzirui/samvaad/backend/internal/handler/chat"
	"github.com/zhouzirui/samvaad/backend/internal/handler/system"
	middlewarePkg "github.com/zhouzirui/samvaad/backend/internal/middleware"
	chatService "github.com/zhouzirui/samvaad/backend/internal/service/chat"
)

// NewRouter 将HTTP路由绑定到核心服务
func NewRouter(serverCfg config.ServerConfig, logger zerolog.Logger, chatSvc *chatService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(serverCfg.AllowedOrigins))
	if serverCfg.MetricsEnabled {
		r.Use(middlewarePkg.Metrics)
	}

	chatHandler := chat.New(chatSvc)
	systemHandler := system.New(chatSvc)

	r.Get("/", systemHandler.HandleRoot)
	if serverCfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		systemHandler.RegisterRoutes(api)
	})

	return r
}
