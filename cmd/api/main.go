package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/topic"
	"github.com/zhouzirui/samvaad/backend/internal/config"
	"github.com/zhouzirui/samvaad/backend/internal/handler"
	"github.com/zhouzirui/samvaad/backend/internal/service/chat"
	emotionservice "github.com/zhouzirui/samvaad/backend/internal/service/emotion"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 加载 .env 文件
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg.Log, os.Stderr)
	log.Logger = logger
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file loaded, using system environment variables only")
	}

	classifier, err := emotionservice.NewClassifier(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.Classifier.Backend).Msg("failed to load emotion classifier, replies will treat every message as neutral")
		classifier = nil
	}
	emotionSvc := emotionservice.NewService(classifier, emotionservice.Config{
		Backend: cfg.Classifier.Backend,
		Timeout: cfg.Classifier.Timeout,
	})
	if emotionSvc.Enabled() {
		log.Info().Str("backend", emotionSvc.Backend()).Msg("emotion classifier loaded")
	} else {
		log.Warn().Msg("emotion classifier unavailable")
	}

	store := chat.NewStore(
		chat.WithTTL(cfg.Conversation.TTL),
		chat.WithHistoryLimit(cfg.Conversation.HistoryLimit),
	)
	selector := chat.NewSelector(topic.NewMatcher(topic.DefaultContexts(), nil), nil)
	chatService := chat.NewService(store, selector, emotionSvc, cfg.Conversation.DefaultUserID)

	router := handler.NewRouter(cfg.Server, logger, chatService)

	startServer(ctx, cfg.Server, router)
}

func newLogger(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("Samvaad backend listening")
	if err := runServer(ctx, srv); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
