// Command chatprobe 在进程内运行对话流程，无需启动 HTTP 服务即可查看回复。
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/topic"
	"github.com/zhouzirui/samvaad/backend/internal/config"
	"github.com/zhouzirui/samvaad/backend/internal/service/chat"
	emotionservice "github.com/zhouzirui/samvaad/backend/internal/service/emotion"
)

type probeOptions struct {
	userID   string
	backend  string
	messages []string
	history  bool
	timeout  time.Duration
	verbose  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &probeOptions{}

	cmd := &cobra.Command{
		Use:   "chatprobe",
		Short: "Send messages through the Samvaad reply pipeline from the terminal",
		Long: "chatprobe feeds messages to the same classifier, keyword matcher and reply selector " +
			"the API uses. Pass --message one or more times, or pipe lines on stdin.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProbe(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.userID, "user", "u", chat.DefaultUserID, "user id for the conversation")
	flags.StringVarP(&opts.backend, "backend", "b", "", "classifier backend override (lexicon, inference, llm, none)")
	flags.StringArrayVarP(&opts.messages, "message", "m", nil, "message to send; may be repeated")
	flags.BoolVar(&opts.history, "history", false, "print the conversation history as JSON when done")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "per-message timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline details to stderr")

	return cmd
}

func runProbe(ctx context.Context, opts *probeOptions, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	level := zerolog.WarnLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.backend != "" {
		cfg.Classifier.Backend = opts.backend
	}

	svc, err := newChatService(ctx, cfg)
	if err != nil {
		return err
	}

	send := func(message string) error {
		msgCtx, cancel := context.WithTimeout(ctx, opts.timeout)
		defer cancel()

		reply, err := svc.Chat(msgCtx, chat.Request{UserID: opts.userID, Message: message})
		if err != nil {
			fmt.Fprintf(out, "! %v\n", err)
			return nil
		}
		fmt.Fprintf(out, "[%s %.3f #%d] %s\n", reply.Emotion, reply.Confidence, reply.ConversationLength, reply.Response)
		return nil
	}

	if len(opts.messages) > 0 {
		for _, message := range opts.messages {
			if err := send(message); err != nil {
				return err
			}
		}
	} else {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := send(line); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	if opts.history {
		history, err := svc.History(ctx, opts.userID)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(history)
	}
	return nil
}

func newChatService(ctx context.Context, cfg *config.Config) (*chat.Service, error) {
	classifier, err := emotionservice.NewClassifier(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier: %w", err)
	}
	emotionSvc := emotionservice.NewService(classifier, emotionservice.Config{
		Backend: cfg.Classifier.Backend,
		Timeout: cfg.Classifier.Timeout,
	})

	store := chat.NewStore(
		chat.WithTTL(cfg.Conversation.TTL),
		chat.WithHistoryLimit(cfg.Conversation.HistoryLimit),
	)
	selector := chat.NewSelector(topic.NewMatcher(topic.DefaultContexts(), nil), nil)
	return chat.NewService(store, selector, emotionSvc, cfg.Conversation.DefaultUserID), nil
}
