package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server       ServerConfig
	Conversation ConversationConfig
	Classifier   ClassifierConfig
	AI           AIConfig
	Log          LogConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	conversation, err := loadConversationConfig()
	if err != nil {
		return nil, err
	}

	classifier, err := loadClassifierConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:       server,
		Conversation: conversation,
		Classifier:   classifier,
		AI:           ai,
		Log:          loadLogConfig(),
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
	MetricsEnabled bool
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	metrics, err := parseBoolEnv("METRICS_ENABLED", true)
	if err != nil {
		return ServerConfig{}, err
	}

	cfg := ServerConfig{
		Addr:           ":" + port,
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		MetricsEnabled: metrics,
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "127.0.0.1:5000"。
		cfg.Addr = port
		return cfg, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return cfg, nil
}

// ConversationConfig 描述内存会话存储的限制。
type ConversationConfig struct {
	TTL           time.Duration
	HistoryLimit  int
	DefaultUserID string
}

func loadConversationConfig() (ConversationConfig, error) {
	ttl, err := parseDurationEnv("CONVERSATION_TTL", 24*time.Hour)
	if err != nil {
		return ConversationConfig{}, err
	}

	limit := 20
	if override, err := parseOptionalIntEnv("CONVERSATION_HISTORY_LIMIT"); err != nil {
		return ConversationConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return ConversationConfig{}, fmt.Errorf("invalid CONVERSATION_HISTORY_LIMIT value %d: must be positive", *override)
		}
		limit = *override
	}

	return ConversationConfig{
		TTL:           ttl,
		HistoryLimit:  limit,
		DefaultUserID: getEnvOrDefault("DEFAULT_USER_ID", "default_user"),
	}, nil
}

// ClassifierConfig 选择并配置情绪分类后端。
type ClassifierConfig struct {
	Backend  string
	Timeout  time.Duration
	APIURL   string
	APIToken string
}

func loadClassifierConfig() (ClassifierConfig, error) {
	timeout, err := parseDurationEnv("CLASSIFIER_TIMEOUT", 10*time.Second)
	if err != nil {
		return ClassifierConfig{}, err
	}

	apiURL := strings.TrimSpace(os.Getenv("EMOTION_API_URL"))
	if apiURL == "" {
		if modelName := strings.TrimSpace(os.Getenv("EMOTION_MODEL")); modelName != "" {
			apiURL = "https://api-inference.huggingface.co/models/" + modelName
		}
	}

	return ClassifierConfig{
		Backend:  strings.ToLower(getEnvOrDefault("CLASSIFIER_BACKEND", "lexicon")),
		Timeout:  timeout,
		APIURL:   apiURL,
		APIToken: strings.TrimSpace(os.Getenv("EMOTION_API_TOKEN")),
	}, nil
}

// AIConfig 描述大模型相关配置，仅在 llm 分类后端下使用。
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Enabled 表示是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel 使用配置创建一个模型实例。
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("Ark 凭证或模型配置缺失，至少提供 ARK_API_KEY + Model 或 AK/SK 组合")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:       strings.TrimSpace(os.Getenv("Model")),
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}, nil
}

// LogConfig 控制日志级别与输出格式。
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "console")),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
	}
	return val, nil
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
