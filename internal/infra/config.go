package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	// AIProvider selects which image backend serves generation requests.
	// Supported values: "xai" (default) and "gemini".
	AIProvider string

	XAIAPIKey     string
	XAIBaseURL    string
	XAIChatModel  string
	XAIImageModel string

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	ElevenLabsAgentID string

	AllowedOrigins []string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. A missing AI credential is not an error: the view
// generation service runs in mock mode without one.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		AIProvider: getEnv("AI_PROVIDER", "xai"),

		XAIAPIKey:     os.Getenv("XAI_API_KEY"),
		XAIBaseURL:    getEnv("XAI_BASE_URL", "https://api.x.ai/v1"),
		XAIChatModel:  getEnv("XAI_CHAT_MODEL", "grok-4"),
		XAIImageModel: getEnv("XAI_IMAGE_MODEL", "grok-imagine-image"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-image"),

		ElevenLabsAgentID: os.Getenv("ELEVENLABS_AGENT_ID"),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
