package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini   = "gemini"
	ProviderGigaChat = "gigachat"
)

type Config struct {
	Server         ServerConfig
	AI             AIConfig
	Gemini         GeminiConfig
	GigaChat       GigaChatConfig
	Recommendation RecommendationConfig
	Session        SessionConfig
	Tracing        TracingConfig
	Logger         LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AIConfig struct {
	Provider string
	Timeout  time.Duration
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	// BaseURL overrides the Gemini API endpoint, e.g. for a proxy.
	BaseURL string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

type RecommendationConfig struct {
	Count int
}

type SessionConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for containers
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "90"))
	aiTimeout, err := strconv.Atoi(getEnv("AI_TIMEOUT_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_TIMEOUT_SECONDS: %w", err)
	}
	temperature, err := strconv.ParseFloat(getEnv("GEMINI_TEMPERATURE", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEMINI_TEMPERATURE: %w", err)
	}
	recCount, err := strconv.Atoi(getEnv("RECOMMENDATION_COUNT", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECOMMENDATION_COUNT: %w", err)
	}
	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}
	sessionCleanup, err := strconv.Atoi(getEnv("SESSION_CLEANUP_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CLEANUP_MINUTES: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		AI: AIConfig{
			Provider: strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini)),
			Timeout:  time.Duration(aiTimeout) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: temperature,
			BaseURL:     getEnv("GEMINI_BASE_URL", ""),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
		},
		Recommendation: RecommendationConfig{
			Count: recCount,
		},
		Session: SessionConfig{
			TTL:             time.Duration(sessionTTL) * time.Minute,
			CleanupInterval: time.Duration(sessionCleanup) * time.Minute,
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			ServiceName: getEnv("OTEL_SERVICE_NAME", "studiekompas"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected AI provider is usable.
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return errors.New("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
	case ProviderGigaChat:
		if c.GigaChat.APIKey == "" {
			return errors.New("GIGACHAT_API_KEY is required when AI_PROVIDER=gigachat")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AI.Provider)
	}
	if c.Recommendation.Count <= 0 {
		return errors.New("RECOMMENDATION_COUNT must be positive")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL_MINUTES must be positive")
	}
	if c.Session.CleanupInterval <= 0 {
		return errors.New("SESSION_CLEANUP_MINUTES must be positive")
	}
	if c.AI.Timeout <= 0 {
		return errors.New("AI_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
