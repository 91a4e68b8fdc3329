package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey          string `validate:"required"`
	GeminiModel           string
	GeminiMaxOutputTokens int32
	GeminiTimeout         time.Duration

	// SMTP (empty host/user switches the mailer to dev mode)
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	SMTPTimeout time.Duration

	// Fixed recipient for all notifications
	NotifyTo string `validate:"required,email"`
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "3001"),
		Env:  getEnvOrDefault("ENV", "development"),

		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiMaxOutputTokens: int32(getEnvAsIntOrDefault("GEMINI_MAX_OUTPUT_TOKENS", 1024)),
		GeminiTimeout:         time.Duration(getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 30)) * time.Second,

		SMTPHost:    getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:    getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:    getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:    getEnvOrDefault("SMTP_PASS", ""),
		SMTPFrom:    getEnvOrDefault("SMTP_FROM", "noreply@portfolio.site"),
		SMTPTimeout: time.Duration(getEnvAsIntOrDefault("SMTP_TIMEOUT_SECONDS", 10)) * time.Second,

		NotifyTo: os.Getenv("NOTIFY_TO"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
