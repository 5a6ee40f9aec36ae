/*
Package config loads runtime configuration from the environment, with optional
.env file support for local runs.
*/
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for one scan run.
type Config struct {
	SECAPIKey    string
	GeminiAPIKey string

	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	MailTo     string
}

// Load reads configuration from a .env file (if present) and the environment.
// The filing search API key is the only hard requirement; everything else
// degrades at the point of use.
func Load() (*Config, error) {
	// In production the variables are usually set directly; a missing .env
	// file is not an error.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	cfg := &Config{
		SECAPIKey:    getEnv("SEC_API_KEY", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		SMTPServer:   getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:     port,
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		MailTo:       getEnv("MAIL_TO", ""),
	}

	if cfg.SECAPIKey == "" {
		return nil, fmt.Errorf("SEC_API_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
