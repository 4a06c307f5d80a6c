// Package config holds the process-wide configuration. It is read from the
// environment exactly once at startup and passed by reference to the services
// that need it; business logic never reads the environment directly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// TokenTTL is the lifetime of an issued session token.
	TokenTTL = 48 * time.Hour
	// ResetTokenTTL is the lifetime of a password-reset entry.
	ResetTokenTTL = time.Hour
	// SessionCookieName is the HTTP-only cookie carrying the session token.
	SessionCookieName = "jwt"
)

type Config struct {
	DatabaseURL string
	RedisAddr   string
	RedisPass   string

	JWTSecret string
	Port      string

	CORSOrigin   string
	CookieSecure bool

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	TelegramBotToken    string
	TelegramAdminChatID int64

	// ResetLinkBase is the front-end URL prefix for password reset links.
	ResetLinkBase string
}

// Load reads the configuration from the environment. A missing JWT_SECRET is
// an error so that the caller can refuse to start.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		Port:             getEnv("PORT", "8080"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:5173"),
		CookieSecure:     os.Getenv("COOKIE_SECURE") == "true",
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		SMTPFrom:         getEnv("SMTP_FROM", "helpdesk@localhost"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ResetLinkBase:    getEnv("RESET_LINK_BASE", "http://localhost:5173/reset-password"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		cfg.SMTPPort = port
	} else {
		cfg.SMTPPort = 587
	}

	if v := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_ADMIN_CHAT_ID %q: %w", v, err)
		}
		cfg.TelegramAdminChatID = chatID
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
