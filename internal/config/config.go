package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	MongoURI   string
	RedisAddr  string
	HTTPPort   string
	SessionTTL time.Duration

	// Mail relay the core posts report payloads to. Defaults to this
	// service's own /v1/mail/send endpoint.
	MailEndpoint string

	// Resend API settings used by the relay itself
	ResendAPIKey  string
	ResendBaseURL string
	MailFrom      string
	AdminEmails   []string
}

func Load() *Config {
	port := getEnv("HTTP_PORT", "8080")
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      port,
		SessionTTL:    getDuration("SESSION_TTL", 2*time.Hour),
		MailEndpoint:  getEnv("MAIL_ENDPOINT", "http://localhost:"+port+"/v1/mail/send"),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		ResendBaseURL: getEnv("RESEND_BASE_URL", "https://api.resend.com"),
		MailFrom:      getEnv("MAIL_FROM", "DataSolved <hello@datasolved.com>"),
		AdminEmails:   getList("ADMIN_EMAILS", []string{"ssanford@datasolved.com", "sales@datasolved.com"}),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
