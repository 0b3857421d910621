package config

import (
	"os"
	"strings"
)

type Config struct {
	Port              string
	MongoURI          string
	MongoDB           string
	RedisURL          string
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	AllowedOrigins    []string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioWhatsApp   string
}

func Load() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "distribuidora"),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret"),
		AdminUsername:     getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AllowedOrigins:    splitEnv("ALLOWED_ORIGINS"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsApp:   getEnv("TWILIO_WHATSAPP_NUMBER", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitEnv(key string) []string {
	val := os.Getenv(key)
	if val == "" || val == "*" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
