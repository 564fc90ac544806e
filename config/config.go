package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	OpenAIKey               string
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int
	FirestoreProjectID      string
	GoogleCredentialsFile   string
	GoogleOAuthClientID     string
	GoogleOAuthClientSecret string
	GoogleOAuthRedirectURL  string
	DefaultCalendarID       string
	SESRegion               string
	LeadSenderEmail         string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		OpenAIKey:               getEnv("OPENAI_API_KEY", ""),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 getEnvInt("REDIS_DB", 0),
		FirestoreProjectID:      getEnv("FIRESTORE_PROJECT_ID", ""),
		GoogleCredentialsFile:   getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		GoogleOAuthClientID:     getEnv("GOOGLE_OAUTH_CLIENT_ID", ""),
		GoogleOAuthClientSecret: getEnv("GOOGLE_OAUTH_CLIENT_SECRET", ""),
		GoogleOAuthRedirectURL:  getEnv("GOOGLE_OAUTH_REDIRECT_URL", ""),
		DefaultCalendarID:       getEnv("DEFAULT_CALENDAR_ID", "primary"),
		SESRegion:               getEnv("SES_REGION", "us-east-1"),
		LeadSenderEmail:         getEnv("LEAD_SENDER_EMAIL", ""),
	}

	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	if cfg.FirestoreProjectID == "" {
		log.Fatal("FIRESTORE_PROJECT_ID environment variable is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
