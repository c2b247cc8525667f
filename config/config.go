package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	DBDriver   string // postgres (default), mysql or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	FCMProjectID    string
	GoogleProjectID string
	PushProviderURL string
	PushServerKey   string

	SendgridAPIKey string
	EmailSender    string

	ReminderWindowHours int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "eduplay"),

		FCMProjectID:    getEnv("FCM_PROJECT_ID", ""),
		GoogleProjectID: getEnv("GOOGLE_PROJECT_ID", ""),
		PushProviderURL: getEnv("PUSH_PROVIDER_URL", "https://fcm.googleapis.com"),
		PushServerKey:   getEnv("PUSH_SERVER_KEY", ""),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@eduplay.app"),

		ReminderWindowHours: getEnvInt("REMINDER_WINDOW_HOURS", 24),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.FCMProjectID == "" && AppConfig.GoogleProjectID == "" {
		log.Println("Warning: No push project id configured. Push notifications will be disabled.")
	}
}

// PushProjectID resolves the push project id. The FCM-specific setting
// wins over the generic Google project id, first non-empty value taken.
func (c *Config) PushProjectID() string {
	if c.FCMProjectID != "" {
		return c.FCMProjectID
	}
	return c.GoogleProjectID
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
