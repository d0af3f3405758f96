package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisURL     string
	KafkaBrokers string

	JWTSecret  string
	ServerPort string

	WhatsAppAPIURL   string
	WhatsAppUsername string
	WhatsAppPassword string
	WhatsAppPath     string
	RestaurantPhone  string

	PaymentWebhookSecret string
	AdminEmail           string
	StatsCacheTTL        int
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "dhaloesh_fastfood"),

		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),

		JWTSecret:  getEnv("JWT_SECRET", "your-secret-key"),
		ServerPort: getEnv("SERVER_PORT", "3001"),

		WhatsAppAPIURL:   getEnv("WHATSAPP_API_URL", ""),
		WhatsAppUsername: getEnv("WHATSAPP_USERNAME", ""),
		WhatsAppPassword: getEnv("WHATSAPP_PASSWORD", ""),
		WhatsAppPath:     getEnv("WHATSAPP_PATH", ""),
		RestaurantPhone:  getEnv("RESTAURANT_PHONE", ""),

		PaymentWebhookSecret: getEnv("PAYMENT_WEBHOOK_SECRET", "change-me"),
		AdminEmail:           getEnv("ADMIN_EMAIL", "admin@dhaloesh.com"),
		StatsCacheTTL:        getEnvAsInt("STATS_CACHE_TTL", 60),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
