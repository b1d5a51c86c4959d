package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	PostgresDSN string
	MongoURL    string
	MongoDB     string
	RedisURL    string

	JWTSecret string
	TokenTTL  time.Duration

	KafkaBrokers string
	KafkaTopic   string
	SNSTopicArn  string

	CartTTL time.Duration
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development. A .env file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=furnishop password=furnishop dbname=furnishop port=5432 sslmode=disable"),
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "furnishop"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  time.Hour * 24,

		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order.placed"),
		SNSTopicArn:  getEnv("SNS_TOPIC_ARN", ""),

		CartTTL: time.Hour * 24 * 7,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
