package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	RedisAddr       string
	RedisPassword   string
	JWTSecret       string
	AnthropicAPIKey string
	RecommendTTL    time.Duration
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_SECRET", "supersecretjwtkey")
	v.SetDefault("RECOMMEND_CACHE_TTL", "2m")
	v.AutomaticEnv()

	return &Config{
		Port:            v.GetString("PORT"),
		Env:             v.GetString("ENV"),
		PostgresConnStr: v.GetString("POSTGRES_CONN_STR"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		AnthropicAPIKey: v.GetString("ANTHROPIC_API_KEY"),
		RecommendTTL:    v.GetDuration("RECOMMEND_CACHE_TTL"),
	}
}
