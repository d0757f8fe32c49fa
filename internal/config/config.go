package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zizouhuweidi/trivia/internal/database"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Postgres  *database.PostgresConfig
	Redis     *database.RedisConfig
	Quiz      QuizConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr    string
	Mode    string
	Origins []string
}

// QuizConfig holds question listing and quiz play settings
type QuizConfig struct {
	QuestionsPerPage int
	SessionTTL       time.Duration
	CategoryCacheTTL time.Duration
}

// RateLimitConfig holds the per-IP limit on POST /questions and
// DELETE /questions/:id; zero disables it
type RateLimitConfig struct {
	PerMinute int
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// Load builds the configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:    getEnv("API_ADDR", ":8080"),
			Mode:    getEnv("API_MODE", "production"),
			Origins: splitList(getEnv("API_ORIGINS", "*")),
		},
		Postgres: &database.PostgresConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:   getEnv("POSTGRES_DB", "trivia"),
		},
		Redis: &database.RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Quiz: QuizConfig{
			QuestionsPerPage: getEnvInt("QUESTIONS_PER_PAGE", 10),
			SessionTTL:       getEnvDuration("QUIZ_SESSION_TTL", time.Hour),
			CategoryCacheTTL: getEnvDuration("CATEGORY_CACHE_TTL", 15*time.Minute),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// RedisEnabled reports whether a Redis host is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis != nil && c.Redis.Host != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
