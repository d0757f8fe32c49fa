package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"API_ADDR", "API_ORIGINS", "DATABASE_URL", "POSTGRES_DB", "REDIS_HOST",
		"QUESTIONS_PER_PAGE", "QUIZ_SESSION_TTL", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.Origins)
	assert.Equal(t, "trivia", cfg.Postgres.DBName)
	assert.Equal(t, 10, cfg.Quiz.QuestionsPerPage)
	assert.Equal(t, time.Hour, cfg.Quiz.SessionTTL)
	assert.Equal(t, 60, cfg.RateLimit.PerMinute)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_ORIGINS", "http://localhost:3000, https://trivia.example.com")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("QUESTIONS_PER_PAGE", "25")
	t.Setenv("QUIZ_SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg := Load()

	assert.Equal(t, []string{"http://localhost:3000", "https://trivia.example.com"}, cfg.Server.Origins)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 25, cfg.Quiz.QuestionsPerPage)
	assert.Equal(t, 30*time.Minute, cfg.Quiz.SessionTTL)
	assert.Equal(t, 60, cfg.RateLimit.PerMinute)
}
