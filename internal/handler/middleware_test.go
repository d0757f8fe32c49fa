package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLimiter allows the first n requests per key
type countingLimiter struct {
	n    int
	seen map[string]int
	err  error
}

func (l *countingLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.seen[key]++
	res := &redis_rate.Result{Limit: limit, Remaining: max(l.n-l.seen[key], 0)}
	if l.seen[key] <= l.n {
		res.Allowed = 1
	} else {
		res.RetryAfter = 30 * time.Second
	}
	return res, nil
}

const newQuestion = `{"question":"What is the capital of Peru?","answer":"Lima","category":3,"difficulty":2}`

func TestRateLimit(t *testing.T) {
	limiter := &countingLimiter{n: 2, seen: map[string]int{}}
	api := newTestAPI(t, func(cfg *Config) {
		cfg.Limiter = limiter
		cfg.RateLimit = 2
	})

	status, _ := api.do(t, http.MethodPost, "/questions", newQuestion)
	require.Equal(t, http.StatusOK, status)
	status, _ = api.do(t, http.MethodDelete, "/questions/1", "")
	require.Equal(t, http.StatusOK, status)

	status, body := api.do(t, http.MethodDelete, "/questions/2", "")
	requireError(t, http.StatusTooManyRequests, "too many requests", status, body)

	// reads are not limited, including the POST ones
	status, _ = api.do(t, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = api.do(t, http.MethodPost, "/questions/search", `{"searchTerm":"a"}`)
	assert.Equal(t, http.StatusOK, status)
	status, _ = api.do(t, http.MethodPost, "/quizzes", `{"quiz_category":{"id":0}}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]int{"ratelimit:192.0.2.1": 3}, limiter.seen)
}

func TestRateLimitFailsOpen(t *testing.T) {
	api := newTestAPI(t, func(cfg *Config) {
		cfg.Limiter = &countingLimiter{err: errors.New("redis down")}
		cfg.RateLimit = 1
	})

	for range 3 {
		status, _ := api.do(t, http.MethodPost, "/questions", newQuestion)
		assert.Equal(t, http.StatusOK, status)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	limiter := &countingLimiter{n: 0, seen: map[string]int{}}
	api := newTestAPI(t, func(cfg *Config) {
		cfg.Limiter = limiter
		cfg.RateLimit = 0
	})

	status, _ := api.do(t, http.MethodPost, "/questions", newQuestion)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, limiter.seen)
}
