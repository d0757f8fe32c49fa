package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const (
	// DefaultExpiration is how long an idle quiz session is kept
	DefaultExpiration = time.Hour

	quizKeyPrefix = "quiz:"
)

// Manager stores quiz sessions in Redis
type Manager struct {
	redis      redis.UniversalClient
	expiration time.Duration
}

// NewManager creates a new session manager
func NewManager(redis redis.UniversalClient, expiration time.Duration) *Manager {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &Manager{redis: redis, expiration: expiration}
}

// Create stores a new session, failing if the ID is taken
func (m *Manager) Create(ctx context.Context, session *domain.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ok, err := m.redis.SetNX(ctx, key(session.ID), data, m.expiration).Result()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	return nil
}

// Get retrieves a session from Redis
func (m *Manager) Get(ctx context.Context, id string) (*domain.QuizSession, error) {
	data, err := m.redis.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Update overwrites a session and refreshes its expiration
func (m *Manager) Update(ctx context.Context, session *domain.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := m.redis.Set(ctx, key(session.ID), data, m.expiration).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func key(id string) string {
	return quizKeyPrefix + id
}
