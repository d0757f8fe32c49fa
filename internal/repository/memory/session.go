package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

type storedSession struct {
	session   domain.QuizSession
	expiresAt time.Time
}

// SessionStore keeps quiz sessions in process memory. Like the Redis store,
// a session expires ttl after its last write; a zero ttl keeps it forever.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]storedSession
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]storedSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.QuizSession) error {
	return s.Update(ctx, session)
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.QuizSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.sessions[id]
	if !ok || s.expired(stored, s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	session := stored.session
	session.Asked = slices.Clone(session.Asked)
	session.Answered = slices.Clone(session.Answered)
	return &session, nil
}

// Update overwrites the session, refreshes its expiry and drops expired ones
func (s *SessionStore) Update(ctx context.Context, session *domain.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, stored := range s.sessions {
		if s.expired(stored, now) {
			delete(s.sessions, id)
		}
	}

	stored := storedSession{session: *session}
	stored.session.Asked = slices.Clone(session.Asked)
	stored.session.Answered = slices.Clone(session.Answered)
	if s.ttl > 0 {
		stored.expiresAt = now.Add(s.ttl)
	}
	s.sessions[session.ID] = stored
	return nil
}

// Len returns the number of stored sessions, expired ones included until
// the next write
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(stored storedSession, now time.Time) bool {
	return !stored.expiresAt.IsZero() && !now.Before(stored.expiresAt)
}
