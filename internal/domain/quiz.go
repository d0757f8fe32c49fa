package domain

import (
	"context"
	"errors"
	"slices"
	"time"
)

var (
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrAlreadyAnswered = errors.New("question already answered in this session")
)

// QuizSession tracks one play-through of a quiz
type QuizSession struct {
	ID           string    `json:"id"`
	CategoryID   int       `json:"category_id"`
	Asked        []int     `json:"asked"`
	Answered     []int     `json:"answered"`
	Correct      int       `json:"correct"`
	StartedAt    time.Time `json:"started_at"`
	LastActivity time.Time `json:"last_activity"`
}

// HasAsked reports whether the question was served in this session
func (s *QuizSession) HasAsked(questionID int) bool {
	return slices.Contains(s.Asked, questionID)
}

// HasAnswered reports whether an answer was recorded for the question
func (s *QuizSession) HasAnswered(questionID int) bool {
	return slices.Contains(s.Answered, questionID)
}

// QuizSessionStore persists quiz sessions
type QuizSessionStore interface {
	// Create stores a new session
	Create(ctx context.Context, session *QuizSession) error

	// Get retrieves a session by its ID
	Get(ctx context.Context, id string) (*QuizSession, error)

	// Update overwrites an existing session
	Update(ctx context.Context, session *QuizSession) error
}
