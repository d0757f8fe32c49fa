package domain

import (
	"context"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidQuestion  = errors.New("invalid question")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves questions ordered by id, skipping offset rows
	List(ctx context.Context, offset, limit int) ([]*Question, error)

	// Count returns the total number of questions
	Count(ctx context.Context) (int, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create creates a new question and fills in its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error

	// Search retrieves questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]*Question, error)

	// ListByCategory retrieves all questions of a category
	ListByCategory(ctx context.Context, categoryID int) ([]*Question, error)

	// Random retrieves a random question from a category (0 means any
	// category) whose ID is not in exclude
	Random(ctx context.Context, categoryID int, exclude []int) (*Question, error)

	// BulkCreate creates multiple questions in a single transaction
	BulkCreate(ctx context.Context, questions []*Question) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Validate checks the fields every stored question must have
func (q *Question) Validate() error {
	switch {
	case q.Question == "":
		return fmt.Errorf("%w: question text cannot be empty", ErrInvalidQuestion)
	case q.Answer == "":
		return fmt.Errorf("%w: answer cannot be empty", ErrInvalidQuestion)
	case q.Category <= 0:
		return fmt.Errorf("%w: category is required", ErrInvalidQuestion)
	case q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty:
		return fmt.Errorf("%w: difficulty must be between 1 and 5", ErrInvalidQuestion)
	}
	return nil
}

// Difficulty bounds
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)
