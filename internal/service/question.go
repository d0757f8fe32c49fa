package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

// DefaultQuestionsPerPage is the page size used when none is configured
const DefaultQuestionsPerPage = 10

// QuestionPage is one page of questions plus the overall total
type QuestionPage struct {
	Questions []*domain.Question
	Total     int
}

// QuestionService handles listing and editing questions
type QuestionService struct {
	questions domain.QuestionRepository
	hub       Broadcaster
	perPage   int
	logger    *slog.Logger
}

// NewQuestionService creates a new question service
func NewQuestionService(questions domain.QuestionRepository, hub Broadcaster, perPage int, logger *slog.Logger) *QuestionService {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionService{
		questions: questions,
		hub:       hub,
		perPage:   perPage,
		logger:    logger,
	}
}

// Page returns the 1-indexed page of questions ordered by ID. Pages before
// the first or past the last are empty.
func (s *QuestionService) Page(ctx context.Context, page int) (*QuestionPage, error) {
	total, err := s.questions.Count(ctx)
	if err != nil {
		return nil, err
	}

	result := &QuestionPage{Questions: []*domain.Question{}, Total: total}
	if page < 1 {
		return result, nil
	}

	questions, err := s.questions.List(ctx, (page-1)*s.perPage, s.perPage)
	if err != nil {
		return nil, err
	}
	if questions != nil {
		result.Questions = questions
	}
	return result, nil
}

// Delete removes a question and returns the requested page of what remains
func (s *QuestionService) Delete(ctx context.Context, id, page int) (*QuestionPage, error) {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrUnprocessable, err)
	}

	s.broadcast(websocket.EventQuestionDeleted, map[string]int{"id": id})

	return s.Page(ctx, page)
}

// Create validates and stores a new question
func (s *QuestionService) Create(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}

	if err := s.questions.Create(ctx, question); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		return errors.Join(ErrUnprocessable, err)
	}

	s.broadcast(websocket.EventQuestionCreated, question)
	return nil
}

// Search returns questions whose text contains term, ignoring case
func (s *QuestionService) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	if questions == nil {
		questions = []*domain.Question{}
	}
	return questions, nil
}

// ByCategory returns every question of a category
func (s *QuestionService) ByCategory(ctx context.Context, categoryID int) ([]*domain.Question, error) {
	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*domain.Question{}
	}
	return questions, nil
}

func (s *QuestionService) broadcast(eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to marshal event", "type", eventType, "error", err)
		return
	}
	s.hub.Broadcast(eventType, data)
}
