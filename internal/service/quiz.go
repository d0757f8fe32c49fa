package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// ErrQuestionNotAsked is returned when an answer names a question the session never served
var ErrQuestionNotAsked = errors.New("question was not asked in this session")

// AllCategories selects questions from every category
const AllCategories = 0

// NextQuestionRequest asks for a question the player has not seen. Without
// SessionID or StartSession the request is stateless and only Previous is
// excluded.
type NextQuestionRequest struct {
	CategoryID   int
	Previous     []int
	SessionID    string
	StartSession bool
}

// NextQuestion is the question to play and the session it was recorded in,
// if any
type NextQuestion struct {
	Question  *domain.Question
	SessionID string
}

// AnswerRequest is a player's answer to a question
type AnswerRequest struct {
	QuestionID int
	Answer     string
	SessionID  string
}

// AnswerResult reports whether an answer was accepted
type AnswerResult struct {
	Correct bool
	Answer  string
	Session *domain.QuizSession
}

// QuizService picks quiz questions and keeps score
type QuizService struct {
	questions domain.QuestionRepository
	sessions  domain.QuizSessionStore
	now       func() time.Time
	newID     func() string
}

// NewQuizService creates a new quiz service
func NewQuizService(questions domain.QuestionRepository, sessions domain.QuizSessionStore) *QuizService {
	return &QuizService{
		questions: questions,
		sessions:  sessions,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Next returns a random question from the category (AllCategories for any)
// that is neither in req.Previous nor already served in the session.
func (s *QuizService) Next(ctx context.Context, req NextQuestionRequest) (*NextQuestion, error) {
	if req.SessionID == "" && !req.StartSession {
		question, err := s.questions.Random(ctx, req.CategoryID, req.Previous)
		if err != nil {
			return nil, err
		}
		return &NextQuestion{Question: question}, nil
	}

	now := s.now().UTC()

	var session *domain.QuizSession
	isNew := req.SessionID == ""
	if isNew {
		session = &domain.QuizSession{
			ID:         s.newID(),
			CategoryID: req.CategoryID,
			Asked:      []int{},
			Answered:   []int{},
			StartedAt:  now,
		}
	} else {
		var err error
		if session, err = s.sessions.Get(ctx, req.SessionID); err != nil {
			return nil, err
		}
	}

	exclude := slices.Concat(req.Previous, session.Asked)
	question, err := s.questions.Random(ctx, req.CategoryID, exclude)
	if err != nil {
		return nil, err
	}

	session.Asked = append(session.Asked, question.ID)
	session.LastActivity = now

	if isNew {
		err = s.sessions.Create(ctx, session)
	} else {
		err = s.sessions.Update(ctx, session)
	}
	if err != nil {
		return nil, err
	}

	return &NextQuestion{Question: question, SessionID: session.ID}, nil
}

// CheckAnswer compares an answer with the stored one and, when a session is
// given, records the result in it
func (s *QuizService) CheckAnswer(ctx context.Context, req AnswerRequest) (*AnswerResult, error) {
	question, err := s.questions.GetByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	result := &AnswerResult{
		Correct: validation.IsSimilarAnswer(question.Answer, req.Answer),
		Answer:  question.Answer,
	}
	if req.SessionID == "" {
		return result, nil
	}

	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	switch {
	case !session.HasAsked(question.ID):
		return nil, ErrQuestionNotAsked
	case session.HasAnswered(question.ID):
		return nil, domain.ErrAlreadyAnswered
	}

	session.Answered = append(session.Answered, question.ID)
	if result.Correct {
		session.Correct++
	}
	session.LastActivity = s.now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	result.Session = session
	return result, nil
}

// Session returns a quiz session by ID
func (s *QuizService) Session(ctx context.Context, id string) (*domain.QuizSession, error) {
	return s.sessions.Get(ctx, id)
}
