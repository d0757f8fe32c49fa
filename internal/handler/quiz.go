package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizzes *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

// QuizCategory is the category picked by the player; ID 0 means all categories
type QuizCategory struct {
	ID   domain.FlexInt `json:"id" validate:"min=0"`
	Type string         `json:"type"`
}

// QuizRequest is the body of POST /quizzes. A session is kept only when
// start_session is set or session_id names an existing one.
type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	SessionID         string        `json:"session_id" validate:"omitempty,uuid"`
	StartSession      bool          `json:"start_session"`
}

// QuizAnswerRequest is the body of POST /quizzes/answer
type QuizAnswerRequest struct {
	QuestionID domain.FlexInt `json:"question_id" validate:"gt=0"`
	Answer     string         `json:"answer"`
	SessionID  string         `json:"session_id" validate:"omitempty,uuid"`
}

type quizResponse struct {
	Success   bool             `json:"success"`
	Question  *domain.Question `json:"question"`
	SessionID string           `json:"session_id,omitempty"`
}

type quizAnswerResponse struct {
	Success bool                `json:"success"`
	Correct bool                `json:"correct"`
	Answer  string              `json:"answer"`
	Session *domain.QuizSession `json:"session,omitempty"`
}

type quizSessionResponse struct {
	Success bool                `json:"success"`
	Session *domain.QuizSession `json:"session"`
}

// NextQuestion godoc
// @Summary Get the next quiz question
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body QuizRequest true "Quiz state"
// @Success 200 {object} quizResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}

	next, err := h.quizzes.Next(c.Request().Context(), service.NextQuestionRequest{
		CategoryID:   req.QuizCategory.ID.Int(),
		Previous:     req.PreviousQuestions,
		SessionID:    req.SessionID,
		StartSession: req.StartSession,
	})
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) || errors.Is(err, domain.ErrSessionNotFound) {
			return notFound(err)
		}
		return err
	}

	return c.JSON(http.StatusOK, quizResponse{
		Success:   true,
		Question:  next.Question,
		SessionID: next.SessionID,
	})
}

// SubmitAnswer godoc
// @Summary Check an answer
// @Description Answers are compared loosely, ignoring case, articles and small typos
// @Tags quizzes
// @Accept json
// @Produce json
// @Param answer body QuizAnswerRequest true "Answer"
// @Success 200 {object} quizAnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /quizzes/answer [post]
func (h *QuizHandler) SubmitAnswer(c echo.Context) error {
	var req QuizAnswerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}

	result, err := h.quizzes.CheckAnswer(c.Request().Context(), service.AnswerRequest{
		QuestionID: req.QuestionID.Int(),
		Answer:     req.Answer,
		SessionID:  req.SessionID,
	})
	switch {
	case errors.Is(err, domain.ErrQuestionNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return notFound(err)
	case errors.Is(err, domain.ErrAlreadyAnswered), errors.Is(err, service.ErrQuestionNotAsked):
		return unprocessable(err)
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, quizAnswerResponse{
		Success: true,
		Correct: result.Correct,
		Answer:  result.Answer,
		Session: result.Session,
	})
}

// GetSession godoc
// @Summary Get a quiz session
// @Tags quizzes
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} quizSessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /quizzes/{session_id} [get]
func (h *QuizHandler) GetSession(c echo.Context) error {
	session, err := h.quizzes.Session(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return notFound(err)
		}
		return err
	}

	return c.JSON(http.StatusOK, quizSessionResponse{
		Success: true,
		Session: session,
	})
}
