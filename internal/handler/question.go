package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questions  *service.QuestionService
	categories *service.CategoryService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questions *service.QuestionService, categories *service.CategoryService) *QuestionHandler {
	return &QuestionHandler{
		questions:  questions,
		categories: categories,
	}
}

// CreateQuestionRequest is the body of POST /questions
type CreateQuestionRequest struct {
	Question   string         `json:"question" validate:"required"`
	Answer     string         `json:"answer" validate:"required"`
	Category   domain.FlexInt `json:"category" validate:"gt=0"`
	Difficulty domain.FlexInt `json:"difficulty" validate:"min=1,max=5"`
}

// SearchRequest is the body of POST /questions/search
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required"`
}

type questionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[int]string     `json:"categories"`
	CurrentCategory *int               `json:"current_category"`
}

type deleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        int                `json:"deleted"`
	Questions      []*domain.Question `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type createQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

type searchResponse struct {
	Success         bool               `json:"success"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"totalQuestions"`
	CurrentCategory *int               `json:"currentCategory"`
}

// GetQuestions godoc
// @Summary List questions
// @Tags questions
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} questionsResponse
// @Failure 404 {object} ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) GetQuestions(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.questions.Page(ctx, pageParam(c))
	if err != nil {
		return err
	}
	if len(page.Questions) == 0 {
		return notFound(nil)
	}

	categories, err := h.categories.Map(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, questionsResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
		Categories:     categories,
	})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} deleteQuestionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return notFound(err)
	}

	page, err := h.questions.Delete(c.Request().Context(), id, pageParam(c))
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return notFound(err)
		}
		return unprocessable(err)
	}

	return c.JSON(http.StatusOK, deleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
	})
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body CreateQuestionRequest true "Question"
// @Success 200 {object} createQuestionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	question := &domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.Int(),
		Difficulty: req.Difficulty.Int(),
	}
	if err := h.questions.Create(c.Request().Context(), question); err != nil {
		return unprocessable(err)
	}

	return c.JSON(http.StatusOK, createQuestionResponse{
		Success: true,
		Created: question.ID,
	})
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text
// @Tags questions
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search term"
// @Success 200 {object} searchResponse
// @Failure 400 {object} ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}

	questions, err := h.questions.Search(c.Request().Context(), *req.SearchTerm)
	if err != nil {
		return err
	}

	var current *int
	if len(questions) > 0 {
		current = &questions[0].Category
	}

	return c.JSON(http.StatusOK, searchResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: current,
	})
}

// pageParam reads ?page, defaulting to 1 when it is absent or not a number
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}
