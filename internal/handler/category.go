package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories *service.CategoryService
	questions  *service.QuestionService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories *service.CategoryService, questions *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		questions:  questions,
	}
}

type categoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

type categoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"totalQuestions"`
	CurrentCategory int                `json:"currentCategory"`
}

// GetCategories godoc
// @Summary List categories
// @Description Get every category as an id -> type mapping
// @Tags categories
// @Produce json
// @Success 200 {object} categoriesResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return notFound(nil)
	}

	return c.JSON(http.StatusOK, categoriesResponse{
		Success:    true,
		Categories: domain.CategoryMap(categories),
	})
}

// GetCategoryQuestions godoc
// @Summary List questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} categoryQuestionsResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) GetCategoryQuestions(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return notFound(err)
	}

	questions, err := h.questions.ByCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return notFound(nil)
	}

	return c.JSON(http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: id,
	})
}
