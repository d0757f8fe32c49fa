package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// Config holds what the router needs to serve the API
type Config struct {
	Categories *service.CategoryService
	Questions  *service.QuestionService
	Quizzes    *service.QuizService

	// Hub is optional; without it /ws is not mounted
	Hub *ws.Hub

	// Limiter is optional; RateLimit is requests per minute per IP on the
	// endpoints that create or delete questions
	Limiter   Limiter
	RateLimit int

	Origins []string
	Debug   bool
	Logger  *slog.Logger
}

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// New builds the echo instance with middleware and every route mounted
func New(cfg *Config) *echo.Echo {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := cfg.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "true"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPut,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
	}))

	var limit redis_rate.Limit
	if cfg.RateLimit > 0 {
		limit = redis_rate.PerMinute(cfg.RateLimit)
	}
	limited := RateLimit(cfg.Limiter, limit, logger)

	categories := NewCategoryHandler(cfg.Categories, cfg.Questions)
	questions := NewQuestionHandler(cfg.Questions, cfg.Categories)
	quizzes := NewQuizHandler(cfg.Quizzes)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Success: true, Status: "ok"})
	})

	e.GET("/categories", categories.GetCategories)
	e.GET("/categories/:id/questions", categories.GetCategoryQuestions)

	e.GET("/questions", questions.GetQuestions)
	e.POST("/questions", questions.CreateQuestion, limited)
	e.POST("/questions/search", questions.SearchQuestions)
	e.DELETE("/questions/:id", questions.DeleteQuestion, limited)

	e.POST("/quizzes", quizzes.NextQuestion)
	e.POST("/quizzes/answer", quizzes.SubmitAnswer)
	e.GET("/quizzes/:session_id", quizzes.GetSession)

	if cfg.Hub != nil {
		e.GET("/ws", NewWebSocketHandler(cfg.Hub).HandleWebSocket)
	}

	return e
}
