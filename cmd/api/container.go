package main

import (
	"context"
	"log/slog"

	"github.com/go-redis/redis_rate/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/session"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// postgresPool closes the pool when the injector shuts down
type postgresPool struct {
	*pgxpool.Pool
}

func (p postgresPool) Shutdown() error {
	p.Close()
	return nil
}

// redisClient wraps the optional Redis connection; Client is nil when
// REDIS_HOST is unset
type redisClient struct {
	*redis.Client
}

func (r redisClient) Shutdown() error {
	if r.Client == nil {
		return nil
	}
	return r.Close()
}

// NewContainer wires every dependency of the API. With inMemory set the
// repositories live in process memory and Postgres is never dialed.
func NewContainer(cfg *config.Config, logger *slog.Logger, inMemory bool) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	do.Provide(injector, func(i *do.Injector) (postgresPool, error) {
		pool, err := database.ConnectPostgres(context.Background(), cfg.Postgres)
		if err != nil {
			return postgresPool{}, err
		}
		return postgresPool{pool}, nil
	})

	do.Provide(injector, func(i *do.Injector) (redisClient, error) {
		if !cfg.RedisEnabled() {
			logger.Info("redis disabled, using in-process cache and sessions")
			return redisClient{}, nil
		}
		client, err := database.ConnectRedis(context.Background(), cfg.Redis)
		if err != nil {
			return redisClient{}, err
		}
		return redisClient{client}, nil
	})

	do.Provide(injector, func(i *do.Injector) (domain.CategoryRepository, error) {
		if inMemory {
			return memory.NewCategoryRepository(), nil
		}
		pool, err := do.Invoke[postgresPool](i)
		if err != nil {
			return nil, err
		}
		return postgres.NewCategoryRepository(pool.Pool), nil
	})

	do.Provide(injector, func(i *do.Injector) (domain.QuestionRepository, error) {
		if inMemory {
			categories, err := do.Invoke[domain.CategoryRepository](i)
			if err != nil {
				return nil, err
			}
			return memory.NewQuestionRepository(categories), nil
		}
		pool, err := do.Invoke[postgresPool](i)
		if err != nil {
			return nil, err
		}
		return postgres.NewQuestionRepository(pool.Pool), nil
	})

	do.Provide(injector, func(i *do.Injector) (domain.QuizSessionStore, error) {
		rc, err := do.Invoke[redisClient](i)
		if err != nil {
			return nil, err
		}
		if rc.Client == nil {
			return memory.NewSessionStore(cfg.Quiz.SessionTTL), nil
		}
		return session.NewManager(rc.Client, cfg.Quiz.SessionTTL), nil
	})

	do.Provide(injector, func(i *do.Injector) (cache.Cache, error) {
		rc, err := do.Invoke[redisClient](i)
		if err != nil {
			return nil, err
		}
		if rc.Client == nil {
			return cache.New(nil, true), nil
		}
		return cache.New(rc.Client, true), nil
	})

	do.Provide(injector, func(i *do.Injector) (handler.Limiter, error) {
		rc, err := do.Invoke[redisClient](i)
		if err != nil {
			return nil, err
		}
		if rc.Client == nil || cfg.RateLimit.PerMinute <= 0 {
			return nil, nil
		}
		return redis_rate.NewLimiter(rc.Client), nil
	})

	do.Provide(injector, func(i *do.Injector) (*ws.Hub, error) {
		return ws.NewHub(logger), nil
	})

	do.Provide(injector, func(i *do.Injector) (*service.CategoryService, error) {
		repo, err := do.Invoke[domain.CategoryRepository](i)
		if err != nil {
			return nil, err
		}
		c, err := do.Invoke[cache.Cache](i)
		if err != nil {
			return nil, err
		}
		return service.NewCategoryService(repo, c, cfg.Quiz.CategoryCacheTTL, logger), nil
	})

	do.Provide(injector, func(i *do.Injector) (*service.QuestionService, error) {
		repo, err := do.Invoke[domain.QuestionRepository](i)
		if err != nil {
			return nil, err
		}
		hub, err := do.Invoke[*ws.Hub](i)
		if err != nil {
			return nil, err
		}
		return service.NewQuestionService(repo, hub, cfg.Quiz.QuestionsPerPage, logger), nil
	})

	do.Provide(injector, func(i *do.Injector) (*service.QuizService, error) {
		repo, err := do.Invoke[domain.QuestionRepository](i)
		if err != nil {
			return nil, err
		}
		sessions, err := do.Invoke[domain.QuizSessionStore](i)
		if err != nil {
			return nil, err
		}
		return service.NewQuizService(repo, sessions), nil
	})

	return injector
}

// routerConfig resolves what the router needs from the container
func routerConfig(container *do.Injector) (*handler.Config, error) {
	cfg, err := do.Invoke[*config.Config](container)
	if err != nil {
		return nil, err
	}
	logger, err := do.Invoke[*slog.Logger](container)
	if err != nil {
		return nil, err
	}

	categories, err := do.Invoke[*service.CategoryService](container)
	if err != nil {
		return nil, err
	}
	questions, err := do.Invoke[*service.QuestionService](container)
	if err != nil {
		return nil, err
	}
	quizzes, err := do.Invoke[*service.QuizService](container)
	if err != nil {
		return nil, err
	}
	limiter, err := do.Invoke[handler.Limiter](container)
	if err != nil {
		return nil, err
	}
	hub, err := do.Invoke[*ws.Hub](container)
	if err != nil {
		return nil, err
	}

	return &handler.Config{
		Categories: categories,
		Questions:  questions,
		Quizzes:    quizzes,
		Hub:        hub,
		Limiter:    limiter,
		RateLimit:  cfg.RateLimit.PerMinute,
		Origins:    cfg.Server.Origins,
		Debug:      cfg.Server.Mode == "debug",
		Logger:     logger,
	}, nil
}
