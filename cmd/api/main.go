package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/urfave/cli/v2"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/logging"
	"github.com/zizouhuweidi/trivia/internal/service"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func init() {
	//nolint:errcheck
	godotenv.Load()
}

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	app := &cli.App{
		Name:  "trivia",
		Usage: "trivia question and quiz API",
		Commands: []*cli.Command{
			commandServer(cfg, logger),
			commandMigrate(cfg, logger),
			commandSeed(cfg, logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func commandServer(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: cfg.Server.Addr,
				Usage: "serve address",
			},
			&cli.BoolFlag{
				Name:  "memory",
				Usage: "keep data in process memory, seeded with the starter questions",
			},
		},
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			container := NewContainer(cfg, logger, c.Bool("memory"))
			defer shutdown(container, logger)

			if c.Bool("memory") {
				if err := seed(ctx, container, logger); err != nil {
					return err
				}
			}

			routes, err := routerConfig(container)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              c.String("addr"),
				Handler:           handler.New(routes),
				ReadHeaderTimeout: 10 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				routes.Hub.Run(gctx)
				return nil
			})

			g.Go(func() error {
				logger.Info("listening", "addr", srv.Addr, "mode", cfg.Server.Mode, "memory", c.Bool("memory"))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})

			g.Go(func() error {
				<-gctx.Done()
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}
}

func commandMigrate(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create the database schema",
		Action: func(c *cli.Context) error {
			container := NewContainer(cfg, logger, false)
			defer shutdown(container, logger)

			pool, err := do.Invoke[postgresPool](container)
			if err != nil {
				return err
			}
			if err := database.Migrate(c.Context, pool.Pool); err != nil {
				return err
			}
			logger.Info("schema migrated")
			return nil
		},
	}
}

func commandSeed(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert the starter categories and questions into an empty database",
		Action: func(c *cli.Context) error {
			container := NewContainer(cfg, logger, false)
			defer shutdown(container, logger)
			return seed(c.Context, container, logger)
		},
	}
}

func seed(ctx context.Context, container *do.Injector, logger *slog.Logger) error {
	categories, err := do.Invoke[domain.CategoryRepository](container)
	if err != nil {
		return err
	}
	questions, err := do.Invoke[domain.QuestionRepository](container)
	if err != nil {
		return err
	}

	n, err := database.Seed(ctx, categories, questions)
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Info("categories already present, skipping seed")
		return nil
	}
	logger.Info("seeded questions", "count", n)

	categoryService, err := do.Invoke[*service.CategoryService](container)
	if err != nil {
		return err
	}
	return categoryService.Invalidate(ctx)
}

func shutdown(container *do.Injector, logger *slog.Logger) {
	if err := container.Shutdown(); err != nil {
		logger.Error("failed to release resources", "error", err)
	}
}
