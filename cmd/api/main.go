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

	"github.com/spf13/pflag"
	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/logging"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/seed"
	"github.com/zizouhuweidi/trivia/internal/service"
)

func main() {
	envFile := pflag.String("env-file", ".env", "file to load environment variables from")
	migrate := pflag.Bool("migrate", true, "create the schema on startup (postgres only)")
	seedData := pflag.Bool("seed", false, "load the sample questions into an empty store")
	addr := pflag.String("addr", "", "listen address, overrides SERVER_ADDR")
	pflag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ServerAddr = *addr
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Initialize repositories
	var (
		questions  domain.QuestionRepository
		categories domain.CategoryRepository
		db         handler.Pinger
	)
	switch cfg.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		questions = store.Questions()
		categories = store.Categories()
	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if *migrate {
			if err := database.Migrate(ctx, pool); err != nil {
				logger.Error("failed to migrate database", slog.Any("error", err))
				os.Exit(1)
			}
		}

		questions = postgres.NewQuestionRepository(pool)
		categories = postgres.NewCategoryRepository(pool)
		db = pool
	}

	if cfg.RedisEnabled {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisClient.Close()

		categoryCache := cache.NewCategoryCache(redisClient, categories, cfg.CategoryCacheTTL, logger)
		if err := categoryCache.Invalidate(ctx); err != nil {
			logger.Warn("failed to clear category cache", slog.Any("error", err))
		}
		categories = categoryCache
	}

	if *seedData {
		loaded, err := seed.Load(ctx, categories, questions)
		if err != nil {
			logger.Error("failed to seed store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("seed finished", slog.Bool("loaded", loaded))
	}

	// Initialize services and handlers
	triviaService := service.NewTriviaService(questions, categories, logger)

	e := handler.NewEcho(logger)
	handler.NewTriviaHandler(triviaService).Register(e)
	handler.NewHealthHandler(db).Register(e)

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", cfg.ServerAddr), slog.String("storage", cfg.Storage))
		if err := e.Start(cfg.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down server", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
