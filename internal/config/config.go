package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/zizouhuweidi/trivia/internal/database"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds the service configuration
type Config struct {
	ServerAddr       string
	Storage          string
	Postgres         *database.PostgresConfig
	RedisEnabled     bool
	Redis            *database.RedisConfig
	CategoryCacheTTL time.Duration
	LogLevel         string
	LogFormat        string
}

// Load reads the configuration from the environment after applying envFile,
// if given. A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	ttl, err := time.ParseDuration(getEnv("CATEGORY_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATEGORY_CACHE_TTL: %w", err)
	}

	redisEnabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_ENABLED: %w", err)
	}

	redisCfg, err := database.NewRedisConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerAddr:       getEnv("SERVER_ADDR", ":8080"),
		Storage:          getEnv("STORAGE", StoragePostgres),
		Postgres:         database.NewPostgresConfig(),
		RedisEnabled:     redisEnabled,
		Redis:            redisCfg,
		CategoryCacheTTL: ttl,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "color"),
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
