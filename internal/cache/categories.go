package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Redis key for the cached category list
const categoriesKey = "trivia:categories"

// CategoryCache is a read-through Redis cache in front of a
// domain.CategoryRepository. Redis failures fall back to the repository.
type CategoryCache struct {
	redis  *redis.Client
	next   domain.CategoryRepository
	ttl    time.Duration
	logger *slog.Logger
}

// NewCategoryCache wraps next with a cache whose entries live for ttl
func NewCategoryCache(redis *redis.Client, next domain.CategoryRepository, ttl time.Duration, logger *slog.Logger) *CategoryCache {
	return &CategoryCache{
		redis:  redis,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

// List returns the cached category list, loading it on a miss
func (c *CategoryCache) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.get(ctx)
	if err == nil {
		return categories, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "category cache read failed", slog.Any("error", err))
	}

	categories, err = c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, categories); err != nil {
		c.logger.WarnContext(ctx, "category cache write failed", slog.Any("error", err))
	}
	return categories, nil
}

// BulkCreate creates the categories and drops the cached list
func (c *CategoryCache) BulkCreate(ctx context.Context, categories []*domain.Category) error {
	if err := c.next.BulkCreate(ctx, categories); err != nil {
		return err
	}
	if err := c.Invalidate(ctx); err != nil {
		c.logger.WarnContext(ctx, "category cache invalidation failed", slog.Any("error", err))
	}
	return nil
}

// Invalidate deletes the cached category list
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, categoriesKey).Err(); err != nil {
		return fmt.Errorf("failed to delete categories from Redis: %w", err)
	}
	return nil
}

func (c *CategoryCache) get(ctx context.Context) ([]domain.Category, error) {
	data, err := c.redis.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

func (c *CategoryCache) set(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return c.redis.Set(ctx, categoriesKey, data, c.ttl).Err()
}
