// Package cache keeps the popular courses in Redis between requests.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dambastudy/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PopularCoursesKey is the Redis key holding the encoded popular courses
const PopularCoursesKey = "dambastudy:courses:popular"

// popularCache implements services.PopularCache.
// Redis failures degrade to cache misses and never fail the request.
type popularCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewPopularCache creates a popular-courses cache backed by client
func NewPopularCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *popularCache {
	return &popularCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached popular courses
func (c *popularCache) Get(ctx context.Context) ([]models.Course, bool) {
	data, err := c.client.Get(ctx, PopularCoursesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("failed to read popular courses from cache", zap.Error(err))
		return nil, false
	}

	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		c.logger.Warn("failed to decode cached popular courses", zap.Error(err))
		return nil, false
	}

	return courses, true
}

// Set stores the popular courses for the configured TTL
func (c *popularCache) Set(ctx context.Context, courses []models.Course) {
	data, err := json.Marshal(courses)
	if err != nil {
		c.logger.Warn("failed to encode popular courses", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, PopularCoursesKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write popular courses to cache", zap.Error(err))
	}
}

// Invalidate drops the cached popular courses
func (c *popularCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, PopularCoursesKey).Err(); err != nil {
		c.logger.Warn("failed to invalidate popular courses", zap.Error(err))
	}
}
