package services

import (
	"context"

	"github.com/dambastudy/backend/internal/models"
)

// PopularCache stores the popular courses between requests.
// Services treat a nil PopularCache as disabled.
type PopularCache interface {
	// Get returns the cached courses and whether they were present
	Get(ctx context.Context) ([]models.Course, bool)
	// Set stores the courses
	Set(ctx context.Context, courses []models.Course)
	// Invalidate drops the cached courses
	Invalidate(ctx context.Context)
}

func invalidatePopular(ctx context.Context, cache PopularCache) {
	if cache != nil {
		cache.Invalidate(ctx)
	}
}
