package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryRepository is the interface that wraps methods for category data access
type CategoryRepository interface {
	// GetAll retrieves every category
	//
	// "ctx" is the context for the request.
	//
	// Returns a non-nil slice and an error if any.
	GetAll(ctx context.Context) ([]models.Category, error)
	// Exists reports whether a category exists
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the category.
	Exists(ctx context.Context, id string) (bool, error)
	// Create inserts a category
	//
	// "ctx" is the context for the request.
	// "category" is the category to insert, its ID must already be set.
	Create(ctx context.Context, category *models.Category) error
	// Delete removes a category and detaches it from its courses
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the category.
	//
	// Returns a NotFound error if the category does not exist.
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo   CategoryRepository
	cache  PopularCache
	logger *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository, cache PopularCache, logger *zap.Logger) *categoryService {
	return &categoryService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// GetAll retrieves all categories
func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

// Create adds a category
func (s *categoryService) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	category := &models.Category{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category. Its courses remain without a category.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	invalidatePopular(ctx, s.cache)
	return nil
}
