package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type categoryRepository struct {
	coll    *mongo.Collection
	courses *mongo.Collection
	logger  *zap.Logger
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *mongo.Database, logger *zap.Logger) *categoryRepository {
	return &categoryRepository{
		coll:    db.Collection(CategoriesCollection),
		courses: db.Collection(CoursesCollection),
		logger:  logger,
	}
}

// GetAll retrieves all categories in creation order
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("failed to query categories", zap.Error(err))
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories := make([]models.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}

// Exists checks if a category with the given id exists
func (r *categoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new category
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	doc := &categoryDocument{ID: category.ID, Name: category.Name, CreatedAt: time.Now().UTC()}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.logger.Error("failed to create category", zap.Error(err))
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// Delete removes a category and clears the reference on its courses
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete category", zap.Error(err), zap.String("category_id", id))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError("category not found")
	}

	if _, err := r.courses.UpdateMany(ctx, bson.M{"category": id}, bson.M{"$set": bson.M{"category": nil}}); err != nil {
		r.logger.Error("failed to detach courses from category", zap.Error(err), zap.String("category_id", id))
		return fmt.Errorf("failed to detach courses: %w", err)
	}

	return nil
}

// byIDs loads the categories with the given ids keyed by id
func (r *categoryRepository) byIDs(ctx context.Context, ids []string) (map[string]models.Category, error) {
	result := make(map[string]models.Category, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	for _, c := range categories {
		result[c.ID] = c
	}
	return result, nil
}

// idsByName returns the ids of the categories called name
func (r *categoryRepository) idsByName(ctx context.Context, name string) ([]string, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"name": name}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids, nil
}
