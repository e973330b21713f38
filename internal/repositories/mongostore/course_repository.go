package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// sortKeys maps the catalog sort keys to sort documents.
// _id breaks ties so paging is stable.
var sortKeys = map[string]bson.D{
	models.SortNewest:    {{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}},
	models.SortPriceLow:  {{Key: "price", Value: 1}, {Key: "_id", Value: 1}},
	models.SortPriceHigh: {{Key: "price", Value: -1}, {Key: "_id", Value: 1}},
	models.SortPopular:   {{Key: "enrolledCount", Value: -1}, {Key: "_id", Value: 1}},
	models.SortRating:    {{Key: "rating", Value: -1}, {Key: "_id", Value: 1}},
}

// summaryProjection leaves reviews out of list queries
var summaryProjection = bson.M{"reviews": 0}

type courseRepository struct {
	coll       *mongo.Collection
	users      *mongo.Collection
	categories *categoryRepository
	logger     *zap.Logger
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *mongo.Database, logger *zap.Logger) *courseRepository {
	return &courseRepository{
		coll:       db.Collection(CoursesCollection),
		users:      db.Collection(UsersCollection),
		categories: NewCategoryRepository(db, logger),
		logger:     logger,
	}
}

// List retrieves a page of courses matching the filter together with the total match count
func (r *courseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	query := bson.M{}

	if filter.Category != "" {
		ids, err := r.categories.idsByName(ctx, filter.Category)
		if err != nil {
			r.logger.Error("failed to resolve category filter", zap.Error(err))
			return nil, 0, err
		}
		if len(ids) == 0 {
			return []models.Course{}, 0, nil
		}
		query["category"] = bson.M{"$in": ids}
	}

	if filter.Level != "" {
		query["level"] = filter.Level
	}

	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		r.logger.Error("failed to count courses", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	sort, ok := sortKeys[filter.Sort]
	if !ok {
		sort = sortKeys[models.SortNewest]
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(filter.Offset())).
		SetLimit(int64(filter.Limit)).
		SetProjection(summaryProjection)

	courses, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	return courses, int(total), nil
}

// GetPopular retrieves the most enrolled courses
func (r *courseRepository) GetPopular(ctx context.Context, limit int) ([]models.Course, error) {
	opts := options.Find().
		SetSort(sortKeys[models.SortPopular]).
		SetLimit(int64(limit)).
		SetProjection(summaryProjection)

	return r.find(ctx, bson.M{}, opts)
}

// GetByIDs retrieves the courses with the given ids, newest first. Unknown ids are skipped.
func (r *courseRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}

	opts := options.Find().
		SetSort(sortKeys[models.SortNewest]).
		SetProjection(summaryProjection)

	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
}

// find runs a course query and resolves the category of every result
func (r *courseRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Course, error) {
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		r.logger.Error("failed to query courses", zap.Error(err))
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}

	var docs []courseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}

	categories, err := r.categories.byIDs(ctx, categoryRefs(docs...))
	if err != nil {
		r.logger.Error("failed to load course categories", zap.Error(err))
		return nil, err
	}

	courses := make([]models.Course, 0, len(docs))
	for i := range docs {
		courses = append(courses, docs[i].toModel(categories))
	}

	return courses, nil
}

// GetByID retrieves a course with its category, lessons and reviews
func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var doc courseDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if err != nil {
		r.logger.Error("failed to get course", zap.Error(err), zap.String("course_id", id))
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	categories, err := r.categories.byIDs(ctx, categoryRefs(doc))
	if err != nil {
		return nil, err
	}

	course := doc.toModel(categories)
	return &course, nil
}

// FilterExisting returns the ids that belong to existing courses
func (r *courseRepository) FilterExisting(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		r.logger.Error("failed to check course ids", zap.Error(err))
		return nil, fmt.Errorf("failed to check course ids: %w", err)
	}

	var found []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode course ids: %w", err)
	}

	existing := make([]string, len(found))
	for i, f := range found {
		existing[i] = f.ID
	}
	return existing, nil
}

// Create inserts a course document with its lessons embedded
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	if _, err := r.coll.InsertOne(ctx, newCourseDocument(course)); err != nil {
		r.logger.Error("failed to create course", zap.Error(err))
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

// Update writes every course field. When replaceLessons is set the lesson list is replaced as a whole.
func (r *courseRepository) Update(ctx context.Context, course *models.Course, replaceLessons bool) error {
	doc := newCourseDocument(course)
	fields := bson.M{
		"title":            doc.Title,
		"description":      doc.Description,
		"shortDescription": doc.ShortDescription,
		"price":            doc.Price,
		"thumbnail":        doc.Thumbnail,
		"category":         doc.Category,
		"instructor":       doc.Instructor,
		"level":            doc.Level,
		"duration":         doc.Duration,
		"rating":           doc.Rating,
	}
	if replaceLessons {
		fields["lessons"] = doc.Lessons
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": course.ID}, bson.M{"$set": fields})
	if err != nil {
		r.logger.Error("failed to update course", zap.Error(err), zap.String("course_id", course.ID))
		return fmt.Errorf("failed to update course: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("course not found")
	}

	return nil
}

// Delete removes a course and drops it from every user's enrollments
func (r *courseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete course", zap.Error(err), zap.String("course_id", id))
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError("course not found")
	}

	update := bson.M{"$pull": bson.M{
		"myCourses":        id,
		"completedLessons": bson.M{"course": id},
	}}
	if _, err := r.users.UpdateMany(ctx, bson.M{"myCourses": id}, update); err != nil {
		r.logger.Error("failed to remove course enrollments", zap.Error(err), zap.String("course_id", id))
		return fmt.Errorf("failed to remove course enrollments: %w", err)
	}

	return nil
}

// AddReview appends a review to a course
func (r *courseRepository) AddReview(ctx context.Context, courseID string, review *models.Review) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": courseID}, bson.M{"$push": bson.M{"reviews": review}})
	if err != nil {
		r.logger.Error("failed to add review", zap.Error(err), zap.String("course_id", courseID))
		return fmt.Errorf("failed to add review: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("course not found")
	}

	return nil
}

// IncrementEnrolledCount adds one to the enrolled counter of every course in ids
func (r *courseRepository) IncrementEnrolledCount(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.coll.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, bson.M{"$inc": bson.M{"enrolledCount": 1}})
	if err != nil {
		r.logger.Error("failed to increment enrolled count", zap.Error(err))
		return fmt.Errorf("failed to increment enrolled count: %w", err)
	}

	return nil
}

func categoryRefs(docs ...courseDocument) []string {
	seen := make(map[string]struct{})
	refs := make([]string, 0)
	for _, doc := range docs {
		if doc.Category == nil {
			continue
		}
		if _, ok := seen[*doc.Category]; ok {
			continue
		}
		seen[*doc.Category] = struct{}{}
		refs = append(refs, *doc.Category)
	}
	return refs
}
