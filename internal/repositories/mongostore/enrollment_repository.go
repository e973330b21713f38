package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dambastudy/backend/libs/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// enrollmentRepository keeps enrollments in the myCourses list of user documents
type enrollmentRepository struct {
	users  *mongo.Collection
	logger *zap.Logger
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *mongo.Database, logger *zap.Logger) *enrollmentRepository {
	return &enrollmentRepository{
		users:  db.Collection(UsersCollection),
		logger: logger,
	}
}

// Add records the user's membership in each course. Existing memberships are left untouched.
func (r *enrollmentRepository) Add(ctx context.Context, userID string, courseIDs []string) error {
	if len(courseIDs) == 0 {
		return nil
	}

	update := bson.M{"$addToSet": bson.M{"myCourses": bson.M{"$each": courseIDs}}}
	result, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		r.logger.Error("failed to add enrollment", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to add enrollment: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return nil
}

// IsEnrolled reports whether the user is enrolled in the course
func (r *enrollmentRepository) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{"_id": userID, "myCourses": courseID}, options.Count().SetLimit(1))
	if err != nil {
		r.logger.Error("failed to check enrollment", zap.Error(err), zap.String("user_id", userID))
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return count > 0, nil
}

// GetCourseIDs returns the ids of the courses the user is enrolled in, in enrollment order
func (r *enrollmentRepository) GetCourseIDs(ctx context.Context, userID string) ([]string, error) {
	opts := options.FindOne().SetProjection(bson.M{"myCourses": 1})

	var doc struct {
		MyCourses []string `bson:"myCourses"`
	}
	err := r.users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		r.logger.Error("failed to query enrollments", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}

	if doc.MyCourses == nil {
		return []string{}, nil
	}
	return doc.MyCourses, nil
}
