package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// progressRepository keeps completions in the completedLessons list of user documents
type progressRepository struct {
	users  *mongo.Collection
	logger *zap.Logger
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *mongo.Database, logger *zap.Logger) *progressRepository {
	return &progressRepository{
		users:  db.Collection(UsersCollection),
		logger: logger,
	}
}

// MarkComplete records a completed lesson once
func (r *progressRepository) MarkComplete(ctx context.Context, userID, courseID, lessonID string) error {
	record := models.CompletedLesson{CourseID: courseID, LessonID: lessonID}

	result, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$addToSet": bson.M{"completedLessons": record}})
	if err != nil {
		r.logger.Error("failed to mark lesson complete", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to mark lesson complete: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return nil
}

// GetCompletedLessonIDs returns the completed lesson ids of a course in completion order
func (r *progressRepository) GetCompletedLessonIDs(ctx context.Context, userID, courseID string) ([]string, error) {
	opts := options.FindOne().SetProjection(bson.M{"completedLessons": 1})

	var doc struct {
		CompletedLessons []models.CompletedLesson `bson:"completedLessons"`
	}
	err := r.users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		r.logger.Error("failed to query progress", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}

	ids := make([]string, 0)
	for _, record := range doc.CompletedLessons {
		if record.CourseID == courseID {
			ids = append(ids, record.LessonID)
		}
	}
	return ids, nil
}
