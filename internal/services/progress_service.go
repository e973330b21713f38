package services

import (
	"context"
	"fmt"

	"github.com/dambastudy/backend/internal/models"
)

// ProgressRepository defines methods for lesson completion data access
type ProgressRepository interface {
	// MarkComplete records a completed lesson once
	//
	// "ctx" is the context for the request.
	// "userID", "courseID" and "lessonID" identify the record.
	MarkComplete(ctx context.Context, userID, courseID, lessonID string) error
	// GetCompletedLessonIDs returns the completed lesson ids of a course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	GetCompletedLessonIDs(ctx context.Context, userID, courseID string) ([]string, error)
}

type progressService struct {
	repo ProgressRepository
}

// NewProgressService creates a new progress service
func NewProgressService(repo ProgressRepository) *progressService {
	return &progressService{repo: repo}
}

// MarkComplete records the lesson as completed by the user
func (s *progressService) MarkComplete(ctx context.Context, userID string, req *models.CompleteLessonRequest) error {
	if err := s.repo.MarkComplete(ctx, userID, req.CourseID, req.LessonID); err != nil {
		return fmt.Errorf("failed to mark lesson complete: %w", err)
	}
	return nil
}

// GetProgress returns the lessons of a course the user has completed
func (s *progressService) GetProgress(ctx context.Context, userID, courseID string) (*models.ProgressResponse, error) {
	ids, err := s.repo.GetCompletedLessonIDs(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return &models.ProgressResponse{CompletedLessons: ids}, nil
}
