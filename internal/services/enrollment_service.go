package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"go.uber.org/zap"
)

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// Add records the user's membership in each course, keeping existing memberships
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseIDs" are distinct course IDs.
	Add(ctx context.Context, userID string, courseIDs []string) error
	// IsEnrolled reports whether the user is enrolled in the course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
	// GetCourseIDs returns the ids of the user's courses
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	GetCourseIDs(ctx context.Context, userID string) ([]string, error)
}

type enrollmentService struct {
	enrollmentRepo EnrollmentRepository
	courseRepo     CourseRepository
	cache          PopularCache
	logger         *zap.Logger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollmentRepo EnrollmentRepository, courseRepo CourseRepository, cache PopularCache, logger *zap.Logger) *enrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		cache:          cache,
		logger:         logger,
	}
}

// Enroll adds the course to the user's courses and bumps its enrolled counter.
// The counter is bumped even when the user was already enrolled.
func (s *enrollmentService) Enroll(ctx context.Context, userID, courseID string) error {
	return s.enroll(ctx, userID, []string{courseID})
}

// EnrollMultiple enrolls the user in every listed course.
// Each distinct course in the batch has its counter bumped once.
func (s *enrollmentService) EnrollMultiple(ctx context.Context, userID string, courseIDs []string) error {
	if len(courseIDs) == 0 {
		return apperrors.NewValidationError("courses is required")
	}

	return s.enroll(ctx, userID, courseIDs)
}

func (s *enrollmentService) enroll(ctx context.Context, userID string, courseIDs []string) error {
	ids := distinct(courseIDs)
	if len(ids) == 0 {
		return apperrors.NewValidationError("courseId is required")
	}

	existing, err := s.courseRepo.FilterExisting(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to check courses: %w", err)
	}
	if len(existing) != len(ids) {
		return apperrors.NewNotFoundError("course not found")
	}

	if err := s.enrollmentRepo.Add(ctx, userID, ids); err != nil {
		return fmt.Errorf("failed to enroll: %w", err)
	}

	// Not atomic with Add: a failure here leaves the membership without the count
	if err := s.courseRepo.IncrementEnrolledCount(ctx, ids); err != nil {
		s.logger.Error("failed to increment enrolled count", zap.Error(err), zap.Strings("course_ids", ids))
		return fmt.Errorf("failed to enroll: %w", err)
	}

	invalidatePopular(ctx, s.cache)

	s.logger.Info("user enrolled", zap.String("user_id", userID), zap.Strings("course_ids", ids))
	return nil
}

// IsEnrolled reports whether the user is enrolled in the course
func (s *enrollmentService) IsEnrolled(ctx context.Context, userID, courseID string) (*models.EnrollmentStatus, error) {
	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return &models.EnrollmentStatus{Enrolled: enrolled}, nil
}

// GetMyCourses returns the courses the user is enrolled in
func (s *enrollmentService) GetMyCourses(ctx context.Context, userID string) ([]models.Course, error) {
	ids, err := s.enrollmentRepo.GetCourseIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollments: %w", err)
	}

	courses, err := s.courseRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	return courses, nil
}

// distinct drops blank and repeated ids, keeping the first occurrence order
func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
