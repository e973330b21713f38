package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type enrollmentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB, logger *zap.Logger) *enrollmentRepository {
	return &enrollmentRepository{
		db:     db,
		logger: logger,
	}
}

// Add records the user's membership in each course. Existing memberships are left untouched.
func (r *enrollmentRepository) Add(ctx context.Context, userID string, courseIDs []string) error {
	if len(courseIDs) == 0 {
		return nil
	}

	values := make([]string, 0, len(courseIDs))
	args := make([]any, 0, len(courseIDs)*2)
	for _, courseID := range courseIDs {
		values = append(values, "(?, ?)")
		args = append(args, userID, courseID)
	}

	query := `INSERT IGNORE INTO user_courses (user_id, course_id) VALUES ` + strings.Join(values, ", ")

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to add enrollment", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to add enrollment: %w", err)
	}

	return nil
}

// IsEnrolled reports whether the user is enrolled in the course
func (r *enrollmentRepository) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_courses WHERE user_id = ? AND course_id = ?)`

	var enrolled bool
	if err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(&enrolled); err != nil {
		r.logger.Error("failed to check enrollment", zap.Error(err), zap.String("user_id", userID))
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return enrolled, nil
}

// GetCourseIDs returns the ids of the courses the user is enrolled in
func (r *enrollmentRepository) GetCourseIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT course_id FROM user_courses WHERE user_id = ? ORDER BY enrolled_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query enrollments", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollments: %w", err)
	}

	return ids, nil
}
