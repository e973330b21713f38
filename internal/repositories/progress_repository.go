package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type progressRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProgressRepository creates a new lesson progress repository
func NewProgressRepository(db *sql.DB, logger *zap.Logger) *progressRepository {
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// MarkComplete records a completed lesson. Marking it twice keeps a single record.
func (r *progressRepository) MarkComplete(ctx context.Context, userID, courseID, lessonID string) error {
	query := `INSERT IGNORE INTO completed_lessons (user_id, course_id, lesson_id) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, userID, courseID, lessonID); err != nil {
		r.logger.Error("failed to mark lesson complete",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("lesson_id", lessonID),
		)
		return fmt.Errorf("failed to mark lesson complete: %w", err)
	}

	return nil
}

// GetCompletedLessonIDs returns the completed lesson ids of one course for the user
func (r *progressRepository) GetCompletedLessonIDs(ctx context.Context, userID, courseID string) ([]string, error) {
	query := `
		SELECT lesson_id
		FROM completed_lessons
		WHERE user_id = ? AND course_id = ?
		ORDER BY completed_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID, courseID)
	if err != nil {
		r.logger.Error("failed to query completed lessons", zap.Error(err))
		return nil, fmt.Errorf("failed to query completed lessons: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan completed lesson: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating completed lessons: %w", err)
	}

	return ids, nil
}
