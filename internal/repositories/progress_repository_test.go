package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupProgressTestRepository creates a progress repository with a mock database
func setupProgressTestRepository(t *testing.T) (*progressRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewProgressRepository(db, zap.NewNop())

	return repo, mock, func() { db.Close() }
}

func TestProgressRepository_MarkComplete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupProgressTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT IGNORE INTO completed_lessons \(user_id, course_id, lesson_id\) VALUES \(\?, \?, \?\)`).
			WithArgs("u-1", "course-1", "l-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkComplete(context.Background(), "u-1", "course-1", "l-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already complete affects no rows", func(t *testing.T) {
		repo, mock, cleanup := setupProgressTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT IGNORE INTO completed_lessons`).
			WithArgs("u-1", "course-1", "l-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.MarkComplete(context.Background(), "u-1", "course-1", "l-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupProgressTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT IGNORE INTO completed_lessons`).WillReturnError(errors.New("database error"))

		err := repo.MarkComplete(context.Background(), "u-1", "course-1", "l-1")
		assert.ErrorContains(t, err, "failed to mark lesson complete")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProgressRepository_GetCompletedLessonIDs(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expected      []string
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT lesson_id\s+FROM completed_lessons\s+WHERE user_id = \? AND course_id = \?`).
					WithArgs("u-1", "course-1").
					WillReturnRows(sqlmock.NewRows([]string{"lesson_id"}).AddRow("l-1").AddRow("l-3"))
			},
			expected: []string{"l-1", "l-3"},
		},
		{
			name: "nothing completed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM completed_lessons`).
					WillReturnRows(sqlmock.NewRows([]string{"lesson_id"}))
			},
			expected: []string{},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM completed_lessons`).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			ids, err := repo.GetCompletedLessonIDs(context.Background(), "u-1", "course-1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, ids)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ids)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
