package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"go.uber.org/zap"
)

type certificateRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *sql.DB, logger *zap.Logger) *certificateRepository {
	return &certificateRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a certificate
func (r *certificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	query := `
		INSERT INTO certificates (id, user_id, course_title, student_name, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, cert.ID, cert.UserID, cert.CourseTitle, cert.StudentName, cert.Date, cert.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create certificate", zap.Error(err), zap.String("user_id", cert.UserID))
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	return nil
}

// GetByUserID returns the user's certificates, newest first
func (r *certificateRepository) GetByUserID(ctx context.Context, userID string) ([]models.Certificate, error) {
	query := `
		SELECT id, user_id, course_title, student_name, date, created_at
		FROM certificates
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query certificates", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}
	defer rows.Close()

	certificates := make([]models.Certificate, 0)
	for rows.Next() {
		var cert models.Certificate
		if err := rows.Scan(&cert.ID, &cert.UserID, &cert.CourseTitle, &cert.StudentName, &cert.Date, &cert.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certificates = append(certificates, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certificates: %w", err)
	}

	return certificates, nil
}

// GetByIDAndUserID returns a certificate owned by the user
func (r *certificateRepository) GetByIDAndUserID(ctx context.Context, id, userID string) (*models.Certificate, error) {
	query := `
		SELECT id, user_id, course_title, student_name, date, created_at
		FROM certificates
		WHERE id = ? AND user_id = ?
		LIMIT 1
	`

	var cert models.Certificate
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&cert.ID,
		&cert.UserID,
		&cert.CourseTitle,
		&cert.StudentName,
		&cert.Date,
		&cert.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("certificate not found")
	}
	if err != nil {
		r.logger.Error("failed to get certificate", zap.Error(err), zap.String("certificate_id", id))
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}

	return &cert, nil
}
