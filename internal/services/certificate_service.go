package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CertificateRepository defines methods for certificate data access
type CertificateRepository interface {
	// Create inserts a certificate
	//
	// "ctx" is the context for the request.
	// "cert" is the certificate, its ID must already be set.
	Create(ctx context.Context, cert *models.Certificate) error
	// GetByUserID returns the user's certificates, newest first
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	GetByUserID(ctx context.Context, userID string) ([]models.Certificate, error)
	// GetByIDAndUserID returns one of the user's certificates
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the certificate.
	// "userID" is the ID of the owner.
	//
	// Returns a NotFound error when the certificate does not exist or belongs to someone else.
	GetByIDAndUserID(ctx context.Context, id, userID string) (*models.Certificate, error)
}

// CertificateRenderer draws a certificate document
type CertificateRenderer interface {
	Render(cert *models.Certificate) ([]byte, error)
}

type certificateService struct {
	repo     CertificateRepository
	renderer CertificateRenderer
	logger   *zap.Logger
}

// NewCertificateService creates a new certificate service
func NewCertificateService(repo CertificateRepository, renderer CertificateRenderer, logger *zap.Logger) *certificateService {
	return &certificateService{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

// Create issues a certificate dated today. Course completion is not checked.
func (s *certificateService) Create(ctx context.Context, userID string, req *models.CreateCertificateRequest) (*models.Certificate, error) {
	courseTitle := strings.TrimSpace(req.CourseTitle)
	studentName := strings.TrimSpace(req.StudentName)
	if courseTitle == "" || studentName == "" {
		return nil, apperrors.NewValidationError("courseTitle and studentName are required")
	}

	now := time.Now().UTC()
	cert := &models.Certificate{
		ID:          uuid.NewString(),
		UserID:      userID,
		CourseTitle: courseTitle,
		StudentName: studentName,
		Date:        now.Format(models.CertificateDateLayout),
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	return cert, nil
}

// List returns the user's certificates
func (s *certificateService) List(ctx context.Context, userID string) ([]models.Certificate, error) {
	certificates, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get certificates: %w", err)
	}
	return certificates, nil
}

// Get returns one of the user's certificates
func (s *certificateService) Get(ctx context.Context, userID, id string) (*models.Certificate, error) {
	return s.repo.GetByIDAndUserID(ctx, id, userID)
}

// RenderPDF draws one of the user's certificates as a PDF document
func (s *certificateService) RenderPDF(ctx context.Context, userID, id string) ([]byte, *models.Certificate, error) {
	cert, err := s.repo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.renderer.Render(cert)
	if err != nil {
		s.logger.Error("failed to render certificate", zap.Error(err), zap.String("certificate_id", id))
		return nil, nil, fmt.Errorf("failed to render certificate: %w", err)
	}

	return data, cert, nil
}
