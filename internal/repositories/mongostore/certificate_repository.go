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

type certificateRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *mongo.Database, logger *zap.Logger) *certificateRepository {
	return &certificateRepository{
		coll:   db.Collection(CertificatesCollection),
		logger: logger,
	}
}

// Create inserts a certificate
func (r *certificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	if _, err := r.coll.InsertOne(ctx, cert); err != nil {
		r.logger.Error("failed to create certificate", zap.Error(err), zap.String("user_id", cert.UserID))
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	return nil
}

// GetByUserID returns the user's certificates, newest first
func (r *certificateRepository) GetByUserID(ctx context.Context, userID string) ([]models.Certificate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		r.logger.Error("failed to query certificates", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}

	certificates := make([]models.Certificate, 0)
	if err := cursor.All(ctx, &certificates); err != nil {
		return nil, fmt.Errorf("failed to decode certificates: %w", err)
	}

	return certificates, nil
}

// GetByIDAndUserID returns one of the user's certificates
func (r *certificateRepository) GetByIDAndUserID(ctx context.Context, id, userID string) (*models.Certificate, error) {
	var cert models.Certificate
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "user": userID}).Decode(&cert)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("certificate not found")
	}
	if err != nil {
		r.logger.Error("failed to get certificate", zap.Error(err), zap.String("certificate_id", id))
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}

	return &cert, nil
}
