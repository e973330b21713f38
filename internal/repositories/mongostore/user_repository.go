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

type userRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database, logger *zap.Logger) *userRepository {
	return &userRepository{
		coll:   db.Collection(UsersCollection),
		logger: logger,
	}
}

// Create inserts a new user document with empty enrollment and progress lists
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	doc := &userDocument{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		IsAdmin:          user.IsAdmin,
		MyCourses:        []string{},
		CompletedLessons: []models.CompletedLesson{},
		CreatedAt:        user.CreatedAt,
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError("email already exists")
	}
	if err != nil {
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) getOne(ctx context.Context, filter bson.M) (*models.User, error) {
	opts := options.FindOne().SetProjection(bson.M{"myCourses": 0, "completedLessons": 0})

	var doc userDocument
	err := r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if err != nil {
		r.logger.Error("failed to get user", zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return doc.toModel(), nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return count > 0, nil
}

// UpdateProfile updates the user's name and email
func (r *userRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	update := bson.M{"$set": bson.M{"name": user.Name, "email": user.Email}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError("email already exists")
	}
	if err != nil {
		r.logger.Error("failed to update user profile", zap.Error(err), zap.String("user_id", user.ID))
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return nil
}

// UpdatePassword replaces the user's password hash
func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		r.logger.Error("failed to update password", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return nil
}
