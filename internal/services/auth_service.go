package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"github.com/dambastudy/backend/libs/auth/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for user data access
type UserRepository interface {
	// Method Create inserts a new user.
	//
	// "user" parameter is the user to insert, its ID must already be set.
	//
	// If the email is taken a Conflict error is returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by normalized email.
	//
	// If user with such email does not exist, a NotFound error will be returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, a NotFound error will be returned together with "nil" value.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method UpdateProfile saves the user's name and email.
	//
	// If the new email is taken a Conflict error is returned.
	UpdateProfile(ctx context.Context, user *models.User) error
	// Method UpdatePassword replaces the user's password hash.
	//
	// "userID" identifies the user, "passwordHash" is the new bcrypt hash.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// authService implements AuthService
type authService struct {
	userRepo       UserRepository
	tokenGenerator *service.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *service.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// normalizeEmail trims and lower-cases an email address
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account and returns an access token for it
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}

	// Concurrent registrations with the same email are caught by the unique index
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))

	return s.authResponse(user, "Registered successfully")
}

var (
	compareHashAndPassword = bcrypt.CompareHashAndPassword

	dummyHashOnce sync.Once
	dummyHash     []byte
)

// missingUserHash is compared against when no user matches the login email
func missingUserHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dambastudy-missing-user"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// Login authenticates a user by email and password.
// Unknown email and wrong password produce the same error.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		// unknown emails cost one bcrypt compare, like a wrong password
		_ = compareHashAndPassword(missingUserHash(), []byte(req.Password))
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := compareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user, "Login successful")
}

// GetCurrentUser returns the public view of the authenticated user
func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := user.ToResponse()
	return &response, nil
}

func (s *authService) authResponse(user *models.User, message string) (*models.AuthResponse, error) {
	token, err := s.tokenGenerator.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Message: message,
		Token:   token,
		User:    user.ToResponse(),
	}, nil
}
