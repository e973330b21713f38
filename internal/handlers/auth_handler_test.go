package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		registerErr    error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			body:           `{"name":"Ann","email":"ann@example.com","password":"secret1"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "short password",
			body:           `{"name":"Ann","email":"ann@example.com","password":"123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "email taken",
			body:           `{"name":"Ann","email":"ann@example.com","password":"secret1"}`,
			registerErr:    apperrors.NewConflictError("email already exists"),
			expectedStatus: http.StatusConflict,
			expectedError:  "email already exists",
		},
		{
			name:           "store failure is hidden",
			body:           `{"name":"Ann","email":"ann@example.com","password":"secret1"}`,
			registerErr:    errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{
				registerFunc: func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					if tt.registerErr != nil {
						return nil, tt.registerErr
					}
					return &models.AuthResponse{
						Message: "Registered successfully",
						Token:   "token",
						User:    models.UserResponse{ID: "u-1", Name: req.Name, Email: req.Email},
					}, nil
				},
			}
			h := NewAuthHandler(svc, zap.NewNop())

			w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, fakeAuth) }, http.MethodPost, "/auth/register", "", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"error":"`+tt.expectedError+`"}`, w.Body.String())
			}
			if tt.expectedStatus == http.StatusCreated {
				var resp models.AuthResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "token", resp.Token)
				assert.Equal(t, "Ann", resp.User.Name)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
			if req.Password != "secret1" {
				return nil, apperrors.ErrInvalidCredentials
			}
			return &models.AuthResponse{Message: "Login successful", Token: "token"}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())
	register := func(r chi.Router) { h.RegisterRoutes(r, fakeAuth) }

	t.Run("success", func(t *testing.T) {
		w := serve(t, register, http.MethodPost, "/auth/login", "", `{"email":"ann@example.com","password":"secret1"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"token"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := serve(t, register, http.MethodPost, "/auth/login", "", `{"email":"ann@example.com","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
	})
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &mockAuthService{
		getCurrentUserFunc: func(ctx context.Context, userID string) (*models.UserResponse, error) {
			if userID == "gone" {
				return nil, apperrors.NewNotFoundError("user not found")
			}
			return &models.UserResponse{ID: userID, Name: "Ann"}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())
	register := func(r chi.Router) { h.RegisterRoutes(r, fakeAuth) }

	t.Run("authenticated", func(t *testing.T) {
		w := serve(t, register, http.MethodGet, "/auth/me", "u-1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"u-1"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("anonymous", func(t *testing.T) {
		w := serve(t, register, http.MethodGet, "/auth/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("vanished user", func(t *testing.T) {
		w := serve(t, register, http.MethodGet, "/auth/me", "gone", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	svc := &mockProfileService{
		updateProfileFunc: func(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
			return &models.UserResponse{ID: userID, Name: *req.Name}, nil
		},
		changePasswordFunc: func(ctx context.Context, userID string, req *models.ChangePasswordRequest) error {
			if req.CurrentPassword != "old-secret" {
				return apperrors.NewValidationError("current password is incorrect")
			}
			return nil
		},
	}
	h := NewProfileHandler(svc, zap.NewNop())
	register := func(r chi.Router) { h.RegisterRoutes(r, fakeAuth) }

	t.Run("update profile", func(t *testing.T) {
		w := serve(t, register, http.MethodPut, "/user/profile", "u-1", `{"name":"Ann B"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Ann B"`)
	})

	t.Run("change password", func(t *testing.T) {
		w := serve(t, register, http.MethodPut, "/user/password", "u-1", `{"currentPassword":"old-secret","newPassword":"new-secret"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Password updated"}`, w.Body.String())
	})

	t.Run("wrong current password", func(t *testing.T) {
		w := serve(t, register, http.MethodPut, "/user/password", "u-1", `{"currentPassword":"bad","newPassword":"new-secret"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"current password is incorrect"}`, w.Body.String())
	})

	t.Run("requires authentication", func(t *testing.T) {
		w := serve(t, register, http.MethodPut, "/user/profile", "", `{"name":"Ann B"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
