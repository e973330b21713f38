package handlers

import (
	"context"
	"net/http"

	"github.com/dambastudy/backend/internal/models"
	authMiddleware "github.com/dambastudy/backend/libs/auth/middleware"
	"github.com/dambastudy/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for account operations
type AuthService interface {
	// Register creates an account and issues a token for it
	//
	// "ctx" is the context for the request.
	// "req" holds the name, email and password.
	//
	// Returns a Conflict error if the email is taken.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	// Login checks the credentials and issues a token
	//
	// "ctx" is the context for the request.
	// "req" holds the email and password.
	//
	// Returns ErrInvalidCredentials for an unknown email and a wrong password alike.
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	// GetCurrentUser returns the public fields of a user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	GetCurrentUser(ctx context.Context, userID string) (*models.UserResponse, error)
}

// AuthHandler handles HTTP requests for registration, login and the current user
type AuthHandler struct {
	handlers.BaseHandler
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(authMiddleware).Get("/me", h.Me)
	})
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Description Create an account and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Email already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to register user")
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to log in")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Me handles GET /auth/me
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	user, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get current user")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}
