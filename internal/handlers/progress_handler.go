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

// ProgressService is the interface that wraps methods for lesson progress
type ProgressService interface {
	// MarkComplete records a completed lesson
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "req" holds the course and lesson IDs.
	MarkComplete(ctx context.Context, userID string, req *models.CompleteLessonRequest) error
	// GetProgress returns the completed lessons of a course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	GetProgress(ctx context.Context, userID, courseID string) (*models.ProgressResponse, error)
}

// ProgressHandler handles HTTP requests for lesson progress
type ProgressHandler struct {
	handlers.BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/progress", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/complete", h.MarkComplete)
		r.Get("/{courseId}", h.GetProgress)
	})
}

// MarkComplete handles POST /progress/complete
// @Summary Mark a lesson complete
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CompleteLessonRequest true "Course and lesson"
// @Success 200 {object} map[string]string
// @Router /progress/complete [post]
func (h *ProgressHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req models.CompleteLessonRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.MarkComplete(r.Context(), userID, &req); err != nil {
		h.RespondServiceError(w, err, "failed to mark lesson complete")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Lesson marked as complete")
}

// GetProgress handles GET /progress/{courseId}
// @Summary Course progress
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.ProgressResponse
// @Router /progress/{courseId} [get]
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	progress, err := h.service.GetProgress(r.Context(), userID, chi.URLParam(r, "courseId"))
	if err != nil {
		h.RespondServiceError(w, err, "failed to get progress")
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}
