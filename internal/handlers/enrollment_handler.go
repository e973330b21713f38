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

// EnrollmentService is the interface that wraps methods for enrollment operations
type EnrollmentService interface {
	// Enroll adds a course to the user's courses
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	Enroll(ctx context.Context, userID, courseID string) error
	// EnrollMultiple adds every listed course to the user's courses
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseIDs" are the IDs of the courses.
	EnrollMultiple(ctx context.Context, userID string, courseIDs []string) error
	// IsEnrolled reports whether the user is enrolled in the course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	IsEnrolled(ctx context.Context, userID, courseID string) (*models.EnrollmentStatus, error)
	// GetMyCourses returns the courses the user is enrolled in
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	GetMyCourses(ctx context.Context, userID string) ([]models.Course, error)
}

// EnrollmentHandler handles HTTP requests for enrollments
type EnrollmentHandler struct {
	handlers.BaseHandler
	service EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(svc EnrollmentService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all enrollment handler routes
func (h *EnrollmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/enroll", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Enroll)
		r.Post("/multiple", h.EnrollMultiple)
		r.Get("/check/{courseId}", h.Check)
	})
	r.With(authMiddleware).Get("/user/courses", h.MyCourses)
}

// Enroll handles POST /enroll
// @Summary Enroll in a course
// @Tags enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.EnrollRequest true "Course"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Course not found"
// @Router /enroll [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req models.EnrollRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Enroll(r.Context(), userID, req.CourseID); err != nil {
		h.RespondServiceError(w, err, "failed to enroll")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Enrolled successfully")
}

// EnrollMultiple handles POST /enroll/multiple
// @Summary Enroll in several courses
// @Description Checkout of the cart
// @Tags enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.EnrollMultipleRequest true "Courses"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Empty course list"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /enroll/multiple [post]
func (h *EnrollmentHandler) EnrollMultiple(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req models.EnrollMultipleRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.EnrollMultiple(r.Context(), userID, req.Courses); err != nil {
		h.RespondServiceError(w, err, "failed to enroll in courses")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Enrolled successfully")
}

// Check handles GET /enroll/check/{courseId}
// @Summary Check enrollment
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.EnrollmentStatus
// @Router /enroll/check/{courseId} [get]
func (h *EnrollmentHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	status, err := h.service.IsEnrolled(r.Context(), userID, chi.URLParam(r, "courseId"))
	if err != nil {
		h.RespondServiceError(w, err, "failed to check enrollment")
		return
	}

	h.RespondJSON(w, http.StatusOK, status)
}

// MyCourses handles GET /user/courses
// @Summary Enrolled courses
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course
// @Router /user/courses [get]
func (h *EnrollmentHandler) MyCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	courses, err := h.service.GetMyCourses(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get enrolled courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}
