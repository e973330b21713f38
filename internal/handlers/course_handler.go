package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dambastudy/backend/internal/models"
	authMiddleware "github.com/dambastudy/backend/libs/auth/middleware"
	"github.com/dambastudy/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// adminListLimit is the page size of the admin course list when none is given
const adminListLimit = 100

// CourseService is the interface that wraps methods for the course catalog
type CourseService interface {
	// List retrieves a page of courses matching the filter
	//
	// "ctx" is the context for the request.
	// "filter" holds the query parameters; page and limit are normalized by the service.
	List(ctx context.Context, filter models.CourseFilter) (*models.CourseListResponse, error)
	// GetPopular returns the most enrolled courses
	//
	// "ctx" is the context for the request.
	GetPopular(ctx context.Context) ([]models.Course, error)
	// GetByID retrieves a course with lessons and reviews
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	GetByID(ctx context.Context, id string) (*models.Course, error)
	// GetLessons returns the ordered lessons of a course the user is enrolled in
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns a Forbidden error if the user is not enrolled.
	GetLessons(ctx context.Context, userID, courseID string) ([]models.Lesson, error)
	// GetLesson returns one lesson together with its siblings
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	// "lessonID" is the ID of the lesson.
	GetLesson(ctx context.Context, userID, courseID, lessonID string) (*models.LessonDetailResponse, error)
	// Create adds a course
	//
	// "ctx" is the context for the request.
	// "req" holds the full course.
	Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	// Update merges the provided fields into a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	// "req" holds the fields to change.
	Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error)
	// Delete removes a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	Delete(ctx context.Context, id string) error
	// AddReview appends the user's review to a course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the author.
	// "courseID" is the ID of the course.
	// "req" holds the rating and comment.
	AddReview(ctx context.Context, userID, courseID string, req *models.ReviewRequest) (*models.Review, error)
}

// CourseHandler handles HTTP requests for courses, lessons and reviews
type CourseHandler struct {
	handlers.BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the catalog routes and the authenticated lesson and review routes
func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/popular", h.GetPopular)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/{id}/lessons", h.GetLessons)
			r.Get("/{id}/lessons/{lessonId}", h.GetLesson)
			r.Post("/{id}/reviews", h.AddReview)
		})
	})
}

// RegisterAdminRoutes registers the course routes of the admin router
func (h *CourseHandler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.AdminList)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// parseFilter reads the catalog query parameters.
// Malformed numbers are ignored and left to the service defaults.
func parseFilter(r *http.Request, defaultLimit int) models.CourseFilter {
	query := r.URL.Query()

	filter := models.CourseFilter{
		Category: query.Get("category"),
		Level:    models.Level(query.Get("level")),
		Search:   query.Get("search"),
		Sort:     query.Get("sort"),
		Limit:    defaultLimit,
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}

// List handles GET /courses
// @Summary List courses
// @Description Paginated catalog with category, level and text filters
// @Tags courses
// @Produce json
// @Param category query string false "Category name"
// @Param level query string false "Beginner, Intermediate or Advanced"
// @Param search query string false "Case-insensitive text in title or description"
// @Param sort query string false "price-low, price-high, popular or rating (default: newest)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 12, max: 100)"
// @Success 200 {object} models.CourseListResponse
// @Failure 400 {object} map[string]string "Invalid level"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, 0)
}

// AdminList handles GET /admin/courses
// @Summary List courses for administration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 100)"
// @Success 200 {object} models.CourseListResponse
// @Router /admin/courses [get]
func (h *CourseHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, adminListLimit)
}

func (h *CourseHandler) list(w http.ResponseWriter, r *http.Request, defaultLimit int) {
	resp, err := h.service.List(r.Context(), parseFilter(r, defaultLimit))
	if err != nil {
		h.RespondServiceError(w, err, "failed to list courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// GetPopular handles GET /courses/popular
// @Summary Popular courses
// @Description The six most enrolled courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses/popular [get]
func (h *CourseHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.GetPopular(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "failed to get popular courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// GetByID handles GET /courses/{id}
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{id} [get]
func (h *CourseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err, "failed to get course")
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// GetLessons handles GET /courses/{id}/lessons
// @Summary Lessons of an enrolled course
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {array} models.Lesson
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not enrolled in this course"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{id}/lessons [get]
func (h *CourseHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	lessons, err := h.service.GetLessons(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err, "failed to get lessons")
		return
	}

	h.RespondJSON(w, http.StatusOK, lessons)
}

// GetLesson handles GET /courses/{id}/lessons/{lessonId}
// @Summary Single lesson of an enrolled course
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.LessonDetailResponse
// @Failure 403 {object} map[string]string "Not enrolled in this course"
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Router /courses/{id}/lessons/{lessonId} [get]
func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), userID, chi.URLParam(r, "id"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.RespondServiceError(w, err, "failed to get lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}

// AddReview handles POST /courses/{id}/reviews
// @Summary Review a course
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body models.ReviewRequest true "Rating and comment"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{id}/reviews [post]
func (h *CourseHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req models.ReviewRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	review, err := h.service.AddReview(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to add review")
		return
	}

	h.RespondJSON(w, http.StatusCreated, review)
}

// Create handles POST /admin/courses
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCourseRequest true "Course"
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /admin/courses [post]
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	course, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create course")
		return
	}

	h.RespondJSON(w, http.StatusCreated, course)
}

// Update handles PUT /admin/courses/{id}
// @Summary Update a course
// @Description Merges the provided fields; a lessons array replaces every lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body models.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string "Course not found"
// @Router /admin/courses/{id} [put]
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCourseRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	course, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to update course")
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// Delete handles DELETE /admin/courses/{id}
// @Summary Delete a course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Course not found"
// @Router /admin/courses/{id} [delete]
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.RespondServiceError(w, err, "failed to delete course")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Deleted")
}
