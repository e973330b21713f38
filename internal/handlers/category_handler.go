package handlers

import (
	"context"
	"net/http"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CategoryService is the interface that wraps methods for category operations
type CategoryService interface {
	// GetAll retrieves every category
	//
	// "ctx" is the context for the request.
	GetAll(ctx context.Context) ([]models.Category, error)
	// Create adds a category
	//
	// "ctx" is the context for the request.
	// "req" holds the category name.
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	// Delete removes a category; its courses are kept without a category
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the category.
	Delete(ctx context.Context, id string) error
}

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	handlers.BaseHandler
	service CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(svc CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the public category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.GetAll)
}

// RegisterAdminRoutes registers the category routes of the admin router
func (h *CategoryHandler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})
}

// GetAll handles GET /categories and GET /admin/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "failed to get categories")
		return
	}

	h.RespondJSON(w, http.StatusOK, categories)
}

// Create handles POST /admin/categories
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create category")
		return
	}

	h.RespondJSON(w, http.StatusCreated, category)
}

// Delete handles DELETE /admin/categories/{id}
// @Summary Delete a category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Category not found"
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.RespondServiceError(w, err, "failed to delete category")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Deleted")
}
