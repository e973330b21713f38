package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dambastudy/backend/internal/models"
	authMiddleware "github.com/dambastudy/backend/libs/auth/middleware"
	"github.com/dambastudy/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CertificateService is the interface that wraps methods for certificates
type CertificateService interface {
	// Create stores a certificate dated today
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the owner.
	// "req" holds the course title and student name.
	Create(ctx context.Context, userID string, req *models.CreateCertificateRequest) (*models.Certificate, error)
	// List returns the user's certificates, newest first
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the owner.
	List(ctx context.Context, userID string) ([]models.Certificate, error)
	// Get returns one of the user's certificates
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the owner.
	// "id" is the ID of the certificate.
	Get(ctx context.Context, userID, id string) (*models.Certificate, error)
	// RenderPDF draws one of the user's certificates
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the owner.
	// "id" is the ID of the certificate.
	//
	// Returns the PDF document, the certificate and an error if any.
	RenderPDF(ctx context.Context, userID, id string) ([]byte, *models.Certificate, error)
}

// CertificateHandler handles HTTP requests for certificates
type CertificateHandler struct {
	handlers.BaseHandler
	service CertificateService
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(svc CertificateService, logger *zap.Logger) *CertificateHandler {
	return &CertificateHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all certificate handler routes
func (h *CertificateHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/user/certificates", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/pdf", h.Download)
	})
}

// List handles GET /user/certificates
// @Summary List certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Certificate
// @Router /user/certificates [get]
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	certificates, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to list certificates")
		return
	}

	h.RespondJSON(w, http.StatusOK, certificates)
}

// Create handles POST /user/certificates
// @Summary Create a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCertificateRequest true "Certificate"
// @Success 201 {object} models.Certificate
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /user/certificates [post]
func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req models.CreateCertificateRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	cert, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create certificate")
		return
	}

	h.RespondJSON(w, http.StatusCreated, cert)
}

// Get handles GET /user/certificates/{id}
// @Summary Get a certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} models.Certificate
// @Failure 404 {object} map[string]string "Certificate not found"
// @Router /user/certificates/{id} [get]
func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cert, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err, "failed to get certificate")
		return
	}

	h.RespondJSON(w, http.StatusOK, cert)
}

// Download handles GET /user/certificates/{id}/pdf
// @Summary Download a certificate
// @Tags certificates
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Certificate not found"
// @Router /user/certificates/{id}/pdf [get]
func (h *CertificateHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	data, cert, err := h.service.RenderPDF(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err, "failed to render certificate")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="certificate-%s.pdf"`, cert.ID))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Error("failed to write certificate", zap.Error(err))
	}
}
