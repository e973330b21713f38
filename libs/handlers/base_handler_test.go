package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dambastudy/backend/libs/apperrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: apperrors.NewValidationError("bad"), expected: http.StatusBadRequest},
		{name: "credentials", err: apperrors.ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "unauthorized", err: apperrors.NewUnauthorizedError("gone"), expected: http.StatusUnauthorized},
		{name: "forbidden", err: apperrors.NewForbiddenError("no"), expected: http.StatusForbidden},
		{name: "not found wrapped", err: fmt.Errorf("failed: %w", apperrors.NewNotFoundError("course not found")), expected: http.StatusNotFound},
		{name: "conflict", err: apperrors.NewConflictError("dup"), expected: http.StatusConflict},
		{name: "unknown", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.err))
		})
	}
}

func TestBaseHandler_RespondServiceError(t *testing.T) {
	h := &BaseHandler{Logger: zap.NewNop()}

	t.Run("known kind exposes message", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.RespondServiceError(w, apperrors.NewNotFoundError("course not found"), "failed to get course")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"course not found"}`, w.Body.String())
	})

	t.Run("internal error is hidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.RespondServiceError(w, errors.New("dial tcp: connection refused"), "failed to get course")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

type decodeTarget struct {
	Name string `json:"name" validate:"required"`
}

func TestBaseHandler_DecodeJSON(t *testing.T) {
	h := &BaseHandler{Logger: zap.NewNop()}

	tests := []struct {
		name           string
		body           string
		expectedOK     bool
		expectedStatus int
		expectedBody   string
	}{
		{name: "valid", body: `{"name":"Programming"}`, expectedOK: true, expectedStatus: http.StatusOK},
		{name: "malformed", body: `{"name":`, expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"invalid request body"}`},
		{name: "fails validation", body: `{}`, expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"name is required"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst decodeTarget
			ok := h.DecodeJSON(w, req, &dst)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestBaseHandler_RespondMessage(t *testing.T) {
	h := &BaseHandler{Logger: zap.NewNop()}
	w := httptest.NewRecorder()

	h.RespondMessage(w, http.StatusCreated, "Review added")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Review added"}`, w.Body.String())
}
