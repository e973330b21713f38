package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dambastudy/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_BearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u-1","name":"Ann","email":"ann@example.com","isAdmin":false}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/")

	t.Run("no token", func(t *testing.T) {
		_, err := c.Me(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("with token", func(t *testing.T) {
		c.SetToken("abc")
		user, err := c.Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer abc", gotAuth)
		assert.Equal(t, "Ann", user.Name)
	})
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
		unauthorized    bool
	}{
		{name: "server message", status: http.StatusNotFound, body: `{"error":"course not found"}`, expectedMessage: "course not found"},
		{name: "no body", status: http.StatusBadGateway, body: ``, expectedMessage: "request failed with status 502"},
		{name: "unauthorized runs callback", status: http.StatusUnauthorized, body: `{"error":"invalid or expired token"}`, expectedMessage: "invalid or expired token", unauthorized: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			called := false
			c := New(srv.URL, WithUnauthorizedHandler(func() { called = true }))

			_, err := c.Course(context.Background(), "c-1")
			require.Error(t, err)
			assert.Equal(t, tt.expectedMessage, err.Error())
			assert.Equal(t, tt.unauthorized, called)
			assert.Equal(t, tt.unauthorized, IsUnauthorized(err))
			assert.Equal(t, tt.status == http.StatusNotFound, IsNotFound(err))
		})
	}
}

func TestClient_Courses(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(models.CourseListResponse{
			Courses: []models.Course{{ID: "c-1", Title: "Go", Price: 10}},
			Total:   1,
			Page:    1,
			Pages:   1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	resp, err := c.Courses(context.Background(), CourseQuery{Category: "Web Dev", Sort: "price-low", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, "category=Web+Dev&page=2&sort=price-low", gotQuery)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "Go", resp.Courses[0].Title)

	_, err = c.Courses(context.Background(), CourseQuery{})
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestClient_EnrollMultiple(t *testing.T) {
	var got models.EnrollMultipleRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/enroll/multiple", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"message":"Enrolled successfully"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).EnrollMultiple(context.Background(), []string{"c-1", "c-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1", "c-2"}, got.Courses)
}

func TestClient_CertificatePDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/certificates/cert-1/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.3"))
	}))
	defer srv.Close()

	data, err := New(srv.URL).CertificatePDF(context.Background(), "cert-1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
}
