package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dambastudy/backend/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI is an in-memory stand-in for the REST API
type fakeAPI struct {
	mu          sync.Mutex
	expired     bool
	lastQuery   string
	enrolled    []string
	completed   []string
	updateBody  map[string]any
	categories  []models.Category
	certificate models.Certificate
}

var testCourse = models.Course{
	ID:    "c-1",
	Title: "Go Basics",
	Price: 19.99,
	Level: models.LevelBeginner,
	Lessons: []models.Lesson{
		{ID: "l-1", Title: "Intro", Order: 1},
		{ID: "l-2", Title: "Types", Order: 2},
	},
	Rating: 4.5,
}

var testUsers = map[string]models.UserResponse{
	"tok-user":  {ID: "u-1", Name: "Ann", Email: "ann@example.com"},
	"tok-admin": {ID: "u-9", Name: "Root", Email: "admin@example.com", IsAdmin: true},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) authorized(w http.ResponseWriter, r *http.Request) (models.UserResponse, bool) {
	f.mu.Lock()
	expired := f.expired
	f.mu.Unlock()

	user, ok := testUsers[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
	if !ok || expired {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
		return models.UserResponse{}, false
	}
	return user, true
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		token := "tok-user"
		if req.Email == "admin@example.com" {
			token = "tok-admin"
		}
		writeJSON(w, http.StatusOK, models.AuthResponse{Message: "Login successful", Token: token, User: testUsers[token]})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if user, ok := f.authorized(w, r); ok {
			writeJSON(w, http.StatusOK, user)
		}
	})

	mux.HandleFunc("GET /api/courses", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastQuery = r.URL.RawQuery
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, models.CourseListResponse{Courses: []models.Course{testCourse}, Total: 1, Page: 1, Pages: 1})
	})
	mux.HandleFunc("GET /api/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != testCourse.ID {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "course not found"})
			return
		}
		writeJSON(w, http.StatusOK, testCourse)
	})
	mux.HandleFunc("GET /api/courses/{id}/lessons", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := f.authorized(w, r); ok {
			writeJSON(w, http.StatusOK, testCourse.Lessons)
		}
	})

	mux.HandleFunc("POST /api/enroll/multiple", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := f.authorized(w, r); !ok {
			return
		}
		var req models.EnrollMultipleRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.enrolled = append(f.enrolled, req.Courses...)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Enrolled successfully"})
	})
	mux.HandleFunc("GET /api/user/courses", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := f.authorized(w, r); ok {
			writeJSON(w, http.StatusOK, []models.Course{testCourse})
		}
	})

	mux.HandleFunc("POST /api/progress/complete", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := f.authorized(w, r); !ok {
			return
		}
		var req models.CompleteLessonRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.completed = append(f.completed, req.LessonID)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Lesson marked as complete"})
	})
	mux.HandleFunc("GET /api/progress/{courseId}", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := f.authorized(w, r); !ok {
			return
		}
		f.mu.Lock()
		completed := append([]string{}, f.completed...)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, models.ProgressResponse{CompletedLessons: completed})
	})

	mux.HandleFunc("POST /api/user/certificates", func(w http.ResponseWriter, r *http.Request) {
		user, ok := f.authorized(w, r)
		if !ok {
			return
		}
		var req models.CreateCertificateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		cert := models.Certificate{ID: "cert-1", UserID: user.ID, CourseTitle: req.CourseTitle, StudentName: req.StudentName, Date: "1/2/2026"}
		f.mu.Lock()
		f.certificate = cert
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, cert)
	})
	mux.HandleFunc("GET /api/user/certificates/{id}/pdf", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := f.authorized(w, r); !ok {
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.3 fake"))
	})

	mux.HandleFunc("POST /api/admin/categories", func(w http.ResponseWriter, r *http.Request) {
		user, ok := f.authorized(w, r)
		if !ok {
			return
		}
		if !user.IsAdmin {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "admin access required"})
			return
		}
		var req models.CreateCategoryRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		category := models.Category{ID: "cat-1", Name: req.Name}
		f.mu.Lock()
		f.categories = append(f.categories, category)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, category)
	})
	mux.HandleFunc("PUT /api/admin/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := f.authorized(w, r); !ok {
			return
		}
		body := map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.updateBody = body
		f.mu.Unlock()
		updated := testCourse
		if title, ok := body["title"].(string); ok {
			updated.Title = title
		}
		writeJSON(w, http.StatusOK, updated)
	})

	return mux
}

// testEnv runs commands against one fake API and one state directory
type testEnv struct {
	t   *testing.T
	api *fakeAPI
	srv *httptest.Server
	dir string
	out *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return &testEnv{t: t, api: api, srv: srv, dir: t.TempDir(), out: &bytes.Buffer{}}
}

// run builds a fresh App from the saved state, as a new process would
func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	e.out.Reset()

	ctx := context.Background()
	app, err := NewApp(ctx, e.srv.URL+"/api", e.dir, e.out, zap.NewNop())
	require.NoError(e.t, err)

	root := NewRootCommand(app)
	root.SetArgs(args)
	err = root.ExecuteContext(ctx)
	return e.out.String(), err
}

func (e *testEnv) login(email string) {
	e.t.Helper()
	_, err := e.run("login", "--email", email, "--password", "secret1")
	require.NoError(e.t, err)
}
