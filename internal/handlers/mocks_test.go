package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dambastudy/backend/internal/models"
	authMiddleware "github.com/dambastudy/backend/libs/auth/middleware"
	"github.com/dambastudy/backend/libs/auth/service"
	"github.com/go-chi/chi/v5"
)

// testUserHeader carries the caller id into fakeAuth
const testUserHeader = "X-Test-User"

// fakeAuth stands in for the token middleware: it trusts testUserHeader
func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(testUserHeader)
		if userID == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		identity := &service.Identity{UserID: userID, IsAdmin: userID == "admin"}
		next.ServeHTTP(w, r.WithContext(authMiddleware.WithIdentity(r.Context(), identity)))
	})
}

// serve sends a request through a fresh router and returns the recorder
func serve(t *testing.T, register func(r chi.Router), method, target, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	register(r)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req.Header.Set(testUserHeader, userID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type mockAuthService struct {
	registerFunc       func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	loginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	getCurrentUserFunc func(ctx context.Context, userID string) (*models.UserResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	return m.registerFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) GetCurrentUser(ctx context.Context, userID string) (*models.UserResponse, error) {
	return m.getCurrentUserFunc(ctx, userID)
}

type mockProfileService struct {
	updateProfileFunc  func(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserResponse, error)
	changePasswordFunc func(ctx context.Context, userID string, req *models.ChangePasswordRequest) error
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	return m.updateProfileFunc(ctx, userID, req)
}

func (m *mockProfileService) ChangePassword(ctx context.Context, userID string, req *models.ChangePasswordRequest) error {
	return m.changePasswordFunc(ctx, userID, req)
}

type mockCategoryService struct {
	categories []models.Category
	created    *models.CreateCategoryRequest
	deleteErr  error
	deletedID  string
}

func (m *mockCategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryService) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	m.created = req
	return &models.Category{ID: "cat-new", Name: req.Name}, nil
}

func (m *mockCategoryService) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

type mockCourseService struct {
	listFunc       func(ctx context.Context, filter models.CourseFilter) (*models.CourseListResponse, error)
	getByIDFunc    func(ctx context.Context, id string) (*models.Course, error)
	getLessonsFunc func(ctx context.Context, userID, courseID string) ([]models.Lesson, error)
	getLessonFunc  func(ctx context.Context, userID, courseID, lessonID string) (*models.LessonDetailResponse, error)
	createFunc     func(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	updateFunc     func(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error)
	deleteFunc     func(ctx context.Context, id string) error
	addReviewFunc  func(ctx context.Context, userID, courseID string, req *models.ReviewRequest) (*models.Review, error)
	popular        []models.Course
}

func (m *mockCourseService) List(ctx context.Context, filter models.CourseFilter) (*models.CourseListResponse, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockCourseService) GetPopular(ctx context.Context) ([]models.Course, error) {
	return m.popular, nil
}

func (m *mockCourseService) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockCourseService) GetLessons(ctx context.Context, userID, courseID string) ([]models.Lesson, error) {
	return m.getLessonsFunc(ctx, userID, courseID)
}

func (m *mockCourseService) GetLesson(ctx context.Context, userID, courseID, lessonID string) (*models.LessonDetailResponse, error) {
	return m.getLessonFunc(ctx, userID, courseID, lessonID)
}

func (m *mockCourseService) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	return m.createFunc(ctx, req)
}

func (m *mockCourseService) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *mockCourseService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockCourseService) AddReview(ctx context.Context, userID, courseID string, req *models.ReviewRequest) (*models.Review, error) {
	return m.addReviewFunc(ctx, userID, courseID, req)
}

type mockEnrollmentService struct {
	enrolled   map[string][]string
	enrollErr  error
	myCourses  []models.Course
	lastUserID string
}

func (m *mockEnrollmentService) Enroll(ctx context.Context, userID, courseID string) error {
	return m.EnrollMultiple(ctx, userID, []string{courseID})
}

func (m *mockEnrollmentService) EnrollMultiple(ctx context.Context, userID string, courseIDs []string) error {
	m.lastUserID = userID
	if m.enrollErr != nil {
		return m.enrollErr
	}
	if m.enrolled == nil {
		m.enrolled = make(map[string][]string)
	}
	m.enrolled[userID] = append(m.enrolled[userID], courseIDs...)
	return nil
}

func (m *mockEnrollmentService) IsEnrolled(ctx context.Context, userID, courseID string) (*models.EnrollmentStatus, error) {
	for _, id := range m.enrolled[userID] {
		if id == courseID {
			return &models.EnrollmentStatus{Enrolled: true}, nil
		}
	}
	return &models.EnrollmentStatus{Enrolled: false}, nil
}

func (m *mockEnrollmentService) GetMyCourses(ctx context.Context, userID string) ([]models.Course, error) {
	m.lastUserID = userID
	return m.myCourses, nil
}

type mockProgressService struct {
	completed map[string][]string
}

func (m *mockProgressService) MarkComplete(ctx context.Context, userID string, req *models.CompleteLessonRequest) error {
	if m.completed == nil {
		m.completed = make(map[string][]string)
	}
	m.completed[req.CourseID] = append(m.completed[req.CourseID], req.LessonID)
	return nil
}

func (m *mockProgressService) GetProgress(ctx context.Context, userID, courseID string) (*models.ProgressResponse, error) {
	ids := m.completed[courseID]
	if ids == nil {
		ids = []string{}
	}
	return &models.ProgressResponse{CompletedLessons: ids}, nil
}

type mockCertificateService struct {
	certificates []models.Certificate
	pdf          []byte
}

func (m *mockCertificateService) Create(ctx context.Context, userID string, req *models.CreateCertificateRequest) (*models.Certificate, error) {
	cert := models.Certificate{ID: "cert-new", UserID: userID, CourseTitle: req.CourseTitle, StudentName: req.StudentName, Date: "2024-06-01"}
	m.certificates = append(m.certificates, cert)
	return &cert, nil
}

func (m *mockCertificateService) List(ctx context.Context, userID string) ([]models.Certificate, error) {
	return m.certificates, nil
}

func (m *mockCertificateService) Get(ctx context.Context, userID, id string) (*models.Certificate, error) {
	for i := range m.certificates {
		if m.certificates[i].ID == id && m.certificates[i].UserID == userID {
			return &m.certificates[i], nil
		}
	}
	return nil, errCertificateNotFound
}

func (m *mockCertificateService) RenderPDF(ctx context.Context, userID, id string) ([]byte, *models.Certificate, error) {
	cert, err := m.Get(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	return m.pdf, cert, nil
}
