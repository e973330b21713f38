package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dambastudy/backend/internal/models"
)

// Register creates an account
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user the token belongs to
func (c *Client) Me(ctx context.Context) (*models.UserResponse, error) {
	var user models.UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the caller's name or email
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserResponse, error) {
	var user models.UserResponse
	if err := c.do(ctx, http.MethodPut, "/user/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the caller's password
func (c *Client) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPut, "/user/password", req, nil)
}

// Categories lists every category
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a category (admin)
func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/admin/categories", models.CreateCategoryRequest{Name: name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category (admin)
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/categories/"+url.PathEscape(id), nil, nil)
}

// Courses returns a page of the catalog
func (c *Client) Courses(ctx context.Context, q CourseQuery) (*models.CourseListResponse, error) {
	var resp models.CourseListResponse
	if err := c.do(ctx, http.MethodGet, "/courses"+q.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminCourses returns a page of the catalog from the admin listing
func (c *Client) AdminCourses(ctx context.Context, q CourseQuery) (*models.CourseListResponse, error) {
	var resp models.CourseListResponse
	if err := c.do(ctx, http.MethodGet, "/admin/courses"+q.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PopularCourses returns the most enrolled courses
func (c *Client) PopularCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/courses/popular", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course returns one course with lessons and reviews
func (c *Client) Course(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, "/courses/"+url.PathEscape(id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse adds a course (admin)
func (c *Client) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPost, "/admin/courses", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse changes a course (admin)
func (c *Client) UpdateCourse(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPut, "/admin/courses/"+url.PathEscape(id), req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course (admin)
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/courses/"+url.PathEscape(id), nil, nil)
}

// Lessons returns the lessons of an enrolled course
func (c *Client) Lessons(ctx context.Context, courseID string) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := c.do(ctx, http.MethodGet, "/courses/"+url.PathEscape(courseID)+"/lessons", nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// Lesson returns one lesson of an enrolled course
func (c *Client) Lesson(ctx context.Context, courseID, lessonID string) (*models.LessonDetailResponse, error) {
	var resp models.LessonDetailResponse
	path := "/courses/" + url.PathEscape(courseID) + "/lessons/" + url.PathEscape(lessonID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddReview posts a review
func (c *Client) AddReview(ctx context.Context, courseID string, req models.ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/courses/"+url.PathEscape(courseID)+"/reviews", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Enroll enrolls the caller in one course
func (c *Client) Enroll(ctx context.Context, courseID string) error {
	return c.do(ctx, http.MethodPost, "/enroll", models.EnrollRequest{CourseID: courseID}, nil)
}

// EnrollMultiple enrolls the caller in every listed course
func (c *Client) EnrollMultiple(ctx context.Context, courseIDs []string) error {
	return c.do(ctx, http.MethodPost, "/enroll/multiple", models.EnrollMultipleRequest{Courses: courseIDs}, nil)
}

// IsEnrolled reports whether the caller is enrolled in the course
func (c *Client) IsEnrolled(ctx context.Context, courseID string) (bool, error) {
	var status models.EnrollmentStatus
	if err := c.do(ctx, http.MethodGet, "/enroll/check/"+url.PathEscape(courseID), nil, &status); err != nil {
		return false, err
	}
	return status.Enrolled, nil
}

// MyCourses returns the caller's enrolled courses
func (c *Client) MyCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/user/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CompleteLesson marks a lesson complete
func (c *Client) CompleteLesson(ctx context.Context, courseID, lessonID string) error {
	return c.do(ctx, http.MethodPost, "/progress/complete", models.CompleteLessonRequest{CourseID: courseID, LessonID: lessonID}, nil)
}

// Progress returns the completed lesson ids of a course
func (c *Client) Progress(ctx context.Context, courseID string) ([]string, error) {
	var resp models.ProgressResponse
	if err := c.do(ctx, http.MethodGet, "/progress/"+url.PathEscape(courseID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.CompletedLessons, nil
}

// Certificates lists the caller's certificates
func (c *Client) Certificates(ctx context.Context) ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := c.do(ctx, http.MethodGet, "/user/certificates", nil, &certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}

// Certificate returns one of the caller's certificates
func (c *Client) Certificate(ctx context.Context, id string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := c.do(ctx, http.MethodGet, "/user/certificates/"+url.PathEscape(id), nil, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

// CreateCertificate stores a certificate for the caller
func (c *Client) CreateCertificate(ctx context.Context, req models.CreateCertificateRequest) (*models.Certificate, error) {
	var cert models.Certificate
	if err := c.do(ctx, http.MethodPost, "/user/certificates", req, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

// CertificatePDF downloads the rendered certificate
func (c *Client) CertificatePDF(ctx context.Context, id string) ([]byte, error) {
	return c.download(ctx, "/user/certificates/"+url.PathEscape(id)+"/pdf")
}
