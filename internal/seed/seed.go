// Package seed fills an empty store with the default admin, categories and sample catalog.
// Running it again only adds what is missing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the part of the user repository the seeder needs
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// CategoryStore is the part of the category repository the seeder needs
type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

// CourseStore is the part of the course repository the seeder needs
type CourseStore interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error)
	Create(ctx context.Context, course *models.Course) error
	AddReview(ctx context.Context, courseID string, review *models.Review) error
}

// Admin holds the credentials of the bootstrap admin account
type Admin struct {
	Name     string
	Email    string
	Password string
}

// Result counts what a run created
type Result struct {
	AdminCreated bool
	Categories   int
	Courses      int
}

// Seeder writes the default data
type Seeder struct {
	users      UserStore
	categories CategoryStore
	courses    CourseStore
	logger     *zap.Logger
}

// NewSeeder creates a seeder on top of the given repositories
func NewSeeder(users UserStore, categories CategoryStore, courses CourseStore, logger *zap.Logger) *Seeder {
	return &Seeder{
		users:      users,
		categories: categories,
		courses:    courses,
		logger:     logger,
	}
}

// Run creates the admin, the categories and the sample courses that do not exist yet
func (s *Seeder) Run(ctx context.Context, admin Admin) (*Result, error) {
	result := &Result{}

	created, err := s.ensureAdmin(ctx, admin)
	if err != nil {
		return nil, err
	}
	result.AdminCreated = created

	categoryIDs, added, err := s.ensureCategories(ctx)
	if err != nil {
		return nil, err
	}
	result.Categories = added

	if result.Courses, err = s.ensureCourses(ctx, categoryIDs); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, admin Admin) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(admin.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin {
			s.logger.Warn("seed admin email belongs to a non-admin account", zap.String("email", email))
		}
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         admin.Name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("admin created", zap.String("email", email))
	return true, nil
}

// ensureCategories returns the ids of the default categories by name and how many were added
func (s *Seeder) ensureCategories(ctx context.Context) (map[string]string, int, error) {
	existing, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load categories: %w", err)
	}

	ids := make(map[string]string, len(existing))
	for _, c := range existing {
		ids[c.Name] = c.ID
	}

	added := 0
	for _, name := range defaultCategories {
		if _, ok := ids[name]; ok {
			continue
		}
		category := &models.Category{ID: uuid.NewString(), Name: name}
		if err := s.categories.Create(ctx, category); err != nil {
			return nil, 0, fmt.Errorf("failed to create category %q: %w", name, err)
		}
		ids[name] = category.ID
		added++
	}

	return ids, added, nil
}

func (s *Seeder) courseExists(ctx context.Context, title string) (bool, error) {
	courses, _, err := s.courses.List(ctx, models.CourseFilter{Search: title, Page: 1, Limit: 100})
	if err != nil {
		return false, fmt.Errorf("failed to look up course %q: %w", title, err)
	}
	for _, c := range courses {
		if c.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *Seeder) ensureCourses(ctx context.Context, categoryIDs map[string]string) (int, error) {
	added := 0
	for i, sample := range sampleCourses {
		exists, err := s.courseExists(ctx, sample.course.Title)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}

		course := sample.course
		course.ID = uuid.NewString()
		// Keep the catalog order stable for the newest-first listing
		course.CreatedAt = time.Now().UTC().Add(-time.Duration(len(sampleCourses)-i) * time.Minute)
		if id, ok := categoryIDs[sample.category]; ok {
			course.CategoryID = &id
		}

		course.Lessons = make([]models.Lesson, len(sampleLessons))
		for j, lesson := range sampleLessons {
			lesson.ID = uuid.NewString()
			course.Lessons[j] = lesson
		}

		if err := s.courses.Create(ctx, &course); err != nil {
			return added, fmt.Errorf("failed to create course %q: %w", course.Title, err)
		}

		for _, review := range sampleReviews {
			review.ID = uuid.NewString()
			review.UserID = uuid.NewString()
			review.Date = time.Now().UTC()
			if err := s.courses.AddReview(ctx, course.ID, &review); err != nil {
				return added, fmt.Errorf("failed to review course %q: %w", course.Title, err)
			}
		}

		s.logger.Info("course created", zap.String("title", course.Title))
		added++
	}

	return added, nil
}
