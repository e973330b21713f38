package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type memoryStore struct {
	users      map[string]*models.User
	categories []models.Category
	courses    []models.Course
	reviews    map[string][]models.Review
	listErr    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:   map[string]*models.User{},
		reviews: map[string][]models.Review{},
	}
}

func (m *memoryStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}

func (m *memoryStore) Create(ctx context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

type categoryStore struct{ *memoryStore }

func (c categoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category{}, c.categories...), nil
}

func (c categoryStore) Create(ctx context.Context, category *models.Category) error {
	c.categories = append(c.categories, *category)
	return nil
}

type courseStore struct{ *memoryStore }

func (c courseStore) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	if c.listErr != nil {
		return nil, 0, c.listErr
	}
	var out []models.Course
	for _, course := range c.courses {
		if strings.Contains(strings.ToLower(course.Title), strings.ToLower(filter.Search)) {
			out = append(out, course)
		}
	}
	return out, len(out), nil
}

func (c courseStore) Create(ctx context.Context, course *models.Course) error {
	c.courses = append(c.courses, *course)
	return nil
}

func (c courseStore) AddReview(ctx context.Context, courseID string, review *models.Review) error {
	c.reviews[courseID] = append(c.reviews[courseID], *review)
	return nil
}

func newTestSeeder(store *memoryStore) *Seeder {
	return NewSeeder(store, categoryStore{store}, courseStore{store}, zap.NewNop())
}

var testAdmin = Admin{Name: "Admin", Email: " Admin@Example.com ", Password: "admin123"}

func TestSeeder_Run(t *testing.T) {
	store := newMemoryStore()
	seeder := newTestSeeder(store)

	result, err := seeder.Run(context.Background(), testAdmin)
	require.NoError(t, err)

	assert.True(t, result.AdminCreated)
	assert.Equal(t, len(defaultCategories), result.Categories)
	assert.Equal(t, len(sampleCourses), result.Courses)

	admin, ok := store.users["admin@example.com"]
	require.True(t, ok)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	categoryNames := map[string]string{}
	for _, c := range store.categories {
		categoryNames[c.ID] = c.Name
	}

	for i, course := range store.courses {
		assert.Len(t, course.Lessons, 8)
		assert.NotEmpty(t, course.Lessons[0].ID)
		assert.NotEqual(t, course.Lessons[0].ID, course.Lessons[1].ID)
		require.NotNil(t, course.CategoryID)
		assert.Equal(t, sampleCourses[i].category, categoryNames[*course.CategoryID])
		assert.Len(t, store.reviews[course.ID], 2)
		if i > 0 {
			assert.True(t, course.CreatedAt.After(store.courses[i-1].CreatedAt))
		}
	}
}

func TestSeeder_RunTwice(t *testing.T) {
	store := newMemoryStore()
	seeder := newTestSeeder(store)

	_, err := seeder.Run(context.Background(), testAdmin)
	require.NoError(t, err)

	result, err := seeder.Run(context.Background(), testAdmin)
	require.NoError(t, err)

	assert.False(t, result.AdminCreated)
	assert.Zero(t, result.Categories)
	assert.Zero(t, result.Courses)
	assert.Len(t, store.categories, len(defaultCategories))
	assert.Len(t, store.courses, len(sampleCourses))
}

func TestSeeder_KeepsExistingCategories(t *testing.T) {
	store := newMemoryStore()
	store.categories = []models.Category{{ID: "cat-prog", Name: "Programming"}}

	result, err := newTestSeeder(store).Run(context.Background(), testAdmin)
	require.NoError(t, err)

	assert.Equal(t, len(defaultCategories)-1, result.Categories)
	for _, course := range store.courses {
		if course.Title == "Python Zero to Hero" {
			require.NotNil(t, course.CategoryID)
			assert.Equal(t, "cat-prog", *course.CategoryID)
		}
	}
}

func TestSeeder_ListError(t *testing.T) {
	store := newMemoryStore()
	store.listErr = errors.New("database error")

	_, err := newTestSeeder(store).Run(context.Background(), testAdmin)
	assert.ErrorContains(t, err, "failed to look up course")
}
