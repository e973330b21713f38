package services

import (
	"context"
	"slices"
	"sort"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
)

// mockUserRepository is an in-memory implementation of UserRepository
type mockUserRepository struct {
	users     map[string]*models.User
	err       error
	existsErr error
	updateErr error
}

func newMockUserRepository(users ...*models.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperrors.NewConflictError("email already exists")
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	stored := m.users[user.ID]
	stored.Name = user.Name
	stored.Email = user.Email
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	u, ok := m.users[userID]
	if !ok {
		return apperrors.NewNotFoundError("user not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

// mockCategoryRepository is a mock implementation of CategoryRepository
type mockCategoryRepository struct {
	categories []models.Category
	err        error
	deleted    []string
}

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *mockCategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, c := range m.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.err != nil {
		return m.err
	}
	m.categories = append(m.categories, *category)
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i, c := range m.categories {
		if c.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return apperrors.NewNotFoundError("category not found")
}

// mockCourseRepository is an in-memory implementation of CourseRepository
type mockCourseRepository struct {
	courses        map[string]*models.Course
	err            error
	lastFilter     models.CourseFilter
	popularCalls   int
	replaceLessons bool
}

func newMockCourseRepository(courses ...models.Course) *mockCourseRepository {
	m := &mockCourseRepository{courses: make(map[string]*models.Course)}
	for i := range courses {
		c := courses[i]
		m.courses[c.ID] = &c
	}
	return m
}

func (m *mockCourseRepository) sorted() []models.Course {
	result := make([]models.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockCourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, 0, m.err
	}
	courses := m.sorted()
	if filter.Sort == models.SortPriceLow {
		sort.SliceStable(courses, func(i, j int) bool { return courses[i].Price < courses[j].Price })
	}
	return courses, len(courses), nil
}

func (m *mockCourseRepository) GetPopular(ctx context.Context, limit int) ([]models.Course, error) {
	m.popularCalls++
	if m.err != nil {
		return nil, m.err
	}
	courses := m.sorted()
	sort.SliceStable(courses, func(i, j int) bool { return courses[i].EnrolledCount > courses[j].EnrolledCount })
	if len(courses) > limit {
		courses = courses[:limit]
	}
	return courses, nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.courses[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	copied := *c
	copied.Lessons = slices.Clone(c.Lessons)
	return &copied, nil
}

func (m *mockCourseRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.courses[id]; ok {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCourseRepository) FilterExisting(ctx context.Context, ids []string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := m.courses[id]; ok {
			result = append(result, id)
		}
	}
	return result, nil
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if m.err != nil {
		return m.err
	}
	copied := *course
	m.courses[course.ID] = &copied
	return nil
}

func (m *mockCourseRepository) Update(ctx context.Context, course *models.Course, replaceLessons bool) error {
	if m.err != nil {
		return m.err
	}
	m.replaceLessons = replaceLessons
	stored := *course
	if !replaceLessons {
		stored.Lessons = m.courses[course.ID].Lessons
	}
	m.courses[course.ID] = &stored
	return nil
}

func (m *mockCourseRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.courses[id]; !ok {
		return apperrors.NewNotFoundError("course not found")
	}
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepository) AddReview(ctx context.Context, courseID string, review *models.Review) error {
	if m.err != nil {
		return m.err
	}
	c := m.courses[courseID]
	c.Reviews = append(c.Reviews, *review)
	return nil
}

func (m *mockCourseRepository) IncrementEnrolledCount(ctx context.Context, ids []string) error {
	if m.err != nil {
		return m.err
	}
	for _, id := range ids {
		if c, ok := m.courses[id]; ok {
			c.EnrolledCount++
		}
	}
	return nil
}

// mockEnrollmentRepository is an in-memory implementation of EnrollmentRepository
type mockEnrollmentRepository struct {
	courses map[string][]string
	err     error
}

func newMockEnrollmentRepository() *mockEnrollmentRepository {
	return &mockEnrollmentRepository{courses: make(map[string][]string)}
}

func (m *mockEnrollmentRepository) Add(ctx context.Context, userID string, courseIDs []string) error {
	if m.err != nil {
		return m.err
	}
	for _, id := range courseIDs {
		if !slices.Contains(m.courses[userID], id) {
			m.courses[userID] = append(m.courses[userID], id)
		}
	}
	return nil
}

func (m *mockEnrollmentRepository) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return slices.Contains(m.courses[userID], courseID), nil
}

func (m *mockEnrollmentRepository) GetCourseIDs(ctx context.Context, userID string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]string{}, m.courses[userID]...), nil
}

// mockProgressRepository is an in-memory implementation of ProgressRepository
type mockProgressRepository struct {
	completed []models.CompletedLesson
	err       error
}

func (m *mockProgressRepository) MarkComplete(ctx context.Context, userID, courseID, lessonID string) error {
	if m.err != nil {
		return m.err
	}
	record := models.CompletedLesson{CourseID: courseID, LessonID: lessonID}
	if !slices.Contains(m.completed, record) {
		m.completed = append(m.completed, record)
	}
	return nil
}

func (m *mockProgressRepository) GetCompletedLessonIDs(ctx context.Context, userID, courseID string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]string, 0)
	for _, c := range m.completed {
		if c.CourseID == courseID {
			ids = append(ids, c.LessonID)
		}
	}
	return ids, nil
}

// mockPopularCache is a mock implementation of PopularCache
type mockPopularCache struct {
	courses     []models.Course
	hit         bool
	sets        int
	invalidated int
}

func (m *mockPopularCache) Get(ctx context.Context) ([]models.Course, bool) {
	return m.courses, m.hit
}

func (m *mockPopularCache) Set(ctx context.Context, courses []models.Course) {
	m.sets++
	m.courses = courses
}

func (m *mockPopularCache) Invalidate(ctx context.Context) {
	m.invalidated++
	m.hit = false
}
