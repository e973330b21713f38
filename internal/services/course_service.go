package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Catalog paging
const (
	defaultPage  = 1
	defaultLimit = 12
	maxLimit     = 100
	popularLimit = 6
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// List retrieves a page of courses matching the filter
	//
	// "ctx" is the context for the request.
	// "filter" holds category name, level, search text, sort key and the normalized page and limit.
	//
	// Returns the page of courses, the total number of matches and an error if any.
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error)
	// GetPopular retrieves the most enrolled courses
	//
	// "ctx" is the context for the request.
	// "limit" is the maximum number of courses.
	GetPopular(ctx context.Context, limit int) ([]models.Course, error)
	// GetByID retrieves a course with its category, lessons and reviews
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns a NotFound error if the course does not exist.
	GetByID(ctx context.Context, id string) (*models.Course, error)
	// GetByIDs retrieves the courses with the given ids, skipping unknown ones
	//
	// "ctx" is the context for the request.
	// "ids" are the IDs of the courses.
	GetByIDs(ctx context.Context, ids []string) ([]models.Course, error)
	// FilterExisting returns the ids that belong to existing courses
	//
	// "ctx" is the context for the request.
	// "ids" are the IDs to check.
	FilterExisting(ctx context.Context, ids []string) ([]string, error)
	// Create inserts a course with its lessons
	//
	// "ctx" is the context for the request.
	// "course" is the course to insert, every id must already be set.
	Create(ctx context.Context, course *models.Course) error
	// Update saves every course field
	//
	// "ctx" is the context for the request.
	// "course" is the merged course.
	// "replaceLessons" replaces the stored lesson list with course.Lessons when set.
	Update(ctx context.Context, course *models.Course, replaceLessons bool) error
	// Delete removes a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns a NotFound error if the course does not exist.
	Delete(ctx context.Context, id string) error
	// AddReview appends a review to a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "review" is the review to append.
	AddReview(ctx context.Context, courseID string, review *models.Review) error
	// IncrementEnrolledCount adds one to the counter of each course
	//
	// "ctx" is the context for the request.
	// "ids" are distinct course IDs.
	IncrementEnrolledCount(ctx context.Context, ids []string) error
}

type courseService struct {
	courseRepo     CourseRepository
	categoryRepo   CategoryRepository
	enrollmentRepo EnrollmentRepository
	userRepo       UserRepository
	cache          PopularCache
	logger         *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(
	courseRepo CourseRepository,
	categoryRepo CategoryRepository,
	enrollmentRepo EnrollmentRepository,
	userRepo UserRepository,
	cache PopularCache,
	logger *zap.Logger,
) *courseService {
	return &courseService{
		courseRepo:     courseRepo,
		categoryRepo:   categoryRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		cache:          cache,
		logger:         logger,
	}
}

// List retrieves a page of the catalog.
// Page defaults to 1 and limit to 12; limit is clamped to 100.
func (s *courseService) List(ctx context.Context, filter models.CourseFilter) (*models.CourseListResponse, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	if filter.Page > math.MaxInt/filter.Limit {
		return nil, apperrors.NewValidationError("page is out of range")
	}
	filter.Search = strings.TrimSpace(filter.Search)

	if filter.Level != "" && !validLevel(filter.Level) {
		return nil, apperrors.NewValidationError("level must be one of: Beginner Intermediate Advanced")
	}

	courses, total, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list courses", zap.Error(err))
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return &models.CourseListResponse{
		Courses: courses,
		Total:   total,
		Page:    filter.Page,
		Pages:   int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetPopular returns the six most enrolled courses
func (s *courseService) GetPopular(ctx context.Context) ([]models.Course, error) {
	if s.cache != nil {
		if courses, ok := s.cache.Get(ctx); ok {
			return courses, nil
		}
	}

	courses, err := s.courseRepo.GetPopular(ctx, popularLimit)
	if err != nil {
		s.logger.Error("failed to get popular courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get popular courses: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, courses)
	}

	return courses, nil
}

// GetByID retrieves a course
func (s *courseService) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// enrolledCourse loads a course and checks the user is enrolled in it.
// Admins are not exempt.
func (s *courseService) enrolledCourse(ctx context.Context, userID, courseID string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return nil, apperrors.NewForbiddenError("not enrolled in this course")
	}

	return course, nil
}

// GetLessons returns the ordered lessons of a course the user is enrolled in
func (s *courseService) GetLessons(ctx context.Context, userID, courseID string) ([]models.Lesson, error) {
	course, err := s.enrolledCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	return course.Lessons, nil
}

// GetLesson returns one lesson together with its siblings
func (s *courseService) GetLesson(ctx context.Context, userID, courseID, lessonID string) (*models.LessonDetailResponse, error) {
	course, err := s.enrolledCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(course.Lessons, func(l models.Lesson) bool { return l.ID == lessonID })
	if idx < 0 {
		return nil, apperrors.NewNotFoundError("lesson not found")
	}

	return &models.LessonDetailResponse{
		Lesson:  course.Lessons[idx],
		Course:  models.CourseIdentity{ID: course.ID, Title: course.Title},
		Lessons: course.Lessons,
	}, nil
}

// Create adds a course to the catalog, filling in defaults for omitted fields
func (s *courseService) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	lessons, err := buildLessons(req.Lessons)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		Thumbnail:        req.Thumbnail,
		CategoryID:       categoryID,
		Level:            req.Level,
		Duration:         req.Duration,
		Lessons:          lessons,
		Rating:           models.DefaultRating,
		Reviews:          []models.Review{},
		CreatedAt:        time.Now().UTC(),
	}

	if course.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	if req.Instructor != nil {
		course.Instructor = *req.Instructor
	}
	if course.Instructor.Name == "" {
		course.Instructor.Name = models.DefaultInstructorName
	}
	if course.Level == "" {
		course.Level = models.LevelBeginner
	}
	if req.Rating != nil {
		course.Rating = *req.Rating
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		s.logger.Error("failed to create course", zap.Error(err))
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	invalidatePopular(ctx, s.cache)

	return s.courseRepo.GetByID(ctx, course.ID)
}

// Update merges the provided fields into a course.
// A provided lessons array replaces the whole lesson list.
func (s *courseService) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title cannot be empty")
		}
		course.Title = title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.ShortDescription != nil {
		course.ShortDescription = *req.ShortDescription
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Thumbnail != nil {
		course.Thumbnail = *req.Thumbnail
	}
	if req.CategoryID != nil {
		if course.CategoryID, err = s.resolveCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.Instructor != nil {
		course.Instructor = *req.Instructor
		if course.Instructor.Name == "" {
			course.Instructor.Name = models.DefaultInstructorName
		}
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Rating != nil {
		course.Rating = *req.Rating
	}

	replaceLessons := req.Lessons != nil
	if replaceLessons {
		if course.Lessons, err = buildLessons(req.Lessons); err != nil {
			return nil, err
		}
	}

	if err := s.courseRepo.Update(ctx, course, replaceLessons); err != nil {
		s.logger.Error("failed to update course", zap.Error(err), zap.String("course_id", id))
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	invalidatePopular(ctx, s.cache)

	return s.courseRepo.GetByID(ctx, id)
}

// Delete removes a course from the catalog
func (s *courseService) Delete(ctx context.Context, id string) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	invalidatePopular(ctx, s.cache)
	return nil
}

// AddReview appends the user's review to a course.
// The author's current name is copied into the review.
func (s *courseService) AddReview(ctx context.Context, userID, courseID string, req *models.ReviewRequest) (*models.Review, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, apperrors.NewValidationError("comment is required")
	}

	existing, err := s.courseRepo.FilterExisting(ctx, []string{courseID})
	if err != nil {
		return nil, fmt.Errorf("failed to check course: %w", err)
	}
	if len(existing) == 0 {
		return nil, apperrors.NewNotFoundError("course not found")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		UserName: user.Name,
		Rating:   req.Rating,
		Comment:  comment,
		Date:     time.Now().UTC(),
	}

	if err := s.courseRepo.AddReview(ctx, courseID, review); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	return review, nil
}

// resolveCategory checks a category reference. An empty id detaches the course.
func (s *courseService) resolveCategory(ctx context.Context, id *string) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}

	categoryID := strings.TrimSpace(*id)
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, apperrors.NewValidationError("category does not exist")
	}

	return &categoryID, nil
}

// buildLessons turns lesson inputs into lessons ordered by their position.
// Inputs without an id get a new one.
func buildLessons(inputs []models.LessonInput) ([]models.Lesson, error) {
	lessons := make([]models.Lesson, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	for _, in := range inputs {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, apperrors.NewValidationError("duplicate lesson id: " + id)
		}
		seen[id] = struct{}{}

		lessons = append(lessons, models.Lesson{
			ID:       id,
			Title:    strings.TrimSpace(in.Title),
			VideoURL: in.VideoURL,
			Duration: in.Duration,
			Order:    in.Order,
		})
	}

	slices.SortStableFunc(lessons, func(a, b models.Lesson) int { return a.Order - b.Order })

	return lessons, nil
}

func validLevel(level models.Level) bool {
	switch level {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
		return true
	}
	return false
}
