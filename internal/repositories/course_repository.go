package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/libs/apperrors"
	"go.uber.org/zap"
)

// courseColumns is the select list shared by every course query
const courseColumns = `
	c.id,
	c.title,
	c.description,
	c.short_description,
	c.price,
	c.thumbnail,
	c.category_id,
	cat.name,
	c.instructor_name,
	c.instructor_avatar,
	c.instructor_bio,
	c.level,
	c.duration,
	c.rating,
	c.enrolled_count,
	c.created_at`

// sortClauses maps the catalog sort keys to ORDER BY clauses
var sortClauses = map[string]string{
	models.SortNewest:    "c.created_at DESC",
	models.SortPriceLow:  "c.price ASC",
	models.SortPriceHigh: "c.price DESC",
	models.SortPopular:   "c.enrolled_count DESC",
	models.SortRating:    "c.rating DESC",
}

type courseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB, logger *zap.Logger) *courseRepository {
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(s rowScanner) (*models.Course, error) {
	var (
		course       models.Course
		categoryID   sql.NullString
		categoryName sql.NullString
		level        string
	)

	err := s.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.ShortDescription,
		&course.Price,
		&course.Thumbnail,
		&categoryID,
		&categoryName,
		&course.Instructor.Name,
		&course.Instructor.Avatar,
		&course.Instructor.Bio,
		&level,
		&course.Duration,
		&course.Rating,
		&course.EnrolledCount,
		&course.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.Level = models.Level(level)
	if categoryID.Valid {
		course.CategoryID = &categoryID.String
		course.Category = &models.Category{ID: categoryID.String, Name: categoryName.String}
	}

	return &course, nil
}

// List retrieves a page of courses matching the filter together with the total match count
func (r *courseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	var whereClauses []string
	var args []any

	if filter.Category != "" {
		whereClauses = append(whereClauses, "cat.name = ?")
		args = append(args, filter.Category)
	}

	if filter.Level != "" {
		whereClauses = append(whereClauses, "c.level = ?")
		args = append(args, string(filter.Level))
	}

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		whereClauses = append(whereClauses, "(c.title LIKE ? OR c.description LIKE ?)")
		args = append(args, pattern, pattern)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM courses c
		LEFT JOIN categories cat ON cat.id = c.category_id
		%s
	`, whereClause)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("failed to count courses", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	orderBy, ok := sortClauses[filter.Sort]
	if !ok {
		orderBy = sortClauses[models.SortNewest]
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		LEFT JOIN categories cat ON cat.id = c.category_id
		%s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, courseColumns, whereClause, orderBy)

	args = append(args, filter.Limit, filter.Offset())

	courses, err := r.queryCourses(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// GetPopular retrieves the most enrolled courses
func (r *courseRepository) GetPopular(ctx context.Context, limit int) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		LEFT JOIN categories cat ON cat.id = c.category_id
		ORDER BY c.enrolled_count DESC
		LIMIT ?
	`, courseColumns)

	return r.queryCourses(ctx, query, limit)
}

// GetByIDs retrieves the courses with the given ids, newest first. Missing ids are skipped.
func (r *courseRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		LEFT JOIN categories cat ON cat.id = c.category_id
		WHERE c.id IN (%s)
		ORDER BY c.created_at DESC
	`, courseColumns, placeholders(len(ids)))

	return r.queryCourses(ctx, query, stringArgs(ids)...)
}

// queryCourses runs a course query and attaches each course's lessons
func (r *courseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]models.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query courses", zap.Error(err))
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	if len(courses) == 0 {
		return courses, nil
	}

	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}

	lessons, err := r.getLessonsByCourseIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range courses {
		courses[i].Lessons = lessons[courses[i].ID]
		if courses[i].Lessons == nil {
			courses[i].Lessons = []models.Lesson{}
		}
		courses[i].Reviews = []models.Review{}
	}

	return courses, nil
}

// GetByID retrieves a course with its lessons and reviews
func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		LEFT JOIN categories cat ON cat.id = c.category_id
		WHERE c.id = ?
		LIMIT 1
	`, courseColumns)

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if err != nil {
		r.logger.Error("failed to get course by id", zap.Error(err), zap.String("course_id", id))
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	if course.Lessons, err = r.GetLessons(ctx, id); err != nil {
		return nil, err
	}

	if course.Reviews, err = r.getReviews(ctx, id); err != nil {
		return nil, err
	}

	return course, nil
}

// FilterExisting returns the subset of ids that belong to existing courses
func (r *courseRepository) FilterExisting(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	query := fmt.Sprintf(`SELECT id FROM courses WHERE id IN (%s)`, placeholders(len(ids)))

	rows, err := r.db.QueryContext(ctx, query, stringArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to check course existence: %w", err)
	}
	defer rows.Close()

	existing := make([]string, 0, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan course id: %w", err)
		}
		existing = append(existing, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course ids: %w", err)
	}

	return existing, nil
}

// GetLessons retrieves the lessons of a course ordered by their position
func (r *courseRepository) GetLessons(ctx context.Context, courseID string) ([]models.Lesson, error) {
	lessons, err := r.getLessonsByCourseIDs(ctx, []string{courseID})
	if err != nil {
		return nil, err
	}

	if lessons[courseID] == nil {
		return []models.Lesson{}, nil
	}
	return lessons[courseID], nil
}

func (r *courseRepository) getLessonsByCourseIDs(ctx context.Context, courseIDs []string) (map[string][]models.Lesson, error) {
	query := fmt.Sprintf(`
		SELECT id, course_id, title, video_url, duration, sort_order
		FROM lessons
		WHERE course_id IN (%s)
		ORDER BY course_id, sort_order, id
	`, placeholders(len(courseIDs)))

	rows, err := r.db.QueryContext(ctx, query, stringArgs(courseIDs)...)
	if err != nil {
		r.logger.Error("failed to query lessons", zap.Error(err))
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := make(map[string][]models.Lesson, len(courseIDs))
	for rows.Next() {
		var (
			lesson   models.Lesson
			courseID string
		)
		if err := rows.Scan(&lesson.ID, &courseID, &lesson.Title, &lesson.VideoURL, &lesson.Duration, &lesson.Order); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons[courseID] = append(lessons[courseID], lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lessons: %w", err)
	}

	return lessons, nil
}

func (r *courseRepository) getReviews(ctx context.Context, courseID string) ([]models.Review, error) {
	query := `
		SELECT id, user_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE course_id = ?
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		r.logger.Error("failed to query reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ID, &review.UserID, &review.UserName, &review.Rating, &review.Comment, &review.Date); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// Create inserts a course together with its lessons in one transaction
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO courses (
			id, title, description, short_description, price, thumbnail, category_id,
			instructor_name, instructor_avatar, instructor_bio, level, duration, rating, enrolled_count, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.ShortDescription,
		course.Price,
		course.Thumbnail,
		course.CategoryID,
		course.Instructor.Name,
		course.Instructor.Avatar,
		course.Instructor.Bio,
		string(course.Level),
		course.Duration,
		course.Rating,
		course.EnrolledCount,
		course.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create course", zap.Error(err))
		return fmt.Errorf("failed to create course: %w", err)
	}

	if err := insertLessons(ctx, tx, course.ID, course.Lessons); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Update writes every course field. When replaceLessons is set the lesson list is replaced as a whole.
func (r *courseRepository) Update(ctx context.Context, course *models.Course, replaceLessons bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE courses SET
			title = ?, description = ?, short_description = ?, price = ?, thumbnail = ?, category_id = ?,
			instructor_name = ?, instructor_avatar = ?, instructor_bio = ?, level = ?, duration = ?, rating = ?
		WHERE id = ?
	`

	_, err = tx.ExecContext(ctx, query,
		course.Title,
		course.Description,
		course.ShortDescription,
		course.Price,
		course.Thumbnail,
		course.CategoryID,
		course.Instructor.Name,
		course.Instructor.Avatar,
		course.Instructor.Bio,
		string(course.Level),
		course.Duration,
		course.Rating,
		course.ID,
	)
	if err != nil {
		r.logger.Error("failed to update course", zap.Error(err), zap.String("course_id", course.ID))
		return fmt.Errorf("failed to update course: %w", err)
	}

	if replaceLessons {
		if _, err := tx.ExecContext(ctx, `DELETE FROM lessons WHERE course_id = ?`, course.ID); err != nil {
			return fmt.Errorf("failed to delete lessons: %w", err)
		}
		if err := insertLessons(ctx, tx, course.ID, course.Lessons); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertLessons(ctx context.Context, tx *sql.Tx, courseID string, lessons []models.Lesson) error {
	if len(lessons) == 0 {
		return nil
	}

	values := make([]string, 0, len(lessons))
	args := make([]any, 0, len(lessons)*6)
	for _, lesson := range lessons {
		values = append(values, "(?, ?, ?, ?, ?, ?)")
		args = append(args, lesson.ID, courseID, lesson.Title, lesson.VideoURL, lesson.Duration, lesson.Order)
	}

	query := `INSERT INTO lessons (id, course_id, title, video_url, duration, sort_order) VALUES ` + strings.Join(values, ", ")
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert lessons: %w", err)
	}

	return nil
}

// Delete removes a course; lessons, reviews and enrollments cascade
func (r *courseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete course", zap.Error(err), zap.String("course_id", id))
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFoundError("course not found")
	}

	return nil
}

// AddReview appends a review to a course
func (r *courseRepository) AddReview(ctx context.Context, courseID string, review *models.Review) error {
	query := `
		INSERT INTO reviews (id, course_id, user_id, user_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, review.ID, courseID, review.UserID, review.UserName, review.Rating, review.Comment, review.Date)
	if err != nil {
		r.logger.Error("failed to add review", zap.Error(err), zap.String("course_id", courseID))
		return fmt.Errorf("failed to add review: %w", err)
	}

	return nil
}

// IncrementEnrolledCount adds one to the enrolled counter of every course in ids.
// A course listed twice is incremented once.
func (r *courseRepository) IncrementEnrolledCount(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE courses SET enrolled_count = enrolled_count + 1 WHERE id IN (%s)`, placeholders(len(ids)))

	if _, err := r.db.ExecContext(ctx, query, stringArgs(ids)...); err != nil {
		r.logger.Error("failed to increment enrolled count", zap.Error(err))
		return fmt.Errorf("failed to increment enrolled count: %w", err)
	}

	return nil
}
