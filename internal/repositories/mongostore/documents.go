package mongostore

import (
	"slices"
	"time"

	"github.com/dambastudy/backend/internal/models"
)

type userDocument struct {
	ID               string                   `bson:"_id"`
	Name             string                   `bson:"name"`
	Email            string                   `bson:"email"`
	PasswordHash     string                   `bson:"password"`
	IsAdmin          bool                     `bson:"isAdmin"`
	MyCourses        []string                 `bson:"myCourses"`
	CompletedLessons []models.CompletedLesson `bson:"completedLessons"`
	CreatedAt        time.Time                `bson:"createdAt"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
		CreatedAt:    d.CreatedAt,
	}
}

type categoryDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"createdAt"`
}

type courseDocument struct {
	ID               string            `bson:"_id"`
	Title            string            `bson:"title"`
	Description      string            `bson:"description"`
	ShortDescription string            `bson:"shortDescription"`
	Price            float64           `bson:"price"`
	Thumbnail        string            `bson:"thumbnail"`
	Category         *string           `bson:"category"`
	Instructor       models.Instructor `bson:"instructor"`
	Level            models.Level      `bson:"level"`
	Duration         string            `bson:"duration"`
	Lessons          []models.Lesson   `bson:"lessons"`
	Rating           float64           `bson:"rating"`
	EnrolledCount    int               `bson:"enrolledCount"`
	Reviews          []models.Review   `bson:"reviews"`
	CreatedAt        time.Time         `bson:"createdAt"`
}

func newCourseDocument(c *models.Course) *courseDocument {
	doc := &courseDocument{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		Price:            c.Price,
		Thumbnail:        c.Thumbnail,
		Category:         c.CategoryID,
		Instructor:       c.Instructor,
		Level:            c.Level,
		Duration:         c.Duration,
		Lessons:          c.Lessons,
		Rating:           c.Rating,
		EnrolledCount:    c.EnrolledCount,
		Reviews:          c.Reviews,
		CreatedAt:        c.CreatedAt,
	}
	if doc.Lessons == nil {
		doc.Lessons = []models.Lesson{}
	}
	if doc.Reviews == nil {
		doc.Reviews = []models.Review{}
	}
	return doc
}

// toModel converts the document, resolving its category from categories
func (d *courseDocument) toModel(categories map[string]models.Category) models.Course {
	course := models.Course{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		ShortDescription: d.ShortDescription,
		Price:            d.Price,
		Thumbnail:        d.Thumbnail,
		Instructor:       d.Instructor,
		Level:            d.Level,
		Duration:         d.Duration,
		Lessons:          sortedLessons(d.Lessons),
		Rating:           d.Rating,
		EnrolledCount:    d.EnrolledCount,
		Reviews:          d.Reviews,
		CreatedAt:        d.CreatedAt,
	}

	if course.Reviews == nil {
		course.Reviews = []models.Review{}
	}

	// A dangling reference is reported as no category
	if d.Category != nil {
		if category, ok := categories[*d.Category]; ok {
			course.CategoryID = d.Category
			course.Category = &category
		}
	}

	return course
}

func sortedLessons(lessons []models.Lesson) []models.Lesson {
	sorted := slices.Clone(lessons)
	if sorted == nil {
		sorted = []models.Lesson{}
	}
	slices.SortStableFunc(sorted, func(a, b models.Lesson) int { return a.Order - b.Order })
	return sorted
}
