package models

import "time"

// Level represents the difficulty of a course
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Course defaults
const (
	DefaultInstructorName = "DambaStudy Instructor"
	DefaultRating         = 4.5
)

// Sort keys accepted by the course list
const (
	SortNewest    = ""
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
	SortRating    = "rating"
)

// Instructor is embedded in a course
type Instructor struct {
	Name   string `json:"name" bson:"name"`
	Avatar string `json:"avatar" bson:"avatar"`
	Bio    string `json:"bio" bson:"bio"`
}

// Lesson is an ordered unit of a course
type Lesson struct {
	ID       string `json:"id" bson:"id"`
	Title    string `json:"title" bson:"title"`
	VideoURL string `json:"videoUrl" bson:"videoUrl"`
	Duration string `json:"duration" bson:"duration"`
	Order    int    `json:"order" bson:"order"`
}

// Review is a learner's rating and comment on a course.
// UserName is copied from the author at write time.
type Review struct {
	ID       string    `json:"id" bson:"id"`
	UserID   string    `json:"user" bson:"user"`
	UserName string    `json:"userName" bson:"userName"`
	Rating   int       `json:"rating" bson:"rating"`
	Comment  string    `json:"comment" bson:"comment"`
	Date     time.Time `json:"date" bson:"date"`
}

// Course represents a course in the catalog
type Course struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"shortDescription"`
	Price            float64    `json:"price"`
	Thumbnail        string     `json:"thumbnail"`
	CategoryID       *string    `json:"-"`
	Category         *Category  `json:"category"`
	Instructor       Instructor `json:"instructor"`
	Level            Level      `json:"level"`
	Duration         string     `json:"duration"`
	Lessons          []Lesson   `json:"lessons"`
	Rating           float64    `json:"rating"`
	EnrolledCount    int        `json:"enrolledCount"`
	Reviews          []Review   `json:"reviews"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// CourseFilter holds the catalog query parameters
type CourseFilter struct {
	Category string
	Level    Level
	Search   string
	Sort     string
	Page     int
	Limit    int
}

// Offset returns the number of rows to skip
func (f CourseFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// CourseListResponse is a page of courses
type CourseListResponse struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	Pages   int      `json:"pages"`
}

// LessonInput describes a lesson in course create and update requests.
// ID is kept when given so completion records survive a lesson list update.
type LessonInput struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title" validate:"required"`
	VideoURL string `json:"videoUrl"`
	Duration string `json:"duration"`
	Order    int    `json:"order" validate:"gte=0"`
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Title            string        `json:"title" validate:"required,max=255"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"shortDescription" validate:"max=500"`
	Price            float64       `json:"price" validate:"gte=0"`
	Thumbnail        string        `json:"thumbnail"`
	CategoryID       *string       `json:"categoryId,omitempty"`
	Instructor       *Instructor   `json:"instructor,omitempty"`
	Level            Level         `json:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration         string        `json:"duration"`
	Lessons          []LessonInput `json:"lessons" validate:"dive"`
	Rating           *float64      `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// UpdateCourseRequest represents a partial course update.
// A non-nil Lessons (an empty JSON array included) replaces the whole lesson list.
type UpdateCourseRequest struct {
	Title            *string       `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description      *string       `json:"description,omitempty"`
	ShortDescription *string       `json:"shortDescription,omitempty" validate:"omitempty,max=500"`
	Price            *float64      `json:"price,omitempty" validate:"omitempty,gte=0"`
	Thumbnail        *string       `json:"thumbnail,omitempty"`
	CategoryID       *string       `json:"categoryId,omitempty"`
	Instructor       *Instructor   `json:"instructor,omitempty"`
	Level            *Level        `json:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration         *string       `json:"duration,omitempty"`
	Lessons          []LessonInput `json:"lessons,omitempty" validate:"omitempty,dive"`
	Rating           *float64      `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// CourseIdentity is the minimal course reference returned with a lesson
type CourseIdentity struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// LessonDetailResponse is a single lesson with its siblings for navigation
type LessonDetailResponse struct {
	Lesson  Lesson         `json:"lesson"`
	Course  CourseIdentity `json:"course"`
	Lessons []Lesson       `json:"lessons"`
}

// ReviewRequest represents a request to add a review
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}
