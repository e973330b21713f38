package models

// EnrollRequest represents a single course enrollment
type EnrollRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

// EnrollMultipleRequest represents a checkout of several courses
type EnrollMultipleRequest struct {
	Courses []string `json:"courses" validate:"required,min=1,dive,required"`
}

// EnrollmentStatus reports whether the caller is enrolled in a course
type EnrollmentStatus struct {
	Enrolled bool `json:"enrolled"`
}

// CompletedLesson is a (course, lesson) completion record
type CompletedLesson struct {
	CourseID string `json:"course" bson:"course"`
	LessonID string `json:"lesson" bson:"lesson"`
}

// CompleteLessonRequest represents a request to mark a lesson complete
type CompleteLessonRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	LessonID string `json:"lessonId" validate:"required"`
}

// ProgressResponse lists the completed lesson ids of one course
type ProgressResponse struct {
	CompletedLessons []string `json:"completedLessons"`
}
