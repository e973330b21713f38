package models

import "time"

// Certificate is a completion certificate.
// CourseTitle and StudentName are stored as given and never follow later renames.
type Certificate struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"user" bson:"user"`
	CourseTitle string    `json:"courseTitle" bson:"courseTitle"`
	StudentName string    `json:"studentName" bson:"studentName"`
	Date        string    `json:"date" bson:"date"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// CreateCertificateRequest represents a request to create a certificate
type CreateCertificateRequest struct {
	CourseTitle string `json:"courseTitle" validate:"required,max=255"`
	StudentName string `json:"studentName" validate:"required,max=100"`
}

// CertificateDateLayout is the layout of Certificate.Date
const CertificateDateLayout = "2006-01-02"
