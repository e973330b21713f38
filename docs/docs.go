// Package docs registers the swagger document of the DambaStudy API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["health"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Store unreachable"}}}},
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new account", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.RegisterRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.AuthResponse"}}, "400": {"description": "Invalid input"}, "409": {"description": "Email already exists"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AuthResponse"}}, "401": {"description": "Invalid credentials"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Get the current user", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserResponse"}}, "401": {"description": "Unauthorized"}}}},
        "/user/profile": {"put": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Update profile", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.UpdateProfileRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserResponse"}}, "409": {"description": "Email already exists"}}}},
        "/user/password": {"put": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Change password", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.ChangePasswordRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Current password is incorrect"}, "401": {"description": "Unauthorized"}}}},
        "/categories": {"get": {"tags": ["categories"], "summary": "List categories", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}}}},
        "/courses": {"get": {"tags": ["courses"], "summary": "List courses", "produces": ["application/json"], "parameters": [{"type": "string", "name": "category", "in": "query"}, {"type": "string", "name": "level", "in": "query"}, {"type": "string", "name": "search", "in": "query"}, {"type": "string", "name": "sort", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CourseListResponse"}}}}},
        "/courses/popular": {"get": {"tags": ["courses"], "summary": "Popular courses", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Course"}}}}}},
        "/courses/{id}": {"get": {"tags": ["courses"], "summary": "Get a course", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Course"}}, "404": {"description": "Course not found"}}}},
        "/courses/{id}/lessons": {"get": {"security": [{"BearerAuth": []}], "tags": ["lessons"], "summary": "Lessons of an enrolled course", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Lesson"}}}, "403": {"description": "Not enrolled in this course"}}}},
        "/courses/{id}/lessons/{lessonId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["lessons"], "summary": "Single lesson of an enrolled course", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "lessonId", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LessonDetailResponse"}}, "403": {"description": "Not enrolled in this course"}, "404": {"description": "Course or lesson not found"}}}},
        "/courses/{id}/reviews": {"post": {"security": [{"BearerAuth": []}], "tags": ["courses"], "summary": "Review a course", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.ReviewRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Review"}}}}},
        "/enroll": {"post": {"security": [{"BearerAuth": []}], "tags": ["enrollment"], "summary": "Enroll in a course", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.EnrollRequest"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Course not found"}}}},
        "/enroll/multiple": {"post": {"security": [{"BearerAuth": []}], "tags": ["enrollment"], "summary": "Enroll in several courses", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.EnrollMultipleRequest"}}], "responses": {"200": {"description": "OK"}}}},
        "/enroll/check/{courseId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["enrollment"], "summary": "Check enrollment", "produces": ["application/json"], "parameters": [{"type": "string", "name": "courseId", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.EnrollmentStatus"}}}}},
        "/user/courses": {"get": {"security": [{"BearerAuth": []}], "tags": ["enrollment"], "summary": "Enrolled courses", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Course"}}}}}},
        "/progress/complete": {"post": {"security": [{"BearerAuth": []}], "tags": ["progress"], "summary": "Mark a lesson complete", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.CompleteLessonRequest"}}], "responses": {"200": {"description": "OK"}}}},
        "/progress/{courseId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["progress"], "summary": "Course progress", "produces": ["application/json"], "parameters": [{"type": "string", "name": "courseId", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProgressResponse"}}}}},
        "/user/certificates": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["certificates"], "summary": "List certificates", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Certificate"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["certificates"], "summary": "Create a certificate", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.CreateCertificateRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Certificate"}}}}
        },
        "/user/certificates/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["certificates"], "summary": "Get a certificate", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Certificate"}}, "404": {"description": "Certificate not found"}}}},
        "/user/certificates/{id}/pdf": {"get": {"security": [{"BearerAuth": []}], "tags": ["certificates"], "summary": "Download a certificate", "produces": ["application/pdf"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "PDF document"}, "404": {"description": "Certificate not found"}}}},
        "/admin/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "List categories", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Create a category", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.CreateCategoryRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}}, "409": {"description": "Category already exists"}}}
        },
        "/admin/categories/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Delete a category", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Category not found"}}}},
        "/admin/courses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "List courses for administration", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CourseListResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Create a course", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.CreateCourseRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Course"}}}}
        },
        "/admin/courses/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Update a course", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.UpdateCourseRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Course"}}, "404": {"description": "Course not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Delete a course", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Course not found"}}}
        }
    },
    "definitions": {
        "models.Category": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}}},
        "models.CreateCategoryRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "maxLength": 100}}},
        "models.Instructor": {"type": "object", "properties": {"name": {"type": "string"}, "avatar": {"type": "string"}, "bio": {"type": "string"}}},
        "models.Lesson": {"type": "object", "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "videoUrl": {"type": "string"}, "duration": {"type": "string"}, "order": {"type": "integer"}}},
        "models.LessonInput": {"type": "object", "required": ["title"], "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "videoUrl": {"type": "string"}, "duration": {"type": "string"}, "order": {"type": "integer"}}},
        "models.Review": {"type": "object", "properties": {"id": {"type": "string"}, "user": {"type": "string"}, "userName": {"type": "string"}, "rating": {"type": "integer"}, "comment": {"type": "string"}, "date": {"type": "string"}}},
        "models.Course": {"type": "object", "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"}, "shortDescription": {"type": "string"}, "price": {"type": "number"}, "thumbnail": {"type": "string"}, "category": {"$ref": "#/definitions/models.Category"}, "instructor": {"$ref": "#/definitions/models.Instructor"}, "level": {"type": "string", "enum": ["Beginner", "Intermediate", "Advanced"]}, "duration": {"type": "string"}, "lessons": {"type": "array", "items": {"$ref": "#/definitions/models.Lesson"}}, "rating": {"type": "number"}, "enrolledCount": {"type": "integer"}, "reviews": {"type": "array", "items": {"$ref": "#/definitions/models.Review"}}, "createdAt": {"type": "string"}}},
        "models.CourseListResponse": {"type": "object", "properties": {"courses": {"type": "array", "items": {"$ref": "#/definitions/models.Course"}}, "total": {"type": "integer"}, "page": {"type": "integer"}, "pages": {"type": "integer"}}},
        "models.CreateCourseRequest": {"type": "object", "required": ["title"], "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "shortDescription": {"type": "string"}, "price": {"type": "number"}, "thumbnail": {"type": "string"}, "categoryId": {"type": "string"}, "instructor": {"$ref": "#/definitions/models.Instructor"}, "level": {"type": "string"}, "duration": {"type": "string"}, "lessons": {"type": "array", "items": {"$ref": "#/definitions/models.LessonInput"}}, "rating": {"type": "number"}}},
        "models.UpdateCourseRequest": {"type": "object", "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "shortDescription": {"type": "string"}, "price": {"type": "number"}, "thumbnail": {"type": "string"}, "categoryId": {"type": "string"}, "instructor": {"$ref": "#/definitions/models.Instructor"}, "level": {"type": "string"}, "duration": {"type": "string"}, "lessons": {"type": "array", "items": {"$ref": "#/definitions/models.LessonInput"}}, "rating": {"type": "number"}}},
        "models.LessonDetailResponse": {"type": "object", "properties": {"lesson": {"$ref": "#/definitions/models.Lesson"}, "course": {"type": "object", "properties": {"id": {"type": "string"}, "title": {"type": "string"}}}, "lessons": {"type": "array", "items": {"$ref": "#/definitions/models.Lesson"}}}},
        "models.ReviewRequest": {"type": "object", "required": ["comment", "rating"], "properties": {"rating": {"type": "integer", "minimum": 1, "maximum": 5}, "comment": {"type": "string"}}},
        "models.EnrollRequest": {"type": "object", "required": ["courseId"], "properties": {"courseId": {"type": "string"}}},
        "models.EnrollMultipleRequest": {"type": "object", "required": ["courses"], "properties": {"courses": {"type": "array", "items": {"type": "string"}}}},
        "models.EnrollmentStatus": {"type": "object", "properties": {"enrolled": {"type": "boolean"}}},
        "models.CompleteLessonRequest": {"type": "object", "required": ["courseId", "lessonId"], "properties": {"courseId": {"type": "string"}, "lessonId": {"type": "string"}}},
        "models.ProgressResponse": {"type": "object", "properties": {"completedLessons": {"type": "array", "items": {"type": "string"}}}},
        "models.Certificate": {"type": "object", "properties": {"id": {"type": "string"}, "user": {"type": "string"}, "courseTitle": {"type": "string"}, "studentName": {"type": "string"}, "date": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.CreateCertificateRequest": {"type": "object", "required": ["courseTitle", "studentName"], "properties": {"courseTitle": {"type": "string"}, "studentName": {"type": "string"}}},
        "models.RegisterRequest": {"type": "object", "required": ["email", "name", "password"], "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string", "minLength": 6}}},
        "models.LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "models.UserResponse": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "isAdmin": {"type": "boolean"}}},
        "models.AuthResponse": {"type": "object", "properties": {"message": {"type": "string"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/models.UserResponse"}}},
        "models.UpdateProfileRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}}},
        "models.ChangePasswordRequest": {"type": "object", "required": ["currentPassword", "newPassword"], "properties": {"currentPassword": {"type": "string"}, "newPassword": {"type": "string", "minLength": 6}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "DambaStudy API",
	Description:      "API of the DambaStudy online learning platform: catalog, enrollment, progress and certificates",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
