// Package server wires repositories, services and handlers into the HTTP API.
package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/dambastudy/backend/internal/handlers"
	"github.com/dambastudy/backend/internal/repositories"
	"github.com/dambastudy/backend/internal/repositories/mongostore"
	"github.com/dambastudy/backend/internal/services"
	"github.com/dambastudy/backend/libs/auth/middleware"
	"github.com/dambastudy/backend/libs/auth/service"
	loggerMiddleware "github.com/dambastudy/backend/libs/logger/middleware"
	sharedMiddleware "github.com/dambastudy/backend/libs/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Stores groups the repositories of one storage backend
type Stores struct {
	Users        services.UserRepository
	Categories   services.CategoryRepository
	Courses      services.CourseRepository
	Enrollments  services.EnrollmentRepository
	Progress     services.ProgressRepository
	Certificates services.CertificateRepository
	Ping         handlers.PingerFunc
}

// MySQLStores builds the repositories backed by a MySQL database
func MySQLStores(db *sql.DB, logger *zap.Logger) Stores {
	return Stores{
		Users:        repositories.NewUserRepository(db, logger),
		Categories:   repositories.NewCategoryRepository(db, logger),
		Courses:      repositories.NewCourseRepository(db, logger),
		Enrollments:  repositories.NewEnrollmentRepository(db, logger),
		Progress:     repositories.NewProgressRepository(db, logger),
		Certificates: repositories.NewCertificateRepository(db, logger),
		Ping:         db.PingContext,
	}
}

// MongoStores builds the repositories backed by a MongoDB database
func MongoStores(client *mongo.Client, db *mongo.Database, logger *zap.Logger) Stores {
	return Stores{
		Users:        mongostore.NewUserRepository(db, logger),
		Categories:   mongostore.NewCategoryRepository(db, logger),
		Courses:      mongostore.NewCourseRepository(db, logger),
		Enrollments:  mongostore.NewEnrollmentRepository(db, logger),
		Progress:     mongostore.NewProgressRepository(db, logger),
		Certificates: mongostore.NewCertificateRepository(db, logger),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
	}
}

// Options configures the router
type Options struct {
	Stores Stores
	Tokens *service.TokenGenerator
	// Cache may be nil to disable the popular courses cache
	Cache          services.PopularCache
	Renderer       services.CertificateRenderer
	AllowedOrigins []string
	// SwaggerURL is the URL of doc.json; the swagger UI is not mounted when empty
	SwaggerURL string
	// RateLimit is the number of requests allowed per IP and minute; zero disables it
	RateLimit int
	Logger    *zap.Logger
}

// apiHandlers holds the HTTP handlers built on top of the stores
type apiHandlers struct {
	Auth         *handlers.AuthHandler
	Profile      *handlers.ProfileHandler
	Categories   *handlers.CategoryHandler
	Courses      *handlers.CourseHandler
	Enrollments  *handlers.EnrollmentHandler
	Progress     *handlers.ProgressHandler
	Certificates *handlers.CertificateHandler
	Health       *handlers.HealthHandler
}

func newHandlers(opts Options) apiHandlers {
	st := opts.Stores
	logger := opts.Logger

	authService := services.NewAuthService(st.Users, opts.Tokens, logger)
	profileService := services.NewProfileService(st.Users)
	categoryService := services.NewCategoryService(st.Categories, opts.Cache, logger)
	courseService := services.NewCourseService(st.Courses, st.Categories, st.Enrollments, st.Users, opts.Cache, logger)
	enrollmentService := services.NewEnrollmentService(st.Enrollments, st.Courses, opts.Cache, logger)
	progressService := services.NewProgressService(st.Progress)
	certificateService := services.NewCertificateService(st.Certificates, opts.Renderer, logger)

	return apiHandlers{
		Auth:         handlers.NewAuthHandler(authService, logger),
		Profile:      handlers.NewProfileHandler(profileService, logger),
		Categories:   handlers.NewCategoryHandler(categoryService, logger),
		Courses:      handlers.NewCourseHandler(courseService, logger),
		Enrollments:  handlers.NewEnrollmentHandler(enrollmentService, logger),
		Progress:     handlers.NewProgressHandler(progressService, logger),
		Certificates: handlers.NewCertificateHandler(certificateService, logger),
		Health:       handlers.NewHealthHandler(st.Ping, logger),
	}
}

// NewRouter builds the HTTP handler serving the API under /api
func NewRouter(opts Options) http.Handler {
	h := newHandlers(opts)

	authMiddleware := middleware.AuthMiddleware(opts.Tokens)

	r := chi.NewRouter()

	r.Use(sharedMiddleware.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(opts.Logger))
	r.Use(sharedMiddleware.RecoveryMiddleware(opts.Logger))
	r.Use(sharedMiddleware.CORSMiddleware(opts.AllowedOrigins))
	if opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimit, time.Minute))
	}
	r.Use(sharedMiddleware.RequestSizeLimitMiddleware(sharedMiddleware.DefaultMaxRequestSize))

	if opts.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(opts.SwaggerURL)))
	}

	r.Route("/api", func(r chi.Router) {
		h.Health.RegisterRoutes(r)
		h.Auth.RegisterRoutes(r, authMiddleware)
		h.Profile.RegisterRoutes(r, authMiddleware)
		h.Categories.RegisterRoutes(r)
		h.Courses.RegisterRoutes(r, authMiddleware)
		h.Enrollments.RegisterRoutes(r, authMiddleware)
		h.Progress.RegisterRoutes(r, authMiddleware)
		h.Certificates.RegisterRoutes(r, authMiddleware)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.AdminMiddleware)
			h.Categories.RegisterAdminRoutes(r)
			h.Courses.RegisterAdminRoutes(r)
		})
	})

	return r
}
