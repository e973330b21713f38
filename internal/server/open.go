package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dambastudy/backend/internal/repositories/mongostore"
	"github.com/dambastudy/backend/libs/config"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// migrationsTable keeps this schema history apart from other tools sharing the database
const migrationsTable = "dambastudy_schema_migrations"

// OpenStores connects to the configured backend and prepares its schema.
// MySQL runs the pending migrations, MongoDB creates its indexes.
// The returned func releases the connection.
func OpenStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Stores, func(), error) {
	if cfg.Database.Driver == config.DriverMongo {
		client, db, err := mongostore.Connect(ctx, cfg.Mongo.URL, cfg.Mongo.Database)
		if err != nil {
			return Stores{}, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Warn("failed to disconnect from mongodb", zap.Error(err))
			}
		}

		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			closeFn()
			return Stores{}, nil, err
		}
		return MongoStores(client, db, logger), closeFn, nil
	}

	db, err := connectDB(cfg.DSN())
	if err != nil {
		return Stores{}, nil, err
	}
	closeFn := func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}

	if err := runMigrations(db); err != nil {
		closeFn()
		return Stores{}, nil, err
	}
	return MySQLStores(db, logger), closeFn, nil
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// migrationsPath finds the migrations directory from the working directory or up to two levels above it
func migrationsPath() string {
	for _, dir := range []string{"migrations", "../migrations", "../../migrations"} {
		if _, err := os.Stat(dir); err == nil {
			return "file://" + dir
		}
	}
	return "file://migrations"
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath(), "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
