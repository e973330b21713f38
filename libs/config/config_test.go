package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMySQLEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "dambastudy")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("JWT_TOKEN_EXPIRY", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("POPULAR_CACHE_TTL", "")
	t.Setenv("CERTIFICATE_VERIFY_URL", "")
}

func TestLoad(t *testing.T) {
	t.Run("mysql defaults", func(t *testing.T) {
		setMySQLEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DriverMySQL, cfg.Database.Driver)
		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, 7*24*time.Hour, cfg.JWT.TokenExpiry)
		assert.Equal(t, "", cfg.Redis.Host)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, time.Minute, cfg.Redis.TTL)
		assert.Equal(t, "root:secret@tcp(localhost:3306)/dambastudy?parseTime=true&charset=utf8mb4", cfg.DSN())
	})

	t.Run("custom values", func(t *testing.T) {
		setMySQLEnv(t)
		t.Setenv("SERVER_PORT", "8081")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
		t.Setenv("JWT_TOKEN_EXPIRY", "2h")
		t.Setenv("REDIS_HOST", "cache")
		t.Setenv("CERTIFICATE_VERIFY_URL", "https://dambastudy.test/verify/")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, 2*time.Hour, cfg.JWT.TokenExpiry)
		assert.Equal(t, "cache:6379", cfg.RedisAddr())
		assert.Equal(t, "https://dambastudy.test/verify", cfg.Certificate.VerifyURL)
	})

	t.Run("mongo driver", func(t *testing.T) {
		setMySQLEnv(t)
		t.Setenv("DB_DRIVER", "mongo")
		t.Setenv("DB_HOST", "")
		t.Setenv("MONGO_URL", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DriverMongo, cfg.Database.Driver)
		assert.Equal(t, "dambastudy", cfg.Mongo.Database)
		assert.Equal(t, "", cfg.DSN())
	})

	tests := []struct {
		name          string
		key           string
		value         string
		errorContains string
	}{
		{name: "missing db host", key: "DB_HOST", value: "", errorContains: "DB_HOST is required"},
		{name: "invalid db port", key: "DB_PORT", value: "abc", errorContains: "invalid DB_PORT"},
		{name: "missing jwt secret", key: "JWT_SECRET", value: "", errorContains: "JWT_SECRET is required"},
		{name: "invalid server port", key: "SERVER_PORT", value: "port", errorContains: "invalid SERVER_PORT"},
		{name: "invalid token expiry", key: "JWT_TOKEN_EXPIRY", value: "soon", errorContains: "invalid JWT_TOKEN_EXPIRY"},
		{name: "unsupported driver", key: "DB_DRIVER", value: "sqlite", errorContains: "unsupported DB_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setMySQLEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.Nil(t, cfg)
		})
	}

	t.Run("mongo without url", func(t *testing.T) {
		setMySQLEnv(t)
		t.Setenv("DB_DRIVER", "mongo")
		t.Setenv("MONGO_URL", "")

		_, err := Load()
		assert.ErrorContains(t, err, "MONGO_URL is required")
	})
}
