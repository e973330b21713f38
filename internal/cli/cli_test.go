package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  int
	}{
		{name: "no lessons", completed: 0, total: 0, expected: 0},
		{name: "none done", completed: 0, total: 8, expected: 0},
		{name: "one of three rounds down", completed: 1, total: 3, expected: 33},
		{name: "two of three rounds up", completed: 2, total: 3, expected: 67},
		{name: "all done", completed: 8, total: 8, expected: 100},
		{name: "stale extra ids are capped", completed: 5, total: 4, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, progressPercent(tt.completed, tt.total))
		})
	}
}

func TestCoursesList(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run("courses", "list", "--category", "Programming", "--level", "Beginner", "--sort", "price-low", "--page", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Go Basics")
	assert.Contains(t, out, "$19.99")
	assert.Contains(t, env.api.lastQuery, "category=Programming")
	assert.Contains(t, env.api.lastQuery, "level=Beginner")
	assert.Contains(t, env.api.lastQuery, "sort=price-low")
	assert.Contains(t, env.api.lastQuery, "page=2")
}

func TestCoursesShow_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("courses", "show", "missing")
	assert.EqualError(t, err, "course not found")
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.run("login", "--email", "ann@example.com", "--password", "nope")
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("session survives restarts", func(t *testing.T) {
		env.login("ann@example.com")

		out, err := env.run("me")
		require.NoError(t, err)
		assert.Contains(t, out, "Ann <ann@example.com> (student)")
	})

	t.Run("logout", func(t *testing.T) {
		_, err := env.run("logout")
		require.NoError(t, err)

		_, err = env.run("me")
		assert.ErrorIs(t, err, errLoginRequired)
	})
}

func TestSessionExpired(t *testing.T) {
	env := newTestEnv(t)
	env.login("ann@example.com")

	env.api.mu.Lock()
	env.api.expired = true
	env.api.mu.Unlock()

	out, err := env.run("dashboard")
	assert.ErrorIs(t, err, errLoginRequired)
	assert.Contains(t, out, "Your session has expired")

	_, err = os.Stat(filepath.Join(env.dir, "damba_token.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestCartCheckout(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run("cart", "add", "c-1")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 items)")

	out, err = env.run("cart", "add", "c-1")
	require.NoError(t, err)
	assert.Contains(t, out, "already in your cart")

	out, err = env.run("cart", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: $19.99")

	_, err = env.run("cart", "checkout")
	assert.ErrorIs(t, err, errLoginRequired)

	env.login("ann@example.com")
	out, err = env.run("cart", "checkout")
	require.NoError(t, err)
	assert.Contains(t, out, "Enrolled in 1 courses for $19.99")
	assert.Equal(t, []string{"c-1"}, env.api.enrolled)

	out, err = env.run("cart", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Your cart is empty.")
}

func TestLearnComplete(t *testing.T) {
	env := newTestEnv(t)
	env.login("ann@example.com")

	out, err := env.run("learn", "complete", "c-1", "l-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress: 50%")
	assert.NotContains(t, out, "certificate")

	out, err = env.run("learn", "complete", "c-1", "l-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress: 100%")
	assert.Contains(t, out, "dambastudy certificates create --course c-1")

	out, err = env.run("dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "2/2")
	assert.Contains(t, out, "100%")
}

func TestCertificates(t *testing.T) {
	env := newTestEnv(t)
	env.login("ann@example.com")

	out, err := env.run("certificates", "create", "--course", "c-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Certificate cert-1 issued")
	assert.Equal(t, "Go Basics", env.api.certificate.CourseTitle)
	assert.Equal(t, "Ann", env.api.certificate.StudentName)

	path := filepath.Join(t.TempDir(), "cert.pdf")
	_, err = env.run("certificates", "download", "cert-1", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 fake", string(data))
}

func TestAdmin(t *testing.T) {
	t.Run("student is refused", func(t *testing.T) {
		env := newTestEnv(t)
		env.login("ann@example.com")

		_, err := env.run("admin", "categories", "create", "Design")
		assert.EqualError(t, err, "this command requires an admin account")
		assert.Empty(t, env.api.categories)
	})

	t.Run("create category", func(t *testing.T) {
		env := newTestEnv(t)
		env.login("admin@example.com")

		out, err := env.run("admin", "categories", "create", "Design")
		require.NoError(t, err)
		assert.Contains(t, out, "Created category Design (cat-1)")
	})

	t.Run("update sends only changed fields", func(t *testing.T) {
		env := newTestEnv(t)
		env.login("admin@example.com")

		out, err := env.run("admin", "courses", "update", "c-1", "--title", "Go Deep Dive", "--price", "0")
		require.NoError(t, err)
		assert.Contains(t, out, `Updated course "Go Deep Dive"`)

		assert.Equal(t, map[string]any{"title": "Go Deep Dive", "price": float64(0)}, env.api.updateBody)
	})

	t.Run("lessons file", func(t *testing.T) {
		env := newTestEnv(t)
		env.login("admin@example.com")

		path := filepath.Join(t.TempDir(), "lessons.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"title":"Intro","order":1}]`), 0o600))

		_, err := env.run("admin", "courses", "update", "c-1", "--lessons-file", path)
		require.NoError(t, err)

		lessons, ok := env.api.updateBody["lessons"].([]any)
		require.True(t, ok)
		assert.Len(t, lessons, 1)
	})
}
