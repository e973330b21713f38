package certificate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dambastudy/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCertificate() *models.Certificate {
	return &models.Certificate{
		ID:          "0b7e6a7c-5d1f-4c1e-9d7e-3f1b2a9c8d10",
		CourseTitle: "Go Basics",
		StudentName: "Ann Lee",
		Date:        "2026-10-16",
	}
}

func TestNewRenderer(t *testing.T) {
	assert.Equal(t, "https://dambastudy.test/verify", NewRenderer("https://dambastudy.test/verify/").verifyURL)
	assert.Empty(t, NewRenderer("").verifyURL)
}

func TestRenderer_Render(t *testing.T) {
	t.Run("plain document", func(t *testing.T) {
		data, err := NewRenderer("").Render(testCertificate())
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		assert.Contains(t, string(data), "/MediaBox [0 0 800.00 600.00]")
		assert.Contains(t, string(data), "/BaseFont /Helvetica-Bold")
		assert.NotContains(t, string(data), "/Subtype /Image")
	})

	t.Run("with verification QR code", func(t *testing.T) {
		data, err := NewRenderer("https://dambastudy.test/verify").Render(testCertificate())
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		assert.Contains(t, string(data), "/Subtype /Image")
	})

	t.Run("long titles and non ASCII names render", func(t *testing.T) {
		cert := testCertificate()
		cert.StudentName = "Zoë Ñúñez"
		cert.CourseTitle = strings.Repeat("Very Long Course Title ", 20)

		data, err := NewRenderer("").Render(cert)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}
