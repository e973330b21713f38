// Package certificate draws completion certificates as PDF documents.
package certificate

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dambastudy/backend/internal/models"
	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"
)

// Page geometry in points. Text positions are measured from the bottom edge.
const (
	PageWidth  = 800
	PageHeight = 600

	qrSize   = 80
	qrMargin = 30
	qrPixels = 256
	qrImage  = "verify-qr"
)

type textBlock struct {
	x, y  float64
	size  float64
	gray  int
	value func(cert *models.Certificate) string
}

func fixed(s string) func(*models.Certificate) string {
	return func(*models.Certificate) string { return s }
}

// layout is drawn top to bottom. Long names and titles run past the right edge.
var layout = []textBlock{
	{x: 180, y: 520, size: 30, gray: 51, value: fixed("Certificate of Completion")},
	{x: 200, y: 470, size: 14, gray: 77, value: fixed("This certificate is proudly presented to:")},
	{x: 200, y: 430, size: 28, gray: 0, value: func(c *models.Certificate) string { return c.StudentName }},
	{x: 200, y: 380, size: 14, gray: 77, value: fixed("For successfully completing:")},
	{x: 200, y: 350, size: 20, gray: 26, value: func(c *models.Certificate) string { return c.CourseTitle }},
	{x: 200, y: 300, size: 14, gray: 77, value: func(c *models.Certificate) string { return "Date: " + c.Date }},
	{x: 330, y: 60, size: 12, gray: 51, value: fixed("DambaStudy Academy")},
}

// Renderer implements services.CertificateRenderer
type Renderer struct {
	verifyURL string
}

// NewRenderer creates a renderer. When verifyURL is not empty every document carries
// a QR code pointing at verifyURL/<certificate id>.
func NewRenderer(verifyURL string) *Renderer {
	return &Renderer{verifyURL: strings.TrimSuffix(verifyURL, "/")}
}

// Render draws the certificate and returns the PDF bytes
func (r *Renderer) Render(cert *models.Certificate) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Certificate of Completion", true)
	pdf.SetCreator("DambaStudy", true)
	pdf.AddPage()

	pdf.SetFillColor(242, 242, 242)
	pdf.Rect(0, 0, PageWidth, PageHeight, "F")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, block := range layout {
		pdf.SetFont("Helvetica", "B", block.size)
		pdf.SetTextColor(block.gray, block.gray, block.gray)
		pdf.Text(block.x, PageHeight-block.y, tr(block.value(cert)))
	}

	if r.verifyURL != "" {
		if err := r.drawQRCode(pdf, r.verifyURL+"/"+cert.ID); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) drawQRCode(pdf *fpdf.Fpdf, content string) error {
	png, err := qrcode.Encode(content, qrcode.Medium, qrPixels)
	if err != nil {
		return fmt.Errorf("failed to create QR code: %w", err)
	}

	options := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImage, options, bytes.NewReader(png))
	pdf.ImageOptions(qrImage, PageWidth-qrMargin-qrSize, PageHeight-qrMargin-qrSize, qrSize, qrSize, false, options, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to embed QR code: %w", err)
	}
	return nil
}
