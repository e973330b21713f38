package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dambastudy/backend/internal/models"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cells ...any) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprint(cell)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func price(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

func categoryName(c models.Course) string {
	if c.Category == nil {
		return "-"
	}
	return c.Category.Name
}

func renderCourses(w io.Writer, courses []models.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return
	}

	tw := newTable(w, "ID", "TITLE", "CATEGORY", "LEVEL", "PRICE", "RATING", "ENROLLED")
	for _, c := range courses {
		row(tw, c.ID, c.Title, categoryName(c), c.Level, price(c.Price), fmt.Sprintf("%.1f", c.Rating), c.EnrolledCount)
	}
	tw.Flush()
}

func renderCourse(w io.Writer, c *models.Course) {
	fmt.Fprintf(w, "%s\n", c.Title)
	fmt.Fprintf(w, "  ID:         %s\n", c.ID)
	fmt.Fprintf(w, "  Category:   %s\n", categoryName(*c))
	fmt.Fprintf(w, "  Level:      %s\n", c.Level)
	fmt.Fprintf(w, "  Price:      %s\n", price(c.Price))
	fmt.Fprintf(w, "  Duration:   %s\n", c.Duration)
	fmt.Fprintf(w, "  Instructor: %s\n", c.Instructor.Name)
	fmt.Fprintf(w, "  Rating:     %.1f (%d enrolled)\n", c.Rating, c.EnrolledCount)
	if c.Description != "" {
		fmt.Fprintf(w, "\n%s\n", c.Description)
	}

	if len(c.Lessons) > 0 {
		fmt.Fprintln(w, "\nLessons:")
		renderLessons(w, c.Lessons, nil)
	}

	if len(c.Reviews) > 0 {
		fmt.Fprintln(w, "\nReviews:")
		for _, r := range c.Reviews {
			fmt.Fprintf(w, "  %s %s: %s\n", strings.Repeat("*", r.Rating), r.UserName, r.Comment)
		}
	}
}

func renderLessons(w io.Writer, lessons []models.Lesson, completed map[string]bool) {
	tw := newTable(w, "#", "ID", "TITLE", "DURATION", "DONE")
	for _, l := range lessons {
		done := ""
		if completed[l.ID] {
			done = "yes"
		}
		row(tw, l.Order, l.ID, l.Title, l.Duration, done)
	}
	tw.Flush()
}

func renderCertificates(w io.Writer, certificates []models.Certificate) {
	if len(certificates) == 0 {
		fmt.Fprintln(w, "No certificates yet.")
		return
	}

	tw := newTable(w, "ID", "COURSE", "STUDENT", "DATE")
	for _, c := range certificates {
		row(tw, c.ID, c.CourseTitle, c.StudentName, c.Date)
	}
	tw.Flush()
}
