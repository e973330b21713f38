package cli

import (
	"fmt"

	"github.com/dambastudy/backend/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// progressPercent rounds the share of completed lessons to a whole percent
func progressPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	return (completed*100 + total/2) / total
}

func completedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func newDashboardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your courses and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			courses, err := app.Client.MyCourses(cmd.Context())
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				app.printf("You are not enrolled in any course yet. Try: dambastudy courses list\n")
				return nil
			}

			tw := newTable(app.Out, "ID", "TITLE", "LESSONS", "PROGRESS")
			for _, c := range courses {
				completed, err := app.Client.Progress(cmd.Context(), c.ID)
				if err != nil {
					app.Logger.Warn("failed to load progress", zap.String("course_id", c.ID), zap.Error(err))
				}
				done := len(completedSet(completed))
				row(tw, c.ID, c.Title, fmt.Sprintf("%d/%d", done, len(c.Lessons)), fmt.Sprintf("%d%%", progressPercent(done, len(c.Lessons))))
			}
			return tw.Flush()
		},
	}
}

func newLearnCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Follow the lessons of an enrolled course",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.requireLogin()
		},
	}

	lessons := &cobra.Command{
		Use:   "lessons <course-id>",
		Short: "List the lessons of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := app.Client.Lessons(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			completed, err := app.Client.Progress(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			set := completedSet(completed)
			renderLessons(app.Out, lessons, set)
			app.printf("\nProgress: %d%%\n", progressPercent(len(set), len(lessons)))
			return nil
		},
	}

	lesson := &cobra.Command{
		Use:   "lesson <course-id> <lesson-id>",
		Short: "Open a lesson",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.Client.Lesson(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			app.printf("%s\n", detail.Course.Title)
			app.printf("Lesson %d: %s (%s)\n", detail.Lesson.Order, detail.Lesson.Title, detail.Lesson.Duration)
			if detail.Lesson.VideoURL != "" {
				app.printf("Video: %s\n", detail.Lesson.VideoURL)
			}

			if next := nextLesson(detail.Lessons, detail.Lesson.ID); next != nil {
				app.printf("\nNext: dambastudy learn lesson %s %s\n", detail.Course.ID, next.ID)
			}
			return nil
		},
	}

	complete := &cobra.Command{
		Use:   "complete <course-id> <lesson-id>",
		Short: "Mark a lesson as complete",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.CompleteLesson(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			lessons, err := app.Client.Lessons(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			completed, err := app.Client.Progress(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			percent := progressPercent(len(completedSet(completed)), len(lessons))
			app.printf("Lesson marked as complete. Progress: %d%%\n", percent)
			if percent == 100 {
				app.printf("Course finished! Claim your certificate: dambastudy certificates create --course %s\n", args[0])
			}
			return nil
		},
	}

	cmd.AddCommand(lessons, lesson, complete)
	return cmd
}

// nextLesson returns the lesson following current in order, or nil on the last one
func nextLesson(lessons []models.Lesson, current string) *models.Lesson {
	for i := range lessons {
		if lessons[i].ID == current && i+1 < len(lessons) {
			return &lessons[i+1]
		}
	}
	return nil
}

func newReviewCommand(app *App) *cobra.Command {
	var rating int
	var comment string
	cmd := &cobra.Command{
		Use:   "review <course-id>",
		Short: "Review a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			review, err := app.Client.AddReview(cmd.Context(), args[0], models.ReviewRequest{Rating: rating, Comment: comment})
			if err != nil {
				return err
			}
			app.printf("Thanks %s, your %d star review was added.\n", review.UserName, review.Rating)
			return nil
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 5, "rating from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "review text")
	_ = cmd.MarkFlagRequired("comment")
	return cmd
}
