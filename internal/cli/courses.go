package cli

import (
	"fmt"

	"github.com/dambastudy/backend/pkg/client"
	"github.com/spf13/cobra"
)

func newCoursesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the course catalog",
	}

	var q client.CourseQuery
	list := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Client.Courses(cmd.Context(), q)
			if err != nil {
				return err
			}

			renderCourses(app.Out, resp.Courses)
			app.printf("\nPage %d of %d (%d courses)\n", resp.Page, resp.Pages, resp.Total)
			return nil
		},
	}
	list.Flags().StringVar(&q.Category, "category", "", "category name")
	list.Flags().StringVar(&q.Level, "level", "", "Beginner, Intermediate or Advanced")
	list.Flags().StringVar(&q.Search, "search", "", "text in title or description")
	list.Flags().StringVar(&q.Sort, "sort", "", "price-low, price-high, popular or rating")
	list.Flags().IntVar(&q.Page, "page", 1, "page number")
	list.Flags().IntVar(&q.Limit, "limit", 12, "courses per page")

	popular := &cobra.Command{
		Use:   "popular",
		Short: "Show the most popular courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Client.PopularCourses(cmd.Context())
			if err != nil {
				return err
			}
			renderCourses(app.Out, courses)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course with its lessons and reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := app.Client.Course(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderCourse(app.Out, course)

			if app.Auth.IsAuthenticated() {
				enrolled, err := app.Client.IsEnrolled(cmd.Context(), course.ID)
				if err == nil && enrolled {
					fmt.Fprintln(app.Out, "\nYou are enrolled in this course.")
				}
			}
			return nil
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List course categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Client.Categories(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(app.Out, "ID", "NAME")
			for _, c := range categories {
				row(tw, c.ID, c.Name)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(list, popular, show, categories)
	return cmd
}
