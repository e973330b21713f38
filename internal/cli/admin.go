package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dambastudy/backend/internal/models"
	"github.com/dambastudy/backend/pkg/client"
	"github.com/spf13/cobra"
)

// courseFlags holds the course fields shared by create and update
type courseFlags struct {
	title            string
	description      string
	shortDescription string
	price            float64
	thumbnail        string
	categoryID       string
	level            string
	duration         string
	instructorName   string
	rating           float64
	lessonsFile      string
}

func (f *courseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "course title")
	cmd.Flags().StringVar(&f.description, "description", "", "long description")
	cmd.Flags().StringVar(&f.shortDescription, "short-description", "", "short description")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price")
	cmd.Flags().StringVar(&f.thumbnail, "thumbnail", "", "thumbnail url")
	cmd.Flags().StringVar(&f.categoryID, "category", "", "category id")
	cmd.Flags().StringVar(&f.level, "level", "", "Beginner, Intermediate or Advanced")
	cmd.Flags().StringVar(&f.duration, "duration", "", "total duration, e.g. 4h 30m")
	cmd.Flags().StringVar(&f.instructorName, "instructor", "", "instructor name")
	cmd.Flags().Float64Var(&f.rating, "rating", 0, "rating from 0 to 5")
	cmd.Flags().StringVar(&f.lessonsFile, "lessons-file", "", "JSON file with an array of lessons")
}

func readLessons(path string) ([]models.LessonInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lessons file: %w", err)
	}
	var lessons []models.LessonInput
	if err := json.Unmarshal(data, &lessons); err != nil {
		return nil, fmt.Errorf("failed to parse lessons file: %w", err)
	}
	return lessons, nil
}

func (f *courseFlags) createRequest(cmd *cobra.Command) (models.CreateCourseRequest, error) {
	req := models.CreateCourseRequest{
		Title:            f.title,
		Description:      f.description,
		ShortDescription: f.shortDescription,
		Price:            f.price,
		Thumbnail:        f.thumbnail,
		Level:            models.Level(f.level),
		Duration:         f.duration,
	}
	if f.categoryID != "" {
		req.CategoryID = &f.categoryID
	}
	if f.instructorName != "" {
		req.Instructor = &models.Instructor{Name: f.instructorName}
	}
	if cmd.Flags().Changed("rating") {
		req.Rating = &f.rating
	}
	if f.lessonsFile != "" {
		lessons, err := readLessons(f.lessonsFile)
		if err != nil {
			return req, err
		}
		req.Lessons = lessons
	}
	return req, nil
}

// updateRequest only carries the flags given on the command line
func (f *courseFlags) updateRequest(cmd *cobra.Command) (models.UpdateCourseRequest, error) {
	var req models.UpdateCourseRequest
	changed := cmd.Flags().Changed

	if changed("title") {
		req.Title = &f.title
	}
	if changed("description") {
		req.Description = &f.description
	}
	if changed("short-description") {
		req.ShortDescription = &f.shortDescription
	}
	if changed("price") {
		req.Price = &f.price
	}
	if changed("thumbnail") {
		req.Thumbnail = &f.thumbnail
	}
	if changed("category") {
		req.CategoryID = &f.categoryID
	}
	if changed("level") {
		level := models.Level(f.level)
		req.Level = &level
	}
	if changed("duration") {
		req.Duration = &f.duration
	}
	if changed("instructor") {
		req.Instructor = &models.Instructor{Name: f.instructorName}
	}
	if changed("rating") {
		req.Rating = &f.rating
	}
	if f.lessonsFile != "" {
		lessons, err := readLessons(f.lessonsFile)
		if err != nil {
			return req, err
		}
		req.Lessons = lessons
	}
	return req, nil
}

func newAdminCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage categories and courses",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.requireAdmin()
		},
	}
	cmd.AddCommand(newAdminCategoriesCommand(app), newAdminCoursesCommand(app))
	return cmd
}

func newAdminCategoriesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
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

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := app.Client.CreateCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			app.printf("Created category %s (%s).\n", category.Name, category.ID)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			app.printf("Deleted category %s.\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, create, remove)
	return cmd
}

func newAdminCoursesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Manage courses",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List every course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Client.AdminCourses(cmd.Context(), client.CourseQuery{Search: search})
			if err != nil {
				return err
			}
			renderCourses(app.Out, resp.Courses)
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "text in title or description")

	var createFlags courseFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := createFlags.createRequest(cmd)
			if err != nil {
				return err
			}
			course, err := app.Client.CreateCourse(cmd.Context(), req)
			if err != nil {
				return err
			}
			app.printf("Created course %q (%s).\n", course.Title, course.ID)
			return nil
		},
	}
	createFlags.register(create)
	_ = create.MarkFlagRequired("title")

	var updateFlags courseFlags
	update := &cobra.Command{
		Use:   "update <course-id>",
		Short: "Update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := updateFlags.updateRequest(cmd)
			if err != nil {
				return err
			}
			course, err := app.Client.UpdateCourse(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			app.printf("Updated course %q.\n", course.Title)
			return nil
		},
	}
	updateFlags.register(update)

	remove := &cobra.Command{
		Use:   "delete <course-id>",
		Short: "Delete a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.DeleteCourse(cmd.Context(), args[0]); err != nil {
				return err
			}
			app.printf("Deleted course %s.\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, create, update, remove)
	return cmd
}
