package cli

import (
	"fmt"
	"os"

	"github.com/dambastudy/backend/internal/models"
	"github.com/spf13/cobra"
)

func newCertificatesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certificates",
		Short: "List, issue and download certificates",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.requireLogin()
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your certificates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			certificates, err := app.Client.Certificates(cmd.Context())
			if err != nil {
				return err
			}
			renderCertificates(app.Out, certificates)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <certificate-id>",
		Short: "Show a certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Client.Certificate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			app.printf("Certificate of Completion\n\n")
			app.printf("  This is to certify that %s\n", c.StudentName)
			app.printf("  has successfully completed the course %s\n", c.CourseTitle)
			app.printf("  Date: %s\n", c.Date)
			app.printf("  Certificate ID: %s\n", c.ID)
			return nil
		},
	}

	var courseID, courseTitle, studentName string
	create := &cobra.Command{
		Use:   "create",
		Short: "Issue a certificate for a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := courseTitle
			if courseID != "" {
				course, err := app.Client.Course(cmd.Context(), courseID)
				if err != nil {
					return err
				}
				title = course.Title
			}
			if title == "" {
				return fmt.Errorf("either --course or --title is required")
			}

			name := studentName
			if name == "" && app.Auth.User() != nil {
				name = app.Auth.User().Name
			}

			c, err := app.Client.CreateCertificate(cmd.Context(), models.CreateCertificateRequest{
				CourseTitle: title,
				StudentName: name,
			})
			if err != nil {
				return err
			}
			app.printf("Certificate %s issued for %q.\n", c.ID, c.CourseTitle)
			return nil
		},
	}
	create.Flags().StringVar(&courseID, "course", "", "course id")
	create.Flags().StringVar(&courseTitle, "title", "", "course title, when no course id is given")
	create.Flags().StringVar(&studentName, "name", "", "name printed on the certificate (defaults to your name)")

	var output string
	download := &cobra.Command{
		Use:   "download <certificate-id>",
		Short: "Download a certificate as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Client.CertificatePDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("certificate-%s.pdf", args[0])
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			app.printf("Saved %s (%d bytes).\n", path, len(data))
			return nil
		},
	}
	download.Flags().StringVarP(&output, "output", "o", "", "output file")

	cmd.AddCommand(list, show, create, download)
	return cmd
}
