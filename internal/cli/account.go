package cli

import (
	"github.com/dambastudy/backend/internal/models"
	"github.com/spf13/cobra"
)

func newRegisterCommand(app *App) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			app.printf("Welcome, %s!\n", user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (at least 6 characters)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			app.printf("Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(); err != nil {
				return err
			}
			app.printf("Logged out.\n")
			return nil
		},
	}
}

func newMeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			user, err := app.Client.Me(cmd.Context())
			if err != nil {
				return err
			}
			role := "student"
			if user.IsAdmin {
				role = "admin"
			}
			app.printf("%s <%s> (%s)\n", user.Name, user.Email, role)
			return nil
		},
	}
}

func newProfileCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Change your profile or password",
	}

	var name, email string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			var req models.UpdateProfileRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}

			user, err := app.Client.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			app.printf("Profile updated: %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&email, "email", "", "new email")

	var current, next string
	password := &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			req := models.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
			if err := app.Client.ChangePassword(cmd.Context(), req); err != nil {
				return err
			}
			app.printf("Password updated.\n")
			return nil
		},
	}
	password.Flags().StringVar(&current, "current", "", "current password")
	password.Flags().StringVar(&next, "new", "", "new password")
	_ = password.MarkFlagRequired("current")
	_ = password.MarkFlagRequired("new")

	cmd.AddCommand(update, password)
	return cmd
}
