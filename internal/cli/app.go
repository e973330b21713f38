// Package cli implements the dambastudy terminal client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dambastudy/backend/pkg/client"
	"github.com/dambastudy/backend/pkg/client/state"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errLoginRequired is returned by commands that need a session
var errLoginRequired = errors.New("please log in first: dambastudy login --email <email> --password <password>")

// App carries what every command needs
type App struct {
	Client *client.Client
	Auth   *state.Auth
	Cart   *state.Cart
	Out    io.Writer
	Logger *zap.Logger
}

// NewApp builds the API client and restores the saved session and cart.
// A 401 from the API forgets the saved token and prints a login hint.
func NewApp(ctx context.Context, baseURL, stateDir string, out io.Writer, logger *zap.Logger) (*App, error) {
	store := state.NewStore(stateDir)
	app := &App{Out: out, Logger: logger}

	app.Client = client.New(baseURL, client.WithUnauthorizedHandler(func() {
		if app.Auth == nil || !app.Auth.IsAuthenticated() {
			return
		}
		if err := app.Auth.Clear(); err != nil {
			logger.Warn("failed to clear session", zap.Error(err))
		}
		fmt.Fprintln(out, "Your session has expired, please log in again.")
	}))
	app.Auth = state.NewAuth(store, app.Client)

	cart, err := state.LoadCart(store)
	if err != nil {
		return nil, err
	}
	app.Cart = cart

	if err := app.Auth.Restore(ctx); err != nil {
		logger.Warn("failed to restore session", zap.Error(err))
	}

	return app, nil
}

func (a *App) requireLogin() error {
	if !a.Auth.IsAuthenticated() {
		return errLoginRequired
	}
	return nil
}

func (a *App) requireAdmin() error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if !a.Auth.IsAdmin() {
		return errors.New("this command requires an admin account")
	}
	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}

// NewRootCommand builds the command tree
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "dambastudy",
		Short:         "Browse courses, learn and manage DambaStudy from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.Out)

	root.AddCommand(
		newCoursesCommand(app),
		newRegisterCommand(app),
		newLoginCommand(app),
		newLogoutCommand(app),
		newMeCommand(app),
		newProfileCommand(app),
		newCartCommand(app),
		newDashboardCommand(app),
		newLearnCommand(app),
		newReviewCommand(app),
		newCertificatesCommand(app),
		newAdminCommand(app),
	)

	return root
}
