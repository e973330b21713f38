package cli

import (
	"github.com/dambastudy/backend/pkg/client/state"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCartCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	add := &cobra.Command{
		Use:   "add <course-id>",
		Short: "Add a course to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := app.Client.Course(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			added, err := app.Cart.Add(state.ItemFromCourse(*course))
			if err != nil {
				return err
			}
			if !added {
				app.printf("%q is already in your cart.\n", course.Title)
				return nil
			}
			app.printf("Added %q to your cart (%d items).\n", course.Title, app.Cart.Len())
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <course-id>",
		Short: "Remove a course from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Remove(args[0]); err != nil {
				return err
			}
			app.printf("Cart has %d items.\n", app.Cart.Len())
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cart.Len() == 0 {
				app.printf("Your cart is empty.\n")
				return nil
			}

			tw := newTable(app.Out, "ID", "TITLE", "PRICE")
			for _, item := range app.Cart.Items() {
				row(tw, item.ID, item.Title, price(item.Price))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			app.printf("\nTotal: %s\n", price(app.Cart.Total()))
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Clear(); err != nil {
				return err
			}
			app.printf("Cart cleared.\n")
			return nil
		},
	}

	checkout := &cobra.Command{
		Use:   "checkout",
		Short: "Enroll in every course of the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			if app.Cart.Len() == 0 {
				app.printf("Your cart is empty.\n")
				return nil
			}

			total := app.Cart.Total()
			count := app.Cart.Len()
			if err := app.Client.EnrollMultiple(cmd.Context(), app.Cart.IDs()); err != nil {
				return err
			}
			if err := app.Cart.Clear(); err != nil {
				app.Logger.Warn("failed to clear cart after checkout", zap.Error(err))
			}

			app.printf("Enrolled in %d courses for %s. Happy learning!\n", count, price(total))
			return nil
		},
	}

	cmd.AddCommand(add, remove, list, clear, checkout)
	return cmd
}
