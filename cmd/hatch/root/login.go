package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habithatch/internal/ui"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Start (or resume) playing as a user",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("username is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			saves, cleanup, err := openSaves(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			username := strings.TrimSpace(args[0])
			if err := saves.SetCurrentUser(ctx, username); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconEgg, "Welcome, "+username+"!"))
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Stop playing as the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			saves, cleanup, err := openSaves(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := saves.SetCurrentUser(ctx, ""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Logged out. Your pet will wait for you."))
			return nil
		},
	}
}
