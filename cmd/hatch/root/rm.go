package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habithatch/internal/ui"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <habit>",
		Short: "Delete a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit id or name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openGame(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			habit, err := resolveHabit(svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.RemoveHabit(ctx, habit.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed %q\n", ui.Muted.Render("🗑"), habit.Name)
			return nil
		},
	}
}
