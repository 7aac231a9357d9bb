package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habithatch/internal/ui"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("habit name is required")
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

			habit, err := svc.AddHabit(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s added %q %s\n",
				ui.Good.Render("➕"), habit.Name, ui.Muted.Render("("+habit.ID+")"))
			return nil
		},
	}
}
