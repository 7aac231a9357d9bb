package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"habithatch/internal/ui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List today's habits",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openGame(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			habits := svc.Habits()
			fmt.Fprintln(out, ui.Heading(ui.IconEgg, "Today's Habits"))
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No habits yet. Start hatching: hatch add <name>"))
				return nil
			}
			for _, h := range habits {
				name := h.Name
				if h.Completed {
					name = ui.Muted.Render(name)
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.HabitIcon(h.Completed), name,
					ui.Muted.Render(fmt.Sprintf("%s%d", ui.IconFlame, h.Streak)),
					ui.Muted.Render("("+h.ID+")"))
			}
			return nil
		},
	}
}
