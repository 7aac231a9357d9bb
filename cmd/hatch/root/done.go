package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habithatch/internal/game"
	"habithatch/internal/ui"
)

// resolveHabit matches by exact id first, then by unique case-insensitive
// name.
func resolveHabit(svc *game.Service, ref string) (game.Habit, error) {
	habits := svc.Habits()
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	var found []game.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			found = append(found, h)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return game.Habit{}, fmt.Errorf("no habit matches %q", ref)
	default:
		return game.Habit{}, fmt.Errorf("%q is ambiguous; use the habit id", ref)
	}
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <habit>",
		Short: "Complete a habit for today",
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
			res, err := svc.CompleteHabit(ctx, habit.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Counted {
				fmt.Fprintf(out, "%s %q is already done today.\n", ui.IconDone, res.Habit.Name)
				return nil
			}

			fmt.Fprintf(out, "%s %q done! %s+%d xp, %s+%d",
				ui.Good.Render(ui.IconDone), res.Habit.Name,
				ui.IconSparkle, res.XPAwarded, ui.IconCoin, res.CoinsEarned)
			if res.StreakBump {
				fmt.Fprintf(out, ", %s day streak %d, %s+%d", ui.IconFlame, res.DayStreak, ui.IconGem, res.GemsEarned)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "   %s habit streak: %d\n", ui.IconFlame, res.Habit.Streak)

			if res.StageUp {
				fmt.Fprintln(out, ui.BadgeStageUp+" "+ui.Gold.Render(fmt.Sprintf("%s evolved: %s → %s!", svc.Pet().Name, res.StageBefore, res.StageAfter)))
			}
			fmt.Fprintf(out, "%s %s says: %q\n", ui.IconHeart, svc.Pet().Name, res.Reaction)
			return nil
		},
	}
}
