package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"habithatch/internal/game"
	"habithatch/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your pet and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openGame(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			pet := svc.Pet()
			user := svc.User()

			fmt.Fprintln(out, ui.Heading(stageIcon(pet.Stage), pet.Name))
			fmt.Fprintln(out, ui.LabelValue("Stage", string(pet.Stage)))
			fmt.Fprintln(out, ui.LabelValue("Level", pet.Level))
			nextXP, hasNext := game.NextStageThreshold(pet.XP)
			if hasNext {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (next stage at %d)", pet.XP, nextXP)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (max stage!)", pet.XP)))
			}
			fmt.Fprintln(out, ui.LabelValue("Happiness", fmt.Sprintf("%d%% %s", pet.Happiness, ui.IconHeart)))
			fmt.Fprintln(out, "")

			fmt.Fprintf(out, "%s %d   %s %d   %s %d days\n",
				ui.IconCoin, user.Coins, ui.IconGem, user.Gems, ui.IconFlame, user.DayStreak)

			worn := wornItems(pet)
			if len(worn) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Wearing"))
				for _, w := range worn {
					fmt.Fprintln(out, "- "+w)
				}
			}
			return nil
		},
	}
}

func stageIcon(stage game.PetStage) string {
	switch stage {
	case game.StageEgg:
		return "🥚"
	case game.StageBaby:
		return "👾"
	case game.StageChild:
		return "👺"
	case game.StageTeen:
		return "👹"
	case game.StageAdult:
		return "🐉"
	case game.StageMythic:
		return "🦖"
	default:
		return "🥚"
	}
}

func wornItems(pet game.PetState) []string {
	var worn []string
	add := func(label string, v *string) {
		if v != nil {
			worn = append(worn, ui.Key.Render(label+":")+" "+*v)
		}
	}
	add("Hat", pet.EquippedHat)
	add("Background", pet.EquippedBackground)
	add("Skin", pet.EquippedSkin)
	add("Accessory", pet.EquippedAccessory)
	return worn
}
