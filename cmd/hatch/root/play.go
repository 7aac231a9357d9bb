package root

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"habithatch/internal/tui"
	"habithatch/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "play <rps|memory|blitz>",
		Short: "Play an arcade game to earn coins",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("pick a game: rps, memory or blitz")
			}
			switch args[0] {
			case "rps", "memory", "blitz":
				return nil
			default:
				return fmt.Errorf("unknown game %q (rps|memory|blitz)", args[0])
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openGame(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			// Midnight rollovers still land while a session stays open.
			loopCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			go svc.RunDailyLoop(loopCtx, time.Minute, nil)

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			balance := currentBalance()

			before := svc.User().Coins
			switch args[0] {
			case "rps":
				err = tui.RunRPS(ctx, svc, balance, rng)
			case "memory":
				err = tui.RunMemory(ctx, svc, balance, rng)
			case "blitz":
				err = tui.RunBlitz(ctx, svc, balance)
			}
			if err != nil {
				return err
			}

			earned := svc.User().Coins - before
			fmt.Fprintf(cmd.OutOrStdout(), "%s earned %s %d this session. Total: %d\n",
				ui.IconGame, ui.IconCoin, earned, svc.User().Coins)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	return cmd
}

func newPetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pet",
		Short: "Give your pet some attention",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openGame(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			line := svc.PetThePet(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s says: %q\n", ui.IconHeart, svc.Pet().Name, line)
			return nil
		},
	}
}
