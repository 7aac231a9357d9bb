package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habithatch/internal/game"
	"habithatch/internal/ui"
)

func newShopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Browse the item shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openGame(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			coins := svc.User().Coins
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Item Shop"))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("you have %s %d", ui.IconCoin, coins)))
			fmt.Fprintln(out, "")

			for _, item := range svc.Catalog() {
				tag := priceTag(svc, item, coins)
				fmt.Fprintf(out, "%s %-14s %-10s %s %s\n",
					item.Emoji, item.Name, ui.Muted.Render(string(item.Type)), tag,
					ui.Muted.Render("("+item.ID+")"))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("buy with: hatch buy <item-id>"))
			return nil
		},
	}
}

func priceTag(svc *game.Service, item game.ShopItem, coins int) string {
	switch {
	case svc.Owns(item) && svc.Equipped(item):
		return ui.Good.Render("equipped")
	case svc.Owns(item):
		return ui.H2.Render("owned")
	case coins >= item.Price:
		return ui.Gold.Render(fmt.Sprintf("%d %s", item.Price, ui.IconCoin))
	default:
		return ui.Muted.Render(fmt.Sprintf("%d %s", item.Price, ui.IconCoin))
	}
}

func newBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy (or re-equip) a shop item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
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

			res, err := svc.BuyItem(ctx, args[0])
			if err != nil {
				var funds game.InsufficientFundsError
				if errors.As(err, &funds) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" "+funds.Error()))
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			switch res.Outcome {
			case game.PurchaseAlreadyOwned:
				fmt.Fprintf(out, "%s already owned, %s %s equipped.\n", ui.IconDone, res.Item.Emoji, res.Item.Name)
			default:
				fmt.Fprintf(out, "%s bought %s %s! %s %d left.\n",
					ui.Good.Render(ui.IconShop), res.Item.Emoji, res.Item.Name, ui.IconCoin, res.Coins)
				if res.Equipped {
					fmt.Fprintln(out, ui.Muted.Render("equipped right away"))
				}
			}
			return nil
		},
	}
}

func newEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Equip an owned item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
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

			if err := svc.EquipItem(ctx, args[0]); err != nil {
				return err
			}
			item, err := svc.Item(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s equipped %s %s\n", ui.Good.Render(ui.IconDone), item.Emoji, item.Name)
			return nil
		},
	}
}
