package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"habithatch/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hatch",
	Short:         "HabitHatch: grow a pet by keeping your habits",
	Long:          "HabitHatch is a local-first habit tracker: completing habits feeds a virtual pet, earns coins for the shop, and unlocks arcade games.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newAddCmd(),
		newRmCmd(),
		newDoneCmd(),
		newListCmd(),
		newStatusCmd(),
		newShopCmd(),
		newBuyCmd(),
		newEquipCmd(),
		newPlayCmd(),
		newPetCmd(),
		newSaveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
