package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"palplanner/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "pal",
	Short:         "PalPlanner — a virtual pet powered by your real-world tasks",
	Long:          "PalPlanner keeps a virtual pet whose well-being depends on you finishing time-boxed tasks. Completing tasks earns PalPoints to spend in the shop on food, toys, and outfits.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newRmCmd(),
		newDayCmd(),
		newSweepCmd(),
		newPetCmd(),
		newFeedCmd(),
		newPlayCmd(),
		newShopCmd(),
		newBuyCmd(),
		newEquipCmd(),
		newUnequipCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
