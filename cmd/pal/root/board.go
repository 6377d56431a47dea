package root

import (
	"github.com/spf13/cobra"

	"palplanner/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			a.Start()
			defer a.Close()

			return tui.RunBoard(a, cmd.OutOrStdout())
		},
	}

	return cmd
}
