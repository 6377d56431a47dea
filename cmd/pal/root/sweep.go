package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"palplanner/internal/ui"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Fail pending tasks past their grace period",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.Tasks.CheckExpired(time.Now()) {
				fmt.Fprintln(cmd.OutOrStdout(), "Expired tasks marked failed.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing expired."))
			}
			return nil
		},
	}

	return cmd
}
