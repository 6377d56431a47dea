package root

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"palplanner/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task (any status)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := uuid.Parse(args[0]); err != nil {
				return errors.New("id must be a UUID")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.Tasks.Delete(uuid.MustParse(args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Task deleted.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task."))
			}
			return nil
		},
	}

	return cmd
}
