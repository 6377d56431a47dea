package root

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"palplanner/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task and earn its PalPoints",
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

			id := uuid.MustParse(args[0])
			t, ok := a.Tasks.Get(id)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task."))
				return nil
			}
			if !a.Tasks.Complete(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Muted.Render("Task is already "+string(t.Status)+"; nothing to do."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s +%d PalPoints (balance %d)\n",
				ui.IconDone, t.Title, t.Points, a.Tasks.Balance())
			return nil
		},
	}

	return cmd
}
