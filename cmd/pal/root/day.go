package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"palplanner/internal/task"
	"palplanner/internal/ui"
)

func newDayCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show tasks for a day, grouped by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, date.Format("Monday, Jan 2")))
			fmt.Fprintln(out, ui.Points(a.Tasks.Balance()))
			fmt.Fprintln(out, "")

			printSection(out, "Pending", a.Tasks.PendingForDate(date))
			printSection(out, "Completed", a.Tasks.CompletedForDate(date))
			printSection(out, "Failed", a.Tasks.FailedForDate(date))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Day to show (YYYY-MM-DD, default today)")

	return cmd
}

func printSection(out io.Writer, title string, tasks []task.Task) {
	if len(tasks) == 0 {
		return
	}
	fmt.Fprintln(out, ui.H2.Render(title))
	for _, t := range tasks {
		fmt.Fprintf(out, "- %s %s %s (%d pts) %s\n",
			t.DueInstant().Format("15:04"), t.Title, ui.StatusText(t.Status), t.Points,
			ui.Muted.Render(t.ID.String()))
	}
	fmt.Fprintln(out, "")
}
