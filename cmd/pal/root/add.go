package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"palplanner/internal/task"
	"palplanner/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var dateStr string
	var timeStr string
	var points int
	var grace int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
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
			due, err := parseClock(timeStr, date)
			if err != nil {
				return err
			}

			id, err := a.Tasks.Add(task.Spec{
				Title:        args[0],
				Description:  desc,
				Date:         date,
				DueTime:      due,
				Points:       points,
				GraceMinutes: grace,
			})
			if err != nil {
				return err
			}

			t, _ := a.Tasks.Get(id)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Task added"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", t.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Due", t.DueInstant().Format("Mon Jan 2 15:04")))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Reward", fmt.Sprintf("%d PalPoints", t.Points)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Grace", fmt.Sprintf("%d minutes", t.GraceMinutes)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "D", "", "Task description")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Calendar date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&timeStr, "time", "t", "18:00", "Due time of day (HH:MM)")
	cmd.Flags().IntVarP(&points, "points", "p", 0, "PalPoints reward (default 10)")
	cmd.Flags().IntVarP(&grace, "grace", "g", 0, "Grace period in minutes (default 30)")

	return cmd
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

func parseClock(s string, day time.Time) (time.Time, error) {
	c, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location()), nil
}
