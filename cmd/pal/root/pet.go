package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"palplanner/internal/shop"
	"palplanner/internal/ui"
)

func newPetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Show your pet's status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			happiness, energy, mood := a.Pet.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPet, a.Pet.Name()))
			fmt.Fprintln(out, ui.LabelValue("Mood", ui.MoodText(mood)))
			fmt.Fprintln(out, ui.LabelValue("Happiness", fmt.Sprintf("%.0f%%", happiness*100)))
			fmt.Fprintln(out, ui.LabelValue("Energy", fmt.Sprintf("%.0f%%", energy*100)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Equipped"))
			equipped := a.Pet.EquippedItems()
			if len(equipped) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing)"))
			}
			for _, c := range shop.Categories {
				if item, ok := equipped[c]; ok {
					fmt.Fprintf(out, "- %s %s %s\n", ui.CategoryIcon(c), item.Name, ui.Muted.Render(string(c)))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newPetRenameCmd())

	return cmd
}

func newPetRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename your pet",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || args[0] == "" {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			a.Pet.Rename(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s Your pet is now called %s.\n", ui.IconPet, a.Pet.Name())
			return nil
		},
	}
}

func newFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Feed your pet (needs equipped food)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.Pet.Feed() {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("No food equipped. Buy food in the shop and equip it first."))
				return nil
			}
			_, energy, mood := a.Pet.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s munches happily. Energy %.0f%%, mood %s.\n",
				ui.IconFood, a.Pet.Name(), energy*100, mood)
			return nil
		},
	}
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play with your pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			a.Pet.Play()
			happiness, energy, mood := a.Pet.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s had fun! Happiness %.0f%%, energy %.0f%%, mood %s.\n",
				ui.IconToy, a.Pet.Name(), happiness*100, energy*100, mood)
			return nil
		},
	}
}
