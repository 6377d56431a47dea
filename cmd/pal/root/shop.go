package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"palplanner/internal/shop"
	"palplanner/internal/ui"
)

func newShopCmd() *cobra.Command {
	var categoryStr string
	var ownedOnly bool

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the shop catalog or your inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(out, ui.Points(a.Tasks.Balance()))
			fmt.Fprintln(out, "")

			categories := shop.Categories
			if categoryStr != "" {
				c, err := shop.ParseCategory(categoryStr)
				if err != nil {
					return err
				}
				categories = []shop.Category{c}
			}

			for _, c := range categories {
				var items []shop.Item
				if ownedOnly {
					items = a.Shop.OwnedByCategory(c)
				} else {
					items = a.Shop.ItemsByCategory(c)
				}
				if len(items) == 0 {
					continue
				}
				fmt.Fprintln(out, ui.H2.Render(ui.CategoryIcon(c)+" "+string(c)))
				for _, item := range items {
					tag := ""
					if item.Equipped {
						tag = " " + ui.Good.Render("[equipped]")
					} else if item.Owned {
						tag = " " + ui.Muted.Render("[owned]")
					}
					fmt.Fprintf(out, "- %s — %d pts%s %s\n",
						item.Name, item.Price, tag, ui.Muted.Render("("+item.ID+")"))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryStr, "category", "c", "", "Filter by category (food|toy|clothing|accessory)")
	cmd.Flags().BoolVarP(&ownedOnly, "owned", "o", false, "Show only owned items")

	return cmd
}

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a shop item with PalPoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			item, ok := a.Shop.Get(args[0])
			if !ok {
				fmt.Fprintln(out, ui.Muted.Render("No such item."))
				return nil
			}
			if !a.Purchase(args[0]) {
				if item.Owned {
					fmt.Fprintln(out, ui.Muted.Render("You already own "+item.Name+"."))
				} else {
					fmt.Fprintf(out, "%s\n", ui.Warn.Render(fmt.Sprintf(
						"Not enough PalPoints for %s (need %d, have %d).",
						item.Name, item.Price, a.Tasks.Balance())))
				}
				return nil
			}
			fmt.Fprintf(out, "%s Bought %s for %d pts. Balance %d.\n",
				ui.IconShop, item.Name, item.Price, a.Tasks.Balance())
			return nil
		},
	}

	return cmd
}

func newEquipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Equip an owned item on your pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.Equip(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("You don't own that item."))
				return nil
			}
			item, _ := a.Shop.Get(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s equipped %s.\n",
				ui.CategoryIcon(item.Category), a.Pet.Name(), item.Name)
			return nil
		},
	}

	return cmd
}

func newUnequipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unequip <category>",
		Short: "Clear the equip slot for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := shop.ParseCategory(args[0])
			if err != nil {
				return err
			}
			a.Unequip(c)
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared the %s slot.\n", c)
			return nil
		},
	}

	return cmd
}
