package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wanderdeck/wanderdeck/internal/deck"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort the deck file by continent and transport combination",
	Long: `Sort rewrites cards.toml ordered by continent, then by the standard
transport combination order (bus+bus, bus+train, bus+boat, train+boat,
bus+train+boat, everything else last). Cards that compare equal keep
their existing relative order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		d, err := deck.Load(cfg.DeckPath())
		if err != nil {
			return err
		}

		d.Sort()
		if err := d.Save(cfg.DeckPath()); err != nil {
			return err
		}

		fmt.Printf("%s %s (%d cards)\n",
			color.GreenString("Sorted:"), cfg.DeckPath(), len(d.Cards))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sortCmd)
}
