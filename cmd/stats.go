package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/deck"
	"github.com/wanderdeck/wanderdeck/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize deck composition and export it as CSV",
	Long: `Stats prints how many cards the deck holds per continent and per
transport combination (combinations are order-insensitive, so bus+train
and train+bus count together), and writes the full card list to
<output>/cards.csv.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		d, err := deck.Load(cfg.DeckPath())
		if err != nil {
			return err
		}

		s := stats.Collect(d.Cards)
		fmt.Print(s.Format(color.CyanString))

		if err := assets.EnsureDir(cfg.OutputFolder); err != nil {
			return err
		}
		csvPath := filepath.Join(cfg.OutputFolder, "cards.csv")
		if err := stats.WriteCSV(d.Cards, csvPath); err != nil {
			return err
		}
		fmt.Printf("\n%s %s\n", color.GreenString("CSV written:"), csvPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
