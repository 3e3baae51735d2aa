package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/pdfgen"
)

var transportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Render the transport mini-card sheet",
	Long: `Transport builds a separate PDF of small transport cards: a tight 5x4
grid per page where each card carries one centered transport icon. The
deck composition is fixed (20 bus, 15 train, 13 boat, 12 plane); icons
missing from <input>/transport_icons/ are skipped with a warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := assets.EnsureDir(cfg.OutputFolder); err != nil {
			return err
		}

		gen := &pdfgen.Generator{Lib: assets.NewLibrary(cfg.InputFolder)}
		outPath := filepath.Join(cfg.OutputFolder, "transport_cards.pdf")

		pages, skipped, err := gen.GenerateTransport(nil, cfg.GapMM, outPath)
		if err != nil {
			return err
		}
		for _, id := range skipped {
			fmt.Printf("%s transport icon not found: %s\n", color.YellowString("Warning:"), id)
		}
		fmt.Printf("%s %s (%d pages)\n", color.GreenString("PDF generated:"), outPath, pages)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(transportCmd)
}
