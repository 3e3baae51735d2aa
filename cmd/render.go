package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/deck"
	"github.com/wanderdeck/wanderdeck/internal/layout"
	"github.com/wanderdeck/wanderdeck/internal/pdfgen"
	"github.com/wanderdeck/wanderdeck/internal/raster"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the deck PDF (and optionally one PNG per card)",
	Long: `Render reads cards.toml from the input folder, resolves every card's
assets and tiles the cards into a centered grid on A4 landscape pages.
Cards appear in file order; a new page starts whenever the grid fills.

With --cards, every card is additionally written as a standalone PNG
into <output>/cards/, named by city slug.

Any missing asset or invalid record aborts the whole run; no partial
deck is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		d, err := deck.Load(cfg.DeckPath())
		if err != nil {
			return err
		}
		if len(d.Cards) == 0 {
			return fmt.Errorf("deck %s contains no cards", cfg.DeckPath())
		}

		if err := assets.EnsureDir(cfg.OutputFolder); err != nil {
			return err
		}

		lib := assets.NewLibrary(cfg.InputFolder)
		gen := &pdfgen.Generator{
			Lib: lib,
			Grid: layout.Grid{
				Rows: cfg.GridRows,
				Cols: cfg.GridColumns,
				Gap:  cfg.GapMM,
			},
			FontPath: lib.DeckFont(),
		}

		pages, err := gen.Generate(d.Cards, cfg.OutputPath())
		if err != nil {
			return err
		}
		fmt.Printf("%s %s (%d cards, %d pages)\n",
			color.GreenString("PDF generated:"), cfg.OutputPath(), len(d.Cards), pages)

		withCards, _ := cmd.Flags().GetBool("cards")
		if !withCards {
			return nil
		}

		r, err := raster.NewRenderer(lib, cfg.CardImageWidth, lib.DeckFont())
		if err != nil {
			return err
		}
		if err := r.SaveCards(d.Cards, cfg.CardsDir()); err != nil {
			return err
		}
		fmt.Printf("%s %s (%d files)\n",
			color.GreenString("Card images written:"), cfg.CardsDir(), len(d.Cards))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Bool("cards", false, "Also write one PNG per card")
}
