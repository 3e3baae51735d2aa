package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/card"
	"github.com/wanderdeck/wanderdeck/internal/deck"
	"github.com/wanderdeck/wanderdeck/internal/layout"
	"github.com/wanderdeck/wanderdeck/internal/preview"
	"github.com/wanderdeck/wanderdeck/internal/raster"
)

// previewCols is the character width of the ANSI card art; rows follow
// from the card aspect ratio at two pixels per character cell.
const previewCols = 56

var showCmd = &cobra.Command{
	Use:   "show [index|city]",
	Short: "Preview a single card in the terminal",
	Long: `Show renders one card in memory and prints it as ANSI art next to its
metadata. The card is selected by its position in cards.toml (0-based)
or by city name.

Examples:
  wanderdeck show 0
  wanderdeck show Lisbon`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		d, err := deck.Load(cfg.DeckPath())
		if err != nil {
			return err
		}

		c, err := pickCard(d, args[0])
		if err != nil {
			return err
		}

		lib := assets.NewLibrary(cfg.InputFolder)
		r, err := raster.NewRenderer(lib, cfg.CardImageWidth, lib.DeckFont())
		if err != nil {
			return err
		}
		img, err := r.RenderCard(c)
		if err != nil {
			return err
		}

		cols := float64(previewCols)
		rows := int(cols*layout.CardHeight/layout.CardWidth/2 + 0.5)
		displayCard(c, preview.Render(img, previewCols, rows))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// pickCard resolves the argument as a 0-based index first, then as a
// case-insensitive city name.
func pickCard(d *deck.Deck, arg string) (*card.Card, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 0 || idx >= len(d.Cards) {
			return nil, fmt.Errorf("card index out of range: %d (deck has %d cards)", idx, len(d.Cards))
		}
		return &d.Cards[idx], nil
	}
	if c, ok := d.Find(arg); ok {
		return c, nil
	}
	return nil, fmt.Errorf("no card for city: %s", arg)
}

// displayCard prints the ANSI art with the card metadata beside it.
func displayCard(c *card.Card, art string) {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if w := len([]rune(preview.StripANSI(line))); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	infoLines := []string{
		colorize.CyanString("City:      ") + colorize.HiWhiteString(c.City),
		colorize.CyanString("Country:   ") + colorize.HiWhiteString(c.Country),
	}
	if c.Continent != "" {
		infoLines = append(infoLines,
			colorize.CyanString("Continent: ")+colorize.HiWhiteString(c.Continent))
	}
	if len(c.Transport) > 0 {
		infoLines = append(infoLines,
			colorize.CyanString("Transport: ")+colorize.HiWhiteString(strings.Join(c.Transport, ", ")))
	}
	if c.CornerNumber != "" {
		infoLines = append(infoLines,
			colorize.CyanString("Number:    ")+colorize.HiWhiteString(c.CornerNumber))
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	spacing := 4
	infoStartCol := maxArtWidth + spacing

	// Narrow terminals get the art and the info stacked instead of
	// side by side.
	if width < infoStartCol+24 {
		fmt.Println()
		fmt.Println(art)
		for _, line := range infoLines {
			fmt.Println("  " + line)
		}
		fmt.Println()
		return
	}

	fmt.Println()
	maxLines := len(artLines)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			visible := len([]rune(preview.StripANSI(artLines[i])))
			fmt.Print(strings.Repeat(" ", infoStartCol-visible))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}
		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
