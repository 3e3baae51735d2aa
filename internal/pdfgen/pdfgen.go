// Package pdfgen renders the paginated card sheets. Cards are tiled into
// a centered rows×columns grid on A4 landscape pages, one new page
// whenever the grid fills, in strict input order.
package pdfgen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/card"
	"github.com/wanderdeck/wanderdeck/internal/layout"
	"github.com/wanderdeck/wanderdeck/internal/raster"
)

// landscapeDPI is the resolution at which landscape photos are resampled
// before embedding; well above print density at card size.
const landscapeDPI = 300.0

// Generator builds card PDFs from a resolved asset library.
type Generator struct {
	Lib  *assets.Library
	Grid layout.Grid

	// FontPath optionally points at a TTF deck font; without it the
	// built-in Helvetica-Bold is used.
	FontPath string

	pdf        *fpdf.Fpdf
	family     string
	style      string
	tr         func(string) string
	registered map[string]bool
}

// Generate writes the deck PDF to outPath and returns the page count.
func (g *Generator) Generate(cards []card.Card, outPath string) (int, error) {
	g.pdf = fpdf.New("L", "mm", "A4", "")
	g.pdf.SetAutoPageBreak(false, 0)
	g.registered = make(map[string]bool)
	g.setupFont()

	for i := range cards {
		page, x, y := g.Grid.Origin(i, layout.CardWidth, layout.CardHeight)
		for g.pdf.PageCount() <= page {
			g.pdf.AddPage()
			// In error state AddPage is a no-op and the page count
			// stops advancing.
			if g.pdf.Err() {
				return 0, fmt.Errorf("error building PDF: %v", g.pdf.Error())
			}
		}
		if err := g.drawCard(x, y, &cards[i]); err != nil {
			return 0, err
		}
	}

	if g.pdf.Err() {
		return 0, fmt.Errorf("error building PDF: %v", g.pdf.Error())
	}

	pages := g.pdf.PageCount()
	if err := g.pdf.OutputFileAndClose(outPath); err != nil {
		return 0, &assets.WriteError{Path: outPath, Err: err}
	}
	return pages, nil
}

// setupFont registers the deck font, falling back to Helvetica-Bold when
// no font file is configured or readable.
func (g *Generator) setupFont() {
	g.family, g.style = "Helvetica", "B"
	g.tr = g.pdf.UnicodeTranslatorFromDescriptor("")

	if g.FontPath == "" {
		return
	}
	if _, err := os.Stat(g.FontPath); err != nil {
		return
	}
	g.pdf.AddUTF8Font("deckfont", "", g.FontPath)
	if g.pdf.Err() {
		// Unusable font file; clear the error and keep the fallback.
		g.pdf.ClearError()
		return
	}
	g.family, g.style = "deckfont", ""
	g.tr = func(s string) string { return s }
}

func (g *Generator) setFont(sizePt float64) {
	g.pdf.SetFont(g.family, g.style, sizePt)
}

// drawCard draws one card with its top-left corner at (x, y) mm.
func (g *Generator) drawCard(x, y float64, c *card.Card) error {
	// 1. Landscape photo with rounded top-left corner.
	path, err := g.Lib.Landscape(c.Image)
	if err != nil {
		return err
	}
	if err := g.placeLandscape(path, x, y); err != nil {
		return err
	}

	// 2. City and country labels.
	line := layout.FitCityLine(func(sizePt float64) float64 {
		g.setFont(sizePt)
		return g.pdf.GetStringWidth(g.tr(c.City))
	})
	g.pdf.SetTextColor(0, 0, 0)
	g.setFont(line.Size)
	g.pdf.Text(x+line.TextX, y+layout.CityBaseline, g.tr(c.City))
	g.setFont(layout.CountryFontSize)
	g.pdf.Text(x+line.TextX, y+layout.CountryBaseline, g.tr(c.Country))

	// 3. Flag right of the text block.
	if c.Flag != "" {
		path, err := g.Lib.Flag(c.Flag)
		if err != nil {
			return err
		}
		g.pdf.ImageOptions(path, x+line.FlagX, y+layout.FlagTop,
			layout.FlagWidth, layout.FlagHeight, false, fpdf.ImageOptions{}, 0, "")
	}

	// 4. Continent icon in the top-right corner.
	if c.Continent != "" {
		path, err := g.Lib.ContinentOutline(c.Continent)
		if err != nil {
			return err
		}
		cx := x + layout.CardWidth - layout.ContinentSize - layout.ContinentMarginX
		g.pdf.ImageOptions(path, cx, y+layout.ContinentMarginY,
			layout.ContinentSize, layout.ContinentSize, false, fpdf.ImageOptions{}, 0, "")
	}

	// 5. Transport icons, rotated 90° in the right sidebar.
	ys := layout.TransportStack(len(c.Transport))
	for i, id := range c.Transport {
		path, err := g.Lib.TransportIcon(id)
		if err != nil {
			return err
		}
		cx := x + layout.TransportX + layout.TransportSize/2
		cy := y + ys[i] + layout.TransportSize/2
		g.pdf.TransformBegin()
		g.pdf.TransformRotate(90, cx, cy)
		g.pdf.ImageOptions(path, cx-layout.TransportSize/2, cy-layout.TransportSize/2,
			layout.TransportSize, layout.TransportSize, false, fpdf.ImageOptions{}, 0, "")
		g.pdf.TransformEnd()
	}

	// 6. Corner number, centered in the sidebar's bottom band.
	if c.CornerNumber != "" {
		size := c.CornerSize()
		g.setFont(size)
		num := g.tr(c.CornerNumber)
		w := g.pdf.GetStringWidth(num)
		g.pdf.Text(x+layout.CornerNumberX-w/2, y+layout.CornerBaseline(size), num)
	}

	// Borders last so they sit on top of the artwork.
	g.pdf.SetDrawColor(0, 0, 0)
	g.pdf.SetLineWidth(layout.BorderWidth)
	g.pdf.RoundedRect(x, y, layout.CardWidth, layout.CardHeight, layout.CornerRadius, "1234", "D")
	g.pdf.Line(x+layout.ImageWidth, y, x+layout.ImageWidth, y+layout.CardHeight)
	g.pdf.Line(x, y+layout.ImageHeight, x+layout.CardWidth, y+layout.ImageHeight)

	return nil
}

// placeLandscape embeds the rounded photo once per source file and draws
// it into the card's photo area.
func (g *Generator) placeLandscape(path string, x, y float64) error {
	if !g.registered[path] {
		img, err := raster.LoadRounded(path, landscapeDPI/25.4)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return fmt.Errorf("error encoding landscape %s: %v", path, err)
		}
		g.pdf.RegisterImageOptionsReader(path, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
		g.registered[path] = true
	}
	g.pdf.ImageOptions(path, x, y, layout.ImageWidth, layout.ImageHeight,
		false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
