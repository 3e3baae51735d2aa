package pdfgen

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/layout"
)

// TransportCount pairs a transport icon identifier with the number of
// copies printed on the transport sheet.
type TransportCount struct {
	ID    string
	Count int
}

// DefaultTransportCounts is the standard composition of the transport
// mini-deck.
var DefaultTransportCounts = []TransportCount{
	{ID: "bus", Count: 20},
	{ID: "train", Count: 15},
	{ID: "boat", Count: 13},
	{ID: "plane", Count: 12},
}

// GenerateTransport writes the transport mini-card sheet: a tight 5×4
// grid of bordered cards, each holding one centered transport icon.
// Icons whose file is absent are skipped with a warning rather than
// failing the sheet, so a partial icon set still yields a usable deck.
// Returns the page count and the names of skipped icons.
func (g *Generator) GenerateTransport(counts []TransportCount, gap float64, outPath string) (int, []string, error) {
	if counts == nil {
		counts = DefaultTransportCounts
	}

	var paths []string
	var skipped []string
	for _, tc := range counts {
		path, err := g.Lib.TransportIcon(tc.ID)
		if err != nil {
			skipped = append(skipped, tc.ID)
			continue
		}
		for n := 0; n < tc.Count; n++ {
			paths = append(paths, path)
		}
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	grid := layout.Grid{Rows: layout.MiniRows, Cols: layout.MiniCols, Gap: gap}
	cardW, cardH := layout.MiniCardSize(gap)
	iconSide := cardW
	if cardH < cardW {
		iconSide = cardH
	}
	iconSide *= layout.MiniIconScale

	for i, path := range paths {
		page, x, y := grid.Origin(i, cardW, cardH)
		for pdf.PageCount() <= page {
			pdf.AddPage()
			// In error state AddPage is a no-op and the page count
			// stops advancing.
			if pdf.Err() {
				return 0, skipped, fmt.Errorf("error building transport PDF: %v", pdf.Error())
			}
		}

		pdf.ImageOptions(path, x+(cardW-iconSide)/2, y+(cardH-iconSide)/2,
			iconSide, iconSide, false, fpdf.ImageOptions{}, 0, "")

		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(layout.MiniBorderWidth)
		pdf.RoundedRect(x, y, cardW, cardH, layout.MiniCornerRadius, "1234", "D")
	}

	if pdf.Err() {
		return 0, skipped, fmt.Errorf("error building transport PDF: %v", pdf.Error())
	}

	pages := pdf.PageCount()
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return 0, skipped, &assets.WriteError{Path: outPath, Err: err}
	}
	return pages, skipped, nil
}
