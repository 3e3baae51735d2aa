// Package layout holds the fixed card geometry and the grid tiling
// arithmetic shared by the PDF and raster renderers. All lengths are in
// millimeters with the origin at the top-left corner of a card or page.
package layout

// A4 landscape page size.
const (
	PageWidth  = 297.0
	PageHeight = 210.0
)

// Card geometry, taken over unchanged from the print master.
const (
	CardWidth    = 95.7
	CardHeight   = 66.7
	CornerRadius = 10.0
	BorderWidth  = 0.7

	// Landscape photo area in the card's top-left, 3:2 ratio. The right
	// and bottom edges of this area carry divider lines.
	ImageWidth  = 82.5
	ImageHeight = 55.0

	// Bottom text band.
	FlagWidth       = 10.0
	FlagHeight      = 6.7
	TextGap         = 2.0
	CityFontSize    = 16.0
	MinCityFontSize = 8.0
	CountryFontSize = 10.0
	CityBaseline    = CardHeight - 5.5
	CountryBaseline = CardHeight - 1.5
	FlagTop         = CardHeight - 2.5 - FlagHeight

	// Continent icon, top-right corner.
	ContinentSize    = 13.0
	ContinentMarginX = 1.0
	ContinentMarginY = 2.0

	// Transport icon stack in the right sidebar.
	TransportSize    = 10.0
	TransportSpacing = 1.0

	// SidebarWidth is the strip right of the photo area.
	SidebarWidth = CardWidth - ImageWidth
)

// PtToMM converts a font size in points to millimeters.
func PtToMM(pt float64) float64 {
	return pt * 25.4 / 72
}

// Grid describes the rows×columns tiling of cards on a page.
type Grid struct {
	Rows int
	Cols int
	Gap  float64
}

// PerPage returns the number of cards on a full page.
func (g Grid) PerPage() int {
	return g.Rows * g.Cols
}

// PageCount returns the number of pages needed for n cards.
func (g Grid) PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	per := g.PerPage()
	return (n + per - 1) / per
}

// Cell returns the page, row and column of the card at index i.
func (g Grid) Cell(i int) (page, row, col int) {
	per := g.PerPage()
	page = i / per
	idx := i % per
	return page, idx / g.Cols, idx % g.Cols
}

// Origin returns the page and the top-left corner of the card at index i,
// with the whole grid centered on the page.
func (g Grid) Origin(i int, cardW, cardH float64) (page int, x, y float64) {
	page, row, col := g.Cell(i)

	totalW := float64(g.Cols)*cardW + float64(g.Cols-1)*g.Gap
	totalH := float64(g.Rows)*cardH + float64(g.Rows-1)*g.Gap
	marginX := (PageWidth - totalW) / 2
	marginY := (PageHeight - totalH) / 2

	x = marginX + float64(col)*(cardW+g.Gap)
	y = marginY + float64(row)*(cardH+g.Gap)
	return page, x, y
}

// TransportStack returns the top Y coordinate of each of n transport
// icons, stacked vertically and evenly spaced, centered in the photo-height
// band of the sidebar and nudged 5mm down to clear the continent icon.
func TransportStack(n int) []float64 {
	if n <= 0 {
		return nil
	}
	total := float64(n)*TransportSize + float64(n-1)*TransportSpacing
	top := (ImageHeight-total)/2 + 5
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = top + float64(i)*(TransportSize+TransportSpacing)
	}
	return ys
}

// TransportX is the left edge of transport icons, centered in the sidebar.
const TransportX = ImageWidth + (SidebarWidth-TransportSize)/2

// CornerNumberX is the horizontal center of the corner number.
const CornerNumberX = ImageWidth + SidebarWidth/2

// CornerBaseline returns the text baseline of the corner number for a
// given font size, vertically centered in the sidebar's bottom band.
func CornerBaseline(sizePt float64) float64 {
	return CardHeight - (CardHeight-ImageHeight)/2 + PtToMM(sizePt)/4
}

// CityLine is the resolved position and font size of the bottom text band:
// city text starts at TextX, the flag sits right of the text at FlagX.
type CityLine struct {
	Size  float64
	TextX float64
	FlagX float64
}

// FitCityLine shrinks the city font from CityFontSize down to
// MinCityFontSize until text, gap and flag fit in the band under the
// photo. measure returns the rendered text width in mm at a font size.
func FitCityLine(measure func(sizePt float64) float64) CityLine {
	w := measure(CityFontSize)

	// Long names hug the left edge; short ones sit further in.
	left := 12.0
	if FlagWidth+TextGap+w > 0.7*ImageWidth {
		left = 5.0
	}
	avail := ImageWidth - left - 2

	size := CityFontSize
	for FlagWidth+TextGap+w > avail && size > MinCityFontSize {
		size--
		w = measure(size)
	}

	return CityLine{Size: size, TextX: left, FlagX: left + w + TextGap}
}

// Mini-card sheet used for the transport deck: a tight 5×4 grid of small
// bordered cards, each holding one centered icon.
const (
	MiniRows         = 4
	MiniCols         = 5
	MiniMargin       = 5.0
	MiniCornerRadius = 3.0
	MiniBorderWidth  = 0.35
	MiniIconScale    = 0.8
)

// MiniCardSize returns the card size that fills the page margins for the
// transport sheet at the given gap.
func MiniCardSize(gap float64) (w, h float64) {
	usableW := PageWidth - 2*MiniMargin
	usableH := PageHeight - 2*MiniMargin
	w = (usableW - float64(MiniCols-1)*gap) / MiniCols
	h = (usableH - float64(MiniRows-1)*gap) / MiniRows
	return w, h
}
