// Package raster composites standalone card images: the same fixed layout
// the PDF renderer draws, produced as one PNG per card at a configurable
// resolution.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/card"
	"github.com/wanderdeck/wanderdeck/internal/layout"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// Renderer composites card rasters from a resolved asset library.
type Renderer struct {
	Lib  *assets.Library
	Text *Text

	// scale is the pixel density in px/mm, derived from the configured
	// canvas width.
	scale float64
}

// NewRenderer returns a renderer producing canvases widthPx wide; the
// height follows the card aspect ratio. fontPath optionally points at a
// TTF/OTF deck font.
func NewRenderer(lib *assets.Library, widthPx int, fontPath string) (*Renderer, error) {
	scale := float64(widthPx) / layout.CardWidth
	text, err := NewText(fontPath, scale)
	if err != nil {
		return nil, err
	}
	return &Renderer{Lib: lib, Text: text, scale: scale}, nil
}

func (r *Renderer) px(mm float64) int {
	return int(mm*r.scale + 0.5)
}

// RenderCard composites a single card onto a white canvas. The layout is
// deterministic: same record and assets, same pixel positions.
func (r *Renderer) RenderCard(c *card.Card) (*image.NRGBA, error) {
	canvas := imaging.New(r.px(layout.CardWidth), r.px(layout.CardHeight), white)

	// 1. Landscape photo, top-left corner rounded.
	path, err := r.Lib.Landscape(c.Image)
	if err != nil {
		return nil, err
	}
	rounded, err := LoadRounded(path, r.scale)
	if err != nil {
		return nil, err
	}
	canvas = imaging.Overlay(canvas, rounded, image.Pt(0, 0), 1.0)

	// 2. City and country labels, left-aligned in the bottom band.
	line := layout.FitCityLine(func(sizePt float64) float64 {
		return float64(r.Text.MeasurePx(c.City, sizePt)) / r.scale
	})
	r.Text.Draw(canvas, c.City, line.Size, r.px(line.TextX), r.px(layout.CityBaseline), black)
	r.Text.Draw(canvas, c.Country, layout.CountryFontSize, r.px(line.TextX), r.px(layout.CountryBaseline), black)

	// 3. Flag right of the text block.
	if c.Flag != "" {
		path, err := r.Lib.Flag(c.Flag)
		if err != nil {
			return nil, err
		}
		flag, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error loading flag %s: %v", c.Flag, err)
		}
		flag = imaging.Fit(flag, r.px(layout.FlagWidth), r.px(layout.FlagHeight), imaging.Lanczos)
		canvas = imaging.Overlay(canvas, flag, image.Pt(r.px(line.FlagX), r.px(layout.FlagTop)), 1.0)
	}

	// 4. Continent icon, top-right corner.
	if c.Continent != "" {
		path, err := r.Lib.ContinentOutline(c.Continent)
		if err != nil {
			return nil, err
		}
		icon, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error loading continent %s: %v", c.Continent, err)
		}
		icon = imaging.Fit(icon, r.px(layout.ContinentSize), r.px(layout.ContinentSize), imaging.Lanczos)
		x := r.px(layout.CardWidth - layout.ContinentSize - layout.ContinentMarginX)
		canvas = imaging.Overlay(canvas, icon, image.Pt(x, r.px(layout.ContinentMarginY)), 1.0)
	}

	// 5. Transport icon stack in the right sidebar, rotated like on the
	// printed sheet.
	ys := layout.TransportStack(len(c.Transport))
	for i, id := range c.Transport {
		path, err := r.Lib.TransportIcon(id)
		if err != nil {
			return nil, err
		}
		icon, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error loading transport icon %s: %v", id, err)
		}
		icon = imaging.Fit(icon, r.px(layout.TransportSize), r.px(layout.TransportSize), imaging.Lanczos)
		icon = imaging.Rotate90(icon)
		canvas = imaging.Overlay(canvas, icon, image.Pt(r.px(layout.TransportX), r.px(ys[i])), 1.0)
	}

	// 6. Corner number, centered in the sidebar's bottom band.
	if c.CornerNumber != "" {
		r.Text.DrawCentered(canvas, c.CornerNumber, c.CornerSize(),
			r.px(layout.CornerNumberX), r.px(layout.CornerBaseline(c.CornerSize())), black)
	}

	drawDividers(canvas, r)

	return canvas, nil
}

// drawDividers paints the two divider lines: right of the photo down to
// the card bottom, and along the photo bottom across the full width.
func drawDividers(canvas *image.NRGBA, r *Renderer) {
	lw := r.px(layout.BorderWidth)
	if lw < 1 {
		lw = 1
	}
	vx := r.px(layout.ImageWidth)
	for y := 0; y < canvas.Rect.Dy(); y++ {
		for x := vx - lw/2; x < vx+(lw+1)/2; x++ {
			canvas.SetNRGBA(x, y, black)
		}
	}
	hy := r.px(layout.ImageHeight)
	for x := 0; x < canvas.Rect.Dx(); x++ {
		for y := hy - lw/2; y < hy+(lw+1)/2; y++ {
			canvas.SetNRGBA(x, y, black)
		}
	}
}

// LoadRounded opens a landscape photo, resizes it to the photo area at
// the given density (px/mm) and rounds its top-left corner via the alpha
// channel. Lanczos resampling keeps print quality on downscale.
func LoadRounded(path string, pxPerMM float64) (*image.NRGBA, error) {
	photo, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error loading landscape %s: %v", path, err)
	}
	w := int(layout.ImageWidth*pxPerMM + 0.5)
	h := int(layout.ImageHeight*pxPerMM + 0.5)
	resized := imaging.Resize(photo, w, h, imaging.Lanczos)
	return roundTopLeft(resized, int(layout.CornerRadius*pxPerMM+0.5)), nil
}

// roundTopLeft clears the pixels of the top-left corner that fall outside
// a quarter circle of the given radius, leaving the rest of the image
// untouched.
func roundTopLeft(img *image.NRGBA, radius int) *image.NRGBA {
	r2 := radius * radius
	for y := 0; y < radius; y++ {
		for x := 0; x < radius; x++ {
			dx := radius - x
			dy := radius - y
			if dx*dx+dy*dy > r2 {
				px := img.NRGBAAt(x, y)
				px.A = 0
				img.SetNRGBA(x, y, px)
			}
		}
	}
	return img
}

// SaveCards renders every card in order and writes one PNG per card into
// dir, named by city slug. Duplicate cities get -2, -3... suffixes so no
// card overwrites another.
func (r *Renderer) SaveCards(cards []card.Card, dir string) error {
	if err := assets.EnsureDir(dir); err != nil {
		return err
	}

	seen := make(map[string]int)
	for i := range cards {
		img, err := r.RenderCard(&cards[i])
		if err != nil {
			return err
		}

		slug := cards[i].Slug()
		if slug == "" {
			slug = fmt.Sprintf("card-%d", i+1)
		}
		seen[slug]++
		if n := seen[slug]; n > 1 {
			slug = fmt.Sprintf("%s-%d", slug, n)
		}

		path := filepath.Join(dir, slug+".png")
		if err := save(img, path); err != nil {
			return err
		}
	}
	return nil
}

func save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &assets.WriteError{Path: path, Err: err}
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return &assets.WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &assets.WriteError{Path: path, Err: err}
	}
	return nil
}
