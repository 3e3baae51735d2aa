package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Text renders card labels onto rasters. One deck font is used for every
// label, matching the print master; faces are cached per size.
type Text struct {
	fnt *opentype.Font
	// dpi maps point sizes to pixel sizes: px = pt * dpi / 72.
	dpi   float64
	faces map[float64]font.Face
}

// NewText loads the deck font. When fontPath is empty or unreadable the
// embedded Go Bold face is used, the same fallback chain the PDF renderer
// applies with its built-in Helvetica-Bold.
func NewText(fontPath string, pxPerMM float64) (*Text, error) {
	data := gobold.TTF
	if fontPath != "" {
		if b, err := os.ReadFile(fontPath); err == nil {
			data = b
		}
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing deck font: %v", err)
	}
	return &Text{
		fnt:   fnt,
		dpi:   pxPerMM * 25.4,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns a cached face for a point size, falling back to the fixed
// 7x13 face if face construction fails.
func (t *Text) Face(sizePt float64) font.Face {
	if f, ok := t.faces[sizePt]; ok {
		return f
	}
	f, err := opentype.NewFace(t.fnt, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     t.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		f = basicfont.Face7x13
	}
	t.faces[sizePt] = f
	return f
}

// MeasurePx returns the width of s in pixels at a point size.
func (t *Text) MeasurePx(s string, sizePt float64) int {
	return font.MeasureString(t.Face(sizePt), s).Ceil()
}

// Draw renders s with its baseline at (x, y) pixels.
func (t *Text) Draw(dst draw.Image, s string, sizePt float64, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: t.Face(sizePt),
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawCentered renders s horizontally centered on cx with its baseline
// at y pixels.
func (t *Text) DrawCentered(dst draw.Image, s string, sizePt float64, cx, y int, c color.Color) {
	w := t.MeasurePx(s, sizePt)
	t.Draw(dst, s, sizePt, cx-w/2, y, c)
}
