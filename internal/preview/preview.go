// Package preview converts a rendered card image into ANSI half-block
// art for in-terminal inspection.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Render converts img to ANSI art of width×height character cells using
// the upper half block, two pixels per cell.
func Render(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			c1 := colorAt(resized, x, y)
			c2 := colorAt(resized, x+1, y)
			c3 := colorAt(resized, x, y+1)
			c4 := colorAt(resized, x+1, y+1)

			col1, _ := colorful.MakeColor(c1)
			col2, _ := colorful.MakeColor(c2)
			col3, _ := colorful.MakeColor(c3)
			col4, _ := colorful.MakeColor(c4)

			// Top pixel pair as foreground, bottom pair as background.
			fg := toRGBA(average(col1, col2))
			bg := toRGBA(average(col3, col4))
			buffer.WriteString(cell('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toRGBA(c colorful.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

func cell(char rune, fg, bg color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}

// StripANSI removes escape sequences, leaving the visible characters.
// Used to compute visible line widths for side-by-side layout.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
