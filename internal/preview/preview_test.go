package preview

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Dimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	art := Render(img, 20, 10)

	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	require.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, 20, len([]rune(StripANSI(line))))
	}
}

// TestRender_SolidColor verifies that a uniform source produces cells with
// matching foreground and background colors.
func TestRender_SolidColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	red := color.NRGBA{R: 255, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, red)
		}
	}

	art := Render(img, 4, 4)
	assert.Contains(t, art, "38;2;255;0;0")
	assert.Contains(t, art, "48;2;255;0;0")
	assert.NotContains(t, StripANSI(art), "\x1b")
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "abc", StripANSI("abc"))
	assert.Equal(t, "X", StripANSI("\x1b[38;2;1;2;3mX\x1b[0m"))
	assert.Equal(t, "", StripANSI("\x1b[0m"))
}
