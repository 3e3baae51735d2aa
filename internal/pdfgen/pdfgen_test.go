package pdfgen

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/card"
	"github.com/wanderdeck/wanderdeck/internal/layout"
)

// newLib builds an input folder with solid-color fixture images. Only the
// bus and train icons exist, so transport-sheet tests can exercise the
// missing-icon path.
func newLib(t *testing.T) *assets.Library {
	t.Helper()
	root := t.TempDir()

	fixtures := map[string]color.NRGBA{
		"landscapes/lisbon.png":         {B: 255, A: 255},
		"flags/portugal.png":            {G: 128, A: 255},
		"transport_icons/bus.png":       {R: 200, A: 255},
		"transport_icons/train.png":     {R: 100, A: 255},
		"continents/europe_outline.png": {G: 200, A: 255},
	}
	for name, c := range fixtures {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, imaging.Save(imaging.New(60, 40, c), path))
	}
	return assets.NewLibrary(root)
}

// makeCards returns n cards sharing the fixture assets. The first card
// carries every optional field so one card exercises the full layout.
func makeCards(n int) []card.Card {
	cards := make([]card.Card, n)
	for i := range cards {
		cards[i] = card.Card{
			Image:   "lisbon.png",
			City:    fmt.Sprintf("City %d", i+1),
			Country: "Portugal",
		}
	}
	if n > 0 {
		cards[0].Flag = "portugal.png"
		cards[0].Continent = "europe"
		cards[0].Transport = []string{"bus", "train"}
		cards[0].CornerNumber = "1"
	}
	return cards
}

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	return &Generator{
		Lib:  newLib(t),
		Grid: layout.Grid{Rows: 3, Cols: 3, Gap: 1},
	}
}

// TestGenerate_Pagination verifies the page math end to end: nine cards
// fill exactly one page, a tenth opens a second.
func TestGenerate_Pagination(t *testing.T) {
	dir := t.TempDir()

	g := newGenerator(t)
	out := filepath.Join(dir, "nine.pdf")
	pages, err := g.Generate(makeCards(9), out)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	out = filepath.Join(dir, "ten.pdf")
	pages, err = g.Generate(makeCards(10), out)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestGenerate_SingleCard(t *testing.T) {
	g := newGenerator(t)
	out := filepath.Join(t.TempDir(), "one.pdf")

	pages, err := g.Generate(makeCards(1), out)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

// TestGenerate_MissingAsset verifies that a record referencing an absent
// file aborts the run with the typed error.
func TestGenerate_MissingAsset(t *testing.T) {
	g := newGenerator(t)
	out := filepath.Join(t.TempDir(), "cards.pdf")

	cards := makeCards(2)
	cards[1].Image = "void.png"

	_, err := g.Generate(cards, out)
	var mae *assets.MissingAssetError
	require.ErrorAs(t, err, &mae)
	assert.Equal(t, assets.Landscapes, mae.Category)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

// TestGenerate_UnparseableFont verifies the font fallback: a readable
// but invalid deck font file must not poison the document, the render
// falls back to the built-in face and completes normally.
func TestGenerate_UnparseableFont(t *testing.T) {
	g := newGenerator(t)

	fontPath := filepath.Join(t.TempDir(), "deck.ttf")
	require.NoError(t, os.WriteFile(fontPath, []byte("not a font"), 0644))
	g.FontPath = fontPath

	out := filepath.Join(t.TempDir(), "cards.pdf")
	pages, err := g.Generate(makeCards(10), out)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestGenerate_CorruptFlag verifies that an undecodable image file fails
// the run with an error once the document needs its next page, instead
// of wedging the page advance.
func TestGenerate_CorruptFlag(t *testing.T) {
	g := newGenerator(t)

	bad := filepath.Join(g.Lib.Root, "flags", "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0644))

	cards := makeCards(10)
	cards[0].Flag = "bad.png"

	_, err := g.Generate(cards, filepath.Join(t.TempDir(), "cards.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error building PDF")
}

// TestGenerateTransport verifies the mini-deck sheet: default counts for
// the icons that exist, absent icons skipped rather than fatal, and the
// 5×4 grid paginating the copies.
func TestGenerateTransport(t *testing.T) {
	g := newGenerator(t)
	out := filepath.Join(t.TempDir(), "transport_cards.pdf")

	pages, skipped, err := g.GenerateTransport(nil, 1, out)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"boat", "plane"}, skipped)

	// 20 bus + 15 train copies over 20 cells per page.
	assert.Equal(t, 2, pages)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestGenerateTransport_CorruptIcon verifies that an undecodable icon
// file fails the sheet with an error instead of wedging the page advance
// once the copies spill onto a second page.
func TestGenerateTransport_CorruptIcon(t *testing.T) {
	root := t.TempDir()
	bad := filepath.Join(root, "transport_icons", "bus.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(bad), 0755))
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0644))

	g := &Generator{Lib: assets.NewLibrary(root)}
	counts := []TransportCount{{ID: "bus", Count: 25}}

	_, _, err := g.GenerateTransport(counts, 1, filepath.Join(root, "out.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error building transport PDF")
}

func TestGenerateTransport_CustomCounts(t *testing.T) {
	g := newGenerator(t)
	out := filepath.Join(t.TempDir(), "transport_cards.pdf")

	counts := []TransportCount{{ID: "bus", Count: 20}}
	pages, skipped, err := g.GenerateTransport(counts, 1, out)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, 1, pages)
}
