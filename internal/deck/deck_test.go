package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderdeck/wanderdeck/internal/card"
)

func sampleDeck() *Deck {
	return &Deck{Cards: []card.Card{
		{
			Image:        "lisbon.png",
			City:         "Lisbon",
			Country:      "Portugal",
			Flag:         "portugal.png",
			Continent:    "europe",
			Transport:    []string{"train", "boat"},
			CornerNumber: "1",
		},
		{
			Image:     "hanoi.png",
			City:      "Hanoi",
			Country:   "Vietnam",
			Continent: "asia",
			Transport: []string{"bus", "bus"},
		},
	}}
}

// TestSaveLoad_RoundTrip verifies that a saved deck reads back with the
// same cards in the same order.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.toml")

	d := sampleDeck()
	require.NoError(t, d.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d.Cards, got.Cards)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "cards.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deck file not found")
}

// TestLoad_InvalidRecord verifies that loading validates records while
// Read does not, which the validate command relies on.
func TestLoad_InvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.toml")
	content := `
[[cards]]
image = "lisbon.png"
city = "Lisbon"
country = "Portugal"

[[cards]]
image = "hanoi.png"
city = ""
country = "Vietnam"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	var ire *card.InvalidRecordError
	require.ErrorAs(t, err, &ire)
	assert.Equal(t, 1, ire.Index)

	d, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, d.Cards, 2)
}

func TestFind(t *testing.T) {
	d := sampleDeck()

	c, ok := d.Find("hanoi")
	require.True(t, ok)
	assert.Equal(t, "Hanoi", c.City)

	_, ok = d.Find("Atlantis")
	assert.False(t, ok)
}

// TestTransportRank verifies the combination ranking, including that the
// rank ignores the order icons are listed in.
func TestTransportRank(t *testing.T) {
	tests := []struct {
		transport []string
		want      int
	}{
		{[]string{"bus", "bus"}, 0},
		{[]string{"bus", "train"}, 1},
		{[]string{"train", "bus"}, 1},
		{[]string{"boat", "bus"}, 2},
		{[]string{"boat", "train"}, 3},
		{[]string{"train", "boat", "bus"}, 4},
		{[]string{"plane"}, 99},
		{nil, 99},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TransportRank(tt.transport), "%v", tt.transport)
	}
}

// TestSort verifies continent-major, rank-minor ordering and that cards
// with equal keys keep their input order.
func TestSort(t *testing.T) {
	d := &Deck{Cards: []card.Card{
		{City: "Hanoi", Continent: "asia", Transport: []string{"boat", "train"}},
		{City: "Lisbon", Continent: "europe", Transport: []string{"bus", "bus"}},
		{City: "Porto", Continent: "europe", Transport: []string{"bus", "bus"}},
		{City: "Bangkok", Continent: "asia", Transport: []string{"bus", "bus"}},
		{City: "Oslo", Continent: "europe", Transport: []string{"boat", "bus"}},
	}}

	d.Sort()

	var cities []string
	for _, c := range d.Cards {
		cities = append(cities, c.City)
	}
	assert.Equal(t, []string{"Bangkok", "Hanoi", "Lisbon", "Porto", "Oslo"}, cities)
}
