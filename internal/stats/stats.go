// Package stats aggregates deck composition summaries and exports the
// card list as CSV for spreadsheet work.
package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/wanderdeck/wanderdeck/internal/assets"
	"github.com/wanderdeck/wanderdeck/internal/card"
)

// Summary holds card counts grouped by continent and by normalized
// transport combination.
type Summary struct {
	ByContinent map[string]int
	ByCombo     map[string]int
	ByBoth      map[string]map[string]int
	Total       int
}

// ComboKey normalizes a transport list into a stable key: sorted and
// comma-joined, so [bus train] and [train bus] count as one combination.
func ComboKey(transport []string) string {
	if len(transport) == 0 {
		return ""
	}
	norm := make([]string, len(transport))
	copy(norm, transport)
	sort.Strings(norm)
	return strings.Join(norm, ", ")
}

// Collect builds the summary over all cards.
func Collect(cards []card.Card) *Summary {
	s := &Summary{
		ByContinent: make(map[string]int),
		ByCombo:     make(map[string]int),
		ByBoth:      make(map[string]map[string]int),
		Total:       len(cards),
	}
	for i := range cards {
		c := &cards[i]
		if c.Continent != "" {
			s.ByContinent[c.Continent]++
		}
		combo := ComboKey(c.Transport)
		if combo == "" || c.Continent == "" {
			continue
		}
		s.ByCombo[combo]++
		if s.ByBoth[c.Continent] == nil {
			s.ByBoth[c.Continent] = make(map[string]int)
		}
		s.ByBoth[c.Continent][combo]++
	}
	return s
}

// Count is one ranked summary row.
type Count struct {
	Key string
	N   int
}

// Ranked returns the entries of m ordered by descending count, ties
// broken by key for stable output.
func Ranked(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, n := range m {
		out = append(out, Count{Key: k, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Continents returns the continents present in the summary, sorted by name.
func (s *Summary) Continents() []string {
	keys := make([]string, 0, len(s.ByBoth))
	for k := range s.ByBoth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// csvHeader matches the card record fields, in record order.
var csvHeader = []string{
	"image", "city", "country", "flag", "continent",
	"transport", "corner_number", "corner_font_size",
}

// WriteCSV exports the deck to path, one row per card in input order.
// The transport list is semicolon-joined into a single column.
func WriteCSV(cards []card.Card, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &assets.WriteError{Path: path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return &assets.WriteError{Path: path, Err: err}
	}
	for i := range cards {
		c := &cards[i]
		row := []string{
			c.Image,
			c.City,
			c.Country,
			c.Flag,
			c.Continent,
			strings.Join(c.Transport, ";"),
			c.CornerNumber,
			strconv.FormatFloat(c.CornerSize(), 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return &assets.WriteError{Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &assets.WriteError{Path: path, Err: err}
	}
	return nil
}

// Format renders the summary. Headings go through paint, so the stats
// command passes color.CyanString and plain output passes fmt.Sprintf;
// both share this one render path.
func (s *Summary) Format(paint func(format string, a ...interface{}) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", paint("Cards:"), s.Total)
	fmt.Fprintf(&b, "\n%s\n", paint("By continent:"))
	for _, c := range Ranked(s.ByContinent) {
		fmt.Fprintf(&b, "  %s: %d\n", c.Key, c.N)
	}
	fmt.Fprintf(&b, "\n%s\n", paint("By transport combination:"))
	for _, c := range Ranked(s.ByCombo) {
		fmt.Fprintf(&b, "  [%s]: %d\n", c.Key, c.N)
	}
	for _, continent := range s.Continents() {
		fmt.Fprintf(&b, "\n%s\n", paint("%s:", continent))
		for _, c := range Ranked(s.ByBoth[continent]) {
			fmt.Fprintf(&b, "  [%s]: %d\n", c.Key, c.N)
		}
	}
	return b.String()
}
