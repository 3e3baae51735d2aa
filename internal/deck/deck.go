// Package deck loads and saves the ordered card list that drives the
// renderers. The deck file is cards.toml under the input folder, one
// [[cards]] table per card; list order is render and page order.
package deck

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wanderdeck/wanderdeck/internal/card"
)

// Deck is the ordered list of card records.
type Deck struct {
	Cards []card.Card `toml:"cards"`
}

// Load reads and validates the deck file at path.
func Load(path string) (*Deck, error) {
	d, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Read parses the deck file without validating its records. The validate
// command uses this to report every problem instead of stopping at the
// first one.
func Read(path string) (*Deck, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var d Deck
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}
	return &d, nil
}

// Validate checks every record; the first invalid record fails the deck.
func (d *Deck) Validate() error {
	for i := range d.Cards {
		if err := d.Cards[i].Validate(i); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the deck back to path, preserving card order.
func (d *Deck) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("error encoding %s: %v", path, err)
	}
	return nil
}

// Find returns the first card whose city matches name case-insensitively.
func (d *Deck) Find(name string) (*card.Card, bool) {
	for i := range d.Cards {
		if strings.EqualFold(d.Cards[i].City, name) {
			return &d.Cards[i], true
		}
	}
	return nil, false
}

// transportOrder ranks the known transport combinations. Combinations are
// normalized by sorting so that [bus train] and [train bus] rank the same.
var transportOrder = map[string]int{
	"bus|bus":        0,
	"bus|train":      1,
	"boat|bus":       2,
	"boat|train":     3,
	"boat|bus|train": 4,
}

// unknownTransportRank sorts cards with unlisted combinations (or none) last.
const unknownTransportRank = 99

// TransportRank returns the sort rank of a transport list.
func TransportRank(transport []string) int {
	if len(transport) == 0 {
		return unknownTransportRank
	}
	norm := make([]string, len(transport))
	copy(norm, transport)
	sort.Strings(norm)
	if rank, ok := transportOrder[strings.Join(norm, "|")]; ok {
		return rank
	}
	return unknownTransportRank
}

// Sort orders cards by continent, then by transport combination rank.
// The sort is stable so equal cards keep their relative input order.
func (d *Deck) Sort() {
	sort.SliceStable(d.Cards, func(i, j int) bool {
		a, b := &d.Cards[i], &d.Cards[j]
		if a.Continent != b.Continent {
			return a.Continent < b.Continent
		}
		return TransportRank(a.Transport) < TransportRank(b.Transport)
	})
}
