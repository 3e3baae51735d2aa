package card

import (
	"fmt"
	"strings"
)

// MaxTransportIcons is the number of transport icons that fit in the
// card's right sidebar.
const MaxTransportIcons = 3

// DefaultCornerFontSize is used when a record does not set its own size.
const DefaultCornerFontSize = 16

// Card represents a single travel card record
type Card struct {
	Image          string   `toml:"image"`            // Landscape photo filename (landscapes/)
	City           string   `toml:"city"`             // City name, main label
	Country        string   `toml:"country"`          // Country name, secondary label
	Flag           string   `toml:"flag"`             // Flag image filename (flags/)
	Continent      string   `toml:"continent"`        // Continent identifier (europe, asia, ...)
	Transport      []string `toml:"transport"`        // Transport icon identifiers, at most 3
	CornerNumber   string   `toml:"corner_number"`    // Number printed in the bottom-right corner
	CornerFontSize float64  `toml:"corner_font_size"` // Font size for the corner number, in points
}

// InvalidRecordError reports a card record that cannot be rendered.
type InvalidRecordError struct {
	Index  int
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("card %d: %s", e.Index, e.Reason)
}

// Validate checks the record at position index in the deck.
func (c *Card) Validate(index int) error {
	if c.Image == "" {
		return &InvalidRecordError{Index: index, Reason: "image is required"}
	}
	if c.City == "" {
		return &InvalidRecordError{Index: index, Reason: "city is required"}
	}
	if c.Country == "" {
		return &InvalidRecordError{Index: index, Reason: "country is required"}
	}
	if len(c.Transport) > MaxTransportIcons {
		return &InvalidRecordError{
			Index:  index,
			Reason: fmt.Sprintf("too many transport icons: %d (max %d)", len(c.Transport), MaxTransportIcons),
		}
	}
	return nil
}

// CornerSize returns the corner number font size, falling back to the
// default when the record leaves it unset.
func (c *Card) CornerSize() float64 {
	if c.CornerFontSize > 0 {
		return c.CornerFontSize
	}
	return DefaultCornerFontSize
}

// Slug derives a filesystem-safe identifier from the city name, used to
// name standalone card rasters.
func (c *Card) Slug() string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(c.City) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
