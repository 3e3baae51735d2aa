package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() Card {
	return Card{
		Image:        "lisbon.jpg",
		City:         "Lisbon",
		Country:      "Portugal",
		Flag:         "portugal.png",
		Continent:    "europe",
		Transport:    []string{"train", "boat"},
		CornerNumber: "3",
	}
}

func TestValidate_OK(t *testing.T) {
	c := validCard()
	require.NoError(t, c.Validate(0))
}

// TestValidate_RequiredFields verifies that image, city and country are
// each mandatory and that the error names the record position.
func TestValidate_RequiredFields(t *testing.T) {
	for _, field := range []string{"image", "city", "country"} {
		c := validCard()
		switch field {
		case "image":
			c.Image = ""
		case "city":
			c.City = ""
		case "country":
			c.Country = ""
		}
		err := c.Validate(4)
		require.Error(t, err, field)

		var ire *InvalidRecordError
		require.ErrorAs(t, err, &ire)
		assert.Equal(t, 4, ire.Index)
		assert.Contains(t, ire.Reason, field)
	}
}

// TestValidate_TransportLimit verifies that up to three transport icons
// are accepted and a fourth fails validation: the sidebar holds at most
// three evenly spaced icons.
func TestValidate_TransportLimit(t *testing.T) {
	c := validCard()

	c.Transport = nil
	assert.NoError(t, c.Validate(0), "no transport icons is valid")

	c.Transport = []string{"bus", "train", "boat"}
	assert.NoError(t, c.Validate(0))

	c.Transport = []string{"bus", "train", "boat", "plane"}
	err := c.Validate(0)
	var ire *InvalidRecordError
	require.ErrorAs(t, err, &ire)
	assert.Contains(t, ire.Reason, "too many transport icons")
}

func TestCornerSize_Default(t *testing.T) {
	c := validCard()
	assert.Equal(t, float64(DefaultCornerFontSize), c.CornerSize())

	c.CornerFontSize = 22
	assert.Equal(t, 22.0, c.CornerSize())
}

func TestSlug(t *testing.T) {
	tests := []struct {
		city string
		want string
	}{
		{"Lisbon", "lisbon"},
		{"Rio de Janeiro", "rio-de-janeiro"},
		{"São Paulo", "s-o-paulo"},
		{"  Oslo  ", "oslo"},
		{"NEW YORK", "new-york"},
	}
	for _, tt := range tests {
		c := Card{City: tt.city}
		assert.Equal(t, tt.want, c.Slug(), tt.city)
	}
}
