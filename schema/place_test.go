package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryNames(t *testing.T) {
	tree := PlaceTree{
		Continents: []PlaceContinent{
			{
				Name: "North America",
				Countries: []PlaceCountry{
					{Name: "United States"},
					{Name: "Canada"},
				},
			},
			{
				Name: "Unknown",
				Countries: []PlaceCountry{
					{Name: "Canada"},
					{Name: ""},
					{Name: "Brazil"},
				},
			},
		},
	}

	names := tree.CountryNames()
	assert.Equal(t, []string{"Brazil", "Canada", "United States"}, names)
}

func TestCountryNamesEmptyTree(t *testing.T) {
	names := PlaceTree{}.CountryNames()
	assert.Equal(t, 0, len(names))
}
