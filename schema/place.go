package schema

import "sort"

// The filter API reports known places as a tree: continents own
// countries, countries own states, states own counties. Only the
// country level drives the world dataset; the rest is forwarded to
// clients untouched.

type PlaceState struct {
	Name     string   `json:"name"`
	Counties []string `json:"county"`
}

type PlaceCountry struct {
	Name   string       `json:"name"`
	States []PlaceState `json:"state"`
}

type PlaceContinent struct {
	Name      string         `json:"name"`
	Countries []PlaceCountry `json:"country"`
}

type PlaceTree struct {
	Continents []PlaceContinent `json:"place"`
}

// CountryNames flattens the tree into the deduplicated, alphabetically
// sorted country-name set the world orchestrator iterates over.
func (t PlaceTree) CountryNames() []string {
	seen := map[string]struct{}{}
	names := make([]string, 0, 200)
	for _, continent := range t.Continents {
		for _, country := range continent.Countries {
			if country.Name == "" {
				continue
			}
			if _, ok := seen[country.Name]; ok {
				continue
			}
			seen[country.Name] = struct{}{}
			names = append(names, country.Name)
		}
	}
	sort.Strings(names)
	return names
}
