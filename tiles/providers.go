package tiles

// Provider - one raster tile source, templated leaflet style
type Provider struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// DefaultFilter darkens the fallback provider so it blends with the
// dashboard instead of relying on the provider's own styling.
const DefaultFilter = "brightness(0.6) invert(1) contrast(3) hue-rotate(200deg) saturate(0.3) brightness(0.8)"

// DefaultCandidates - ranked tile providers, most preferred first
func DefaultCandidates() []Provider {
	return []Provider{
		{
			Name:        "carto-dark",
			URL:         "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
			Attribution: "© OpenStreetMap contributors © CARTO",
		},
		{
			Name:        "stadia-dark",
			URL:         "https://tiles.stadiamaps.com/tiles/alidade_smooth_dark/{z}/{x}/{y}{r}.png",
			Attribution: "© Stadia Maps © OpenMapTiles © OpenStreetMap contributors",
		},
		{
			Name:        "wikimedia",
			URL:         "https://maps.wikimedia.org/osm-intl/{z}/{x}/{y}.png",
			Attribution: "© OpenStreetMap contributors, Wikimedia maps",
		},
		{
			Name:        "esri-gray",
			URL:         "https://server.arcgisonline.com/ArcGIS/rest/services/Canvas/World_Dark_Gray_Base/MapServer/tile/{z}/{y}/{x}",
			Attribution: "Esri, HERE, Garmin, © OpenStreetMap contributors",
		},
	}
}

// FallbackProvider - the provider the cascade parks on when every
// candidate failed; plain OSM is as reliable as it gets, the filter
// compensates for its light styling
func FallbackProvider() Provider {
	return Provider{
		Name:        "osm",
		URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors",
	}
}
