package geo

import (
	"context"
	"time"

	"googlemaps.github.io/maps"

	"github.com/Ciztek/pwe/schema"
)

// GeocodingResolver asks the Google geocoding API for places nothing
// else could resolve. It sits last in the chain and only when an API
// key is configured, so table lookups never pay for a network call.
type GeocodingResolver struct {
	client *maps.Client
}

func NewGeocodingResolver(client *maps.Client) *GeocodingResolver {
	return &GeocodingResolver{
		client: client,
	}
}

func (g *GeocodingResolver) Resolve(place string) (schema.Coordinate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  place,
		Language: "en",
	})
	if nil != err {
		return schema.Coordinate{}, err
	}

	if len(geos) == 0 {
		return schema.Coordinate{}, ErrNoCoordinateFound
	}

	location := geos[0].Geometry.Location

	return schema.Coordinate{
		Lat: location.Lat,
		Lon: location.Lng,
	}, nil
}

// WithGeocoding - the default chain with a geocoding tail
func WithGeocoding(primary map[string]schema.Coordinate, client *maps.Client) Resolver {
	return NewChainResolver(
		Default(primary),
		NewGeocodingResolver(client),
	)
}
