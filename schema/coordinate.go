package schema

// Coordinate - a WGS84 latitude/longitude pair
type Coordinate struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
}
