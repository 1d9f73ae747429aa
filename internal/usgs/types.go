package usgs

// GeoJSON payload returned by the FDSN event service. Every field the loader
// depends on is a pointer so an absent or null value can be told apart from zero.

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	ID         string     `json:"id"`
	Geometry   *Geometry  `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry coordinates are [lon, lat, depth_km].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates []*float64 `json:"coordinates"`
}

type Properties struct {
	Mag   *float64 `json:"mag"`
	Time  *int64   `json:"time"` // epoch milliseconds
	Place *string  `json:"place"`
}
