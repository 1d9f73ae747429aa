package models

// BoundaryFeature is one classification box rendered as a GeoJSON feature
type BoundaryFeature struct {
	ID         int            `json:"id"`
	Type       string         `json:"type"`
	Geometry   map[string]any `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// BoundaryCollection is the API response for a box table
type BoundaryCollection struct {
	Type     string            `json:"type"` // "FeatureCollection"
	Version  string            `json:"version"`
	Features []BoundaryFeature `json:"features"`
	Count    int               `json:"count"`
}
