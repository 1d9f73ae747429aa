package models

// EarthquakeInRegion is a single earthquake row with its region name.
type EarthquakeInRegion struct {
	QuakeID    int64   `bun:"quake_id" json:"quake_id"`
	DateTime   string  `bun:"datetime" json:"datetime"`
	Magnitude  float64 `bun:"magnitude" json:"magnitude"`
	DepthKM    float64 `bun:"depth_km" json:"depth_km"`
	Latitude   float64 `bun:"latitude" json:"latitude"`
	Longitude  float64 `bun:"longitude" json:"longitude"`
	Place      string  `bun:"place" json:"place"`
	RegionName string  `bun:"region_name" json:"region_name"`
}

// AvgMagnitude is the average magnitude of the quakes in one region.
type AvgMagnitude struct {
	RegionID     int     `bun:"region_id" json:"region_id"`
	RegionName   string  `bun:"region_name" json:"region_name"`
	AvgMagnitude float64 `bun:"avg_magnitude" json:"avg_magnitude"`
}

// NearbyCount is the number of quakes inside a lat/lon window.
type NearbyCount struct {
	QuakeCount int `bun:"quake_count" json:"quake_count"`
}

// ActiveRegion is a region ranked by quake count.
type ActiveRegion struct {
	RegionID   int    `bun:"region_id" json:"region_id"`
	RegionName string `bun:"region_name" json:"region_name"`
	Country    string `bun:"country" json:"country"`
	QuakeCount int    `bun:"quake_count" json:"quake_count"`
}

// Quake is a bare earthquake row without joined attributes.
type Quake struct {
	QuakeID   int64   `bun:"quake_id" json:"quake_id"`
	DateTime  string  `bun:"datetime" json:"datetime"`
	Magnitude float64 `bun:"magnitude" json:"magnitude"`
	DepthKM   float64 `bun:"depth_km" json:"depth_km"`
	Latitude  float64 `bun:"latitude" json:"latitude"`
	Longitude float64 `bun:"longitude" json:"longitude"`
	Place     string  `bun:"place" json:"place"`
}

// RegionQuakeCount is a region with its quake count.
type RegionQuakeCount struct {
	RegionID   int    `bun:"region_id" json:"region_id"`
	RegionName string `bun:"region_name" json:"region_name"`
	QuakeCount int    `bun:"quake_count" json:"quake_count"`
}

// AboveAverageRegion is a region whose quake count exceeds the mean of per-region counts.
type AboveAverageRegion struct {
	RegionID   int     `bun:"region_id" json:"region_id"`
	RegionName string  `bun:"region_name" json:"region_name"`
	QuakeCount int     `bun:"quake_count" json:"quake_count"`
	AvgQuakes  float64 `bun:"avg_quakes" json:"avg_quakes"`
}

// MultiCriteriaQuake is an earthquake joined with its region and zone attributes.
type MultiCriteriaQuake struct {
	QuakeID    int64   `bun:"quake_id" json:"quake_id"`
	DateTime   string  `bun:"datetime" json:"datetime"`
	Magnitude  float64 `bun:"magnitude" json:"magnitude"`
	DepthKM    float64 `bun:"depth_km" json:"depth_km"`
	Latitude   float64 `bun:"latitude" json:"latitude"`
	Longitude  float64 `bun:"longitude" json:"longitude"`
	Place      string  `bun:"place" json:"place"`
	RegionName string  `bun:"region_name" json:"region_name"`
	Population int64   `bun:"population" json:"population"`
	ZoneName   string  `bun:"zone_name" json:"zone_name"`
	RiskLevel  int     `bun:"risk_level" json:"risk_level"`
}

// PopulationRegionCount is a populated region with its quake count.
type PopulationRegionCount struct {
	RegionID   int    `bun:"region_id" json:"region_id"`
	RegionName string `bun:"region_name" json:"region_name"`
	Population int64  `bun:"population" json:"population"`
	QuakeCount int    `bun:"quake_count" json:"quake_count"`
}

// RegionRiskSummary aggregates the quakes of one region within one seismic zone.
type RegionRiskSummary struct {
	RegionID     int      `bun:"region_id" json:"region_id"`
	RegionName   string   `bun:"region_name" json:"region_name"`
	Country      string   `bun:"country" json:"country"`
	Population   *int64   `bun:"population" json:"population"`
	ZoneID       int      `bun:"zone_id" json:"zone_id"`
	ZoneName     string   `bun:"zone_name" json:"zone_name"`
	RiskLevel    int      `bun:"risk_level" json:"risk_level"`
	QuakeCount   int      `bun:"quake_count" json:"quake_count"`
	AvgMagnitude *float64 `bun:"avg_magnitude" json:"avg_magnitude"`
	MaxMagnitude *float64 `bun:"max_magnitude" json:"max_magnitude"`
}

// NearbyParams defines the rectangular window for CountQuakesNearLocation.
// The window is lat±LatDelta by lon±LonDelta, not a geodesic radius.
type NearbyParams struct {
	Lat      float64
	Lon      float64
	LatDelta float64
	LonDelta float64
}

// HighMagnitudeParams filters GetHighMagnitudeQuakes. Dates are YYYY-MM-DD, inclusive.
type HighMagnitudeParams struct {
	MinMagnitude float64
	StartDate    string
	EndDate      string
	Limit        int
}

// MultiCriteriaParams filters GetMultiCriteriaQuakes.
type MultiCriteriaParams struct {
	MinMagnitude  float64
	MinRiskLevel  int
	MinPopulation int64
}
