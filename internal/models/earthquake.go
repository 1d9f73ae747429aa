package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DateTimeLayout is the sortable UTC timestamp format stored in earthquakes.datetime.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the day format accepted by date-range filters.
const DateLayout = "2006-01-02"

// Region is a coarse geographic/tectonic grouping. Rows are pre-seeded and never
// derived from event data.
type Region struct {
	bun.BaseModel `bun:"table:regions,alias:r"`

	RegionID   int    `bun:"region_id,pk" json:"region_id"`
	RegionName string `bun:"region_name,notnull" json:"region_name"`
	Country    string `bun:"country,notnull" json:"country"`
	Population *int64 `bun:"population" json:"population"` // nil for oceanic / "other" regions
}

// SeismicZone is a tectonic belt used for risk scoring, independent of Region.
type SeismicZone struct {
	bun.BaseModel `bun:"table:seismic_zones,alias:s"`

	ZoneID    int    `bun:"zone_id,pk" json:"zone_id"`
	ZoneName  string `bun:"zone_name,notnull" json:"zone_name"`
	RiskLevel int    `bun:"risk_level,notnull" json:"risk_level"`
}

// Earthquake is one observed seismic event. RegionID and ZoneID are assigned by the
// classifier at insert time and never recomputed.
type Earthquake struct {
	bun.BaseModel `bun:"table:earthquakes,alias:e"`

	QuakeID   int64   `bun:"quake_id,pk,autoincrement" json:"quake_id"`
	DateTime  string  `bun:"datetime,notnull" json:"datetime"`
	Magnitude float64 `bun:"magnitude,notnull" json:"magnitude"`
	DepthKM   float64 `bun:"depth_km,notnull" json:"depth_km"`
	Latitude  float64 `bun:"latitude,notnull" json:"latitude"`
	Longitude float64 `bun:"longitude,notnull" json:"longitude"`
	Place     string  `bun:"place,notnull" json:"place"`
	RegionID  int     `bun:"region_id,notnull" json:"region_id"`
	ZoneID    int     `bun:"zone_id,notnull" json:"zone_id"`

	Region *Region      `bun:"rel:belongs-to,join:region_id=region_id" json:"-"`
	Zone   *SeismicZone `bun:"rel:belongs-to,join:zone_id=zone_id" json:"-"`
}

// LoadResult summarizes one batch load run.
type LoadResult struct {
	RunID      string        `json:"run_id"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	Fetched    int           `json:"fetched"`
	Inserted   int           `json:"inserted"`
	Skipped    int           `json:"skipped"`
	Duplicates int           `json:"duplicates"`
	Duration   time.Duration `json:"duration"`
}
