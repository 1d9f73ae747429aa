// Package classifier maps event coordinates to the pre-seeded region and seismic
// zone ids.
//
// Classification walks an ordered table of inclusive bounding boxes and returns the
// id of the first box containing the point. Overlapping boxes are resolved by
// declaration order, so the order of RegionBoxes and ZoneBoxes is part of the
// table's identity: reordering entries changes results and requires a new
// TableVersion.
package classifier

// TableVersion identifies the current box tables. Bump it whenever a box, its
// bounds or the table order changes.
const TableVersion = "2025.1"

const (
	// OtherRegionID is returned when no region box matches.
	OtherRegionID = 10
	// OtherZoneID is returned when no zone box matches.
	OtherZoneID = 10
)

// LonRange is an inclusive longitude interval.
type LonRange struct {
	Min float64
	Max float64
}

// Box is an inclusive latitude band combined with one or more longitude ranges.
// Boxes crossing the date line carry two ranges.
type Box struct {
	ID        int
	Name      string
	LatMin    float64
	LatMax    float64
	LonRanges []LonRange
}

// Contains reports whether (lat, lon) lies inside the box, edges included.
func (b Box) Contains(lat, lon float64) bool {
	if lat < b.LatMin || lat > b.LatMax {
		return false
	}
	for _, r := range b.LonRanges {
		if lon >= r.Min && lon <= r.Max {
			return true
		}
	}
	return false
}

// NormalizeLongitude folds longitudes above 180 into [-180, 180].
func NormalizeLongitude(lon float64) float64 {
	if lon > 180 {
		return lon - 360
	}
	return lon
}

// ClassifyRegion maps a coordinate to a region id. Longitude is normalized first.
func ClassifyRegion(lat, lon float64) int {
	return firstMatch(RegionBoxes, lat, NormalizeLongitude(lon), OtherRegionID)
}

// ClassifyZone maps a coordinate to a seismic zone id. Longitude is used as given.
func ClassifyZone(lat, lon float64) int {
	return firstMatch(ZoneBoxes, lat, lon, OtherZoneID)
}

func firstMatch(boxes []Box, lat, lon float64, fallback int) int {
	for _, b := range boxes {
		if b.Contains(lat, lon) {
			return b.ID
		}
	}
	return fallback
}
