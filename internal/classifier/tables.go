package classifier

import "quake-bknd/internal/models"

// RegionBoxes is evaluated top to bottom; the first containing box wins.
var RegionBoxes = []Box{
	{ID: 1, Name: "California", LatMin: 30, LatMax: 42, LonRanges: []LonRange{{-130, -110}}},
	{ID: 2, Name: "Alaska incl. Aleutians", LatMin: 50, LatMax: 72, LonRanges: []LonRange{{-180, -130}}},
	{ID: 3, Name: "Japan, Kuril, Kamchatka, Russian Pacific margin", LatMin: 30, LatMax: 65, LonRanges: []LonRange{{135, 170}}},
	{ID: 4, Name: "Chile", LatMin: -60, LatMax: -15, LonRanges: []LonRange{{-80, -65}}},
	{ID: 5, Name: "Indonesia, Philippines, PNG", LatMin: -15, LatMax: 15, LonRanges: []LonRange{{95, 155}}},
	{ID: 6, Name: "New Zealand and SW Pacific", LatMin: -60, LatMax: -10, LonRanges: []LonRange{{155, 180}, {-180, -160}}},
	{ID: 7, Name: "Mediterranean", LatMin: 30, LatMax: 46, LonRanges: []LonRange{{-10, 40}}},
	{ID: 8, Name: "Himalaya and central Asia", LatMin: 20, LatMax: 45, LonRanges: []LonRange{{60, 115}}},
	{ID: 9, Name: "North Mid-Atlantic Ridge", LatMin: -40, LatMax: 70, LonRanges: []LonRange{{-50, -10}}},
}

// ZoneBoxes is evaluated top to bottom; the first containing box wins.
var ZoneBoxes = []Box{
	{ID: 1, Name: "US Pacific subduction margin", LatMin: 30, LatMax: 72.5, LonRanges: []LonRange{{-150, -110}}},
	{ID: 2, Name: "Japan trench", LatMin: 30, LatMax: 50, LonRanges: []LonRange{{130, 160}}},
	{ID: 3, Name: "Andean subduction", LatMin: -60, LatMax: 5, LonRanges: []LonRange{{-90, -60}}},
	{ID: 4, Name: "Sunda arc", LatMin: -15, LatMax: 10, LonRanges: []LonRange{{90, 150}}},
	{ID: 5, Name: "New Zealand plate boundary", LatMin: -50, LatMax: -30, LonRanges: []LonRange{{160, 180}}},
	{ID: 6, Name: "Mediterranean collision", LatMin: 25, LatMax: 50, LonRanges: []LonRange{{-10, 40}}},
	{ID: 7, Name: "Himalayan collision belt", LatMin: 20, LatMax: 40, LonRanges: []LonRange{{70, 100}}},
	{ID: 8, Name: "Mid-Atlantic Ridge", LatMin: -60, LatMax: 60, LonRanges: []LonRange{{-40, -10}}},
	{ID: 9, Name: "Kuril-Kamchatka subduction", LatMin: 45, LatMax: 60, LonRanges: []LonRange{{145, 175}}},
}

func population(n int64) *int64 { return &n }

// Regions returns the reference Region rows matching RegionBoxes plus the catch-all.
func Regions() []models.Region {
	return []models.Region{
		{RegionID: 1, RegionName: "California Margin", Country: "USA", Population: population(39_200_000)},
		{RegionID: 2, RegionName: "Alaska–Aleutian Margin", Country: "USA", Population: population(733_000)},
		{RegionID: 3, RegionName: "NW Pacific Margin (Japan/Russia)", Country: "Japan + Russian Far East",
			Population: population(125_700_000 + 6_300_000)},
		{RegionID: 4, RegionName: "Chile Subduction Zone", Country: "Chile", Population: population(19_600_000)},
		{RegionID: 5, RegionName: "Indonesia–Philippines–PNG Arc", Country: "Indonesia + Philippines + PNG",
			Population: population(277_500_000 + 117_300_000 + 9_700_000)},
		{RegionID: 6, RegionName: "New Zealand & SW Pacific", Country: "NZ + Fiji + Tonga + Samoa",
			Population: population(5_200_000 + 940_000 + 107_000 + 225_000)},
		{RegionID: 7, RegionName: "Mediterranean Region", Country: "Turkey + Greece + Italy + Balkans",
			Population: population(85_000_000 + 10_300_000 + 58_900_000 + 18_000_000)},
		{RegionID: 8, RegionName: "Himalaya–Central Asia Belt", Country: "India North + Nepal + Pakistan North + China West",
			Population: population(600_000_000 + 30_300_000 + 70_000_000 + 95_000_000)},
		{RegionID: 9, RegionName: "North Mid-Atlantic Ridge", Country: "Oceanic"},
		{RegionID: OtherRegionID, RegionName: "Other", Country: "Various"},
	}
}

// Zones returns the reference SeismicZone rows matching ZoneBoxes plus the catch-all.
func Zones() []models.SeismicZone {
	return []models.SeismicZone{
		{ZoneID: 1, ZoneName: "US Pacific Subduction Margin", RiskLevel: 5},
		{ZoneID: 2, ZoneName: "Japan Trench Zone", RiskLevel: 5},
		{ZoneID: 3, ZoneName: "Andean Subduction Zone", RiskLevel: 5},
		{ZoneID: 4, ZoneName: "Sunda Arc (Indonesia)", RiskLevel: 5},
		{ZoneID: 5, ZoneName: "New Zealand Plate Boundary", RiskLevel: 4},
		{ZoneID: 6, ZoneName: "Mediterranean Collision/Subduction", RiskLevel: 4},
		{ZoneID: 7, ZoneName: "Himalayan Collision Belt", RiskLevel: 4},
		{ZoneID: 8, ZoneName: "Mid-Atlantic Ridge", RiskLevel: 3},
		{ZoneID: 9, ZoneName: "Kuril–Kamchatka Subduction Zone", RiskLevel: 5},
		{ZoneID: OtherZoneID, ZoneName: "Other Oceanic Zone", RiskLevel: 2},
	}
}
