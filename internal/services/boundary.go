package services

import (
	"context"

	"quake-bknd/internal/classifier"
	"quake-bknd/internal/models"
)

// BoundaryService renders the classifier box tables as GeoJSON so a map can draw
// exactly the rectangles used at load time. Names and attributes come from the
// seeded lookup rows.
type BoundaryService struct {
	lookups *LookupService
}

func NewBoundaryService(lookups *LookupService) *BoundaryService {
	return &BoundaryService{lookups: lookups}
}

// GetRegionBoundaries returns every region box in evaluation order.
func (s *BoundaryService) GetRegionBoundaries(ctx context.Context) (*models.BoundaryCollection, error) {
	regions, err := s.lookups.ListRegions(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Region, len(regions))
	for _, r := range regions {
		byID[r.RegionID] = r
	}

	features := make([]models.BoundaryFeature, 0, len(classifier.RegionBoxes))
	for i, b := range classifier.RegionBoxes {
		features = append(features, regionFeature(b, i, byID[b.ID]))
	}

	return collection(features), nil
}

// GetRegionBoundaryByID returns nil for ids without a box, including the catch-all region.
func (s *BoundaryService) GetRegionBoundaryByID(ctx context.Context, id int) (*models.BoundaryFeature, error) {
	for i, b := range classifier.RegionBoxes {
		if b.ID != id {
			continue
		}

		regions, err := s.lookups.ListRegions(ctx)
		if err != nil {
			return nil, err
		}

		var region models.Region
		for _, r := range regions {
			if r.RegionID == id {
				region = r
				break
			}
		}

		feature := regionFeature(b, i, region)
		return &feature, nil
	}

	return nil, nil
}

// GetZoneBoundaries returns every zone box in evaluation order.
func (s *BoundaryService) GetZoneBoundaries(ctx context.Context) (*models.BoundaryCollection, error) {
	zones, err := s.lookups.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.SeismicZone, len(zones))
	for _, z := range zones {
		byID[z.ZoneID] = z
	}

	features := make([]models.BoundaryFeature, 0, len(classifier.ZoneBoxes))
	for i, b := range classifier.ZoneBoxes {
		zone := byID[b.ID]
		features = append(features, models.BoundaryFeature{
			ID:       b.ID,
			Type:     "Feature",
			Geometry: boxGeometry(b),
			Properties: map[string]any{
				"zone_id":    b.ID,
				"zone_name":  zone.ZoneName,
				"risk_level": zone.RiskLevel,
				"box_name":   b.Name,
				"precedence": i + 1,
			},
		})
	}

	return collection(features), nil
}

func regionFeature(b classifier.Box, order int, region models.Region) models.BoundaryFeature {
	return models.BoundaryFeature{
		ID:       b.ID,
		Type:     "Feature",
		Geometry: boxGeometry(b),
		Properties: map[string]any{
			"region_id":   b.ID,
			"region_name": region.RegionName,
			"country":     region.Country,
			"population":  region.Population,
			"box_name":    b.Name,
			"precedence":  order + 1,
		},
	}
}

func collection(features []models.BoundaryFeature) *models.BoundaryCollection {
	return &models.BoundaryCollection{
		Type:     "FeatureCollection",
		Version:  classifier.TableVersion,
		Features: features,
		Count:    len(features),
	}
}

// boxGeometry returns a Polygon, or a MultiPolygon for boxes split at the date line.
// Rings are closed and listed [lon, lat] as GeoJSON requires.
func boxGeometry(b classifier.Box) map[string]any {
	polygons := make([][][][2]float64, 0, len(b.LonRanges))
	for _, r := range b.LonRanges {
		polygons = append(polygons, [][][2]float64{{
			{r.Min, b.LatMin},
			{r.Max, b.LatMin},
			{r.Max, b.LatMax},
			{r.Min, b.LatMax},
			{r.Min, b.LatMin},
		}})
	}

	if len(polygons) == 1 {
		return map[string]any{"type": "Polygon", "coordinates": polygons[0]}
	}
	return map[string]any{"type": "MultiPolygon", "coordinates": polygons}
}
