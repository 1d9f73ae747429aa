package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quake-bknd/internal/models"

	"github.com/uptrace/bun"
)

const quakeColumns = "e.quake_id, e.datetime, e.magnitude, e.depth_km, e.latitude, e.longitude, e.place"

// QuakeService runs the read-only analytical queries. Every method borrows a pooled
// connection for one statement only, so it is safe for concurrent use.
type QuakeService struct {
	db *bun.DB
}

func NewQuakeService(db *bun.DB) *QuakeService {
	return &QuakeService{db: db}
}

// GetQuakesInRegion returns every quake in the region, newest first.
func (s *QuakeService) GetQuakesInRegion(ctx context.Context, regionID int) ([]models.EarthquakeInRegion, error) {
	var results []models.EarthquakeInRegion

	err := s.db.NewSelect().
		ColumnExpr(quakeColumns).
		ColumnExpr("r.region_name").
		TableExpr("earthquakes AS e").
		Join("JOIN regions AS r ON e.region_id = r.region_id").
		Where("r.region_id = ?", regionID).
		OrderExpr("e.datetime DESC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query quakes in region: %w", err)
	}

	return nonNil(results), nil
}

// GetAvgMagnitudeInRegion returns nil when the region has no quakes.
func (s *QuakeService) GetAvgMagnitudeInRegion(ctx context.Context, regionID int) (*models.AvgMagnitude, error) {
	var result models.AvgMagnitude

	err := s.db.NewSelect().
		ColumnExpr("r.region_id, r.region_name").
		ColumnExpr("AVG(e.magnitude) AS avg_magnitude").
		TableExpr("earthquakes AS e").
		Join("JOIN regions AS r ON e.region_id = r.region_id").
		Where("r.region_id = ?", regionID).
		GroupExpr("r.region_id, r.region_name").
		Scan(ctx, &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query average magnitude: %w", err)
	}

	return &result, nil
}

// CountQuakesNearLocation counts quakes inside the rectangle lat±LatDelta, lon±LonDelta.
// Bounds are inclusive and the window does not wrap at the date line.
func (s *QuakeService) CountQuakesNearLocation(ctx context.Context, params models.NearbyParams) (*models.NearbyCount, error) {
	var result models.NearbyCount

	err := s.db.NewSelect().
		ColumnExpr("COUNT(*) AS quake_count").
		TableExpr("earthquakes AS e").
		Where("e.latitude BETWEEN ? AND ?", params.Lat-params.LatDelta, params.Lat+params.LatDelta).
		Where("e.longitude BETWEEN ? AND ?", params.Lon-params.LonDelta, params.Lon+params.LonDelta).
		Scan(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to count nearby quakes: %w", err)
	}

	return &result, nil
}

// GetMostActiveRegions returns the topN regions by quake count.
func (s *QuakeService) GetMostActiveRegions(ctx context.Context, topN int) ([]models.ActiveRegion, error) {
	var results []models.ActiveRegion

	err := s.db.NewSelect().
		ColumnExpr("r.region_id, r.region_name, r.country").
		ColumnExpr("COUNT(e.quake_id) AS quake_count").
		TableExpr("earthquakes AS e").
		Join("JOIN regions AS r ON e.region_id = r.region_id").
		GroupExpr("r.region_id, r.region_name, r.country").
		OrderExpr("quake_count DESC, r.region_id ASC").
		Limit(topN).
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query most active regions: %w", err)
	}

	return nonNil(results), nil
}

// GetHighMagnitudeQuakes returns quakes at or above MinMagnitude whose timestamp falls
// within [StartDate 00:00:00, EndDate 23:59:59], strongest first.
func (s *QuakeService) GetHighMagnitudeQuakes(ctx context.Context, params models.HighMagnitudeParams) ([]models.Quake, error) {
	var results []models.Quake

	err := s.db.NewSelect().
		ColumnExpr(quakeColumns).
		TableExpr("earthquakes AS e").
		Where("e.magnitude >= ?", params.MinMagnitude).
		Where("e.datetime BETWEEN ? AND ?", params.StartDate+" 00:00:00", params.EndDate+" 23:59:59").
		OrderExpr("e.magnitude DESC, e.datetime DESC").
		Limit(params.Limit).
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query high magnitude quakes: %w", err)
	}

	return nonNil(results), nil
}

// GetRegionsWithMinQuakes returns regions with strictly more than minQuakes quakes.
func (s *QuakeService) GetRegionsWithMinQuakes(ctx context.Context, minQuakes int) ([]models.RegionQuakeCount, error) {
	var results []models.RegionQuakeCount

	err := s.db.NewSelect().
		ColumnExpr("r.region_id, r.region_name").
		ColumnExpr("COUNT(e.quake_id) AS quake_count").
		TableExpr("earthquakes AS e").
		Join("JOIN regions AS r ON e.region_id = r.region_id").
		GroupExpr("r.region_id, r.region_name").
		Having("COUNT(e.quake_id) > ?", minQuakes).
		OrderExpr("quake_count DESC, r.region_id ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions with min quakes: %w", err)
	}

	return nonNil(results), nil
}

// GetRegionsAboveAverageQuakes returns regions whose count is strictly greater than the
// mean count over regions that have at least one quake.
func (s *QuakeService) GetRegionsAboveAverageQuakes(ctx context.Context) ([]models.AboveAverageRegion, error) {
	var results []models.AboveAverageRegion

	regionCounts := s.db.NewSelect().
		ColumnExpr("region_id").
		ColumnExpr("COUNT(*) AS quake_count").
		TableExpr("earthquakes").
		GroupExpr("region_id")

	avgCount := s.db.NewSelect().
		ColumnExpr("CAST(AVG(quake_count) AS DOUBLE PRECISION) AS avg_quakes").
		TableExpr("region_counts")

	err := s.db.NewSelect().
		With("region_counts", regionCounts).
		With("avg_count", avgCount).
		ColumnExpr("r.region_id, r.region_name, rc.quake_count, a.avg_quakes").
		TableExpr("region_counts AS rc").
		Join("CROSS JOIN avg_count AS a").
		Join("JOIN regions AS r ON rc.region_id = r.region_id").
		Where("rc.quake_count > a.avg_quakes").
		OrderExpr("rc.quake_count DESC, r.region_id ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query above average regions: %w", err)
	}

	return nonNil(results), nil
}

// GetMultiCriteriaQuakes joins quakes with their region and zone and keeps those passing
// all three thresholds. Regions without a population never match.
func (s *QuakeService) GetMultiCriteriaQuakes(ctx context.Context, params models.MultiCriteriaParams) ([]models.MultiCriteriaQuake, error) {
	var results []models.MultiCriteriaQuake

	err := s.db.NewSelect().
		ColumnExpr(quakeColumns).
		ColumnExpr("r.region_name, r.population").
		ColumnExpr("s.zone_name, s.risk_level").
		TableExpr("earthquakes AS e").
		Join("JOIN regions AS r ON e.region_id = r.region_id").
		Join("JOIN seismic_zones AS s ON e.zone_id = s.zone_id").
		Where("e.magnitude >= ?", params.MinMagnitude).
		Where("s.risk_level >= ?", params.MinRiskLevel).
		Where("r.population IS NOT NULL").
		Where("r.population >= ?", params.MinPopulation).
		OrderExpr("e.magnitude DESC, e.datetime DESC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query multi criteria quakes: %w", err)
	}

	return nonNil(results), nil
}

// GetQuakesInHighPopulationRegions counts quakes per region for regions whose known
// population is at least minPopulation.
func (s *QuakeService) GetQuakesInHighPopulationRegions(ctx context.Context, minPopulation int64) ([]models.PopulationRegionCount, error) {
	var results []models.PopulationRegionCount

	err := s.db.NewSelect().
		ColumnExpr("r.region_id, r.region_name, r.population").
		ColumnExpr("COUNT(e.quake_id) AS quake_count").
		TableExpr("earthquakes AS e").
		Join("JOIN regions AS r ON e.region_id = r.region_id").
		Where("r.population IS NOT NULL").
		Where("r.population >= ?", minPopulation).
		GroupExpr("r.region_id, r.region_name, r.population").
		OrderExpr("quake_count DESC, r.region_id ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query high population regions: %w", err)
	}

	return nonNil(results), nil
}

// GetRegionRiskSummary returns one row per seismic zone that has quakes in the region.
// An empty slice means the region has no quakes.
func (s *QuakeService) GetRegionRiskSummary(ctx context.Context, regionID int) ([]models.RegionRiskSummary, error) {
	var results []models.RegionRiskSummary

	err := s.db.NewSelect().
		ColumnExpr("r.region_id, r.region_name, r.country, r.population").
		ColumnExpr("s.zone_id, s.zone_name, s.risk_level").
		ColumnExpr("COUNT(e.quake_id) AS quake_count").
		ColumnExpr("AVG(e.magnitude) AS avg_magnitude").
		ColumnExpr("MAX(e.magnitude) AS max_magnitude").
		TableExpr("regions AS r").
		Join("JOIN earthquakes AS e ON e.region_id = r.region_id").
		Join("JOIN seismic_zones AS s ON e.zone_id = s.zone_id").
		Where("r.region_id = ?", regionID).
		GroupExpr("r.region_id, r.region_name, r.country, r.population, s.zone_id, s.zone_name, s.risk_level").
		OrderExpr("s.zone_id ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query region risk summary: %w", err)
	}

	return nonNil(results), nil
}

// nonNil keeps empty results encoding as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
