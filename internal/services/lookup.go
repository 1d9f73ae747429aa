package services

import (
	"context"
	"fmt"
	"time"

	"quake-bknd/internal/models"

	"github.com/jellydator/ttlcache/v3"
	"github.com/uptrace/bun"
)

const (
	regionsCacheKey = "regions"
	zonesCacheKey   = "zones"
)

// LookupService lists the seeded reference tables. Results are cached for ttl since
// the tables only change when the loader seeds a fresh store.
type LookupService struct {
	db    *bun.DB
	cache *ttlcache.Cache[string, any]
	ttl   time.Duration
}

func NewLookupService(db *bun.DB, ttl time.Duration) *LookupService {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, any](ttl),
		ttlcache.WithDisableTouchOnHit[string, any](),
	)

	return &LookupService{db: db, cache: cache, ttl: ttl}
}

// ListRegions returns all regions ordered by id.
func (s *LookupService) ListRegions(ctx context.Context) ([]models.Region, error) {
	if cached := s.cache.Get(regionsCacheKey); cached != nil {
		return cached.Value().([]models.Region), nil
	}

	var regions []models.Region
	if err := s.db.NewSelect().
		Model(&regions).
		OrderExpr("r.region_id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	regions = nonNil(regions)

	// An unseeded store is not cached so the listing appears as soon as seeding runs.
	if len(regions) > 0 {
		s.cache.Set(regionsCacheKey, regions, s.ttl)
	}
	return regions, nil
}

// ListZones returns all seismic zones ordered by id.
func (s *LookupService) ListZones(ctx context.Context) ([]models.SeismicZone, error) {
	if cached := s.cache.Get(zonesCacheKey); cached != nil {
		return cached.Value().([]models.SeismicZone), nil
	}

	var zones []models.SeismicZone
	if err := s.db.NewSelect().
		Model(&zones).
		OrderExpr("s.zone_id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list seismic zones: %w", err)
	}
	zones = nonNil(zones)

	if len(zones) > 0 {
		s.cache.Set(zonesCacheKey, zones, s.ttl)
	}
	return zones, nil
}

// Invalidate drops cached listings so the next call reads the store.
func (s *LookupService) Invalidate() {
	s.cache.DeleteAll()
}
