package services

import (
	"context"
	"testing"
	"time"

	"quake-bknd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupService_ListRegionsAndZones(t *testing.T) {
	ctx := context.Background()
	svc := NewLookupService(newSeededDB(t), time.Minute)

	regions, err := svc.ListRegions(ctx)
	require.NoError(t, err)
	require.Len(t, regions, 10)
	assert.Equal(t, 1, regions[0].RegionID)
	assert.Equal(t, "Other", regions[9].RegionName)

	zones, err := svc.ListZones(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 10)
	assert.Equal(t, 5, zones[0].RiskLevel)
	assert.Equal(t, "Other Oceanic Zone", zones[9].ZoneName)
}

func TestLookupService_CachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	svc := NewLookupService(db, time.Hour)

	first, err := svc.ListRegions(ctx)
	require.NoError(t, err)

	_, err = db.NewUpdate().
		Model((*models.Region)(nil)).
		Set("region_name = ?", "Renamed").
		Where("region_id = ?", 1).
		Exec(ctx)
	require.NoError(t, err)

	cached, err := svc.ListRegions(ctx)
	require.NoError(t, err)
	assert.Equal(t, first[0].RegionName, cached[0].RegionName)

	svc.Invalidate()

	fresh, err := svc.ListRegions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fresh[0].RegionName)
}

func TestLookupService_EmptyStoreIsNotCached(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewLookupService(db, time.Hour)

	zones, err := svc.ListZones(ctx)
	require.NoError(t, err)
	assert.NotNil(t, zones)
	assert.Empty(t, zones)

	loader := NewLoaderService(db, &stubFetcher{}, nil, nil, nil)
	require.NoError(t, loader.SeedLookupTables(ctx))

	zones, err = svc.ListZones(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 10)
}
