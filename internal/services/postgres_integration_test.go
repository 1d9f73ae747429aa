//go:build integration

package services

import (
	"context"
	"fmt"
	"testing"

	"quake-bknd/internal/config"
	"quake-bknd/internal/database"
	"quake-bknd/internal/models"
	"quake-bknd/internal/usgs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
)

func newPostgresDB(t *testing.T) *bun.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to cleanup postgres container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	db, err := database.New(dsn, &config.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.InitSchema(ctx, db))
	return db
}

func TestPostgres_LoadAndQuery(t *testing.T) {
	ctx := context.Background()
	db := newPostgresDB(t)
	loader, _, _ := newTestLoader(db, &stubFetcher{fc: feedFixture()})

	require.NoError(t, loader.SeedLookupTables(ctx))
	require.NoError(t, loader.SeedLookupTables(ctx))

	regions, err := db.NewSelect().Model((*models.Region)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, regions)

	first, err := loader.Load(ctx, usgs.Query{StartTime: "2025-01-01", EndTime: "2025-02-01", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Inserted)

	again, err := loader.Load(ctx, usgs.Query{StartTime: "2025-01-01", EndTime: "2025-02-01", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 0, again.Inserted)
	assert.Equal(t, 2, again.Duplicates)

	svc := NewQuakeService(db)

	inRegion, err := svc.GetQuakesInRegion(ctx, 1)
	require.NoError(t, err)
	require.Len(t, inRegion, 1)

	avg, err := svc.GetAvgMagnitudeInRegion(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 6.1, avg.AvgMagnitude, 1e-9)

	above, err := svc.GetRegionsAboveAverageQuakes(ctx)
	require.NoError(t, err)
	assert.Empty(t, above, "two regions with one quake each are both at the mean")

	summary, err := svc.GetRegionRiskSummary(ctx, 3)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].ZoneID)

	multi, err := svc.GetMultiCriteriaQuakes(ctx, models.MultiCriteriaParams{MinMagnitude: 5, MinRiskLevel: 4, MinPopulation: 10_000_000})
	require.NoError(t, err)
	assert.Len(t, multi, 2)

	lookups := NewLookupService(db, 0)
	zones, err := lookups.ListZones(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 10)
}
