package services

import (
	"context"
	"path/filepath"
	"testing"

	"quake-bknd/internal/config"
	"quake-bknd/internal/database"
	"quake-bknd/internal/models"
	"quake-bknd/internal/usgs"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// newTestDB opens an on-disk SQLite store under t.TempDir with the schema applied.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "quakes.db"), &config.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.InitSchema(context.Background(), db))
	return db
}

// newSeededDB is newTestDB plus the reference regions and zones.
func newSeededDB(t *testing.T) *bun.DB {
	t.Helper()

	db := newTestDB(t)
	loader := NewLoaderService(db, &stubFetcher{}, nil, nil, nil)
	require.NoError(t, loader.SeedLookupTables(context.Background()))
	return db
}

type stubFetcher struct {
	fc    *usgs.FeatureCollection
	err   error
	calls int
	last  usgs.Query
}

func (f *stubFetcher) FetchEvents(_ context.Context, q usgs.Query) (*usgs.FeatureCollection, error) {
	f.calls++
	f.last = q
	if f.err != nil {
		return nil, f.err
	}
	if f.fc == nil {
		return &usgs.FeatureCollection{}, nil
	}
	return f.fc, nil
}

// quake builds an Earthquake row with the given region, zone, magnitude and timestamp.
// Coordinates are derived from seq so natural keys never collide.
func quake(seq, regionID, zoneID int, mag float64, datetime string) models.Earthquake {
	return models.Earthquake{
		DateTime:  datetime,
		Magnitude: mag,
		DepthKM:   10,
		Latitude:  float64(seq) / 100,
		Longitude: float64(seq) / 100,
		Place:     "test",
		RegionID:  regionID,
		ZoneID:    zoneID,
	}
}

func insertQuakes(t *testing.T, db *bun.DB, quakes ...models.Earthquake) {
	t.Helper()
	if len(quakes) == 0 {
		return
	}
	_, err := db.NewInsert().Model(&quakes).Exec(context.Background())
	require.NoError(t, err)
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64 { return &v }
func str(v string) *string { return &v }
