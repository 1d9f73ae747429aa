package database

import (
	"context"
	"fmt"

	"quake-bknd/internal/models"

	"github.com/uptrace/bun"
)

// NaturalKeyIndex enforces one row per (datetime, latitude, longitude, magnitude)
// so re-running a load over an overlapping window does not duplicate events.
const NaturalKeyIndex = "earthquakes_natural_key_idx"

// InitSchema creates the lookup and event tables plus their indexes if they do not
// exist yet. Lookup tables are created first so the earthquake foreign keys resolve.
// There is no migration path: schema changes require a fresh store.
func InitSchema(ctx context.Context, db bun.IDB) error {
	tables := []interface{}{
		(*models.Region)(nil),
		(*models.SeismicZone)(nil),
		(*models.Earthquake)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	indexes := []struct {
		name    string
		unique  bool
		columns []string
	}{
		{NaturalKeyIndex, true, []string{"datetime", "latitude", "longitude", "magnitude"}},
		{"earthquakes_region_id_idx", false, []string{"region_id"}},
		{"earthquakes_zone_id_idx", false, []string{"zone_id"}},
	}

	for _, idx := range indexes {
		q := db.NewCreateIndex().
			Model((*models.Earthquake)(nil)).
			Index(idx.name).
			Column(idx.columns...).
			IfNotExists()
		if idx.unique {
			q = q.Unique()
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
