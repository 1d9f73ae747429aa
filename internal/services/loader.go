package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quake-bknd/internal/classifier"
	"quake-bknd/internal/models"
	"quake-bknd/internal/observability"
	"quake-bknd/internal/usgs"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// UnknownPlace replaces a missing or empty place description.
const UnknownPlace = "Unknown location"

// EventFetcher is the feed side of a load run.
type EventFetcher interface {
	FetchEvents(ctx context.Context, q usgs.Query) (*usgs.FeatureCollection, error)
}

type LoaderService struct {
	db      *bun.DB
	fetcher EventFetcher
	clock   clockwork.Clock
	metrics *observability.Metrics
	logger  *zap.Logger
}

func NewLoaderService(
	db *bun.DB,
	fetcher EventFetcher,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *LoaderService {
	return &LoaderService{
		db:      db,
		fetcher: fetcher,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// SeedLookupTables inserts the reference regions and seismic zones. Existing rows
// are left untouched, so calling it repeatedly is safe.
func (s *LoaderService) SeedLookupTables(ctx context.Context) error {
	regions := classifier.Regions()
	zones := classifier.Zones()

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().
			Model(&regions).
			On("CONFLICT (region_id) DO NOTHING").
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed regions: %w", err)
		}

		if _, err := tx.NewInsert().
			Model(&zones).
			On("CONFLICT (zone_id) DO NOTHING").
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed seismic zones: %w", err)
		}

		return nil
	})
}

// NormalizeFeature converts one feed feature into an unsaved Earthquake row.
// It returns false for features missing coordinates, depth, magnitude or time.
func NormalizeFeature(f usgs.Feature) (models.Earthquake, bool) {
	if f.Geometry == nil || len(f.Geometry.Coordinates) < 3 {
		return models.Earthquake{}, false
	}

	lonPtr, latPtr, depthPtr := f.Geometry.Coordinates[0], f.Geometry.Coordinates[1], f.Geometry.Coordinates[2]
	if lonPtr == nil || latPtr == nil || depthPtr == nil {
		return models.Earthquake{}, false
	}
	if f.Properties.Mag == nil || f.Properties.Time == nil {
		return models.Earthquake{}, false
	}

	lat, lon := *latPtr, *lonPtr

	place := UnknownPlace
	if f.Properties.Place != nil && *f.Properties.Place != "" {
		place = *f.Properties.Place
	}

	return models.Earthquake{
		DateTime:  time.UnixMilli(*f.Properties.Time).UTC().Format(models.DateTimeLayout),
		Magnitude: *f.Properties.Mag,
		DepthKM:   *depthPtr,
		Latitude:  lat,
		Longitude: lon,
		Place:     strings.ReplaceAll(place, ",", " - "),
		RegionID:  classifier.ClassifyRegion(lat, lon),
		ZoneID:    classifier.ClassifyZone(lat, lon),
	}, true
}

// Load runs one batch: seed lookups, fetch the window in q, normalize and insert every
// valid feature in a single transaction. An empty q.EndTime means today (UTC).
// Any insert failure rolls back the whole batch.
func (s *LoaderService) Load(ctx context.Context, q usgs.Query) (*models.LoadResult, error) {
	start := s.clock.Now()
	if q.EndTime == "" {
		q.EndTime = start.UTC().Format(models.DateLayout)
	}

	result := &models.LoadResult{
		RunID:     uuid.NewString(),
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
	}
	log := s.logger.With(zap.String("run_id", result.RunID))

	fail := func(err error) (*models.LoadResult, error) {
		s.metrics.LoadRuns.WithLabelValues("error").Inc()
		log.Error("Load run failed", zap.Error(err))
		return nil, err
	}

	if err := s.SeedLookupTables(ctx); err != nil {
		return fail(err)
	}

	log.Info("Requesting events from USGS",
		zap.String("starttime", q.StartTime),
		zap.String("endtime", q.EndTime),
		zap.Float64("minmagnitude", q.MinMagnitude),
		zap.Int("limit", q.Limit),
	)

	fc, err := s.fetcher.FetchEvents(ctx, q)
	if err != nil {
		return fail(fmt.Errorf("failed to fetch events: %w", err))
	}
	result.Fetched = len(fc.Features)
	s.metrics.FeaturesFetched.Add(float64(result.Fetched))

	quakes := make([]models.Earthquake, 0, len(fc.Features))
	for _, f := range fc.Features {
		quake, ok := NormalizeFeature(f)
		if !ok {
			result.Skipped++
			continue
		}
		quakes = append(quakes, quake)
	}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for i := range quakes {
			res, err := tx.NewInsert().
				Model(&quakes[i]).
				On("CONFLICT DO NOTHING").
				Returning("NULL").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to insert earthquake at %s: %w", quakes[i].DateTime, err)
			}

			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read rows affected: %w", err)
			}
			if n == 0 {
				result.Duplicates++
				continue
			}
			result.Inserted++
		}
		return nil
	})
	if err != nil {
		return fail(err)
	}

	result.Duration = s.clock.Since(start)

	s.metrics.QuakesInserted.Add(float64(result.Inserted))
	s.metrics.FeaturesSkipped.Add(float64(result.Skipped))
	s.metrics.QuakeDuplicates.Add(float64(result.Duplicates))
	s.metrics.LoadDuration.Observe(result.Duration.Seconds())
	s.metrics.LoadRuns.WithLabelValues("success").Inc()
	s.metrics.LastLoadSuccess.Set(float64(s.clock.Now().Unix()))

	log.Info("Load run finished",
		zap.Int("fetched", result.Fetched),
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("duplicates", result.Duplicates),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}
