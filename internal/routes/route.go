package routes

import (
	"net/http"

	"quake-bknd/internal/config"
	"quake-bknd/internal/handlers"
	"quake-bknd/internal/logger"
	mdlwr "quake-bknd/internal/middleware"
	"quake-bknd/internal/observability"
	"quake-bknd/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
)

// NewRouter wires the read-only analytics API. Every API route is served both at the
// root, where the dashboard expects it, and under /api/v1.
func NewRouter(
	db *bun.DB,
	cfg *config.Config,
	logr *logger.Logger,
	metrics *observability.Metrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mdlwr.RequestLogger(logr.Logger))
	r.Use(middleware.Recoverer)
	r.Use(mdlwr.Metrics(metrics))

	// CORS middleware with config
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	quakeSvc := services.NewQuakeService(db)
	lookupSvc := services.NewLookupService(db, cfg.LookupCacheTTL)
	boundarySvc := services.NewBoundaryService(lookupSvc)

	quakeHandler := handlers.NewQuakeHandler(quakeSvc, logr.Logger)
	lookupHandler := handlers.NewLookupHandler(lookupSvc, logr.Logger)
	boundaryHandler := handlers.NewBoundaryHandler(boundarySvc, logr.Logger)
	healthHandler := handlers.NewHealthHandler(db, logr.Logger)

	r.Get("/healthz", healthHandler.Healthz)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	api := func(r chi.Router) {
		r.Get("/", healthHandler.Root)

		r.Get("/regions", lookupHandler.ListRegions)
		r.Get("/zones", lookupHandler.ListZones)

		r.Route("/boundaries", func(r chi.Router) {
			r.Get("/regions", boundaryHandler.GetRegionBoundaries)
			r.Get("/regions/{region_id}", boundaryHandler.GetRegionBoundaryByID)
			r.Get("/zones", boundaryHandler.GetZoneBoundaries)
		})

		r.Route("/regions/{region_id}", func(r chi.Router) {
			r.Get("/earthquakes", quakeHandler.GetQuakesInRegion)
			r.Get("/stats/avg-magnitude", quakeHandler.GetAvgMagnitude)
			r.Get("/risk-summary", quakeHandler.GetRegionRiskSummary)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/nearby", quakeHandler.CountNearby)
			r.Get("/high-magnitude", quakeHandler.GetHighMagnitudeQuakes)
			r.Get("/multi-criteria", quakeHandler.GetMultiCriteriaQuakes)
			r.Get("/high-population-regions", quakeHandler.GetHighPopulationRegions)

			r.Route("/regions", func(r chi.Router) {
				r.Get("/most-active", quakeHandler.GetMostActiveRegions)
				r.Get("/with-min-quakes", quakeHandler.GetRegionsWithMinQuakes)
				r.Get("/above-average-activity", quakeHandler.GetRegionsAboveAverage)
			})
		})
	}

	api(r)
	r.Route("/api/v1", api)

	return r
}
