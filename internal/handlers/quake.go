package handlers

import (
	"net/http"

	"quake-bknd/internal/models"
	"quake-bknd/internal/services"
	"quake-bknd/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Query parameter defaults and bounds served to the dashboard.
const (
	defaultTopN          = 5
	maxTopN              = 50
	defaultLimit         = 50
	maxLimit             = 500
	defaultMinQuakes     = 10
	defaultHighMagnitude = 6.0
	defaultMultiMag      = 5.5
	defaultMinRiskLevel  = 4
	defaultMinPopulation = 10_000_000
	defaultDelta         = 1.0
)

type QuakeHandler struct {
	service *services.QuakeService
	logr    *zap.Logger
}

func NewQuakeHandler(svc *services.QuakeService, logr *zap.Logger) *QuakeHandler {
	return &QuakeHandler{service: svc, logr: logr}
}

func (h *QuakeHandler) regionID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := utils.ParsePathInt("region_id", chi.URLParam(r, "region_id"))
	if err != nil {
		writeParamError(w, h.logr, err)
		return 0, false
	}
	return id, true
}

func (h *QuakeHandler) fail(w http.ResponseWriter, msg string, err error, fields ...zap.Field) {
	h.logr.Error(msg, append(fields, zap.Error(err))...)
	writeError(w, http.StatusInternalServerError, msg)
}

// GetQuakesInRegion handles GET /regions/{region_id}/earthquakes.
func (h *QuakeHandler) GetQuakesInRegion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.regionID(w, r)
	if !ok {
		return
	}

	quakes, err := h.service.GetQuakesInRegion(r.Context(), id)
	if err != nil {
		h.fail(w, "failed to retrieve earthquakes", err, zap.Int("region_id", id))
		return
	}

	writeJSON(w, http.StatusOK, quakes)
}

// GetAvgMagnitude handles GET /regions/{region_id}/stats/avg-magnitude.
func (h *QuakeHandler) GetAvgMagnitude(w http.ResponseWriter, r *http.Request) {
	id, ok := h.regionID(w, r)
	if !ok {
		return
	}

	avg, err := h.service.GetAvgMagnitudeInRegion(r.Context(), id)
	if err != nil {
		h.fail(w, "failed to retrieve average magnitude", err, zap.Int("region_id", id))
		return
	}
	if avg == nil {
		writeError(w, http.StatusNotFound, "no earthquakes found for region")
		return
	}

	writeJSON(w, http.StatusOK, avg)
}

// CountNearby handles GET /analytics/nearby.
func (h *QuakeHandler) CountNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		params models.NearbyParams
		err    error
	)
	if params.Lat, err = utils.RequireFloat(q, "lat"); err != nil {
		writeParamError(w, h.logr, err)
		return
	}
	if params.Lon, err = utils.RequireFloat(q, "lon"); err != nil {
		writeParamError(w, h.logr, err)
		return
	}
	if params.LatDelta, err = utils.QueryFloatMin(q, "lat_delta", defaultDelta, 0); err != nil {
		writeParamError(w, h.logr, err)
		return
	}
	if params.LonDelta, err = utils.QueryFloatMin(q, "lon_delta", defaultDelta, 0); err != nil {
		writeParamError(w, h.logr, err)
		return
	}

	count, err := h.service.CountQuakesNearLocation(r.Context(), params)
	if err != nil {
		h.fail(w, "failed to count nearby earthquakes", err)
		return
	}

	writeJSON(w, http.StatusOK, count)
}

// GetMostActiveRegions handles GET /analytics/regions/most-active.
func (h *QuakeHandler) GetMostActiveRegions(w http.ResponseWriter, r *http.Request) {
	topN, err := utils.QueryInt(r.URL.Query(), "top_n", defaultTopN, 1, maxTopN)
	if err != nil {
		writeParamError(w, h.logr, err)
		return
	}

	regions, err := h.service.GetMostActiveRegions(r.Context(), topN)
	if err != nil {
		h.fail(w, "failed to retrieve most active regions", err)
		return
	}

	writeJSON(w, http.StatusOK, regions)
}

// GetHighMagnitudeQuakes handles GET /analytics/high-magnitude.
func (h *QuakeHandler) GetHighMagnitudeQuakes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		params models.HighMagnitudeParams
		err    error
	)
	if params.MinMagnitude, err = utils.QueryFloat(q, "min_magnitude", defaultHighMagnitude); err != nil {
		writeParamError(w, h.logr, err)
		return
	}
	if params.StartDate, err = utils.RequireDate(q, "start_date"); err != nil {
		writeParamError(w, h.logr, err)
		return
	}
	if params.EndDate, err = utils.RequireDate(q, "end_date"); err != nil {
		writeParamError(w, h.logr, err)
		return
	}
	if params.Limit, err = utils.QueryInt(q, "limit", defaultLimit, 1, maxLimit); err != nil {
		writeParamError(w, h.logr, err)
		return
	}

	quakes, err := h.service.GetHighMagnitudeQuakes(r.Context(), params)
	if err != nil {
		h.fail(w, "failed to retrieve high magnitude earthquakes", err)
		return
	}

	writeJSON(w, http.StatusOK, quakes)
}

// GetRegionsWithMinQuakes handles GET /analytics/regions/with-min-quakes.
func (h *QuakeHandler) GetRegionsWithMinQuakes(w http.ResponseWriter, r *http.Request) {
	minQuakes, err := utils.QueryInt64Min(r.URL.Query(), "min_quakes", defaultMinQuakes, 1)
	if err != nil {
		writeParamError(w, h.logr, err)
		return
	}

	regions, err := h.service.GetRegionsWithMinQuakes(r.Context(), int(minQuakes))
	if err != nil {
		h.fail(w, "failed to retrieve regions", err)
		return
	}

	writeJSON(w, http.StatusOK, regions)
}

// GetRegionsAboveAverage handles GET /analytics/regions/above-average-activity.
func (h *QuakeHandler) GetRegionsAboveAverage(w http.ResponseWriter, r *http.Request) {
	regions, err := h.service.GetRegionsAboveAverageQuakes(r.Context())
	if err != nil {
		h.fail(w, "failed to retrieve regions", err)
		return
	}

	writeJSON(w, http.StatusOK, regions)
}

// GetMultiCriteriaQuakes handles GET /analytics/multi-criteria.
func (h *QuakeHandler) GetMultiCriteriaQuakes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		params models.MultiCriteriaParams
		err    error
	)
	if params.MinMagnitude, err = utils.QueryFloat(q, "min_magnitude", defaultMultiMag); err != nil {
		writeParamError(w, h.logr, err)
		return
	}
	if params.MinRiskLevel, err = utils.QueryInt(q, "min_risk_level", defaultMinRiskLevel, 1, 5); err != nil {
		writeParamError(w, h.logr, err)
		return
	}
	if params.MinPopulation, err = utils.QueryInt64Min(q, "min_population", defaultMinPopulation, 0); err != nil {
		writeParamError(w, h.logr, err)
		return
	}

	quakes, err := h.service.GetMultiCriteriaQuakes(r.Context(), params)
	if err != nil {
		h.fail(w, "failed to retrieve earthquakes", err)
		return
	}

	writeJSON(w, http.StatusOK, quakes)
}

// GetHighPopulationRegions handles GET /analytics/high-population-regions.
func (h *QuakeHandler) GetHighPopulationRegions(w http.ResponseWriter, r *http.Request) {
	minPopulation, err := utils.QueryInt64Min(r.URL.Query(), "min_population", defaultMinPopulation, 0)
	if err != nil {
		writeParamError(w, h.logr, err)
		return
	}

	regions, err := h.service.GetQuakesInHighPopulationRegions(r.Context(), minPopulation)
	if err != nil {
		h.fail(w, "failed to retrieve regions", err)
		return
	}

	writeJSON(w, http.StatusOK, regions)
}

// GetRegionRiskSummary handles GET /regions/{region_id}/risk-summary.
func (h *QuakeHandler) GetRegionRiskSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.regionID(w, r)
	if !ok {
		return
	}

	summary, err := h.service.GetRegionRiskSummary(r.Context(), id)
	if err != nil {
		h.fail(w, "failed to retrieve risk summary", err, zap.Int("region_id", id))
		return
	}
	if len(summary) == 0 {
		writeError(w, http.StatusNotFound, "no risk summary found for region")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
