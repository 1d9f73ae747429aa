package handlers

import (
	"net/http"

	"quake-bknd/internal/services"
	"quake-bknd/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BoundaryHandler struct {
	service *services.BoundaryService
	logr    *zap.Logger
}

func NewBoundaryHandler(svc *services.BoundaryService, logr *zap.Logger) *BoundaryHandler {
	return &BoundaryHandler{service: svc, logr: logr}
}

// GetRegionBoundaries handles GET /boundaries/regions.
func (h *BoundaryHandler) GetRegionBoundaries(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetRegionBoundaries(r.Context())
	if err != nil {
		h.logr.Error("failed to get region boundaries", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to retrieve region boundaries")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// GetRegionBoundaryByID handles GET /boundaries/regions/{region_id}.
func (h *BoundaryHandler) GetRegionBoundaryByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathInt("region_id", chi.URLParam(r, "region_id"))
	if err != nil {
		writeParamError(w, h.logr, err)
		return
	}

	feature, err := h.service.GetRegionBoundaryByID(r.Context(), id)
	if err != nil {
		h.logr.Error("failed to get region boundary", zap.Error(err), zap.Int("region_id", id))
		writeError(w, http.StatusInternalServerError, "failed to retrieve region boundary")
		return
	}
	if feature == nil {
		writeError(w, http.StatusNotFound, "region has no boundary")
		return
	}

	writeJSON(w, http.StatusOK, feature)
}

// GetZoneBoundaries handles GET /boundaries/zones.
func (h *BoundaryHandler) GetZoneBoundaries(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetZoneBoundaries(r.Context())
	if err != nil {
		h.logr.Error("failed to get zone boundaries", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to retrieve zone boundaries")
		return
	}

	writeJSON(w, http.StatusOK, response)
}
