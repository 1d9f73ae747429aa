package handlers

import (
	"net/http"

	"quake-bknd/internal/services"

	"go.uber.org/zap"
)

type LookupHandler struct {
	service *services.LookupService
	logr    *zap.Logger
}

func NewLookupHandler(svc *services.LookupService, logr *zap.Logger) *LookupHandler {
	return &LookupHandler{service: svc, logr: logr}
}

// ListRegions handles GET /regions.
func (h *LookupHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.service.ListRegions(r.Context())
	if err != nil {
		h.logr.Error("failed to list regions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list regions")
		return
	}

	writeJSON(w, http.StatusOK, regions)
}

// ListZones handles GET /zones.
func (h *LookupHandler) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.service.ListZones(r.Context())
	if err != nil {
		h.logr.Error("failed to list seismic zones", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list seismic zones")
		return
	}

	writeJSON(w, http.StatusOK, zones)
}
