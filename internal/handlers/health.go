package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

type HealthHandler struct {
	db   *bun.DB
	logr *zap.Logger
}

func NewHealthHandler(db *bun.DB, logr *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, logr: logr}
}

// Root handles GET / and answers the dashboard's liveness probe.
func (h *HealthHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Earthquake Analytics API is running."})
}

// Healthz handles GET /healthz and reports whether the store answers a ping.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logr.Warn("health check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
