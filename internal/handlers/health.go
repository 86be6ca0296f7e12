package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/maschat/internal/logger"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

// Pinger checks a backing store.
type Pinger interface {
	PingContext(ctx context.Context) error // Returns nil when the store is reachable
}

// HealthResponse reports service liveness.
// swagger:model HealthResponse
type HealthResponse struct {
	// default: UP
	Status string `json:"status"`
	// default: masscoin
	Service string `json:"service"`
}

// NewHealthHandler returns an HTTP handler for the MassCoin health check.
// A nil pinger always reports UP.
// @Summary Health check
// @Tags masscoin
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /masscoin/health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.Log.Warnw("health check failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "DOWN", Service: "masscoin"})
				return
			}
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "UP", Service: "masscoin"})
	}
}
