package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
)

const healthCheckTimeout = 2 * time.Second

type HealthController struct {
	Logger  *slog.Logger
	Checker domain.HealthChecker
}

func NewHealthController(logger *slog.Logger, checker domain.HealthChecker) *HealthController {
	return &HealthController{
		Logger:  logger,
		Checker: checker,
	}
}

// Healthz reports liveness and database reachability. It is mounted outside /api/v1,
// so it is not part of the OpenAPI document.
func (c *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()
	if err := c.Checker.PingContext(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unreachable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
