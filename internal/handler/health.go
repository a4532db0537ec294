package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports gateway liveness and dependency health. Its
// endpoints bypass the typed pipeline: they take no input and pick their
// own status code from the check outcome.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(h Handler) *HealthHandler {
	return &HealthHandler{Handler: h}
}

// HealthStatus is the /status response body.
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Status reports the health of the gateway's dependencies. The database is
// load-bearing: if it is unreachable the check reports degraded with a 503.
// Redis only degrades background email delivery, so its failure is reported
// but does not fail the check.
func (h *HealthHandler) Status(c echo.Context) error {
	hc := h.server.Config.Observability.HealthChecks

	ctx := c.Request().Context()
	if hc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, hc.Timeout)
		defer cancel()
	}

	status := HealthStatus{
		Status:     "ok",
		Components: map[string]string{},
	}

	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.Components["database"] = "unreachable"
	} else {
		status.Components["database"] = "ok"
	}

	if h.server.Redis != nil {
		if err := h.server.Redis.Ping(ctx).Err(); err != nil {
			status.Components["redis"] = "unreachable"
		} else {
			status.Components["redis"] = "ok"
		}
	}

	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, status)
}

// Liveness is the bare process liveness probe.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"alive": "true"})
}
