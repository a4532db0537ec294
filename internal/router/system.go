package router

import (
	"github.com/opendirectory/providerdir/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes exposes the operational endpoints: the dependency
// health check on /status and a bare liveness probe on /testAPI.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/status", h.Health.Status)
	e.GET("/testAPI", h.Health.Liveness)
}
