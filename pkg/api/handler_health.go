package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trinity-ai/trinity/pkg/database"
)

// healthHandler reports service liveness, database pool state and runtime
// counters. Unauthenticated so load balancers can probe it.
func (s *Server) healthHandler(c *echo.Context) error {
	dbHealth, dbErr := database.Health(c.Request().Context(), s.db.DB())

	resp := map[string]any{
		"status":                "healthy",
		"database":              dbHealth,
		"active_executions":     s.engine.ActiveCount(),
		"websocket_connections": s.connManager.ActiveConnections(),
		"recovery_complete":     s.recoveryDone.Load(),
	}
	if report := s.recovery.LastReport(); report != nil {
		resp["recovery"] = report
	}
	if dbErr != nil {
		resp["status"] = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
