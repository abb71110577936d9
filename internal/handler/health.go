package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-cats/internal/middleware"
	"github.com/deppfellow/go-cats/internal/server"
	"github.com/deppfellow/go-cats/internal/service"
)

// HealthHandler exposes a "system" endpoint that load balancers and uptime monitors
// use to verify the service is alive.
type HealthHandler struct {
	Handler
	cats *service.CatsService
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server, cats *service.CatsService) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		cats:    cats,
	}
}

// CheckHealth returns system health status and the storage check.
//
// Response:
//   - status (healthy/unhealthy)
//   - timestamp (UTC)
//   - environment (from config)
//   - checks.storage: status + number of stored cats
//
// It returns 200 if all checks pass and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	storageStart := time.Now()
	count := h.cats.Count(ctx)

	if err := ctx.Err(); err != nil {
		checks["storage"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(storageStart).String(),
			"error":         err.Error(),
		}
		isHealthy = false

		logger.Error().Err(err).Msg("storage health check failed")
		h.recordHealthCheckError("storage", err)
	} else {
		checks["storage"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(storageStart).String(),
			"cats":          count,
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		h.recordHealthCheckError("response", err)

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// recordHealthCheckError records a New Relic custom event if New Relic is enabled.
func (h *HealthHandler) recordHealthCheckError(checkType string, err error) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":    checkType,
			"operation":     "health_check",
			"error_message": err.Error(),
		})
	}
}
