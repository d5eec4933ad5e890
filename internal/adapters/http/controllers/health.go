package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/products-api/internal/core/logger"
)

const (
	healthCheckTimeout = 2 * time.Second

	healthOK          = "ok"
	healthDegraded    = "degraded"
	healthUnavailable = "unavailable"
)

type HealthResponse struct {
	Status   string            `json:"status" example:"ok"`
	Services map[string]string `json:"services" example:"store:ok,redis:ok,rabbitmq:ok"`
}

// HealthChecker checks one dependency. Check must honour ctx.
type HealthChecker struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthController struct {
	checkers []HealthChecker
}

func NewHealthController(checkers []HealthChecker) *HealthController {
	return &HealthController{checkers: checkers}
}

// Health godoc
// @Summary     Health check
// @Description Checks the store and, when enabled, Redis and RabbitMQ
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /api/v1/health [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	services := h.checkAll(ctx)

	status, code := healthOK, http.StatusOK
	for _, state := range services {
		if state != healthOK {
			status, code = healthDegraded, http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, HealthResponse{Status: status, Services: services})
}

// checkAll runs every check concurrently. Failure details go to the log only.
func (h *HealthController) checkAll(ctx context.Context) map[string]string {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		services = make(map[string]string, len(h.checkers))
	)

	for _, checker := range h.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			state := healthOK
			if err := checker.Check(ctx); err != nil {
				logger.Warn(ctx, "health: dependency check failed", map[string]any{
					"service": checker.Name,
					"error":   err.Error(),
				})
				state = healthUnavailable
			}

			mu.Lock()
			services[checker.Name] = state
			mu.Unlock()
		}()
	}
	wg.Wait()

	return services
}
