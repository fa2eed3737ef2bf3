package controller

import (
	"net/http"

	"github.com/aouiniamine/hello-service/internal/features/health/service"
	"github.com/aouiniamine/hello-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type HealthController struct {
	service service.HealthService
}

func New(svc service.HealthService) *HealthController {
	return &HealthController{
		service: svc,
	}
}

func (h *HealthController) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

// Health godoc
// @Summary Liveness check
// @Description Reports that the process is running
// @Tags health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Failure 500 {object} response.Response
// @Router /health [get]
func (h *HealthController) Health(c echo.Context) error {
	status, err := h.service.Liveness(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "failed to check health")
	}

	return c.JSON(http.StatusOK, status)
}

// Ready godoc
// @Summary Readiness check
// @Description Reports that the service can accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Failure 503 {object} response.Response
// @Router /ready [get]
func (h *HealthController) Ready(c echo.Context) error {
	status, err := h.service.Readiness(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "service is not ready")
	}

	return c.JSON(http.StatusOK, status)
}
