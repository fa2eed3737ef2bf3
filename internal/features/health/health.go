package health

import (
	"github.com/aouiniamine/hello-service/internal/features/health/controller"
	"github.com/aouiniamine/hello-service/internal/features/health/service"
	"github.com/labstack/echo/v4"
)

type Feature struct {
	Controller *controller.HealthController
	Service    service.HealthService
}

func New() *Feature {
	svc := service.New()
	ctrl := controller.New(svc)

	return &Feature{
		Controller: ctrl,
		Service:    svc,
	}
}

func (f *Feature) RegisterRoutes(e *echo.Echo) {
	f.Controller.RegisterRoutes(e)
}
