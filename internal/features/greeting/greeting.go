package greeting

import (
	"github.com/aouiniamine/hello-service/internal/features/greeting/controller"
	"github.com/aouiniamine/hello-service/internal/features/greeting/service"
	"github.com/labstack/echo/v4"
)

type Feature struct {
	Controller *controller.GreetingController
}

func New() *Feature {
	svc := service.New()
	ctrl := controller.New(svc)

	return &Feature{
		Controller: ctrl,
	}
}

func (f *Feature) RegisterRoutes(e *echo.Echo) {
	f.Controller.RegisterRoutes(e)
}
