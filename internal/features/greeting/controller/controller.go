package controller

import (
	"net/http"

	"github.com/aouiniamine/hello-service/internal/features/greeting/service"
	"github.com/labstack/echo/v4"
)

type GreetingController struct {
	service service.GreetingService
}

func New(svc service.GreetingService) *GreetingController {
	return &GreetingController{service: svc}
}

func (g *GreetingController) RegisterRoutes(e *echo.Echo) {
	e.GET("/", g.Hello)
}

// Hello godoc
// @Summary Greeting
// @Description Returns a plain-text greeting
// @Tags greeting
// @Produce plain
// @Success 200 {string} string "Hello, World!"
// @Router / [get]
func (g *GreetingController) Hello(c echo.Context) error {
	return c.String(http.StatusOK, g.service.Greet())
}
