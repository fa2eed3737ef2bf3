package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aouiniamine/hello-service/internal/config"
	appmiddleware "github.com/aouiniamine/hello-service/internal/middleware"
	"github.com/aouiniamine/hello-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Server struct {
	echo     *echo.Echo
	config   *config.Config
	registry *prometheus.Registry
}

func New(cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.RequestID())
	e.Use(middleware.CORS())

	s := &Server{
		echo:   e,
		config: cfg,
	}

	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		e.Use(appmiddleware.Metrics(s.registry, cfg.Metrics.Namespace))
	}

	return s
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Registry returns the metrics registry, or nil when metrics are disabled.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%s", s.config.Server.Host, s.config.Server.Port)
}

func (s *Server) Start() error {
	return s.echo.Start(s.Addr())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) RegisterRoutes(register func(e *echo.Echo)) {
	register(s.echo)
}

// errorHandler keeps echo's status codes (404 for unknown paths, 405 for
// unknown methods) and renders them in the shared error envelope.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = response.FromStatus(c, status, message)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
