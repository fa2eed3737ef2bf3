package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Feature exposes the collectors of a registry in the Prometheus text format.
type Feature struct {
	gatherer prometheus.Gatherer
}

func New(gatherer prometheus.Gatherer) *Feature {
	return &Feature{gatherer: gatherer}
}

func (f *Feature) RegisterRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(f.gatherer, promhttp.HandlerOpts{})))
}
