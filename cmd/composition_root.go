package cmd

import (
	"fmt"
	"log/slog"

	"sorting/internal/adapters/in/http"
	"sorting/internal/adapters/out/metrics"
	"sorting/internal/core/application/usecases/queries"
	"sorting/internal/core/domain/services"
	"sorting/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	registry *prometheus.Registry
	recorder ports.SortRecorder
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.NewPrometheusRecorder(registry)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create sort recorder: %w", err)
	}

	return CompositionRoot{
		config:   config,
		logger:   logger,
		registry: registry,
		recorder: recorder,
	}, nil
}

func (c *CompositionRoot) CreatePackageSorter() services.PackageSorter {
	return services.NewPackageSorter()
}

func (c *CompositionRoot) CreateSortPackageQueryHandler() queries.SortPackageQueryHandler {
	return queries.NewSortPackageQueryHandler(c.CreatePackageSorter(), c.recorder, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.CreateSortPackageQueryHandler())
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return http.NewRouter(c.CreateHTTPServer(), http.RouterConfig{
		Gatherer:       c.registry,
		SwaggerEnabled: c.config.SwaggerEnabled,
		Logger:         c.logger,
	})
}
