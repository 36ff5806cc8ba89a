// Package http exposes the sorting core over HTTP using echo.
package http

import (
	"log/slog"
	"net/http"

	_ "sorting/internal/adapters/in/http/docs" // registers the swagger document
	"sorting/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig selects the optional endpoints of the router.
type RouterConfig struct {
	Gatherer       prometheus.Gatherer
	SwaggerEnabled bool
	Logger         *slog.Logger
}

// NewRouter wires middleware and routes around server.
//
// Routes:
//   - GET  /health
//   - GET  /metrics (when a Gatherer is configured)
//   - GET  /swagger/* (when SwaggerEnabled)
//   - GET  /api/v1/packages/sort
//   - POST /api/v1/packages/sort
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	validator, err := NewRequestValidator()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(dropInvalidRequestID)
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return kernel.NewRequestID().String()
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogRequestID: true,
		LogLatency:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "Request handled",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"request_id", v.RequestID,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	if cfg.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api/v1", validator.Middleware())
	api.GET("/packages/sort", server.GetSortPackage)
	api.POST("/packages/sort", server.SortPackage)

	return e, nil
}

// dropInvalidRequestID removes a client supplied X-Request-ID that is not a UUID,
// so the request ID middleware generates the one that every log line carries.
func dropInvalidRequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header
		if rid := header.Get(echo.HeaderXRequestID); rid != "" {
			if _, err := kernel.RequestIDFromString(rid); err != nil {
				header.Del(echo.HeaderXRequestID)
			}
		}
		return next(c)
	}
}
