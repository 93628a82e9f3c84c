package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/shipment-tracker/docs"
	"github.com/99minutos/shipment-tracker/internal/api/handler"
	"github.com/99minutos/shipment-tracker/internal/api/middleware"
	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Shipments  ports.ShipmentService
	Tracking   ports.TrackingService
	Events     ports.EventService
	Rates      ports.RateQuoter
	Geocoding  ports.GeocodingService
	Dispatcher handler.EventDispatcher

	// Health maps dependency names to readiness probes.
	Health map[string]handler.PingFunc

	JWTSecret      string
	StreamInterval time.Duration
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// HTTP metrics go to a per-router registry; /metrics also gathers the
	// promauto metrics from the default one.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: reg,
	}))

	// --- Dependencies ---
	shipmentHandler := handler.NewShipmentHandler(deps.Shipments, deps.Tracking, deps.Events, deps.StreamInterval, deps.Log)
	rateHandler := handler.NewRateHandler(deps.Rates)
	cityHandler := handler.NewCityHandler(deps.Geocoding)
	eventHandler := handler.NewEventHandler(deps.Dispatcher)
	healthHandler := handler.NewHealthHandler(deps.Health)

	// --- Health probes and tooling (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, reg},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Shipments ---
	v1.GET("/shipments", shipmentHandler.List)
	v1.POST("/shipments", shipmentHandler.Create)
	v1.GET("/shipments/:id", shipmentHandler.Get)
	v1.GET("/shipments/:id/track", shipmentHandler.Track)
	v1.GET("/shipments/:id/route", shipmentHandler.Route)
	v1.GET("/shipments/:id/stream", shipmentHandler.Stream)
	v1.GET("/shipments/:id/events", shipmentHandler.Events)

	// --- Rates and cities ---
	v1.POST("/rates", rateHandler.Quote)
	v1.GET("/cities", cityHandler.Search)
	v1.GET("/cities/coordinates", cityHandler.Coordinates)

	// --- Status events (carriers and operators only) ---
	events := v1.Group("/events",
		middleware.Auth(deps.JWTSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleCarrier),
	)
	events.POST("", eventHandler.Receive)
	events.POST("/batch", eventHandler.ReceiveBatch)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Status >= 400:
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
