// @title                       Shipment Tracker API
// @version                     1.0
// @description                 Quote carrier rates, book shipments and follow their simulated progress.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/api"
	"github.com/99minutos/shipment-tracker/internal/api/handler"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
	"github.com/99minutos/shipment-tracker/internal/core/service"
	"github.com/99minutos/shipment-tracker/internal/infrastructure/db/memory"
	"github.com/99minutos/shipment-tracker/internal/infrastructure/db/mongo"
	"github.com/99minutos/shipment-tracker/internal/infrastructure/db/redis"
	"github.com/99minutos/shipment-tracker/internal/infrastructure/geocoder"
	"github.com/99minutos/shipment-tracker/internal/infrastructure/messaging"
	"github.com/99minutos/shipment-tracker/internal/infrastructure/queue"
	"github.com/99minutos/shipment-tracker/internal/infrastructure/random"
	"github.com/99minutos/shipment-tracker/internal/pkg/config"
	"github.com/99minutos/shipment-tracker/pkg/logger"
)

const (
	dedupTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

// publisher is an EventPublisher that must be flushed on shutdown.
type publisher interface {
	ports.EventPublisher
	Close() error
}

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "shipment-tracker",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("shipment-tracker stopped with error")
	}
	log.Info().Msg("shipment-tracker stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	health := map[string]handler.PingFunc{}

	// --- Storage ---
	var (
		shipmentRepo ports.ShipmentRepository
		eventRepo    ports.EventRepository
	)
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			if err := mongo.Disconnect(client, shutdownTimeout); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		}()

		shipments := mongo.NewShipmentRepository(db)
		events := mongo.NewEventRepository(db)
		if err := shipments.EnsureIndexes(ctx); err != nil {
			return err
		}
		if err := events.EnsureIndexes(ctx); err != nil {
			return err
		}
		shipmentRepo, eventRepo = shipments, events
		health["mongodb"] = mongo.Ping(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb storage")
	default:
		shipmentRepo, eventRepo = memory.NewShipmentRepository(), memory.NewEventRepository()
		log.Info().Msg("using in-memory storage")
	}

	if cfg.Storage.Seed {
		n, err := memory.Seed(ctx, shipmentRepo)
		if err != nil {
			return err
		}
		log.Info().Int("inserted", n).Msg("demo shipments seeded")
	}

	// --- Redis: dedup and geocode cache ---
	var (
		dedup ports.DedupChecker = memory.NewDedupChecker(dedupTTL)
		cache ports.GeocodeCache
	)
	if cfg.Redis.Enabled {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()

		dedup = redis.NewDedupChecker(rdb, dedupTTL)
		cache = redis.NewGeocodeCache(rdb)
		health["redis"] = redis.Ping(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis enabled")
	}

	// --- Notifications ---
	var pub publisher = messaging.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := messaging.NewKafkaPublisher(messaging.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger.Component("kafka"))
		if err != nil {
			return err
		}
		pub = kp
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("kafka publisher enabled")
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Error().Err(err).Msg("publisher close")
		}
	}()

	// --- Core services ---
	rnd := random.New(cfg.Tracking.Seed)
	nominatim := geocoder.NewNominatim(geocoder.Config{
		BaseURL:       cfg.Geocoder.URL,
		UserAgent:     cfg.Geocoder.UserAgent,
		Timeout:       cfg.Geocoder.Timeout,
		RatePerSecond: cfg.Geocoder.RateLimit,
	})
	geocoding := service.NewGeocodingService(nominatim, cache, cfg.Redis.CacheTTL, logger.Component("geocoder"))
	eventService := service.NewEventService(shipmentRepo, eventRepo, dedup, pub, logger.Component("events"))

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	dispatcher := queue.NewDispatcher(cfg.Tracking.Workers, eventService, logger.Component("dispatcher"))
	dispatcher.Start(workerCtx)

	e := api.NewRouter(api.Dependencies{
		Shipments:      service.NewShipmentService(shipmentRepo, geocoding, pub, rnd, logger.Component("shipments")),
		Tracking:       service.NewTrackingService(shipmentRepo, service.NewSimulator(rnd), geocoding, dispatcher, pub, logger.Component("tracking")),
		Events:         eventService,
		Rates:          service.NewRateQuoter(rnd, logger.Component("rates")),
		Geocoding:      geocoding,
		Dispatcher:     dispatcher,
		Health:         health,
		JWTSecret:      cfg.JWTSecret,
		StreamInterval: cfg.Tracking.Interval,
		Log:            logger.Component("http"),
	})

	// --- HTTP server ---
	// Request contexts end with the signal so open tracking streams close on shutdown.
	e.Server.BaseContext = func(net.Listener) context.Context { return ctx }
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server forced shutdown")
	}

	cancelWorkers()
	dispatcher.Wait()
	return nil
}
