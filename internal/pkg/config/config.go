package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Storage  StorageConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Geocoder GeocoderConfig
	Tracking TrackingConfig
	Kafka    KafkaConfig
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER,      default=memory"`
	Seed   bool   `env:"SEED_DEMO_SHIPMENTS, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shipment_tracker"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED,     default=false"`
	Addr     string        `env:"REDIS_ADDR,        default=localhost:6379"`
	DB       int           `env:"REDIS_DB,          default=0"`
	CacheTTL time.Duration `env:"GEOCODE_CACHE_TTL, default=24h"`
}

type GeocoderConfig struct {
	URL       string        `env:"GEOCODER_URL,        default=https://nominatim.openstreetmap.org"`
	UserAgent string        `env:"GEOCODER_USER_AGENT, default=shipment-tracker/1.0"`
	Timeout   time.Duration `env:"GEOCODER_TIMEOUT,    default=10s"`
	RateLimit float64       `env:"GEOCODER_RATE_LIMIT, default=1"`
}

type TrackingConfig struct {
	Interval time.Duration `env:"TRACKING_INTERVAL,  default=5s"`
	Workers  int           `env:"DISPATCHER_WORKERS, default=8"`
	Seed     uint64        `env:"SIMULATION_SEED,    default=0"`
}

type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS"`
	Topic   string   `env:"KAFKA_TOPIC, default=shipment-notifications"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageMongo:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q (want %s or %s)", c.Storage.Driver, StorageMemory, StorageMongo)
	}
	if c.JWTSecret == "" && c.IsProduction() {
		return fmt.Errorf("config: JWT_SECRET is required in production")
	}
	if c.Tracking.Interval <= 0 {
		return fmt.Errorf("config: TRACKING_INTERVAL must be positive")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
