// Package config loads configuration of feed importer services from environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	RabbitMQ RabbitMQ
	HTTP     HTTP
	Import   Import
	Cache    Cache
	Trendyol Trendyol
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"feed-importer-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"feed-importer.imports"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"import"`
	Prefetch   int    `env:"RABBITMQ_PREFETCH" envDefault:"2"`
}

// HTTP holds HTTP server configuration.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"HTTP_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ReleaseMode     bool          `env:"HTTP_RELEASE_MODE" envDefault:"true"`
}

// Import holds feed fetching and import processing configuration.
type Import struct {
	BatchSize      uint          `env:"IMPORT_BATCH_SIZE" envDefault:"500"`
	MaxCommitItems int           `env:"IMPORT_MAX_COMMIT_ITEMS" envDefault:"1000"`
	FetchTimeout   time.Duration `env:"IMPORT_FETCH_TIMEOUT" envDefault:"60s"`
	FetchAttempts  int           `env:"IMPORT_FETCH_ATTEMPTS" envDefault:"4"`
	RetryBaseDelay time.Duration `env:"IMPORT_RETRY_BASE_DELAY" envDefault:"2s"`
	MinScore       float64       `env:"IMPORT_MAPPING_MIN_SCORE" envDefault:"0.35"`
}

// Cache holds cache configuration. Redis is used when its url is set, in-memory cache otherwise.
type Cache struct {
	RedisURL        string        `env:"CACHE_REDIS_URL"`
	Prefix          string        `env:"CACHE_PREFIX" envDefault:"feed-importer"`
	TTL             time.Duration `env:"CACHE_TTL" envDefault:"6h"`
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"10m"`
}

// Trendyol holds Trendyol API configuration.
type Trendyol struct {
	BaseURL string  `env:"TRENDYOL_BASE_URL" envDefault:"https://apigw.trendyol.com"`
	RPS     float64 `env:"TRENDYOL_RPS" envDefault:"5"`
	Burst   int     `env:"TRENDYOL_BURST" envDefault:"5"`
}

// Load reads configuration from environment. Variables from .env file are loaded first when the file exists.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("can't load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("can't parse env variables: %w", err)
	}

	return &cfg, nil
}

// Level returns configured log level, info when it can't be parsed.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}
