package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MichalMitros/feed-importer/internal/category"
	"github.com/MichalMitros/feed-importer/internal/config"
	"github.com/MichalMitros/feed-importer/internal/fetcher"
	"github.com/MichalMitros/feed-importer/internal/handler"
	"github.com/MichalMitros/feed-importer/internal/importer"
	"github.com/MichalMitros/feed-importer/internal/mapping"
	"github.com/MichalMitros/feed-importer/internal/marketplace/trendyol"
	"github.com/MichalMitros/feed-importer/internal/platform/cache"
	"github.com/MichalMitros/feed-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/feed-importer/internal/platform/storage"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when fetching feed files.
	UserAgent = "feed-importer/1.0.0"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "feed-importer-worker").Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't load config")
	}
	logger = logger.Level(cfg.Level())

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	if err := conn.DeclareTopology(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare RabbitMQ topology")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}
	pg := storage.NewPostgres(pgDB)

	lookupCache, closeCache, err := cache.Open(ctx, cfg.Cache.RedisURL, cfg.Cache.Prefix, cfg.Cache.CleanupInterval)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open cache")
	}

	feedFetcher := fetcher.NewFetcher(
		&http.Client{Timeout: cfg.Import.FetchTimeout},
		UserAgent,
		fetcher.WithMaxAttempts(cfg.Import.FetchAttempts),
		fetcher.WithBaseDelay(cfg.Import.RetryBaseDelay),
	)

	marketplace := trendyol.NewService(
		pg,
		trendyol.NewClientFactory(feedFetcher, cfg.Trendyol.BaseURL, cfg.Trendyol.RPS, cfg.Trendyol.Burst),
		lookupCache,
		cfg.Cache.TTL,
	)

	scorerConfig := mapping.DefaultConfig()
	scorerConfig.MinScore = cfg.Import.MinScore

	processor := importer.NewProcessor(
		feedFetcher,
		pg,
		category.NewResolver(pg),
		cfg.Import.BatchSize,
		importer.WithMarketplaceResolver(marketplace),
		importer.WithMaxCommitItems(cfg.Import.MaxCommitItems),
		importer.WithScorerConfig(scorerConfig),
		importer.WithLogger(&logger),
	)

	han := handler.NewHandler(conn, processor, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue, cfg.RabbitMQ.Prefetch)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("feed importer worker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	if err := closeCache(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close cache")
	}

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
