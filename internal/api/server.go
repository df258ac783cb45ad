// Package api exposes feed import over HTTP.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/MichalMitros/feed-importer/internal/discovery"
	"github.com/MichalMitros/feed-importer/internal/importer"
	"github.com/MichalMitros/feed-importer/internal/mapping"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Scheduler --filename scheduler.go
//go:generate mockery --name Batches --filename batches.go
//go:generate mockery --name ConnectionChecker --filename connectionchecker.go

// Fetcher fetches feed file.
type Fetcher interface {
	FetchFile(ctx context.Context, url string) (io.ReadCloser, error)
}

// Scheduler queues imports and reports their jobs.
type Scheduler interface {
	Schedule(ctx context.Context, req *models.ImportRequest) (*models.ImportJob, error)
	Job(ctx context.Context, storeID, jobID string) (*models.ImportJob, error)
}

// Batches gives access to staged import batches.
type Batches interface {
	Batch(ctx context.Context, storeID, batchID string) (*models.ImportBatch, error)
	Preview(ctx context.Context, storeID, batchID string, query models.PreviewQuery) (*models.Page, error)
	Commit(ctx context.Context, storeID, batchID string, itemIDs []string) (*importer.CommitResult, error)
	Cancel(ctx context.Context, storeID, batchID string) error
}

// ConnectionChecker verifies marketplace connection credentials.
type ConnectionChecker interface {
	CheckConnection(ctx context.Context, storeID, connectionID string) error
}

// Option is custom configuration of Server.
type Option func(s *Server)

// Server routes HTTP requests to import services.
type Server struct {
	fetcher        Fetcher
	scheduler      Scheduler
	batches        Batches
	connections    ConnectionChecker
	discoverer     *discovery.Discoverer
	mainScorer     *mapping.Scorer
	variantScorer  *mapping.Scorer
	logger         *zerolog.Logger
	allowedOrigins []string
	router         *gin.Engine
}

// NewServer returns new Server.
func NewServer(
	fetcher Fetcher,
	scheduler Scheduler,
	batches Batches,
	connections ConnectionChecker,
	ops ...Option,
) *Server {
	nop := zerolog.Nop()

	s := &Server{
		fetcher:        fetcher,
		scheduler:      scheduler,
		batches:        batches,
		connections:    connections,
		discoverer:     discovery.NewDiscoverer(),
		mainScorer:     mapping.NewScorer(mapping.MainFields),
		variantScorer:  mapping.NewScorer(mapping.VariantFields),
		logger:         &nop,
		allowedOrigins: []string{"*"},
	}

	for _, op := range ops {
		op(s)
	}

	s.router = s.routes()

	return s
}

// WithLogger sets Server's logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithAllowedOrigins sets origins allowed to send cross-origin requests.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithScorerConfig sets thresholds of mapping suggestions.
func WithScorerConfig(cfg mapping.Config) Option {
	return func(s *Server) {
		s.mainScorer = mapping.NewScorer(mapping.MainFields, mapping.WithConfig(cfg))
		s.variantScorer = mapping.NewScorer(mapping.VariantFields, mapping.WithConfig(cfg))
	}
}

// Handler returns http handler serving API routes.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         600,
	}).Handler(s.router)
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(s.logger), recovery(s.logger))

	router.GET("/health", s.health)

	stores := router.Group("/api/v1/stores/:storeId")
	{
		xmlImport := stores.Group("/xml-import")
		xmlImport.POST("/discover", s.discover)
		xmlImport.POST("/suggest-mapping", s.suggestMapping)
		xmlImport.POST("", s.startImport)
		xmlImport.GET("/jobs/:jobId", s.job)
		xmlImport.GET("/batches/:batchId", s.batch)
		xmlImport.GET("/batches/:batchId/items", s.batchItems)
		xmlImport.POST("/batches/:batchId/cancel", s.cancelBatch)
		xmlImport.POST("/commit", s.commit)

		stores.POST("/marketplaces/:connectionId/check", s.checkConnection)
	}

	return router
}
