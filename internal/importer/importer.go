// Package importer stages feed rows as reviewable import batches and commits reviewed rows into the catalog.
package importer

import (
	"context"
	"io"
	"time"

	"github.com/MichalMitros/feed-importer/internal/discovery"
	"github.com/MichalMitros/feed-importer/internal/mapping"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name CategoryResolver --filename categoryresolver.go
//go:generate mockery --name MarketplaceResolver --filename marketplaceresolver.go

const (
	defaultMaxCommitItems = 1000
	defaultPageLimit      = 20
	maxPageLimit          = 100
	maxProductImages      = 10
	maxReportedSkips      = 100
)

// Fetcher fetches feed file.
type Fetcher interface {
	FetchFile(ctx context.Context, url string) (io.ReadCloser, error)
}

// CategoryResolver resolves free-text category path to category id, creating missing categories.
// Name without breadcrumb separator resolves to root category.
type CategoryResolver interface {
	ResolvePath(ctx context.Context, storeID, path string) (string, error)
}

// MarketplaceResolver resolves brand and category names to marketplace ids.
// Zero id means the name is unknown to the marketplace.
type MarketplaceResolver interface {
	BrandID(ctx context.Context, storeID, brand string) (int64, error)
	CategoryID(ctx context.Context, storeID, category string) (int64, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is import jobs, batches and catalog storage.
type Storage interface {
	// StartJob marks job as running. Finished jobs are returned untouched.
	StartJob(ctx context.Context, jobID string, startedAt time.Time) (*models.ImportJob, error)
	// FinishJob stores job's final status and statistics.
	FinishJob(ctx context.Context, job *models.ImportJob) error
	// StageBatch creates batch if needed and clears items of not yet reviewed batch.
	StageBatch(ctx context.Context, batch *models.ImportBatch) (*models.ImportBatch, error)
	// FinishStaging sets batch's status and total number of staged items.
	FinishStaging(ctx context.Context, batchID string, total int32, status models.BatchStatus) error
	// GetBatch returns store's batch.
	GetBatch(ctx context.Context, storeID, batchID string) (*models.ImportBatch, error)
	// SetBatchStatus moves batch to status when its current status is one of from.
	SetBatchStatus(ctx context.Context, batchID string, status models.BatchStatus, from ...models.BatchStatus) error
	// InsertImportItems stores staged items.
	InsertImportItems(ctx context.Context, items []models.ImportItem) error
	// ListImportItems returns page of batch items.
	ListImportItems(ctx context.Context, batchID string, query models.PreviewQuery) (*models.Page, error)
	// GetImportItems returns batch items with given ids.
	GetImportItems(ctx context.Context, batchID string, ids []string) ([]models.ImportItem, error)
	// ImportItemIDs returns ids of all batch items.
	ImportItemIDs(ctx context.Context, batchID string) ([]string, error)
	// DeleteImportItems removes batch items and returns number of items left.
	// Batch which is left without items is completed unless it was cancelled or failed.
	DeleteImportItems(ctx context.Context, batchID string, ids []string) (int, error)
	// SaveProduct upserts product with its images and listing placeholders.
	SaveProduct(ctx context.Context, product *models.Product, connectionIDs []string) (string, error)
	// ActiveConnections returns store's active marketplace connections.
	ActiveConnections(ctx context.Context, storeID string) ([]models.MarketplaceConnection, error)
}

// Option is custom configuration of Processor.
type Option func(p *Processor)

// Processor stages feed rows in import batches and commits them into catalog.
type Processor struct {
	fetcher        Fetcher
	storage        Storage
	categories     CategoryResolver
	marketplace    MarketplaceResolver
	batchSize      uint
	maxCommitItems int
	clock          Clock
	logger         *zerolog.Logger
	discoverer     *discovery.Discoverer
	mainScorer     *mapping.Scorer
	variantScorer  *mapping.Scorer
}

// NewProcessor returns new Processor. Staged items are stored in batches of batchSize.
func NewProcessor(
	fetcher Fetcher,
	storage Storage,
	categories CategoryResolver,
	batchSize uint,
	ops ...Option,
) *Processor {
	nop := zerolog.Nop()

	p := &Processor{
		fetcher:        fetcher,
		storage:        storage,
		categories:     categories,
		batchSize:      max(batchSize, 1),
		maxCommitItems: defaultMaxCommitItems,
		clock:          systemClock{},
		logger:         &nop,
		discoverer:     discovery.NewDiscoverer(),
		mainScorer:     mapping.NewScorer(mapping.MainFields),
		variantScorer:  mapping.NewScorer(mapping.VariantFields),
	}

	for _, op := range ops {
		op(p)
	}

	return p
}

// WithClock sets Processor's custom Clock.
func WithClock(c Clock) Option {
	return func(p *Processor) {
		p.clock = c
	}
}

// WithMarketplaceResolver sets resolver filling missing marketplace brand and category ids of staged rows.
func WithMarketplaceResolver(r MarketplaceResolver) Option {
	return func(p *Processor) {
		p.marketplace = r
	}
}

// WithMaxCommitItems sets maximum number of items committed in single call.
func WithMaxCommitItems(n int) Option {
	return func(p *Processor) {
		p.maxCommitItems = n
	}
}

// WithLogger sets Processor's logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// WithScorerConfig sets thresholds used for automatic mapping of imports started without field mapping.
func WithScorerConfig(cfg mapping.Config) Option {
	return func(p *Processor) {
		p.mainScorer = mapping.NewScorer(mapping.MainFields, mapping.WithConfig(cfg))
		p.variantScorer = mapping.NewScorer(mapping.VariantFields, mapping.WithConfig(cfg))
	}
}
