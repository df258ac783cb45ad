package importer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MichalMitros/feed-importer/internal/feed"
	"github.com/MichalMitros/feed-importer/internal/mapping"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// stagingStats are results of staging feed rows.
type stagingStats struct {
	total   int32
	staged  int32
	skipped int32
	skips   []models.Skip
}

// Run fetches feed, stages its rows in request's batch and records outcome on request's job.
// Running the same request again replaces rows staged by the previous run unless
// the batch was already reviewed, and finished jobs are not run again.
// Imports which aren't selective are committed as a whole right after staging.
func (p *Processor) Run(ctx context.Context, req models.ImportRequest) error {
	job, err := p.storage.StartJob(ctx, req.JobID, *p.clock.Now())
	if err != nil {
		return fmt.Errorf("can't start import: %w", err)
	}

	if job.Status != models.JobRunning {
		p.logger.Debug().
			Str("jobId", job.ID).
			Str("status", string(job.Status)).
			Msg("import job already finished")
		return nil
	}

	batch, err := p.storage.StageBatch(ctx, &models.ImportBatch{
		ID:                  req.BatchID,
		StoreID:             req.StoreID,
		SourceURL:           req.XMLURL,
		Status:              models.BatchImporting,
		SkipMarketplaceSync: req.SkipMarketplaceSync,
	})
	if err != nil {
		return p.finishJob(ctx, job, fmt.Errorf("can't stage batch: %w", err))
	}

	if batch.Status != models.BatchImporting {
		p.logger.Debug().
			Str("batchId", batch.ID).
			Str("status", string(batch.Status)).
			Msg("import batch already reviewed")
		return p.finishJob(ctx, job, nil)
	}

	stats, err := p.stage(ctx, req)

	job.TotalItems = stats.total
	job.StagedItems = stats.staged
	job.SkippedItems = stats.skipped
	job.Skips = stats.skips

	if err != nil {
		if stagingErr := p.storage.FinishStaging(context.WithoutCancel(ctx), batch.ID, stats.staged, models.BatchFailed); stagingErr != nil {
			err = fmt.Errorf("%w (can't mark batch as failed: %w)", err, stagingErr)
		}
		return p.finishJob(ctx, job, err)
	}

	// nothing to review when every row was skipped.
	stagedStatus := models.BatchPending
	if stats.staged == 0 {
		stagedStatus = models.BatchCompleted
	}

	if err := p.storage.FinishStaging(ctx, batch.ID, stats.staged, stagedStatus); err != nil {
		return p.finishJob(ctx, job, fmt.Errorf("can't finish staging: %w", err))
	}

	if !req.SelectiveImport && stats.staged > 0 {
		batch.Status = models.BatchPending
		if err := p.commitAll(ctx, batch); err != nil {
			return p.finishJob(ctx, job, fmt.Errorf("can't commit staged items: %w", err))
		}
	}

	return p.finishJob(ctx, job, nil)
}

func (p *Processor) stage(ctx context.Context, req models.ImportRequest) (stagingStats, error) {
	xmlFile, err := p.fetcher.FetchFile(ctx, req.XMLURL)
	if err != nil {
		return stagingStats{}, fmt.Errorf("can't fetch feed file: %w", err)
	}
	defer xmlFile.Close()

	doc, err := feed.Decode(ctx, xmlFile)
	if err != nil {
		return stagingStats{}, fmt.Errorf("can't decode feed file: %w", err)
	}

	items := feed.Items(doc)
	if len(items) == 0 {
		return stagingStats{}, ErrNoItems
	}

	fieldMapping, variantMapping := req.FieldMapping, req.VariantMapping
	if len(fieldMapping) == 0 {
		fieldMapping, variantMapping = p.suggestMapping(items, variantMapping)
		p.logger.Debug().
			Str("jobId", req.JobID).
			Interface("fieldMapping", fieldMapping).
			Interface("variantMapping", variantMapping).
			Msg("import started without mapping, using suggested one")
	}

	builder := rowBuilder{
		batchID:        req.BatchID,
		fieldMapping:   fieldMapping,
		variantMapping: variantMapping,
	}

	stats, err := p.stageRows(ctx, req.StoreID, items, builder)
	stats.total = int32(len(items))

	return stats, err
}

// suggestMapping derives mapping from feed's items. Variant mapping is derived only when not provided.
func (p *Processor) suggestMapping(items []*feed.Node, variantMapping map[string]string) (map[string]string, map[string]string) {
	discovered := p.discoverer.DiscoverItems(items)

	toMapping := func(suggestions []mapping.Suggestion) map[string]string {
		m := make(map[string]string, len(suggestions))
		for _, s := range suggestions {
			m[s.Field] = s.Tag
		}
		return m
	}

	fieldMapping := toMapping(p.mainScorer.Suggest(discovered.Tags, discovered.SampleValues))

	if len(variantMapping) == 0 {
		// tags claimed by main fields aren't offered as variant attributes.
		claimed := lo.Values(fieldMapping)
		tags := lo.Filter(discovered.Tags, func(tag string, _ int) bool {
			return !lo.Contains(claimed, tag)
		})
		variantMapping = toMapping(p.variantScorer.Suggest(tags, discovered.SampleValues))
	}

	return fieldMapping, variantMapping
}

// stageRows builds rows from items and stores them in batches.
// Builds, batching and storing run concurrently.
func (p *Processor) stageRows(
	ctx context.Context,
	storeID string,
	items []*feed.Node,
	builder rowBuilder,
) (stagingStats, error) {
	rows := make(chan row)
	batches := make(chan []models.ImportItem)
	stats := stagingStats{}
	staged := int32(0)

	errGroup, egCtx := errgroup.WithContext(ctx)

	// build rows.
	errGroup.Go(func() error {
		defer close(rows)

		for ix, item := range items {
			r := builder.build(ix, item)
			if r.skip == nil {
				p.resolveMarketplaceIDs(egCtx, storeID, &r.item)
			}

			select {
			case <-egCtx.Done():
				return egCtx.Err()
			case rows <- r:
			}
		}

		return nil
	})

	// filter skipped rows and batch the rest.
	errGroup.Go(func() error {
		defer close(batches)

		skipped, skips, err := p.filterRows(egCtx, rows, batches)
		stats.skipped = skipped
		stats.skips = skips
		if err != nil {
			return fmt.Errorf("can't filter rows: %w", err)
		}

		return nil
	})

	// store rows.
	errGroup.Go(func() error {
		for batch := range batches {
			if err := p.storage.InsertImportItems(egCtx, batch); err != nil {
				return fmt.Errorf("can't insert import items: %w", err)
			}
			_ = atomic.AddInt32(&staged, int32(len(batch)))
		}

		return nil
	})

	err := errGroup.Wait()
	stats.staged = staged

	return stats, err
}

func (p *Processor) filterRows(
	ctx context.Context,
	input <-chan row,
	output chan<- []models.ImportItem,
) (int32, []models.Skip, error) {
	skipped := int32(0)
	skips := []models.Skip{}
	batch := make([]models.ImportItem, 0, p.batchSize)

	for r := range input {
		if r.skip != nil {
			skipped++
			if len(skips) < maxReportedSkips {
				skips = append(skips, *r.skip)
			}
			continue
		}

		r.item.ID = uuid.NewString()
		batch = append(batch, r.item)
		if len(batch) == int(p.batchSize) {
			select {
			case <-ctx.Done():
				return skipped, skips, ctx.Err()
			case output <- batch:
			}
			batch = make([]models.ImportItem, 0, p.batchSize)
		}
	}

	if len(batch) > 0 {
		select {
		case <-ctx.Done():
			return skipped, skips, ctx.Err()
		case output <- batch:
		}
	}

	return skipped, skips, nil
}

// resolveMarketplaceIDs fills missing marketplace ids from brand and category names.
// Resolution is best effort, failures are only logged.
func (p *Processor) resolveMarketplaceIDs(ctx context.Context, storeID string, item *models.ImportItem) {
	if p.marketplace == nil {
		return
	}

	if item.MarketplaceBrandID == nil && item.Brand != "" {
		id, err := p.marketplace.BrandID(ctx, storeID, item.Brand)
		if err != nil && !errors.Is(err, context.Canceled) {
			p.logger.Warn().Err(err).Str("brand", item.Brand).Msg("can't resolve marketplace brand id")
		}
		if id > 0 {
			item.MarketplaceBrandID = &id
		}
	}

	if item.MarketplaceCategoryID == nil && item.CategoryName != "" {
		id, err := p.marketplace.CategoryID(ctx, storeID, item.CategoryName)
		if err != nil && !errors.Is(err, context.Canceled) {
			p.logger.Warn().Err(err).Str("category", item.CategoryName).Msg("can't resolve marketplace category id")
		}
		if id > 0 {
			item.MarketplaceCategoryID = &id
		}
	}
}

func (p *Processor) finishJob(ctx context.Context, job *models.ImportJob, status error) error {
	job.Status = models.JobCompleted
	if status != nil {
		job.Status = models.JobFailed
		job.StatusMessage = lo.ToPtr(status.Error())
	}
	job.FinishedAt = p.clock.Now()

	err := p.storage.FinishJob(context.WithoutCancel(ctx), job)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish import: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed import: %w (fail reason: %w)", err, status)
	}

	return status
}
