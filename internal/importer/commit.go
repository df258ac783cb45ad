package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/samber/lo"
)

// CommitResult is outcome of committing batch items.
type CommitResult struct {
	Imported  int
	Remaining int
}

// Commit writes selected batch items into catalog and removes them from the batch.
// All ids must belong to the batch, otherwise nothing is written.
// Items committed before a failure stay committed.
func (p *Processor) Commit(ctx context.Context, storeID, batchID string, itemIDs []string) (*CommitResult, error) {
	itemIDs = lo.Uniq(itemIDs)
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("no item ids provided: %w", platform.ErrInvalidInput)
	}
	if len(itemIDs) > p.maxCommitItems {
		return nil, fmt.Errorf("at most %d items can be committed at once: %w", p.maxCommitItems, platform.ErrInvalidInput)
	}

	batch, err := p.storage.GetBatch(ctx, storeID, batchID)
	if err != nil {
		return nil, fmt.Errorf("can't get batch: %w", err)
	}

	if !batch.Status.AcceptsCommit() {
		return nil, fmt.Errorf("batch is %s: %w", batch.Status, platform.ErrConflict)
	}

	items, err := p.storage.GetImportItems(ctx, batch.ID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("can't get import items: %w", err)
	}

	if len(items) != len(itemIDs) {
		found := lo.Map(items, func(item models.ImportItem, _ int) string { return item.ID })
		missing, _ := lo.Difference(itemIDs, found)
		return nil, fmt.Errorf("items %v don't belong to batch: %w", missing, platform.ErrConflict)
	}

	return p.commit(ctx, batch, items)
}

// commitAll commits every item of the batch.
func (p *Processor) commitAll(ctx context.Context, batch *models.ImportBatch) error {
	ids, err := p.storage.ImportItemIDs(ctx, batch.ID)
	if err != nil {
		return fmt.Errorf("can't get import item ids: %w", err)
	}

	for _, chunk := range lo.Chunk(ids, p.maxCommitItems) {
		items, err := p.storage.GetImportItems(ctx, batch.ID, chunk)
		if err != nil {
			return fmt.Errorf("can't get import items: %w", err)
		}

		result, err := p.commit(ctx, batch, items)
		if err != nil {
			return err
		}

		p.logger.Debug().
			Str("batchId", batch.ID).
			Int("imported", result.Imported).
			Int("remaining", result.Remaining).
			Msg("import items committed")
	}

	return nil
}

func (p *Processor) commit(ctx context.Context, batch *models.ImportBatch, items []models.ImportItem) (*CommitResult, error) {
	err := p.storage.SetBatchStatus(ctx, batch.ID, models.BatchImporting, models.BatchPending, models.BatchImporting)
	if err != nil {
		return nil, fmt.Errorf("can't mark batch as importing: %w", err)
	}

	committed, commitErr := p.commitItems(ctx, batch, items)

	// batch bookkeeping must happen even when request was cancelled mid-commit.
	ctx = context.WithoutCancel(ctx)

	remaining, err := p.storage.DeleteImportItems(ctx, batch.ID, committed)
	if err != nil {
		return nil, errors.Join(commitErr, fmt.Errorf("can't delete committed items: %w", err))
	}

	// batch without items was completed by DeleteImportItems. Conflict means overlapping
	// commit has already moved the batch.
	if remaining > 0 {
		err := p.storage.SetBatchStatus(ctx, batch.ID, models.BatchPending, models.BatchImporting)
		if err != nil && !errors.Is(err, platform.ErrConflict) {
			return nil, errors.Join(commitErr, fmt.Errorf("can't update batch status: %w", err))
		}
	}

	if commitErr != nil {
		return nil, commitErr
	}

	return &CommitResult{
		Imported:  len(committed),
		Remaining: remaining,
	}, nil
}

// commitItems saves items as products and returns ids of saved items. It stops at first failure.
func (p *Processor) commitItems(ctx context.Context, batch *models.ImportBatch, items []models.ImportItem) ([]string, error) {
	connectionIDs := []string{}
	if !batch.SkipMarketplaceSync {
		connections, err := p.storage.ActiveConnections(ctx, batch.StoreID)
		if err != nil {
			return nil, fmt.Errorf("can't get marketplace connections: %w", err)
		}
		connectionIDs = lo.Map(connections, func(c models.MarketplaceConnection, _ int) string { return c.ID })
	}

	committed := make([]string, 0, len(items))
	for ix := range items {
		item := &items[ix]

		product := toProduct(batch.StoreID, item)

		if item.CategoryName != "" {
			categoryID, err := p.categories.ResolvePath(ctx, batch.StoreID, item.CategoryName)
			if err != nil {
				return committed, fmt.Errorf("can't resolve category of item %s: %w", item.SKU, err)
			}
			product.PrimaryCategoryID = &categoryID
		}

		if _, err := p.storage.SaveProduct(ctx, product, connectionIDs); err != nil {
			return committed, fmt.Errorf("can't save product %s: %w", item.SKU, err)
		}

		committed = append(committed, item.ID)
	}

	return committed, nil
}

func toProduct(storeID string, item *models.ImportItem) *models.Product {
	return &models.Product{
		StoreID:               storeID,
		SKU:                   item.SKU,
		Name:                  item.Name,
		Description:           item.Description,
		Barcode:               item.Barcode,
		Brand:                 item.Brand,
		ProductMainID:         item.ProductMainID,
		Currency:              item.Currency,
		ListPrice:             item.ListPrice,
		SalePrice:             item.SalePrice,
		CostPrice:             item.CostPrice,
		VatRate:               item.VatRate,
		Stock:                 item.Stock,
		MarketplaceBrandID:    item.MarketplaceBrandID,
		MarketplaceCategoryID: item.MarketplaceCategoryID,
		Attributes:            item.Attributes,
		Images:                lo.Slice(item.Images, 0, maxProductImages),
	}
}

// Preview returns page of batch items.
func (p *Processor) Preview(ctx context.Context, storeID, batchID string, query models.PreviewQuery) (*models.Page, error) {
	query.Page = max(query.Page, 1)
	if query.Limit <= 0 {
		query.Limit = defaultPageLimit
	}
	query.Limit = min(query.Limit, maxPageLimit)

	batch, err := p.storage.GetBatch(ctx, storeID, batchID)
	if err != nil {
		return nil, fmt.Errorf("can't get batch: %w", err)
	}

	page, err := p.storage.ListImportItems(ctx, batch.ID, query)
	if err != nil {
		return nil, fmt.Errorf("can't list import items: %w", err)
	}

	return page, nil
}

// Batch returns store's batch.
func (p *Processor) Batch(ctx context.Context, storeID, batchID string) (*models.ImportBatch, error) {
	batch, err := p.storage.GetBatch(ctx, storeID, batchID)
	if err != nil {
		return nil, fmt.Errorf("can't get batch: %w", err)
	}

	return batch, nil
}

// Cancel cancels batch which wasn't completed yet. Its items are kept.
func (p *Processor) Cancel(ctx context.Context, storeID, batchID string) error {
	batch, err := p.storage.GetBatch(ctx, storeID, batchID)
	if err != nil {
		return fmt.Errorf("can't get batch: %w", err)
	}

	if !batch.Status.AcceptsCommit() {
		return fmt.Errorf("batch is %s: %w", batch.Status, platform.ErrConflict)
	}

	err = p.storage.SetBatchStatus(ctx, batch.ID, models.BatchCancelled, models.BatchPending, models.BatchImporting)
	if err != nil {
		return fmt.Errorf("can't cancel batch: %w", err)
	}

	return nil
}
