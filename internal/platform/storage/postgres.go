package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/MichalMitros/feed-importer/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/feed-importer/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const uniqueViolation = "23505"

// Postgres is storage for import jobs, batches, staged items, categories and products.
type Postgres struct {
	db        *sql.DB
	batchSize int
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db:        db,
		batchSize: 500,
	}
}

// CreateJob inserts new queued job.
func (p Postgres) CreateJob(ctx context.Context, job *models.ImportJob) error {
	dbJob := toDBJob(job)

	err := table.ImportJob.INSERT(table.ImportJob.AllColumns.Except(table.ImportJob.CreatedAt)).
		MODEL(dbJob).
		RETURNING(table.ImportJob.CreatedAt).
		QueryContext(ctx, p.db, dbJob)
	if err != nil {
		return fmt.Errorf("can't insert job into database: %w", err)
	}

	job.CreatedAt = dbJob.CreatedAt

	return nil
}

// GetJob returns store's job. It returns platform.ErrNotFound if there is no such job.
func (p Postgres) GetJob(ctx context.Context, storeID, jobID string) (*models.ImportJob, error) {
	var job pgmodels.ImportJob
	err := table.ImportJob.SELECT(table.ImportJob.AllColumns).
		WHERE(pg.AND(
			table.ImportJob.ID.EQ(pg.String(jobID)),
			table.ImportJob.StoreID.EQ(pg.String(storeID)),
		)).
		QueryContext(ctx, p.db, &job)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get job: %w", err)
	}

	return toAppJob(&job), nil
}

// StartJob marks job as running and returns it.
// Jobs which already finished are returned untouched.
func (p Postgres) StartJob(ctx context.Context, jobID string, startedAt time.Time) (*models.ImportJob, error) {
	var job pgmodels.ImportJob

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		err := table.ImportJob.SELECT(table.ImportJob.AllColumns).
			WHERE(table.ImportJob.ID.EQ(pg.String(jobID))).
			FOR(pg.UPDATE()).
			QueryContext(ctx, tx, &job)
		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("can't get job: %w", err)
		}

		if job.Status == string(models.JobCompleted) || job.Status == string(models.JobFailed) {
			return nil
		}

		job.Status = string(models.JobRunning)
		job.StartedAt = &startedAt

		_, err = table.ImportJob.UPDATE(table.ImportJob.Status, table.ImportJob.StartedAt).
			MODEL(job).
			WHERE(table.ImportJob.ID.EQ(pg.String(jobID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update job: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't start job: %w", err)
	}

	return toAppJob(&job), nil
}

// FinishJob stores job's final status and statistics.
func (p Postgres) FinishJob(ctx context.Context, job *models.ImportJob) error {
	columnList := pg.ColumnList{
		table.ImportJob.Status,
		table.ImportJob.TotalItems,
		table.ImportJob.StagedItems,
		table.ImportJob.SkippedItems,
		table.ImportJob.Skips,
		table.ImportJob.StatusMessage,
		table.ImportJob.FinishedAt,
	}

	result, err := table.ImportJob.UPDATE(columnList).
		MODEL(toDBJob(job)).
		WHERE(table.ImportJob.ID.EQ(pg.String(job.ID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update job: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update job: %w", lo.Ternary(err == nil, platform.ErrNotFound, err))
	}

	return nil
}

// StageBatch prepares batch for staging rows. The batch is created if it doesn't exist yet.
// Items of a batch which is still being staged or awaiting review are removed so the rows can be staged again.
// It returns the stored batch, whose status tells whether staging may proceed.
func (p Postgres) StageBatch(ctx context.Context, batch *models.ImportBatch) (*models.ImportBatch, error) {
	var stored pgmodels.ImportBatch

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.ImportBatch.INSERT(
			table.ImportBatch.AllColumns.Except(table.ImportBatch.CreatedAt, table.ImportBatch.UpdatedAt),
		).
			MODEL(toDBBatch(batch)).
			ON_CONFLICT(table.ImportBatch.ID).
			DO_NOTHING().
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert batch into database: %w", err)
		}

		err = table.ImportBatch.SELECT(table.ImportBatch.AllColumns).
			WHERE(table.ImportBatch.ID.EQ(pg.String(batch.ID))).
			FOR(pg.UPDATE()).
			QueryContext(ctx, tx, &stored)
		if err != nil {
			return fmt.Errorf("can't get batch: %w", err)
		}

		if stored.StoreID != batch.StoreID {
			return platform.ErrConflict
		}

		if !models.BatchStatus(stored.Status).AcceptsCommit() {
			return nil
		}

		_, err = table.ImportItem.DELETE().
			WHERE(table.ImportItem.BatchID.EQ(pg.String(batch.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete previously staged items: %w", err)
		}

		stored.Status = string(models.BatchImporting)
		stored.TotalItems = 0

		_, err = table.ImportBatch.UPDATE().
			SET(
				table.ImportBatch.Status.SET(pg.String(stored.Status)),
				table.ImportBatch.TotalItems.SET(pg.Int32(0)),
				table.ImportBatch.UpdatedAt.SET(pg.NOW()),
			).
			WHERE(table.ImportBatch.ID.EQ(pg.String(batch.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update batch: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't stage batch: %w", err)
	}

	return toAppBatch(&stored), nil
}

// FinishStaging sets batch's status and total number of staged items.
func (p Postgres) FinishStaging(ctx context.Context, batchID string, total int32, status models.BatchStatus) error {
	_, err := table.ImportBatch.UPDATE().
		SET(
			table.ImportBatch.Status.SET(pg.String(string(status))),
			table.ImportBatch.TotalItems.SET(pg.Int32(total)),
			table.ImportBatch.UpdatedAt.SET(pg.NOW()),
		).
		WHERE(table.ImportBatch.ID.EQ(pg.String(batchID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update batch: %w", err)
	}

	return nil
}

// GetBatch returns store's batch. It returns platform.ErrNotFound if there is no such batch.
func (p Postgres) GetBatch(ctx context.Context, storeID, batchID string) (*models.ImportBatch, error) {
	var batch pgmodels.ImportBatch
	err := table.ImportBatch.SELECT(table.ImportBatch.AllColumns).
		WHERE(pg.AND(
			table.ImportBatch.ID.EQ(pg.String(batchID)),
			table.ImportBatch.StoreID.EQ(pg.String(storeID)),
		)).
		QueryContext(ctx, p.db, &batch)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get batch: %w", err)
	}

	return toAppBatch(&batch), nil
}

// SetBatchStatus moves batch to status. It returns platform.ErrConflict
// if the batch's current status is none of from.
func (p Postgres) SetBatchStatus(
	ctx context.Context,
	batchID string,
	status models.BatchStatus,
	from ...models.BatchStatus,
) error {
	statuses := make([]pg.Expression, 0, len(from))
	for _, s := range from {
		statuses = append(statuses, pg.String(string(s)))
	}

	condition := table.ImportBatch.ID.EQ(pg.String(batchID))
	if len(statuses) > 0 {
		condition = condition.AND(table.ImportBatch.Status.IN(statuses...))
	}

	result, err := table.ImportBatch.UPDATE().
		SET(
			table.ImportBatch.Status.SET(pg.String(string(status))),
			table.ImportBatch.UpdatedAt.SET(pg.NOW()),
		).
		WHERE(condition).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update batch status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update batch status: %w", err)
	}
	if rowsAffected == 0 {
		return platform.ErrConflict
	}

	return nil
}

// InsertImportItems stores staged items.
func (p Postgres) InsertImportItems(ctx context.Context, items []models.ImportItem) error {
	if len(items) == 0 {
		return nil
	}

	columnList := table.ImportItem.AllColumns.Except(table.ImportItem.CreatedAt)

	for _, chunk := range lo.Chunk(items, p.batchSize) {
		dbItems := make([]pgmodels.ImportItem, 0, len(chunk))
		for ix := range chunk {
			dbItems = append(dbItems, *ToDBImportItem(&chunk[ix]))
		}

		_, err := table.ImportItem.INSERT(columnList).
			MODELS(dbItems).
			ExecContext(ctx, p.db)
		if err != nil {
			return fmt.Errorf("can't insert import items into database: %w", err)
		}
	}

	return nil
}

// ListImportItems returns page of batch items ordered by their position in the feed.
// Search matches name, SKU or barcode case-insensitively.
func (p Postgres) ListImportItems(ctx context.Context, batchID string, query models.PreviewQuery) (*models.Page, error) {
	condition := table.ImportItem.BatchID.EQ(pg.String(batchID))
	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := pg.String("%" + escapeLike(strings.ToLower(search)) + "%")
		condition = condition.AND(pg.OR(
			pg.LOWER(table.ImportItem.Name).LIKE(pattern),
			pg.LOWER(table.ImportItem.SKU).LIKE(pattern),
			pg.LOWER(table.ImportItem.Barcode).LIKE(pattern),
		))
	}

	var matching []pgmodels.ImportItem
	err := table.ImportItem.SELECT(table.ImportItem.ID).
		WHERE(condition).
		QueryContext(ctx, p.db, &matching)
	if err != nil {
		return nil, fmt.Errorf("can't count import items: %w", err)
	}

	var items []pgmodels.ImportItem
	err = table.ImportItem.SELECT(table.ImportItem.AllColumns).
		WHERE(condition).
		ORDER_BY(table.ImportItem.Position.ASC()).
		LIMIT(int64(query.Limit)).
		OFFSET(int64((query.Page-1)*query.Limit)).
		QueryContext(ctx, p.db, &items)
	if err != nil {
		return nil, fmt.Errorf("can't get import items: %w", err)
	}

	page := &models.Page{
		Items: make([]models.ImportItem, 0, len(items)),
		Total: len(matching),
		Page:  query.Page,
		Limit: query.Limit,
	}
	for ix := range items {
		page.Items = append(page.Items, toAppImportItem(&items[ix]))
	}

	return page, nil
}

// GetImportItems returns batch items with given ids. Ids of other batches are ignored.
func (p Postgres) GetImportItems(ctx context.Context, batchID string, ids []string) ([]models.ImportItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var items []pgmodels.ImportItem
	err := table.ImportItem.SELECT(table.ImportItem.AllColumns).
		WHERE(pg.AND(
			table.ImportItem.BatchID.EQ(pg.String(batchID)),
			table.ImportItem.ID.IN(stringExpressions(ids)...),
		)).
		ORDER_BY(table.ImportItem.Position.ASC()).
		QueryContext(ctx, p.db, &items)
	if err != nil {
		return nil, fmt.Errorf("can't get import items: %w", err)
	}

	return lo.Map(items, func(_ pgmodels.ImportItem, ix int) models.ImportItem {
		return toAppImportItem(&items[ix])
	}), nil
}

// ImportItemIDs returns ids of all batch items ordered by their position in the feed.
func (p Postgres) ImportItemIDs(ctx context.Context, batchID string) ([]string, error) {
	var items []pgmodels.ImportItem
	err := table.ImportItem.SELECT(table.ImportItem.ID).
		WHERE(table.ImportItem.BatchID.EQ(pg.String(batchID))).
		ORDER_BY(table.ImportItem.Position.ASC()).
		QueryContext(ctx, p.db, &items)
	if err != nil {
		return nil, fmt.Errorf("can't get import items ids: %w", err)
	}

	return lo.Map(items, func(item pgmodels.ImportItem, _ int) string {
		return item.ID
	}), nil
}

// DeleteImportItems removes batch items with given ids and returns number of items left in the batch.
// Pending or importing batch which is left without items is completed in the same transaction.
func (p Postgres) DeleteImportItems(ctx context.Context, batchID string, ids []string) (int, error) {
	var remaining []pgmodels.ImportItem

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		if len(ids) > 0 {
			_, err := table.ImportItem.DELETE().
				WHERE(pg.AND(
					table.ImportItem.BatchID.EQ(pg.String(batchID)),
					table.ImportItem.ID.IN(stringExpressions(ids)...),
				)).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("can't delete import items: %w", err)
			}
		}

		err := table.ImportItem.SELECT(table.ImportItem.ID).
			WHERE(table.ImportItem.BatchID.EQ(pg.String(batchID))).
			QueryContext(ctx, tx, &remaining)
		if err != nil {
			return fmt.Errorf("can't count remaining import items: %w", err)
		}

		if len(remaining) > 0 {
			return nil
		}

		_, err = table.ImportBatch.UPDATE().
			SET(
				table.ImportBatch.Status.SET(pg.String(string(models.BatchCompleted))),
				table.ImportBatch.UpdatedAt.SET(pg.NOW()),
			).
			WHERE(pg.AND(
				table.ImportBatch.ID.EQ(pg.String(batchID)),
				table.ImportBatch.Status.IN(
					pg.String(string(models.BatchPending)),
					pg.String(string(models.BatchImporting)),
				),
			)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't complete batch: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(remaining), nil
}

// SaveProduct upserts product by store and SKU together with its images and primary category,
// and queues it for publication on given marketplace connections. Everything is written in one transaction.
// Marketplace ids and attributes of existing product are kept when the new ones are empty.
// It returns id of the stored product.
func (p Postgres) SaveProduct(ctx context.Context, product *models.Product, connectionIDs []string) (string, error) {
	dbProduct := ToDBProduct(product)
	if dbProduct.ID == "" {
		dbProduct.ID = uuid.NewString()
	}

	columnList := table.Product.AllColumns.Except(table.Product.CreatedAt, table.Product.UpdatedAt)

	updateColumns := pg.ColumnList{
		table.Product.Name,
		table.Product.Description,
		table.Product.Barcode,
		table.Product.Brand,
		table.Product.ProductMainID,
		table.Product.Currency,
		table.Product.ListPrice,
		table.Product.SalePrice,
		table.Product.CostPrice,
		table.Product.VatRate,
		table.Product.Stock,
	}
	if product.MarketplaceBrandID != nil && *product.MarketplaceBrandID > 0 {
		updateColumns = append(updateColumns, table.Product.MarketplaceBrandID)
	}
	if product.MarketplaceCategoryID != nil && *product.MarketplaceCategoryID > 0 {
		updateColumns = append(updateColumns, table.Product.MarketplaceCategoryID)
	}
	if len(product.Attributes) > 0 {
		updateColumns = append(updateColumns, table.Product.Attributes)
	}
	if product.PrimaryCategoryID != nil {
		updateColumns = append(updateColumns, table.Product.PrimaryCategoryID)
	}

	excludedExpressions := make([]pg.Expression, 0, len(updateColumns)) // converting to expression
	for _, col := range updateColumns {
		for _, excluded := range table.Product.EXCLUDED.AllColumns {
			if excluded.Name() == col.Name() {
				excludedExpressions = append(excludedExpressions, excluded)
			}
		}
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		err := table.Product.INSERT(columnList).
			MODEL(dbProduct).
			ON_CONFLICT(table.Product.StoreID, table.Product.SKU).
			DO_UPDATE(
				pg.SET(
					updateColumns.SET(pg.ROW(excludedExpressions...)),
					table.Product.UpdatedAt.SET(pg.NOW()),
				),
			).
			RETURNING(table.Product.ID).
			QueryContext(ctx, tx, dbProduct)
		if err != nil {
			return fmt.Errorf("can't upsert product into database: %w", err)
		}

		if err = replaceImages(ctx, tx, dbProduct.ID, product.Images); err != nil {
			return err
		}

		if err = queueListings(ctx, tx, dbProduct.ID, connectionIDs); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("can't save product: %w", err)
	}

	product.ID = dbProduct.ID

	return dbProduct.ID, nil
}

// ActiveConnections returns store's active marketplace connections.
func (p Postgres) ActiveConnections(ctx context.Context, storeID string) ([]models.MarketplaceConnection, error) {
	var conns []pgmodels.MarketplaceConnection
	err := table.MarketplaceConnection.SELECT(table.MarketplaceConnection.AllColumns).
		WHERE(pg.AND(
			table.MarketplaceConnection.StoreID.EQ(pg.String(storeID)),
			table.MarketplaceConnection.IsActive.EQ(pg.Bool(true)),
		)).
		QueryContext(ctx, p.db, &conns)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get marketplace connections: %w", err)
	}

	return lo.Map(conns, func(_ pgmodels.MarketplaceConnection, ix int) models.MarketplaceConnection {
		return toAppConnection(&conns[ix])
	}), nil
}

// GetConnection returns store's marketplace connection. It returns platform.ErrNotFound if there is no such connection.
func (p Postgres) GetConnection(ctx context.Context, storeID, connectionID string) (*models.MarketplaceConnection, error) {
	var conn pgmodels.MarketplaceConnection
	err := table.MarketplaceConnection.SELECT(table.MarketplaceConnection.AllColumns).
		WHERE(pg.AND(
			table.MarketplaceConnection.ID.EQ(pg.String(connectionID)),
			table.MarketplaceConnection.StoreID.EQ(pg.String(storeID)),
		)).
		QueryContext(ctx, p.db, &conn)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get marketplace connection: %w", err)
	}

	return lo.ToPtr(toAppConnection(&conn)), nil
}

// FindCategory returns store's category with given name under parent (root level for nil parent).
// Names are compared case-insensitively. It returns platform.ErrNotFound if there is no such category.
func (p Postgres) FindCategory(ctx context.Context, storeID string, parentID *string, name string) (*models.Category, error) {
	parentCondition := table.Category.ParentID.IS_NULL()
	if parentID != nil {
		parentCondition = table.Category.ParentID.EQ(pg.String(*parentID))
	}

	var category pgmodels.Category
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(pg.AND(
			table.Category.StoreID.EQ(pg.String(storeID)),
			parentCondition,
			pg.LOWER(table.Category.Name).EQ(pg.LOWER(pg.String(name))),
		)).
		LIMIT(1).
		QueryContext(ctx, p.db, &category)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get category: %w", err)
	}

	return toAppCategory(&category), nil
}

// CategorySlugs returns store's slugs equal to base or starting with "base-".
func (p Postgres) CategorySlugs(ctx context.Context, storeID, base string) ([]string, error) {
	var categories []pgmodels.Category
	err := table.Category.SELECT(table.Category.Slug).
		WHERE(pg.AND(
			table.Category.StoreID.EQ(pg.String(storeID)),
			pg.OR(
				table.Category.Slug.EQ(pg.String(base)),
				table.Category.Slug.LIKE(pg.String(escapeLike(base)+"-%")),
			),
		)).
		QueryContext(ctx, p.db, &categories)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get category slugs: %w", err)
	}

	return lo.Map(categories, func(c pgmodels.Category, _ int) string {
		return c.Slug
	}), nil
}

// CreateCategory inserts category. It returns platform.ErrDuplicate when a category
// with the same name under the same parent, or with the same slug, already exists.
func (p Postgres) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	dbCategory := pgmodels.Category{
		ID:       category.ID,
		StoreID:  category.StoreID,
		ParentID: category.ParentID,
		Name:     category.Name,
		Slug:     category.Slug,
	}

	err := table.Category.INSERT(table.Category.AllColumns.Except(table.Category.CreatedAt)).
		MODEL(dbCategory).
		RETURNING(table.Category.CreatedAt).
		QueryContext(ctx, p.db, &dbCategory)
	if isUniqueViolation(err) {
		return platform.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("can't insert category into database: %w", err)
	}

	category.CreatedAt = dbCategory.CreatedAt

	return nil
}

func replaceImages(ctx context.Context, db qrm.DB, productID string, urls []string) error {
	_, err := table.ProductImage.DELETE().
		WHERE(table.ProductImage.ProductID.EQ(pg.String(productID))).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't delete outdated product images from database: %w", err)
	}

	if len(urls) == 0 {
		return nil
	}

	_, err = table.ProductImage.INSERT(table.ProductImage.AllColumns.Except(table.ProductImage.ID)).
		MODELS(toDBImages(productID, urls)).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert product images into database: %w", err)
	}

	return nil
}

func queueListings(ctx context.Context, db qrm.DB, productID string, connectionIDs []string) error {
	if len(connectionIDs) == 0 {
		return nil
	}

	listings := lo.Map(connectionIDs, func(connectionID string, _ int) pgmodels.MarketplaceListing {
		return pgmodels.MarketplaceListing{
			ID:           uuid.NewString(),
			ConnectionID: connectionID,
			ProductID:    productID,
			Status:       string(models.ListingPending),
		}
	})

	_, err := table.MarketplaceListing.INSERT(
		table.MarketplaceListing.ID,
		table.MarketplaceListing.ConnectionID,
		table.MarketplaceListing.ProductID,
		table.MarketplaceListing.Status,
	).
		MODELS(listings).
		ON_CONFLICT(table.MarketplaceListing.ConnectionID, table.MarketplaceListing.ProductID).
		DO_UPDATE(
			pg.SET(
				table.MarketplaceListing.Status.SET(table.MarketplaceListing.EXCLUDED.Status),
				table.MarketplaceListing.UpdatedAt.SET(pg.NOW()),
			),
		).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't queue marketplace listings: %w", err)
	}

	return nil
}

func stringExpressions(values []string) []pg.Expression {
	expressions := make([]pg.Expression, 0, len(values))
	for _, v := range values {
		expressions = append(expressions, pg.String(v))
	}

	return expressions
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
