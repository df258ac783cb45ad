package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/feed-importer/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/feed-importer/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. Test is skipped when DATABASE_URL isn't set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertJobs is a helper test function to insert jobs.
func InsertJobs(t *testing.T, exc qrm.Executable, jobs ...pgmodels.ImportJob) {
	t.Helper()

	if len(jobs) == 0 {
		return
	}

	_, err := table.ImportJob.INSERT(table.ImportJob.AllColumns).MODELS(jobs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert jobs", err)
	}
}

// InsertBatches is a helper test function to insert batches.
func InsertBatches(t *testing.T, exc qrm.Executable, batches ...pgmodels.ImportBatch) {
	t.Helper()

	if len(batches) == 0 {
		return
	}

	_, err := table.ImportBatch.INSERT(table.ImportBatch.AllColumns).MODELS(batches).Exec(exc)
	if err != nil {
		t.Fatal("can't insert batches", err)
	}
}

// InsertImportItems is a helper test function to insert staged items.
func InsertImportItems(t *testing.T, exc qrm.Executable, items ...pgmodels.ImportItem) {
	t.Helper()

	if len(items) == 0 {
		return
	}

	_, err := table.ImportItem.INSERT(table.ImportItem.AllColumns.Except(table.ImportItem.CreatedAt)).
		MODELS(items).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert import items", err)
	}
}

// InsertCategories is a helper test function to insert categories.
func InsertCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.Category) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	_, err := table.Category.INSERT(table.Category.AllColumns.Except(table.Category.CreatedAt)).
		MODELS(categories).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert categories", err)
	}
}

// InsertConnections is a helper test function to insert marketplace connections.
func InsertConnections(t *testing.T, exc qrm.Executable, conns ...pgmodels.MarketplaceConnection) {
	t.Helper()

	if len(conns) == 0 {
		return
	}

	_, err := table.MarketplaceConnection.INSERT(table.MarketplaceConnection.AllColumns).MODELS(conns).Exec(exc)
	if err != nil {
		t.Fatal("can't insert marketplace connections", err)
	}
}

// GetJob is a helper test function to get job by ID.
func GetJob(t *testing.T, queryable qrm.Queryable, jobID string) pgmodels.ImportJob {
	t.Helper()

	var job pgmodels.ImportJob
	err := table.ImportJob.SELECT(table.ImportJob.AllColumns).
		WHERE(table.ImportJob.ID.EQ(pg.String(jobID))).
		Query(queryable, &job)
	if err != nil {
		t.Fatal("can't get job", err)
	}

	return job
}

// GetImportItems is a helper test function to get batch items.
func GetImportItems(t *testing.T, queryable qrm.Queryable, batchID string) []pgmodels.ImportItem {
	t.Helper()

	items := []pgmodels.ImportItem{}
	err := table.ImportItem.SELECT(table.ImportItem.AllColumns).
		WHERE(table.ImportItem.BatchID.EQ(pg.String(batchID))).
		ORDER_BY(table.ImportItem.Position.ASC()).
		Query(queryable, &items)
	if err != nil {
		t.Fatal("can't get import items", err)
	}

	return items
}

// GetProducts is a helper test function to get store's products.
func GetProducts(t *testing.T, queryable qrm.Queryable, storeID string) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.StoreID.EQ(pg.String(storeID))).
		ORDER_BY(table.Product.SKU.ASC()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetProductImages is a helper test function to get product images.
func GetProductImages(t *testing.T, queryable qrm.Queryable, productID string) []pgmodels.ProductImage {
	t.Helper()

	images := []pgmodels.ProductImage{}
	err := table.ProductImage.SELECT(table.ProductImage.AllColumns).
		WHERE(table.ProductImage.ProductID.EQ(pg.String(productID))).
		ORDER_BY(table.ProductImage.Position.ASC()).
		Query(queryable, &images)
	if err != nil {
		t.Fatal("can't get product images", err)
	}

	return images
}

// GetListings is a helper test function to get product's marketplace listings.
func GetListings(t *testing.T, queryable qrm.Queryable, productID string) []pgmodels.MarketplaceListing {
	t.Helper()

	listings := []pgmodels.MarketplaceListing{}
	err := table.MarketplaceListing.SELECT(table.MarketplaceListing.AllColumns).
		WHERE(table.MarketplaceListing.ProductID.EQ(pg.String(productID))).
		Query(queryable, &listings)
	if err != nil {
		t.Fatal("can't get marketplace listings", err)
	}

	return listings
}

// GetCategories is a helper test function to get store's categories.
func GetCategories(t *testing.T, queryable qrm.Queryable, storeID string) []pgmodels.Category {
	t.Helper()

	categories := []pgmodels.Category{}
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(table.Category.StoreID.EQ(pg.String(storeID))).
		ORDER_BY(table.Category.Slug.ASC()).
		Query(queryable, &categories)
	if err != nil {
		t.Fatal("can't get categories", err)
	}

	return categories
}

// CleanupData is a helper test function to remove all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	deletes := []struct {
		name string
		stmt pg.DeleteStatement
	}{
		{"marketplace listings", table.MarketplaceListing.DELETE().WHERE(table.MarketplaceListing.ID.IS_NOT_NULL())},
		{"marketplace connections", table.MarketplaceConnection.DELETE().WHERE(table.MarketplaceConnection.ID.IS_NOT_NULL())},
		{"product images", table.ProductImage.DELETE().WHERE(table.ProductImage.ID.IS_NOT_NULL())},
		{"products", table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL())},
		{"categories", table.Category.DELETE().WHERE(table.Category.ID.IS_NOT_NULL())},
		{"import items", table.ImportItem.DELETE().WHERE(table.ImportItem.ID.IS_NOT_NULL())},
		{"import jobs", table.ImportJob.DELETE().WHERE(table.ImportJob.ID.IS_NOT_NULL())},
		{"import batches", table.ImportBatch.DELETE().WHERE(table.ImportBatch.ID.IS_NOT_NULL())},
	}

	for _, d := range deletes {
		if _, err := d.stmt.Exec(exc); err != nil {
			t.Fatalf("can't delete %s data: %s", d.name, err)
		}
	}
}
