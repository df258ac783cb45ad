package storage

import (
	"encoding/json"

	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/feed-importer/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBJob(job *models.ImportJob) *pgmodels.ImportJob {
	var skips *string
	if len(job.Skips) > 0 {
		encoded, _ := json.Marshal(job.Skips)
		skips = lo.ToPtr(string(encoded))
	}

	return &pgmodels.ImportJob{
		ID:                  job.ID,
		StoreID:             job.StoreID,
		BatchID:             job.BatchID,
		XmlURL:              job.XMLURL,
		Status:              string(job.Status),
		SkipMarketplaceSync: job.SkipMarketplaceSync,
		SelectiveImport:     job.SelectiveImport,
		TotalItems:          job.TotalItems,
		StagedItems:         job.StagedItems,
		SkippedItems:        job.SkippedItems,
		Skips:               skips,
		StatusMessage:       job.StatusMessage,
		CreatedAt:           job.CreatedAt,
		StartedAt:           job.StartedAt,
		FinishedAt:          job.FinishedAt,
	}
}

func toAppJob(job *pgmodels.ImportJob) *models.ImportJob {
	var skips []models.Skip
	if job.Skips != nil {
		_ = json.Unmarshal([]byte(*job.Skips), &skips)
	}

	return &models.ImportJob{
		ID:                  job.ID,
		StoreID:             job.StoreID,
		BatchID:             job.BatchID,
		XMLURL:              job.XmlURL,
		Status:              models.JobStatus(job.Status),
		SkipMarketplaceSync: job.SkipMarketplaceSync,
		SelectiveImport:     job.SelectiveImport,
		TotalItems:          job.TotalItems,
		StagedItems:         job.StagedItems,
		SkippedItems:        job.SkippedItems,
		Skips:               skips,
		StatusMessage:       job.StatusMessage,
		CreatedAt:           job.CreatedAt,
		StartedAt:           job.StartedAt,
		FinishedAt:          job.FinishedAt,
	}
}

func toDBBatch(batch *models.ImportBatch) *pgmodels.ImportBatch {
	return &pgmodels.ImportBatch{
		ID:                  batch.ID,
		StoreID:             batch.StoreID,
		SourceURL:           batch.SourceURL,
		Status:              string(batch.Status),
		TotalItems:          batch.TotalItems,
		SkipMarketplaceSync: batch.SkipMarketplaceSync,
	}
}

func toAppBatch(batch *pgmodels.ImportBatch) *models.ImportBatch {
	return &models.ImportBatch{
		ID:                  batch.ID,
		StoreID:             batch.StoreID,
		SourceURL:           batch.SourceURL,
		Status:              models.BatchStatus(batch.Status),
		TotalItems:          batch.TotalItems,
		SkipMarketplaceSync: batch.SkipMarketplaceSync,
		CreatedAt:           batch.CreatedAt,
		UpdatedAt:           batch.UpdatedAt,
	}
}

// ToDBImportItem converts models.ImportItem into postgres import item model.
func ToDBImportItem(item *models.ImportItem) *pgmodels.ImportItem {
	images, _ := json.Marshal(lo.Ternary(item.Images == nil, []string{}, item.Images))
	attributes, _ := json.Marshal(lo.Ternary(item.Attributes == nil, map[string]string{}, item.Attributes))

	return &pgmodels.ImportItem{
		ID:                    item.ID,
		BatchID:               item.BatchID,
		Position:              int32(item.Position),
		SKU:                   item.SKU,
		Name:                  item.Name,
		Description:           item.Description,
		Barcode:               item.Barcode,
		Brand:                 item.Brand,
		CategoryName:          item.CategoryName,
		ProductMainID:         item.ProductMainID,
		Currency:              item.Currency,
		ListPrice:             item.ListPrice,
		SalePrice:             item.SalePrice,
		CostPrice:             item.CostPrice,
		VatRate:               item.VatRate,
		Stock:                 item.Stock,
		Images:                string(images),
		Attributes:            string(attributes),
		MarketplaceBrandID:    item.MarketplaceBrandID,
		MarketplaceCategoryID: item.MarketplaceCategoryID,
	}
}

func toAppImportItem(item *pgmodels.ImportItem) models.ImportItem {
	var (
		images     []string
		attributes map[string]string
	)
	_ = json.Unmarshal([]byte(item.Images), &images)
	_ = json.Unmarshal([]byte(item.Attributes), &attributes)

	return models.ImportItem{
		ID:                    item.ID,
		BatchID:               item.BatchID,
		Position:              int(item.Position),
		SKU:                   item.SKU,
		Name:                  item.Name,
		Description:           item.Description,
		Barcode:               item.Barcode,
		Brand:                 item.Brand,
		CategoryName:          item.CategoryName,
		ProductMainID:         item.ProductMainID,
		Currency:              item.Currency,
		ListPrice:             item.ListPrice,
		SalePrice:             item.SalePrice,
		CostPrice:             item.CostPrice,
		VatRate:               item.VatRate,
		Stock:                 item.Stock,
		Images:                images,
		Attributes:            attributes,
		MarketplaceBrandID:    item.MarketplaceBrandID,
		MarketplaceCategoryID: item.MarketplaceCategoryID,
		CreatedAt:             item.CreatedAt,
	}
}

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Product {
	var attributes *string
	if len(product.Attributes) > 0 {
		encoded, _ := json.Marshal(product.Attributes)
		attributes = lo.ToPtr(string(encoded))
	}

	return &pgmodels.Product{
		ID:                    product.ID,
		StoreID:               product.StoreID,
		SKU:                   product.SKU,
		Name:                  product.Name,
		Description:           product.Description,
		Barcode:               product.Barcode,
		Brand:                 product.Brand,
		ProductMainID:         product.ProductMainID,
		Currency:              product.Currency,
		ListPrice:             product.ListPrice,
		SalePrice:             product.SalePrice,
		CostPrice:             product.CostPrice,
		VatRate:               product.VatRate,
		Stock:                 product.Stock,
		MarketplaceBrandID:    product.MarketplaceBrandID,
		MarketplaceCategoryID: product.MarketplaceCategoryID,
		Attributes:            attributes,
		PrimaryCategoryID:     product.PrimaryCategoryID,
	}
}

func toDBImages(productID string, urls []string) []pgmodels.ProductImage {
	images := make([]pgmodels.ProductImage, 0, len(urls))
	for ix, url := range urls {
		images = append(images, pgmodels.ProductImage{
			ProductID: productID,
			URL:       url,
			Position:  int32(ix),
		})
	}

	return images
}

func toAppCategory(category *pgmodels.Category) *models.Category {
	return &models.Category{
		ID:        category.ID,
		StoreID:   category.StoreID,
		ParentID:  category.ParentID,
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
	}
}

func toAppConnection(conn *pgmodels.MarketplaceConnection) models.MarketplaceConnection {
	return models.MarketplaceConnection{
		ID:          conn.ID,
		StoreID:     conn.StoreID,
		Marketplace: conn.Marketplace,
		SellerID:    conn.SellerID,
		APIKey:      conn.APIKey,
		APISecret:   conn.APISecret,
		IsActive:    conn.IsActive,
	}
}
