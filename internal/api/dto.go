package api

import (
	"time"

	"github.com/MichalMitros/feed-importer/internal/mapping"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/samber/lo"
)

// scoringModel names the suggestion method reported to clients.
const scoringModel = "algorithm"

type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type discoverRequest struct {
	XMLURL     string `json:"xmlUrl"`
	XMLContent string `json:"xmlContent"`
}

type suggestMappingRequest struct {
	XMLTags      []string          `json:"xmlTags"`
	SampleValues map[string]string `json:"sampleValues"`
}

type suggestMappingResponse struct {
	Suggestions []mapping.Suggestion `json:"suggestions"`
	Variants    []mapping.Suggestion `json:"variants"`
	Model       string               `json:"model"`
}

type importRequest struct {
	XMLURL              string            `json:"xmlUrl"`
	FieldMapping        map[string]string `json:"fieldMapping"`
	VariantMapping      map[string]string `json:"variantMapping"`
	SkipMarketplaceSync bool              `json:"skipMarketplaceSync"`
	SelectiveImport     bool              `json:"selectiveImport"`
}

type importResponse struct {
	JobID   string `json:"jobId"`
	BatchID string `json:"batchId"`
}

type commitRequest struct {
	BatchID    string   `json:"batchId"`
	ProductIDs []string `json:"productIds"`
}

type commitResponse struct {
	OK        bool   `json:"ok"`
	Imported  int    `json:"imported"`
	Remaining int    `json:"remaining"`
	Message   string `json:"message"`
}

type jobResponse struct {
	ID                  string           `json:"id"`
	StoreID             string           `json:"storeId"`
	BatchID             string           `json:"batchId"`
	XMLURL              string           `json:"xmlUrl"`
	Status              models.JobStatus `json:"status"`
	SkipMarketplaceSync bool             `json:"skipMarketplaceSync"`
	SelectiveImport     bool             `json:"selectiveImport"`
	TotalItems          int32            `json:"totalItems"`
	StagedItems         int32            `json:"stagedItems"`
	SkippedItems        int32            `json:"skippedItems"`
	Skips               []models.Skip    `json:"skips"`
	StatusMessage       *string          `json:"statusMessage,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
	StartedAt           *time.Time       `json:"startedAt,omitempty"`
	FinishedAt          *time.Time       `json:"finishedAt,omitempty"`
}

type batchResponse struct {
	ID                  string             `json:"id"`
	StoreID             string             `json:"storeId"`
	SourceURL           string             `json:"sourceUrl"`
	Status              models.BatchStatus `json:"status"`
	TotalItems          int32              `json:"totalItems"`
	SkipMarketplaceSync bool               `json:"skipMarketplaceSync"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

type itemResponse struct {
	ID                    string            `json:"id"`
	Position              int               `json:"position"`
	SKU                   string            `json:"sku"`
	Name                  string            `json:"name"`
	Description           string            `json:"description,omitempty"`
	Barcode               string            `json:"barcode,omitempty"`
	Brand                 string            `json:"brand,omitempty"`
	CategoryName          string            `json:"categoryName,omitempty"`
	ProductMainID         string            `json:"productMainId,omitempty"`
	Currency              string            `json:"currency,omitempty"`
	ListPrice             float64           `json:"listPrice"`
	SalePrice             float64           `json:"salePrice"`
	CostPrice             float64           `json:"costPrice"`
	VatRate               float64           `json:"vatRate"`
	Stock                 int64             `json:"stock"`
	Images                []string          `json:"images"`
	Attributes            map[string]string `json:"attributes,omitempty"`
	MarketplaceBrandID    *int64            `json:"marketplaceBrandId,omitempty"`
	MarketplaceCategoryID *int64            `json:"marketplaceCategoryId,omitempty"`
}

type pageResponse struct {
	Items []itemResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func newJobResponse(job *models.ImportJob) jobResponse {
	return jobResponse{
		ID:                  job.ID,
		StoreID:             job.StoreID,
		BatchID:             job.BatchID,
		XMLURL:              job.XMLURL,
		Status:              job.Status,
		SkipMarketplaceSync: job.SkipMarketplaceSync,
		SelectiveImport:     job.SelectiveImport,
		TotalItems:          job.TotalItems,
		StagedItems:         job.StagedItems,
		SkippedItems:        job.SkippedItems,
		Skips:               lo.Ternary(job.Skips == nil, []models.Skip{}, job.Skips),
		StatusMessage:       job.StatusMessage,
		CreatedAt:           job.CreatedAt,
		StartedAt:           job.StartedAt,
		FinishedAt:          job.FinishedAt,
	}
}

func newBatchResponse(batch *models.ImportBatch) batchResponse {
	return batchResponse{
		ID:                  batch.ID,
		StoreID:             batch.StoreID,
		SourceURL:           batch.SourceURL,
		Status:              batch.Status,
		TotalItems:          batch.TotalItems,
		SkipMarketplaceSync: batch.SkipMarketplaceSync,
		CreatedAt:           batch.CreatedAt,
		UpdatedAt:           batch.UpdatedAt,
	}
}

func newPageResponse(page *models.Page) pageResponse {
	return pageResponse{
		Items: lo.Map(page.Items, func(item models.ImportItem, _ int) itemResponse {
			return itemResponse{
				ID:                    item.ID,
				Position:              item.Position,
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
				Images:                lo.Ternary(item.Images == nil, []string{}, item.Images),
				Attributes:            item.Attributes,
				MarketplaceBrandID:    item.MarketplaceBrandID,
				MarketplaceCategoryID: item.MarketplaceCategoryID,
			}
		}),
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	}
}
