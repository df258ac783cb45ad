package models

import "time"

// JobStatus is import job processing status.
type JobStatus string

// Import job statuses.
const (
	JobQueued    JobStatus = "QUEUED"
	JobRunning   JobStatus = "RUNNING"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
)

// BatchStatus is import batch status.
type BatchStatus string

// Import batch statuses.
const (
	BatchPending   BatchStatus = "PENDING"
	BatchImporting BatchStatus = "IMPORTING"
	BatchCompleted BatchStatus = "COMPLETED"
	BatchCancelled BatchStatus = "CANCELLED"
	BatchFailed    BatchStatus = "FAILED"
)

// AcceptsCommit reports whether batch in this status may be committed or cancelled.
func (s BatchStatus) AcceptsCommit() bool {
	return s == BatchPending || s == BatchImporting
}

// ListingStatus is marketplace listing status.
type ListingStatus string

// ListingPending marks product as queued for marketplace publication.
const ListingPending ListingStatus = "PENDING"

// ImportRequest is a request to fetch feed and stage its rows in batch.
type ImportRequest struct {
	JobID               string
	BatchID             string
	StoreID             string
	XMLURL              string
	FieldMapping        map[string]string
	VariantMapping      map[string]string
	SkipMarketplaceSync bool
	SelectiveImport     bool
}

// ImportJob is the status record of single import job.
type ImportJob struct {
	ID                  string
	StoreID             string
	BatchID             string
	XMLURL              string
	Status              JobStatus
	SkipMarketplaceSync bool
	SelectiveImport     bool
	TotalItems          int32
	StagedItems         int32
	SkippedItems        int32
	Skips               []Skip
	StatusMessage       *string
	CreatedAt           time.Time
	StartedAt           *time.Time
	FinishedAt          *time.Time
}

// Skip is a feed row which wasn't staged with the reason why.
type Skip struct {
	Index  int    `json:"index"`
	SKU    string `json:"sku,omitempty"`
	Reason string `json:"reason"`
}

// ImportBatch is one import run's staged rows.
type ImportBatch struct {
	ID                  string
	StoreID             string
	SourceURL           string
	Status              BatchStatus
	TotalItems          int32
	SkipMarketplaceSync bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ImportItem is a staged, normalized candidate product.
type ImportItem struct {
	ID                    string
	BatchID               string
	Position              int
	SKU                   string
	Name                  string
	Description           string
	Barcode               string
	Brand                 string
	CategoryName          string
	ProductMainID         string
	Currency              string
	ListPrice             float64
	SalePrice             float64
	CostPrice             float64
	VatRate               float64
	Stock                 int64
	Images                []string
	Attributes            map[string]string
	MarketplaceBrandID    *int64
	MarketplaceCategoryID *int64
	CreatedAt             time.Time
}

// Product is canonical store product.
type Product struct {
	ID                    string
	StoreID               string
	SKU                   string
	Name                  string
	Description           string
	Barcode               string
	Brand                 string
	ProductMainID         string
	Currency              string
	ListPrice             float64
	SalePrice             float64
	CostPrice             float64
	VatRate               float64
	Stock                 int64
	MarketplaceBrandID    *int64
	MarketplaceCategoryID *int64
	Attributes            map[string]string
	PrimaryCategoryID     *string
	Images                []string
}

// Category is store product category.
type Category struct {
	ID        string
	StoreID   string
	ParentID  *string
	Name      string
	Slug      string
	CreatedAt time.Time
}

// MarketplaceConnection is store's connection with marketplace.
type MarketplaceConnection struct {
	ID          string
	StoreID     string
	Marketplace string
	SellerID    string
	APIKey      string
	APISecret   string
	IsActive    bool
}

// Page is a paginated slice of import items.
type Page struct {
	Items []ImportItem
	Total int
	Page  int
	Limit int
}

// PreviewQuery selects page of staged import items.
type PreviewQuery struct {
	Page   int
	Limit  int
	Search string
}
