package commander

// ImportCommand is a request for the import worker to fetch a feed and stage its rows.
type ImportCommand struct {
	JobID               string            `json:"jobId"`
	BatchID             string            `json:"batchId"`
	StoreID             string            `json:"storeId"`
	XMLURL              string            `json:"xmlUrl"`
	FieldMapping        map[string]string `json:"fieldMapping,omitempty"`
	VariantMapping      map[string]string `json:"variantMapping,omitempty"`
	SkipMarketplaceSync bool              `json:"skipMarketplaceSync,omitempty"`
	SelectiveImport     bool              `json:"selectiveImport,omitempty"`
}
