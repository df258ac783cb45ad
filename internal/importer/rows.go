package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MichalMitros/feed-importer/internal/feed"
	"github.com/MichalMitros/feed-importer/internal/mapping"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/MichalMitros/feed-importer/internal/textnorm"
	"github.com/samber/lo"
)

var imageSeparators = regexp.MustCompile(`[,;|\s]+`)

// row is feed item converted to import item or the reason it was skipped.
type row struct {
	item models.ImportItem
	skip *models.Skip
}

// rowBuilder applies mapping to feed items.
type rowBuilder struct {
	batchID        string
	fieldMapping   map[string]string
	variantMapping map[string]string
}

func (b rowBuilder) build(position int, item *feed.Node) row {
	sku := b.text(item, mapping.FieldSKU)
	name := b.text(item, mapping.FieldName)

	if sku == "" {
		return row{skip: &models.Skip{Index: position, Reason: errMissingSKU.Error()}}
	}
	if name == "" {
		return row{skip: &models.Skip{Index: position, SKU: sku, Reason: errMissingName.Error()}}
	}

	importItem := models.ImportItem{
		BatchID:               b.batchID,
		Position:              position,
		SKU:                   sku,
		Name:                  name,
		Description:           b.text(item, mapping.FieldDescription),
		Barcode:               b.text(item, mapping.FieldBarcode),
		Brand:                 b.text(item, mapping.FieldBrand),
		CategoryName:          b.text(item, mapping.FieldCategory),
		ProductMainID:         b.text(item, mapping.FieldProductMainID),
		Currency:              strings.ToUpper(b.text(item, mapping.FieldCurrency)),
		ListPrice:             b.decimal(item, mapping.FieldListPrice),
		SalePrice:             b.decimal(item, mapping.FieldSalePrice),
		CostPrice:             b.decimal(item, mapping.FieldCostPrice),
		VatRate:               b.decimal(item, mapping.FieldVatRate),
		Stock:                 max(int64(math.Round(b.decimal(item, mapping.FieldStock))), 0),
		Images:                b.images(item),
		Attributes:            b.attributes(item),
		MarketplaceBrandID:    b.id(item, mapping.FieldMarketplaceBrandID),
		MarketplaceCategoryID: b.id(item, mapping.FieldMarketplaceCategoryID),
	}

	return row{item: importItem}
}

func (b rowBuilder) text(item *feed.Node, field string) string {
	path, ok := b.fieldMapping[field]
	if !ok {
		return ""
	}

	return strings.TrimSpace(feed.Value(item, path))
}

// decimal returns mapped number, missing or malformed numbers are 0.
func (b rowBuilder) decimal(item *feed.Node, field string) float64 {
	value, ok := textnorm.ParseDecimal(b.text(item, field))
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

func (b rowBuilder) id(item *feed.Node, field string) *int64 {
	id, err := strconv.ParseInt(b.text(item, field), 10, 64)
	if err != nil || id <= 0 {
		return nil
	}

	return &id
}

// images collects urls of all elements under mapped path. Single element may list several urls.
func (b rowBuilder) images(item *feed.Node) []string {
	path, ok := b.fieldMapping[mapping.FieldImages]
	if !ok {
		return []string{}
	}

	urls := []string{}
	for _, value := range feed.Values(item, path) {
		for _, url := range imageSeparators.Split(value, -1) {
			if url != "" {
				urls = append(urls, url)
			}
		}
	}

	return lo.Uniq(urls)
}

func (b rowBuilder) attributes(item *feed.Node) map[string]string {
	attributes := make(map[string]string, len(b.variantMapping))
	for attribute, path := range b.variantMapping {
		if value := strings.TrimSpace(feed.Value(item, path)); value != "" {
			attributes[attribute] = value
		}
	}

	return attributes
}
