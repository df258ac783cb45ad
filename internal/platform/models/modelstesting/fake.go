package modelstesting

import (
	"math/rand"

	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
)

// FakeImportItem returns models.ImportItem with fake data.
func FakeImportItem(ops ...func(i *models.ImportItem)) models.ImportItem {
	item := models.ImportItem{
		ID:            uuid.NewString(),
		BatchID:       uuid.NewString(),
		Position:      rand.Intn(1000),
		SKU:           faker.UUIDDigit(),
		Name:          faker.Sentence(),
		Description:   faker.Paragraph(),
		Barcode:       faker.CCNumber(),
		Brand:         faker.Word(),
		ProductMainID: faker.Word(),
		Currency:      faker.Currency(),
		ListPrice:     float64(rand.Intn(100000)) / 100,
		SalePrice:     float64(rand.Intn(100000)) / 100,
		CostPrice:     float64(rand.Intn(100000)) / 100,
		VatRate:       20,
		Stock:         rand.Int63n(500),
		Images:        fakeImageURLs(),
		Attributes: map[string]string{
			"color": faker.Word(),
		},
	}

	for _, op := range ops {
		op(&item)
	}

	return item
}

// FakeImportRequest returns models.ImportRequest with fake data.
func FakeImportRequest(ops ...func(r *models.ImportRequest)) models.ImportRequest {
	req := models.ImportRequest{
		JobID:   uuid.NewString(),
		BatchID: uuid.NewString(),
		StoreID: uuid.NewString(),
		XMLURL:  faker.URL(),
		FieldMapping: map[string]string{
			"sku":  "code",
			"name": "title",
		},
		SelectiveImport: true,
	}

	for _, op := range ops {
		op(&req)
	}

	return req
}

// FakeConnection returns active models.MarketplaceConnection with fake data.
func FakeConnection(ops ...func(c *models.MarketplaceConnection)) models.MarketplaceConnection {
	conn := models.MarketplaceConnection{
		ID:          uuid.NewString(),
		StoreID:     uuid.NewString(),
		Marketplace: "trendyol",
		SellerID:    faker.UUIDDigit(),
		APIKey:      faker.Password(),
		APISecret:   faker.Password(),
		IsActive:    true,
	}

	for _, op := range ops {
		op(&conn)
	}

	return conn
}

func fakeImageURLs() []string {
	count := rand.Intn(4)
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		urls = append(urls, faker.URL())
	}

	return urls
}
