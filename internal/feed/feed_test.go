package feed_test

import (
	"context"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/MichalMitros/feed-importer/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitItems(t *testing.T) {
	tests := map[string]struct {
		file     string
		wantSKUs []string
		skuPath  string
	}{
		"products wrapper": {
			file:     "products.xml",
			skuPath:  "stok_kodu",
			wantSKUs: []string{"TS-001", "TS-002"},
		},
		"rss channel": {
			file:     "rss.xml",
			skuPath:  "id",
			wantSKUs: []string{"TV_123456", "TV_654321"},
		},
		"root wrapper": {
			file:     "root.xml",
			skuPath:  "sku",
			wantSKUs: []string{"A1", "A2", "A3"},
		},
		"bare items": {
			file:     "bare.xml",
			skuPath:  "sku",
			wantSKUs: []string{"B1", "B2"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := decodeFile(t, tt.file)

			items := feed.Items(doc)

			skus := make([]string, 0, len(items))
			for _, item := range items {
				skus = append(skus, feed.Value(item, tt.skuPath))
			}
			assert.Equal(t, tt.wantSKUs, skus, "should find all items")
		})
	}
}

func TestUnitItemsStrategyPriority(t *testing.T) {
	doc, err := feed.Decode(context.TODO(), strings.NewReader(
		`<catalog><item><sku>I1</sku></item><urun><sku>U1</sku></urun><item><sku>I2</sku></item></catalog>`,
	))
	require.NoError(t, err, "shouldn't return any error")

	items := feed.Items(doc)

	require.Len(t, items, 2, "should use the first item name with any match")
	assert.Equal(t, "I1", feed.Value(items[0], "sku"))
	assert.Equal(t, "I2", feed.Value(items[1], "sku"))
}

func TestUnitItemsNotFound(t *testing.T) {
	doc, err := feed.Decode(context.TODO(), strings.NewReader(`<shop><offer><id>1</id></offer></shop>`))
	require.NoError(t, err, "shouldn't return any error")

	assert.Empty(t, feed.Items(doc), "shouldn't find any item")
}

func TestUnitFlatten(t *testing.T) {
	doc := decodeFile(t, "products.xml")
	items := feed.Items(doc)
	require.NotEmpty(t, items)

	fields := feed.Flatten(items[0])

	assert.Equal(t, []feed.Field{
		{Path: "stok_kodu", Value: "TS-001"},
		{Path: "urun_adi", Value: "Basic Tişört"},
		{Path: "aciklama", Value: "Pamuklu kumaş, rahat kesim"},
		{Path: "fiyat", Value: "129,90"},
		{Path: "images.image", Value: "https://cdn.example.com/ts-001-1.jpg"},
		{Path: "images.image", Value: "https://cdn.example.com/ts-001-2.jpg"},
		{Path: "kategori", Value: "Giyim > Tişört"},
	}, fields, "should flatten leaf fields without attributes")
}

func TestUnitValues(t *testing.T) {
	doc := decodeFile(t, "rss.xml")
	items := feed.Items(doc)
	require.Len(t, items, 2)

	assert.Equal(t, []string{"14.95 USD"}, feed.Values(items[0], "shipping.price"), "should follow nested path")
	assert.Equal(t, []string{"159.00 USD"}, feed.Values(items[0], "price"), "should read only direct children")
	assert.Empty(t, feed.Values(items[1], "shipping.price"), "should return no values for missing path")
	assert.Equal(t, "", feed.Value(items[1], ""), "should return empty value for empty path")
}

func TestUnitDecodeCharset(t *testing.T) {
	xmlFile := "<?xml version=\"1.0\" encoding=\"ISO-8859-9\"?><products><product><name>Kad\xfdn</name></product></products>"

	doc, err := feed.Decode(context.TODO(), strings.NewReader(xmlFile))
	require.NoError(t, err, "shouldn't return any error")

	items := feed.Items(doc)
	require.Len(t, items, 1)
	assert.Equal(t, "Kadın", feed.Value(items[0], "name"), "should decode declared charset")
}

func TestUnitDecodeBadXMLFormat(t *testing.T) {
	_, err := feed.Decode(context.TODO(), strings.NewReader("<products><product><<>></product></products>"))

	require.ErrorIs(t, err, feed.ErrMalformedFeed, "should return malformed feed error")
}

func TestUnitDecodeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := feed.Decode(ctx, strings.NewReader("<products><product/></products>"))

	require.ErrorIs(t, err, context.Canceled, "should stop decoding")
}

// decodeFile decodes file from testdata directory.
func decodeFile(t *testing.T, name string) *feed.Node {
	t.Helper()

	file, err := os.Open(path.Join("testdata", name))
	require.NoError(t, err, "can't open test file")
	t.Cleanup(func() {
		_ = file.Close()
	})

	doc, err := feed.Decode(context.TODO(), file)
	require.NoError(t, err, "can't decode test file")

	return doc
}
