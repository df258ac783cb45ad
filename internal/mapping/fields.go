package mapping

// Canonical product field keys.
const (
	FieldName                  = "name"
	FieldSKU                   = "sku"
	FieldBarcode               = "barcode"
	FieldDescription           = "description"
	FieldBrand                 = "brand"
	FieldCategory              = "category"
	FieldSalePrice             = "salePrice"
	FieldListPrice             = "listPrice"
	FieldCostPrice             = "costPrice"
	FieldStock                 = "stock"
	FieldVatRate               = "vatRate"
	FieldCurrency              = "currency"
	FieldImages                = "images"
	FieldProductMainID         = "productMainId"
	FieldMarketplaceBrandID    = "marketplaceBrandId"
	FieldMarketplaceCategoryID = "marketplaceCategoryId"
)

// Variant attribute keys.
const (
	VariantColor    = "color"
	VariantSize     = "size"
	VariantMaterial = "material"
	VariantPattern  = "pattern"
	VariantOther    = "other"
)

// Field is canonical schema field tags are matched against.
type Field struct {
	Key      string
	Synonyms []string
	Numeric  bool
	Image    bool
}

// MainFields are canonical product fields. Order resolves equally scored candidates.
var MainFields = []Field{
	{
		Key:      FieldName,
		Synonyms: []string{"title", "product_name", "urun_adi", "urun_ismi", "urunadi", "isim", "adi", "baslik"},
	},
	{
		Key: FieldSKU,
		Synonyms: []string{
			"stok_kodu", "stock_code", "product_code", "urun_kodu", "model_kodu", "kod", "code",
			"id", "product_id", "merchant_sku", "mpn",
		},
	},
	{
		Key:      FieldBarcode,
		Synonyms: []string{"barkod", "gtin", "ean", "upc", "isbn"},
	},
	{
		Key: FieldDescription,
		Synonyms: []string{
			"aciklama", "desc", "detail", "details", "urun_aciklamasi", "icerik", "content", "summary",
		},
	},
	{
		Key:      FieldBrand,
		Synonyms: []string{"marka", "manufacturer", "uretici", "vendor"},
	},
	{
		Key: FieldCategory,
		Synonyms: []string{
			"kategori", "category_name", "kategori_adi", "product_type", "product_category", "cat", "breadcrumb",
		},
	},
	{
		Key: FieldSalePrice,
		Synonyms: []string{
			"fiyat", "price", "satis_fiyati", "indirimli_fiyat", "discounted_price", "special_price", "selling_price",
		},
		Numeric: true,
	},
	{
		Key: FieldListPrice,
		Synonyms: []string{
			"liste_fiyati", "piyasa_fiyati", "msrp", "old_price", "eski_fiyat", "regular_price", "original_price", "rrp",
		},
		Numeric: true,
	},
	{
		Key:      FieldCostPrice,
		Synonyms: []string{"alis_fiyati", "maliyet", "cost", "buying_price", "purchase_price"},
		Numeric:  true,
	},
	{
		Key:      FieldStock,
		Synonyms: []string{"stok", "quantity", "qty", "adet", "miktar", "inventory", "stock_quantity", "stok_adedi"},
		Numeric:  true,
	},
	{
		Key:      FieldVatRate,
		Synonyms: []string{"kdv", "vat", "tax", "tax_rate", "kdv_orani", "vergi"},
		Numeric:  true,
	},
	{
		Key:      FieldCurrency,
		Synonyms: []string{"para_birimi", "doviz", "currency_code", "curr", "kur"},
	},
	{
		Key: FieldImages,
		Synonyms: []string{
			"image", "resim", "resimler", "gorsel", "gorseller", "foto", "photo", "picture",
			"image_url", "image_link", "img",
		},
		Image: true,
	},
	{
		Key: FieldProductMainID,
		Synonyms: []string{
			"group_id", "item_group_id", "model_id", "ana_urun_kodu", "parent_sku", "varyant_grubu",
		},
	},
	{
		Key:      FieldMarketplaceBrandID,
		Synonyms: []string{"brand_id", "marka_id", "trendyol_brand_id"},
		Numeric:  true,
	},
	{
		Key:      FieldMarketplaceCategoryID,
		Synonyms: []string{"category_id", "kategori_id", "trendyol_category_id"},
		Numeric:  true,
	},
}

// VariantFields are variant attribute fields. They are scored independently of MainFields.
var VariantFields = []Field{
	{Key: VariantColor, Synonyms: []string{"renk", "colour", "renk_adi"}},
	{Key: VariantSize, Synonyms: []string{"beden", "boyut", "numara", "olcu", "ebat"}},
	{Key: VariantMaterial, Synonyms: []string{"materyal", "malzeme", "kumas", "fabric"}},
	{Key: VariantPattern, Synonyms: []string{"desen", "print", "motif"}},
	{Key: VariantOther, Synonyms: []string{"ozellik", "attribute", "varyant", "variant", "secenek", "option"}},
}
