package textnorm_test

import (
	"testing"

	"github.com/MichalMitros/feed-importer/internal/textnorm"
	"github.com/stretchr/testify/assert"
)

func TestUnitFold(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"turkish":      {input: "Açıklama", want: "aciklama"},
		"dotted i":     {input: "İndirimli Fiyat", want: "indirimli fiyat"},
		"all letters":  {input: "ĞÜŞÖÇ ğüşöç", want: "gusoc gusoc"},
		"ascii":        {input: "Sale_Price", want: "sale_price"},
		"empty string": {},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Fold(tt.input), "should fold text")
		})
	}
}

func TestUnitStripSeparators(t *testing.T) {
	assert.Equal(t, "salepricev2", textnorm.StripSeparators("sale_price.v-2 "), "should keep letters and digits only")
}
