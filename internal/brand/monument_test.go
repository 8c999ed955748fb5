package brand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/sampler"
)

func TestMonumentPageParsesShopifyMeta(t *testing.T) {
	b := Monument()
	r, ok := b.FindRange("paint-singles")
	require.True(t, ok)

	page := `<html><script>
		var meta = {"products":[
			{"handle":"pro-acryl-bold-titanium-white","variants":[{"sku":"MPA-001","name":"001-Pro Acryl Bold Titanium White"}]},
			{"handle":"pro-acryl-coal-black","variants":[{"sku":"MPA-002","name":"002-Pro Acryl Coal Black"}]},
			{"handle":"empty-variant","variants":[]}
		]};
	</script></html>`

	f := fakeFetcher{pages: map[string]string{r.URL + "?page=1": page}}
	records, more, err := b.Source.Page(context.Background(), f, r, 1)
	require.NoError(t, err)
	assert.False(t, more)
	require.Len(t, records, 2)

	rec := records[0]
	assert.Equal(t, "MPA-001", rec.SKU)
	assert.Equal(t, "Bold Titanium White", rec.Title)
	assert.Equal(t, "https://monumenthobbies.com/products/pro-acryl-bold-titanium-white", rec.ProductURL)
	assert.Equal(t, "Standard Colors", rec.Category)
	assert.Equal(t, domain.PaintTypeOpaque, rec.Type)
	assert.Equal(t, "Pro Acryl", rec.RangeName)
}

func TestMonumentCategorize(t *testing.T) {
	tests := []struct {
		sku      string
		category string
		typ      domain.PaintType
	}{
		{"MPA-001", "Standard Colors", domain.PaintTypeOpaque},
		{"MPA-025", "Metallics", domain.PaintTypeMetallic},
		{"MPA-046", "Transparents", domain.PaintTypeTransparent},
		{"MPA-201", "Washes", domain.PaintTypeWash},
		{"MPA-S01", "Signature Series", domain.PaintTypeOpaque},
		{"MPA-S24", "Signature Series", domain.PaintTypeMetallic},
		{"MPA-F01", "Fluorescents", domain.PaintTypeOpaque},
		{"MPAP-001", "Primers", domain.PaintTypePrimer},
		{"MPAR-P01", "Spray Primers", domain.PaintTypeSpray},
		{"MPAR-V01", "Spray Varnishes", domain.PaintTypeVarnish},
		{"MPAM-001", "Mediums", domain.PaintTypeThinner},
		{"MPAM-002", "Mediums", domain.PaintTypeTechnical},
		{"AMP-011", "AMP Colors", domain.PaintTypeWash},
		{"AMP-010", "AMP Colors", domain.PaintTypeMetallic},
		{"AMP-001", "AMP Colors", domain.PaintTypeOpaque},
		{"MEA-001", "Expert Acrylics", domain.PaintTypeOpaque},
	}
	for _, tt := range tests {
		category, typ := monumentCategorize(tt.sku)
		assert.Equal(t, tt.category, category, tt.sku)
		assert.Equal(t, tt.typ, typ, tt.sku)
	}
}

func TestMonumentCleanName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"001-Pro Acryl Bold Titanium White", "Bold Titanium White"},
		{"PRO Acryl PRIME 001 - Black", "Black"},
		{"Spray - Matte Sealer", "Matte Sealer"},
		{"S01 - Vince Venturella Ethereal Teal", "Ethereal Teal"},
		{"Pro Acryl Coal Black", "Coal Black"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, monumentCleanName(tt.raw), tt.raw)
	}
}

func TestMonumentArtist(t *testing.T) {
	assert.Equal(t, "Vince Venturella", monumentArtist("MPA-S01"))
	assert.Equal(t, "Ninjon", monumentArtist("MPA-S07"))
	assert.Equal(t, "NOVA", monumentArtist("MPA-S49"))
	assert.Equal(t, "", monumentArtist("MPA-S45"))
	assert.Equal(t, "", monumentArtist("MPA-001"))
}

func TestMonumentLayoutSelection(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.Record
		want string
	}{
		{"expert acrylics", domain.Record{SKU: "MEA-001"}, sampler.ExpertBand.Name},
		{"brush-on primer image", domain.Record{SKU: "MPA-090", ImageURL: "https://x/Brush-On-Primer.png"}, sampler.SwatchCore.Name},
		{"bottled primer", domain.Record{SKU: "MPAP-001"}, sampler.PrimerLabel.Name},
		{"spray can", domain.Record{SKU: "MPAR-001"}, sampler.SprayBody.Name},
		{"default swatch", domain.Record{SKU: "MPA-001"}, sampler.SwatchCore.Name},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, ok := monumentLayout(tt.rec)
			assert.True(t, ok)
			assert.Equal(t, tt.want, layout.Name)
		})
	}
}

func TestMonumentFindImageSkipsLogoFiles(t *testing.T) {
	page := `<html>
		<img src="//monumenthobbies.com/cdn/shop/files/Monument_Logo.png">
		<img src="//monumenthobbies.com/cdn/shop/files/MPA-001_Swatch.png">
	</html>`
	f := fakeFetcher{pages: map[string]string{"https://monumenthobbies.com/products/x": page}}

	url, err := monumentFindImage(context.Background(), f, domain.Record{
		ProductURL: "https://monumenthobbies.com/products/x",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://monumenthobbies.com/cdn/shop/files/MPA-001_Swatch.png", url)
}
