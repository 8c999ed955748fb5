package brand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintdb/scraper/internal/domain"
)

func TestAKPageURL(t *testing.T) {
	b := AK(nil)

	gen, ok := b.FindRange("standard")
	require.True(t, ok)
	assert.Equal(t,
		"https://ak-interactive.com/product-category/paints/paints-acrylics/3rd-acrylics/?pa_3rd-color-range=standard",
		akPageURL(gen, 1))
	assert.Equal(t,
		"https://ak-interactive.com/product-category/paints/paints-acrylics/3rd-acrylics/page/3/?pa_3rd-color-range=standard",
		akPageURL(gen, 3))

	inks, ok := b.FindRange("the-inks")
	require.True(t, ok)
	assert.Equal(t, inks.URL, akPageURL(inks, 1))
	assert.Equal(t, inks.URL+"page/2/", akPageURL(inks, 2))
}

func TestAKPageParsesWooCommerceTiles(t *testing.T) {
	b := AK(nil)
	r, _ := b.FindRange("the-inks")

	page := `<html><ul class="products">
		<li class="product">
			<a class="woocommerce-LoopProduct-link" href="https://ak-interactive.com/product/wood-brown-ink/"></a>
			<h2 class="woocommerce-loop-product__title">WOOD BROWN – INK</h2>
			<span class="sku">AK160</span>
			<img src="https://ak-interactive.com/wp-content/uploads/AK160.jpg">
		</li>
		<li class="product">
			<a class="woocommerce-LoopProduct-link" href="https://ak-interactive.com/product/black-ink/"></a>
			<h2 class="woocommerce-loop-product__title">BLACK – INK</h2>
			<img src="https://ak-interactive.com/wp-content/uploads/ak161_thumb.jpg">
		</li>
	</ul></html>`

	f := fakeFetcher{pages: map[string]string{r.URL: page}}
	records, more, err := b.Source.Page(context.Background(), f, r, 1)
	require.NoError(t, err)
	assert.False(t, more)
	require.Len(t, records, 2)

	assert.Equal(t, "AK160", records[0].SKU)
	assert.Equal(t, "WOOD BROWN – INK", records[0].Title)

	// Tiles without a SKU element fall back to the thumbnail filename.
	assert.Equal(t, "AK161", records[1].SKU)
}

func TestAKSetsPageURL(t *testing.T) {
	base := "https://ak-interactive.com/product-category/real-colors-en/"
	assert.Equal(t, base+"?"+akSetsFilter, akSetsPageURL(base, 1))
	assert.Equal(t,
		"https://ak-interactive.com/product-category/real-colors-en/page/2/?"+akSetsFilter,
		akSetsPageURL(base, 2))
}

func TestAKCrossReferenceFillsMarkerHex(t *testing.T) {
	byRange := map[string][]domain.Record{
		"real-colors": {
			{SKU: "RC001", Title: "Flat Black – Real Colors", Hex: "#0A0A0A"},
			{SKU: "RC002", Title: "Unsampled White"},
		},
		"rc-markers": {
			{SKU: "RCM001", Title: "Flat Black – Marker"},
			{SKU: "RCM002", Title: "Unsampled White"},
			{SKU: "RCM003", Title: "Olive Drab", Hex: "#556B2F"},
		},
	}

	akCrossReference(byRange)

	markers := byRange["rc-markers"]
	assert.Equal(t, "#0A0A0A", markers[0].Hex)
	// A source bottle without hex contributes nothing.
	assert.Equal(t, "", markers[1].Hex)
	// Already-sampled markers keep their own color.
	assert.Equal(t, "#556B2F", markers[2].Hex)
}

func TestAKMarkerDetailImageURL(t *testing.T) {
	b := AK(nil)
	r, ok := b.FindRange("rc-markers")
	require.True(t, ok)
	require.NotNil(t, r.ImageURL)
	assert.Equal(t,
		"https://ak-interactive.com/wp-content/uploads/2024/06/RCM001_detail.jpg",
		r.ImageURL("rcm001"))
}

func TestAK3GenRangesShareOutputFile(t *testing.T) {
	b := AK(nil)
	for _, key := range []string{"standard", "intense", "metallic", "air"} {
		r, ok := b.FindRange(key)
		require.True(t, ok, key)
		assert.Equal(t, "ak_3gen.json", r.OutputFile, key)
		assert.Equal(t, "3rd Generation", r.RangeName, key)
	}
	assert.Contains(t, b.OutputFiles(), "ak_3gen.json")
	assert.Contains(t, b.OutputFiles(), "ak_real_colors.json")
}
