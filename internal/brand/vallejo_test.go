package brand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vallejoListingPage = `<html><ul class="products">
	<li class="product">
		<a class="featured-image" href="https://acrylicosvallejo.com/en/product/flat-red/"></a>
		<h2 class="woocommerce-loop-product__title">Flat Red</h2>
		<span class="referencia">70957</span>
		<img srcset="https://cdn/flat-red-300.jpg 300w, https://cdn/flat-red-800.jpg 800w, https://cdn/flat-red-150.jpg 150w">
	</li>
	<li class="product">
		<a href="https://acrylicosvallejo.com/en/product/flat-blue/"></a>
		<h2>Flat Blue</h2>
		<span class="referencia">70.962</span>
		<img src="https://cdn/flat-blue.jpg">
	</li>
	<li class="product">
		<a class="featured-image" href="https://acrylicosvallejo.com/en/product/no-sku/"></a>
		<h2>Mystery Tile</h2>
	</li>
</ul>
<nav><a class="next page-numbers" href="https://acrylicosvallejo.com/en/category/hobby/model-color-en/page/2/">2</a></nav>
</html>`

func TestVallejoPageParsesTiles(t *testing.T) {
	b := Vallejo()
	r, ok := b.FindRange("model-color-en")
	require.True(t, ok)

	f := fakeFetcher{pages: map[string]string{r.URL: vallejoListingPage}}
	records, more, err := b.Source.Page(context.Background(), f, r, 1)
	require.NoError(t, err)
	assert.True(t, more)
	require.Len(t, records, 2)

	red := records[0]
	assert.Equal(t, "Flat Red", red.Title)
	// Bare five-digit references gain the dot.
	assert.Equal(t, "70.957", red.SKU)
	assert.Equal(t, "https://cdn/flat-red-800.jpg", red.ImageURL)
	assert.Equal(t, "https://acrylicosvallejo.com/en/product/flat-red/", red.ProductURL)

	assert.Equal(t, "70.962", records[1].SKU)
	assert.Equal(t, "https://cdn/flat-blue.jpg", records[1].ImageURL)
}

func TestVallejoSecondPageURL(t *testing.T) {
	b := Vallejo()
	r, _ := b.FindRange("model-color-en")

	lastPage := `<html><ul><li class="product">
		<a class="featured-image" href="https://x/product/last/"></a>
		<h2>Last One</h2><span class="referencia">70.999</span>
	</li></ul></html>`

	f := fakeFetcher{pages: map[string]string{r.URL + "page/2/": lastPage}}
	records, more, err := b.Source.Page(context.Background(), f, r, 2)
	require.NoError(t, err)
	assert.False(t, more)
	require.Len(t, records, 1)
	assert.Equal(t, "70.999", records[0].SKU)
}

func TestVallejoOutputFiles(t *testing.T) {
	b := Vallejo()

	r, _ := b.FindRange("model-color-en")
	assert.Equal(t, "vallejo_model_color.json", r.OutputFile)

	r, _ = b.FindRange("xpress-color-en")
	assert.Equal(t, "vallejo_xpress_color.json", r.OutputFile)

	r, _ = b.FindRange("hobby-paint")
	assert.Equal(t, "vallejo_hobby_paint.json", r.OutputFile)
}

func TestVallejoMetalColorExcludesGlossBlack(t *testing.T) {
	b := Vallejo()
	r, _ := b.FindRange("metal-color-en")
	assert.Equal(t, []string{"77.660"}, r.ExcludeSKUs)
}
