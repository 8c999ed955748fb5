package client

import (
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseProductTilesBothPatterns(t *testing.T) {
	doc := docFrom(t, `<html>
		<li class="product">
			<a class="woocommerce-LoopProduct-link" href="https://x/product/one/"></a>
			<h2 class="woocommerce-loop-product__title">One</h2>
			<span class="sku">AK1</span>
			<img src="https://cdn/one.jpg">
		</li>
		<a class="c-loop__enlace" href="https://x/product/two/">
			<p class="c-loop__title" data-title="Two"></p>
			<p class="c-loop__sku">AK2</p>
			<div class="product-thumbnail"><img src="https://cdn/two.jpg"></div>
		</a>
	</html>`)

	records := ParseProductTiles(doc, TileOptions{})
	require.Len(t, records, 2)
	assert.Equal(t, "AK1", records[0].SKU)
	assert.Equal(t, "One", records[0].Title)
	assert.Equal(t, "AK2", records[1].SKU)
	assert.Equal(t, "Two", records[1].Title)
	assert.Equal(t, "https://cdn/two.jpg", records[1].ImageURL)
}

func TestParseProductTilesSKUFromImage(t *testing.T) {
	doc := docFrom(t, `<html>
		<li class="product">
			<a class="woocommerce-LoopProduct-link" href="https://x/product/three/"></a>
			<h2>Three</h2>
			<img src="https://cdn/uploads/ak333_detail.jpg">
		</li>
		<li class="product">
			<a class="woocommerce-LoopProduct-link" href="https://x/product/no-sku/"></a>
			<h2>No SKU Anywhere</h2>
			<img src="https://cdn/uploads/banner.jpg">
		</li>
	</html>`)

	records := ParseProductTiles(doc, TileOptions{
		SKUFromImage: regexp.MustCompile(`(?i)(AK\d+)`),
	})
	require.Len(t, records, 1)
	assert.Equal(t, "AK333", records[0].SKU)
}

func TestParseProductTilesDedupesBySKU(t *testing.T) {
	doc := docFrom(t, `<html>
		<li class="product">
			<a class="woocommerce-LoopProduct-link" href="https://x/product/one/"></a>
			<h2>One</h2><span class="sku">AK1</span>
		</li>
		<li class="product">
			<a class="woocommerce-LoopProduct-link" href="https://x/product/one-again/"></a>
			<h2>One Again</h2><span class="sku">AK1</span>
		</li>
	</html>`)

	records := ParseProductTiles(doc, TileOptions{})
	assert.Len(t, records, 1)
}

func TestHasNextPage(t *testing.T) {
	withNext := docFrom(t, `<nav><a class="next page-numbers" href="/page/2/">2</a></nav>`)
	assert.True(t, HasNextPage(withNext))

	lastPage := docFrom(t, `<nav><a class="page-numbers" href="/page/1/">1</a></nav>`)
	assert.False(t, HasNextPage(lastPage))
}

func TestParseSetSKUsStrategies(t *testing.T) {
	doc := docFrom(t, `<html>
		<li class="product"><p class="c-loop__sku">ak11701</p></li>
		<li class="product"><a data-product_sku="AK11702" href="#"></a></li>
		<li class="product"><a href="https://x/product/ak11703-mega-set/">Set</a></li>
		<li class="product"><a href="https://x/product/not-a-sku/">Junk</a></li>
		<li class="product"><p class="c-loop__sku">AK11701</p></li>
	</html>`)

	validate := regexp.MustCompile(`(?i)^AK\d+$`).MatchString
	skus := ParseSetSKUs(doc, validate)
	assert.Equal(t, []string{"AK11701", "AK11702", "AK11703"}, skus)
}
