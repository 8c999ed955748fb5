package brand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintdb/scraper/internal/domain"
)

func TestReaperPageExtractsVueData(t *testing.T) {
	b := Reaper()
	r, ok := b.FindRange("core")
	require.True(t, ok)

	page := `<html><script>
		new Vue({
			data: {
				paints: [
					{"_id":"1","sku":"09003","name":"Shadowed Stone","price":389,"images":[{"filename":"09003_p.jpg"}]},
					{"_id":"2","sku":"09004","name":"Stone Grey","price":389,"images":[]},
				],
				colors: []
			}
		});
	</script></html>`

	f := fakeFetcher{pages: map[string]string{r.URL: page}}
	records, more, err := b.Source.Page(context.Background(), f, r, 1)
	require.NoError(t, err)
	assert.False(t, more)
	require.Len(t, records, 2)

	assert.Equal(t, "09003", records[0].SKU)
	assert.Equal(t, "Shadowed Stone", records[0].Title)
	assert.Equal(t, "https://images.reapermini.com/4/09003_p.jpg", records[0].ImageURL)
	assert.Equal(t, "https://www.reapermini.com/search/09003", records[0].ProductURL)
	assert.Equal(t, 389, records[0].PriceCents)

	// Products without images fall back to the SKU-derived path.
	assert.Equal(t, "https://images.reapermini.com/4/09004.jpg", records[1].ImageURL)
}

func TestReaperPageSecondPageIsEmpty(t *testing.T) {
	b := Reaper()
	r, _ := b.FindRange("core")

	records, more, err := b.Source.Page(context.Background(), fakeFetcher{}, r, 2)
	require.NoError(t, err)
	assert.False(t, more)
	assert.Empty(t, records)
}

func TestReaperCrossReferenceBuildsTriads(t *testing.T) {
	byRange := map[string][]domain.Record{
		"core": {
			{SKU: "09063", Title: "Shadow"},
			{SKU: "09064", Title: "Midtone"},
			{SKU: "09065", Title: "Highlight"},
			{SKU: "09066", Title: "Lonely Shadow"},
		},
	}

	reaperCrossReference(byRange)

	triad, ok := byRange["core"][0].BrandData["flexibleTriad"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "triad-09063", triad["triadId"])
	assert.Equal(t, []string{"reaper-09063", "reaper-09064", "reaper-09065"}, triad["colors"])

	for i := 1; i < 3; i++ {
		member, ok := byRange["core"][i].BrandData["flexibleTriad"].(map[string]any)
		require.True(t, ok, "member %d", i)
		assert.Equal(t, "triad-09063", member["triadId"])
	}

	// Incomplete groups get no triad annotation.
	assert.Nil(t, byRange["core"][3].BrandData)
}

func TestReaperCrossReferenceSpansRanges(t *testing.T) {
	byRange := map[string][]domain.Record{
		"core":  {{SKU: "09063"}, {SKU: "09064"}},
		"bones": {{SKU: "09065"}},
	}

	reaperCrossReference(byRange)

	triad, ok := byRange["bones"][0].BrandData["flexibleTriad"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "triad-09063", triad["triadId"])
}

func TestReaperFilterRejectsSetsAndHighPrices(t *testing.T) {
	b := Reaper()
	assert.True(t, b.Rules.IsIndividualPaint(domain.Record{SKU: "09003", Title: "Shadowed Stone", PriceCents: 389}))
	assert.False(t, b.Rules.IsIndividualPaint(domain.Record{SKU: "09701", Title: "Core Colors Triad", PriceCents: 389}))
	assert.False(t, b.Rules.IsIndividualPaint(domain.Record{SKU: "09955", Title: "Big Paint Thing", PriceCents: 1299}))
	assert.False(t, b.Rules.IsIndividualPaint(domain.Record{SKU: "10003", Title: "Brushes"}))
}
