package brand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarcoloursLayerRange(t *testing.T) {
	b := Warcolours()
	assert.True(t, b.Static)

	r, ok := b.FindRange("layer")
	require.True(t, ok)

	records, more, err := b.Source.Page(context.Background(), nil, r, 1)
	require.NoError(t, err)
	assert.False(t, more)

	// 18 families of 5 layers plus white and black.
	assert.Len(t, records, 92)

	first := records[0]
	assert.Equal(t, "Orange 1", first.Title)
	assert.Equal(t, "WC-LAY-ORANGE1", first.SKU)
	assert.Equal(t, "#F8C882", first.Hex)
	assert.Equal(t, "Orange", first.BrandData["colorFamily"])
	assert.Equal(t, 1, first.BrandData["layer"])
}

func TestWarcoloursNeutralsCarryNoLayer(t *testing.T) {
	b := Warcolours()
	r, _ := b.FindRange("layer")
	records, _, err := b.Source.Page(context.Background(), nil, r, 1)
	require.NoError(t, err)

	white := records[len(records)-2]
	assert.Equal(t, "White", white.Title)
	assert.Equal(t, "#FFFFFF", white.Hex)
	assert.Equal(t, "Neutral", white.BrandData["colorFamily"])
	_, hasLayer := white.BrandData["layer"]
	assert.False(t, hasLayer)
}

func TestWarcoloursSKUGeneration(t *testing.T) {
	assert.Equal(t, "WC-LAY-COOLGREY1", warcoloursSKU("LAY", "Cool Grey 1"))
	assert.Equal(t, "WC-MET-METALLICBLACKSILVER", warcoloursSKU("MET", "Metallic Black Silver"))
}

func TestWarcoloursID(t *testing.T) {
	b := Warcolours()
	require.NotNil(t, b.MakeID)

	assert.Equal(t, "warcolours-layer-cool-grey-1", b.MakeID("WC-LAY-COOLGREY1", "Cool Grey 1"))
	assert.Equal(t, "warcolours-ink-phthalo-blue", b.MakeID("WC-INK-PHTHALOBLUE", "Phthalo Blue"))
	// One Coat entries are typed opaque and their ids follow the type.
	assert.Equal(t, "warcolours-opaque-white", b.MakeID("WC-ONE-WHITE", "White"))
}

func TestWarcoloursRangeTable(t *testing.T) {
	b := Warcolours()
	assert.Len(t, b.Ranges, 8)

	counts := map[string]int{
		"layer": 92, "metallic": 28, "onecoat": 20, "transparent": 20,
		"ink": 22, "glaze": 20, "fluorescent": 7, "antithesis": 36,
	}
	for key, want := range counts {
		r, ok := b.FindRange(key)
		require.True(t, ok, key)
		records, _, err := b.Source.Page(context.Background(), nil, r, 1)
		require.NoError(t, err, key)
		assert.Len(t, records, want, key)
		assert.Equal(t, "warcolours_"+key+".json", r.OutputFile)
	}
}
