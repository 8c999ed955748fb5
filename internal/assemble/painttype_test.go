package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paintdb/scraper/internal/domain"
)

func TestPaintTypeFor(t *testing.T) {
	extra := []TypeOverride{
		{Keyword: "metallic", Type: domain.PaintTypeMetallic},
		{Keyword: "ink", Type: domain.PaintTypeInk},
	}

	tests := []struct {
		name string
		in   string
		want domain.PaintType
	}{
		{"varnish keyword", "Ultra Matte Varnish", domain.PaintTypeVarnish},
		{"thinner keyword", "Acrylic Thinner", domain.PaintTypeThinner},
		{"primer keyword", "Grey Primer", domain.PaintTypePrimer},
		{"trailing medium", "Glaze Medium", domain.PaintTypeTechnical},
		{"medium for", "Medium for Airbrush", domain.PaintTypeTechnical},
		{"medium as color word stays default", "Medium Blue", domain.PaintTypeOpaque},
		{"brand override", "Gun Metallic", domain.PaintTypeMetallic},
		{"brand ink override", "Wood Brown Ink", domain.PaintTypeInk},
		{"no keyword falls back", "Slate Grey", domain.PaintTypeOpaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaintTypeFor(tt.in, extra, domain.PaintTypeOpaque))
		})
	}
}

func TestPaintTypeForSharedBeatsBrandOverrides(t *testing.T) {
	extra := []TypeOverride{{Keyword: "metal", Type: domain.PaintTypeMetallic}}
	// "Metal Varnish" carries both keywords; the shared chain runs first.
	assert.Equal(t, domain.PaintTypeVarnish, PaintTypeFor("Metal Varnish", extra, domain.PaintTypeOpaque))
}
