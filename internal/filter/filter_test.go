package filter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"paintdb/scraper/internal/domain"
)

func TestIsIndividualPaint(t *testing.T) {
	setSKUs := map[string]struct{}{"AK11601": {}}
	rules := Rules{
		SKUPatterns:  []*regexp.Regexp{regexp.MustCompile(`^AK\d+$`)},
		ExcludeWords: []string{"set", "bundle"},
		SetSKUs: func(sku string) bool {
			_, ok := setSKUs[sku]
			return ok
		},
		MaxPriceCents: 500,
	}

	tests := []struct {
		name string
		rec  domain.Record
		want bool
	}{
		{
			"plain paint accepted",
			domain.Record{SKU: "AK11126", Title: "Slate Grey"},
			true,
		},
		{
			"set-suffixed sku rejected by pattern",
			domain.Record{SKU: "AK11126-SET", Title: "Slate Grey"},
			false,
		},
		{
			"exclude word in title",
			domain.Record{SKU: "AK11001", Title: "Starter Set Vol.1"},
			false,
		},
		{
			"exclude word in url",
			domain.Record{SKU: "AK11001", Title: "Basics", ProductURL: "https://x/product/basics-bundle/"},
			false,
		},
		{
			"known set sku rejected",
			domain.Record{SKU: "ak11601", Title: "Slate Grey"},
			false,
		},
		{
			"price above cap rejected",
			domain.Record{SKU: "AK11001", Title: "Slate Grey", PriceCents: 2999},
			false,
		},
		{
			"price at cap accepted",
			domain.Record{SKU: "AK11001", Title: "Slate Grey", PriceCents: 500},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.IsIndividualPaint(tt.rec))
		})
	}
}

func TestZeroRulesKeepEverything(t *testing.T) {
	var rules Rules
	assert.True(t, rules.IsIndividualPaint(domain.Record{SKU: "ANYTHING-SET", Title: "Mega Bundle", PriceCents: 99999}))
}
