// Package filter classifies scraped records as individual sellable paints
// versus sets, bundles, tools and other accessories.
package filter

import (
	"regexp"
	"strings"

	"paintdb/scraper/internal/domain"
)

// Rules holds one brand's product filter. Zero values disable a rule: a nil
// SetSKUs means no exclusion list, MaxPriceCents 0 means no price ceiling.
type Rules struct {
	// SKUPatterns are the brand's valid individual-paint SKU formats.
	SKUPatterns []*regexp.Regexp
	// ExcludeWords reject by case-insensitive substring match against the
	// product name or URL (sets, bundles, brushes, ...).
	ExcludeWords []string
	// SetSKUs reports whether a SKU belongs to a known set product.
	SetSKUs func(sku string) bool
	// MaxPriceCents rejects multi-packs by price when the brand lists them
	// alongside individual pots.
	MaxPriceCents int
}

// IsIndividualPaint applies the rules in order; the first failing rule
// rejects the record.
func (r Rules) IsIndividualPaint(rec domain.Record) bool {
	sku := strings.ToUpper(strings.TrimSpace(rec.SKU))

	if len(r.SKUPatterns) > 0 {
		valid := false
		for _, pat := range r.SKUPatterns {
			if pat.MatchString(sku) {
				valid = true
				break
			}
		}
		if !valid {
			return false
		}
	}

	haystack := strings.ToLower(rec.Title + " " + rec.ProductURL)
	for _, word := range r.ExcludeWords {
		if strings.Contains(haystack, word) {
			return false
		}
	}

	if r.SetSKUs != nil && r.SetSKUs(sku) {
		return false
	}

	if r.MaxPriceCents > 0 && rec.PriceCents > r.MaxPriceCents {
		return false
	}

	return true
}
