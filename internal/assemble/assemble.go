// Package assemble converts flat scraped records into canonical catalogue
// entries: dedupe by SKU, type derivation, deterministic ordering.
package assemble

import (
	"regexp"
	"sort"
	"strings"

	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/normalize"
)

// Params configures assembly for one brand+range.
type Params struct {
	Brand     string
	RangeName string
	// NormalizeSKU is the brand's SKU canonicalizer; defaults to
	// normalize.SKU when nil.
	NormalizeSKU func(string) string
	// SuffixWords feed normalize.CleanName for names derived from URLs.
	SuffixWords []string
	// GenericCategory is the placeholder category a later duplicate may
	// upgrade (usually "General").
	GenericCategory string
	// MakeID overrides the SKU-based entry id; some brands key entries by
	// name instead because their SKUs carry packaging noise.
	MakeID func(sku, name string) string
}

// Assemble deduplicates records by normalized SKU and emits catalogue
// entries sorted by that SKU. The first-seen record wins every field except
// category: a later duplicate with a specific category replaces the generic
// placeholder.
func Assemble(records []domain.Record, params Params) []domain.Paint {
	normSKU := params.NormalizeSKU
	if normSKU == nil {
		normSKU = normalize.SKU
	}

	var catalogue []domain.Paint
	seen := make(map[string]int)

	for _, rec := range records {
		if rec.SKU == "" {
			continue
		}
		sku := normSKU(rec.SKU)

		if idx, dup := seen[sku]; dup {
			existing := &catalogue[idx]
			if params.GenericCategory != "" &&
				existing.Category == params.GenericCategory &&
				rec.Category != "" && rec.Category != params.GenericCategory {
				existing.Category = rec.Category
			}
			continue
		}

		name := rec.Title
		if name == "" && rec.ProductURL != "" {
			name = nameFromURL(rec.ProductURL)
		}
		if name != "" {
			name = normalize.CleanName(normalize.DisplayName(name), params.SuffixWords)
		}

		rangeName := params.RangeName
		if rangeName == "" {
			rangeName = rec.RangeName
		}

		brandData := rec.BrandData
		if brandData == nil {
			brandData = map[string]any{}
		}

		id := EntryID(params.Brand, sku)
		if params.MakeID != nil {
			id = params.MakeID(sku, name)
		}

		seen[sku] = len(catalogue)
		catalogue = append(catalogue, domain.Paint{
			Brand:        params.Brand,
			BrandData:    brandData,
			Category:     rec.Category,
			Discontinued: rec.Discontinued,
			Hex:          rec.Hex,
			ID:           id,
			Name:         name,
			Range:        rangeName,
			SKU:          sku,
			Type:         rec.Type,
			URL:          rec.ProductURL,
		})
	}

	sort.SliceStable(catalogue, func(i, j int) bool {
		return catalogue[i].SKU < catalogue[j].SKU
	})
	return catalogue
}

// EntryID derives the globally unique entry id from brand and normalized
// SKU, stable across regeneration runs.
func EntryID(brand, sku string) string {
	slug := strings.ToLower(brand)
	slug = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug + "-" + strings.ToLower(sku)
}

// nameFromURL falls back to the product URL slug when the tile carried no
// title: "/product/wood-brown-ink/" -> "Wood Brown Ink".
func nameFromURL(productURL string) string {
	trimmed := strings.TrimRight(productURL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}
	return normalize.DisplayName(strings.ReplaceAll(trimmed[idx+1:], "-", " "))
}
