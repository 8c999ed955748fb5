// Package brand holds the per-vendor scraping configuration: product
// ranges, listing sources, filter rules and normalization hooks. The
// scraping loop itself lives in the service package; everything a vendor
// does differently is expressed as data or a Source implementation here.
package brand

import (
	"context"
	"sort"

	"paintdb/scraper/internal/assemble"
	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/normalize"
	"paintdb/scraper/internal/sampler"
)

// NameKey builds the fuzzy join key for a name: range suffix stripped,
// then lowercased with punctuation and filler words removed.
func NameKey(raw string, fillers, suffixWords []string) string {
	return normalize.Name(normalize.CleanName(raw, suffixWords), fillers)
}

// Range is one scrapeable product line of a brand. RangeName is the value
// written into catalogue entries; Category is set only when the brand
// subdivides one range into filterable categories.
type Range struct {
	Key       string
	Name      string
	RangeName string
	URL       string
	Category  string
	Type      domain.PaintType
	// Layout selects the sampling regions for this range's product
	// imagery.
	Layout sampler.Layout
	// Vector marks ranges whose imagery is SVG; colors come from fill
	// analysis instead of pixel sampling.
	Vector bool
	// OutputFile is the catalogue file this range is written to. Ranges
	// sharing a file are concatenated before assembly.
	OutputFile string
	// ExcludeSKUs drops products that the storefront lists under this
	// range but that canonically belong to another one.
	ExcludeSKUs []string
	// ImageURL overrides the tile image with a per-SKU detail image when
	// the tile shot does not show the paint color.
	ImageURL func(sku string) string
}

// Source produces the raw records of one range, one page at a time. The
// boolean reports whether a further page exists. Implementations may
// ignore the fetcher (static data) or the page number (single-page
// sources).
type Source interface {
	Page(ctx context.Context, f client.Fetcher, r Range, page int) ([]domain.Record, bool, error)
}

// Brand bundles everything the scraping service needs for one vendor.
type Brand struct {
	Name   string
	Key    string
	Ranges []Range
	Source Source

	// Rules classify records as individual paints. The zero value keeps
	// everything.
	Rules filter.Rules
	// FillerWords are stripped from names before fuzzy matching.
	FillerWords []string
	// SuffixWords identify trailing range annotations to cut from display
	// names.
	SuffixWords []string
	// TypeOverrides extend the shared keyword chain for this brand.
	TypeOverrides []assemble.TypeOverride
	// NormalizeSKU is the brand's SKU canonicalizer.
	NormalizeSKU func(string) string
	// GenericCategory is the placeholder category a duplicate record with
	// a specific category may upgrade during assembly.
	GenericCategory string
	// MakeID overrides the SKU-based entry id during assembly.
	MakeID func(sku, name string) string
	// HexOverrides pins known colors for SKUs whose imagery cannot be
	// sampled (spray cans, clear varnishes).
	HexOverrides map[string]string
	// LayoutFor overrides the range layout per record when a single range
	// mixes image styles (swatches next to spray cans). Nil means the
	// range layout applies to every record.
	LayoutFor func(rec domain.Record) (sampler.Layout, bool)
	// FindImage resolves the sampling image for a record whose listing
	// tile carries none. Called from inside the sampling worker pool.
	FindImage func(ctx context.Context, f client.Fetcher, rec domain.Record) (string, error)
	// FetchSets retrieves the vendor's set/pack SKUs for exclusion. Nil
	// when the vendor has no set listing endpoint.
	FetchSets func(ctx context.Context, f client.Fetcher) ([]string, error)
	// CrossReference runs once after every range has been scraped, keyed
	// by range key. Used for cures that need the whole picture, like
	// borrowing hex values from a sibling range.
	CrossReference func(byRange map[string][]domain.Record)
	// Static brands carry hex values in their source data; the service
	// skips color sampling entirely.
	Static bool
}

// FindRange looks a range up by key.
func (b Brand) FindRange(key string) (Range, bool) {
	for _, r := range b.Ranges {
		if r.Key == key {
			return r, true
		}
	}
	return Range{}, false
}

// RangeKeys returns the range keys in declaration order.
func (b Brand) RangeKeys() []string {
	keys := make([]string, len(b.Ranges))
	for i, r := range b.Ranges {
		keys[i] = r.Key
	}
	return keys
}

// OutputFiles returns the distinct catalogue files of the brand, sorted.
func (b Brand) OutputFiles() []string {
	seen := make(map[string]struct{})
	var files []string
	for _, r := range b.Ranges {
		if r.OutputFile == "" {
			continue
		}
		if _, dup := seen[r.OutputFile]; dup {
			continue
		}
		seen[r.OutputFile] = struct{}{}
		files = append(files, r.OutputFile)
	}
	sort.Strings(files)
	return files
}

// MergeKeys returns the join keys used when reconciling scraped records
// into existing catalogue files.
func (b Brand) MergeKeys() (sku func(string) string, name func(string) string) {
	return b.NormalizeSKU, func(raw string) string {
		return NameKey(raw, b.FillerWords, b.SuffixWords)
	}
}

// AssembleParams returns the assembly configuration for one range.
func (b Brand) AssembleParams(r Range) assemble.Params {
	return assemble.Params{
		Brand:           b.Name,
		RangeName:       r.RangeName,
		NormalizeSKU:    b.NormalizeSKU,
		SuffixWords:     b.SuffixWords,
		GenericCategory: b.GenericCategory,
		MakeID:          b.MakeID,
	}
}
