package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"paintdb/scraper/internal/assemble"
	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/normalize"
	"paintdb/scraper/internal/sampler"
)

const reaperImageBaseURL = "https://images.reapermini.com"

// Individual paints cost about $3.89; anything above this is a set.
const reaperMaxPaintPriceCents = 500

// reaperSKURe matches individual paint SKUs: 5 digits, core/HD on 09xxx
// and Pathfinder on 89xxx.
var reaperSKURe = regexp.MustCompile(`^(09|89)\d{3}$`)

var reaperTypeOverrides = []assemble.TypeOverride{
	{Keyword: "metallic", Type: domain.PaintTypeMetallic},
	{Keyword: "metal", Type: domain.PaintTypeMetallic},
	{Keyword: "gold", Type: domain.PaintTypeMetallic},
	{Keyword: "silver", Type: domain.PaintTypeMetallic},
	{Keyword: "copper", Type: domain.PaintTypeMetallic},
	{Keyword: "bronze", Type: domain.PaintTypeMetallic},
	{Keyword: "brass", Type: domain.PaintTypeMetallic},
	{Keyword: "steel", Type: domain.PaintTypeMetallic},
	{Keyword: "iron", Type: domain.PaintTypeMetallic},
	{Keyword: "chrome", Type: domain.PaintTypeMetallic},
	{Keyword: "ink", Type: domain.PaintTypeInk},
	{Keyword: "wash", Type: domain.PaintTypeWash},
	{Keyword: "liner", Type: domain.PaintTypeWash},
	{Keyword: "glaze", Type: domain.PaintTypeTransparent},
	{Keyword: "clear", Type: domain.PaintTypeTransparent},
}

// Reaper builds the Reaper Miniatures brand. Each range is one long page
// with the full product list embedded as Vue component data.
func Reaper() Brand {
	return Brand{
		Name: "Reaper",
		Key:  "reaper",
		Ranges: []Range{
			{
				Key: "core", Name: "Master Series Core Colors",
				RangeName:  "Master Series Core",
				URL:        "https://www.reapermini.com/paints/master-series-paints-core-colors",
				Type:       domain.PaintTypeOpaque,
				Layout:     sampler.LabelCenter,
				OutputFile: "reaper_master_series_core.json",
			},
			{
				Key: "bones", Name: "Master Series Bones",
				RangeName:  "Master Series Bones",
				URL:        "https://www.reapermini.com/paints/master-series-paints-bones",
				Type:       domain.PaintTypeOpaque,
				Layout:     sampler.LabelCenter,
				OutputFile: "reaper_master_series_bones.json",
			},
			{
				Key: "pathfinder", Name: "Master Series Pathfinder",
				RangeName:  "Master Series Pathfinder",
				URL:        "https://www.reapermini.com/paints/master-series-paints-pathfinder-colors",
				Type:       domain.PaintTypeOpaque,
				Layout:     sampler.LabelCenter,
				OutputFile: "reaper_master_series_pathfinder.json",
			},
		},
		Source: reaperSource{},
		Rules: filter.Rules{
			SKUPatterns:   []*regexp.Regexp{reaperSKURe},
			ExcludeWords:  []string{"set", "kit", "pack", "triad", "collection", "colors of"},
			MaxPriceCents: reaperMaxPaintPriceCents,
		},
		FillerWords:    []string{"reaper", "master", "series", "paint"},
		TypeOverrides:  reaperTypeOverrides,
		NormalizeSKU:   normalize.SKU,
		CrossReference: reaperCrossReference,
	}
}

// reaperVuePaintsRe pulls the paints array out of the Vue component
// initialization script.
var reaperVuePaintsRe = regexp.MustCompile(`(?s)paints:\s*(\[.*?\]),\s*colors:`)

var trailingCommaRe = regexp.MustCompile(`,\s*]`)

type reaperProduct struct {
	ID     string `json:"_id"`
	SKU    string `json:"sku"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Images []struct {
		Filename string `json:"filename"`
	} `json:"images"`
}

type reaperSource struct{}

func (reaperSource) Page(ctx context.Context, f client.Fetcher, r Range, page int) ([]domain.Record, bool, error) {
	if page > 1 {
		return nil, false, nil
	}

	body, err := f.GetText(ctx, r.URL)
	if err != nil {
		return nil, false, err
	}

	m := reaperVuePaintsRe.FindStringSubmatch(body)
	if m == nil {
		return nil, false, fmt.Errorf("no embedded paint data at %s", r.URL)
	}

	raw := trailingCommaRe.ReplaceAllString(m[1], "]")
	var products []reaperProduct
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false, fmt.Errorf("failed to parse embedded paint data: %w", err)
	}

	records := make([]domain.Record, 0, len(products))
	for _, p := range products {
		records = append(records, domain.Record{
			Title:      p.Name,
			SKU:        p.SKU,
			ImageURL:   reaperImageURL(p),
			ProductURL: "https://www.reapermini.com/search/" + p.SKU,
			PriceCents: p.Price,
		})
	}
	return records, false, nil
}

// reaperImageURL prefers the product's own image filename and falls back
// to the SKU-derived path.
func reaperImageURL(p reaperProduct) string {
	if len(p.Images) > 0 && p.Images[0].Filename != "" {
		return fmt.Sprintf("%s/4/%s", reaperImageBaseURL, p.Images[0].Filename)
	}
	if p.SKU != "" {
		return fmt.Sprintf("%s/4/%s.jpg", reaperImageBaseURL, p.SKU)
	}
	return ""
}

// reaperCrossReference annotates paints with their triad. Consecutive
// SKUs starting at 09003 form shadow/midtone/highlight triads, so the
// group is pure SKU arithmetic; only complete groups of three are kept.
func reaperCrossReference(byRange map[string][]domain.Record) {
	type member struct {
		rangeKey string
		index    int
		sku      string
	}
	triads := make(map[int][]member)

	for key, records := range byRange {
		for i, rec := range records {
			n, err := strconv.Atoi(rec.SKU)
			if err != nil || n < 9003 {
				continue
			}
			base := ((n-3)/3)*3 + 3
			triads[base] = append(triads[base], member{key, i, rec.SKU})
		}
	}

	for base, members := range triads {
		if len(members) != 3 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i].sku < members[j].sku })

		colors := make([]string, len(members))
		for i, m := range members {
			colors[i] = "reaper-" + m.sku
		}
		triadID := fmt.Sprintf("triad-%05d", base)

		for _, m := range members {
			rec := &byRange[m.rangeKey][m.index]
			if rec.BrandData == nil {
				rec.BrandData = map[string]any{}
			}
			rec.BrandData["flexibleTriad"] = map[string]any{
				"triadId": triadID,
				"colors":  colors,
			}
		}
	}
}
