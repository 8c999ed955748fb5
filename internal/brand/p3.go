package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/normalize"
	"paintdb/scraper/internal/sampler"
)

const (
	p3BaseURL       = "https://steamforged.com/en-gb"
	p3CollectionURL = p3BaseURL + "/collections/p3-paints/products.json"
)

var p3ExcludeWords = []string{
	"starter set", "set ", "bundle", "collection", "kit", "pack",
	"brush", "palette", "tool",
}

// The metallic SKU blocks N222-N234 and N240-N244 are authoritative; name
// keywords are only a backup for new releases.
var p3MetallicSKUs = map[string]struct{}{
	"SFP3-N222-S": {}, "SFP3-N223-S": {}, "SFP3-N224-S": {}, "SFP3-N225-S": {},
	"SFP3-N226-S": {}, "SFP3-N227-S": {}, "SFP3-N228-S": {}, "SFP3-N229-S": {},
	"SFP3-N230-S": {}, "SFP3-N231-S": {}, "SFP3-N232-S": {}, "SFP3-N233-S": {},
	"SFP3-N234-S": {}, "SFP3-N240-S": {}, "SFP3-N241-S": {}, "SFP3-N242-S": {},
	"SFP3-N243-S": {}, "SFP3-N244-S": {},
}

var p3MediumSKUs = map[string]struct{}{
	"SFP3-N235-S": {},
}

// P3 builds the Formula P3 brand, distributed through the Steamforged
// Shopify store. The whole line is one collection; the two ranges are
// carved out of it by SKU.
func P3() Brand {
	return Brand{
		Name: "P3",
		Key:  "p3",
		Ranges: []Range{
			{
				Key: "standard", Name: "Formula P3",
				RangeName:  "Formula P3",
				Type:       domain.PaintTypeOpaque,
				Layout:     sampler.Corners,
				OutputFile: "p3_formula_p3.json",
			},
			{
				Key: "metallic", Name: "Formula P3 Metallic",
				RangeName:  "Formula P3 Metallic",
				Type:       domain.PaintTypeMetallic,
				Layout:     sampler.Corners,
				OutputFile: "p3_metallic.json",
			},
		},
		Source:       &p3Source{},
		Rules:        filter.Rules{ExcludeWords: p3ExcludeWords},
		FillerWords:  []string{"p3", "paints", "formula"},
		NormalizeSKU: normalize.SKU,
		MakeID: func(sku, name string) string {
			return "p3-" + p3Slug(name)
		},
	}
}

type p3Product struct {
	Title    string `json:"title"`
	Handle   string `json:"handle"`
	Variants []struct {
		SKU string `json:"sku"`
	} `json:"variants"`
	Images []struct {
		Src string `json:"src"`
	} `json:"images"`
}

// p3Source fetches the Shopify collection once and serves both ranges
// from the cached product list.
type p3Source struct {
	mu       sync.Mutex
	loaded   bool
	products []p3Product
}

func (s *p3Source) Page(ctx context.Context, f client.Fetcher, r Range, page int) ([]domain.Record, bool, error) {
	if page > 1 {
		return nil, false, nil
	}
	products, err := s.load(ctx, f)
	if err != nil {
		return nil, false, err
	}

	var records []domain.Record
	for _, p := range products {
		if len(p.Variants) == 0 {
			continue
		}
		sku := strings.ToUpper(strings.TrimSpace(p.Variants[0].SKU))
		if !strings.HasPrefix(sku, "SFP3-") {
			continue
		}

		name := p3Name(p.Title)
		typ := p3PaintType(name, sku)
		if (r.Key == "metallic") != (typ == domain.PaintTypeMetallic) {
			continue
		}

		imgURL := ""
		if len(p.Images) > 0 {
			imgURL = p.Images[0].Src
			if strings.HasPrefix(imgURL, "//") {
				imgURL = "https:" + imgURL
			}
		}

		records = append(records, domain.Record{
			Title:      name,
			SKU:        sku,
			ImageURL:   imgURL,
			ProductURL: p3BaseURL + "/products/" + p.Handle,
			Type:       typ,
		})
	}
	return records, false, nil
}

func (s *p3Source) load(ctx context.Context, f client.Fetcher) ([]p3Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.products, nil
	}

	var all []p3Product
	for page := 1; ; page++ {
		body, err := f.GetBytes(ctx, fmt.Sprintf("%s?page=%d&limit=250", p3CollectionURL, page))
		if err != nil {
			return nil, err
		}
		var payload struct {
			Products []p3Product `json:"products"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse product listing: %w", err)
		}
		if len(payload.Products) == 0 {
			break
		}
		all = append(all, payload.Products...)
		if len(payload.Products) < 250 {
			break
		}
	}

	s.products = all
	s.loaded = true
	return all, nil
}

// p3Name strips the "P3 Paints:" listing prefix.
func p3Name(title string) string {
	name := strings.TrimSpace(title)
	if rest, ok := strings.CutPrefix(name, "P3 Paints:"); ok {
		name = rest
	}
	return strings.TrimSpace(name)
}

func p3PaintType(name, sku string) domain.PaintType {
	if _, ok := p3MediumSKUs[sku]; ok {
		return domain.PaintTypeMedium
	}
	if strings.Contains(strings.ToLower(name), "medium") {
		return domain.PaintTypeMedium
	}
	if _, ok := p3MetallicSKUs[sku]; ok {
		return domain.PaintTypeMetallic
	}
	return domain.PaintTypeOpaque
}

var p3SlugRe = regexp.MustCompile(`[^a-z0-9]+`)

func p3Slug(name string) string {
	return strings.Trim(p3SlugRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
}
