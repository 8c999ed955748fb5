package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/normalize"
)

const citadelBaseURL = "https://www.warhammer.com"

// citadelExcludeWords cover the non-paint products the store files under
// paint categories.
var citadelExcludeWords = []string{
	"brush", "guide", "cleaner", " set", "pack", "bundle", "kit",
	"book", "magazine", "full range", "combo", "collection",
	"colors set", "colours set", "paint set", "color set", "colour set",
	"case", "suitcase", "all colors", "all colours", "complete range",
	"super pack", "display", "stand", "rack", "airbrush", "compressor",
	"stencil", "tool", "knife", "cutter", "tweezer", "scenery", "scenics",
	"grass", "flock", "tuft", "palette", "holder", "handle",
}

// Colour ranges whose every member is metallic.
var citadelMetallicRanges = map[string]struct{}{
	"Gold": {}, "Silver": {}, "Bronze": {}, "Brass": {}, "Copper": {},
}

// Technical paints that are really varnishes or thinners, by exact name.
var citadelVarnishNames = map[string]struct{}{
	"'Ardcoat": {}, "Ardcoat": {}, "Stormshield": {}, "Munitorum Varnish": {},
}

var citadelThinnerNames = map[string]struct{}{
	"Lahmian Medium": {}, "Contrast Medium": {}, "Air Caste Thinner": {},
}

// Keyword overrides checked against the lowercased name, in order.
var citadelTypeKeywords = []struct {
	keyword string
	typ     domain.PaintType
}{
	{"varnish", domain.PaintTypeVarnish},
	{"thinner", domain.PaintTypeThinner},
	{"medium", domain.PaintTypeThinner},
	{"primer", domain.PaintTypePrimer},
	{"undercoat", domain.PaintTypePrimer},
	{"glaze", domain.PaintTypeTransparent},
	{"ink", domain.PaintTypeInk},
}

// Metallic names that carry no metal keyword; mostly proper nouns from
// the lore.
var citadelMetallicKeywords = []string{
	"gold", "silver", "brass", "bronze", "copper", "steel",
	"iron", "leadbelcher", "runefang", "stormhost", "retributor",
	"balthasar", "gehenna", "auric", "liberator", "sycorax",
	"canoptek", "runelord", "castellax", "hashut", "fulgurite",
	"skullcrusher", "brass scorpion", "ironbreaker", "necron compound",
	"golden griffon", "sigmarite", "thallax", "valdor",
}

var citadelCategories = []struct {
	name string
	typ  domain.PaintType
}{
	{"Base", domain.PaintTypeOpaque},
	{"Layer", domain.PaintTypeOpaque},
	{"Shade", domain.PaintTypeWash},
	{"Dry", domain.PaintTypeOpaque},
	{"Contrast", domain.PaintTypeContrast},
	{"Technical", domain.PaintTypeTechnical},
	{"Spray", domain.PaintTypeSpray},
	{"Air", domain.PaintTypeAir},
}

// Citadel builds the Games Workshop brand from a product dump captured
// off the store's search API. The store is too aggressively bot-walled to
// crawl directly, but every product's pot render is a public SVG whose
// fill is the paint color.
func Citadel(dumpPath string) Brand {
	ranges := make([]Range, 0, len(citadelCategories))
	for _, c := range citadelCategories {
		ranges = append(ranges, Range{
			Key:        strings.ToLower(c.name),
			Name:       c.name,
			RangeName:  "Citadel",
			Category:   c.name,
			Type:       c.typ,
			Vector:     true,
			OutputFile: "citadel_" + strings.ToLower(c.name) + ".json",
		})
	}

	return Brand{
		Name:         "Games Workshop",
		Key:          "games-workshop",
		Ranges:       ranges,
		Source:       &citadelSource{path: dumpPath},
		Rules:        filter.Rules{ExcludeWords: citadelExcludeWords},
		FillerWords:  []string{"citadel", "paint", "color", "colour", "games workshop"},
		NormalizeSKU: normalize.CitadelSKU,
	}
}

// citadelHit is one product from the store's search API dump.
type citadelHit struct {
	SKU              string   `json:"sku"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	ProductType      string   `json:"productType"`
	PaintType        []string `json:"paintType"`
	PaintColourRange string   `json:"paintColourRange"`
	Images           []string `json:"images"`
	IsAvailable      *bool    `json:"isAvailable"`
}

// citadelSource reads the dump once and serves categories out of it. Every
// category is a single page.
type citadelSource struct {
	path string

	once sync.Once
	hits []citadelHit
	err  error
}

func (s *citadelSource) Page(ctx context.Context, f client.Fetcher, r Range, page int) ([]domain.Record, bool, error) {
	if page > 1 {
		return nil, false, nil
	}
	if err := s.load(); err != nil {
		return nil, false, err
	}

	var records []domain.Record
	seen := make(map[string]struct{})
	for _, hit := range s.hits {
		if len(hit.PaintType) == 0 || hit.PaintType[0] != r.Category {
			continue
		}
		sku := normalize.CitadelSKU(hit.SKU)
		if sku == "" {
			continue
		}
		if _, dup := seen[sku]; dup {
			continue
		}
		seen[sku] = struct{}{}

		imageURL := ""
		if len(hit.Images) > 0 && strings.HasSuffix(hit.Images[0], ".svg") {
			imageURL = citadelBaseURL + hit.Images[0]
		}

		records = append(records, domain.Record{
			Title:        hit.Name,
			SKU:          sku,
			ImageURL:     imageURL,
			ProductURL:   "https://www.warhammer.com/en-GB/shop/" + hit.Slug,
			Category:     hit.PaintType[0],
			Discontinued: hit.IsAvailable != nil && !*hit.IsAvailable,
			Type:         citadelPaintType(hit.Name, r.Type, hit.PaintColourRange),
		})
	}
	return records, false, nil
}

func (s *citadelSource) load() error {
	s.once.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			s.err = fmt.Errorf("failed to read product dump: %w", err)
			return
		}
		if err := json.Unmarshal(data, &s.hits); err != nil {
			s.err = fmt.Errorf("failed to parse product dump: %w", err)
			return
		}

		// Drop anything that is not a paint up front.
		paints := s.hits[:0]
		for _, hit := range s.hits {
			if hit.ProductType == "paint" {
				paints = append(paints, hit)
			}
		}
		s.hits = paints
	})
	return s.err
}

// citadelPaintType resolves the paint type from exact-name tables, name
// keywords, the colour range, then the category default.
func citadelPaintType(name string, categoryType domain.PaintType, colourRange string) domain.PaintType {
	if _, ok := citadelVarnishNames[name]; ok {
		return domain.PaintTypeVarnish
	}
	if _, ok := citadelThinnerNames[name]; ok {
		return domain.PaintTypeThinner
	}

	lower := strings.ToLower(name)
	for _, kw := range citadelTypeKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.typ
		}
	}
	if _, ok := citadelMetallicRanges[colourRange]; ok {
		return domain.PaintTypeMetallic
	}
	for _, kw := range citadelMetallicKeywords {
		if strings.Contains(lower, kw) {
			return domain.PaintTypeMetallic
		}
	}
	return categoryType
}
