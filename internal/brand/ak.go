package brand

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/normalize"
	"paintdb/scraper/internal/sampler"
)

const (
	ak3GenBaseURL = "https://ak-interactive.com/product-category/paints/paints-acrylics/3rd-acrylics/"

	// Listing filter that narrows any AK category page to set/pack
	// products.
	akSetsFilter = "pa_product-pack-units=product-pack-set,product-pack-full-range,product-pack"
)

// akSKURe matches every individual-paint SKU format AK uses across its
// product lines.
var akSKURe = regexp.MustCompile(`^(AK\d+|RCS\d+|RCM\d+|RC\d+|AKM\d+)$`)

// akImageSKURe recovers the SKU from a thumbnail URL when the tile lacks a
// SKU element.
var akImageSKURe = regexp.MustCompile(`(?i)(AK\d+)`)

// akSetSKURe validates SKUs pulled from set listing pages.
var akSetSKURe = regexp.MustCompile(`(?i)^(AK\d+|RCS\d+|RCM\d+|RC\d+|AKM\d+)$`)

// akSetsBaseURLs are every category page checked for set products.
var akSetsBaseURLs = []string{
	"https://ak-interactive.com/product-category/paints/paints-acrylics/",
	"https://ak-interactive.com/product-category/real-colors-en/",
	"https://ak-interactive.com/product-category/paints/rc-markers/",
	"https://ak-interactive.com/product-category/ak-playmarkers/",
	"https://ak-interactive.com/product-category/paints/paints-acrylics/deep-shades/",
	"https://ak-interactive.com/product-category/paints/paints-acrylics-paints-for-modeling/paint-acrylic-inks/",
	"https://ak-interactive.com/product-category/paints/paints-acrylics/acrylic-wash/",
	"https://ak-interactive.com/product-category/paints/paints-acrylics/quick-gen/",
}

var akSuffixWords = []string{
	"color", "gen", "shade", "ink", "wash", "marker", "real",
	"figures", "afv", "air",
	"standard", "intense", "metallic", "pastel", "auxiliary",
	"efecto", "lino", "wargame",
}

var akFillerWords = []string{"ak", "interactive", "acrylic", "paint", "color", "colour"}

// ak3GenRanges are the sub-ranges of the 3rd Generation acrylics line,
// reached through the storefront's color-range filter. They all land in
// the same catalogue file under the "3rd Generation" range with the
// sub-range as category.
var ak3GenRanges = []struct {
	key  string
	name string
	typ  domain.PaintType
}{
	{"3gen-color-punch", "Color Punch", domain.PaintTypeOpaque},
	{"general", "General", domain.PaintTypeOpaque},
	{"afv", "AFV", domain.PaintTypeOpaque},
	{"air", "AIR", domain.PaintTypeAir},
	{"acrylic-effect", "Effect", domain.PaintTypeOpaque},
	{"fantasy", "Fantasy", domain.PaintTypeOpaque},
	{"figures", "Figures", domain.PaintTypeOpaque},
	{"intense", "Intense", domain.PaintTypeOpaque},
	{"metallic", "Metallic", domain.PaintTypeMetallic},
	{"pastel", "Pastel", domain.PaintTypeOpaque},
	{"standard", "Standard", domain.PaintTypeOpaque},
	{"wargame", "Wargame", domain.PaintTypeOpaque},
}

// akOtherRanges are AK product lines outside 3rd Gen, each with its own
// base URL and catalogue file.
var akOtherRanges = []struct {
	key    string
	name   string
	url    string
	typ    domain.PaintType
	layout sampler.Layout
	file   string
}{
	{
		key: "quick-gen", name: "Quick Gen",
		url:    "https://ak-interactive.com/product-category/paints/paints-acrylics/quick-gen/",
		typ:    domain.PaintTypeContrast,
		layout: sampler.BottleCap,
		file:   "ak_quick_gen.json",
	},
	{
		key: "real-colors", name: "Real Colors",
		url:    "https://ak-interactive.com/product-category/real-colors-en/",
		typ:    domain.PaintTypeOpaque,
		layout: sampler.BottleCap,
		file:   "ak_real_colors.json",
	},
	{
		key: "rc-markers", name: "Real Colors Markers",
		url:    "https://ak-interactive.com/product-category/paints/rc-markers/",
		typ:    domain.PaintTypeOpaque,
		layout: sampler.SwatchCenter,
		file:   "ak_real_colors_markers.json",
	},
	{
		key: "playmarkers", name: "Playmarkers",
		url:    "https://ak-interactive.com/product-category/ak-playmarkers/",
		typ:    domain.PaintTypeOpaque,
		layout: sampler.StrokeRight,
		file:   "ak_playmarkers.json",
	},
	{
		key: "deep-shades", name: "Deep Shades",
		url:    "https://ak-interactive.com/product-category/paints/paints-acrylics/deep-shades/",
		typ:    domain.PaintTypeWash,
		layout: sampler.LabelBand,
		file:   "ak_deep_shades.json",
	},
	{
		key: "the-inks", name: "The Inks",
		url:    "https://ak-interactive.com/product-category/paints/paints-acrylics-paints-for-modeling/paint-acrylic-inks/",
		typ:    domain.PaintTypeInk,
		layout: sampler.BottleCap,
		file:   "ak_the_inks.json",
	},
	{
		key: "acrylic-wash", name: "Acrylic Wash",
		url:    "https://ak-interactive.com/product-category/paints/paints-acrylics/acrylic-wash/",
		typ:    domain.PaintTypeWash,
		layout: sampler.BackgroundCircle,
		file:   "ak_acrylic_wash.json",
	},
}

// AK builds the AK Interactive brand. setSKUs is the loaded exclusion
// set; pass nil to skip set filtering.
func AK(setSKUs func(sku string) bool) Brand {
	ranges := make([]Range, 0, len(ak3GenRanges)+len(akOtherRanges))
	for _, r := range ak3GenRanges {
		ranges = append(ranges, Range{
			Key:        r.key,
			Name:       r.name,
			RangeName:  "3rd Generation",
			URL:        ak3GenBaseURL,
			Category:   r.name,
			Type:       r.typ,
			Layout:     sampler.BottleCap,
			OutputFile: "ak_3gen.json",
		})
	}
	for _, r := range akOtherRanges {
		rng := Range{
			Key:        r.key,
			Name:       r.name,
			RangeName:  r.name,
			URL:        r.url,
			Type:       r.typ,
			Layout:     r.layout,
			OutputFile: r.file,
		}
		if r.key == "rc-markers" {
			// Marker tiles show the pen; the color swatch lives on a
			// separate detail render keyed by SKU.
			rng.ImageURL = func(sku string) string {
				return fmt.Sprintf("https://ak-interactive.com/wp-content/uploads/2024/06/%s_detail.jpg", strings.ToUpper(sku))
			}
		}
		ranges = append(ranges, rng)
	}

	return Brand{
		Name:   "AK Interactive",
		Key:    "ak-interactive",
		Ranges: ranges,
		Source: akSource{},
		Rules: filter.Rules{
			SKUPatterns: []*regexp.Regexp{akSKURe},
			SetSKUs:     setSKUs,
		},
		FillerWords:     akFillerWords,
		SuffixWords:     akSuffixWords,
		NormalizeSKU:    normalize.SKU,
		GenericCategory: "General",
		FetchSets:       FetchAKSetSKUs,
		CrossReference:  akCrossReference,
	}
}

// akSource scrapes WooCommerce listing pages. 3rd Gen sub-ranges share a
// base URL plus a filter parameter; other lines paginate under their own
// URL.
type akSource struct{}

func (akSource) Page(ctx context.Context, f client.Fetcher, r Range, page int) ([]domain.Record, bool, error) {
	doc, err := f.GetDocument(ctx, akPageURL(r, page))
	if err != nil {
		return nil, false, err
	}

	records := client.ParseProductTiles(doc, client.TileOptions{SKUFromImage: akImageSKURe})
	return records, client.HasNextPage(doc), nil
}

func akPageURL(r Range, page int) string {
	if r.Category != "" {
		// 3rd Gen sub-range: filter parameter on the shared base URL.
		if page == 1 {
			return fmt.Sprintf("%s?pa_3rd-color-range=%s", r.URL, r.Key)
		}
		return fmt.Sprintf("%spage/%d/?pa_3rd-color-range=%s", r.URL, page, r.Key)
	}
	if page == 1 {
		return r.URL
	}
	return fmt.Sprintf("%spage/%d/", r.URL, page)
}

// FetchAKSetSKUs walks every AK category page with the sets filter applied
// and collects the SKUs of set/pack products. A failing category page ends
// that category's walk without failing the whole fetch.
func FetchAKSetSKUs(ctx context.Context, f client.Fetcher) ([]string, error) {
	seen := make(map[string]struct{})
	var skus []string

	for _, base := range akSetsBaseURLs {
		for page := 1; page <= 50; page++ {
			url := akSetsPageURL(base, page)
			doc, err := f.GetDocument(ctx, url)
			if err != nil {
				if ctx.Err() != nil {
					return skus, ctx.Err()
				}
				break
			}

			pageSKUs := client.ParseSetSKUs(doc, akSetSKURe.MatchString)
			if len(pageSKUs) == 0 {
				break
			}
			for _, sku := range pageSKUs {
				if _, dup := seen[sku]; dup {
					continue
				}
				seen[sku] = struct{}{}
				skus = append(skus, sku)
			}
		}
	}
	return skus, nil
}

func akSetsPageURL(base string, page int) string {
	if page == 1 {
		return base + "?" + akSetsFilter
	}
	return strings.TrimRight(base, "/") + fmt.Sprintf("/page/%d/?", page) + akSetsFilter
}

// akCrossReference fills marker hex values from the Real Colors bottles of
// the same name. The marker detail renders frequently 404, but the paint
// inside is identical.
func akCrossReference(byRange map[string][]domain.Record) {
	realColors, ok := byRange["real-colors"]
	if !ok {
		return
	}
	markers, ok := byRange["rc-markers"]
	if !ok {
		return
	}

	nameToHex := make(map[string]string)
	for _, rec := range realColors {
		if rec.Hex == "" {
			continue
		}
		if key := NameKey(rec.Title, nil, akSuffixWords); key != "" {
			nameToHex[key] = rec.Hex
		}
	}

	for i := range markers {
		if markers[i].Hex != "" {
			continue
		}
		if hex, ok := nameToHex[NameKey(markers[i].Title, nil, akSuffixWords)]; ok {
			markers[i].Hex = hex
		}
	}
}
