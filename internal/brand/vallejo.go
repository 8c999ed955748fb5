package brand

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"paintdb/scraper/internal/assemble"
	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/normalize"
	"paintdb/scraper/internal/sampler"
)

var vallejoFillerWords = []string{"vallejo", "acrylic", "paint", "color", "colour"}

var vallejoSuffixWords = []string{"color", "air", "metal", "xpress", "game", "model"}

// vallejoExcludeWords catches accessories and sets in both English and
// Spanish, since the storefront mixes languages.
var vallejoExcludeWords = []string{
	"brush", "pincel", "guide", "guía", "cleaner", "limpiador",
	" set", "pack", "bundle", "kit", "book", "magazine", "revista",
	"full range", "combo", "collection", "colección", "colors set",
	"colours set", "paint set", "color set", "colour set", "range box",
	"case", "suitcase", "maleta", "all colors", "all colours", "complete range",
	"super pack", "display", "expositor", "stand", "rack",
	"airbrush", "aerógrafo", "compressor", "stencil", "plantilla",
	"tool", "herramienta", "knife", "cutter", "tweezer", "pinza",
	"scenery", "scenics", "grass", "hierba", "flock", "tuft",
}

var vallejoTypeOverrides = []assemble.TypeOverride{
	{Keyword: "barniz", Type: domain.PaintTypeVarnish},
	{Keyword: "diluyente", Type: domain.PaintTypeThinner},
	{Keyword: "imprimación", Type: domain.PaintTypePrimer},
	{Keyword: "retarder", Type: domain.PaintTypeTechnical},
	{Keyword: "retardante", Type: domain.PaintTypeTechnical},
	{Keyword: "glaze", Type: domain.PaintTypeTransparent},
	{Keyword: "ink", Type: domain.PaintTypeInk},
	{Keyword: "tinta", Type: domain.PaintTypeInk},
	{Keyword: "wash", Type: domain.PaintTypeWash},
	{Keyword: "metal color", Type: domain.PaintTypeMetallic},
	{Keyword: "liquid metal", Type: domain.PaintTypeMetallic},
	{Keyword: "metallic", Type: domain.PaintTypeMetallic},
	{Keyword: "chrome", Type: domain.PaintTypeMetallic},
}

var vallejoRanges = []struct {
	key  string
	name string
	typ  domain.PaintType
	url  string
	// excludeSKUs drops products the storefront misfiles under this range.
	excludeSKUs []string
}{
	{key: "model-color-en", name: "Model Color", typ: domain.PaintTypeOpaque,
		url: "https://acrylicosvallejo.com/en/category/hobby/model-color-en/"},
	{key: "model-air-en", name: "Model Air", typ: domain.PaintTypeAir,
		url: "https://acrylicosvallejo.com/en/category/model-air-en/"},
	{key: "game-color-en", name: "Game Color", typ: domain.PaintTypeOpaque,
		url: "https://acrylicosvallejo.com/en/category/hobby/game-color-en/"},
	{key: "game-air-en", name: "Game Air", typ: domain.PaintTypeAir,
		url: "https://acrylicosvallejo.com/en/category/hobby/game-air-en/"},
	{key: "xpress-color-en", name: "Xpress Color", typ: domain.PaintTypeContrast,
		url: "https://acrylicosvallejo.com/en/category/hobby/xpress-color-en/"},
	{key: "mecha-color-en", name: "Mecha Color", typ: domain.PaintTypeOpaque,
		url: "https://acrylicosvallejo.com/en/category/hobby/mecha-color-en/"},
	{key: "metal-color-en", name: "Metal Color", typ: domain.PaintTypeMetallic,
		url: "https://acrylicosvallejo.com/en/category/hobby/metal-color-en/",
		// Gloss Black 77.660 is a primer, not a metal color.
		excludeSKUs: []string{"77.660"}},
	{key: "liquid-metal-en", name: "Liquid Metal", typ: domain.PaintTypeMetallic,
		url: "https://acrylicosvallejo.com/en/category/hobby/liquid-metal-en/"},
	{key: "true-metallic-metal-en", name: "True Metallic Metal", typ: domain.PaintTypeMetallic,
		url: "https://acrylicosvallejo.com/en/category/hobby/true-metallic-metal-en/"},
	{key: "wash-fx-en", name: "Wash FX", typ: domain.PaintTypeWash,
		url: "https://acrylicosvallejo.com/en/category/hobby/wash-fx-en/"},
	{key: "primers-en", name: "Primers", typ: domain.PaintTypePrimer,
		url: "https://acrylicosvallejo.com/en/category/hobby/primers-en/"},
	{key: "premium-color-en", name: "Premium Color", typ: domain.PaintTypeOpaque,
		url: "https://acrylicosvallejo.com/en/category/hobby/premium-color-en/"},
	{key: "hobby-paint", name: "Hobby Paint", typ: domain.PaintTypeOpaque,
		url: "https://acrylicosvallejo.com/en/category/hobby/hobby-paint/"},
}

// Vallejo builds the Vallejo brand. Every range shows the paint in a
// triangular swatch on the left edge of the product shot.
func Vallejo() Brand {
	ranges := make([]Range, 0, len(vallejoRanges))
	for _, r := range vallejoRanges {
		ranges = append(ranges, Range{
			Key:         r.key,
			Name:        r.name,
			RangeName:   r.name,
			URL:         r.url,
			Type:        r.typ,
			Layout:      sampler.TriangleLeft,
			OutputFile:  "vallejo_" + strings.ReplaceAll(strings.TrimSuffix(r.key, "-en"), "-", "_") + ".json",
			ExcludeSKUs: r.excludeSKUs,
		})
	}

	return Brand{
		Name:          "Vallejo",
		Key:           "vallejo",
		Ranges:        ranges,
		Source:        vallejoSource{},
		Rules:         filter.Rules{ExcludeWords: vallejoExcludeWords},
		FillerWords:   vallejoFillerWords,
		SuffixWords:   vallejoSuffixWords,
		TypeOverrides: vallejoTypeOverrides,
		NormalizeSKU:  normalize.VallejoSKU,
	}
}

type vallejoSource struct{}

func (vallejoSource) Page(ctx context.Context, f client.Fetcher, r Range, page int) ([]domain.Record, bool, error) {
	url := r.URL
	if page > 1 {
		url = fmt.Sprintf("%spage/%d/", r.URL, page)
	}
	doc, err := f.GetDocument(ctx, url)
	if err != nil {
		return nil, false, err
	}

	records := parseVallejoTiles(doc)
	for i := range records {
		records[i].SKU = normalize.VallejoSKU(records[i].SKU)
	}
	return records, client.HasNextPage(doc), nil
}

var srcsetEntryRe = regexp.MustCompile(`(\S+)\s+(\d+)w`)

// parseVallejoTiles reads the storefront's product tiles: SKU from the
// .referencia element, image from the highest-resolution srcset entry.
func parseVallejoTiles(doc *goquery.Document) []domain.Record {
	var records []domain.Record
	seen := make(map[string]struct{})

	doc.Find("li.product").Each(func(i int, item *goquery.Selection) {
		link := item.Find("a.featured-image, a[href*='/product/']").First()
		if link.Length() == 0 {
			return
		}
		productURL, _ := link.Attr("href")

		sku := strings.TrimSpace(item.Find(".referencia").First().Text())
		if sku == "" {
			return
		}
		if _, dup := seen[sku]; dup {
			return
		}
		seen[sku] = struct{}{}

		title := strings.TrimSpace(item.Find(".woocommerce-loop-product__title, h2").First().Text())

		img := item.Find("img").First()
		imgURL := bestSrcsetURL(img)

		records = append(records, domain.Record{
			Title:      title,
			SKU:        sku,
			ImageURL:   imgURL,
			ProductURL: productURL,
		})
	})

	return records
}

// bestSrcsetURL picks the widest rendition from srcset, falling back to
// src and lazy-load attributes.
func bestSrcsetURL(img *goquery.Selection) string {
	if img.Length() == 0 {
		return ""
	}
	if srcset, ok := img.Attr("srcset"); ok && srcset != "" {
		best, bestWidth := "", 0
		for _, part := range strings.Split(srcset, ",") {
			m := srcsetEntryRe.FindStringSubmatch(strings.TrimSpace(part))
			if m == nil {
				continue
			}
			width, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			if width > bestWidth {
				bestWidth = width
				best = m[1]
			}
		}
		if best != "" {
			return best
		}
	}
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	src, _ := img.Attr("data-src")
	return src
}
