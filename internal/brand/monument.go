package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/normalize"
	"paintdb/scraper/internal/sampler"
)

const monumentBaseURL = "https://monumenthobbies.com"

// Valid individual-paint SKU shapes. Basing textures (MPA-T) and -SET
// bundles fall outside these on purpose.
var monumentSKURes = []*regexp.Regexp{
	regexp.MustCompile(`^(?:MEA|AMP|MPAP|MPAM)-\d+$`),
	regexp.MustCompile(`^MPAR-[PV]?\d+$`),
	regexp.MustCompile(`^MPA-[SF]?\d+$`),
}

// monumentCategoryMap resolves category and paint type from the SKU.
// First match wins, so narrower patterns come before catch-alls.
var monumentCategoryMap = []struct {
	re       *regexp.Regexp
	category string
	typ      domain.PaintType
}{
	{regexp.MustCompile(`^MEA-\d+$`), "Expert Acrylics", domain.PaintTypeOpaque},

	{regexp.MustCompile(`^AMP-0(11|12|23|24)$`), "AMP Colors", domain.PaintTypeWash},
	{regexp.MustCompile(`^AMP-010$`), "AMP Colors", domain.PaintTypeMetallic},
	{regexp.MustCompile(`^AMP-\d+$`), "AMP Colors", domain.PaintTypeOpaque},

	{regexp.MustCompile(`^MPA-S24$`), "Signature Series", domain.PaintTypeMetallic},
	{regexp.MustCompile(`^MPA-S42$`), "Signature Series", domain.PaintTypeMetallic},
	{regexp.MustCompile(`^MPA-S\d+$`), "Signature Series", domain.PaintTypeOpaque},

	{regexp.MustCompile(`^MPA-F\d+$`), "Fluorescents", domain.PaintTypeOpaque},

	{regexp.MustCompile(`^MPA-2\d{2}$`), "Washes", domain.PaintTypeWash},

	{regexp.MustCompile(`^MPAP-\d+$`), "Primers", domain.PaintTypePrimer},

	{regexp.MustCompile(`^MPAR-P\d+$`), "Spray Primers", domain.PaintTypeSpray},
	{regexp.MustCompile(`^MPAR-V\d+$`), "Spray Varnishes", domain.PaintTypeVarnish},
	{regexp.MustCompile(`^MPAR-\d+$`), "Spray Paints", domain.PaintTypeSpray},

	// Glaze, Matte and Gloss mediums thin paint; the rest are effects.
	{regexp.MustCompile(`^MPAM-00[134]$`), "Mediums", domain.PaintTypeThinner},
	{regexp.MustCompile(`^MPAM-\d+$`), "Mediums", domain.PaintTypeTechnical},

	{regexp.MustCompile(`^MPA-0(25|26|27|28|29|30|31|32|33)$`), "Metallics", domain.PaintTypeMetallic},

	{regexp.MustCompile(`^MPA-0(46|47|48|49|50|51|52|53|64)$`), "Transparents", domain.PaintTypeTransparent},

	{regexp.MustCompile(`^MPA-0\d{2}$`), "Standard Colors", domain.PaintTypeOpaque},
}

// Spray cans and clear varnishes do not show the paint color; these are
// pinned by hand.
var monumentHexOverrides = map[string]string{
	"MPAR-P02": "#0A0A0A",
	"MPAR-P03": "#F5F5F5",
	"MPAR-P05": "#5A5A5A",
	"MPAR-V01": "#FFFFFF",
}

// monumentArtists maps signature series numbers to the collaborating
// artist. Upper bounds are exclusive.
var monumentArtists = []struct {
	lo, hi int
	name   string
}{
	{1, 7, "Vince Venturella"},
	{7, 13, "Ninjon"},
	{13, 19, "Ben Komets"},
	{19, 25, "Matt Cexwish"},
	{25, 31, "Flameon"},
	{31, 37, "Rogue Hobbies"},
	{37, 43, "AdeptiCon Spray-Team"},
	{49, 50, "NOVA"},
}

var monumentCollections = []struct {
	key string
	url string
}{
	{"paint-singles", "/collections/paint-singles"},
	{"signature-series", "/collections/signature-series-paints"},
	{"fluorescents", "/collections/fluorescents"},
	{"washes", "/collections/washes"},
	{"primers", "/collections/pro-acryl-paints-primer"},
	{"metallics", "/collections/pro-acryl-paints-metallics"},
	{"mediums", "/collections/paint-mediums"},
	{"expert-acrylics", "/collections/expert-artist-acrylics"},
}

// Monument builds the Monument Hobbies brand. All collections land in a
// single catalogue file; the range of each entry is derived from its SKU
// prefix.
func Monument() Brand {
	ranges := make([]Range, 0, len(monumentCollections))
	for _, c := range monumentCollections {
		ranges = append(ranges, Range{
			Key:        c.key,
			Name:       c.key,
			URL:        monumentBaseURL + c.url,
			Layout:     sampler.SwatchCore,
			OutputFile: "monument_hobbies.json",
		})
	}

	return Brand{
		Name:         "Monument Hobbies",
		Key:          "monument-hobbies",
		Ranges:       ranges,
		Source:       monumentSource{},
		Rules:        filter.Rules{SKUPatterns: monumentSKURes},
		FillerWords:  []string{"monument", "hobbies", "pro", "acryl", "paint"},
		NormalizeSKU: normalize.SKU,
		HexOverrides: monumentHexOverrides,
		LayoutFor:    monumentLayout,
		FindImage:    monumentFindImage,
	}
}

// monumentMetaRe pulls the Shopify analytics meta object from page HTML.
var monumentMetaRe = regexp.MustCompile(`(?s)var\s+meta\s*=\s*(\{.*?\});`)

type monumentMeta struct {
	Products []struct {
		Handle   string `json:"handle"`
		Variants []struct {
			SKU  string `json:"sku"`
			Name string `json:"name"`
		} `json:"variants"`
	} `json:"products"`
}

type monumentSource struct{}

func (monumentSource) Page(ctx context.Context, f client.Fetcher, r Range, page int) ([]domain.Record, bool, error) {
	body, err := f.GetText(ctx, fmt.Sprintf("%s?page=%d", r.URL, page))
	if err != nil {
		return nil, false, err
	}

	m := monumentMetaRe.FindStringSubmatch(body)
	if m == nil {
		return nil, false, nil
	}
	var meta monumentMeta
	if err := json.Unmarshal([]byte(m[1]), &meta); err != nil {
		return nil, false, fmt.Errorf("failed to parse collection meta: %w", err)
	}

	records := make([]domain.Record, 0, len(meta.Products))
	for _, p := range meta.Products {
		if len(p.Variants) == 0 {
			continue
		}
		sku := strings.TrimSpace(p.Variants[0].SKU)
		if sku == "" {
			continue
		}

		category, typ := monumentCategorize(sku)
		rec := domain.Record{
			Title:      monumentCleanName(p.Variants[0].Name),
			SKU:        sku,
			ProductURL: monumentBaseURL + "/products/" + p.Handle,
			Category:   category,
			Type:       typ,
			RangeName:  monumentRangeName(sku),
		}
		if artist := monumentArtist(sku); artist != "" {
			rec.BrandData = map[string]any{"artist": artist}
		}
		records = append(records, rec)
	}

	// Shopify collection pages carry up to 25 products.
	return records, len(meta.Products) == 25, nil
}

func monumentCategorize(sku string) (string, domain.PaintType) {
	for _, entry := range monumentCategoryMap {
		if entry.re.MatchString(sku) {
			return entry.category, entry.typ
		}
	}
	return "Unknown", domain.PaintTypeOpaque
}

func monumentRangeName(sku string) string {
	switch {
	case strings.HasPrefix(sku, "MEA-"):
		return "Expert Acrylics"
	case strings.HasPrefix(sku, "AMP-"):
		return "AMP Colors"
	default:
		return "Pro Acryl"
	}
}

var monumentSigSKURe = regexp.MustCompile(`^MPA-S(\d+)$`)

func monumentArtist(sku string) string {
	m := monumentSigSKURe.FindStringSubmatch(sku)
	if m == nil {
		return ""
	}
	n, _ := strconv.Atoi(m[1])
	for _, a := range monumentArtists {
		if n >= a.lo && n < a.hi {
			return a.name
		}
	}
	return ""
}

// Prefixes the store prepends to variant names, longest patterns first.
var monumentNamePrefixRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^PRO Acryl PRIME\s+\d+\s*-\s*`),
	regexp.MustCompile(`(?i)^PRO Acryl Spray\s*-\s*`),
	regexp.MustCompile(`(?i)^PRIME\s+\d+\s*-\s*`),
	regexp.MustCompile(`(?i)^Spray\s*-\s*`),
	regexp.MustCompile(`(?i)^\d{3}-Pro Acryl\s*`),
	regexp.MustCompile(`(?i)^[A-Z]\d{2}-Pro Acryl\s*`),
	regexp.MustCompile(`(?i)^\d{3}\s*-\s*Pro Acryl\s*`),
	regexp.MustCompile(`(?i)^Pro Acryl\s+`),
	regexp.MustCompile(`(?i)^AMP Colors\s+\d+\s*-\s*`),
	regexp.MustCompile(`(?i)^Expert Acrylics\s+\d+\s*-\s*`),
}

var monumentSigNameRe = regexp.MustCompile(`(?i)^S\d{2}\s*-\s*(?:Vince Venturella|Ninjon|Ben Komets|Matt Cexwish|Flameon|Rogue Hobbies|Adepticon|NOVA)\s+(.+)$`)

func monumentCleanName(raw string) string {
	name := raw
	for _, re := range monumentNamePrefixRes {
		name = re.ReplaceAllString(name, "")
	}
	if m := monumentSigNameRe.FindStringSubmatch(name); m != nil {
		name = m[1]
	}
	return strings.TrimSpace(name)
}

// monumentLayout picks the sampling layout per SKU: the store mixes
// swatch renders, bottle shots and spray cans within one collection.
func monumentLayout(rec domain.Record) (sampler.Layout, bool) {
	switch {
	case strings.HasPrefix(rec.SKU, "MEA-"):
		return sampler.ExpertBand, true
	case strings.Contains(rec.ImageURL, "Brush-On") || strings.Contains(rec.ImageURL, "BrushOn"):
		return sampler.SwatchCore, true
	case strings.HasPrefix(rec.SKU, "MPAP-") || strings.Contains(strings.ToUpper(rec.ImageURL), "PRIME"):
		return sampler.PrimerLabel, true
	case strings.HasPrefix(rec.SKU, "MPAR-"):
		return sampler.SprayBody, true
	default:
		return sampler.SwatchCore, true
	}
}

// Swatch image filename patterns on the product page, checked in order.
var monumentImageRes = []*regexp.Regexp{
	regexp.MustCompile(`cdn/shop/files/(MPA-[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(AMP-[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(MPAM-[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(MPAP-[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(MH-EAA[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(Pro_Acryl_PRIME[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(Pro-Acryl-PRIME[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(Pro_Acryl[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(Matte[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(Gloss[^"']+\.png)`),
	regexp.MustCompile(`cdn/shop/files/(PRO_Acryl[^"']+\.png)`),
}

// monumentFindImage fetches the product page and locates the swatch
// render. Collection tiles only show packaging, never the swatch.
func monumentFindImage(ctx context.Context, f client.Fetcher, rec domain.Record) (string, error) {
	body, err := f.GetText(ctx, rec.ProductURL)
	if err != nil {
		return "", err
	}

	for _, re := range monumentImageRes {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			name := m[1]
			if strings.Contains(name, "Monument") || strings.Contains(name, "Icon") {
				continue
			}
			return monumentBaseURL + "/cdn/shop/files/" + name, nil
		}
	}
	return "", nil
}
