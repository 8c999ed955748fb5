package brand

import (
	"context"
	"regexp"
	"strings"

	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/domain"
)

const warcoloursBaseURL = "https://www.warcolours.com/"

// Warcolours publishes no product imagery worth sampling; the catalogue
// is generated from the official color charts instead. Names and hex
// values below were read off the chart renders, bottom-left of each
// swatch.
type warcoloursPaint struct {
	name   string
	hex    string
	family string
	layer  int
}

var warcoloursLayerPaints = []warcoloursPaint{
	{"Orange 1", "#F8C882", "Orange", 1},
	{"Orange 2", "#F0A050", "Orange", 2},
	{"Orange 3", "#E87020", "Orange", 3},
	{"Orange 4", "#C85010", "Orange", 4},
	{"Orange 5", "#983810", "Orange", 5},

	{"Red 1", "#E85858", "Red", 1},
	{"Red 2", "#D82020", "Red", 2},
	{"Red 3", "#B01818", "Red", 3},
	{"Red 4", "#781010", "Red", 4},
	{"Red 5", "#400808", "Red", 5},

	{"Brown 1", "#D89878", "Brown", 1},
	{"Brown 2", "#B06848", "Brown", 2},
	{"Brown 3", "#884830", "Brown", 3},
	{"Brown 4", "#583020", "Brown", 4},
	{"Brown 5", "#382018", "Brown", 5},

	{"Ochre 1", "#F0E0A0", "Ochre", 1},
	{"Ochre 2", "#E0C060", "Ochre", 2},
	{"Ochre 3", "#C89828", "Ochre", 3},
	{"Ochre 4", "#A87818", "Ochre", 4},
	{"Ochre 5", "#806010", "Ochre", 5},

	{"Yellow 1", "#F8F8D0", "Yellow", 1},
	{"Yellow 2", "#F8F040", "Yellow", 2},
	{"Yellow 3", "#E8D010", "Yellow", 3},
	{"Yellow 4", "#C8A808", "Yellow", 4},
	{"Yellow 5", "#A08008", "Yellow", 5},

	{"Olive 1", "#E0F078", "Olive", 1},
	{"Olive 2", "#B8D038", "Olive", 2},
	{"Olive 3", "#88A020", "Olive", 3},
	{"Olive 4", "#586810", "Olive", 4},
	{"Olive 5", "#384008", "Olive", 5},

	{"Green 1", "#90F048", "Green", 1},
	{"Green 2", "#48D818", "Green", 2},
	{"Green 3", "#20A810", "Green", 3},
	{"Green 4", "#107808", "Green", 4},
	{"Green 5", "#084808", "Green", 5},

	{"Emerald 1", "#48F0C0", "Emerald", 1},
	{"Emerald 2", "#20D898", "Emerald", 2},
	{"Emerald 3", "#10A870", "Emerald", 3},
	{"Emerald 4", "#087848", "Emerald", 4},
	{"Emerald 5", "#084828", "Emerald", 5},

	{"Turquoise 1", "#48F0E8", "Turquoise", 1},
	{"Turquoise 2", "#20D8D0", "Turquoise", 2},
	{"Turquoise 3", "#10A8A0", "Turquoise", 3},
	{"Turquoise 4", "#087870", "Turquoise", 4},
	{"Turquoise 5", "#084840", "Turquoise", 5},

	{"Blue 1", "#90C8F0", "Blue", 1},
	{"Blue 2", "#58A0E0", "Blue", 2},
	{"Blue 3", "#2878C0", "Blue", 3},
	{"Blue 4", "#185090", "Blue", 4},
	{"Blue 5", "#083058", "Blue", 5},

	{"Marine 1", "#80B8E0", "Marine", 1},
	{"Marine 2", "#4888C0", "Marine", 2},
	{"Marine 3", "#2860A0", "Marine", 3},
	{"Marine 4", "#184078", "Marine", 4},
	{"Marine 5", "#082848", "Marine", 5},

	{"Violet 1", "#C8A8F0", "Violet", 1},
	{"Violet 2", "#9868E0", "Violet", 2},
	{"Violet 3", "#6838C0", "Violet", 3},
	{"Violet 4", "#482090", "Violet", 4},
	{"Violet 5", "#281058", "Violet", 5},

	{"Purple 1", "#F098D8", "Purple", 1},
	{"Purple 2", "#E058B8", "Purple", 2},
	{"Purple 3", "#B82888", "Purple", 3},
	{"Purple 4", "#881860", "Purple", 4},
	{"Purple 5", "#500838", "Purple", 5},

	{"Pink 1", "#FFC0E0", "Pink", 1},
	{"Pink 2", "#F888B8", "Pink", 2},
	{"Pink 3", "#D84888", "Pink", 3},
	{"Pink 4", "#A82860", "Pink", 4},
	{"Pink 5", "#681038", "Pink", 5},

	{"Flesh 1", "#F8E8D8", "Flesh", 1},
	{"Flesh 2", "#F0D0B0", "Flesh", 2},
	{"Flesh 3", "#E0B090", "Flesh", 3},
	{"Flesh 4", "#C08868", "Flesh", 4},
	{"Flesh 5", "#906048", "Flesh", 5},

	{"Cool Grey 1", "#D0D0D8", "Cool Grey", 1},
	{"Cool Grey 2", "#A8A8B8", "Cool Grey", 2},
	{"Cool Grey 3", "#787888", "Cool Grey", 3},
	{"Cool Grey 4", "#484858", "Cool Grey", 4},
	{"Cool Grey 5", "#202028", "Cool Grey", 5},

	{"Warm Grey 1", "#D8D0C8", "Warm Grey", 1},
	{"Warm Grey 2", "#B8B0A0", "Warm Grey", 2},
	{"Warm Grey 3", "#888878", "Warm Grey", 3},
	{"Warm Grey 4", "#585850", "Warm Grey", 4},
	{"Warm Grey 5", "#303028", "Warm Grey", 5},

	{"Blue Grey 1", "#C8D0E0", "Blue Grey", 1},
	{"Blue Grey 2", "#98A8C0", "Blue Grey", 2},
	{"Blue Grey 3", "#687898", "Blue Grey", 3},
	{"Blue Grey 4", "#405068", "Blue Grey", 4},
	{"Blue Grey 5", "#203040", "Blue Grey", 5},

	{name: "White", hex: "#FFFFFF", family: "Neutral"},
	{name: "Black", hex: "#000000", family: "Neutral"},
}

var warcoloursMetallicPaints = []warcoloursPaint{
	{name: "Metallic White", hex: "#D8D8D8"},
	{name: "Metallic Silver", hex: "#A8A8A8"},
	{name: "Metallic Pewter", hex: "#787878"},
	{name: "Metallic Lead", hex: "#505050"},
	{name: "Metallic Black Silver", hex: "#303038"},
	{name: "Metallic Sky", hex: "#70B8E0"},
	{name: "Metallic Blue", hex: "#3050D0"},
	{name: "Metallic Ultramarine", hex: "#4020A0"},
	{name: "Metallic Violet", hex: "#8020A0"},
	{name: "Metallic Yellow", hex: "#F0D020"},
	{name: "Metallic Sand", hex: "#E8C868"},
	{name: "Metallic Brown", hex: "#906830"},
	{name: "Metallic Choco", hex: "#584028"},
	{name: "Metallic Magenta", hex: "#E030A0"},
	{name: "Metallic Crimson", hex: "#D02040"},
	{name: "Metallic Red", hex: "#C01818"},
	{name: "Metallic Copper", hex: "#C06830"},
	{name: "Metallic Dark Copper", hex: "#884020"},
	{name: "Metallic Black Copper", hex: "#482818"},
	{name: "Metallic Pale Gold", hex: "#F0E0A0"},
	{name: "Metallic Bright Gold", hex: "#E0C028"},
	{name: "Metallic Antique Gold", hex: "#B89820"},
	{name: "Metallic Black Gold", hex: "#786018"},
	{name: "Metallic Lemon", hex: "#F0F078"},
	{name: "Metallic Green", hex: "#40A040"},
	{name: "Metallic Dark Green", hex: "#206820"},
	{name: "Metallic Emerald", hex: "#30A868"},
	{name: "Metallic Turquoise", hex: "#30A8A0"},
}

var warcoloursOneCoatPaints = []warcoloursPaint{
	{name: "White", hex: "#FFFFFF"},
	{name: "Grey", hex: "#888888"},
	{name: "Black", hex: "#000000"},
	{name: "Yellow", hex: "#F8F010"},
	{name: "Yellow Green", hex: "#98E020"},
	{name: "Green", hex: "#20E020"},
	{name: "Turquoise", hex: "#20D8C0"},
	{name: "Baby Blue", hex: "#70C8F0"},
	{name: "Blue", hex: "#2040E0"},
	{name: "Violet", hex: "#7020D0"},
	{name: "Purple", hex: "#A020A0"},
	{name: "Pink", hex: "#F868B0"},
	{name: "Magenta", hex: "#E818A0"},
	{name: "Red", hex: "#E01818"},
	{name: "Red Orange", hex: "#F04010"},
	{name: "Orange", hex: "#F08010"},
	{name: "Beige", hex: "#E8D098"},
	{name: "Ochre", hex: "#C89028"},
	{name: "Silver", hex: "#B0B0B0"},
	{name: "Gold", hex: "#D8B030"},
}

var warcoloursTransparentPaints = []warcoloursPaint{
	{name: "Transparent Orange", hex: "#F08048"},
	{name: "Transparent Red", hex: "#D84848"},
	{name: "Transparent Brown", hex: "#986048"},
	{name: "Transparent Ochre", hex: "#B89040"},
	{name: "Transparent Yellow", hex: "#F0E848"},
	{name: "Transparent Olive", hex: "#889048"},
	{name: "Transparent Green", hex: "#509058"},
	{name: "Transparent Emerald", hex: "#489078"},
	{name: "Transparent Turquoise", hex: "#489898"},
	{name: "Transparent Blue", hex: "#4880B0"},
	{name: "Transparent Marine", hex: "#405898"},
	{name: "Transparent Violet", hex: "#704898"},
	{name: "Transparent Purple", hex: "#984880"},
	{name: "Transparent Pink", hex: "#D87088"},
	{name: "Transparent Flesh", hex: "#C8A090"},
	{name: "Transparent Cool Grey", hex: "#788088"},
	{name: "Transparent Warm Grey", hex: "#888078"},
	{name: "Transparent Blue Grey", hex: "#607888"},
	{name: "Transparent Black", hex: "#282828"},
	{name: "Transparent White", hex: "#E8E8E8"},
}

var warcoloursInkPaints = []warcoloursPaint{
	{name: "White", hex: "#F0F0F0"},
	{name: "Yellow", hex: "#F8E810"},
	{name: "Golden Yellow", hex: "#F8C010"},
	{name: "Orange", hex: "#F87010"},
	{name: "Scarlet", hex: "#E82010"},
	{name: "Carmine", hex: "#B01030"},
	{name: "Magenta", hex: "#D01080"},
	{name: "Purple Violet", hex: "#8018A0"},
	{name: "Violet", hex: "#5010B0"},
	{name: "Phthalo Blue", hex: "#1020A0"},
	{name: "Indigo", hex: "#302878"},
	{name: "Turquoise", hex: "#10A898"},
	{name: "Cyan Blue", hex: "#1080C0"},
	{name: "Phthalo Green", hex: "#10A068"},
	{name: "Sap Green", hex: "#408028"},
	{name: "Yellow Green", hex: "#88C020"},
	{name: "Olive Green", hex: "#606830"},
	{name: "Ochre", hex: "#C09028"},
	{name: "Burnt Sienna", hex: "#C85018"},
	{name: "Umber", hex: "#584030"},
	{name: "Sepia", hex: "#806848"},
	{name: "Black", hex: "#101010"},
}

var warcoloursGlazePaints = []warcoloursPaint{
	{name: "Yellow Glaze", hex: "#F0E858"},
	{name: "Skin Glaze", hex: "#E8D098"},
	{name: "Orange Glaze", hex: "#E88048"},
	{name: "Red Glaze", hex: "#D84040"},
	{name: "Flesh Glaze", hex: "#E8C0B0"},
	{name: "Beige Glaze", hex: "#E0D8A0"},
	{name: "Brown Glaze", hex: "#987050"},
	{name: "Wood Glaze", hex: "#A87858"},
	{name: "Undead Glaze", hex: "#D0C8B8"},
	{name: "Olive Glaze", hex: "#C0D070"},
	{name: "Khaki Glaze", hex: "#A8A060"},
	{name: "Green Glaze", hex: "#58C858"},
	{name: "Light Blue Glaze", hex: "#78A8C8"},
	{name: "Blue Glaze", hex: "#3878B0"},
	{name: "Violet Glaze", hex: "#985898"},
	{name: "Pink Glaze", hex: "#E87898"},
	{name: "Bone Glaze", hex: "#E0D0B8"},
	{name: "Warm Grey Glaze", hex: "#989080"},
	{name: "Blue Grey Glaze", hex: "#8090A0"},
	{name: "Cool Grey Glaze", hex: "#888890"},
}

var warcoloursFluorescentPaints = []warcoloursPaint{
	{name: "Fluorescent Blue", hex: "#1060F0"},
	{name: "Fluorescent Green", hex: "#40F010"},
	{name: "Fluorescent Yellow", hex: "#E8F010"},
	{name: "Fluorescent Orange", hex: "#F0A010"},
	{name: "Fluorescent Red", hex: "#F01050"},
	{name: "Fluorescent Pink", hex: "#F010B0"},
	{name: "Fluorescent Violet", hex: "#A010E0"},
}

var warcoloursAntithesisPaints = []warcoloursPaint{
	{name: "Antithesis Yellow", hex: "#F0E848"},
	{name: "Antithesis Ochre", hex: "#D0A038"},
	{name: "Antithesis Orange", hex: "#E87838"},
	{name: "Antithesis Red", hex: "#D83838"},
	{name: "Antithesis Blood", hex: "#981818"},
	{name: "Antithesis Purple", hex: "#982878"},
	{name: "Antithesis Elf Flesh", hex: "#F0D0B8"},
	{name: "Antithesis Dwarf Flesh", hex: "#D8A888"},
	{name: "Antithesis Leather", hex: "#986848"},
	{name: "Antithesis Fur", hex: "#885838"},
	{name: "Antithesis Wood", hex: "#805838"},
	{name: "Antithesis Brown", hex: "#603828"},
	{name: "Antithesis Dead Flesh", hex: "#B8C088"},
	{name: "Antithesis Olive", hex: "#788038"},
	{name: "Antithesis Khaki", hex: "#989858"},
	{name: "Antithesis Green", hex: "#38B838"},
	{name: "Antithesis Goblinoid", hex: "#589858"},
	{name: "Antithesis Dark Green", hex: "#185818"},
	{name: "Antithesis Emerald", hex: "#389878"},
	{name: "Antithesis Water", hex: "#58B8B8"},
	{name: "Antithesis Turquoise", hex: "#38A8A8"},
	{name: "Antithesis Sky", hex: "#78B8D8"},
	{name: "Antithesis Blue", hex: "#3878C8"},
	{name: "Antithesis Ultramarine", hex: "#2848A8"},
	{name: "Antithesis Marine", hex: "#283878"},
	{name: "Antithesis Indigo", hex: "#382878"},
	{name: "Antithesis Violet", hex: "#784898"},
	{name: "Antithesis Pink", hex: "#D87898"},
	{name: "Antithesis Ultraviolet", hex: "#B858C8"},
	{name: "Antithesis Beige", hex: "#D8D0B8"},
	{name: "Antithesis Bone", hex: "#E0D8C8"},
	{name: "Antithesis Warm Grey", hex: "#908878"},
	{name: "Antithesis Blue Grey", hex: "#708090"},
	{name: "Antithesis Pale Grey", hex: "#C0C0C0"},
	{name: "Antithesis Cool Grey", hex: "#888890"},
	{name: "Antithesis Black", hex: "#181818"},
}

var warcoloursRanges = []struct {
	key    string
	name   string
	typ    domain.PaintType
	code   string
	path   string
	paints []warcoloursPaint
}{
	{"layer", "Layer", domain.PaintTypeLayer, "LAY",
		"index.php?route=product/product&path=66&product_id=51", warcoloursLayerPaints},
	{"metallic", "Metallic", domain.PaintTypeMetallic, "MET",
		"index.php?route=product/product&path=66&product_id=77", warcoloursMetallicPaints},
	{"onecoat", "One Coat", domain.PaintTypeOpaque, "ONE",
		"index.php?route=product/product&path=66&product_id=112", warcoloursOneCoatPaints},
	{"transparent", "Transparent", domain.PaintTypeTransparent, "TRA",
		"index.php?route=product/product&path=66&product_id=52", warcoloursTransparentPaints},
	{"ink", "Ink", domain.PaintTypeInk, "INK",
		"index.php?route=product/product&path=66&product_id=125", warcoloursInkPaints},
	{"glaze", "Glaze", domain.PaintTypeGlaze, "GLA",
		"index.php?route=product/product&path=66&product_id=92", warcoloursGlazePaints},
	{"fluorescent", "Fluorescent", domain.PaintTypeFluorescent, "FLU",
		"index.php?route=product/product&path=66&product_id=85", warcoloursFluorescentPaints},
	{"antithesis", "Antithesis", domain.PaintTypeAntithesis, "ANT",
		"index.php?route=product/product&path=66&product_id=200", warcoloursAntithesisPaints},
}

// warcoloursCodeToType recovers the paint type from a generated SKU's code
// segment; entry ids embed the type, not the range key.
var warcoloursCodeToType = map[string]string{}

func init() {
	for _, r := range warcoloursRanges {
		warcoloursCodeToType[r.code] = string(r.typ)
	}
}

// Warcolours builds the Warcolours brand from static chart data.
func Warcolours() Brand {
	ranges := make([]Range, 0, len(warcoloursRanges))
	for _, r := range warcoloursRanges {
		ranges = append(ranges, Range{
			Key:        r.key,
			Name:       r.name,
			RangeName:  r.name,
			URL:        warcoloursBaseURL + r.path,
			Type:       r.typ,
			OutputFile: "warcolours_" + r.key + ".json",
		})
	}

	return Brand{
		Name:         "Warcolours",
		Key:          "warcolours",
		Ranges:       ranges,
		Source:       warcoloursSource{},
		NormalizeSKU: func(sku string) string { return strings.TrimSpace(sku) },
		MakeID:       warcoloursID,
		Static:       true,
	}
}

type warcoloursSource struct{}

func (warcoloursSource) Page(ctx context.Context, f client.Fetcher, r Range, page int) ([]domain.Record, bool, error) {
	if page > 1 {
		return nil, false, nil
	}

	var table []warcoloursPaint
	for _, entry := range warcoloursRanges {
		if entry.key == r.Key {
			table = entry.paints
			break
		}
	}

	records := make([]domain.Record, 0, len(table))
	for _, p := range table {
		rec := domain.Record{
			Title:      p.name,
			SKU:        warcoloursSKU(warcoloursCode(r.Key), p.name),
			ProductURL: r.URL,
			Hex:        p.hex,
			Type:       r.Type,
		}
		if p.family != "" {
			rec.BrandData = map[string]any{"colorFamily": p.family}
			if p.layer > 0 {
				rec.BrandData["layer"] = p.layer
			}
		}
		records = append(records, rec)
	}
	return records, false, nil
}

func warcoloursCode(key string) string {
	for _, r := range warcoloursRanges {
		if r.key == key {
			return r.code
		}
	}
	return ""
}

var warcoloursSKUCleanRe = regexp.MustCompile(`[^A-Z0-9]`)

func warcoloursSKU(code, name string) string {
	return "WC-" + code + "-" + warcoloursSKUCleanRe.ReplaceAllString(strings.ToUpper(name), "")
}

var warcoloursSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// warcoloursID derives "warcolours-<type>-<name-slug>" ids; the type comes
// back out of the generated SKU's code segment.
func warcoloursID(sku, name string) string {
	typ := ""
	if parts := strings.SplitN(sku, "-", 3); len(parts) == 3 {
		typ = warcoloursCodeToType[parts[1]]
	}
	slug := strings.Trim(warcoloursSlugRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if typ == "" {
		return "warcolours-" + slug
	}
	return "warcolours-" + typ + "-" + slug
}
