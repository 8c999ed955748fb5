package assemble

import (
	"regexp"
	"strings"

	"paintdb/scraper/internal/domain"
)

// TypeOverride maps a name keyword to a paint type. Brands append their own
// overrides (e.g. metallic color names) after the shared chain.
type TypeOverride struct {
	Keyword string
	Type    domain.PaintType
}

// standaloneMediumRe matches "medium" used as a product descriptor
// ("Glaze Medium", "Medium for Airbrush") without matching color names
// like "Medium Blue".
var standaloneMediumRe = regexp.MustCompile(`\bmedium\s+(for|gen|paint)|medium$`)

// sharedOverrides apply to every brand, in order, before brand-specific
// ones.
var sharedOverrides = []TypeOverride{
	{"varnish", domain.PaintTypeVarnish},
	{"thinner", domain.PaintTypeThinner},
	{"primer", domain.PaintTypePrimer},
}

// PaintTypeFor derives the paint type from the product name, falling back
// to the range's default. Explicit keyword matches win over the default.
func PaintTypeFor(name string, extra []TypeOverride, def domain.PaintType) domain.PaintType {
	lower := strings.ToLower(name)

	for _, ov := range sharedOverrides {
		if strings.Contains(lower, ov.Keyword) {
			return ov.Type
		}
	}
	if standaloneMediumRe.MatchString(lower) {
		return domain.PaintTypeTechnical
	}
	for _, ov := range extra {
		if strings.Contains(lower, ov.Keyword) {
			return ov.Type
		}
	}
	return def
}
