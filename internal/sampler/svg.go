package sampler

import (
	"regexp"
	"strings"
)

var (
	// The vendor's vector pot/spray renders clip the paint fill to a shape
	// with a well-known id; the rect inside that group is the paint color.
	clipFillRe = regexp.MustCompile(`(?s)clip-path="url\(#(?:pot|spray)\)"[^>]*>.*?<rect[^>]*fill="(#[0-9A-Fa-f]{6})"`)
	rectFillRe = regexp.MustCompile(`<rect[^>]*fill="(#[0-9A-Fa-f]{6})"`)
	hexLitRe   = regexp.MustCompile(`#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`)
)

// svgIgnoreColors are UI fills that never represent paint: backgrounds,
// label text, shadows and pot outlines.
var svgIgnoreColors = map[string]struct{}{
	"FFFFFF": {}, "FEFEFE": {}, "FDFDFD": {}, "FCFCFC": {}, "FAFAFA": {},
	"000000": {}, "010101": {}, "020202": {}, "030303": {},
	"F5F5F5": {}, "EFEFEF": {}, "E0E0E0": {}, "D0D0D0": {}, "C0C0C0": {},
	"808080": {}, "888888": {}, "999999": {}, "AAAAAA": {}, "B0B0B0": {},
	"292929": {}, "333333": {}, "444444": {}, "555555": {}, "666666": {}, "1A1A1A": {},
}

// SampleSVG extracts the primary paint color from flat-fill vector markup.
// It prefers a fill scoped inside the pot/spray clip region, then rect
// fills, then any hex literal, picking the most frequent color that is not
// a known UI color. Returns false when the markup contains no color at all.
func SampleSVG(markup string) (string, bool) {
	if m := clipFillRe.FindStringSubmatch(markup); m != nil {
		return strings.ToUpper(m[1]), true
	}

	var raw []string
	for _, m := range rectFillRe.FindAllStringSubmatch(markup, -1) {
		raw = append(raw, m[1])
	}
	if len(raw) == 0 {
		raw = hexLiterals(markup)
	}
	if len(raw) == 0 {
		return "", false
	}

	counts := make(map[string]int)
	var order []string
	for _, c := range raw {
		c = expandHex(c)
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	best := func(skipIgnored bool) string {
		winner := ""
		winnerCount := 0
		for _, c := range order {
			if skipIgnored {
				if _, ignored := svgIgnoreColors[c]; ignored {
					continue
				}
			}
			if counts[c] > winnerCount {
				winner = c
				winnerCount = counts[c]
			}
		}
		return winner
	}

	if c := best(true); c != "" {
		return "#" + c, true
	}
	// Every fill was a UI color; return the most frequent one anyway.
	return "#" + best(false), true
}

// hexLiterals collects 3- and 6-digit hex colors, skipping longer runs such
// as 8-digit RGBA values that a plain regex match would truncate.
func hexLiterals(markup string) []string {
	var out []string
	for _, loc := range hexLitRe.FindAllStringSubmatchIndex(markup, -1) {
		end := loc[1]
		if end < len(markup) && isHexDigit(markup[end]) {
			continue
		}
		out = append(out, markup[loc[2]:loc[3]])
	}
	return out
}

// expandHex normalizes a 3-digit shorthand to 6 uppercase digits.
func expandHex(c string) string {
	c = strings.TrimPrefix(c, "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	return strings.ToUpper(c)
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}
