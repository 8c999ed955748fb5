// Package normalize canonicalizes SKU and name strings so that records
// scraped on different runs (or rendered differently by the vendor) produce
// the same join keys.
package normalize

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRe     = regexp.MustCompile(`\s+`)
	punctuationRe    = regexp.MustCompile(`[^\w\s]`)
	bareFiveDigitsRe = regexp.MustCompile(`^\d{5}$`)
	elevenDigitsRe   = regexp.MustCompile(`\d{11}`)
	mlParenRe        = regexp.MustCompile(`(?i)\s*\(\d+\s*ml\)\s*$`)
	mlBareRe         = regexp.MustCompile(`(?i)\s+\d+\s*ml\s*$`)
)

// SKU strips all whitespace and uppercases. Applying it twice is a no-op.
func SKU(raw string) string {
	if raw == "" {
		return ""
	}
	return whitespaceRe.ReplaceAllString(strings.ToUpper(raw), "")
}

// VallejoSKU forces the XX.XXX form: a bare 5-digit SKU gets the dot
// inserted ("76109" -> "76.109") so both vendor renderings match.
func VallejoSKU(raw string) string {
	sku := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if bareFiveDigitsRe.MatchString(sku) {
		sku = sku[:2] + "." + sku[2:]
	}
	return sku
}

// CitadelSKU extracts the 11-digit product code when present, since the
// store renders SKUs with assorted prefixes around it.
func CitadelSKU(raw string) string {
	if raw == "" {
		return ""
	}
	if m := elevenDigitsRe.FindString(raw); m != "" {
		return m
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, ""))
}

// Name produces a lossy matching key: lowercase, punctuation stripped,
// filler words removed. Used only for cross-referencing when a SKU match
// fails, never as a display value.
func Name(raw string, fillers []string) string {
	if raw == "" {
		return ""
	}
	name := strings.ToLower(raw)
	name = punctuationRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(whitespaceRe.ReplaceAllString(name, " "))
	for _, word := range fillers {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
		name = re.ReplaceAllString(name, "")
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(name, " "))
}

// DisplayName title-cases words that arrive fully upper or fully lower
// cased. Mixed-case words pass through so intentional stylization like
// "XV-88" survives. HTML entities are decoded first.
func DisplayName(raw string) string {
	if raw == "" {
		return raw
	}
	words := strings.Fields(html.UnescapeString(raw))
	for i, word := range words {
		if word == strings.ToUpper(word) || word == strings.ToLower(word) {
			words[i] = titleWord(word)
		}
	}
	return strings.Join(words, " ")
}

// CleanName strips a trailing "– <suffix>" when the suffix contains one of
// the known range/category words, then strips ml size annotations.
// "Gold – Quick Gen Color" -> "Gold".
func CleanName(raw string, suffixWords []string) string {
	if raw == "" {
		return raw
	}
	name := raw
	for _, sep := range []string{" – ", "- ", " - ", " — ", "— "} {
		idx := strings.LastIndex(name, sep)
		if idx < 0 {
			continue
		}
		suffix := strings.ToLower(name[idx+len(sep):])
		matched := false
		for _, word := range suffixWords {
			if strings.Contains(suffix, word) {
				matched = true
				break
			}
		}
		if matched {
			name = strings.TrimSpace(name[:idx])
			break
		}
	}
	name = strings.TrimSpace(mlParenRe.ReplaceAllString(name, ""))
	return strings.TrimSpace(mlBareRe.ReplaceAllString(name, ""))
}

// titleWord uppercases the first letter of each hyphen/slash-free run and
// lowercases the rest, the way Python's str.title treats "RAL" -> "Ral".
func titleWord(word string) string {
	var b strings.Builder
	startOfRun := true
	for _, r := range word {
		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			startOfRun = true
			continue
		}
		if startOfRun {
			b.WriteRune(unicode.ToUpper(r))
			startOfRun = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
