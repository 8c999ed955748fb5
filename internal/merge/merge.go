// Package merge reconciles freshly scraped records into existing catalogue
// files: hex refresh by SKU match, SKU rename propagation by name match,
// and never any deletion.
package merge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"paintdb/scraper/internal/domain"
)

// Keys supplies the brand's normalizers used as join keys. SKU must be a
// projection (applying it twice equals applying it once) or merge loses
// idempotence.
type Keys struct {
	SKU  func(string) string
	Name func(string) string
}

// Stats reports what one merge pass changed.
type Stats struct {
	Updated    int
	SKUChanges int
	// NotFound lists entries matched by neither key; they are left
	// untouched and reported for diagnostics only.
	NotFound []string
}

// Merge applies fresh records onto the catalogue in place. Entries are
// matched by normalized SKU first, normalized name second. A name-only
// match means the vendor renumbered the product, so the new SKU and URL are
// propagated onto the entry. Re-running with the same records is a no-op.
func Merge(cat *domain.Catalogue, fresh []domain.Record, keys Keys) Stats {
	skuTo := make(map[string]domain.Record)
	nameTo := make(map[string]domain.Record)
	for _, rec := range fresh {
		if rec.SKU == "" {
			continue
		}
		skuTo[keys.SKU(rec.SKU)] = rec
		// Only records that carry a color may drive the rename path; a
		// hexless SKU match still counts as present in the scrape.
		if rec.Hex == "" {
			continue
		}
		if name := keys.Name(rec.Title); name != "" {
			if _, seen := nameTo[name]; !seen {
				nameTo[name] = rec
			}
		}
	}

	var stats Stats
	for i := range cat.Paints {
		paint := &cat.Paints[i]
		sku := keys.SKU(paint.SKU)

		if rec, ok := skuTo[sku]; ok {
			if rec.Hex != "" && paint.Hex != rec.Hex {
				paint.Hex = rec.Hex
				stats.Updated++
			}
			continue
		}

		if rec, ok := nameTo[keys.Name(paint.Name)]; ok {
			changed := false
			if paint.Hex != rec.Hex {
				paint.Hex = rec.Hex
				changed = true
			}
			newSKU := keys.SKU(rec.SKU)
			if newSKU != "" && newSKU != paint.SKU {
				paint.SKU = newSKU
				if rec.ProductURL != "" {
					paint.URL = rec.ProductURL
				}
				stats.SKUChanges++
				changed = true
			}
			if changed {
				stats.Updated++
			}
			continue
		}

		if sku != "" {
			stats.NotFound = append(stats.NotFound, paint.SKU)
		}
	}
	return stats
}

// UpdateFile merges fresh records into one catalogue file, preserving its
// on-disk shape. The file is rewritten only when something changed.
func UpdateFile(path string, fresh []domain.Record, keys Keys) (Stats, error) {
	cat, err := LoadFile(path)
	if err != nil {
		return Stats{}, err
	}

	stats := Merge(cat, fresh, keys)
	if stats.Updated == 0 {
		return stats, nil
	}

	if err := SaveFile(path, cat); err != nil {
		return stats, err
	}
	return stats, nil
}

// DirectoryStats aggregates a batch merge over every catalogue file in a
// directory.
type DirectoryStats struct {
	Files      int
	Updated    int
	SKUChanges int
	// Unmatched lists scraped SKUs that matched no file at all, grouped
	// for display; candidates for new catalogue entries.
	Unmatched []string
}

// UpdateDirectory merges fresh records into every *.json file in dir.
// Malformed files are reported and skipped; the rest continue.
func UpdateDirectory(dir string, fresh []domain.Record, keys Keys) (DirectoryStats, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return DirectoryStats{}, err
	}
	sort.Strings(paths)

	var stats DirectoryStats
	allSKUs := make(map[string]struct{})

	for _, path := range paths {
		name := filepath.Base(path)
		cat, err := LoadFile(path)
		if err != nil {
			log.Warnf("%s: skipped - %v", name, err)
			continue
		}
		stats.Files++

		fileStats := Merge(cat, fresh, keys)
		if fileStats.Updated > 0 {
			if err := SaveFile(path, cat); err != nil {
				return stats, fmt.Errorf("failed to write %s: %w", path, err)
			}
			msg := fmt.Sprintf("%s: %d paints updated", name, fileStats.Updated)
			if fileStats.SKUChanges > 0 {
				msg += fmt.Sprintf(" (%d SKUs changed)", fileStats.SKUChanges)
			}
			log.Info(msg)
		} else {
			log.Infof("%s: no changes", name)
		}
		if len(fileStats.NotFound) > 0 {
			log.Infof("  not in scrape: %s", strings.Join(GroupByPrefix(fileStats.NotFound), ", "))
		}

		stats.Updated += fileStats.Updated
		stats.SKUChanges += fileStats.SKUChanges
		for _, p := range cat.Paints {
			if sku := keys.SKU(p.SKU); sku != "" {
				allSKUs[sku] = struct{}{}
			}
		}
	}

	for _, rec := range fresh {
		if rec.SKU == "" {
			continue
		}
		if _, ok := allSKUs[keys.SKU(rec.SKU)]; !ok {
			stats.Unmatched = append(stats.Unmatched, rec.SKU)
		}
	}

	log.Infof("Total: %d paints updated across %d files", stats.Updated, stats.Files)
	if stats.SKUChanges > 0 {
		log.Infof("       %d SKUs updated to new values", stats.SKUChanges)
	}
	if len(stats.Unmatched) > 0 {
		log.Infof("Scraped but not in any file (%d total): %s",
			len(stats.Unmatched), strings.Join(GroupByPrefix(stats.Unmatched), ", "))
	}
	return stats, nil
}

// LoadFile reads one catalogue file in either of the two accepted shapes.
func LoadFile(path string) (*domain.Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat domain.Catalogue
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// SaveFile writes the catalogue back in its original shape.
func SaveFile(path string, cat *domain.Catalogue) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

var skuPrefixRe = regexp.MustCompile(`^([A-Z]+\d{0,3})`)

// GroupByPrefix compacts a SKU list for display: runs sharing a prefix
// collapse into "first..last (n)".
func GroupByPrefix(skus []string) []string {
	byPrefix := make(map[string][]string)
	var order []string
	for _, sku := range skus {
		prefix := "OTHER"
		if m := skuPrefixRe.FindStringSubmatch(strings.ToUpper(sku)); m != nil {
			prefix = m[1]
		}
		if _, seen := byPrefix[prefix]; !seen {
			order = append(order, prefix)
		}
		byPrefix[prefix] = append(byPrefix[prefix], sku)
	}
	sort.Strings(order)

	var parts []string
	for _, prefix := range order {
		group := byPrefix[prefix]
		if len(group) == 1 {
			parts = append(parts, group[0])
		} else {
			parts = append(parts, fmt.Sprintf("%s..%s (%d)", group[0], group[len(group)-1], len(group)))
		}
	}
	return parts
}
