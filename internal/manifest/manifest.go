// Package manifest summarizes a catalogue data directory into a single
// manifest.json consumers can poll for changes: per-file content hashes,
// paint counts and the generating commit.
package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"paintdb/scraper/internal/domain"
)

const ManifestVersion = 1

// File describes one catalogue file in the manifest.
type File struct {
	Brand      string `json:"brand"`
	Range      string `json:"range"`
	Path       string `json:"path"`
	Hash       string `json:"hash"`
	PaintCount int    `json:"paintCount"`
}

// Manifest is the manifest.json document.
type Manifest struct {
	Version     int    `json:"version"`
	CommitHash  string `json:"commitHash"`
	GeneratedAt string `json:"generatedAt"`
	TotalPaints int    `json:"totalPaints"`
	Files       []File `json:"files"`
}

// brandNames maps catalogue subdirectory names to display brand names.
// Unlisted directories fall back to title-casing.
var brandNames = map[string]string{
	"ak":         "AK Interactive",
	"citadel":    "Citadel",
	"monument":   "Monument Hobbies",
	"p3":         "P3",
	"reaper":     "Reaper",
	"vallejo":    "Vallejo",
	"warcolours": "Warcolours",
}

// Build walks dataDir and summarizes every catalogue JSON file. Files that
// do not parse as a catalogue are skipped with a warning. now is injectable
// for tests; nil means time.Now.
func Build(dataDir string, now func() time.Time) (*Manifest, error) {
	if now == nil {
		now = time.Now
	}

	m := &Manifest{
		Version:     ManifestVersion,
		CommitHash:  commitHash(dataDir),
		GeneratedAt: now().UTC().Format("2006-01-02T15:04:05Z"),
		Files:       []File{},
	}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") && path != dataDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".json") ||
			name == "manifest.json" ||
			strings.HasPrefix(name, ".") ||
			strings.Contains(name, "cache") {
			return nil
		}

		entry, err := summarize(dataDir, path)
		if err != nil {
			log.Warnf("%s: skipped - %v", name, err)
			return nil
		}
		m.Files = append(m.Files, entry)
		m.TotalPaints += entry.PaintCount
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dataDir, err)
	}

	sort.Slice(m.Files, func(i, j int) bool {
		if m.Files[i].Brand != m.Files[j].Brand {
			return m.Files[i].Brand < m.Files[j].Brand
		}
		return m.Files[i].Range < m.Files[j].Range
	})
	return m, nil
}

// Write builds the manifest for dataDir and writes it as manifest.json in
// that directory.
func Write(dataDir string) error {
	m, err := Build(dataDir, nil)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dataDir, "manifest.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	log.Infof("Wrote manifest for %d files (%d paints) to %s", len(m.Files), m.TotalPaints, path)
	return nil
}

func summarize(dataDir, path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	var cat domain.Catalogue
	if err := json.Unmarshal(data, &cat); err != nil {
		return File{}, err
	}

	rel, err := filepath.Rel(dataDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	rangeName := cat.Name
	if rangeName == "" && len(cat.Paints) > 0 {
		rangeName = cat.Paints[0].Range
	}

	sum := sha256.Sum256(data)
	return File{
		Brand:      brandFor(dataDir, path, rel),
		Range:      rangeName,
		Path:       filepath.ToSlash(rel),
		Hash:       fmt.Sprintf("sha256:%x", sum),
		PaintCount: len(cat.Paints),
	}, nil
}

// brandFor derives the brand from the file's subdirectory, falling back to
// the filename's first underscore segment for files at the root.
func brandFor(dataDir, path, rel string) string {
	dir := filepath.Base(filepath.Dir(path))
	if filepath.Dir(rel) == "." {
		base := strings.TrimSuffix(filepath.Base(path), ".json")
		dir, _, _ = strings.Cut(base, "_")
	}

	key := strings.ToLower(dir)
	if name, ok := brandNames[key]; ok {
		return name
	}
	return titleCase(dir)
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// commitHash reports the checked-out commit of the repository containing
// dir, "unknown" when dir is not inside a git checkout.
func commitHash(dir string) string {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
