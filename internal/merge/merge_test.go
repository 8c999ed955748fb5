package merge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/normalize"
)

func testKeys() Keys {
	return Keys{
		SKU: normalize.SKU,
		Name: func(raw string) string {
			return normalize.Name(raw, nil)
		},
	}
}

func TestMergeUpdatesHexBySKU(t *testing.T) {
	cat := &domain.Catalogue{Paints: []domain.Paint{
		{SKU: "AK123", Name: "Slate Grey", Hex: "#000000"},
	}}
	fresh := []domain.Record{
		{SKU: "ak 123", Title: "Slate Grey", Hex: "#112233"},
	}

	stats := Merge(cat, fresh, testKeys())

	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 0, stats.SKUChanges)
	assert.Equal(t, "#112233", cat.Paints[0].Hex)
}

func TestMergeIsIdempotent(t *testing.T) {
	cat := &domain.Catalogue{Paints: []domain.Paint{
		{SKU: "AK123", Name: "Slate Grey", Hex: "#000000"},
		{SKU: "09701", Name: "Pure Black", Hex: "#101010"},
	}}
	fresh := []domain.Record{
		{SKU: "AK123", Title: "Slate Grey", Hex: "#112233"},
		{SKU: "09703", Title: "Pure Black", Hex: "#0A0A0A", ProductURL: "https://x/09703"},
	}

	first := Merge(cat, fresh, testKeys())
	assert.Equal(t, 2, first.Updated)

	second := Merge(cat, fresh, testKeys())
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, 0, second.SKUChanges)
}

func TestMergePropagatesSKURename(t *testing.T) {
	cat := &domain.Catalogue{Paints: []domain.Paint{
		{SKU: "09701", Name: "Pure Black", Hex: "#101010", URL: "https://x/09701"},
	}}
	fresh := []domain.Record{
		{SKU: "09703", Title: "Pure Black", Hex: "#0A0A0A", ProductURL: "https://x/09703"},
	}

	stats := Merge(cat, fresh, testKeys())

	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 1, stats.SKUChanges)
	assert.Equal(t, "09703", cat.Paints[0].SKU)
	assert.Equal(t, "#0A0A0A", cat.Paints[0].Hex)
	assert.Equal(t, "https://x/09703", cat.Paints[0].URL)
}

func TestMergeReportsNotFound(t *testing.T) {
	cat := &domain.Catalogue{Paints: []domain.Paint{
		{SKU: "AK999", Name: "Gone Green", Hex: "#00FF00"},
	}}
	fresh := []domain.Record{
		{SKU: "AK123", Title: "Slate Grey", Hex: "#112233"},
	}

	stats := Merge(cat, fresh, testKeys())

	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, []string{"AK999"}, stats.NotFound)
	assert.Equal(t, "#00FF00", cat.Paints[0].Hex)
}

func TestMergeHexlessRecordMatchesWithoutUpdating(t *testing.T) {
	cat := &domain.Catalogue{Paints: []domain.Paint{
		{SKU: "AK123", Name: "Slate Grey", Hex: "#000000"},
	}}
	fresh := []domain.Record{
		{SKU: "AK123", Title: "Slate Grey"},
	}

	stats := Merge(cat, fresh, testKeys())
	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, "#000000", cat.Paints[0].Hex)
	// A colorless scrape still proves the entry exists.
	assert.Empty(t, stats.NotFound)
}

func TestMergeHexlessRecordNeverDrivesRename(t *testing.T) {
	cat := &domain.Catalogue{Paints: []domain.Paint{
		{SKU: "09701", Name: "Pure Black", Hex: "#101010"},
	}}
	fresh := []domain.Record{
		{SKU: "09703", Title: "Pure Black"},
	}

	stats := Merge(cat, fresh, testKeys())
	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, 0, stats.SKUChanges)
	assert.Equal(t, "09701", cat.Paints[0].SKU)
	assert.Equal(t, []string{"09701"}, stats.NotFound)
}

func TestUpdateFilePreservesWrappedShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inks.json")
	content := `{"range":"inks","name":"The Inks","paints":[{"brand":"AK","brandData":{},"category":"","hex":"#000000","id":"ak-ak160","name":"Black","range":"The Inks","sku":"AK160","type":"ink","url":""}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stats, err := UpdateFile(path, []domain.Record{
		{SKU: "AK160", Title: "Black", Hex: "#0B0B0B"},
	}, testKeys())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Updated)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(text), "{"))
	assert.Contains(t, text, `"range": "inks"`)
	assert.Contains(t, text, "#0B0B0B")
}

func TestUpdateFileNoChangeLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.json")
	content := `[{"brand":"AK","brandData":{},"category":"","hex":"#112233","id":"ak-ak123","name":"Slate Grey","range":"","sku":"AK123","type":"opaque","url":""}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stats, err := UpdateFile(path, []domain.Record{
		{SKU: "AK123", Title: "Slate Grey", Hex: "#112233"},
	}, testKeys())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Updated)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestUpdateDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"),
		[]byte(`[{"brand":"AK","brandData":{},"category":"","hex":"#000000","id":"ak-ak123","name":"Slate Grey","range":"","sku":"AK123","type":"opaque","url":""}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{nope`), 0o644))

	stats, err := UpdateDirectory(dir, []domain.Record{
		{SKU: "AK123", Title: "Slate Grey", Hex: "#445566"},
		{SKU: "AK777", Title: "Brand New", Hex: "#777777"},
	}, testKeys())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, []string{"AK777"}, stats.Unmatched)
}

func TestGroupByPrefix(t *testing.T) {
	got := GroupByPrefix([]string{"AK11001", "AK11002", "AK11005", "76.109"})
	assert.Equal(t, []string{"AK11001..AK11005 (3)", "76.109"}, got)
}
