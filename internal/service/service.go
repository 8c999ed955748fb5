// Package service runs the scraping pipeline: page fetching, filtering,
// color sampling and catalogue output for one brand at a time.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"paintdb/scraper/internal/assemble"
	"paintdb/scraper/internal/brand"
	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/config"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/merge"
	"paintdb/scraper/internal/normalize"
	"paintdb/scraper/internal/sampler"
)

// Options tune one scrape run. Zero values fall back to configuration.
type Options struct {
	// NoFilter keeps set/bundle/accessory records instead of dropping them.
	NoFilter bool
	// NoColors skips image fetching and color sampling entirely.
	NoColors bool
	// RefreshSets forces a refetch of the vendor's set-SKU exclusion list.
	RefreshSets bool
	// Workers overrides the sampling pool width.
	Workers int
	// RangeWorkers overrides how many ranges scrape concurrently.
	RangeWorkers int
}

// Service wires the fetcher, configuration and set-SKU cache into the
// scraping pipeline.
type Service struct {
	cfg     *config.Config
	fetcher client.Fetcher
	sets    *filter.SetSKUCache
}

func New(cfg *config.Config, f client.Fetcher, sets *filter.SetSKUCache) *Service {
	return &Service{cfg: cfg, fetcher: f, sets: sets}
}

// ScrapeRange fetches, filters and annotates every record of one range,
// then samples colors through the worker pool. Returned records carry a
// hex value where sampling succeeded and an empty one where it failed.
func (s *Service) ScrapeRange(ctx context.Context, b brand.Brand, r brand.Range, opts Options) ([]domain.Record, error) {
	if err := s.loadSetSKUs(ctx, b, opts); err != nil {
		return nil, err
	}

	log.Infof("Scraping %s / %s...", b.Name, r.Name)

	excluded := make(map[string]struct{}, len(r.ExcludeSKUs))
	for _, sku := range r.ExcludeSKUs {
		excluded[s.normSKU(b, sku)] = struct{}{}
	}

	var records []domain.Record
	for page := 1; page <= s.cfg.Scrape.MaxPages; page++ {
		raw, more, err := b.Source.Page(ctx, s.fetcher, r, page)
		if err != nil {
			return nil, fmt.Errorf("failed to scrape %s page %d: %w", r.Key, page, err)
		}
		// An empty page before filtering means the listing ran out, not
		// that everything on it was a set.
		if len(raw) == 0 {
			break
		}

		for _, rec := range raw {
			if !opts.NoFilter && !b.Rules.IsIndividualPaint(rec) {
				continue
			}
			if _, drop := excluded[s.normSKU(b, rec.SKU)]; drop {
				continue
			}
			records = append(records, rec)
		}

		if !more {
			break
		}
		if s.cfg.Scrape.PageDelayMs > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(s.cfg.Scrape.PageDelayMs) * time.Millisecond):
			}
		}
	}
	log.Infof("%s / %s: %d paints found", b.Name, r.Key, len(records))

	s.annotate(b, r, records)

	if !opts.NoColors && !b.Static {
		s.sampleColors(ctx, b, r, records, opts)
	}
	return records, nil
}

// ScrapeAll scrapes every range of the brand, ranges in parallel up to the
// range-worker limit, and runs the brand's cross-reference step strictly
// after all ranges have finished.
func (s *Service) ScrapeAll(ctx context.Context, b brand.Brand, opts Options) (map[string][]domain.Record, error) {
	width := opts.RangeWorkers
	if width <= 0 {
		width = s.cfg.Scrape.RangeWorkers
	}
	if width <= 0 {
		width = 1
	}

	byRange := make(map[string][]domain.Record, len(b.Ranges))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(width)
	for _, r := range b.Ranges {
		r := r
		g.Go(func() error {
			records, err := s.ScrapeRange(gctx, b, r, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			byRange[r.Key] = records
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if b.CrossReference != nil {
		b.CrossReference(byRange)
	}
	return byRange, nil
}

// Generate assembles scraped records into fresh catalogue files under
// outDir, one file per output group in the brand's range order.
func (s *Service) Generate(b brand.Brand, outDir string, byRange map[string][]domain.Record) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	groups := make(map[string][]brand.Range)
	var order []string
	for _, r := range b.Ranges {
		if r.OutputFile == "" {
			continue
		}
		if _, seen := groups[r.OutputFile]; !seen {
			order = append(order, r.OutputFile)
		}
		groups[r.OutputFile] = append(groups[r.OutputFile], r)
	}

	for _, file := range order {
		// A single-range run must leave the other groups' files alone.
		scraped := false
		var records []domain.Record
		for _, r := range groups[file] {
			recs, ok := byRange[r.Key]
			if !ok {
				continue
			}
			scraped = true
			records = append(records, recs...)
		}
		if !scraped {
			continue
		}

		params := b.AssembleParams(groups[file][0])
		// Records are annotated with their range name; files that merge
		// several ranges must not flatten it back to one value.
		params.RangeName = ""

		paints := assemble.Assemble(records, params)
		if paints == nil {
			paints = []domain.Paint{}
		}
		path := filepath.Join(outDir, file)
		data, err := json.MarshalIndent(paints, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", file, err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Infof("Wrote %d paints to %s", len(paints), path)
	}
	return nil
}

// WriteRaw dumps one range's assembled paints as a {range, name, paints}
// wrapper file, the shape hand-maintained catalogue files use.
func (s *Service) WriteRaw(path string, b brand.Brand, r brand.Range, records []domain.Record) error {
	params := b.AssembleParams(r)
	params.RangeName = ""
	cat := domain.Catalogue{
		Wrapped: true,
		Range:   r.Key,
		Name:    r.Name,
		Paints:  assemble.Assemble(records, params),
	}
	if err := merge.SaveFile(path, &cat); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Infof("Wrote %d paints to %s", len(cat.Paints), path)
	return nil
}

// Update merges scraped records into one existing catalogue file.
func (s *Service) Update(path string, b brand.Brand, records []domain.Record) (merge.Stats, error) {
	return merge.UpdateFile(path, records, s.mergeKeys(b))
}

// UpdateAll merges scraped records into every catalogue file in dir.
func (s *Service) UpdateAll(dir string, b brand.Brand, records []domain.Record) (merge.DirectoryStats, error) {
	return merge.UpdateDirectory(dir, records, s.mergeKeys(b))
}

func (s *Service) mergeKeys(b brand.Brand) merge.Keys {
	sku, name := b.MergeKeys()
	if sku == nil {
		sku = normalize.SKU
	}
	return merge.Keys{SKU: sku, Name: name}
}

func (s *Service) loadSetSKUs(ctx context.Context, b brand.Brand, opts Options) error {
	if b.FetchSets == nil || s.sets == nil {
		return nil
	}
	return s.sets.Load(ctx, func(ctx context.Context) ([]string, error) {
		return b.FetchSets(ctx, s.fetcher)
	}, opts.RefreshSets)
}

// annotate fills category, range name and paint type from the range
// definition wherever the source left them empty, and applies the brand's
// pinned hex values.
func (s *Service) annotate(b brand.Brand, r brand.Range, records []domain.Record) {
	for i := range records {
		rec := &records[i]
		if rec.Category == "" {
			rec.Category = r.Category
		}
		if rec.RangeName == "" {
			rec.RangeName = r.RangeName
		}
		if rec.Type == "" {
			rec.Type = assemble.PaintTypeFor(rec.Title, b.TypeOverrides, r.Type)
		}
		if rec.Hex == "" && b.HexOverrides != nil {
			if hex, ok := b.HexOverrides[s.normSKU(b, rec.SKU)]; ok {
				rec.Hex = hex
			}
		}
	}
}

// sampleColors resolves and samples product imagery through a bounded
// worker pool. Failures log a warning and leave the record's hex empty.
func (s *Service) sampleColors(ctx context.Context, b brand.Brand, r brand.Range, records []domain.Record, opts Options) {
	workers := opts.Workers
	if workers <= 0 {
		workers = s.cfg.Scrape.Workers
	}
	if workers <= 0 {
		workers = 1
	}

	log.Infof("Sampling colors for %d paints (%d workers)...", len(records), workers)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range records {
		if records[i].Hex != "" {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(rec *domain.Record) {
			defer wg.Done()
			defer func() { <-sem }()

			hex, err := s.sampleOne(ctx, b, r, rec)
			if err != nil {
				log.Warnf("%s: color sampling failed: %v", rec.SKU, err)
				return
			}
			rec.Hex = hex
		}(&records[i])
	}
	wg.Wait()
}

var errNoImage = errors.New("no product image")

func (s *Service) sampleOne(ctx context.Context, b brand.Brand, r brand.Range, rec *domain.Record) (string, error) {
	imgURL := rec.ImageURL
	if r.ImageURL != nil {
		imgURL = r.ImageURL(rec.SKU)
	}
	if imgURL == "" && b.FindImage != nil {
		found, err := b.FindImage(ctx, s.fetcher, *rec)
		if err != nil {
			return "", err
		}
		imgURL = found
	}
	if imgURL == "" {
		return "", errNoImage
	}

	if r.Vector {
		markup, err := s.fetcher.GetText(ctx, imgURL)
		if err != nil {
			return "", err
		}
		hex, ok := sampler.SampleSVG(markup)
		if !ok {
			return "", fmt.Errorf("no usable fill in %s", imgURL)
		}
		return hex, nil
	}

	body, err := s.fetcher.GetBytes(ctx, imgURL)
	if err != nil {
		return "", err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", imgURL, err)
	}

	layout := r.Layout
	if b.LayoutFor != nil {
		if l, ok := b.LayoutFor(*rec); ok {
			layout = l
		}
	}
	return sampler.Sample(img, layout), nil
}

func (s *Service) normSKU(b brand.Brand, sku string) string {
	if b.NormalizeSKU != nil {
		return b.NormalizeSKU(sku)
	}
	return normalize.SKU(sku)
}
