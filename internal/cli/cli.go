// Package cli exposes the scraper as a cobra command tree: one subcommand
// per brand sharing a flag set, plus the manifest generator.
package cli

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"paintdb/scraper/internal/brand"
	"paintdb/scraper/internal/container"
	"paintdb/scraper/internal/domain"
	"paintdb/scraper/internal/manifest"
	"paintdb/scraper/internal/service"
)

// New builds the root command over an initialized container.
func New(app *container.Container) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "paintdb",
		Short:         "Scrape miniature paint catalogues into JSON files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	keys := make([]string, 0, len(app.Brands))
	for key := range app.Brands {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		root.AddCommand(brandCommand(app, app.Brands[key]))
	}
	root.AddCommand(manifestCommand(app))

	return root
}

type brandFlags struct {
	rangeKey    string
	output      string
	update      string
	updateAll   string
	generate    bool
	noColors    bool
	noFilter    bool
	refreshSets bool
	workers     int
	rangeWorks  int
}

func brandCommand(app *container.Container, b brand.Brand) *cobra.Command {
	var flags brandFlags

	cmd := &cobra.Command{
		Use:   b.Key,
		Short: fmt.Sprintf("Scrape %s paints", b.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrand(cmd, app, b, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.rangeKey, "range", "", "scrape a single range instead of all of them")
	f.StringVar(&flags.output, "output", "", "write the scraped range as a raw catalogue file (requires --range)")
	f.StringVar(&flags.update, "update", "", "merge results into one existing catalogue file")
	f.StringVar(&flags.updateAll, "update-all", "", "merge results into every catalogue file in a directory")
	f.BoolVar(&flags.generate, "generate", false, "write fresh catalogue files to the output directory")
	f.BoolVar(&flags.noColors, "no-colors", false, "skip color sampling")
	f.BoolVar(&flags.noFilter, "no-filter", false, "keep sets, bundles and accessories")
	f.BoolVar(&flags.refreshSets, "refresh-sets", false, "refetch the set-SKU exclusion list")
	f.IntVar(&flags.workers, "workers", 0, "color sampling workers (default from config)")
	f.IntVar(&flags.rangeWorks, "range-workers", 0, "ranges scraped concurrently (default from config)")

	return cmd
}

func runBrand(cmd *cobra.Command, app *container.Container, b brand.Brand, flags brandFlags) error {
	ctx := cmd.Context()
	opts := service.Options{
		NoColors:     flags.noColors,
		NoFilter:     flags.noFilter,
		RefreshSets:  flags.refreshSets,
		Workers:      flags.workers,
		RangeWorkers: flags.rangeWorks,
	}

	byRange := make(map[string][]domain.Record)
	if flags.rangeKey != "" {
		r, ok := b.FindRange(flags.rangeKey)
		if !ok {
			fmt.Printf("Unknown range %q for %s. Available ranges: %s\n",
				flags.rangeKey, b.Name, strings.Join(b.RangeKeys(), ", "))
			return nil
		}
		records, err := app.Service.ScrapeRange(ctx, b, r, opts)
		if err != nil {
			return err
		}
		byRange[r.Key] = records

		if flags.output != "" {
			return app.Service.WriteRaw(flags.output, b, r, records)
		}
	} else {
		if flags.output != "" {
			return fmt.Errorf("--output writes a single range, combine it with --range")
		}
		all, err := app.Service.ScrapeAll(ctx, b, opts)
		if err != nil {
			return err
		}
		byRange = all
	}

	var records []domain.Record
	for _, r := range b.Ranges {
		records = append(records, byRange[r.Key]...)
	}

	switch {
	case flags.update != "":
		stats, err := app.Service.Update(flags.update, b, records)
		if err != nil {
			return err
		}
		log.Infof("%s: %d paints updated (%d SKUs changed)", flags.update, stats.Updated, stats.SKUChanges)
	case flags.updateAll != "":
		if _, err := app.Service.UpdateAll(flags.updateAll, b, records); err != nil {
			return err
		}
	case flags.generate:
		return app.Service.Generate(b, app.Config.Output.Dir, byRange)
	default:
		log.Infof("Scraped %d %s paints (no output flag, nothing written)", len(records), b.Name)
	}
	return nil
}

func manifestCommand(app *container.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest [dir]",
		Short: "Generate manifest.json for a catalogue directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Config.Output.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			return manifest.Write(dir)
		},
	}
}
