package container

import (
	"context"
	"fmt"
	"time"

	"paintdb/scraper/internal/brand"
	"paintdb/scraper/internal/client"
	"paintdb/scraper/internal/config"
	"paintdb/scraper/internal/filter"
	"paintdb/scraper/internal/proxy"
	"paintdb/scraper/internal/service"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Fetcher client.Fetcher
	Brands  map[string]brand.Brand
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	proxySupplier, err := proxy.NewSupplier(context.Background(), cfg.HTTP.Proxies, "https://ak-interactive.com/")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize proxy supplier: %w", err)
	}

	fetcher := client.NewFetcher(cfg.HTTP, proxySupplier)

	setCache := filter.NewSetSKUCache(
		cfg.Cache.SetSKUPath,
		time.Duration(cfg.Cache.TTLHours)*time.Hour,
		nil,
	)

	brands := make(map[string]brand.Brand)
	for _, b := range []brand.Brand{
		brand.AK(setCache.Contains),
		brand.Citadel(cfg.Brands.CitadelDump),
		brand.Monument(),
		brand.P3(),
		brand.Reaper(),
		brand.Vallejo(),
		brand.Warcolours(),
	} {
		brands[b.Key] = b
	}

	return &Container{
		Config:  cfg,
		Fetcher: fetcher,
		Brands:  brands,
		Service: service.New(cfg, fetcher, setCache),
	}, nil
}

// Brand looks a brand up by its CLI key.
func (c *Container) Brand(key string) (brand.Brand, bool) {
	b, ok := c.Brands[key]
	return b, ok
}
