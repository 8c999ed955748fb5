package filter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// FetchSetSKUs fetches the current set/pack SKUs from the vendor. Supplied
// by the brand's client so the cache stays free of network code.
type FetchSetSKUs func(ctx context.Context) ([]string, error)

// SetSKUCache is the disk-cached exclusion set of SKUs that belong to
// set/pack products rather than individual paints. The fetched list is
// persisted as a JSON array and reused until it goes stale.
//
// The clock is injectable so tests do not depend on real file timestamps.
type SetSKUCache struct {
	path string
	ttl  time.Duration
	now  func() time.Time

	mu   sync.Mutex
	skus map[string]struct{}
}

func NewSetSKUCache(path string, ttl time.Duration, now func() time.Time) *SetSKUCache {
	if now == nil {
		now = time.Now
	}
	return &SetSKUCache{
		path: path,
		ttl:  ttl,
		now:  now,
	}
}

// Load populates the cache, fetching from the vendor only when the cache
// file is missing, stale, or force is set. Refreshes overwrite the whole
// file in one write; refreshes are infrequent and are not expected to race.
func (c *SetSKUCache) Load(ctx context.Context, fetch FetchSetSKUs, force bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.skus) > 0 && !force {
		return nil
	}

	if !force {
		if skus, ok := c.readFile(); ok {
			c.skus = skus
			log.Infof("Loaded %d set SKUs from cache", len(skus))
			return nil
		}
	}

	log.Info("Fetching set/pack SKUs for exclusion...")
	fetched, err := fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch set SKUs: %w", err)
	}

	c.skus = make(map[string]struct{}, len(fetched))
	for _, sku := range fetched {
		c.skus[sku] = struct{}{}
	}
	log.Infof("Total set SKUs to exclude: %d", len(c.skus))

	if len(fetched) > 0 {
		if err := c.writeFile(fetched); err != nil {
			log.Warnf("Failed to persist set SKU cache: %v", err)
		}
	}
	return nil
}

// Contains reports whether sku (already uppercased by the filter) is a
// known set product.
func (c *SetSKUCache) Contains(sku string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.skus[sku]
	return ok
}

func (c *SetSKUCache) readFile() (map[string]struct{}, bool) {
	info, err := os.Stat(c.path)
	if err != nil {
		return nil, false
	}
	if c.now().Sub(info.ModTime()) >= c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, false
	}

	skus := make(map[string]struct{}, len(list))
	for _, sku := range list {
		skus[sku] = struct{}{}
	}
	return skus, true
}

func (c *SetSKUCache) writeFile(list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
