package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the scraper
type Config struct {
	HTTP   HTTPConfig   `mapstructure:"http"`
	Scrape ScrapeConfig `mapstructure:"scrape"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Output OutputConfig `mapstructure:"output"`
	Brands BrandsConfig `mapstructure:"brands"`
}

// HTTPConfig holds the shared HTTP client settings
type HTTPConfig struct {
	Timeout              int      `mapstructure:"timeout"`
	MaxRetries           int      `mapstructure:"max_retries"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
	UserAgent            string   `mapstructure:"user_agent"`
	Proxies              []string `mapstructure:"proxies"`
}

// ScrapeConfig holds scraping parallelism and pagination limits
type ScrapeConfig struct {
	Workers      int `mapstructure:"workers"`
	RangeWorkers int `mapstructure:"range_workers"`
	MaxPages     int `mapstructure:"max_pages"`
	PageDelayMs  int `mapstructure:"page_delay_ms"`
}

// CacheConfig holds the set-SKU exclusion cache settings
type CacheConfig struct {
	SetSKUPath string `mapstructure:"set_sku_path"`
	TTLHours   int    `mapstructure:"ttl_hours"`
}

// OutputConfig holds where generated catalogue files land
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// BrandsConfig holds per-brand inputs that cannot be scraped live
type BrandsConfig struct {
	// CitadelDump is the local product dump the Citadel source reads; the
	// storefront sits behind bot protection.
	CitadelDump string `mapstructure:"citadel_dump"`
}

// Load loads configuration from an optional config.yaml with environment
// variable overrides. A missing config file falls back to defaults so the
// CLI runs without any setup.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("http.timeout", 30)
	viper.SetDefault("http.max_retries", 3)
	viper.SetDefault("http.max_requests_per_second", 4)
	viper.SetDefault("http.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	viper.SetDefault("scrape.workers", 8)
	viper.SetDefault("scrape.range_workers", 1)
	viper.SetDefault("scrape.max_pages", 50)
	viper.SetDefault("scrape.page_delay_ms", 300)

	viper.SetDefault("cache.set_sku_path", ".set_skus_cache.json")
	viper.SetDefault("cache.ttl_hours", 24)

	viper.SetDefault("output.dir", "data")
	viper.SetDefault("brands.citadel_dump", "citadel_products.json")
}
