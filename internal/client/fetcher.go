// Package client wraps the HTTP layer: a rate-limited fetcher plus the
// shared product-tile parsers used by the storefront brands.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"paintdb/scraper/internal/config"
	"paintdb/scraper/internal/proxy"
)

// Fetcher performs the network calls the scrapers need: listing pages,
// product images and vector graphics. All calls honor the shared rate
// limit.
type Fetcher interface {
	GetDocument(ctx context.Context, url string) (*goquery.Document, error)
	GetBytes(ctx context.Context, url string) ([]byte, error)
	GetText(ctx context.Context, url string) (string, error)
}

type fetcher struct {
	rl         ratelimit.Limiter
	httpClient *resty.Client
	timeout    time.Duration
}

// NewFetcher builds the shared resty client with retries and an optional
// proxy.
func NewFetcher(cfg config.HTTPConfig, proxies proxy.Supplier) Fetcher {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/svg+xml,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5")

	if proxies != nil {
		if proxyURL := proxies.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
		}
	}

	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &fetcher{
		rl:         ratelimit.New(rps),
		httpClient: client,
		timeout:    time.Duration(cfg.Timeout) * time.Second,
	}
}

func (f *fetcher) get(ctx context.Context, url string) (*resty.Response, error) {
	f.rl.Take()

	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.httpClient.R().
		SetContext(reqCtx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}
	return resp, nil
}

func (f *fetcher) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

func (f *fetcher) GetBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return resp.Bytes(), nil
}

func (f *fetcher) GetText(ctx context.Context, url string) (string, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}
