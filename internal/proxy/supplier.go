package proxy

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Supplier hands out proxy URLs round-robin. An empty supplier returns ""
// and the client connects directly.
type Supplier interface {
	Get() string
}

type supplier struct {
	proxies []string
	current int
	mutex   sync.Mutex
}

// NewSupplier validates the configured proxies in parallel and keeps only
// the working ones.
func NewSupplier(ctx context.Context, proxies []string, testURL string) (Supplier, error) {
	if len(proxies) == 0 {
		return &supplier{}, nil
	}

	log.Infof("Testing %d proxies...", len(proxies))

	validCh := make(chan string, len(proxies))
	semaphore := make(chan struct{}, 10)
	var wg sync.WaitGroup

	for _, proxyURL := range proxies {
		wg.Add(1)
		go func(proxyURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if probe(ctx, proxyURL, testURL) {
				validCh <- proxyURL
			} else {
				log.Infof("Proxy %s is not working, skipping", proxyURL)
			}
		}(proxyURL)
	}

	wg.Wait()
	close(validCh)

	valid := make([]string, 0, len(proxies))
	for proxyURL := range validCh {
		valid = append(valid, proxyURL)
	}
	log.Infof("%d of %d proxies are usable", len(valid), len(proxies))

	return &supplier{proxies: valid}, nil
}

func (s *supplier) Get() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.proxies) == 0 {
		return ""
	}
	proxyURL := s.proxies[s.current]
	s.current = (s.current + 1) % len(s.proxies)
	return proxyURL
}

func probe(ctx context.Context, proxyURL, testURL string) bool {
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(0).
		SetProxy(proxyURL)
	defer client.Close()

	resp, err := client.R().SetContext(ctx).Get(testURL)
	if err != nil {
		return false
	}
	return !resp.IsError()
}
