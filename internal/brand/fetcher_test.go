package brand

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fakeFetcher serves canned responses keyed by URL.
type fakeFetcher struct {
	pages map[string]string
}

func (f fakeFetcher) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := f.GetText(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}

func (f fakeFetcher) GetBytes(ctx context.Context, url string) ([]byte, error) {
	body, err := f.GetText(ctx, url)
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (f fakeFetcher) GetText(ctx context.Context, url string) (string, error) {
	body, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("no canned response for %s", url)
	}
	return body, nil
}
