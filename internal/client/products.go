package client

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"paintdb/scraper/internal/domain"
)

// TileOptions tweaks tile extraction for one storefront.
type TileOptions struct {
	// SKUFromImage recovers the SKU from the thumbnail URL when the tile
	// has no SKU element (group 1 must capture the SKU).
	SKUFromImage *regexp.Regexp
}

// ParseProductTiles extracts raw records from a category listing page. It
// understands both the stock WooCommerce tile markup and the custom
// "c-loop" theme some vendors layer on top; a tile found by either pattern
// is reported once per SKU.
func ParseProductTiles(doc *goquery.Document, opts TileOptions) []domain.Record {
	var records []domain.Record
	seen := make(map[string]struct{})

	add := func(rec domain.Record) {
		if rec.SKU == "" {
			return
		}
		if _, dup := seen[rec.SKU]; dup {
			return
		}
		seen[rec.SKU] = struct{}{}
		records = append(records, rec)
	}

	// Pattern 1: stock WooCommerce product tiles.
	doc.Find("li.product").Each(func(i int, item *goquery.Selection) {
		link := item.Find("a.woocommerce-LoopProduct-link, a[href*='/product/']").First()
		titleElem := item.Find(".woocommerce-loop-product__title, h2").First()
		img := item.Find("img").First()

		title := strings.TrimSpace(titleElem.Text())
		if title == "" {
			title, _ = img.Attr("alt")
		}
		imgURL, _ := img.Attr("src")
		productURL, _ := link.Attr("href")

		sku := strings.TrimSpace(item.Find(".sku").First().Text())
		if sku == "" && imgURL != "" && opts.SKUFromImage != nil {
			if m := opts.SKUFromImage.FindStringSubmatch(imgURL); m != nil {
				sku = strings.ToUpper(m[1])
			}
		}

		add(domain.Record{
			Title:      title,
			SKU:        sku,
			ImageURL:   imgURL,
			ProductURL: productURL,
		})
	})

	// Pattern 2: custom theme tiles.
	doc.Find("a.c-loop__enlace").Each(func(i int, link *goquery.Selection) {
		titleElem := link.Find("p.c-loop__title").First()
		img := link.Find("div.product-thumbnail img, img").First()

		// Prefer the data-title attribute, then text, then image alt.
		title, _ := titleElem.Attr("data-title")
		if title == "" {
			title = strings.TrimSpace(titleElem.Text())
		}
		if title == "" {
			title, _ = img.Attr("alt")
		}

		sku := strings.TrimSpace(link.Find("p.c-loop__sku").First().Text())
		imgURL, _ := img.Attr("src")
		productURL, _ := link.Attr("href")

		add(domain.Record{
			Title:      title,
			SKU:        sku,
			ImageURL:   imgURL,
			ProductURL: productURL,
		})
	})

	return records
}

// HasNextPage reports whether the listing links a further results page.
func HasNextPage(doc *goquery.Document) bool {
	return doc.Find("a.next.page-numbers").Length() > 0
}

var productLinkSKURe = regexp.MustCompile(`(?i)/product/([a-z]+\d+)`)

// ParseSetSKUs extracts the SKUs of set/pack products from a filtered
// listing page. Three fallback strategies per tile: the dedicated SKU
// element, the add-to-cart data attribute, and the product link URL. Only
// SKUs accepted by validate are kept.
func ParseSetSKUs(doc *goquery.Document, validate func(sku string) bool) []string {
	var skus []string
	seen := make(map[string]struct{})

	doc.Find("li.product").Each(func(i int, item *goquery.Selection) {
		sku := strings.ToUpper(strings.TrimSpace(item.Find(".c-loop__sku, p.c-loop__sku").First().Text()))

		if sku == "" {
			if attr, ok := item.Find("[data-product_sku]").First().Attr("data-product_sku"); ok {
				sku = strings.ToUpper(strings.TrimSpace(attr))
			}
		}

		if sku == "" {
			if href, ok := item.Find("a[href*='/product/']").First().Attr("href"); ok {
				if m := productLinkSKURe.FindStringSubmatch(href); m != nil {
					sku = strings.ToUpper(m[1])
				}
			}
		}

		if sku == "" || !validate(sku) {
			return
		}
		if _, dup := seen[sku]; dup {
			return
		}
		seen[sku] = struct{}{}
		skus = append(skus, sku)
	})

	return skus
}
