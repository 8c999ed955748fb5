package domain

// Record is one product as scraped from a listing page, before it is turned
// into a catalogue entry. Hex stays empty until color sampling succeeds.
type Record struct {
	Title      string         `json:"title"`
	SKU        string         `json:"sku"`
	ImageURL   string         `json:"img_url,omitempty"`
	ProductURL string         `json:"product_url,omitempty"`
	PriceCents int            `json:"price,omitempty"`
	Hex        string         `json:"hex,omitempty"`
	Category   string         `json:"category,omitempty"`
	// Discontinued marks listings the vendor still renders but no longer
	// sells.
	Discontinued bool           `json:"discontinued,omitempty"`
	Type         PaintType      `json:"paint_type,omitempty"`
	RangeName    string         `json:"range_name,omitempty"`
	BrandData    map[string]any `json:"brand_data,omitempty"`
}
