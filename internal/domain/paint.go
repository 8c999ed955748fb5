package domain

// Impcat is a classification placeholder populated by a downstream process.
// Both ids stay null until that process assigns them.
type Impcat struct {
	LayerID *string `json:"layerId"`
	ShadeID *string `json:"shadeId"`
}

// Paint is the canonical catalogue entry persisted to the brand JSON files.
// The sku is stored in normalized form and is unique within a brand+range.
type Paint struct {
	Brand        string         `json:"brand"`
	BrandData    map[string]any `json:"brandData"`
	Category     string         `json:"category"`
	Discontinued bool           `json:"discontinued"`
	Hex          string         `json:"hex"`
	ID           string         `json:"id"`
	Impcat       Impcat         `json:"impcat"`
	Name         string         `json:"name"`
	Range        string         `json:"range"`
	SKU          string         `json:"sku"`
	Type         PaintType      `json:"type"`
	URL          string         `json:"url"`
}
