package sampler

// Anchor is a sampling point in normalized image coordinates (0..1).
type Anchor struct {
	X float64
	Y float64
}

// Layout describes where the paint color sits in one brand's product
// photography and how tolerant the scoring should be. New bottle/label
// conventions are added as data entries here, not as new control flow.
//
// BlackCutoff/WhiteCutoff gate candidate brightness on the 0..255 scale.
// Weight is the brightness penalty multiplier; Bias is a flat score bonus
// some brands use to keep low-saturation greys in the running. The weights
// are empirically tuned per brand and deliberately kept as constants.
type Layout struct {
	Name        string
	Anchors     []Anchor
	Fallback    Anchor
	BlackCutoff float64
	WhiteCutoff float64
	Weight      float64
	Bias        float64
	// AverageAll averages every candidate that passes the brightness gate
	// instead of picking the best score. Used when all anchors point at the
	// same flat background (the background is the paint color).
	AverageAll bool
}

// BottleCap targets the cap/top third of a standard dropper bottle shot.
var BottleCap = Layout{
	Name: "bottle-cap",
	Anchors: []Anchor{
		{0.50, 0.20}, {0.33, 0.20}, {0.67, 0.20},
		{0.50, 0.25}, {0.33, 0.25}, {0.67, 0.25},
		{0.50, 0.33}, {0.33, 0.33}, {0.67, 0.33},
	},
	Fallback:    Anchor{0.50, 0.25},
	BlackCutoff: 10, WhiteCutoff: 245,
	Weight: 0.5,
}

// BackgroundCircle targets the large color circle rendered behind wash
// bottles. Fractions tuned against the vendor's 800px renders.
var BackgroundCircle = Layout{
	Name: "background-circle",
	Anchors: []Anchor{
		{0.31, 0.76}, {0.25, 0.73}, {0.35, 0.78},
		{0.28, 0.69}, {0.33, 0.81},
	},
	Fallback:    Anchor{0.31, 0.76},
	BlackCutoff: 10, WhiteCutoff: 245,
	Weight: 0.5,
}

// LabelBand targets the colored band on the lower part of shade bottles.
var LabelBand = Layout{
	Name: "label-band",
	Anchors: []Anchor{
		{0.50, 0.80}, {0.50, 0.75}, {0.33, 0.80},
		{0.67, 0.80}, {0.50, 0.70},
	},
	Fallback:    Anchor{0.50, 0.75},
	BlackCutoff: 10, WhiteCutoff: 245,
	Weight: 0.5,
}

// StrokeRight targets the paint strokes drawn to the right of marker shots.
var StrokeRight = Layout{
	Name: "stroke-right",
	Anchors: []Anchor{
		{0.80, 0.50}, {0.875, 0.50}, {0.80, 0.40},
		{0.875, 0.40}, {0.80, 0.60}, {0.875, 0.60},
	},
	Fallback:    Anchor{0.80, 0.50},
	BlackCutoff: 10, WhiteCutoff: 245,
	Weight: 0.5,
}

// SwatchCenter targets a centered color swatch in the upper half.
var SwatchCenter = Layout{
	Name: "swatch-center",
	Anchors: []Anchor{
		{0.50, 0.33}, {0.50, 0.25}, {0.33, 0.33},
		{0.67, 0.33}, {0.50, 0.50},
	},
	Fallback:    Anchor{0.50, 0.33},
	BlackCutoff: 10, WhiteCutoff: 245,
	Weight: 0.5,
}

// TriangleLeft targets the triangular swatch on the left edge of the image.
var TriangleLeft = Layout{
	Name: "triangle-left",
	Anchors: []Anchor{
		{0.10, 0.50}, {0.15, 0.50}, {0.12, 0.45}, {0.12, 0.55},
		{0.08, 0.48}, {0.18, 0.52}, {0.10, 0.40}, {0.10, 0.60},
	},
	Fallback:    Anchor{0.12, 0.50},
	BlackCutoff: 10, WhiteCutoff: 245,
	Weight: 0.3, Bias: 0.1,
}

// LabelCenter targets the swatch on a bottle label in the middle-upper area.
var LabelCenter = Layout{
	Name: "label-center",
	Anchors: []Anchor{
		{0.40, 0.35}, {0.50, 0.35}, {0.60, 0.35},
		{0.45, 0.40}, {0.55, 0.40}, {0.50, 0.45},
		{0.50, 0.30}, {0.45, 0.32}, {0.55, 0.32},
	},
	Fallback:    Anchor{0.50, 0.40},
	BlackCutoff: 15, WhiteCutoff: 240,
	Weight: 0.3, Bias: 0.1,
}

// Corners averages the image corners and edge midpoints. Used when the
// bottle is centered and the background itself is the paint color, so the
// gate is disabled: white and black paints are legitimate backgrounds.
var Corners = Layout{
	Name: "corners",
	Anchors: []Anchor{
		{0.05, 0.05}, {0.10, 0.10}, {0.95, 0.05}, {0.90, 0.10},
		{0.05, 0.95}, {0.10, 0.90}, {0.95, 0.95}, {0.90, 0.90},
		{0.05, 0.50}, {0.95, 0.50},
	},
	Fallback:    Anchor{0.05, 0.05},
	BlackCutoff: -1, WhiteCutoff: 256,
	AverageAll: true,
}

// SwatchCore averages the center of a flat circular swatch render. No
// scoring needed: every pixel there is the paint color, including pure
// whites and blacks.
var SwatchCore = Layout{
	Name: "swatch-core",
	Anchors: []Anchor{
		{0.50, 0.50}, {0.46, 0.50}, {0.54, 0.50},
		{0.50, 0.46}, {0.50, 0.54},
	},
	Fallback:    Anchor{0.50, 0.50},
	BlackCutoff: -1, WhiteCutoff: 256,
	AverageAll: true,
}

// PrimerLabel targets the colored side panels of a primer bottle label,
// gating out the white backdrop and the black center label.
var PrimerLabel = Layout{
	Name: "primer-label",
	Anchors: []Anchor{
		{0.35, 0.70}, {0.65, 0.70}, {0.35, 0.75}, {0.65, 0.75},
		{0.35, 0.80}, {0.65, 0.80}, {0.35, 0.85}, {0.65, 0.85},
	},
	Fallback:    Anchor{0.35, 0.75},
	BlackCutoff: 30, WhiteCutoff: 220,
	AverageAll: true,
}

// ExpertBand targets the paint window near the bottom of an artist
// acrylic bottle shot.
var ExpertBand = Layout{
	Name: "expert-band",
	Anchors: []Anchor{
		{0.44, 0.68}, {0.50, 0.68}, {0.56, 0.68},
		{0.44, 0.70}, {0.50, 0.70}, {0.56, 0.70},
		{0.44, 0.72}, {0.50, 0.72}, {0.56, 0.72},
	},
	Fallback:    Anchor{0.50, 0.70},
	BlackCutoff: 10, WhiteCutoff: 240,
	AverageAll: true,
}

// SprayBody targets the painted body of a spray can.
var SprayBody = Layout{
	Name: "spray-body",
	Anchors: []Anchor{
		{0.40, 0.50}, {0.50, 0.50}, {0.60, 0.50},
		{0.40, 0.60}, {0.50, 0.60}, {0.60, 0.60},
		{0.40, 0.70}, {0.50, 0.70}, {0.60, 0.70},
	},
	Fallback:    Anchor{0.50, 0.60},
	BlackCutoff: 10, WhiteCutoff: 245,
	Weight: 0.4,
}
