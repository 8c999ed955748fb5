package domain

type PaintType string

func (t PaintType) String() string {
	return string(t)
}

const (
	PaintTypeOpaque      PaintType = "opaque"
	PaintTypeMetallic    PaintType = "metallic"
	PaintTypeWash        PaintType = "wash"
	PaintTypeInk         PaintType = "ink"
	PaintTypeContrast    PaintType = "contrast"
	PaintTypePrimer      PaintType = "primer"
	PaintTypeVarnish     PaintType = "varnish"
	PaintTypeThinner     PaintType = "thinner"
	PaintTypeTechnical   PaintType = "technical"
	PaintTypeTransparent PaintType = "transparent"
	PaintTypeSpray       PaintType = "spray"
	PaintTypeAir         PaintType = "air"
	PaintTypeGlaze       PaintType = "glaze"
	PaintTypeFluorescent PaintType = "fluorescent"
	PaintTypeMedium      PaintType = "medium"
	PaintTypeLayer       PaintType = "layer"
	PaintTypeAntithesis  PaintType = "antithesis"
)

var PaintTypes = []PaintType{
	PaintTypeOpaque,
	PaintTypeMetallic,
	PaintTypeWash,
	PaintTypeInk,
	PaintTypeContrast,
	PaintTypePrimer,
	PaintTypeVarnish,
	PaintTypeThinner,
	PaintTypeTechnical,
	PaintTypeTransparent,
	PaintTypeSpray,
	PaintTypeAir,
	PaintTypeGlaze,
	PaintTypeFluorescent,
	PaintTypeMedium,
	PaintTypeLayer,
	PaintTypeAntithesis,
}
