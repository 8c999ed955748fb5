package sampler

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestSampleFallsBackOnAllWhiteImage(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{0xFE, 0xFE, 0xFE, 0xFF})

	// Every anchor fails the white gate, so the fallback anchor's raw
	// pixel comes back instead of no color at all.
	got := Sample(img, BottleCap)
	assert.Equal(t, "#FEFEFE", got)
}

func TestSamplePrefersSaturatedRegion(t *testing.T) {
	layout := Layout{
		Name:        "two-point",
		Anchors:     []Anchor{{0.25, 0.25}, {0.75, 0.75}},
		Fallback:    Anchor{0.5, 0.5},
		BlackCutoff: 10, WhiteCutoff: 245,
		Weight: 0.5,
	}

	img := uniformImage(100, 100, color.RGBA{0x80, 0x80, 0x80, 0xFF})
	fillRect(img, 65, 65, 90, 90, color.RGBA{0xFF, 0x00, 0x00, 0xFF})

	got := Sample(img, layout)
	assert.Equal(t, "#FF0000", got)
}

func TestSampleAverageAll(t *testing.T) {
	layout := Layout{
		Name:        "avg",
		Anchors:     []Anchor{{0.25, 0.5}, {0.75, 0.5}},
		Fallback:    Anchor{0.5, 0.5},
		BlackCutoff: 10, WhiteCutoff: 245,
		AverageAll:  true,
	}

	img := uniformImage(100, 100, color.RGBA{0x00, 0x00, 0x00, 0xFF})
	fillRect(img, 0, 0, 50, 100, color.RGBA{0x64, 0x00, 0x00, 0xFF})
	fillRect(img, 50, 0, 100, 100, color.RGBA{0x00, 0x64, 0x00, 0xFF})

	got := Sample(img, layout)
	assert.Equal(t, "#323200", got)
}

func TestSampleGateDisabledLayout(t *testing.T) {
	// Corners averages even pure white: its gates are pushed out of range
	// because the background is the paint color.
	img := uniformImage(100, 100, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	got := Sample(img, Corners)
	assert.Equal(t, "#FFFFFF", got)
}
