// Package sampler extracts a best-guess paint color from product imagery:
// heuristic region sampling for photographs and fill-frequency analysis for
// vector graphics.
package sampler

import (
	"fmt"
	"image"
)

// Sample picks the most representative paint color from img according to
// the layout and returns it as an uppercase #RRGGBB string. It is a pure
// function of the pixels; fetch and decode failures are the caller's
// problem. When every anchor fails the brightness gate the fallback
// anchor's raw pixel is returned, so a decoded image always yields a color.
func Sample(img image.Image, layout Layout) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	bestScore := -1.0
	var bestR, bestG, bestB int

	var sumR, sumG, sumB, passed int

	for _, anchor := range layout.Anchors {
		x := bounds.Min.X + int(anchor.X*float64(width))
		y := bounds.Min.Y + int(anchor.Y*float64(height))
		r, g, b := meanNeighborhood(img, x, y)

		brightness := float64(r+g+b) / 3
		if brightness > layout.WhiteCutoff || brightness < layout.BlackCutoff {
			continue
		}

		if layout.AverageAll {
			sumR += r
			sumG += g
			sumB += b
			passed++
			continue
		}

		maxC := max(r, max(g, b))
		minC := min(r, min(g, b))
		saturation := 0.0
		if maxC > 0 {
			saturation = float64(maxC-minC) / float64(maxC)
		}
		penalty := abs(brightness-127) / 127
		score := saturation*(1-penalty*layout.Weight) + layout.Bias

		if score > bestScore {
			bestScore = score
			bestR, bestG, bestB = r, g, b
		}
	}

	if layout.AverageAll && passed > 0 {
		return hexRGB(sumR/passed, sumG/passed, sumB/passed)
	}
	if bestScore >= 0 {
		return hexRGB(bestR, bestG, bestB)
	}

	// All candidates gated out: raw pixel at the fallback anchor.
	fx := clamp(bounds.Min.X+int(layout.Fallback.X*float64(width)), bounds.Min.X, bounds.Max.X-1)
	fy := clamp(bounds.Min.Y+int(layout.Fallback.Y*float64(height)), bounds.Min.Y, bounds.Max.Y-1)
	r, g, b := pixelRGB(img, fx, fy)
	return hexRGB(r, g, b)
}

// meanNeighborhood averages a strided 6x6 grid of pixels around (x, y),
// clamping at the image edges.
func meanNeighborhood(img image.Image, x, y int) (int, int, int) {
	bounds := img.Bounds()
	var sumR, sumG, sumB, n int
	for dx := -5; dx <= 5; dx += 2 {
		for dy := -5; dy <= 5; dy += 2 {
			px := clamp(x+dx, bounds.Min.X, bounds.Max.X-1)
			py := clamp(y+dy, bounds.Min.Y, bounds.Max.Y-1)
			r, g, b := pixelRGB(img, px, py)
			sumR += r
			sumG += g
			sumB += b
			n++
		}
	}
	return sumR / n, sumG / n, sumB / n
}

func pixelRGB(img image.Image, x, y int) (int, int, int) {
	r, g, b, _ := img.At(x, y).RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

func hexRGB(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
