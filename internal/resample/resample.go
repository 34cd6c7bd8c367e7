// Package resample fits a decoded image into the fixed working area the
// search runs at: nearest-neighbour only, so the working canvas never
// gains detail the search itself did not add.
package resample

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/cwbudde/primsketch/internal/canvas"
)

// DefaultWorkingArea is the fixed pixel-count budget the working canvas
// is resampled to fit within by default.
const DefaultWorkingArea = 256 * 256

// ToWorkingCanvas resamples img with nearest-neighbour so its area is no
// larger than workingArea while preserving aspect ratio, then converts
// the result into an RGBA canvas.
func ToWorkingCanvas(img image.Image, workingArea int) *canvas.Canvas {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return canvas.New(0, 0)
	}

	scale := math.Sqrt(float64(workingArea) / float64(w*h))
	if scale > 1 {
		scale = 1
	}
	outW := int(math.Floor(float64(w) * scale))
	outH := int(math.Floor(float64(h) * scale))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	resized := imaging.Resize(img, outW, outH, imaging.NearestNeighbor)
	return canvas.FromImage(resized.Pix, resized.Bounds().Dx(), resized.Bounds().Dy())
}
