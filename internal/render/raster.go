// Package render turns a model's committed history into output: a
// rasterized canvas at an arbitrary output size, or a vector document.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/cwbudde/primsketch/internal/canvas"
	"github.com/cwbudde/primsketch/internal/engine"
	"github.com/cwbudde/primsketch/internal/geom"
)

// Scale returns the scale factor Raster and SVG both use: outSize
// divided by the longer working-canvas dimension.
func Scale(workW, workH, outSize int) float64 {
	longest := workW
	if workH > longest {
		longest = workH
	}
	if longest == 0 {
		return 1
	}
	return float64(outSize) / float64(longest)
}

// Raster replays m's committed history onto a background canvas of size
// ceil(W*scale) x ceil(H*scale): every shape is scaled from working
// resolution to output resolution before being rasterized and
// composited, so replaying at a different size reproduces the same
// picture at a different fidelity rather than a blurred resize of a
// fixed-size raster.
func Raster(m *engine.Model, outSize int) *canvas.Canvas {
	workW, workH := m.Size()
	scale := Scale(workW, workH, outSize)
	outW := int(math.Ceil(float64(workW) * scale))
	outH := int(math.Ceil(float64(workH) * scale))

	out := canvas.New(outW, outH)
	out.Erase(m.Background())

	buf := geom.NewScanlineBuffer(outH)
	for _, st := range m.History() {
		shape := st.Shape.Scaled(scale)
		lines := shape.Rasterize(outW, outH, buf)
		out.DrawLines(st.Color, lines)
	}
	return out
}

// ToImage converts a canvas into a standard library image.Image using
// straight (non-premultiplied) NRGBA storage, ready for codec encoding.
func ToImage(c *canvas.Canvas) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, c.W, c.H))
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			col := c.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: col.R(), G: col.G(), B: col.B(), A: col.A()})
		}
	}
	return img
}
