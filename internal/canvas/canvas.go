// Package canvas implements the owned RGBA pixel grid: construction from
// raw pixels, the average-colour background, span compositing and span
// copying, and the full/incremental L2 distance metrics used by the
// search.
package canvas

import (
	"fmt"

	"github.com/cwbudde/primsketch/internal/geom"
)

// Canvas is a W x H RGBA pixel grid stored row-major, 4 bytes per pixel,
// channel order R,G,B,A.
type Canvas struct {
	W, H int
	Pix  []byte
}

// New allocates a black, fully-transparent W x H canvas.
func New(w, h int) *Canvas {
	return &Canvas{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// FromImage constructs a canvas from a decoded 8-bit RGBA byte buffer.
// raw must have length 4*w*h.
func FromImage(raw []byte, w, h int) *Canvas {
	if len(raw) != 4*w*h {
		panic(fmt.Sprintf("canvas: raw buffer length %d does not match %dx%d", len(raw), w, h))
	}
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &Canvas{W: w, H: h, Pix: buf}
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	buf := make([]byte, len(c.Pix))
	copy(buf, c.Pix)
	return &Canvas{W: c.W, H: c.H, Pix: buf}
}

func (c *Canvas) offset(x, y int) int {
	return 4 * (y*c.W + x)
}

// At returns the colour stored at (x,y).
func (c *Canvas) At(x, y int) geom.Color {
	i := c.offset(x, y)
	return geom.NewColor(c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3])
}

// Set writes a colour at (x,y).
func (c *Canvas) Set(x, y int, col geom.Color) {
	i := c.offset(x, y)
	c.Pix[i] = col.R()
	c.Pix[i+1] = col.G()
	c.Pix[i+2] = col.B()
	c.Pix[i+3] = col.A()
}

// AverageColor returns the arithmetic mean of R, G, B over every pixel,
// with alpha forced to 255.
func (c *Canvas) AverageColor() geom.Color {
	var r, g, b uint64
	area := uint64(c.W) * uint64(c.H)
	for i := 0; i < len(c.Pix); i += 4 {
		r += uint64(c.Pix[i])
		g += uint64(c.Pix[i+1])
		b += uint64(c.Pix[i+2])
	}
	if area == 0 {
		return geom.NewColor(0, 0, 0, 255)
	}
	return geom.NewColor(uint8(r/area), uint8(g/area), uint8(b/area), 255)
}

// Erase fills the entire canvas with c. Idempotent: erasing twice with the
// same colour leaves the canvas unchanged.
func (c *Canvas) Erase(col geom.Color) {
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			c.Set(x, y, col)
		}
	}
}

// DrawLines source-over composites col onto the canvas across every pixel
// covered by lines, using straight-alpha integer blending. Spans passed
// in a single call must be disjoint; each covered pixel is written
// exactly once.
func (c *Canvas) DrawLines(col geom.Color, lines []geom.Scanline) {
	for _, line := range lines {
		base := c.offset(line.X1, line.Y)
		for x := line.X1; x <= line.X2; x++ {
			i := base + (x-line.X1)*4
			dr, dg, db, da := c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3]
			or, og, ob, oa := blendOver(col.R(), col.G(), col.B(), col.A(), dr, dg, db, da)
			c.Pix[i] = or
			c.Pix[i+1] = og
			c.Pix[i+2] = ob
			c.Pix[i+3] = oa
		}
	}
}

// CopyLines byte-copies the pixels covered by lines from src into c. The
// two canvases must be the same size.
func (c *Canvas) CopyLines(src *Canvas, lines []geom.Scanline) {
	for _, line := range lines {
		a := c.offset(line.X1, line.Y)
		b := a + (line.X2-line.X1+1)*4
		copy(c.Pix[a:b], src.Pix[a:b])
	}
}

// ComputeColor picks the RGB that, source-over composited onto c with the
// given alpha across lines, minimises the mean-squared residual to target
// on those spans (closed form). Returns fully transparent black if lines
// is empty — callers must treat that as a sentinel and not composite it.
func (c *Canvas) ComputeColor(target *Canvas, lines []geom.Scanline, alpha uint8) geom.Color {
	var rsum, gsum, bsum, count int64
	a := int64(65535) / int64(alpha)
	for _, line := range lines {
		base := c.offset(line.X1, line.Y)
		for x := line.X1; x <= line.X2; x++ {
			i := base + (x-line.X1)*4
			tr, tg, tb := int64(target.Pix[i]), int64(target.Pix[i+1]), int64(target.Pix[i+2])
			cr, cg, cb := int64(c.Pix[i]), int64(c.Pix[i+1]), int64(c.Pix[i+2])
			rsum += (tr-cr)*a + cr*257
			gsum += (tg-cg)*a + cg*257
			bsum += (tb-cb)*a + cb*257
			count++
		}
	}
	if count == 0 {
		return geom.Transparent
	}
	r := clampChannel(rsum / count >> 8)
	g := clampChannel(gsum / count >> 8)
	b := clampChannel(bsum / count >> 8)
	return geom.NewColor(r, g, b, alpha)
}

func clampChannel(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
