package shapes

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/primsketch/internal/geom"
	"github.com/cwbudde/primsketch/internal/rng"
)

// Rectangle is an axis-aligned rectangle stored in canonical order:
// X1<=X2, Y1<=Y2.
type Rectangle struct {
	X1, Y1, X2, Y2 int
}

func (rc *Rectangle) Kind() Kind { return KindRectangle }

func (rc *Rectangle) Clone() Shape {
	c := *rc
	return &c
}

func randomRectangle(w, h int, r *rand.Rand) Shape {
	x1, y1 := r.Intn(w), r.Intn(h)
	rc := &Rectangle{
		X1: x1, Y1: y1,
		X2: x1 + 1 + r.Intn(32), Y2: y1 + 1 + r.Intn(32),
	}
	rc.canonicalize()
	return rc
}

// Mutate perturbs one randomly chosen corner by N(0,1)*16 per axis, clamps
// to the canvas, and restores canonical ordering.
func (rc *Rectangle) Mutate(w, h int, r *rand.Rand) {
	dx := int(rng.Normal(r) * 16.0)
	dy := int(rng.Normal(r) * 16.0)
	if r.Intn(2) == 0 {
		rc.X1 = rng.ClampInt(rc.X1+dx, 0, w-1)
		rc.Y1 = rng.ClampInt(rc.Y1+dy, 0, h-1)
	} else {
		rc.X2 = rng.ClampInt(rc.X2+dx, 0, w-1)
		rc.Y2 = rng.ClampInt(rc.Y2+dy, 0, h-1)
	}
	rc.canonicalize()
}

func (rc *Rectangle) canonicalize() {
	if rc.X1 > rc.X2 {
		rc.X1, rc.X2 = rc.X2, rc.X1
	}
	if rc.Y1 > rc.Y2 {
		rc.Y1, rc.Y2 = rc.Y2, rc.Y1
	}
}

// Rasterize emits exactly one scanline per row in the inclusive range
// [Y1,Y2]. A prior implementation of this primitive emitted [Y1,Y2) and
// dropped the bottom row; that bug must not recur.
func (rc *Rectangle) Rasterize(w, h int, buf []geom.Scanline) []geom.Scanline {
	count := 0
	for y := rc.Y1; y <= rc.Y2; y++ {
		if buf[count].Crop(w, h, y, rc.X1, rc.X2) {
			count++
		}
	}
	return buf[:count]
}

// Scaled multiplies every coordinate by scale, rounded to the nearest
// integer.
func (rc *Rectangle) Scaled(scale float64) Shape {
	return &Rectangle{
		X1: roundScale(rc.X1, scale), Y1: roundScale(rc.Y1, scale),
		X2: roundScale(rc.X2, scale), Y2: roundScale(rc.Y2, scale),
	}
}

// Vector renders the rectangle as an SVG <rect>.
func (rc *Rectangle) Vector(fillAttr string) string {
	return fmt.Sprintf(
		`<rect x="%d" y="%d" width="%d" height="%d" %s />`,
		rc.X1, rc.Y1, rc.X2-rc.X1, rc.Y2-rc.Y1, fillAttr,
	)
}
