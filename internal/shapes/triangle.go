package shapes

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/primsketch/internal/geom"
	"github.com/cwbudde/primsketch/internal/rng"
)

// triangleMargin is the bound by which vertices may fall outside the
// canvas.
const triangleMargin = 16

// minInteriorDegrees is the validity threshold: a triangle with any
// interior angle at or below this is rejected as too sliver-thin.
const minInteriorDegrees = 15.0

// Triangle is three vertices, possibly out of canvas by up to
// triangleMargin in each direction.
type Triangle struct {
	X1, Y1, X2, Y2, X3, Y3 int
}

func (t *Triangle) Kind() Kind { return KindTriangle }

func (t *Triangle) Clone() Shape {
	c := *t
	return &c
}

func randomTriangle(w, h int, r *rand.Rand) Shape {
	x1 := r.Intn(w)
	y1 := r.Intn(h)
	t := &Triangle{
		X1: x1, Y1: y1,
		X2: x1 + r.Intn(31) - 15,
		Y2: y1 + r.Intn(31) - 15,
		X3: x1 + r.Intn(31) - 15,
		Y3: y1 + r.Intn(31) - 15,
	}
	t.Mutate(w, h, r)
	return t
}

// Mutate repeatedly perturbs one of the three vertices until the triangle
// is valid (every interior angle exceeds minInteriorDegrees).
func (t *Triangle) Mutate(w, h int, r *rand.Rand) {
	minX, minY := -triangleMargin, -triangleMargin
	maxX, maxY := w-1+triangleMargin, h-1+triangleMargin

	for {
		dx := int(rng.Normal(r) * 31.0)
		dy := int(rng.Normal(r) * 31.0)
		switch r.Intn(3) {
		case 0:
			t.X1 = rng.ClampInt(t.X1+dx, minX, maxX)
			t.Y1 = rng.ClampInt(t.Y1+dy, minY, maxY)
		case 1:
			t.X2 = rng.ClampInt(t.X2+dx, minX, maxX)
			t.Y2 = rng.ClampInt(t.Y2+dy, minY, maxY)
		case 2:
			t.X3 = rng.ClampInt(t.X3+dx, minX, maxX)
			t.Y3 = rng.ClampInt(t.Y3+dy, minY, maxY)
		}
		if t.isValid() {
			return
		}
	}
}

func (t *Triangle) isValid() bool {
	a1 := interiorAngle(t.X2, t.Y2, t.X1, t.Y1, t.X3, t.Y3)
	a2 := interiorAngle(t.X1, t.Y1, t.X2, t.Y2, t.X3, t.Y3)
	a3 := 180 - a1 - a2
	return a1 > minInteriorDegrees && a2 > minInteriorDegrees && a3 > minInteriorDegrees
}

// interiorAngle returns the angle at the vertex (apexX,apexY) between rays
// to the two other vertices, in degrees, using 32-bit floats.
func interiorAngle(ax, ay, apexX, apexY, bx, by int) float32 {
	x1 := float32(ax - apexX)
	y1 := float32(ay - apexY)
	x2 := float32(bx - apexX)
	y2 := float32(by - apexY)
	d1 := float32(math.Sqrt(float64(x1*x1 + y1*y1)))
	d2 := float32(math.Sqrt(float64(x2*x2 + y2*y2)))
	if d1 == 0 || d2 == 0 {
		return 0
	}
	x1, y1 = x1/d1, y1/d1
	x2, y2 = x2/d2, y2/d2
	dot := x1*x2 + y1*y2
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	rad := float32(math.Acos(float64(dot)))
	return rad * 180.0 / math.Pi
}

// Rasterize sweeps the triangle scanline by scanline: sort vertices by
// y, split into a flat-bottom and/or flat-top half, and advance two edge
// x-coordinates per row in 32-bit floating point.
func (t *Triangle) Rasterize(w, h int, buf []geom.Scanline) []geom.Scanline {
	x1, y1 := t.X1, t.Y1
	x2, y2 := t.X2, t.Y2
	x3, y3 := t.X3, t.Y3

	if y1 > y3 {
		x1, x3 = x3, x1
		y1, y3 = y3, y1
	}
	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	if y2 > y3 {
		x2, x3 = x3, x2
		y2, y3 = y3, y2
	}

	if y2 == y3 {
		n := rasterizeTriangleBottom(w, h, x1, y1, x2, y2, x3, y3, buf, 0)
		return buf[:n]
	}
	if y1 == y2 {
		n := rasterizeTriangleTop(w, h, x1, y1, x2, y2, x3, y3, buf, 0)
		// rasterizeTriangleTop sweeps y3 downto y1+1, one row short of the
		// flat edge itself; emit that row directly since it is exactly the
		// segment between the two shared-y vertices.
		a, b := x1, x2
		if a > b {
			a, b = b, a
		}
		if buf[n].Crop(w, h, y1, a, b) {
			n++
		}
		return buf[:n]
	}

	x4 := x1 + int(float32(y2-y1)/float32(y3-y1)*float32(x3-x1))
	y4 := y2
	first := rasterizeTriangleBottom(w, h, x1, y1, x2, y2, x4, y4, buf, 0)
	last := rasterizeTriangleTop(w, h, x2, y2, x4, y4, x3, y3, buf, first)
	return buf[:first+last]
}

func rasterizeTriangleBottom(w, h, x1, y1, x2, y2, x3, y3 int, buf []geom.Scanline, offset int) int {
	s1 := float32(x2-x1) / float32(y2-y1)
	s2 := float32(x3-x1) / float32(y3-y1)
	ax, bx := float32(x1), float32(x1)
	count := 0
	for y := y1; y < y2+1; y++ {
		a, b := int(ax), int(bx)
		ax += s1
		bx += s2
		if a > b {
			a, b = b, a
		}
		if buf[offset+count].Crop(w, h, y, a, b) {
			count++
		}
	}
	return count
}

func rasterizeTriangleTop(w, h, x1, y1, x2, y2, x3, y3 int, buf []geom.Scanline, offset int) int {
	s1 := float32(x3-x1) / float32(y3-y1)
	s2 := float32(x3-x2) / float32(y3-y2)
	ax, bx := float32(x3), float32(x3)
	count := 0
	for y := y3; y > y1; y-- {
		a, b := int(ax), int(bx)
		ax -= s1
		bx -= s2
		if a > b {
			a, b = b, a
		}
		if buf[offset+count].Crop(w, h, y, a, b) {
			count++
		}
	}
	return count
}

// Scaled multiplies every vertex coordinate by scale, rounded to the
// nearest integer.
func (t *Triangle) Scaled(scale float64) Shape {
	return &Triangle{
		X1: roundScale(t.X1, scale), Y1: roundScale(t.Y1, scale),
		X2: roundScale(t.X2, scale), Y2: roundScale(t.Y2, scale),
		X3: roundScale(t.X3, scale), Y3: roundScale(t.Y3, scale),
	}
}

func roundScale(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

// Vector renders the triangle as an SVG <polygon>.
func (t *Triangle) Vector(fillAttr string) string {
	return fmt.Sprintf(
		`<polygon points="%d,%d %d,%d %d,%d" %s />`,
		t.X1, t.Y1, t.X2, t.Y2, t.X3, t.Y3, fillAttr,
	)
}
