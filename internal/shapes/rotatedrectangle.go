package shapes

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/primsketch/internal/geom"
	"github.com/cwbudde/primsketch/internal/rng"
)

// rotatedMinExtent is the smallest width/height a rotated rectangle may
// take.
const rotatedMinExtent = 1

// RotatedRectangle is a rectangle of full width/height (SX,SY) centred
// at (CX,CY) and rotated by Angle degrees about its centre.
type RotatedRectangle struct {
	CX, CY int
	SX, SY int
	Angle  float64
}

func (rr *RotatedRectangle) Kind() Kind { return KindRotatedRectangle }

func (rr *RotatedRectangle) Clone() Shape {
	c := *rr
	return &c
}

func randomRotatedRectangle(w, h int, r *rand.Rand) Shape {
	return &RotatedRectangle{
		CX:    r.Intn(w),
		CY:    r.Intn(h),
		SX:    1 + r.Intn(32),
		SY:    1 + r.Intn(32),
		Angle: r.Float64() * 360.0,
	}
}

// Mutate perturbs centre, extents or angle with equal probability.
// Extents are clamped to rotatedMinExtent; the angle wraps into [0,360).
func (rr *RotatedRectangle) Mutate(w, h int, r *rand.Rand) {
	switch r.Intn(3) {
	case 0:
		rr.CX += int(rng.Normal(r) * 16.0)
		rr.CY += int(rng.Normal(r) * 16.0)
	case 1:
		rr.SX = rng.ClampInt(rr.SX+int(rng.Normal(r)*16.0), rotatedMinExtent, w)
		rr.SY = rng.ClampInt(rr.SY+int(rng.Normal(r)*16.0), rotatedMinExtent, h)
	case 2:
		rr.Angle = math.Mod(rr.Angle+rng.Normal(r)*32.0, 360.0)
		if rr.Angle < 0 {
			rr.Angle += 360.0
		}
	}
}

// corners returns the four rotated corners in order, starting
// top-left and proceeding clockwise around the unrotated rectangle.
func (rr *RotatedRectangle) corners() [4][2]float64 {
	hw, hh := float64(rr.SX)/2, float64(rr.SY)/2
	local := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4][2]float64
	for i, p := range local {
		rx, ry := rng.Rotate(p[0], p[1], rr.Angle)
		out[i] = [2]float64{rx + float64(rr.CX), ry + float64(rr.CY)}
	}
	return out
}

// Rasterize walks the four edges of the rotated quadrilateral,
// accumulating the minimum and maximum x at every integer row the
// shape covers, then emits one scanline per covered row.
func (rr *RotatedRectangle) Rasterize(w, h int, buf []geom.Scanline) []geom.Scanline {
	pts := rr.corners()

	minY, maxY := pts[0][1], pts[0][1]
	for _, p := range pts {
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	// Treat row y as the pixel-column interval [y,y+1) and column x as
	// [x,x+1) (half-open), so a rectangle spanning exactly SY units of
	// continuous y covers exactly SY discrete rows, not SY+1.
	yLo := int(math.Floor(minY))
	yHi := int(math.Ceil(maxY)) - 1
	if yHi < yLo {
		return buf[:0]
	}
	span := yHi - yLo + 1
	xMin := make([]float64, span)
	xMax := make([]float64, span)
	touched := make([]bool, span)
	for i := range xMin {
		xMin[i] = math.Inf(1)
		xMax[i] = math.Inf(-1)
	}

	for i := 0; i < 4; i++ {
		a, b := pts[i], pts[(i+1)%4]
		walkEdge(a, b, yLo, xMin, xMax, touched)
	}

	count := 0
	for i := 0; i < span; i++ {
		if !touched[i] {
			continue
		}
		y := yLo + i
		x1 := int(math.Ceil(xMin[i]))
		x2 := int(math.Ceil(xMax[i])) - 1
		if x2 < x1 {
			continue
		}
		if buf[count].Crop(w, h, y, x1, x2) {
			count++
		}
	}
	return buf[:count]
}

// walkEdge interpolates x at every integer y between a and b and
// widens xMin/xMax at that row's index (row i = y-yLo).
func walkEdge(a, b [2]float64, yLo int, xMin, xMax []float64, touched []bool) {
	ay, by := a[1], b[1]
	if ay == by {
		y := int(math.Round(ay))
		i := y - yLo
		if i < 0 || i >= len(xMin) {
			return
		}
		widen(xMin, xMax, touched, i, a[0])
		widen(xMin, xMax, touched, i, b[0])
		return
	}
	top, bot := a, b
	if top[1] > bot[1] {
		top, bot = bot, top
	}
	y0 := int(math.Ceil(top[1]))
	y1 := int(math.Ceil(bot[1])) - 1
	for y := y0; y <= y1; y++ {
		t := (float64(y) - top[1]) / (bot[1] - top[1])
		x := top[0] + t*(bot[0]-top[0])
		i := y - yLo
		if i < 0 || i >= len(xMin) {
			continue
		}
		widen(xMin, xMax, touched, i, x)
	}
}

func widen(xMin, xMax []float64, touched []bool, i int, x float64) {
	touched[i] = true
	if x < xMin[i] {
		xMin[i] = x
	}
	if x > xMax[i] {
		xMax[i] = x
	}
}

// Scaled multiplies centre and extents by scale, rounded to the
// nearest integer. The rotation angle is invariant under uniform
// scaling.
func (rr *RotatedRectangle) Scaled(scale float64) Shape {
	return &RotatedRectangle{
		CX: roundScale(rr.CX, scale), CY: roundScale(rr.CY, scale),
		SX: roundScale(rr.SX, scale), SY: roundScale(rr.SY, scale),
		Angle: rr.Angle,
	}
}

// Vector renders the rotated rectangle as an SVG group: translate to
// the centre, rotate, then draw a centred rectangle of the unrotated
// extents.
func (rr *RotatedRectangle) Vector(fillAttr string) string {
	return fmt.Sprintf(
		`<g transform="translate(%d,%d) rotate(%g)"><rect x="%g" y="%g" width="%d" height="%d" %s /></g>`,
		rr.CX, rr.CY, rr.Angle, -float64(rr.SX)/2, -float64(rr.SY)/2, rr.SX, rr.SY, fillAttr,
	)
}
