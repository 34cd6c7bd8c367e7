package shapes

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/primsketch/internal/geom"
	"github.com/cwbudde/primsketch/internal/rng"
)

// ellipseMinRadius is the smallest radius a random or mutated ellipse may
// take.
const ellipseMinRadius = 1

// Ellipse is an axis-aligned ellipse given by centre and radii.
type Ellipse struct {
	CX, CY, RX, RY int
}

func (e *Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Clone() Shape {
	c := *e
	return &c
}

func randomEllipse(w, h int, r *rand.Rand) Shape {
	return &Ellipse{
		CX: r.Intn(w),
		CY: r.Intn(h),
		RX: 1 + r.Intn(32),
		RY: 1 + r.Intn(32),
	}
}

// Mutate perturbs centre, RX or RY with equal probability by N(0,1)*16.
// Centre is clamped to the canvas and radii are clamped to ellipseMinRadius.
func (e *Ellipse) Mutate(w, h int, r *rand.Rand) {
	switch r.Intn(3) {
	case 0:
		e.CX = rng.ClampInt(e.CX+int(rng.Normal(r)*16.0), 0, w-1)
		e.CY = rng.ClampInt(e.CY+int(rng.Normal(r)*16.0), 0, h-1)
	case 1:
		e.RX = rng.ClampInt(e.RX+int(rng.Normal(r)*16.0), ellipseMinRadius, w)
	case 2:
		e.RY = rng.ClampInt(e.RY+int(rng.Normal(r)*16.0), ellipseMinRadius, h)
	}
}

// Rasterize sweeps dy over [0, RY), computing the half-width at each
// offset via the axis-aligned ellipse equation and emitting the
// symmetric y-dy / y+dy spans.
func (e *Ellipse) Rasterize(w, h int, buf []geom.Scanline) []geom.Scanline {
	count := 0
	rx, ry := float64(e.RX), float64(e.RY)
	if ry == 0 {
		return buf[:0]
	}
	for dy := 0; dy < e.RY; dy++ {
		dx := int(math.Sqrt(ry*ry-float64(dy)*float64(dy)) * (rx / ry))
		y1 := e.CY - dy
		y2 := e.CY + dy
		x1 := e.CX - dx
		x2 := e.CX + dx
		if buf[count].Crop(w, h, y1, x1, x2) {
			count++
		}
		if dy != 0 {
			if buf[count].Crop(w, h, y2, x1, x2) {
				count++
			}
		}
	}
	return buf[:count]
}

// Scaled multiplies centre and radii by scale, rounded to the nearest
// integer.
func (e *Ellipse) Scaled(scale float64) Shape {
	return &Ellipse{
		CX: roundScale(e.CX, scale), CY: roundScale(e.CY, scale),
		RX: roundScale(e.RX, scale), RY: roundScale(e.RY, scale),
	}
}

// Vector renders the ellipse as an SVG <ellipse>.
func (e *Ellipse) Vector(fillAttr string) string {
	return fmt.Sprintf(
		`<ellipse cx="%d" cy="%d" rx="%d" ry="%d" %s />`,
		e.CX, e.CY, e.RX, e.RY, fillAttr,
	)
}
