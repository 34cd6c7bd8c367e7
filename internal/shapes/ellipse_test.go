package shapes

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/primsketch/internal/geom"
)

// TestEllipseSymmetricAboutCentre checks the fixed scenario: an ellipse
// cx=5, cy=5, rx=4, ry=3 on an 11x11 canvas produces spans symmetric
// under y <-> 10-y.
func TestEllipseSymmetricAboutCentre(t *testing.T) {
	e := &Ellipse{CX: 5, CY: 5, RX: 4, RY: 3}
	buf := geom.NewScanlineBuffer(11)
	lines := e.Rasterize(11, 11, buf)

	if len(lines) == 0 {
		t.Fatalf("expected at least one span")
	}

	byRow := make(map[int]geom.Scanline)
	for _, l := range lines {
		if _, dup := byRow[l.Y]; dup {
			t.Fatalf("row %d emitted twice", l.Y)
		}
		byRow[l.Y] = l
	}

	for y, l := range byRow {
		mirror, ok := byRow[10-y]
		if !ok {
			t.Fatalf("row %d has no mirror at row %d", y, 10-y)
		}
		if mirror.X1 != l.X1 || mirror.X2 != l.X2 {
			t.Fatalf("row %d span %v does not mirror row %d span %v", y, l, 10-y, mirror)
		}
	}
}

// TestEllipseMutateKeepsCentreOnCanvas checks that repeated centre
// perturbation never drifts CX/CY outside [0,w-1]x[0,h-1].
func TestEllipseMutateKeepsCentreOnCanvas(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	e := &Ellipse{CX: 16, CY: 16, RX: 4, RY: 4}
	for i := 0; i < 200; i++ {
		e.Mutate(32, 32, r)
		if e.CX < 0 || e.CX > 31 || e.CY < 0 || e.CY > 31 {
			t.Fatalf("centre drifted off canvas: %+v", e)
		}
	}
}
