package shapes

import (
	"testing"

	"github.com/cwbudde/primsketch/internal/geom"
)

// TestTriangleRightAngleSpans checks the fixed scenario: triangle
// (0,0),(10,0),(0,10) on an 11x11 canvas yields one span per row
// y in [0,10] with x2 = 10-y.
func TestTriangleRightAngleSpans(t *testing.T) {
	tri := &Triangle{X1: 0, Y1: 0, X2: 10, Y2: 0, X3: 0, Y3: 10}
	buf := geom.NewScanlineBuffer(11)
	lines := tri.Rasterize(11, 11, buf)

	if len(lines) != 11 {
		t.Fatalf("got %d spans, want 11", len(lines))
	}

	seen := make(map[int]geom.Scanline)
	for _, l := range lines {
		seen[l.Y] = l
	}
	for y := 0; y <= 10; y++ {
		l, ok := seen[y]
		if !ok {
			t.Fatalf("missing span for row %d", y)
		}
		if l.X1 != 0 {
			t.Fatalf("row %d: x1 = %d, want 0", y, l.X1)
		}
		if l.X2 != 10-y {
			t.Fatalf("row %d: x2 = %d, want %d", y, l.X2, 10-y)
		}
	}
}
