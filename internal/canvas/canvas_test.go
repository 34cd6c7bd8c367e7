package canvas

import (
	"testing"

	"github.com/cwbudde/primsketch/internal/geom"
)

func solidLines(w, h int) []geom.Scanline {
	lines := make([]geom.Scanline, h)
	for y := 0; y < h; y++ {
		lines[y] = geom.Scanline{Y: y, X1: 0, X2: w - 1}
	}
	return lines
}

func TestEraseIdempotent(t *testing.T) {
	c1 := New(4, 4)
	c2 := New(4, 4)
	col := geom.NewColor(50, 100, 150, 255)

	c1.Erase(col)
	c2.Erase(col)
	c2.Erase(col)

	for i := range c1.Pix {
		if c1.Pix[i] != c2.Pix[i] {
			t.Fatalf("erase is not idempotent at byte %d: %d != %d", i, c1.Pix[i], c2.Pix[i])
		}
	}
}

func TestDrawLinesOpaqueReplaces(t *testing.T) {
	c := New(4, 4)
	c.Erase(geom.NewColor(0, 0, 0, 255))
	red := geom.NewColor(255, 0, 0, 255)
	c.DrawLines(red, solidLines(4, 4))

	// An opaque source leaves nothing of the destination; the blend's >>8
	// divides by 256, so red comes out as 255*255>>8 = 254.
	want := geom.NewColor(254, 0, 0, 255)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestComputeColorEmptySpansReturnsTransparentSentinel(t *testing.T) {
	target := New(4, 4)
	current := New(4, 4)
	col := current.ComputeColor(target, nil, 128)
	if col != geom.Transparent {
		t.Fatalf("expected sentinel Transparent for empty span set, got %v", col)
	}
}

func TestComputeColorMatchesTargetAtFullAlpha(t *testing.T) {
	target := New(2, 2)
	target.Erase(geom.NewColor(200, 100, 50, 255))
	current := New(2, 2)
	current.Erase(geom.NewColor(0, 0, 0, 255))

	col := current.ComputeColor(target, solidLines(2, 2), 255)
	if col.R() != 200 || col.G() != 100 || col.B() != 50 {
		t.Fatalf("got %v, want rgb(200,100,50)", col)
	}
}

func TestCompositionEquivalence(t *testing.T) {
	target := New(6, 6)
	target.Erase(geom.NewColor(180, 90, 30, 255))

	before := New(6, 6)
	before.Erase(geom.NewColor(10, 10, 10, 255))

	lines := solidLines(6, 6)
	score := DifferenceFull(target, before)

	col := before.ComputeColor(target, lines, 128)
	after := before.Clone()
	after.DrawLines(col, lines)

	partial := DifferencePartial(target, before, after, score, lines)
	full := DifferenceFull(target, after)

	diff := partial - full
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-5 {
		t.Fatalf("partial score %v diverges from full score %v by %v", partial, full, diff)
	}
}
