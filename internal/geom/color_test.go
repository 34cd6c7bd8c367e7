package geom

import "testing"

func TestNewColorRoundTrips(t *testing.T) {
	c := NewColor(10, 20, 30, 40)
	if c.R() != 10 || c.G() != 20 || c.B() != 30 || c.A() != 40 {
		t.Fatalf("got (%d,%d,%d,%d), want (10,20,30,40)", c.R(), c.G(), c.B(), c.A())
	}
}

func TestTransparentIsZeroAlpha(t *testing.T) {
	if Transparent.A() != 0 {
		t.Fatalf("Transparent must have zero alpha")
	}
}
