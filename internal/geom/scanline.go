package geom

// Scanline is an inclusive horizontal pixel span [X1,X2] on row Y.
type Scanline struct {
	Y, X1, X2 int
}

// NewScanlineBuffer allocates a reusable scanline buffer with capacity for
// at least h+1 rows, as required by every rasterizer.
func NewScanlineBuffer(h int) []Scanline {
	return make([]Scanline, h+1)
}

// Crop validates and writes (y,x1,x2) into the scanline, clipping x1/x2 to
// [0,w) and rejecting rows or spans that fall outside the canvas. Returns
// false (and leaves the scanline untouched) when the span is empty or
// entirely off-canvas.
//
// A prior implementation of this check returned true even after the
// x1>x2 rejection; that is a bug and this version must not repeat it.
func (s *Scanline) Crop(w, h, y, x1, x2 int) bool {
	if y < 0 || y >= h || x1 >= w || x2 < 0 {
		return false
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > w-1 {
		x2 = w - 1
	}
	if x1 > x2 {
		return false
	}
	s.Y, s.X1, s.X2 = y, x1, x2
	return true
}
