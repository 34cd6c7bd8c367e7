package canvas

import (
	"log/slog"
	"math"

	"golang.org/x/sys/cpu"

	"github.com/cwbudde/primsketch/internal/geom"
)

// Backend identifies which L2-distance kernel is active: detect CPU
// features once at init and record which path was chosen. No hand-written
// assembly ships here (see DESIGN.md) — AVX2Capable CPUs use the same
// portable Go loop, just reported under a distinct backend name so
// operators can see what the dispatcher would pick.
type Backend int

const (
	BackendScalar Backend = iota
	BackendAVX2Capable
)

func (b Backend) String() string {
	switch b {
	case BackendAVX2Capable:
		return "avx2-capable"
	default:
		return "scalar"
	}
}

// ActiveBackend reports which backend was selected at package init.
var ActiveBackend Backend

func init() {
	if cpu.X86.HasAVX2 {
		ActiveBackend = BackendAVX2Capable
		slog.Debug("canvas metric kernel initialized", "backend", ActiveBackend.String())
	} else {
		ActiveBackend = BackendScalar
		slog.Debug("canvas metric kernel initialized", "backend", ActiveBackend.String())
	}
}

// DifferenceFull computes the full L2 pixel distance between a and b over
// all four channels:
//
//	sqrt( sum((a_ch-b_ch)^2) / (W*H*4) ) / 255
func DifferenceFull(a, b *Canvas) float32 {
	total := sumSquaredDiff(a.Pix, b.Pix)
	return finishScore(total, a.W, a.H)
}

// DifferencePartial reconstructs the squared-error total implied by
// priorScore, subtracts the contribution of `before` and adds the
// contribution of `after` over the touched spans only, and returns the
// resulting score. If after is the result of DrawLines on a clone of
// before, this equals DifferenceFull(target, after) up to rounding.
func DifferencePartial(target, before, after *Canvas, priorScore float32, lines []geom.Scanline) float32 {
	w, h := target.W, target.H
	scaled := float64(priorScore) * 255
	total := int64(scaled * scaled * float64(w*h*4))

	for _, line := range lines {
		base := target.offset(line.X1, line.Y)
		n := (line.X2 - line.X1 + 1) * 4
		total -= sumSquaredDiff(target.Pix[base:base+n], before.Pix[base:base+n])
		total += sumSquaredDiff(target.Pix[base:base+n], after.Pix[base:base+n])
	}
	return finishScore(total, w, h)
}

func finishScore(total int64, w, h int) float32 {
	if total < 0 {
		total = 0
	}
	return float32(math.Sqrt(float64(total)/float64(w*h*4))) / 255
}
