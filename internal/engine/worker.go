package engine

import (
	"math/rand"

	"github.com/cwbudde/primsketch/internal/canvas"
	"github.com/cwbudde/primsketch/internal/geom"
	"github.com/cwbudde/primsketch/internal/shapes"
)

// Worker owns every piece of mutable state one goroutine needs to search
// for a shape over the course of a single optimisation step without
// contending with any other worker: a private scratch replica of the
// committed canvas, a private trial buffer, a private scanline buffer
// and a private RNG. Nothing here is ever touched by another goroutine
// once a step has started.
type Worker struct {
	target *canvas.Canvas
	local  *canvas.Canvas
	trial  *canvas.Canvas
	lines  []geom.Scanline
	rnd    *rand.Rand
	score  float32
}

// NewWorker allocates a worker scoped to target, seeded from seed.
func NewWorker(target *canvas.Canvas, seed int64) *Worker {
	return &Worker{
		target: target,
		local:  canvas.New(target.W, target.H),
		trial:  canvas.New(target.W, target.H),
		lines:  geom.NewScanlineBuffer(target.H),
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// Begin clones current into the worker's local replica and records its
// known score, priming the worker for one step's worth of search.
func (w *Worker) Begin(current *canvas.Canvas, score float32) {
	copy(w.local.Pix, current.Pix)
	w.score = score
}

// Rand exposes the worker's private random source to the search loop.
func (w *Worker) Rand() *rand.Rand { return w.rnd }

// Energy rasterizes shape, computes the colour that best matches target
// over its span at the given alpha, and returns that colour together
// with the score the canvas would have after compositing it. Returns
// geom.Transparent and the worker's current score, unchanged, for a shape
// that rasterizes to no on-canvas pixels.
func (w *Worker) Energy(shape shapes.Shape, alpha uint8) (geom.Color, float32) {
	lines := shape.Rasterize(w.target.W, w.target.H, w.lines)
	if len(lines) == 0 {
		return geom.Transparent, w.score
	}
	col := w.local.ComputeColor(w.target, lines, alpha)
	if col == geom.Transparent {
		return col, w.score
	}
	w.trial.CopyLines(w.local, lines)
	w.trial.DrawLines(col, lines)
	score := canvas.DifferencePartial(w.target, w.local, w.trial, w.score, lines)
	return col, score
}

// Commit composites shape at (col, alpha) permanently onto the worker's
// local replica and adopts score as the worker's new baseline. Called
// once per step, after the model has chosen the overall winner, so every
// worker's replica stays identical to the canonical current canvas.
func (w *Worker) Commit(shape shapes.Shape, col geom.Color, score float32) {
	lines := shape.Rasterize(w.target.W, w.target.H, w.lines)
	w.local.DrawLines(col, lines)
	w.score = score
}
