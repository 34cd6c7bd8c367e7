// Package engine drives the parallel random-restart hill-climbing search:
// it owns the canonical current canvas, spawns one Worker per configured
// parallelism level, and commits the best result of each step to both
// the canonical canvas and every worker's private replica.
package engine

import (
	"sync"

	"github.com/cwbudde/primsketch/internal/canvas"
	"github.com/cwbudde/primsketch/internal/geom"
	"github.com/cwbudde/primsketch/internal/shapes"
)

// Model is the search orchestrator. current is guarded by mu because it
// is read by every worker at the start of a step and written once by the
// model at the end of it; workers never touch it directly, and never
// touch each other's state at all.
type Model struct {
	target     *canvas.Canvas
	background geom.Color

	mu      sync.RWMutex
	current *canvas.Canvas
	score   float32

	workers []*Worker
	lines   []geom.Scanline
	history []State
}

// New builds a model over target, seeding the background with target's
// average colour and spawning nWorkers workers, each with an
// independently seeded RNG.
func New(target *canvas.Canvas, nWorkers int, seed int64) *Model {
	background := target.AverageColor()
	current := canvas.New(target.W, target.H)
	current.Erase(background)

	m := &Model{
		target:     target,
		background: background,
		current:    current,
		score:      canvas.DifferenceFull(target, current),
		lines:      geom.NewScanlineBuffer(target.H),
	}
	m.workers = make([]*Worker, nWorkers)
	for i := range m.workers {
		m.workers[i] = NewWorker(target, seed+int64(i))
	}
	return m
}

// Resume rebuilds a model from a previously committed history: it
// replays every (shape, colour) onto a fresh current canvas in order,
// then primes every worker's replica to match, so the next Step
// continues the search exactly where it left off.
func Resume(target *canvas.Canvas, nWorkers int, seed int64, history []State) *Model {
	background := target.AverageColor()
	current := canvas.New(target.W, target.H)
	current.Erase(background)

	lines := geom.NewScanlineBuffer(target.H)
	for _, st := range history {
		spans := st.Shape.Rasterize(target.W, target.H, lines)
		current.DrawLines(st.Color, spans)
	}
	score := canvas.DifferenceFull(target, current)

	m := &Model{
		target:     target,
		background: background,
		current:    current,
		score:      score,
		lines:      geom.NewScanlineBuffer(target.H),
		history:    append([]State(nil), history...),
	}
	m.workers = make([]*Worker, nWorkers)
	for i := range m.workers {
		w := NewWorker(target, seed+int64(i))
		w.Begin(current, score)
		m.workers[i] = w
	}
	return m
}

// Score returns the model's current distance from target.
func (m *Model) Score() float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.score
}

// Background returns the solid colour the canvas was initialised with.
func (m *Model) Background() geom.Color { return m.background }

// History returns the committed shapes in drawing order. The returned
// slice must not be mutated by the caller.
func (m *Model) History() []State { return m.history }

// Size reports the working-resolution canvas dimensions.
func (m *Model) Size() (w, h int) { return m.target.W, m.target.H }

// Step runs one full optimisation round:
//  1. capture the current score;
//  2. split m across workers as per_worker_m = max(1, m/n_workers);
//  3. dispatch every worker to run best_hill_climb_state(kind, alpha, n,
//     per_worker_m) against its own replica of the current canvas;
//  4. pick the minimum-score result across all n_workers workers;
//  5. commit: clone current as before, rasterize the winning shape,
//     compute its optimal colour against target, draw it onto current,
//     recompute the score incrementally, and append to history;
//  6. bring every worker's replica back in sync with the committed
//     canvas.
//
// Step returns ok=false, leaving the model unchanged, if every worker's
// search only ever produced shapes with empty rasterizations — this can
// only happen with a degenerate (zero-area) canvas.
func (m *Model) Step(kind shapes.Kind, alpha uint8, n, mRounds int) (shapes.Shape, geom.Color, bool) {
	priorScore := m.Score()

	perWorkerM := mRounds / len(m.workers)
	if perWorkerM < 1 {
		perWorkerM = 1
	}

	m.mu.RLock()
	for _, w := range m.workers {
		w.Begin(m.current, priorScore)
	}
	m.mu.RUnlock()

	results := dispatch(m.workers, kind, alpha, n, perWorkerM)

	best := -1
	for i, r := range results {
		if r.Color == geom.Transparent {
			continue
		}
		if best < 0 || r.Score < results[best].Score {
			best = i
		}
	}
	if best < 0 {
		return nil, geom.Transparent, false
	}
	winnerShape := results[best].Shape

	m.mu.Lock()
	before := m.current.Clone()
	lines := winnerShape.Rasterize(m.target.W, m.target.H, m.lines)
	col := m.current.ComputeColor(m.target, lines, alpha)
	m.current.DrawLines(col, lines)
	m.score = canvas.DifferencePartial(m.target, before, m.current, priorScore, lines)
	m.history = append(m.history, State{Shape: winnerShape, Alpha: alpha, Color: col, Score: m.score})
	score := m.score
	m.mu.Unlock()

	for _, w := range m.workers {
		w.Commit(winnerShape, col, score)
	}

	return winnerShape, col, true
}
