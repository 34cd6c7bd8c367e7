package engine

import (
	"github.com/cwbudde/primsketch/internal/geom"
	"github.com/cwbudde/primsketch/internal/shapes"
)

// State is one candidate: a shape, the alpha it was scored at, the
// colour ComputeColor chose for it, and the resulting canvas score.
type State struct {
	Shape shapes.Shape
	Alpha uint8
	Color geom.Color
	Score float32
}

// BestRandomState draws n independent random shapes of kind, scores each
// against w's current canvas at alpha, and returns the lowest-scoring one.
// A shape that rasterizes to no on-canvas pixels is returned only when all
// n draws do.
func BestRandomState(w *Worker, kind shapes.Kind, alpha uint8, n int) State {
	var best State
	best.Score = -1
	for i := 0; i < n; i++ {
		shape := shapes.Random(kind, w.target.W, w.target.H, w.rnd)
		col, score := w.Energy(shape, alpha)
		if preferable(col, score, best) {
			best = State{Shape: shape, Alpha: alpha, Color: col, Score: score}
		}
	}
	return best
}

// preferable reports whether a candidate with colour col and score beats
// best. A candidate that draws something always beats the empty-shape
// sentinel (geom.Transparent, scored at the unchanged prior score) and
// never loses to it; otherwise the lower score wins.
func preferable(col geom.Color, score float32, best State) bool {
	if best.Score < 0 {
		return true
	}
	if (col == geom.Transparent) != (best.Color == geom.Transparent) {
		return best.Color == geom.Transparent
	}
	return score < best.Score
}

// hillClimbMaxAge bounds the number of consecutive non-improving mutations
// a single hill-climb run tolerates before giving up. A strict improvement
// resets age to zero; a rejected candidate, or a tie (kept, but not an
// improvement), advances it, so an improving run can wander arbitrarily
// long while a stalled one stops after 100 tries in a row.
const hillClimbMaxAge = 100

// HillClimb repeatedly mutates a copy of state.Shape, keeping the mutation
// whenever it does not worsen the score and discarding it otherwise, until
// maxAge consecutive candidates in a row have failed to improve on the
// best score seen so far.
func HillClimb(w *Worker, state State, maxAge int) State {
	best := state
	for age := 0; age < maxAge; {
		candidate := best.Shape.Clone()
		candidate.Mutate(w.target.W, w.target.H, w.rnd)
		col, score := w.Energy(candidate, best.Alpha)
		if col != geom.Transparent && score <= best.Score {
			if score < best.Score {
				age = 0
			} else {
				age++
			}
			best = State{Shape: candidate, Alpha: best.Alpha, Color: col, Score: score}
			continue
		}
		age++
	}
	return best
}

// BestHillClimbState runs the pipeline {best-random(n) -> hill-climb(100)}
// m times and returns the best of the m results by final score.
func BestHillClimbState(w *Worker, kind shapes.Kind, alpha uint8, n, m int) State {
	var best State
	best.Score = -1
	for i := 0; i < m; i++ {
		state := BestRandomState(w, kind, alpha, n)
		state = HillClimb(w, state, hillClimbMaxAge)
		if preferable(state.Color, state.Score, best) {
			best = state
		}
	}
	return best
}
