package engine

import (
	"sync"

	"github.com/cwbudde/primsketch/internal/shapes"
)

// dispatch fans a single optimisation step out across every worker and
// fans the results back in. Unlike a general work-stealing pool (the
// pattern this is adapted from), each worker performs exactly one task
// per step, so a plain WaitGroup fan-out/fan-in is sufficient — there is
// never an idle worker for another to steal work from.
func dispatch(workers []*Worker, kind shapes.Kind, alpha uint8, n, m int) []State {
	results := make([]State, len(workers))
	var wg sync.WaitGroup
	wg.Add(len(workers))
	for i, w := range workers {
		go func(i int, w *Worker) {
			defer wg.Done()
			results[i] = BestHillClimbState(w, kind, alpha, n, m)
		}(i, w)
	}
	wg.Wait()
	return results
}
