package textsim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	simerrors "github.com/standardbeagle/textsim/internal/errors"
)

// maxParallelism bounds the parallel-batch fan-out to the machine.
var maxParallelism = max(1, runtime.GOMAXPROCS(0))

// SimilarityOutcome is the one-shot result of an async or batch similarity
// computation.
type SimilarityOutcome struct {
	Value float64
	Err   error
}

// DistanceOutcome is the one-shot result of an async or batch distance
// computation.
type DistanceOutcome struct {
	Value uint32
	Err   error
}

// Pair is one batch input.
type Pair struct {
	S1 string
	S2 string
}

// SimilarityAsync schedules the computation on the worker pool. The
// returned channel delivers exactly one outcome. Submissions after Close
// complete with a ThreadingError.
func (e *Engine) SimilarityAsync(s1, s2 string, alg Algorithm, call *Overlay) <-chan SimilarityOutcome {
	ch := make(chan SimilarityOutcome, 1)

	err := e.pool.Submit(
		func() {
			v, err := e.Similarity(s1, s2, alg, call)
			ch <- SimilarityOutcome{Value: v, Err: err}
		},
		func() {
			ch <- SimilarityOutcome{Err: simerrors.NewThreadingError("executor shut down before job ran")}
		},
	)
	if err != nil {
		ch <- SimilarityOutcome{Err: err}
	}
	return ch
}

// DistanceAsync schedules the distance computation on the worker pool with
// the same delivery contract as SimilarityAsync.
func (e *Engine) DistanceAsync(s1, s2 string, alg Algorithm, call *Overlay) <-chan DistanceOutcome {
	ch := make(chan DistanceOutcome, 1)

	err := e.pool.Submit(
		func() {
			v, err := e.Distance(s1, s2, alg, call)
			ch <- DistanceOutcome{Value: v, Err: err}
		},
		func() {
			ch <- DistanceOutcome{Err: simerrors.NewThreadingError("executor shut down before job ran")}
		},
	)
	if err != nil {
		ch <- DistanceOutcome{Err: err}
	}
	return ch
}

// SimilarityBatch computes every pair in order on the calling goroutine.
// A failing pair records its error at its index; the rest of the batch
// still runs.
func (e *Engine) SimilarityBatch(pairs []Pair, alg Algorithm, call *Overlay) []SimilarityOutcome {
	out := make([]SimilarityOutcome, len(pairs))
	for i, p := range pairs {
		v, err := e.Similarity(p.S1, p.S2, alg, call)
		out[i] = SimilarityOutcome{Value: v, Err: err}
	}
	return out
}

// DistanceBatch is the distance counterpart of SimilarityBatch.
func (e *Engine) DistanceBatch(pairs []Pair, alg Algorithm, call *Overlay) []DistanceOutcome {
	out := make([]DistanceOutcome, len(pairs))
	for i, p := range pairs {
		v, err := e.Distance(p.S1, p.S2, alg, call)
		out[i] = DistanceOutcome{Value: v, Err: err}
	}
	return out
}

// SimilarityBatchParallel fans the batch out across goroutines and
// delivers the complete, order-preserving result slice once. Per-pair
// errors stay local to their index.
func (e *Engine) SimilarityBatchParallel(ctx context.Context, pairs []Pair, alg Algorithm, call *Overlay) <-chan []SimilarityOutcome {
	ch := make(chan []SimilarityOutcome, 1)

	go func() {
		out := make([]SimilarityOutcome, len(pairs))

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelism)
		for i, p := range pairs {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					out[i] = SimilarityOutcome{Err: simerrors.NewUnknown("batch canceled", err)}
					return nil
				}
				v, err := e.Similarity(p.S1, p.S2, alg, call)
				out[i] = SimilarityOutcome{Value: v, Err: err}
				return nil
			})
		}
		_ = g.Wait()

		ch <- out
	}()

	return ch
}
