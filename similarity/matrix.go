package similarity

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// BuildMatrix scores every pair (a, b) with the given ScoreFunc. When
// maxConcurrency > 1 rows are fanned out across a bounded worker pool using
// a weighted semaphore, matching the parallelism contract: the matrix is
// caller-owned, scorers are pure, and this is a convenience path only --
// the caller could just as well partition rows itself.
func BuildMatrix(ctx context.Context, as, bs []TermInfo, score ScoreFunc, sctx Context, maxConcurrency int) (Matrix, error) {
	m := make(Matrix, len(as))
	for i := range m {
		m[i] = make([]float64, len(bs))
	}

	if maxConcurrency <= 1 || len(as) <= 1 {
		for i, a := range as {
			scoreRow(m[i], a, bs, score, sctx)
		}
		return m, nil
	}

	sem := semaphore.NewWeighted(int64(maxConcurrency))
	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for i, a := range as {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(i int, a TermInfo) {
			defer wg.Done()
			defer sem.Release(1)
			scoreRow(m[i], a, bs, score, sctx)
		}(i, a)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return m, nil
}

func scoreRow(row []float64, a TermInfo, bs []TermInfo, score ScoreFunc, sctx Context) {
	for j, b := range bs {
		row[j] = score(a, b, sctx)
	}
}
