package wfc

import (
	"context"
	"sync"
)

// BatchResult pairs a synthesis outcome with the seed that produced it.
type BatchResult struct {
	Seed   int64
	Result *Result
	Err    error
}

// BatchSynthesize runs one independent Driver.Run per seed concurrently,
// each owning its own Wave exclusively for the duration of its run — this
// never violates the single-run "Wave is exclusively owned by the Driver"
// contract in spec §5, since each goroutine builds its own Driver (its own
// pattern extraction and adjacency table) from the shared, read-only
// sample. Fan-out shape grounded on via.BatchDetectVias.
func BatchSynthesize(ctx context.Context, sample *Sample, base Params, seeds []int64) []BatchResult {
	results := make([]BatchResult, len(seeds))
	var wg sync.WaitGroup

	for i, seed := range seeds {
		wg.Add(1)
		go func(idx int, seed int64) {
			defer wg.Done()
			params := base
			params.Seed = seed
			driver, err := NewDriver(sample, params)
			if err != nil {
				results[idx] = BatchResult{Seed: seed, Err: err}
				return
			}
			result, err := driver.Run(ctx, nil)
			results[idx] = BatchResult{Seed: seed, Result: result, Err: err}
		}(i, seed)
	}

	wg.Wait()
	return results
}
