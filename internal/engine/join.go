// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"sync"
)

// Join runs the given requests concurrently and returns their results in
// request order, regardless of internal completion order. Each request owns
// its own subprocess and captured buffers and writes to its own slot of the
// result slice, so the calls share no mutable state and need no locking.
// Join returns once every request has produced its Result; no result is
// observable before all are.
func (s *Service) Join(ctx context.Context, reqs ...Request) []Result {
	results := make([]Result, len(reqs))
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req Request) {
			defer wg.Done()
			results[i] = s.Do(ctx, req)
		}(i, req)
	}
	wg.Wait()
	return results
}
