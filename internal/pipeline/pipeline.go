// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"
)

// Config controls the evaluation pipeline.
type Config struct {
	Threads    int                   // worker goroutines; values < 1 mean 1
	OnProgress func(done, total int) // optional, called once per password
}

// ForEach evaluates every password concurrently and hands the per-password
// outputs to visit in input order, whatever the worker scheduling did.
// It returns the first visit error or the context error on cancellation.
func ForEach[T any](
	ctx context.Context,
	cfg Config,
	passwords []string,
	eval func(string) []T,
	visit func(T) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	type job struct {
		idx int
		pwd string
	}
	type result struct {
		idx  int
		outs []T
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					select {
					case results <- result{idx: j.idx, outs: eval(j.pwd)}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorder results to input order before visiting. Holds at
	// most one pending result per in-flight worker.
	var cerr error
	var cwg sync.WaitGroup
	total := len(passwords)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int][]T, cfg.Threads*2)
		next := 0
		done := 0
		flush := func(outs []T) {
			done++
			if cerr == nil {
				for _, o := range outs {
					if err := visit(o); err != nil {
						cerr = err
						break
					}
				}
			}
			if cfg.OnProgress != nil {
				cfg.OnProgress(done, total)
			}
		}
		for r := range results {
			if r.idx != next {
				pending[r.idx] = r.outs
				continue
			}
			flush(r.outs)
			next++
			for {
				outs, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				flush(outs)
				next++
			}
		}
	}()

feed:
	for i, p := range passwords {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i, pwd: p}:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return cerr
}
