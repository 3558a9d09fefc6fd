package stream

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Executor runs a function over digest chunks with a bounded worker
// pool and per-chunk retry. Any chunk that fails after its retries
// fails the whole execution; completion order is unspecified and
// callers re-derive ordering afterwards.
type Executor struct {
	Workers    int
	MaxRetries int
	Backoff    time.Duration
}

// Execute applies fn to every chunk. The first unrecovered chunk error
// cancels the remaining work and is returned.
func (e Executor) Execute(ctx context.Context, chunks [][]string, fn func(context.Context, []string) error) error {
	workers := e.Workers
	if workers <= 0 {
		workers = 1
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for _, chunk := range chunks {
		chunk := chunk
		group.Go(func() error {
			return withRetry(ctx, e.MaxRetries, e.Backoff, func(ctx context.Context) error {
				return fn(ctx, chunk)
			})
		})
	}
	return group.Wait()
}
