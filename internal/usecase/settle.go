package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// settled is the outcome of one unit of a fan-out.
// A degraded unit carries the fallback value and the error that caused it.
type settled[T any] struct {
	Value    T
	Degraded bool
	Err      error
}

func settle[T any](value T, err error, fallback T) settled[T] {
	if err != nil {
		return settled[T]{Value: fallback, Degraded: true, Err: err}
	}
	return settled[T]{Value: value}
}

// settleAll calls fn for every item, at most limit at a time, and waits for all of them.
// It never fails fast: every unit settles on its own. Results are in the order of items.
func settleAll[In, Out any](ctx context.Context, limit int, items []In, fn func(ctx context.Context, item In) settled[Out]) []settled[Out] {
	results := make([]settled[Out], len(items))

	var eg errgroup.Group
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, item := range items {
		eg.Go(func() error {
			results[i] = fn(ctx, item)
			return nil
		})
	}
	_ = eg.Wait()

	return results
}
