package flatcol

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BuildParallel runs the intended parallel-construction pattern: one private
// stack per worker, filled concurrently with no shared state, returned for a
// single-threaded merge step. fill receives the worker number and that
// worker's stack. The first error cancels the remaining workers via ctx.
func BuildParallel[T, I, R any, Re Region[T, I, R, Re]](
	ctx context.Context,
	workers int,
	newStack func() *FlatStack[T, I, R, Re],
	fill func(ctx context.Context, worker int, s *FlatStack[T, I, R, Re]) error,
) ([]*FlatStack[T, I, R, Re], error) {
	parts := make([]*FlatStack[T, I, R, Re], workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			parts[w] = newStack()
			return fill(ctx, w, parts[w])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

// MergeStacks combines parts into a fresh stack: it reserves via MergeFrom,
// then re-appends every record. It is restricted to stacks whose region
// reads back the same type it accepts (leaf-shaped regions such as strings,
// bytes or scalars); composite stacks re-append their owned source values
// instead.
func MergeStacks[T, I any, Re Region[T, I, T, Re]](
	newStack func() *FlatStack[T, I, T, Re],
	parts []*FlatStack[T, I, T, Re],
) *FlatStack[T, I, T, Re] {
	out := newStack()
	out.MergeFrom(parts)
	for _, p := range parts {
		for _, v := range p.All() {
			out.Append(v)
		}
	}
	return out
}
