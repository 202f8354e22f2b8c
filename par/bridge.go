// Package par drives splittable ecs iterators across goroutines.
//
// Splitting is a pure bisection of the iterator's candidate range, so the
// storages behind the iterator must not be mutated until the call returns.
package par

import (
	"context"
	"runtime"

	"github.com/plus3/sparsecs/ecs"
	"golang.org/x/sync/errgroup"
)

// DefaultSplits is the split budget used by Collect, Count and ForEach.
func DefaultSplits() int {
	return runtime.GOMAXPROCS(0)
}

// Bridge splits producer while the split budget lasts, folds every leaf with
// a fresh folder from newFolder and combines the results with reduce, always
// as reduce(left, right). The right half of each split runs on its own goroutine.
func Bridge[T any, P ecs.Producer[T, P]](
	ctx context.Context,
	producer P,
	splits int,
	newFolder func() ecs.Folder[T],
	reduce func(left, right ecs.Folder[T]) ecs.Folder[T],
) (ecs.Folder[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if splits > 0 {
		if left, right, ok := producer.Split(); ok {
			var rightResult ecs.Folder[T]
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				rightResult, err = Bridge[T, P](gctx, right, splits/2, newFolder, reduce)
				return err
			})

			leftResult, leftErr := Bridge[T, P](gctx, left, splits/2, newFolder, reduce)
			if err := g.Wait(); err != nil {
				return nil, err
			}
			if leftErr != nil {
				return nil, leftErr
			}
			return reduce(leftResult, rightResult), nil
		}
	}

	return producer.FoldWith(newFolder()), nil
}

type sliceFolder[T any] struct {
	items []T
}

func (f *sliceFolder[T]) Consume(item T) ecs.Folder[T] {
	f.items = append(f.items, item)
	return f
}

func (f *sliceFolder[T]) Full() bool { return false }

// Collect gathers every item in the same order a sequential pull would.
func Collect[T any, P ecs.Producer[T, P]](ctx context.Context, producer P) ([]T, error) {
	result, err := Bridge[T, P](ctx, producer, DefaultSplits(),
		func() ecs.Folder[T] { return &sliceFolder[T]{} },
		func(left, right ecs.Folder[T]) ecs.Folder[T] {
			l := left.(*sliceFolder[T])
			l.items = append(l.items, right.(*sliceFolder[T]).items...)
			return l
		},
	)
	if err != nil {
		return nil, err
	}
	return result.(*sliceFolder[T]).items, nil
}

type countFolder[T any] struct {
	n int
}

func (f *countFolder[T]) Consume(T) ecs.Folder[T] {
	f.n++
	return f
}

func (f *countFolder[T]) Full() bool { return false }

// Count returns the number of items the producer yields.
func Count[T any, P ecs.Producer[T, P]](ctx context.Context, producer P) (int, error) {
	result, err := Bridge[T, P](ctx, producer, DefaultSplits(),
		func() ecs.Folder[T] { return &countFolder[T]{} },
		func(left, right ecs.Folder[T]) ecs.Folder[T] {
			l := left.(*countFolder[T])
			l.n += right.(*countFolder[T]).n
			return l
		},
	)
	if err != nil {
		return 0, err
	}
	return result.(*countFolder[T]).n, nil
}

type funcFolder[T any] struct {
	ctx context.Context
	fn  func(T)
}

func (f *funcFolder[T]) Consume(item T) ecs.Folder[T] {
	f.fn(item)
	return f
}

func (f *funcFolder[T]) Full() bool { return f.ctx.Err() != nil }

// ForEach calls fn for every item, concurrently from several goroutines.
// fn must be safe for concurrent use. Leaves stop early once ctx is done.
func ForEach[T any, P ecs.Producer[T, P]](ctx context.Context, producer P, fn func(T)) error {
	_, err := Bridge[T, P](ctx, producer, DefaultSplits(),
		func() ecs.Folder[T] { return &funcFolder[T]{ctx: ctx, fn: fn} },
		func(left, _ ecs.Folder[T]) ecs.Folder[T] { return left },
	)
	if err != nil {
		return err
	}
	return ctx.Err()
}
