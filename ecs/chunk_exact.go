package ecs

import "iter"

// ChunkExact1 yields contiguous slices of exactly step owned components.
// Whatever does not fill a full chunk is available once through Remainder.
// Chunk boundaries are counted from start, the position chunking began at.
type ChunkExact1[T any] struct {
	set     *SparseSet[T]
	start   int
	current int
	end     int
	step    int
}

func newChunkExact1[T any](set *SparseSet[T], current, end, step int) *ChunkExact1[T] {
	if step <= 0 {
		panic("chunk step must be positive")
	}
	return &ChunkExact1[T]{
		set:     set,
		start:   current,
		current: current,
		end:     end,
		step:    step,
	}
}

// ChunkExact returns a chunk iterator over the storage's owned components.
func (s *SparseSet[T]) ChunkExact(step int) *ChunkExact1[T] {
	return newChunkExact1(s, 0, len(s.values), step)
}

// Next returns the next full chunk.
func (it *ChunkExact1[T]) Next() ([]T, bool) {
	current := it.current
	if current+it.step > it.end {
		return nil, false
	}
	it.current += it.step
	return it.set.values[current:it.current:it.current], true
}

// Remainder returns the trailing components that do not fill a chunk and
// removes them from the iterator, so a second call returns an empty slice.
func (it *ChunkExact1[T]) Remainder() []T {
	remainder := min(it.end-it.current, (it.end-it.start)%it.step)
	oldEnd := it.end
	it.end -= remainder
	return it.set.values[it.end:oldEnd:oldEnd]
}

// SizeHint is exact: the number of full chunks left.
func (it *ChunkExact1[T]) SizeHint() (int, int) {
	n := (it.end - it.current) / it.step
	return n, n
}

func (it *ChunkExact1[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			chunk, ok := it.Next()
			if !ok || !yield(chunk) {
				return
			}
		}
	}
}
