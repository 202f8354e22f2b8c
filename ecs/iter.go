package ecs

import "iter"

// driving picks the storage with the fewest owned components. Ties go to
// the earliest storage.
func driving(lens ...int) int {
	best := 0
	for i, n := range lens {
		if n < lens[best] {
			best = i
		}
	}
	return best
}

// Iter1 walks the owned values of a single storage in dense order.
// Shared entities are not visited since they have no dense slot.
type Iter1[T any] struct {
	set     *SparseSet[T]
	current int
	end     int
}

// Iter returns an iterator over the owned components.
func (s *SparseSet[T]) Iter() *Iter1[T] {
	return &Iter1[T]{
		set: s,
		end: len(s.values),
	}
}

// Next returns the next component, or false once the iterator is exhausted.
func (it *Iter1[T]) Next() (*T, bool) {
	if it.current >= it.end {
		return nil, false
	}
	it.current++
	return &it.set.values[it.current-1], true
}

// SizeHint is exact for a single storage.
func (it *Iter1[T]) SizeHint() (int, int) {
	n := it.end - it.current
	return n, n
}

// All drains the iterator as a range-over-func sequence.
func (it *Iter1[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// WithId yields each component together with the entity owning it.
func (it *Iter1[T]) WithId() *Iter1WithId[T] {
	return &Iter1WithId[T]{iter: it}
}

// Filtered skips components that do not satisfy pred.
func (it *Iter1[T]) Filtered(pred func(*T) bool) *Iter1Filter[T] {
	return &Iter1Filter[T]{iter: it, pred: pred}
}

// ChunkExact yields slices of exactly step components.
func (it *Iter1[T]) ChunkExact(step int) *ChunkExact1[T] {
	return newChunkExact1(it.set, it.current, it.end, step)
}

type Iter1WithId[T any] struct {
	iter *Iter1[T]
}

func (it *Iter1WithId[T]) Next() (EntityId, *T, bool) {
	v, ok := it.iter.Next()
	if !ok {
		return 0, nil, false
	}
	return it.iter.set.keys[it.iter.current-1], v, true
}

func (it *Iter1WithId[T]) SizeHint() (int, int) {
	return it.iter.SizeHint()
}

func (it *Iter1WithId[T]) All() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for {
			id, v, ok := it.Next()
			if !ok || !yield(id, v) {
				return
			}
		}
	}
}

type Iter1Filter[T any] struct {
	iter *Iter1[T]
	pred func(*T) bool
}

func (it *Iter1Filter[T]) Next() (*T, bool) {
	for {
		v, ok := it.iter.Next()
		if !ok {
			return nil, false
		}
		if it.pred(v) {
			return v, true
		}
	}
}

// SizeHint has a lower bound of zero since any item may be filtered out.
func (it *Iter1Filter[T]) SizeHint() (int, int) {
	_, upper := it.iter.SizeHint()
	return 0, upper
}

func (it *Iter1Filter[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All iterates owned components together with their entities.
func (s *SparseSet[T]) All() iter.Seq2[EntityId, *T] {
	return s.Iter().WithId().All()
}
