package ecs

import "iter"

// Folder accumulates the items of one leaf of a split iteration.
type Folder[T any] interface {
	Consume(item T) Folder[T]
	// Full reports that no more items are wanted.
	Full() bool
}

// Producer is implemented by iterators that can be split into disjoint
// halves for parallel consumption. P is the iterator type itself.
//
// Split bisects the remaining range; ok is false when fewer than two
// candidates are left. FoldWith feeds the (unsplit) iterator to folder.
type Producer[T any, P any] interface {
	Split() (left P, right P, ok bool)
	FoldWith(folder Folder[T]) Folder[T]
}

var _ Producer[Tuple2[int, int], *NonPacked2[int, int]] = (*NonPacked2[int, int])(nil)

// ConsumeIter feeds seq to folder until either runs out.
func ConsumeIter[T any](folder Folder[T], seq iter.Seq[T]) Folder[T] {
	if folder.Full() {
		return folder
	}
	for item := range seq {
		folder = folder.Consume(item)
		if folder.Full() {
			break
		}
	}
	return folder
}
