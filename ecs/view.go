package ecs

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// View is a shared, read-only borrow of one component storage. Any number of
// Views of the same type may be held at once, but not alongside a ViewMut.
type View[T any] struct {
	set      *SparseSet[T]
	entry    *componentEntry
	released bool
}

// ReadView borrows T's storage for reading.
func ReadView[T any](s *Storage) (*View[T], error) {
	e := s.entry(reflect.TypeFor[T]())
	if !e.acquireShared() {
		return nil, eris.Wrapf(ErrBorrowConflict, "%s is borrowed mutably", e.typ)
	}
	return &View[T]{
		set:   e.storage.(*SparseSet[T]),
		entry: e,
	}, nil
}

// Release returns the borrow. Further calls are no-ops.
func (v *View[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.entry.borrow.Add(-1)
}

func (v *View[T]) Contains(id EntityId) bool {
	return v.set.Contains(id)
}

func (v *View[T]) Get(id EntityId) (T, error) {
	return v.set.Get(id)
}

func (v *View[T]) Len() int {
	return v.set.Len()
}

func (v *View[T]) Iter() *Iter1[T] {
	return v.set.Iter()
}

func (v *View[T]) ChunkExact(step int) *ChunkExact1[T] {
	return v.set.ChunkExact(step)
}

// Set exposes the storage for the IterN constructors. It must only be read.
func (v *View[T]) Set() *SparseSet[T] {
	return v.set
}

// ViewMut is the exclusive borrow of one component storage. It exposes the
// full SparseSet API.
type ViewMut[T any] struct {
	*SparseSet[T]
	entry    *componentEntry
	released bool
}

// WriteView borrows T's storage exclusively.
func WriteView[T any](s *Storage) (*ViewMut[T], error) {
	e := s.entry(reflect.TypeFor[T]())
	if !e.acquireExclusive() {
		return nil, eris.Wrapf(ErrBorrowConflict, "%s is already borrowed", e.typ)
	}
	return &ViewMut[T]{
		SparseSet: e.storage.(*SparseSet[T]),
		entry:     e,
	}, nil
}

// Release returns the borrow. Further calls are no-ops.
func (v *ViewMut[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.entry.borrow.Store(0)
}

// Set exposes the storage for the IterN constructors.
func (v *ViewMut[T]) Set() *SparseSet[T] {
	return v.SparseSet
}
