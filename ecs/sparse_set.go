package ecs

import "github.com/rotisserie/eris"

type slotState uint8

const (
	slotAbsent slotState = iota
	slotOwned
	slotShared
)

// slot is one entry of the sparse array. key is the entity the slot was
// written for; dense is valid when owned, owner when shared.
type slot struct {
	state slotState
	dense uint32
	key   EntityId
	owner EntityId
}

// OldKind tells Remove callers what the slot held before removal.
type OldKind uint8

const (
	WasOwned OldKind = iota + 1
	WasShared
)

// OldComponent is what Remove took out of a slot. Value is only set for WasOwned.
type OldComponent[T any] struct {
	Kind  OldKind
	Value T
}

// SparseSet stores components of type T keyed by entity.
// Owned values live packed in a dense array; the sparse array maps an entity
// index to its dense position or to the entity it shares a component with.
type SparseSet[T any] struct {
	sparse []slot
	keys   []EntityId
	values []T
}

// NewSparseSet creates an empty component storage.
func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

func (s *SparseSet[T]) grow(index uint32) {
	if int(index) < len(s.sparse) {
		return
	}
	n := int(index) + 1
	if n < 2*len(s.sparse) {
		n = 2 * len(s.sparse)
	}
	sparse := make([]slot, n)
	copy(sparse, s.sparse)
	s.sparse = sparse
}

// lookup returns the slot written for exactly this key.
func (s *SparseSet[T]) lookup(id EntityId) (slot, bool) {
	idx := id.Index()
	if int(idx) >= len(s.sparse) {
		return slot{}, false
	}
	sl := s.sparse[idx]
	if sl.state == slotAbsent || sl.key != id {
		return slot{}, false
	}
	return sl, true
}

// Contains reports whether the entity has a component, owned or through a
// resolvable share.
func (s *SparseSet[T]) Contains(id EntityId) bool {
	_, ok := s.resolve(id)
	return ok
}

// Get returns a copy of the entity's component.
func (s *SparseSet[T]) Get(id EntityId) (T, error) {
	i, ok := s.resolve(id)
	if !ok {
		var zero T
		return zero, eris.Wrapf(ErrNotFound, "entity %d (generation %d)", id.Index(), id.Generation())
	}
	return s.values[i], nil
}

// GetMut returns a pointer to the entity's component. For a shared entity
// this is the owner's value, so writes are seen by every sharer.
func (s *SparseSet[T]) GetMut(id EntityId) (*T, error) {
	i, ok := s.resolve(id)
	if !ok {
		return nil, eris.Wrapf(ErrNotFound, "entity %d (generation %d)", id.Index(), id.Generation())
	}
	return &s.values[i], nil
}

// Insert stores value as the entity's own component. A shared slot is
// converted to owned and its link is dropped. When the entity already owned a
// component the previous value is returned with evicted set.
//
// A key older than the slot's current occupant is ignored and also reports
// (zero, false); use TryInsert when a dropped write must be detected.
func (s *SparseSet[T]) Insert(id EntityId, value T) (old T, evicted bool) {
	old, evicted, _ = s.TryInsert(id, value)
	return old, evicted
}

// TryInsert is Insert that reports ErrStaleKey instead of silently dropping
// a write for a key older than the slot's current occupant.
func (s *SparseSet[T]) TryInsert(id EntityId, value T) (old T, evicted bool, err error) {
	idx := id.Index()
	s.grow(idx)
	if !s.evictStale(id) {
		return old, false, eris.Wrapf(ErrStaleKey, "entity %d (generation %d)", idx, id.Generation())
	}

	sl := &s.sparse[idx]
	if sl.state == slotOwned {
		old = s.values[sl.dense]
		s.values[sl.dense] = value
		return old, true, nil
	}

	sl.state = slotOwned
	sl.dense = uint32(len(s.values))
	sl.key = id
	sl.owner = 0
	s.keys = append(s.keys, id)
	s.values = append(s.values, value)
	return old, false, nil
}

// evictStale clears a slot left behind by an older generation of the same
// index. Returns false when the slot belongs to a newer generation than id.
func (s *SparseSet[T]) evictStale(id EntityId) bool {
	sl := s.sparse[id.Index()]
	if sl.state == slotAbsent || sl.key == id {
		return true
	}
	if sl.key.Generation() > id.Generation() {
		return false
	}
	s.clearSlot(id.Index())
	return true
}

// Remove takes the entity's component out of the storage. Entities sharing
// from it keep their links but no longer resolve.
func (s *SparseSet[T]) Remove(id EntityId) (OldComponent[T], bool) {
	sl, ok := s.lookup(id)
	if !ok {
		return OldComponent[T]{}, false
	}
	if sl.state == slotShared {
		s.sparse[id.Index()] = slot{}
		return OldComponent[T]{Kind: WasShared}, true
	}
	return OldComponent[T]{Kind: WasOwned, Value: s.clearSlot(id.Index())}, true
}

// Delete is the hook called when the entity itself is destroyed.
func (s *SparseSet[T]) Delete(id EntityId) {
	s.Remove(id)
}

// clearSlot empties the slot at index, swap-removing its dense entry if owned.
func (s *SparseSet[T]) clearSlot(index uint32) T {
	var value T
	sl := s.sparse[index]
	s.sparse[index] = slot{}
	if sl.state != slotOwned {
		return value
	}

	dense := int(sl.dense)
	last := len(s.values) - 1
	value = s.values[dense]
	if dense != last {
		s.keys[dense] = s.keys[last]
		s.values[dense] = s.values[last]
		s.sparse[s.keys[dense].Index()].dense = uint32(dense)
	}

	var zero T
	s.values[last] = zero // Drop references held by the moved-out value
	s.keys = s.keys[:last]
	s.values = s.values[:last]
	return value
}

// Share makes target present owner's component instead of its own. The link
// is followed on every access, so re-sharing owner later is seen by target.
func (s *SparseSet[T]) Share(owner, target EntityId) error {
	if owner == target {
		return eris.Wrapf(ErrShareConflict, "entity %d cannot share with itself", target.Index())
	}

	idx := target.Index()
	s.grow(idx)
	if !s.evictStale(target) || s.sparse[idx].state != slotAbsent {
		return eris.Wrapf(ErrShareConflict, "entity %d (generation %d)", idx, target.Generation())
	}

	s.sparse[idx] = slot{
		state: slotShared,
		key:   target,
		owner: owner,
	}
	return nil
}

// Unshare removes target's link, leaving the slot empty.
func (s *SparseSet[T]) Unshare(target EntityId) error {
	sl, ok := s.lookup(target)
	if !ok || sl.state != slotShared {
		return eris.Wrapf(ErrUnshareConflict, "entity %d (generation %d)", target.Index(), target.Generation())
	}
	s.sparse[target.Index()] = slot{}
	return nil
}

// IsShared reports whether the entity's slot is a share link, resolvable or not.
func (s *SparseSet[T]) IsShared(id EntityId) bool {
	sl, ok := s.lookup(id)
	return ok && sl.state == slotShared
}

// OwnerOf returns the immediate parent of a shared entity.
func (s *SparseSet[T]) OwnerOf(id EntityId) (EntityId, bool) {
	sl, ok := s.lookup(id)
	if !ok || sl.state != slotShared {
		return 0, false
	}
	return sl.owner, true
}

// Len returns the number of owned components.
func (s *SparseSet[T]) Len() int {
	return len(s.values)
}

// Keys returns the owners of the dense values, in dense order.
// The slice must not be modified.
func (s *SparseSet[T]) Keys() []EntityId {
	return s.keys
}

// Values returns the dense values.
func (s *SparseSet[T]) Values() []T {
	return s.values
}

// Clear removes every component and share link.
func (s *SparseSet[T]) Clear() {
	clear(s.values)
	s.sparse = s.sparse[:0]
	s.keys = s.keys[:0]
	s.values = s.values[:0]
}
