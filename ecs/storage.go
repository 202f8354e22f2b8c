package ecs

import (
	"reflect"
	"sync/atomic"

	"github.com/rotisserie/eris"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage built from a registry gets its own SparseSet per registered type.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
	order     []reflect.Type
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.factories[t]; !ok {
		r.order = append(r.order, t)
	}
	r.factories[t] = func() iComponentStorage {
		return NewSparseSet[T]()
	}
}

// componentEntry pairs a storage with its borrow state: 0 is free, n > 0 is
// n readers, -1 is one writer.
type componentEntry struct {
	typ     reflect.Type
	storage iComponentStorage
	borrow  atomic.Int32
}

func (e *componentEntry) acquireShared() bool {
	for {
		n := e.borrow.Load()
		if n < 0 {
			return false
		}
		if e.borrow.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (e *componentEntry) acquireExclusive() bool {
	return e.borrow.CompareAndSwap(0, -1)
}

// Storage owns the entity pool and one SparseSet per registered component type.
type Storage struct {
	entities   *EntityPool
	components map[reflect.Type]*componentEntry
	ordered    []*componentEntry
}

// NewStorage creates a new storage with a SparseSet for every registered type
func NewStorage(registry *ComponentRegistry) *Storage {
	s := &Storage{
		entities:   NewEntityPool(),
		components: make(map[reflect.Type]*componentEntry, len(registry.order)),
	}
	for _, t := range registry.order {
		e := &componentEntry{
			typ:     t,
			storage: registry.factories[t](),
		}
		s.components[t] = e
		s.ordered = append(s.ordered, e)
	}
	return s
}

func (s *Storage) entry(t reflect.Type) *componentEntry {
	e, ok := s.components[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return e
}

// Components returns the SparseSet for T without taking a borrow. Callers
// are responsible for not mutating it while views or iterators are live.
func Components[T any](s *Storage) *SparseSet[T] {
	return s.entry(reflect.TypeFor[T]()).storage.(*SparseSet[T])
}

// Spawn allocates a new entity with no components
func (s *Storage) Spawn() EntityId {
	return s.entities.Create()
}

// Alive reports whether id names a live entity
func (s *Storage) Alive(id EntityId) bool {
	return s.entities.Alive(id)
}

// Len returns the number of live entities
func (s *Storage) Len() int {
	return s.entities.Len()
}

// Delete clears the entity from every component storage and retires its key.
// Share links pointing at the entity are left in place and stop resolving.
func (s *Storage) Delete(id EntityId) error {
	if !s.entities.Alive(id) {
		return eris.Wrapf(ErrNotFound, "entity %d (generation %d) is not alive", id.Index(), id.Generation())
	}
	for _, e := range s.ordered {
		if e.borrow.Load() != 0 {
			return eris.Wrapf(ErrBorrowConflict, "cannot delete entity %d while %s is borrowed", id.Index(), e.typ)
		}
	}

	for _, e := range s.ordered {
		e.storage.Delete(id)
	}
	s.entities.Destroy(id)
	return nil
}

// HasComponent checks if an entity has a specific component type, directly
// or through a share
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	e, ok := s.components[compType]
	if !ok {
		return false
	}
	return e.storage.Contains(id)
}

// ComponentTypes returns the registered component types in registration order
func (s *Storage) ComponentTypes() []reflect.Type {
	types := make([]reflect.Type, len(s.ordered))
	for i, e := range s.ordered {
		types[i] = e.typ
	}
	return types
}
