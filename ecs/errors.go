package ecs

import "github.com/rotisserie/eris"

var (
	// ErrNotFound is returned when an entity has no component, or its shared
	// chain does not end in owned data.
	ErrNotFound = eris.New("component not found")

	// ErrShareConflict is returned when the share target already holds owned
	// or shared data, or when an entity is asked to share with itself.
	ErrShareConflict = eris.New("share target already has a component")

	// ErrUnshareConflict is returned when unshare is called on a slot that is
	// not currently shared.
	ErrUnshareConflict = eris.New("component is not shared")

	// ErrStaleKey is returned when a write names an older generation than
	// the entity currently holding the slot.
	ErrStaleKey = eris.New("entity key is stale")

	// ErrBorrowConflict is returned when a view cannot be acquired because
	// it would violate the one-writer or many-readers rule.
	ErrBorrowConflict = eris.New("storage is already borrowed")
)
