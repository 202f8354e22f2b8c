package ecs

// iComponentStorage is the type-erased face of a SparseSet used by Storage.
type iComponentStorage interface {
	Delete(id EntityId)
	Contains(id EntityId) bool
}
