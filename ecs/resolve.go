package ecs

import "github.com/kamstrup/intmap"

// shortChain is how many share hops are walked before cycle tracking starts.
// Most chains are one or two links long and never allocate.
const shortChain = 8

// resolve returns the dense index holding the value id presents, following
// share links. It never mutates the storage.
func (s *SparseSet[T]) resolve(id EntityId) (int, bool) {
	sl, ok := s.lookup(id)
	if !ok {
		return 0, false
	}
	if sl.state == slotOwned {
		return int(sl.dense), true
	}
	return s.resolveShared(id.Index(), sl.owner)
}

// resolveShared walks from a shared slot at start towards owned data. Absent
// parents, stale parent keys and revisited indices all end the walk unresolved.
func (s *SparseSet[T]) resolveShared(start uint32, owner EntityId) (int, bool) {
	var visited *intmap.Set[uint32]
	for hops := 0; ; hops++ {
		if owner.Index() == start {
			return 0, false
		}

		sl, ok := s.lookup(owner)
		if !ok {
			return 0, false
		}
		if sl.state == slotOwned {
			return int(sl.dense), true
		}

		if hops >= shortChain {
			if visited == nil {
				visited = intmap.NewSet[uint32](2 * shortChain)
				visited.Add(start)
			}
			if visited.Has(owner.Index()) {
				return 0, false
			}
			visited.Add(owner.Index())
		}
		owner = sl.owner
	}
}
