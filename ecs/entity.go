package ecs

// EntityId encodes the entity index (lower 32 bits) and its generation (upper 32 bits)
type EntityId uint64

// NewEntityId creates an EntityId from an index and generation
func NewEntityId(index uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Index extracts the entity index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation counter from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// EntityPool hands out entity keys. An index is only recycled after its
// generation has been bumped, so stale keys never match the new occupant.
type EntityPool struct {
	generations []uint32
	alive       []bool
	freeList    []uint32
}

// NewEntityPool creates an empty pool
func NewEntityPool() *EntityPool {
	return &EntityPool{
		generations: make([]uint32, 0, 1024),
		alive:       make([]bool, 0, 1024),
		freeList:    make([]uint32, 0, 256),
	}
}

// Create returns a fresh key, reusing a free index when one is available
func (p *EntityPool) Create() EntityId {
	if len(p.freeList) > 0 {
		idx := p.freeList[len(p.freeList)-1]
		p.freeList = p.freeList[:len(p.freeList)-1]
		p.alive[idx] = true
		return NewEntityId(idx, p.generations[idx])
	}

	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 0)
	p.alive = append(p.alive, true)
	return NewEntityId(idx, 0)
}

// Alive reports whether the key still names a live entity
func (p *EntityPool) Alive(id EntityId) bool {
	idx := id.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.alive[idx] && p.generations[idx] == id.Generation()
}

// Destroy retires the key. Returns false for stale or unknown keys.
func (p *EntityPool) Destroy(id EntityId) bool {
	if !p.Alive(id) {
		return false
	}
	idx := id.Index()
	p.alive[idx] = false
	p.generations[idx]++
	p.freeList = append(p.freeList, idx)
	return true
}

// Len returns the number of live entities
func (p *EntityPool) Len() int {
	return len(p.generations) - len(p.freeList)
}
