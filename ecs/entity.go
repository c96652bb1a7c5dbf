package ecs

// EntityId packs the archetype ID into the upper 32 bits, a slot generation
// into the next 8 and the slot index into the low 24. Deleting an entity
// bumps its slot's generation, so an old id never resolves to whatever is
// spawned into the slot later (until the generation wraps after 256 reuses).
type EntityId uint64

const (
	indexBits = 24
	indexMask = 1<<indexBits - 1
)

// NewEntityId builds an EntityId from an archetype ID, a slot generation and
// a slot index. Index bits above the low 24 are dropped.
func NewEntityId(archetypeId uint32, generation uint8, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(generation)<<indexBits | uint64(index&indexMask))
}

// ArchetypeId returns the archetype part of the id
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Generation returns the slot generation the id was issued under
func (e EntityId) Generation() uint8 {
	return uint8(e >> indexBits)
}

// Index returns the slot part of the id
func (e EntityId) Index() uint32 {
	return uint32(e & indexMask)
}
