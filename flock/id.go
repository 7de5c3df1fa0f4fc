package flock

// ActorId encodes both the archetype ID (upper 32 bits) and the slot index (lower 32 bits).
// The zero ActorId never refers to a live actor.
type ActorId uint64

// NewActorId creates an ActorId from an archetype ID and slot index
func NewActorId(archetypeId uint32, index uint32) ActorId {
	return ActorId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId extracts the archetype ID from the actor ID
func (id ActorId) ArchetypeId() uint32 {
	return uint32(id >> 32)
}

// Index extracts the slot index from the actor ID
func (id ActorId) Index() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

// ActorRef is a stable reference to an actor. It follows the actor across
// behavior swaps and compaction, and is cleared when the actor is deleted.
type ActorRef struct {
	Id        ActorId
	Archetype *Archetype
}
