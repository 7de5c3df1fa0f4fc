// Package flock stores actors composed from behavior capabilities and runs
// performances over them.
//
// Actors are grouped into archetypes, one per distinct behavior set. Swapping
// a capability moves the actor to the archetype of its new behavior set and
// leaves every other actor untouched.
package flock

import (
	"cmp"
	"iter"
	"slices"
	"weak"

	"github.com/plus3/mallard/behavior"
	"go.uber.org/zap"
)

// Flock is the actor storage.
type Flock struct {
	archetypes map[uint32]*Archetype
	nextSeq    uint64
	logger     *zap.Logger
}

// New creates an empty Flock. A nil logger disables logging.
func New(logger *zap.Logger) *Flock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flock{
		archetypes: make(map[uint32]*Archetype),
		logger:     logger,
	}
}

// Spawn adds a named actor and returns its ID.
func (f *Flock) Spawn(name string, actor *behavior.Actor) ActorId {
	if actor == nil {
		panic("cannot spawn a nil actor")
	}

	f.nextSeq++
	id := f.place(Member{Name: name, Seq: f.nextSeq, Actor: actor})
	f.logger.Debug("spawned actor",
		zap.String("name", name),
		zap.Uint64("seq", f.nextSeq),
		zap.Uint32("archetype", id.ArchetypeId()),
		zap.Bool("can_fly", actor.CanFly()),
	)
	return id
}

func (f *Flock) place(member Member) ActorId {
	archId, types := archetypeId(member.Actor)
	archetype, exists := f.archetypes[archId]
	if !exists {
		archetype = newArchetype(archId, types, member.Actor.CanFly())
		f.archetypes[archId] = archetype
		f.logger.Debug("created archetype", zap.Uint32("archetype", archId), zap.Int("archetypes", len(f.archetypes)))
	}
	return NewActorId(archId, archetype.spawn(member))
}

// Get returns the member stored under id. The pointer stays valid until the
// actor is deleted, swapped, or the flock is compacted.
func (f *Flock) Get(id ActorId) (*Member, bool) {
	archetype, ok := f.archetypes[id.ArchetypeId()]
	if !ok {
		return nil, false
	}
	member := archetype.get(id.Index())
	return member, member != nil
}

// Delete removes the actor. It reports whether an actor was removed.
func (f *Flock) Delete(id ActorId) bool {
	archetype, ok := f.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.delete(id.Index())
}

// SwapFlight replaces the actor's flight capability and returns its new ID.
// Passing behavior.NoFlight grounds the actor. A zero ID means id was not found.
func (f *Flock) SwapFlight(id ActorId, flight behavior.FlightBehavior) ActorId {
	return f.swap(id, func(actor *behavior.Actor) *behavior.Actor {
		return actor.WithFlight(flight)
	})
}

// SwapVocalization replaces the actor's vocalization capability and returns its new ID.
func (f *Flock) SwapVocalization(id ActorId, vocalization behavior.VocalizationBehavior) ActorId {
	return f.swap(id, func(actor *behavior.Actor) *behavior.Actor {
		return actor.WithVocalization(vocalization)
	})
}

func (f *Flock) swap(id ActorId, change func(*behavior.Actor) *behavior.Actor) ActorId {
	oldArchetype, ok := f.archetypes[id.ArchetypeId()]
	if !ok {
		return 0
	}
	member := oldArchetype.get(id.Index())
	if member == nil {
		return 0
	}

	swapped := *member
	swapped.Actor = change(member.Actor)

	if newArchId, _ := archetypeId(swapped.Actor); newArchId == oldArchetype.id {
		*member = swapped
		return id
	}

	weakPtr, hasRef := oldArchetype.refs.Get(id)
	if hasRef {
		oldArchetype.refs.Del(id)
	}
	oldArchetype.delete(id.Index())

	newId := f.place(swapped)
	newArchetype := f.archetypes[newId.ArchetypeId()]

	if hasRef {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = newId
			ref.Archetype = newArchetype
			newArchetype.refs.Put(newId, weakPtr)
		}
	}

	f.logger.Debug("swapped behavior",
		zap.String("name", swapped.Name),
		zap.Uint32("from_archetype", oldArchetype.id),
		zap.Uint32("to_archetype", newArchetype.id),
	)
	return newId
}

// Ref returns a stable reference to the actor, or nil if id is not live.
// Repeated calls for the same actor return the same reference while it is reachable.
func (f *Flock) Ref(id ActorId) *ActorRef {
	archetype := f.archetypes[id.ArchetypeId()]
	if archetype == nil || archetype.get(id.Index()) == nil {
		return nil
	}

	if weakPtr, ok := archetype.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		archetype.refs.Del(id)
	}

	ref := &ActorRef{Id: id, Archetype: archetype}
	archetype.refs.Put(id, weak.Make(ref))
	return ref
}

// Resolve returns the current ID behind ref, or false if the actor is gone.
func (f *Flock) Resolve(ref *ActorRef) (ActorId, bool) {
	if ref == nil || ref.Id == 0 {
		return 0, false
	}
	return ref.Id, true
}

// Invalidate detaches ref from its actor without deleting the actor.
func (f *Flock) Invalidate(ref *ActorRef) bool {
	if ref == nil || ref.Id == 0 {
		return false
	}

	if archetype := f.archetypes[ref.Id.ArchetypeId()]; archetype != nil {
		archetype.refs.Del(ref.Id)
	}

	ref.Id = 0
	ref.Archetype = nil
	return true
}

// Compact reorganizes every archetype to eliminate empty slots.
// IDs change; ActorRefs are updated to the new IDs.
func (f *Flock) Compact() {
	for _, archetype := range f.archetypes {
		archetype.compact()
	}
	f.logger.Debug("compacted flock", zap.Int("actors", f.Len()))
}

// Len returns the number of live actors.
func (f *Flock) Len() int {
	n := 0
	for _, archetype := range f.archetypes {
		n += archetype.Len()
	}
	return n
}

// Archetypes returns every archetype ordered by ID.
func (f *Flock) Archetypes() []*Archetype {
	archetypes := make([]*Archetype, 0, len(f.archetypes))
	for _, archetype := range f.archetypes {
		archetypes = append(archetypes, archetype)
	}
	slices.SortFunc(archetypes, func(a, b *Archetype) int {
		return cmp.Compare(a.id, b.id)
	})
	return archetypes
}

// All iterates every live actor in spawn order.
func (f *Flock) All() iter.Seq2[ActorId, *Member] {
	ids, members := gather(f.archetypes, nil)
	return func(yield func(ActorId, *Member) bool) {
		for i := range ids {
			if !yield(ids[i], members[i]) {
				return
			}
		}
	}
}

// gather collects the actors of matching archetypes sorted by spawn order.
func gather(archetypes map[uint32]*Archetype, match Matcher) ([]ActorId, []*Member) {
	type entry struct {
		id     ActorId
		member *Member
	}

	var entries []entry
	for _, archetype := range archetypes {
		if match != nil && !match(archetype) {
			continue
		}
		for id := range archetype.Iter() {
			entries = append(entries, entry{id: id, member: archetype.get(id.Index())})
		}
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.member.Seq, b.member.Seq)
	})

	ids := make([]ActorId, len(entries))
	members := make([]*Member, len(entries))
	for i, e := range entries {
		ids[i] = e.id
		members[i] = e.member
	}
	return ids, members
}
