package flock

import (
	"iter"
	"reflect"
	"slices"
	"sort"
	"weak"

	"github.com/kamstrup/intmap"
	"github.com/plus3/mallard/behavior"
)

// Member is an actor held by a Flock.
type Member struct {
	Name  string
	Seq   uint64 // spawn order, preserved across swaps
	Actor *behavior.Actor
}

// Archetype groups every actor that shares one behavior set, i.e. the same
// flight variant type (or none) and the same vocalization variant type.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	canFly  bool
	members slots[Member]
	refs    *intmap.Map[ActorId, weak.Pointer[ActorRef]]
}

// behaviorTypes returns the sorted variant types an actor is composed of.
// An actor without flight contributes only its vocalization type.
func behaviorTypes(actor *behavior.Actor) []reflect.Type {
	types := make([]reflect.Type, 0, 2)
	if actor.CanFly() {
		types = append(types, reflect.TypeOf(actor.Flight()))
	}
	types = append(types, reflect.TypeOf(actor.Vocalization()))
	sort.Sort(byTypeName(types))
	return types
}

// archetypeId derives the archetype ID for an actor's behavior set.
// Flight capability is mixed in so a type that implements both capability
// interfaces still separates flying and grounded actors.
func archetypeId(actor *behavior.Actor) (uint32, []reflect.Type) {
	types := behaviorTypes(actor)
	id := hashTypes(types)
	if !actor.CanFly() {
		id = ^id
	}
	return reserveZero(id), types
}

// reserveZero keeps archetype ID 0 free so that the zero ActorId is never
// handed out for a live actor.
func reserveZero(id uint32) uint32 {
	if id == 0 {
		return 1
	}
	return id
}

func newArchetype(id uint32, types []reflect.Type, canFly bool) *Archetype {
	return &Archetype{
		id:     id,
		types:  types,
		canFly: canFly,
		refs:   intmap.New[ActorId, weak.Pointer[ActorRef]](16),
	}
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted behavior variant types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// CanFly reports whether actors in this archetype have a flight capability.
func (a *Archetype) CanFly() bool {
	return a.canFly
}

// HasBehavior reports whether this archetype's actors use variant type t.
func (a *Archetype) HasBehavior(t reflect.Type) bool {
	return slices.Contains(a.types, t)
}

// Len returns the number of live actors in the archetype.
func (a *Archetype) Len() int {
	return a.members.len()
}

func (a *Archetype) spawn(member Member) uint32 {
	return uint32(a.members.append(member))
}

func (a *Archetype) get(index uint32) *Member {
	return a.members.get(int(index))
}

// delete empties the actor's slot and clears any reference still pointing at it.
func (a *Archetype) delete(index uint32) bool {
	id := NewActorId(a.id, index)

	if weakPtr, ok := a.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(id)
	}

	return a.members.delete(int(index))
}

// compact removes empty slots. References are re-pointed at the new indices
// and dead weak pointers are dropped.
func (a *Archetype) compact() {
	indexMap := a.members.compact()

	updated := make(map[ActorId]weak.Pointer[ActorRef], a.refs.Len())
	for oldIdx, newIdx := range indexMap {
		weakPtr, ok := a.refs.Get(NewActorId(a.id, uint32(oldIdx)))
		if !ok {
			continue
		}
		if ref := weakPtr.Value(); ref != nil {
			newId := NewActorId(a.id, uint32(newIdx))
			ref.Id = newId
			updated[newId] = weakPtr
		}
	}

	a.refs.Clear()
	for id, weakPtr := range updated {
		a.refs.Put(id, weakPtr)
	}
}

// Iter returns an iterator over all live ActorIds in this archetype in slot order
func (a *Archetype) Iter() iter.Seq[ActorId] {
	return func(yield func(ActorId) bool) {
		for index := range a.members.iter() {
			if !yield(NewActorId(a.id, uint32(index))) {
				return
			}
		}
	}
}
