package flock_test

import (
	"testing"

	"github.com/plus3/mallard/behavior"
	"github.com/plus3/mallard/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorRef(t *testing.T) {
	f := flock.New(nil)
	id := f.Spawn("WildDuck", newActor(behavior.NormalFlight{}, behavior.LoudQuack{}))

	ref := f.Ref(id)
	require.NotNil(t, ref)
	assert.Same(t, ref, f.Ref(id))

	resolved, ok := f.Resolve(ref)
	require.True(t, ok)
	assert.Equal(t, id, resolved)

	assert.Nil(t, f.Ref(flock.NewActorId(id.ArchetypeId(), 7)))
	_, ok = f.Resolve(nil)
	assert.False(t, ok)
}

func TestActorRefFollowsSwap(t *testing.T) {
	f := flock.New(nil)
	id := f.Spawn("WildDuck", newActor(behavior.NormalFlight{}, behavior.LoudQuack{}))
	ref := f.Ref(id)

	newId := f.SwapFlight(id, behavior.HighFlight{})

	resolved, ok := f.Resolve(ref)
	require.True(t, ok)
	assert.Equal(t, newId, resolved)
	assert.Equal(t, newId.ArchetypeId(), ref.Archetype.ID())
	assert.Same(t, ref, f.Ref(newId))
}

func TestActorRefFollowsCompact(t *testing.T) {
	f := flock.New(nil)
	first := f.Spawn("a", newActor(behavior.NormalFlight{}, behavior.LoudQuack{}))
	second := f.Spawn("b", newActor(behavior.NormalFlight{}, behavior.LoudQuack{}))
	ref := f.Ref(second)

	f.Delete(first)
	f.Compact()

	resolved, ok := f.Resolve(ref)
	require.True(t, ok)
	assert.Equal(t, uint32(0), resolved.Index())

	member, ok := f.Get(resolved)
	require.True(t, ok)
	assert.Equal(t, "b", member.Name)
}

func TestActorRefClearedOnDelete(t *testing.T) {
	f := flock.New(nil)
	id := f.Spawn("WildDuck", newActor(behavior.NormalFlight{}, behavior.LoudQuack{}))
	ref := f.Ref(id)

	f.Delete(id)

	_, ok := f.Resolve(ref)
	assert.False(t, ok)
	assert.Nil(t, ref.Archetype)
}

func TestInvalidateActorRef(t *testing.T) {
	f := flock.New(nil)
	id := f.Spawn("WildDuck", newActor(behavior.NormalFlight{}, behavior.LoudQuack{}))
	ref := f.Ref(id)

	assert.True(t, f.Invalidate(ref))
	assert.False(t, f.Invalidate(ref))

	_, ok := f.Resolve(ref)
	assert.False(t, ok)

	// The actor itself is still there and gets a fresh reference.
	_, ok = f.Get(id)
	assert.True(t, ok)
	fresh := f.Ref(id)
	assert.NotSame(t, ref, fresh)
}
