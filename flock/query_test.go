package flock_test

import (
	"testing"

	"github.com/plus3/mallard/behavior"
	"github.com/plus3/mallard/flock"
	"github.com/stretchr/testify/assert"
)

func queryNames(q *flock.Query) []string {
	var out []string
	for _, member := range q.Iter() {
		out = append(out, member.Name)
	}
	return out
}

func TestQueryMatchers(t *testing.T) {
	f := flock.New(nil)
	f.Spawn("WildDuck", newActor(behavior.NormalFlight{}, behavior.LoudQuack{}))
	f.Spawn("RubberDuck", newActor(behavior.NoFlight, behavior.Squeak{}))
	f.Spawn("MountainDuck", newActor(behavior.HighFlight{}, behavior.LoudQuack{}))

	flyers := flock.NewQuery(f, flock.CanFly)
	grounded := flock.NewQuery(f, flock.Grounded)
	everyone := flock.NewQuery(f, nil)

	flyers.Execute()
	grounded.Execute()
	everyone.Execute()

	assert.Equal(t, []string{"WildDuck", "MountainDuck"}, queryNames(flyers))
	assert.Equal(t, []string{"RubberDuck"}, queryNames(grounded))
	assert.Equal(t, []string{"WildDuck", "RubberDuck", "MountainDuck"}, queryNames(everyone))
	assert.Equal(t, 3, everyone.Len())
}

func TestQueryPicksUpNewArchetypes(t *testing.T) {
	f := flock.New(nil)
	f.Spawn("WildDuck", newActor(behavior.NormalFlight{}, behavior.LoudQuack{}))

	flyers := flock.NewQuery(f, flock.CanFly)
	flyers.Execute()
	assert.Equal(t, []string{"WildDuck"}, queryNames(flyers))

	rubber := f.Spawn("RubberDuck", newActor(behavior.NoFlight, behavior.Squeak{}))
	f.SwapFlight(rubber, behavior.HighFlight{})

	flyers.Execute()
	assert.Equal(t, []string{"WildDuck", "RubberDuck"}, queryNames(flyers))
}

func TestQueryIterBeforeExecutePanics(t *testing.T) {
	f := flock.New(nil)
	q := flock.NewQuery(f, nil)

	assert.Panics(t, func() { q.Iter() })
	assert.Panics(t, func() { (&flock.Query{}).Execute() })
}
