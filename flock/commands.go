package flock

import "github.com/plus3/mallard/behavior"

// Commands buffers flock changes requested while an Act is performing.
// They are applied when the Show flushes them at the end of a round.
type Commands struct {
	spawns  []spawnCommand
	deletes []ActorId
	swaps   []swapCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	name  string
	actor *behavior.Actor
}

type swapCommand struct {
	id           ActorId
	flight       behavior.FlightBehavior
	vocalization behavior.VocalizationBehavior
	isFlight     bool
}

// Defer queues a function to run after all other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an actor spawn.
func (c *Commands) Spawn(name string, actor *behavior.Actor) {
	c.spawns = append(c.spawns, spawnCommand{name: name, actor: actor})
}

// Delete queues an actor deletion.
func (c *Commands) Delete(id ActorId) {
	c.deletes = append(c.deletes, id)
}

// SwapFlight queues a flight capability swap.
func (c *Commands) SwapFlight(id ActorId, flight behavior.FlightBehavior) {
	c.swaps = append(c.swaps, swapCommand{id: id, flight: flight, isFlight: true})
}

// SwapVocalization queues a vocalization capability swap.
func (c *Commands) SwapVocalization(id ActorId, vocalization behavior.VocalizationBehavior) {
	c.swaps = append(c.swaps, swapCommand{id: id, vocalization: vocalization})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.swaps) + len(c.defers)
}

// Flush applies all queued commands to f in the order deletes, swaps,
// spawns, defers, and resets the buffer. Swaps of deleted actors are
// dropped. Later swaps of the same actor follow it to its new ID.
func (c *Commands) Flush(f *Flock) {
	deleted := make(map[ActorId]bool)
	for _, id := range c.deletes {
		f.Delete(id)
		deleted[id] = true
	}

	moved := make(map[ActorId]ActorId)
	for _, cmd := range c.swaps {
		if deleted[cmd.id] {
			continue
		}
		id := cmd.id
		if current, ok := moved[id]; ok {
			id = current
		}

		var newId ActorId
		if cmd.isFlight {
			newId = f.SwapFlight(id, cmd.flight)
		} else {
			newId = f.SwapVocalization(id, cmd.vocalization)
		}
		if newId != 0 {
			moved[cmd.id] = newId
		}
	}

	for _, cmd := range c.spawns {
		f.Spawn(cmd.name, cmd.actor)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.swaps = c.swaps[:0]
	c.defers = c.defers[:0]
}
