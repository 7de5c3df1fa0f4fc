package flock_test

import (
	"io"
	"testing"

	"github.com/plus3/mallard/behavior"
	"github.com/plus3/mallard/flock"
)

func BenchmarkSpawn(b *testing.B) {
	f := flock.New(nil)
	actor := behavior.NewActor(behavior.NormalFlight{}, behavior.LoudQuack{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Spawn("duck", actor)
	}
}

func BenchmarkDelete(b *testing.B) {
	f := flock.New(nil)
	actor := behavior.NewActor(behavior.NormalFlight{}, behavior.LoudQuack{})

	ids := make([]flock.ActorId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = f.Spawn("duck", actor)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Delete(ids[i])
	}
}

func BenchmarkSwapFlight(b *testing.B) {
	f := flock.New(nil)
	id := f.Spawn("duck", behavior.NewActor(behavior.NormalFlight{}, behavior.LoudQuack{}))
	flights := []behavior.FlightBehavior{behavior.HighFlight{}, behavior.NoFlight, behavior.NormalFlight{}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id = f.SwapFlight(id, flights[i%len(flights)])
	}
}

func BenchmarkRollCall(b *testing.B) {
	f := flock.New(nil)
	for i := 0; i < 1000; i++ {
		switch i % 3 {
		case 0:
			f.Spawn("wild", behavior.NewActor(behavior.NormalFlight{}, behavior.LoudQuack{}))
		case 1:
			f.Spawn("mountain", behavior.NewActor(behavior.HighFlight{}, behavior.LoudQuack{}))
		default:
			f.Spawn("rubber", behavior.NewActor(behavior.NoFlight, behavior.Squeak{}))
		}
	}

	show := flock.NewShow(f, io.Discard, nil)
	show.Register(&flock.RollCall{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := show.Once(); err != nil {
			b.Fatal(err)
		}
	}
}
