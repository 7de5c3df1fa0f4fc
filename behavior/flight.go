package behavior

// FlightBehavior is a flight capability an Actor can be composed with.
type FlightBehavior interface {
	Fly() string
}

// NoFlight marks an Actor as unable to fly.
// PerformFlight on such an Actor returns ErrCapabilityAbsent.
var NoFlight FlightBehavior

// NormalFlight flies at normal altitude.
type NormalFlight struct{}

func (NormalFlight) Fly() string { return "Flying normal" }

// HighFlight flies high.
type HighFlight struct{}

func (HighFlight) Fly() string { return "Flying high" }
