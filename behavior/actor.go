package behavior

// Actor is an entity whose behavior is defined entirely by the capabilities
// it was composed with. An Actor is immutable; use WithFlight or
// WithVocalization to derive one with a different capability.
type Actor struct {
	flight       FlightBehavior
	vocalization VocalizationBehavior
}

// NewActor composes an Actor from a flight and a vocalization capability.
// flight may be NoFlight. vocalization is mandatory and NewActor panics when
// it is nil.
func NewActor(flight FlightBehavior, vocalization VocalizationBehavior) *Actor {
	if vocalization == nil {
		panic("cannot create actor without a vocalization behavior")
	}
	return &Actor{
		flight:       flight,
		vocalization: vocalization,
	}
}

// CanFly reports whether the Actor has a flight capability.
func (a *Actor) CanFly() bool {
	return a.flight != nil
}

// PerformFlight delegates to the Actor's flight behavior.
// Actors without one return a *CapabilityError wrapping ErrCapabilityAbsent.
func (a *Actor) PerformFlight() (string, error) {
	if a.flight == nil {
		return "", &CapabilityError{Capability: "flight"}
	}
	return a.flight.Fly(), nil
}

// PerformVocalization delegates to the Actor's vocalization behavior.
func (a *Actor) PerformVocalization() string {
	return a.vocalization.Vocalize()
}

// Flight returns the flight behavior, or NoFlight.
func (a *Actor) Flight() FlightBehavior {
	return a.flight
}

// Vocalization returns the vocalization behavior.
func (a *Actor) Vocalization() VocalizationBehavior {
	return a.vocalization
}

// WithFlight returns a new Actor sharing a's vocalization but using flight.
func (a *Actor) WithFlight(flight FlightBehavior) *Actor {
	return NewActor(flight, a.vocalization)
}

// WithVocalization returns a new Actor sharing a's flight but using vocalization.
func (a *Actor) WithVocalization(vocalization VocalizationBehavior) *Actor {
	return NewActor(a.flight, vocalization)
}
