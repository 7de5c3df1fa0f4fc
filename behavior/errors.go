package behavior

import (
	"errors"
	"fmt"
)

var (
	// ErrCapabilityAbsent is returned when an Actor is asked to use a capability
	// it was constructed without.
	ErrCapabilityAbsent = errors.New("capability absent")

	// ErrUnknownVariant is returned by a Catalog for names it has no variant for.
	ErrUnknownVariant = errors.New("unknown behavior variant")
)

// CapabilityError reports which capability was missing.
type CapabilityError struct {
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCapabilityAbsent, e.Capability)
}

func (e *CapabilityError) Unwrap() error {
	return ErrCapabilityAbsent
}
