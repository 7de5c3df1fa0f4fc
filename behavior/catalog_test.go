package behavior_test

import (
	"testing"

	"github.com/plus3/mallard/behavior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Honk struct{}

func (Honk) Vocalize() string { return "Honk" }

type Glide struct{}

func (Glide) Fly() string { return "Gliding" }

func TestDefaultCatalog(t *testing.T) {
	catalog := behavior.DefaultCatalog()

	assert.Equal(t, []string{"high", "none", "normal"}, catalog.FlightNames())
	assert.Equal(t, []string{"loud", "rapid", "squeak"}, catalog.VocalizationNames())

	actor, err := catalog.Build("High", " loud ")
	require.NoError(t, err)
	got, err := actor.PerformFlight()
	require.NoError(t, err)
	assert.Equal(t, "Flying high", got)
	assert.Equal(t, "Quacking loud", actor.PerformVocalization())
}

func TestCatalogNoFlight(t *testing.T) {
	catalog := behavior.DefaultCatalog()

	for _, name := range []string{"", "none", "NONE"} {
		flight, err := catalog.Flight(name)
		require.NoError(t, err)
		assert.Nil(t, flight)
	}

	actor, err := catalog.Build("none", "squeak")
	require.NoError(t, err)
	assert.False(t, actor.CanFly())
}

func TestCatalogUnknownVariants(t *testing.T) {
	catalog := behavior.DefaultCatalog()

	_, err := catalog.Flight("sideways")
	assert.ErrorIs(t, err, behavior.ErrUnknownVariant)
	assert.Contains(t, err.Error(), "high, none, normal")

	_, err = catalog.Vocalization("")
	assert.ErrorIs(t, err, behavior.ErrUnknownVariant)

	_, err = catalog.Build("normal", "moo")
	assert.ErrorIs(t, err, behavior.ErrUnknownVariant)
}

func TestCatalogRegisterCustomVariants(t *testing.T) {
	catalog := behavior.NewCatalog()
	behavior.RegisterFlight[Glide](catalog, "glide")
	behavior.RegisterVocalization[Honk](catalog, "honk")

	actor, err := catalog.Build("glide", "honk")
	require.NoError(t, err)
	got, err := actor.PerformFlight()
	require.NoError(t, err)
	assert.Equal(t, "Gliding", got)
	assert.Equal(t, "Honk", actor.PerformVocalization())

	// Catalogs are independent.
	_, err = behavior.DefaultCatalog().Vocalization("honk")
	assert.ErrorIs(t, err, behavior.ErrUnknownVariant)

	assert.Panics(t, func() { behavior.RegisterFlight[Glide](catalog, "none") })
	assert.Panics(t, func() { behavior.RegisterVocalization[Honk](catalog, " ") })
}

func TestCatalogName(t *testing.T) {
	catalog := behavior.DefaultCatalog()

	assert.Equal(t, "normal", catalog.Name(behavior.NormalFlight{}))
	assert.Equal(t, "rapid", catalog.Name(behavior.RapidQuack{}))
	assert.Equal(t, "none", catalog.Name(nil))
	assert.Equal(t, "behavior_test.Honk", catalog.Name(Honk{}))
}
