package behavior

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// NoFlightName is the catalog name of the absent flight variant.
const NoFlightName = "none"

// Catalog maps variant names to behavior constructors so actors can be
// described as data. Each Catalog is independent of every other.
type Catalog struct {
	flights       map[string]func() FlightBehavior
	vocalizations map[string]func() VocalizationBehavior
	names         map[reflect.Type]string
}

// NewCatalog creates an empty catalog. Only the absent flight variant is known.
func NewCatalog() *Catalog {
	return &Catalog{
		flights:       make(map[string]func() FlightBehavior),
		vocalizations: make(map[string]func() VocalizationBehavior),
		names:         make(map[reflect.Type]string),
	}
}

// DefaultCatalog returns a catalog holding every built-in variant.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	RegisterFlight[NormalFlight](c, "normal")
	RegisterFlight[HighFlight](c, "high")
	RegisterVocalization[LoudQuack](c, "loud")
	RegisterVocalization[RapidQuack](c, "rapid")
	RegisterVocalization[Squeak](c, "squeak")
	return c
}

// RegisterFlight registers flight variant T under name.
// Registering a name twice replaces the earlier variant.
func RegisterFlight[T FlightBehavior](c *Catalog, name string) {
	name = normalize(name)
	if name == NoFlightName || name == "" {
		panic("flight variant name " + name + " is reserved")
	}
	c.flights[name] = func() FlightBehavior {
		var v T
		return v
	}
	c.names[reflect.TypeFor[T]()] = name
}

// RegisterVocalization registers vocalization variant T under name.
func RegisterVocalization[T VocalizationBehavior](c *Catalog, name string) {
	name = normalize(name)
	if name == "" {
		panic("vocalization variant name cannot be empty")
	}
	c.vocalizations[name] = func() VocalizationBehavior {
		var v T
		return v
	}
	c.names[reflect.TypeFor[T]()] = name
}

// Flight returns a new instance of the named flight variant.
// An empty name or "none" yields NoFlight.
func (c *Catalog) Flight(name string) (FlightBehavior, error) {
	name = normalize(name)
	if name == "" || name == NoFlightName {
		return NoFlight, nil
	}
	factory, ok := c.flights[name]
	if !ok {
		return nil, fmt.Errorf("flight %q: %w (known: %s)", name, ErrUnknownVariant, strings.Join(c.FlightNames(), ", "))
	}
	return factory(), nil
}

// Vocalization returns a new instance of the named vocalization variant.
func (c *Catalog) Vocalization(name string) (VocalizationBehavior, error) {
	name = normalize(name)
	factory, ok := c.vocalizations[name]
	if !ok {
		return nil, fmt.Errorf("vocalization %q: %w (known: %s)", name, ErrUnknownVariant, strings.Join(c.VocalizationNames(), ", "))
	}
	return factory(), nil
}

// Build composes an Actor from variant names.
func (c *Catalog) Build(flight, vocalization string) (*Actor, error) {
	f, err := c.Flight(flight)
	if err != nil {
		return nil, err
	}
	v, err := c.Vocalization(vocalization)
	if err != nil {
		return nil, err
	}
	return NewActor(f, v), nil
}

// Name returns the registered name of a behavior value.
// A nil flight behavior is reported as "none".
func (c *Catalog) Name(b any) string {
	if b == nil {
		return NoFlightName
	}
	if name, ok := c.names[reflect.TypeOf(b)]; ok {
		return name
	}
	return reflect.TypeOf(b).String()
}

// FlightNames lists the known flight variants, including "none".
func (c *Catalog) FlightNames() []string {
	names := make([]string, 0, len(c.flights)+1)
	for name := range c.flights {
		names = append(names, name)
	}
	names = append(names, NoFlightName)
	sort.Strings(names)
	return names
}

// VocalizationNames lists the known vocalization variants.
func (c *Catalog) VocalizationNames() []string {
	names := make([]string, 0, len(c.vocalizations))
	for name := range c.vocalizations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
