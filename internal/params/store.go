/*
PURPOSE:
  Holds the base parameters of a suspension design.
  Provides an immutable name -> value lookup consumed by every solver.

REQUIREMENTS:
  User-specified:
  - Lookups fail loudly when a name is absent. No default substitution.
  - A few base parameters are derived from others once, at start.

  Implementation-discovered:
  - Derived values are applied as a second immutable Store (Derive),
    never by mutating the loaded one.
  - Units are carried through for tables that copy parameters verbatim.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/cli
  - Loaded by: internal/params/loader.go

ERROR HANDLING:
  - Missing names return an error wrapping ErrNotFound.

IMPLEMENTATION RULES:
  - Never expose the underlying map.
  - Store methods must be safe to call on a shared Store (read only).

USAGE:
  base, err := params.Load("Parameters.csv")
  store, err := base.Derive()
  v, err := store.Value("rover_width")

SELF-HEALING INSTRUCTIONS:
  - If a new derived parameter is needed, add it to Derive().

RELATED FILES:
  - internal/params/loader.go
  - internal/engine/lookup.go

MAINTENANCE:
  - Update Derive() when the design adds dependent base values.
*/

package params

import (
	"errors"
	"fmt"
	"sort"

	"github.com/daryltucker/bogie-sizer/internal/model"
)

// ErrNotFound is returned when a parameter name is not in the Store.
var ErrNotFound = errors.New("parameter not found")

// Parameter is one named base value.
type Parameter struct {
	Name  string
	Value float64
	Unit  string
}

// Store is an immutable set of parameters keyed by name.
type Store struct {
	params map[string]Parameter
}

// New builds a Store. Later entries replace earlier ones with the same name.
func New(ps ...Parameter) *Store {
	m := make(map[string]Parameter, len(ps))
	for _, p := range ps {
		m[p.Name] = p
	}
	return &Store{params: m}
}

// FromValues builds a Store where every value is tagged in millimeters.
func FromValues(values map[string]float64) *Store {
	m := make(map[string]Parameter, len(values))
	for name, v := range values {
		m[name] = Parameter{Name: name, Value: v, Unit: model.MM}
	}
	return &Store{params: m}
}

// Get returns the named parameter.
func (s *Store) Get(name string) (Parameter, error) {
	p, ok := s.params[name]
	if !ok {
		return Parameter{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return p, nil
}

// Value returns the numeric value of the named parameter.
func (s *Store) Value(name string) (float64, error) {
	p, err := s.Get(name)
	return p.Value, err
}

// Quantity returns the named parameter with the unit it was loaded with.
func (s *Store) Quantity(name string) (model.Quantity, error) {
	p, err := s.Get(name)
	return model.Quantity{Value: p.Value, Unit: p.Unit}, err
}

// Len returns the number of parameters.
func (s *Store) Len() int { return len(s.params) }

// Names returns all parameter names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.params))
	for name := range s.params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a new Store with the given parameters overlaid.
func (s *Store) With(overlay ...Parameter) *Store {
	m := make(map[string]Parameter, len(s.params)+len(overlay))
	for name, p := range s.params {
		m[name] = p
	}
	for _, p := range overlay {
		m[p.Name] = p
	}
	return &Store{params: m}
}

// Derive returns a new Store with the dependent base parameters computed
// from the loaded ones. Derived values always replace loaded ones.
func (s *Store) Derive() (*Store, error) {
	boltDiameter, err := s.Value("pivot_housing_bolt_diameter")
	if err != nil {
		return nil, fmt.Errorf("deriving base parameters: %w", err)
	}
	linkageWidth, err := s.Value("linkage_width")
	if err != nil {
		return nil, fmt.Errorf("deriving base parameters: %w", err)
	}

	return s.With(
		Parameter{Name: "pivot_housing_min_wall_thickness", Value: boltDiameter, Unit: model.MM},
		Parameter{Name: "front_steering_mount_neck_height", Value: linkageWidth, Unit: model.MM},
		Parameter{Name: "rear_steering_mount_neck_height", Value: linkageWidth / 2, Unit: model.MM},
	), nil
}
