/*
PURPOSE:
  Defines the core data structures shared across bogie-sizer.
  Dimensions, the Table contract, and the variant enums used to select
  upper/lower, front/rear and pivot/linkage behavior.

REQUIREMENTS:
  User-specified:
  - Every output artifact is a named table of (name, value, unit) records.
  - Units are informational tags only.

  Implementation-discovered:
  - Record names must match the original CAD parameter names exactly.
  - Need json/yaml/toml tags for the alternate output formats.

ARCHITECTURE INTEGRATION:
  - Used by: internal/params, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Variants are typed ints, never string prefixes.

USAGE:
  d := model.Dimension{Name: "length", Value: 42, Unit: model.MM}

SELF-HEALING INSTRUCTIONS:
  - If a new table is needed, add a struct in tables.go implementing Table.

RELATED FILES:
  - internal/model/tables.go
  - internal/output/sink.go

MAINTENANCE:
  - Update when adding new variants or output fields.
*/

package model

// MM is the unit tag for every length the solvers produce.
const MM = "mm"

// Dimension is a single named output value.
type Dimension struct {
	Name  string  `json:"name" yaml:"name" toml:"name"`
	Value float64 `json:"value" yaml:"value" toml:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty" toml:"unit,omitempty"`
}

// Quantity is a value that keeps the unit it was loaded with.
type Quantity struct {
	Value float64
	Unit  string
}

// Table is one persisted output artifact.
type Table interface {
	Name() string
	Dimensions() []Dimension
}

// Pivot selects one of the two pivot housings and everything mounted on it.
type Pivot int

const (
	PivotUpper Pivot = iota
	PivotLower
)

func (p Pivot) String() string {
	if p == PivotUpper {
		return "upper"
	}
	return "lower"
}

// Steering selects the front or rear steering mount.
type Steering int

const (
	SteeringFront Steering = iota
	SteeringRear
)

func (s Steering) String() string {
	if s == SteeringFront {
		return "front"
	}
	return "rear"
}

// BoltKind selects the pivot housing bolts or the linkage mount bolts.
type BoltKind int

const (
	BoltPivot BoltKind = iota
	BoltLinkage
)

func (b BoltKind) String() string {
	if b == BoltPivot {
		return "pivot"
	}
	return "linkage"
}

// LinkageKind identifies one of the four suspension linkages.
type LinkageKind int

const (
	FrontRocker LinkageKind = iota
	RearRocker
	MiddleBogie
	RearBogie
)

func (k LinkageKind) String() string {
	switch k {
	case FrontRocker:
		return "front_rocker"
	case RearRocker:
		return "rear_rocker"
	case MiddleBogie:
		return "middle_bogie"
	default:
		return "rear_bogie"
	}
}
