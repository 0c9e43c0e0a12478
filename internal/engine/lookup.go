package engine

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// lookup reads parameters from a Store and keeps the first error.
// Once an error is recorded every read returns the zero value.
type lookup struct {
	store *params.Store
	err   error
}

func newLookup(s *params.Store) *lookup {
	return &lookup{store: s}
}

func (l *lookup) get(name string) float64 {
	if l.err != nil {
		return 0
	}
	v, err := l.store.Value(name)
	if err != nil {
		l.err = err
	}
	return v
}

func (l *lookup) quantity(name string) model.Quantity {
	if l.err != nil {
		return model.Quantity{}
	}
	q, err := l.store.Quantity(name)
	if err != nil {
		l.err = err
	}
	return q
}

// count reads a parameter that must hold a whole number.
func (l *lookup) count(name string) int {
	v := l.get(name)
	if l.err != nil {
		return 0
	}
	n, err := safecast.Convert[int](v)
	if err != nil {
		l.err = fmt.Errorf("%q must be a whole number, got %v: %w", name, v, err)
	}
	return n
}

// pivotParams names the parameters that differ between the two pivots.
type pivotParams struct {
	bearingDiameter               string
	bearingOuterRaceInnerDiameter string
	bearingThickness              string
	numBolts                      string
	shaftDiameter                 string
	retRingInnerDiameter          string
	retRingThickness              string
}

var pivotNames = map[model.Pivot]pivotParams{
	model.PivotUpper: {
		bearingDiameter:               "upper_bearing_diameter",
		bearingOuterRaceInnerDiameter: "upper_bearing_outer_race_inner_diameter",
		bearingThickness:              "upper_bearing_thickness",
		numBolts:                      "upper_pivot_housing_num_bolts",
		shaftDiameter:                 "upper_shaft_diameter",
		retRingInnerDiameter:          "upper_ret_ring_inner_diameter",
		retRingThickness:              "upper_ret_ring_thickness",
	},
	model.PivotLower: {
		bearingDiameter:               "lower_bearing_diameter",
		bearingOuterRaceInnerDiameter: "lower_bearing_outer_race_inner_diameter",
		bearingThickness:              "lower_bearing_thickness",
		numBolts:                      "lower_pivot_housing_num_bolts",
		shaftDiameter:                 "lower_shaft_diameter",
		retRingInnerDiameter:          "lower_ret_ring_inner_diameter",
		retRingThickness:              "lower_ret_ring_thickness",
	},
}

var neckHeightNames = map[model.Steering]string{
	model.SteeringFront: "front_steering_mount_neck_height",
	model.SteeringRear:  "rear_steering_mount_neck_height",
}

var boltDiameterNames = map[model.BoltKind]string{
	model.BoltPivot:   "pivot_housing_bolt_diameter",
	model.BoltLinkage: "linkage_mount_bolt_diameter",
}
