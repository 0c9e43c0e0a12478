/*
PURPOSE:
  Solves the steering mounts, the middle wheel mount and the differential
  clevis. All of them hang a linkage mount off a pivot housing.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/solve.go

ERROR HANDLING:
  - The first missing parameter is returned.

RELATED FILES:
  - internal/engine/pivot.go
*/

package engine

import (
	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// SteeringMountFilletFactor is the fraction of the neck height where the
// steering mount fillet arc starts.
const SteeringMountFilletFactor = 0.5

func linkageMount(h model.PivotHousing) model.LinkageMount {
	return model.LinkageMount{
		TongueLength:  h.LinkageMountTongueLength,
		ShoulderDepth: h.LinkageMountShoulderDepth,
		BoltDiameter:  h.LinkageMountBoltDiameter,
		BoltSpacing:   h.LinkageMountBoltSpacing,
	}
}

// SolveSteeringMount sizes a steering mount. The front mount takes the front
// rocker offset and angle with the upper housing; the rear mount takes zero
// for both with the lower housing.
func SolveSteeringMount(s *params.Store, steering model.Steering, offset, angle float64, housing model.PivotHousing) (model.SteeringMount, error) {
	l := newLookup(s)

	m := model.SteeringMount{
		Steering:       steering,
		NeckHeight:     l.get(neckHeightNames[steering]),
		ArmLength:      l.get("linkage_mount_base_length") + housing.LinkageMountTongueLength + offset,
		Angle:          angle,
		Width:          l.get("linkage_width"),
		MountThickness: l.get("linkage_thickness"),
		Mount:          linkageMount(housing),
	}
	if l.err != nil {
		return model.SteeringMount{}, l.err
	}
	m.ArcStartHeight = SteeringMountFilletFactor * m.NeckHeight

	return m, nil
}

// SolveMiddleWheelMount collects the middle wheel mount dimensions from the
// parameters and the lower pivot housing.
func SolveMiddleWheelMount(s *params.Store, housing model.PivotHousing) (model.MiddleWheelMount, error) {
	l := newLookup(s)

	m := model.MiddleWheelMount{
		ShaftDiameter:          l.quantity("middle_wheel_shaft_diameter"),
		ShaftLength:            l.quantity("middle_wheel_shaft_length"),
		ShaftOverhang:          l.quantity("middle_wheel_shaft_overhang"),
		WheelDiameter:          l.quantity("wheel_diameter"),
		WheelThickness:         l.quantity("wheel_thickness"),
		LinkageThickness:       l.quantity("linkage_thickness"),
		LinkageWidth:           l.quantity("linkage_width"),
		LinkageMountBaseLength: housing.LinkageMountBaseLength,
		Mount:                  linkageMount(housing),
	}
	if l.err != nil {
		return model.MiddleWheelMount{}, l.err
	}
	return m, nil
}

// SolveDifferentialClevis sizes the clevis bolted to the upper pivot housing.
// Its bolts sit on the bisector of the linkage separation angle.
func SolveDifferentialClevis(s *params.Store, housing model.PivotHousing) (model.DifferentialClevis, error) {
	l := newLookup(s)

	c := model.DifferentialClevis{
		OuterDiameter:       housing.HousingDiameter,
		InnerDiameter:       housing.BearingDiameter,
		BoltPlacementRadius: housing.BoltPlacementRadius,
		BoltPlacementAngle:  housing.LinkageSeparationAngle / 2,
		BoltDiameter:        housing.HousingBoltDiameter,
		NumBolts:            l.count(pivotNames[model.PivotUpper].numBolts),
	}
	if l.err != nil {
		return model.DifferentialClevis{}, l.err
	}
	return c, nil
}
