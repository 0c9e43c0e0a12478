package engine

import (
	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// SolveSpacer sizes the spacer that sits against the given pivot housing.
// The lower spacer also spans the upper shaft overhang and the middle wheel
// shaft overhang below the middle wheel.
func SolveSpacer(s *params.Store, housing model.PivotHousing) (model.Spacer, error) {
	l := newLookup(s)

	var thickness float64
	if housing.Pivot == model.PivotUpper {
		thickness = l.get("middle_wheel_clearance")
	} else {
		thickness = l.get("upper_shaft_overhang") + l.get("middle_wheel_clearance") + l.get("middle_wheel_shaft_overhang")
	}
	if l.err != nil {
		return model.Spacer{}, l.err
	}

	return model.Spacer{
		Pivot:               housing.Pivot,
		OuterDiameter:       housing.HousingDiameter,
		InnerDiameter:       housing.BearingDiameter,
		Thickness:           thickness,
		BoltDiameter:        housing.HousingBoltDiameter,
		BoltPlacementRadius: housing.BoltPlacementRadius,
		NumBolts:            housing.NumBolts,
	}, nil
}
