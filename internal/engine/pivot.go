package engine

import (
	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// BoltSpacingFactor scales the linkage mount bolt diameter into the
// spacing between mount bolts.
const BoltSpacingFactor = 1

// PivotHousingDiameter returns the outer diameter of a pivot housing:
// the bearing plus a ring of housing bolts with a wall on either side.
func PivotHousingDiameter(s *params.Store, pivot model.Pivot) (float64, error) {
	l := newLookup(s)
	d := housingDiameter(l, pivot)
	return d, l.err
}

func housingDiameter(l *lookup, pivot model.Pivot) float64 {
	return l.get(pivotNames[pivot].bearingDiameter) +
		2*(l.get("pivot_housing_bolt_diameter")+2*l.get("pivot_housing_min_wall_thickness"))
}

// SolvePivotHousing sizes a pivot housing shared by two linkages meeting at
// the given interior angles. The separation angle is not clamped and goes
// negative when the angles sum past 180.
func SolvePivotHousing(s *params.Store, pivot model.Pivot, angle1, angle2 float64) (model.PivotHousing, error) {
	l := newLookup(s)
	names := pivotNames[pivot]

	h := model.PivotHousing{
		Pivot:                         pivot,
		HousingDiameter:               housingDiameter(l, pivot),
		HousingThickness:              l.get("linkage_thickness"),
		BearingDiameter:               l.get(names.bearingDiameter),
		BearingOuterRaceInnerDiameter: l.get(names.bearingOuterRaceInnerDiameter),
		BearingThickness:              l.get(names.bearingThickness),
		HousingMinWallThickness:       l.get("pivot_housing_min_wall_thickness"),
		HousingBoltDiameter:           l.get("pivot_housing_bolt_diameter"),
		LinkageSeparationAngle:        180 - (angle1 + angle2),
		NumBolts:                      l.count(names.numBolts),
		LinkageMountBaseWidth:         l.get("linkage_width"),
		LinkageMountBaseLength:        l.get("linkage_mount_base_length"),
		LinkageMountShoulderDepth:     l.get("linkage_wall_thickness"),
		LinkageMountBoltDiameter:      l.get("linkage_mount_bolt_diameter"),
	}
	if l.err != nil {
		return model.PivotHousing{}, l.err
	}

	h.BoltPlacementRadius = h.BearingDiameter/2 + h.HousingMinWallThickness + h.HousingBoltDiameter/2
	h.LinkageMountBoltSpacing = BoltSpacingFactor * h.LinkageMountBoltDiameter
	// Sized for two mount bolts only.
	h.LinkageMountTongueLength = 3*h.LinkageMountBoltSpacing + 2*h.LinkageMountBoltDiameter

	return h, nil
}
