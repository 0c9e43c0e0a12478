package engine

import (
	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

func shaftStock(l *lookup, pivot model.Pivot) model.ShaftStock {
	names := pivotNames[pivot]
	return model.ShaftStock{
		Diameter:             l.get(names.shaftDiameter),
		RetRingInnerDiameter: l.get(names.retRingInnerDiameter),
		RetRingThickness:     l.get(names.retRingThickness),
	}
}

// SolveUpperShaft places the retention rings along one half of the upper
// shaft, from the frame wall outwards. The shaft is symmetric about the frame.
func SolveUpperShaft(s *params.Store, upperSpacerThickness float64) (model.UpperShaft, error) {
	l := newLookup(s)

	frameClearance := l.get("upper_shaft_frame_clearance")
	ring1 := frameClearance + l.get("swingarm_thickness")
	ring2 := ring1 + 2*l.get("linkage_thickness") + upperSpacerThickness
	ref := ring2 + l.get("upper_shaft_overhang")

	stock := shaftStock(l, model.PivotUpper)
	shaft := model.UpperShaft{
		ShaftStock:         stock,
		InnerDiameter:      stock.RetRingInnerDiameter - 2*l.get("upper_shaft_min_wall_thickness"),
		FrameWidth:         l.quantity("frame_width"),
		FrameWallThickness: l.quantity("frame_wall_thickness"),
		RetRingPos:         [2]float64{ring1, ring2},
		RefLength:          ref,
		MinBoltLength:      ring2 - frameClearance,
	}
	if l.err != nil {
		return model.UpperShaft{}, l.err
	}
	shaft.Length = 2*ref + shaft.FrameWidth.Value

	return shaft, nil
}

// SolveLowerShaft places the four retention rings along the lower shaft.
func SolveLowerShaft(s *params.Store, upperSpacerThickness, lowerSpacerThickness float64) (model.LowerShaft, error) {
	l := newLookup(s)

	overhang := l.get("lower_shaft_overhang")
	linkage := l.get("linkage_thickness")
	ring1 := overhang
	ring2 := ring1 + linkage
	ring3 := ring2 + upperSpacerThickness
	ring4 := ring3 + 2*linkage + lowerSpacerThickness

	shaft := model.LowerShaft{
		ShaftStock:    shaftStock(l, model.PivotLower),
		RetRingPos:    [4]float64{ring1, ring2, ring3, ring4},
		Length:        ring4 + overhang,
		MinBoltLength: ring4 - ring3,
	}
	if l.err != nil {
		return model.LowerShaft{}, l.err
	}

	return shaft, nil
}
