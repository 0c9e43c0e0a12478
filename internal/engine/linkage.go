/*
PURPOSE:
  Solves the four suspension linkages: front rocker, rear rocker, middle
  bogie and rear bogie. Each linkage is an incline between two pivots,
  shortened by the housings and mounts at its ends.

REQUIREMENTS:
  User-specified:
  - Angle and length come from atan2/hypot over a height and a width.

  Implementation-discovered:
  - The front rocker offset is needed again by the front steering mount.
  - The rear rocker subtracts half the linkage width where the front rocker
    uses the neck height. This matches the original sheet and is kept.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/solve.go
  - Reads: internal/params.Store

ERROR HANDLING:
  - The first missing parameter is returned.
  - Non-positive lengths are logged as warnings, not rejected.

IMPLEMENTATION RULES:
  - Angles are in degrees.

USAGE:
  links, err := engine.SolveLinkages(store)

SELF-HEALING INSTRUCTIONS:
  - A negative length usually means the rover is too short for its wheels.

RELATED FILES:
  - internal/engine/pivot.go
  - internal/model/tables.go

MAINTENANCE:
  - None.
*/

package engine

import (
	"math"

	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/output"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// AngleAndLength returns the incline in degrees and the length of the
// hypotenuse spanning a height over a width.
func AngleAndLength(height, width float64) (angle, extended float64) {
	return degrees(math.Atan2(height, width)), math.Hypot(height, width)
}

// FrontRocker solves the rocker between the upper pivot and the front
// steering mount. Its Offset is the projection of the linkage width onto
// the mitred joint and is reused by the front steering mount.
func FrontRocker(s *params.Store) (model.Linkage, error) {
	l := newLookup(s)

	height := (l.get("ground_clearance") + 0.5*l.get("frame_height")) -
		(l.get("corner_wheel_asm_height") + l.get("steering_asm_height") + l.get("front_steering_mount_neck_height"))
	width := 0.5 * (l.get("rover_length") - l.get("wheel_diameter"))
	angle, extended := AngleAndLength(height, width)

	alpha := radians((angle + 90) / 2)
	offset := l.get("linkage_width") / (2 * math.Tan(alpha))
	length := extended - (housingDiameter(l, model.PivotUpper)/2 + 2*l.get("linkage_mount_base_length") + offset)
	if l.err != nil {
		return model.Linkage{}, l.err
	}

	return model.Linkage{Kind: model.FrontRocker, Length: length, Angle: angle, Offset: offset}, nil
}

// RearRocker solves the rocker between the upper and lower pivots.
func RearRocker(s *params.Store) (model.Linkage, error) {
	l := newLookup(s)

	// Unlike the front rocker, half the linkage width is included here.
	height := (l.get("ground_clearance") + 0.5*l.get("frame_height")) -
		(l.get("corner_wheel_asm_height") + l.get("steering_asm_height") +
			l.get("rear_steering_mount_neck_height") + l.get("linkage_width")/2)
	width := l.get("rover_length") / 4
	angle, extended := AngleAndLength(height, width)

	length := extended - (housingDiameter(l, model.PivotUpper)/2 +
		housingDiameter(l, model.PivotLower)/2 +
		2*l.get("linkage_mount_base_length"))
	if l.err != nil {
		return model.Linkage{}, l.err
	}

	return model.Linkage{Kind: model.RearRocker, Length: length, Angle: angle}, nil
}

// MiddleBogie solves the bogie arm from the lower pivot down to the
// middle wheel shaft.
func MiddleBogie(s *params.Store) (model.Linkage, error) {
	l := newLookup(s)

	height := l.get("corner_wheel_asm_height") + l.get("steering_asm_height") +
		l.get("rear_steering_mount_neck_height") + l.get("linkage_width")/2 -
		l.get("wheel_diameter")/2
	width := l.get("rover_length") / 4
	angle, extended := AngleAndLength(height, width)

	length := extended - (housingDiameter(l, model.PivotLower)/2 +
		l.get("middle_wheel_shaft_diameter")/2 +
		2*l.get("linkage_mount_base_length"))
	if l.err != nil {
		return model.Linkage{}, l.err
	}

	return model.Linkage{Kind: model.MiddleBogie, Length: length, Angle: angle}, nil
}

// RearBogie solves the horizontal bogie arm from the lower pivot to the
// rear steering mount.
func RearBogie(s *params.Store) (model.Linkage, error) {
	l := newLookup(s)

	width := l.get("rover_length") / 4
	length := width - (housingDiameter(l, model.PivotLower)/2 +
		l.get("wheel_diameter")/2 +
		l.get("linkage_width")/2 +
		2*l.get("linkage_mount_base_length"))
	if l.err != nil {
		return model.Linkage{}, l.err
	}

	return model.Linkage{Kind: model.RearBogie, Length: length, Angle: 0}, nil
}

// SolveLinkages solves all four linkages and the shared linkage stock.
// Non-positive lengths are logged and returned unchanged.
func SolveLinkages(s *params.Store) (model.Linkages, error) {
	solvers := []func(*params.Store) (model.Linkage, error){FrontRocker, RearRocker, MiddleBogie, RearBogie}

	linkages := make([]model.Linkage, 0, len(solvers))
	for _, solve := range solvers {
		lk, err := solve(s)
		if err != nil {
			return model.Linkages{}, err
		}
		if lk.Length <= 0 {
			output.Logger.Warn("Linkage length is not positive, check input geometry", "linkage", lk.Kind, "length", lk.Length)
		}
		linkages = append(linkages, lk)
	}

	l := newLookup(s)
	boltDiameter := l.get("linkage_mount_bolt_diameter")
	result := model.Linkages{
		Thickness:     l.get("linkage_thickness"),
		Width:         l.get("linkage_width"),
		WallThickness: l.get("linkage_wall_thickness"),
		BoltDiameter:  boltDiameter,
		BoltSpacing:   BoltSpacingFactor * boltDiameter,
		Linkages:      linkages,
	}
	if l.err != nil {
		return model.Linkages{}, l.err
	}
	return result, nil
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func radians(deg float64) float64 { return deg * math.Pi / 180 }
