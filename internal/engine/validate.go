package engine

import (
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// Validation is the result of the rover width budget check.
type Validation struct {
	Valid    bool
	Required float64
	Target   float64
}

// ValidateRoverWidth checks that everything stacked between the frame and
// the outside of a wheel fits within half of the spare rover width.
func ValidateRoverWidth(s *params.Store) (Validation, error) {
	l := newLookup(s)

	target := (l.get("rover_width") - l.get("frame_width")) / 2
	required := l.get("upper_shaft_frame_clearance") +
		l.get("swingarm_thickness") +
		2*l.get("linkage_thickness") +
		2*l.get("middle_wheel_clearance") +
		l.get("upper_shaft_overhang") +
		l.get("middle_wheel_shaft_length") +
		l.get("wheel_thickness")
	if l.err != nil {
		return Validation{}, l.err
	}

	return Validation{Valid: required <= target, Required: required, Target: target}, nil
}
