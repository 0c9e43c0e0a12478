/*
PURPOSE:
  Sizes the pivot and linkage bolts and their nuts from the bolt diameter.

IMPLEMENTATION RULES:
  - Bolt length is the clamped length plus one nut and a fixed margin.

RELATED FILES:
  - internal/engine/shaft.go
*/

package engine

import (
	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// Socket head cap screw and hex nut proportions, as factors of the
// nominal bolt diameter.
const (
	SocketWidthFactor   = 0.6
	HeadDiameterFactor  = 1.7
	HeadThicknessFactor = 1.0 / 3
	NutWidthFactor      = 1.6
	NutThicknessFactor  = 0.8

	// BoltLengthMargin is the thread left past the nut, in mm.
	BoltLengthMargin = 2
)

// BoltLength returns the bolt length needed to clamp minLength of material
// with a nut of the given bolt diameter.
func BoltLength(diameter, minLength float64) float64 {
	return minLength + diameter*NutThicknessFactor + BoltLengthMargin
}

// SolveBoltAndNut sizes the pivot housing bolts (one length per shaft) or
// the linkage mount bolts (one length through a linkage wall).
func SolveBoltAndNut(s *params.Store, kind model.BoltKind, upper model.UpperShaft, lower model.LowerShaft) (model.BoltAndNut, error) {
	l := newLookup(s)

	d := l.get(boltDiameterNames[kind])
	b := model.BoltAndNut{
		Kind:          kind,
		Diameter:      d,
		HeadDiameter:  d * HeadDiameterFactor,
		HeadThickness: d * HeadThicknessFactor,
		SocketWidth:   d * SocketWidthFactor,
		NutWidth:      d * NutWidthFactor,
		NutThickness:  d * NutThicknessFactor,
	}

	switch kind {
	case model.BoltPivot:
		upperMin := upper.RetRingPos[1] - l.get("upper_shaft_frame_clearance")
		lowerMin := lower.RetRingPos[3] - lower.RetRingPos[2]
		b.UpperLength = BoltLength(d, upperMin)
		b.LowerLength = BoltLength(d, lowerMin)
	case model.BoltLinkage:
		b.Length = BoltLength(d, l.get("linkage_thickness"))
	}
	if l.err != nil {
		return model.BoltAndNut{}, l.err
	}

	return b, nil
}

// SolveFasteners sizes both bolt kinds into the combined fastener table.
func SolveFasteners(s *params.Store, upper model.UpperShaft, lower model.LowerShaft) (model.Fasteners, error) {
	pivot, err := SolveBoltAndNut(s, model.BoltPivot, upper, lower)
	if err != nil {
		return model.Fasteners{}, err
	}
	linkage, err := SolveBoltAndNut(s, model.BoltLinkage, upper, lower)
	if err != nil {
		return model.Fasteners{}, err
	}
	return model.Fasteners{Pivot: pivot, Linkage: linkage}, nil
}
