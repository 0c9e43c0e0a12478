/*
PURPOSE:
  Typed output tables. One struct per CAD part, each flattening itself into
  the ordered name/value/unit rows the CAD model imports.

REQUIREMENTS:
  Implementation-discovered:
  - Row names and order must not change. CAD sketches refer to them by name.
  - Angles and counts carry no unit.

ARCHITECTURE INTEGRATION:
  - Built by: internal/engine
  - Written by: internal/output

ERROR HANDLING:
  - None. Tables are plain values.

IMPLEMENTATION RULES:
  - Name() is also the output file stem.

USAGE:
  dims := housing.Dimensions()

SELF-HEALING INSTRUCTIONS:
  - If a CAD import loses a value, compare its name with Dimensions().

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Add new rows at the end of a table.
*/

package model

// Linkage is the solved geometry of one suspension linkage.
// Offset is only non-zero for the front rocker.
type Linkage struct {
	Kind   LinkageKind
	Length float64
	Angle  float64
	Offset float64
}

// Linkages collects the shared linkage stock and the four solved linkages.
type Linkages struct {
	Thickness     float64
	Width         float64
	WallThickness float64
	BoltDiameter  float64
	BoltSpacing   float64
	Linkages      []Linkage
}

func (l Linkages) Name() string { return "linkages" }

func (l Linkages) Dimensions() []Dimension {
	dims := []Dimension{
		mm("linkage_thickness", l.Thickness),
		mm("width", l.Width),
		mm("wall_thickness", l.WallThickness),
		mm("bolt_diameter", l.BoltDiameter),
		mm("bolt_spacing", l.BoltSpacing),
	}
	for _, lk := range l.Linkages {
		dims = append(dims,
			mm(lk.Kind.String()+"_length", lk.Length),
			plain(lk.Kind.String()+"_angle", lk.Angle),
		)
	}
	return dims
}

// PivotHousing is the hub where two linkages meet around a bearing.
type PivotHousing struct {
	Pivot                         Pivot
	HousingDiameter               float64
	HousingThickness              float64
	BearingDiameter               float64
	BearingOuterRaceInnerDiameter float64
	BearingThickness              float64
	HousingMinWallThickness       float64
	HousingBoltDiameter           float64
	LinkageSeparationAngle        float64
	BoltPlacementRadius           float64
	NumBolts                      int
	LinkageMountBaseWidth         float64
	LinkageMountBaseLength        float64
	LinkageMountShoulderDepth     float64
	LinkageMountBoltDiameter      float64
	LinkageMountBoltSpacing       float64
	LinkageMountTongueLength      float64
}

func (h PivotHousing) Name() string { return h.Pivot.String() + "_pivot_housing" }

func (h PivotHousing) Dimensions() []Dimension {
	return []Dimension{
		mm("housing_diameter", h.HousingDiameter),
		mm("housing_thickness", h.HousingThickness),
		mm("bearing_diameter", h.BearingDiameter),
		mm("bearing_outer_race_inner_diameter", h.BearingOuterRaceInnerDiameter),
		mm("bearing_thickness", h.BearingThickness),
		mm("housing_min_wall_thickness", h.HousingMinWallThickness),
		mm("housing_bolt_diameter", h.HousingBoltDiameter),
		plain("linkage_separation_angle", h.LinkageSeparationAngle),
		mm("bolt_placement_radius", h.BoltPlacementRadius),
		plain("num_bolts", float64(h.NumBolts)),
		mm("linkage_mount_base_width", h.LinkageMountBaseWidth),
		mm("linkage_mount_base_length", h.LinkageMountBaseLength),
		mm("linkage_mount_shoulder_depth", h.LinkageMountShoulderDepth),
		mm("linkage_mount_bolt_diameter", h.LinkageMountBoltDiameter),
		mm("linkage_mount_bolt_spacing", h.LinkageMountBoltSpacing),
		mm("linkage_mount_tongue_length", h.LinkageMountTongueLength),
	}
}

// Spacer fills the axial gap next to a pivot housing.
type Spacer struct {
	Pivot               Pivot
	OuterDiameter       float64
	InnerDiameter       float64
	Thickness           float64
	BoltDiameter        float64
	BoltPlacementRadius float64
	NumBolts            int
}

func (s Spacer) Name() string { return s.Pivot.String() + "_spacer" }

func (s Spacer) Dimensions() []Dimension {
	return []Dimension{
		mm("outer_diameter", s.OuterDiameter),
		mm("inner_diameter", s.InnerDiameter),
		mm("spacer_thickness", s.Thickness),
		mm("bolt_diameter", s.BoltDiameter),
		mm("bolt_placement_radius", s.BoltPlacementRadius),
		plain("num_bolts", float64(s.NumBolts)),
	}
}

// ShaftStock is the bar and retention ring stock common to both shafts.
type ShaftStock struct {
	Diameter             float64
	RetRingInnerDiameter float64
	RetRingThickness     float64
}

func (s ShaftStock) dimensions() []Dimension {
	return []Dimension{
		mm("shaft_diameter", s.Diameter),
		mm("ret_ring_inner_diameter", s.RetRingInnerDiameter),
		mm("ret_ring_thickness", s.RetRingThickness),
	}
}

// UpperShaft passes through the frame and carries both rockers.
// MinBoltLength is reported to the operator and never persisted.
type UpperShaft struct {
	ShaftStock
	InnerDiameter      float64
	FrameWidth         Quantity
	FrameWallThickness Quantity
	RetRingPos         [2]float64
	RefLength          float64
	Length             float64
	MinBoltLength      float64
}

func (s UpperShaft) Name() string { return "upper_shaft" }

func (s UpperShaft) Dimensions() []Dimension {
	return append(s.ShaftStock.dimensions(),
		mm("shaft_inner_diameter", s.InnerDiameter),
		quantity("frame_width", s.FrameWidth),
		quantity("frame_wall_thickness", s.FrameWallThickness),
		mm("ret_ring_1_pos", s.RetRingPos[0]),
		mm("ret_ring_2_pos", s.RetRingPos[1]),
		mm("ref_length", s.RefLength),
		mm("length", s.Length),
	)
}

// LowerShaft carries the bogie linkages.
// MinBoltLength is reported to the operator and never persisted.
type LowerShaft struct {
	ShaftStock
	RetRingPos    [4]float64
	Length        float64
	MinBoltLength float64
}

func (s LowerShaft) Name() string { return "lower_shaft" }

func (s LowerShaft) Dimensions() []Dimension {
	return append(s.ShaftStock.dimensions(),
		mm("ret_ring_1_pos", s.RetRingPos[0]),
		mm("ret_ring_2_pos", s.RetRingPos[1]),
		mm("ret_ring_3_pos", s.RetRingPos[2]),
		mm("ret_ring_4_pos", s.RetRingPos[3]),
		mm("length", s.Length),
	)
}

// BoltAndNut is a socket head bolt with its nut, sized from the nominal diameter.
// Pivot bolts fill UpperLength and LowerLength, linkage bolts fill Length.
type BoltAndNut struct {
	Kind          BoltKind
	Diameter      float64
	HeadDiameter  float64
	HeadThickness float64
	SocketWidth   float64
	NutWidth      float64
	NutThickness  float64
	Length        float64
	UpperLength   float64
	LowerLength   float64
}

func (b BoltAndNut) dimensions() []Dimension {
	p := b.Kind.String() + "_"
	dims := []Dimension{
		mm(p+"diameter", b.Diameter),
		mm(p+"head_diameter", b.HeadDiameter),
		mm(p+"head_thickness", b.HeadThickness),
		mm(p+"socket_width", b.SocketWidth),
		mm(p+"nut_width", b.NutWidth),
		mm(p+"nut_thickness", b.NutThickness),
	}
	if b.Kind == BoltPivot {
		return append(dims, mm("upper_length", b.UpperLength), mm("lower_length", b.LowerLength))
	}
	return append(dims, mm(p+"length", b.Length))
}

// Fasteners merges the pivot and linkage bolt tables.
type Fasteners struct {
	Pivot   BoltAndNut
	Linkage BoltAndNut
}

func (f Fasteners) Name() string { return "bolts_and_nuts" }

func (f Fasteners) Dimensions() []Dimension {
	return append(f.Pivot.dimensions(), f.Linkage.dimensions()...)
}

// LinkageMount is the tongue-and-shoulder joint copied from a pivot housing.
type LinkageMount struct {
	TongueLength  float64
	ShoulderDepth float64
	BoltDiameter  float64
	BoltSpacing   float64
}

func (m LinkageMount) dimensions() []Dimension {
	return []Dimension{
		mm("linkage_mount_tongue_length", m.TongueLength),
		mm("linkage_mount_shoulder_depth", m.ShoulderDepth),
		mm("linkage_mount_bolt_diameter", m.BoltDiameter),
		mm("linkage_mount_bolt_spacing", m.BoltSpacing),
	}
}

// SteeringMount connects a steering assembly to a linkage end.
type SteeringMount struct {
	Steering       Steering
	NeckHeight     float64
	ArmLength      float64
	Angle          float64
	Width          float64
	MountThickness float64
	ArcStartHeight float64
	Mount          LinkageMount
}

func (m SteeringMount) Name() string { return m.Steering.String() + "_steering_mount" }

func (m SteeringMount) Dimensions() []Dimension {
	return append([]Dimension{
		mm("neck_height", m.NeckHeight),
		mm("arm_length", m.ArmLength),
		plain("angle", m.Angle),
		mm("width", m.Width),
		mm("mount_thickness", m.MountThickness),
		mm("arc_start_height", m.ArcStartHeight),
	}, m.Mount.dimensions()...)
}

// MiddleWheelMount holds the middle wheel shaft on the bogie.
type MiddleWheelMount struct {
	ShaftDiameter          Quantity
	ShaftLength            Quantity
	ShaftOverhang          Quantity
	WheelDiameter          Quantity
	WheelThickness         Quantity
	LinkageThickness       Quantity
	LinkageWidth           Quantity
	LinkageMountBaseLength float64
	Mount                  LinkageMount
}

func (m MiddleWheelMount) Name() string { return "middle_wheel_mount" }

func (m MiddleWheelMount) Dimensions() []Dimension {
	return append([]Dimension{
		quantity("middle_wheel_shaft_diameter", m.ShaftDiameter),
		quantity("middle_wheel_shaft_length", m.ShaftLength),
		quantity("middle_wheel_shaft_overhang", m.ShaftOverhang),
		quantity("wheel_diameter", m.WheelDiameter),
		quantity("wheel_thickness", m.WheelThickness),
		quantity("linkage_thickness", m.LinkageThickness),
		quantity("linkage_width", m.LinkageWidth),
		mm("linkage_mount_base_length", m.LinkageMountBaseLength),
	}, m.Mount.dimensions()...)
}

// DifferentialClevis couples the upper pivot housing to the differential bar.
type DifferentialClevis struct {
	OuterDiameter       float64
	InnerDiameter       float64
	BoltPlacementRadius float64
	BoltPlacementAngle  float64
	BoltDiameter        float64
	NumBolts            int
}

func (c DifferentialClevis) Name() string { return "differential_clevis" }

func (c DifferentialClevis) Dimensions() []Dimension {
	return []Dimension{
		mm("outer_diameter", c.OuterDiameter),
		mm("inner_diameter", c.InnerDiameter),
		mm("bolt_placement_radius", c.BoltPlacementRadius),
		plain("bolt_placement_angle", c.BoltPlacementAngle),
		mm("bolt_diameter", c.BoltDiameter),
		plain("num_bolts", float64(c.NumBolts)),
	}
}

func mm(name string, v float64) Dimension { return Dimension{Name: name, Value: v, Unit: MM} }

func plain(name string, v float64) Dimension { return Dimension{Name: name, Value: v} }

func quantity(name string, q Quantity) Dimension {
	return Dimension{Name: name, Value: q.Value, Unit: q.Unit}
}
