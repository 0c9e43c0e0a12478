/*
PURPOSE:
  Runs every solver in dependency order and collects the derived design.

REQUIREMENTS:
  User-specified:
  - Linkage -> Pivot Housing -> Spacer -> Shaft -> Fastener/Mount.
  - Every table is a pure function of the parameter Store.

  Implementation-discovered:
  - Validation does not block the pipeline; its verdict is reported.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: every solver in this package

ERROR HANDLING:
  - Stops at the first solver error (a missing parameter).

IMPLEMENTATION RULES:
  - No I/O here. Solve must stay deterministic.

USAGE:
  design, err := engine.Solve(store)

SELF-HEALING INSTRUCTIONS:
  - If a new table is added, add it to Design and Tables().

RELATED FILES:
  - internal/engine/runner.go
  - internal/model/tables.go

MAINTENANCE:
  - Keep Tables() in the output order CAD users expect.
*/

package engine

import (
	"fmt"

	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// Design holds every derived table of one run.
type Design struct {
	Validation         Validation
	Linkages           model.Linkages
	UpperPivotHousing  model.PivotHousing
	LowerPivotHousing  model.PivotHousing
	UpperSpacer        model.Spacer
	LowerSpacer        model.Spacer
	UpperShaft         model.UpperShaft
	LowerShaft         model.LowerShaft
	Fasteners          model.Fasteners
	FrontSteeringMount model.SteeringMount
	RearSteeringMount  model.SteeringMount
	MiddleWheelMount   model.MiddleWheelMount
	DifferentialClevis model.DifferentialClevis
}

// Linkage returns the solved linkage of the given kind.
func (d *Design) Linkage(kind model.LinkageKind) model.Linkage {
	for _, lk := range d.Linkages.Linkages {
		if lk.Kind == kind {
			return lk
		}
	}
	return model.Linkage{Kind: kind}
}

// Tables returns the persisted tables in output order.
func (d *Design) Tables() []model.Table {
	return []model.Table{
		d.Linkages,
		d.UpperPivotHousing,
		d.LowerPivotHousing,
		d.UpperSpacer,
		d.LowerSpacer,
		d.UpperShaft,
		d.LowerShaft,
		d.Fasteners,
		d.FrontSteeringMount,
		d.RearSteeringMount,
		d.MiddleWheelMount,
		d.DifferentialClevis,
	}
}

// Solve derives the full design from a Store that already carries the
// derived base parameters (see params.Store.Derive).
func Solve(s *params.Store) (*Design, error) {
	var (
		d   Design
		err error
	)

	if d.Validation, err = ValidateRoverWidth(s); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}

	if d.Linkages, err = SolveLinkages(s); err != nil {
		return nil, fmt.Errorf("linkages: %w", err)
	}
	front := d.Linkage(model.FrontRocker)
	rear := d.Linkage(model.RearRocker)
	middleBogie := d.Linkage(model.MiddleBogie)
	rearBogie := d.Linkage(model.RearBogie)

	if d.UpperPivotHousing, err = SolvePivotHousing(s, model.PivotUpper, front.Angle, rear.Angle); err != nil {
		return nil, fmt.Errorf("upper pivot housing: %w", err)
	}
	if d.LowerPivotHousing, err = SolvePivotHousing(s, model.PivotLower, middleBogie.Angle, rearBogie.Angle); err != nil {
		return nil, fmt.Errorf("lower pivot housing: %w", err)
	}

	if d.UpperSpacer, err = SolveSpacer(s, d.UpperPivotHousing); err != nil {
		return nil, fmt.Errorf("upper spacer: %w", err)
	}
	if d.LowerSpacer, err = SolveSpacer(s, d.LowerPivotHousing); err != nil {
		return nil, fmt.Errorf("lower spacer: %w", err)
	}

	if d.UpperShaft, err = SolveUpperShaft(s, d.UpperSpacer.Thickness); err != nil {
		return nil, fmt.Errorf("upper shaft: %w", err)
	}
	if d.LowerShaft, err = SolveLowerShaft(s, d.UpperSpacer.Thickness, d.LowerSpacer.Thickness); err != nil {
		return nil, fmt.Errorf("lower shaft: %w", err)
	}

	if d.FrontSteeringMount, err = SolveSteeringMount(s, model.SteeringFront, front.Offset, front.Angle, d.UpperPivotHousing); err != nil {
		return nil, fmt.Errorf("front steering mount: %w", err)
	}
	if d.RearSteeringMount, err = SolveSteeringMount(s, model.SteeringRear, 0, 0, d.LowerPivotHousing); err != nil {
		return nil, fmt.Errorf("rear steering mount: %w", err)
	}
	if d.MiddleWheelMount, err = SolveMiddleWheelMount(s, d.LowerPivotHousing); err != nil {
		return nil, fmt.Errorf("middle wheel mount: %w", err)
	}
	if d.DifferentialClevis, err = SolveDifferentialClevis(s, d.UpperPivotHousing); err != nil {
		return nil, fmt.Errorf("differential clevis: %w", err)
	}

	if d.Fasteners, err = SolveFasteners(s, d.UpperShaft, d.LowerShaft); err != nil {
		return nil, fmt.Errorf("bolts and nuts: %w", err)
	}

	return &d, nil
}
