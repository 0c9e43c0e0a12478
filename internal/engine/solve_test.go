package engine

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/bogie-sizer/internal/config"
	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

func TestFrontRocker(t *testing.T) {
	lk, err := FrontRocker(newStore(t, nil))
	require.NoError(t, err)

	// height = (150 + 50) - (60 + 30 + 20), width = (600 - 120) / 2
	angle, extended := AngleAndLength(90, 240)
	offset := 20 / (2 * math.Tan((angle+90)/2*math.Pi/180))

	assert.Equal(t, model.FrontRocker, lk.Kind)
	assert.InDelta(t, angle, lk.Angle, tol)
	assert.InDelta(t, offset, lk.Offset, tol)
	assert.InDelta(t, extended-(20+2*10+offset), lk.Length, tol)
	assert.Greater(t, lk.Offset, 0.0)
}

func TestRearRocker(t *testing.T) {
	lk, err := RearRocker(newStore(t, nil))
	require.NoError(t, err)

	// height = (150 + 50) - (60 + 30 + 10 + 10), width = 600 / 4
	angle, extended := AngleAndLength(90, 150)
	assert.InDelta(t, angle, lk.Angle, tol)
	assert.InDelta(t, extended-(20+17+20), lk.Length, tol)
	assert.Zero(t, lk.Offset)
}

func TestMiddleBogie(t *testing.T) {
	lk, err := MiddleBogie(newStore(t, nil))
	require.NoError(t, err)

	// height = 60 + 30 + 10 + 10 - 60
	angle, extended := AngleAndLength(50, 150)
	assert.InDelta(t, angle, lk.Angle, tol)
	assert.InDelta(t, extended-(17+4+20), lk.Length, tol)
}

func TestRearBogie(t *testing.T) {
	lk, err := RearBogie(newStore(t, nil))
	require.NoError(t, err)

	assert.Equal(t, 0.0, lk.Angle)
	assert.Equal(t, 150-(17+60+10+20.0), lk.Length)
}

func TestRearBogie_NegativeLengthIsKept(t *testing.T) {
	lk, err := RearBogie(newStore(t, map[string]float64{"rover_length": 200}))
	require.NoError(t, err)
	assert.Equal(t, 50-(17+60+10+20.0), lk.Length)
	assert.Less(t, lk.Length, 0.0)
}

func TestSolveLinkages_MissingParameter(t *testing.T) {
	values := baseValues()
	delete(values, "linkage_mount_base_length")
	s, err := params.FromValues(values).Derive()
	require.NoError(t, err)

	_, err = SolveLinkages(s)
	require.ErrorIs(t, err, params.ErrNotFound)
}

func TestSolveUpperShaft(t *testing.T) {
	shaft, err := SolveUpperShaft(newStore(t, nil), 5)
	require.NoError(t, err)

	assert.Equal(t, [2]float64{10, 21}, shaft.RetRingPos)
	assert.Equal(t, 26.0, shaft.RefLength)
	assert.Equal(t, 252.0, shaft.Length)
	assert.Equal(t, 16.0, shaft.MinBoltLength)
	assert.InDelta(t, 5.6, shaft.InnerDiameter, tol)
	assert.Equal(t, model.Quantity{Value: 200, Unit: model.MM}, shaft.FrameWidth)
}

func TestSolveLowerShaft(t *testing.T) {
	s := newStore(t, map[string]float64{
		"lower_shaft_overhang": 10,
		"linkage_thickness":    4,
	})

	shaft, err := SolveLowerShaft(s, 6, 8)
	require.NoError(t, err)

	assert.Equal(t, [4]float64{10, 14, 20, 36}, shaft.RetRingPos)
	assert.Equal(t, 46.0, shaft.Length)
	assert.Equal(t, 16.0, shaft.MinBoltLength)
}

func TestBoltLength(t *testing.T) {
	assert.InDelta(t, 16.8, BoltLength(6, 10), tol)
}

func TestSolveFasteners(t *testing.T) {
	s := newStore(t, nil)
	upper, err := SolveUpperShaft(s, 5)
	require.NoError(t, err)
	lower, err := SolveLowerShaft(s, 5, 15)
	require.NoError(t, err)

	f, err := SolveFasteners(s, upper, lower)
	require.NoError(t, err)

	assert.Equal(t, model.BoltPivot, f.Pivot.Kind)
	assert.InDelta(t, 5.1, f.Pivot.HeadDiameter, tol)
	assert.InDelta(t, 1.0, f.Pivot.HeadThickness, tol)
	assert.InDelta(t, 1.8, f.Pivot.SocketWidth, tol)
	assert.InDelta(t, 4.8, f.Pivot.NutWidth, tol)
	assert.InDelta(t, 2.4, f.Pivot.NutThickness, tol)
	assert.InDelta(t, 16+2.4+2, f.Pivot.UpperLength, tol)
	assert.InDelta(t, 21+2.4+2, f.Pivot.LowerLength, tol)

	assert.Equal(t, model.BoltLinkage, f.Linkage.Kind)
	assert.InDelta(t, 3+2.4+2, f.Linkage.Length, tol)

	names := make([]string, 0)
	for _, d := range f.Dimensions() {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "upper_length")
	assert.Contains(t, names, "lower_length")
	assert.Contains(t, names, "linkage_length")
	assert.Contains(t, names, "pivot_nut_thickness")
}

func TestSolveSteeringMount(t *testing.T) {
	s := newStore(t, nil)
	h, err := SolvePivotHousing(s, model.PivotUpper, 20, 30)
	require.NoError(t, err)

	front, err := SolveSteeringMount(s, model.SteeringFront, 7, 20, h)
	require.NoError(t, err)
	assert.Equal(t, 20.0, front.NeckHeight)
	assert.Equal(t, 10+15+7.0, front.ArmLength)
	assert.Equal(t, 10.0, front.ArcStartHeight)
	assert.Equal(t, h.LinkageMountTongueLength, front.Mount.TongueLength)
	assert.Equal(t, "front_steering_mount", front.Name())

	rear, err := SolveSteeringMount(s, model.SteeringRear, 0, 0, h)
	require.NoError(t, err)
	assert.Equal(t, 10.0, rear.NeckHeight)
	assert.Equal(t, 25.0, rear.ArmLength)
	assert.Equal(t, 5.0, rear.ArcStartHeight)
}

func TestSolveDifferentialClevis(t *testing.T) {
	s := newStore(t, nil)
	h, err := SolvePivotHousing(s, model.PivotUpper, 20, 30)
	require.NoError(t, err)

	c, err := SolveDifferentialClevis(s, h)
	require.NoError(t, err)
	assert.Equal(t, 65.0, c.BoltPlacementAngle)
	assert.Equal(t, h.HousingDiameter, c.OuterDiameter)
	assert.Equal(t, 4, c.NumBolts)
}

func TestSolveMiddleWheelMount(t *testing.T) {
	s := params.New(
		params.Parameter{Name: "middle_wheel_shaft_diameter", Value: 8, Unit: "mm"},
		params.Parameter{Name: "middle_wheel_shaft_length", Value: 20, Unit: "mm"},
		params.Parameter{Name: "middle_wheel_shaft_overhang", Value: 5, Unit: "mm"},
		params.Parameter{Name: "wheel_diameter", Value: 4.7, Unit: "in"},
		params.Parameter{Name: "wheel_thickness", Value: 15, Unit: "mm"},
		params.Parameter{Name: "linkage_thickness", Value: 3},
		params.Parameter{Name: "linkage_width", Value: 20, Unit: "mm"},
	)
	h := model.PivotHousing{LinkageMountBaseLength: 10, LinkageMountTongueLength: 15}

	m, err := SolveMiddleWheelMount(s, h)
	require.NoError(t, err)
	assert.Equal(t, model.Quantity{Value: 4.7, Unit: "in"}, m.WheelDiameter)
	assert.Equal(t, model.Quantity{Value: 3}, m.LinkageThickness)
	assert.Equal(t, 15.0, m.Mount.TongueLength)
	assert.Len(t, m.Dimensions(), 12)
}

func TestSolve(t *testing.T) {
	d, err := Solve(newStore(t, nil))
	require.NoError(t, err)

	assert.True(t, d.Validation.Valid)
	assert.Len(t, d.Linkages.Linkages, 4)

	front := d.Linkage(model.FrontRocker)
	rear := d.Linkage(model.RearRocker)
	assert.InDelta(t, 180-(front.Angle+rear.Angle), d.UpperPivotHousing.LinkageSeparationAngle, tol)
	assert.InDelta(t, d.UpperPivotHousing.LinkageSeparationAngle/2, d.DifferentialClevis.BoltPlacementAngle, tol)
	assert.InDelta(t, front.Offset, d.FrontSteeringMount.ArmLength-10-15, tol)
	assert.Equal(t, 0.0, d.RearSteeringMount.Angle)

	assert.Equal(t, 5.0, d.UpperSpacer.Thickness)
	assert.Equal(t, 15.0, d.LowerSpacer.Thickness)
	assert.Equal(t, [4]float64{10, 13, 18, 39}, d.LowerShaft.RetRingPos)

	names := make([]string, 0)
	for _, tbl := range d.Tables() {
		names = append(names, tbl.Name())
	}
	assert.Equal(t, []string{
		"linkages",
		"upper_pivot_housing",
		"lower_pivot_housing",
		"upper_spacer",
		"lower_spacer",
		"upper_shaft",
		"lower_shaft",
		"bolts_and_nuts",
		"front_steering_mount",
		"rear_steering_mount",
		"middle_wheel_mount",
		"differential_clevis",
	}, names)
}

func TestSolve_Deterministic(t *testing.T) {
	s := newStore(t, nil)
	first, err := Solve(s)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := Solve(s)
		require.NoError(t, err)
		assert.Equal(t, first, next)

		for j, tbl := range next.Tables() {
			assert.Equal(t, first.Tables()[j].Dimensions(), tbl.Dimensions())
		}
	}
}

func TestSolve_DerivedParametersOverrideLoaded(t *testing.T) {
	values := baseValues()
	values["pivot_housing_min_wall_thickness"] = 99
	s, err := params.FromValues(values).Derive()
	require.NoError(t, err)

	d, err := Solve(s)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.UpperPivotHousing.HousingMinWallThickness)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	paramsPath := filepath.Join(dir, "Parameters.csv")
	var buf bytes.Buffer
	for name, v := range baseValues() {
		buf.WriteString(name + "," + strconv.FormatFloat(v, 'f', -1, 64) + ",mm\n")
	}
	require.NoError(t, os.WriteFile(paramsPath, buf.Bytes(), 0644))

	cfg := config.DefaultConfig()
	cfg.Parameters = paramsPath
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.Formats = []string{"txt", "json"}
	cfg.FilePrefix = "suspension_"
	cfg.Manifest = true

	var report bytes.Buffer
	d, err := Run(context.Background(), cfg, &report)
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Contains(t, report.String(), "Rover width is valid:")
	assert.Contains(t, report.String(), "Min upper bolt length:")
	assert.Contains(t, report.String(), "Min lower bolt length:")

	for _, tbl := range d.Tables() {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, "suspension_"+tbl.Name()+".txt"))
		assert.FileExists(t, filepath.Join(cfg.OutputDir, "suspension_"+tbl.Name()+".json"))
	}
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "suspension_manifest.json"))
}

func TestRun_MissingParameterFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Parameters = filepath.Join(t.TempDir(), "missing.csv")
	cfg.OutputDir = t.TempDir()

	_, err := Run(context.Background(), cfg, &bytes.Buffer{})
	require.Error(t, err)
}
