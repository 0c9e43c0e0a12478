package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/bogie-sizer/internal/model"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

const tol = 1e-9

// baseValues is a small but complete rover.
func baseValues() map[string]float64 {
	return map[string]float64{
		"rover_width":                             400,
		"rover_length":                            600,
		"frame_width":                             200,
		"frame_height":                            100,
		"frame_wall_thickness":                    3,
		"ground_clearance":                        150,
		"wheel_diameter":                          120,
		"wheel_thickness":                         15,
		"corner_wheel_asm_height":                 60,
		"steering_asm_height":                     30,
		"swingarm_thickness":                      5,
		"linkage_thickness":                       3,
		"linkage_width":                           20,
		"linkage_wall_thickness":                  2,
		"linkage_mount_base_length":               10,
		"linkage_mount_bolt_diameter":             3,
		"pivot_housing_bolt_diameter":             3,
		"upper_bearing_diameter":                  22,
		"upper_bearing_outer_race_inner_diameter": 18,
		"upper_bearing_thickness":                 7,
		"upper_pivot_housing_num_bolts":           4,
		"lower_bearing_diameter":                  16,
		"lower_bearing_outer_race_inner_diameter": 13,
		"lower_bearing_thickness":                 5,
		"lower_pivot_housing_num_bolts":           3,
		"upper_shaft_frame_clearance":             5,
		"upper_shaft_overhang":                    5,
		"upper_shaft_diameter":                    8,
		"upper_shaft_min_wall_thickness":          1,
		"upper_ret_ring_inner_diameter":           7.6,
		"upper_ret_ring_thickness":                0.9,
		"lower_shaft_overhang":                    10,
		"lower_shaft_diameter":                    5,
		"lower_ret_ring_inner_diameter":           4.7,
		"lower_ret_ring_thickness":                0.6,
		"middle_wheel_clearance":                  5,
		"middle_wheel_shaft_length":               20,
		"middle_wheel_shaft_overhang":             5,
		"middle_wheel_shaft_diameter":             8,
	}
}

func newStore(t *testing.T, overrides map[string]float64) *params.Store {
	t.Helper()
	values := baseValues()
	for k, v := range overrides {
		values[k] = v
	}
	s, err := params.FromValues(values).Derive()
	require.NoError(t, err)
	return s
}

func withoutParam(t *testing.T, name string) *params.Store {
	t.Helper()
	values := baseValues()
	delete(values, name)
	return params.FromValues(values)
}

func TestAngleAndLength(t *testing.T) {
	cases := []struct{ height, width float64 }{
		{3, 4},
		{90, 240},
		{-25, 150},
		{0, 10},
		{1e-3, 1e3},
	}
	for _, c := range cases {
		angle, extended := AngleAndLength(c.height, c.width)
		assert.InDelta(t, math.Hypot(c.height, c.width), extended, tol)
		assert.InDelta(t, c.height/c.width, math.Tan(angle*math.Pi/180), 1e-9)
	}

	angle, extended := AngleAndLength(3, 4)
	assert.InDelta(t, 5, extended, tol)
	assert.InDelta(t, 36.86989764584402, angle, 1e-9)
}

func TestValidateRoverWidth(t *testing.T) {
	v, err := ValidateRoverWidth(newStore(t, nil))
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, 100.0, v.Target)
	assert.Equal(t, 66.0, v.Required)
}

func TestValidateRoverWidth_TooNarrow(t *testing.T) {
	v, err := ValidateRoverWidth(newStore(t, map[string]float64{"rover_width": 320}))
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, 60.0, v.Target)
	assert.Equal(t, 66.0, v.Required)
}

func TestValidateRoverWidth_MissingParameter(t *testing.T) {
	_, err := ValidateRoverWidth(withoutParam(t, "wheel_thickness"))
	require.ErrorIs(t, err, params.ErrNotFound)
	assert.Contains(t, err.Error(), "wheel_thickness")
}

func TestPivotHousingDiameter(t *testing.T) {
	s := newStore(t, nil)

	upper, err := PivotHousingDiameter(s, model.PivotUpper)
	require.NoError(t, err)
	assert.Equal(t, 40.0, upper) // 22 + 2*(3 + 2*3)

	lower, err := PivotHousingDiameter(s, model.PivotLower)
	require.NoError(t, err)
	assert.Equal(t, 34.0, lower)
}

func TestPivotHousingDiameter_IncreasesWithEachInput(t *testing.T) {
	base := params.FromValues(map[string]float64{
		"upper_bearing_diameter":           22,
		"pivot_housing_bolt_diameter":      3,
		"pivot_housing_min_wall_thickness": 3,
	})
	ref, err := PivotHousingDiameter(base, model.PivotUpper)
	require.NoError(t, err)

	for _, name := range []string{"upper_bearing_diameter", "pivot_housing_bolt_diameter", "pivot_housing_min_wall_thickness"} {
		p, err := base.Get(name)
		require.NoError(t, err)
		p.Value += 0.5

		d, err := PivotHousingDiameter(base.With(p), model.PivotUpper)
		require.NoError(t, err)
		assert.Greater(t, d, ref, name)
	}
}

func TestSolvePivotHousing(t *testing.T) {
	h, err := SolvePivotHousing(newStore(t, nil), model.PivotUpper, 20, 30)
	require.NoError(t, err)

	assert.Equal(t, "upper_pivot_housing", h.Name())
	assert.Equal(t, 40.0, h.HousingDiameter)
	assert.Equal(t, 3.0, h.HousingThickness)
	assert.Equal(t, 130.0, h.LinkageSeparationAngle)
	assert.Equal(t, 11+3+1.5, h.BoltPlacementRadius)
	assert.Equal(t, 4, h.NumBolts)
	assert.Equal(t, 3.0, h.LinkageMountBoltSpacing)
	assert.Equal(t, 15.0, h.LinkageMountTongueLength) // 3*3 + 2*3
	assert.Equal(t, 2.0, h.LinkageMountShoulderDepth)
}

func TestSolvePivotHousing_SeparationAngleNotClamped(t *testing.T) {
	cases := []struct{ a1, a2, want float64 }{
		{0, 0, 180},
		{90, 90, 0},
		{120, 100, -40},
		{-10, 5, 185},
	}
	s := newStore(t, nil)
	for _, c := range cases {
		h, err := SolvePivotHousing(s, model.PivotLower, c.a1, c.a2)
		require.NoError(t, err)
		assert.Equal(t, c.want, h.LinkageSeparationAngle)
	}
}

func TestSolvePivotHousing_FractionalBoltCount(t *testing.T) {
	_, err := SolvePivotHousing(newStore(t, map[string]float64{"lower_pivot_housing_num_bolts": 2.5}), model.PivotLower, 10, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lower_pivot_housing_num_bolts")
}

func TestSolveSpacer(t *testing.T) {
	s := newStore(t, map[string]float64{
		"middle_wheel_clearance":      4,
		"upper_shaft_overhang":        6,
		"middle_wheel_shaft_overhang": 7,
	})

	for _, tc := range []struct {
		pivot model.Pivot
		want  float64
	}{
		{model.PivotUpper, 4},
		{model.PivotLower, 6 + 4 + 7},
	} {
		h, err := SolvePivotHousing(s, tc.pivot, 10, 10)
		require.NoError(t, err)

		sp, err := SolveSpacer(s, h)
		require.NoError(t, err)
		assert.Equal(t, tc.want, sp.Thickness, tc.pivot.String())
		assert.Equal(t, h.HousingDiameter, sp.OuterDiameter)
		assert.Equal(t, h.BearingDiameter, sp.InnerDiameter)
		assert.Equal(t, h.BoltPlacementRadius, sp.BoltPlacementRadius)
		assert.Equal(t, tc.pivot.String()+"_spacer", sp.Name())
	}
}
