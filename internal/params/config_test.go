package params

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(DefaultParameters)
	require.NoError(t, err)

	assert.Equal(t, 0.3201551, cfg.DipoleField)
	assert.Equal(t, 0.1982885, cfg.DipoleLength)
	assert.Equal(t, [3]float64{0.6509721, 5.195103, 4.456388}, cfg.ShapeIn)
	assert.Equal(t, [3]float64{0.4589667, -2.745608, -1.355867}, cfg.ShapeOut)
	assert.Equal(t, 0.1747930, cfg.HodoscopeLeft)
	assert.Equal(t, 0.5552835, cfg.HodoscopeRight)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.par")
	require.NoError(t, os.WriteFile(path, []byte(DefaultParameters), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.1171162, cfg.QuadLength)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.par"))
	assert.Error(t, err)
}

func TestFromMapMissingKey(t *testing.T) {
	parameters := Parse(DefaultParameters)
	delete(parameters, "p_dipole_field")

	_, err := FromMap(parameters)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeMissingParameter, loadErr.Code)
	assert.Equal(t, "p_dipole_field", loadErr.Key)
}

func TestFromMapRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value float64
	}{
		{"zero field", "p_dipole_field", 0},
		{"negative field", "p_dipole_field", -0.32},
		{"zero dipole length", "p_dipole_length", 0},
		{"negative radius", "p_m5_radius", -0.01},
		{"negative drift", "p_drift_pre_bend", -0.1},
		{"nan gap", "dipole_gap_height", math.NaN()},
		{"infinite shape", "p_shape_in_2", math.Inf(1)},
		{"negative hodoscope extent", "hodoscope_left", -0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parameters := Parse(DefaultParameters)
			parameters[tt.key] = tt.value

			_, err := FromMap(parameters)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, ErrCodeInvalidParameter, loadErr.Code)
			assert.Equal(t, tt.key, loadErr.Key)
		})
	}
}

func TestFromMapRejectsInvertedRadii(t *testing.T) {
	parameters := Parse(DefaultParameters)
	parameters["dipole_min_bend_radius"] = 0.3
	parameters["dipole_max_bend_radius"] = 0.2

	_, err := FromMap(parameters)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeInvalidParameter, loadErr.Code)
	assert.Equal(t, "dipole_min_bend_radius", loadErr.Key)
}

func TestLoadErrorMessageNamesKey(t *testing.T) {
	err := &LoadError{Code: ErrCodeMissingParameter, Key: "foil_width", Message: "required parameter not found"}

	assert.Equal(t, "MISSING_PARAMETER: foil_width: required parameter not found", err.Error())
}
