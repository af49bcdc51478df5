package params

import (
	"fmt"
	"math"
	"os"
)

// Config is the typed view of the parameter map: every design quantity the
// drawing pipeline consumes, validated. Lengths and radii are in meters,
// fields in tesla.
type Config struct {
	FoilWidth     float64 // full width of the production foil marker
	ApertureWidth float64 // full width of the limiting aperture marker

	DriftPreAperture float64 // foil plane to aperture plane
	DriftPreBend     float64 // multipole exit to dipole entry
	DriftPostBend    float64 // dipole exit to hodoscope plane

	QuadLength float64 // M5 multipole effective length
	QuadRadius float64 // M5 multipole aperture half-width

	DipoleLength    float64 // dipole arc length along the central ray
	DipoleField     float64 // dipole midplane field strength
	DipoleMinRadius float64 // innermost pole-face radius
	DipoleMaxRadius float64 // outermost pole-face radius
	DipoleGapHeight float64 // pole gap height, sets the pole-face overhang

	// ShapeIn and ShapeOut are the entry and exit pole-face profile
	// polynomial coefficients (linear, quadratic, cubic terms; the constant
	// term is implicitly zero).
	ShapeIn  [3]float64
	ShapeOut [3]float64

	HodoscopeLeft  float64 // hodoscope extent to the left of the central ray
	HodoscopeRight float64 // hodoscope extent to the right of the central ray
}

// Load parses src and promotes the result to a validated Config.
func Load(src string) (*Config, error) {
	return FromMap(Parse(src))
}

// LoadFile reads a parameter block from path and loads it.
func LoadFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(string(src))
}

// FromMap builds a Config from an already-parsed parameter map. Every
// required key must be present; absence or an out-of-range value returns a
// LoadError naming the key.
func FromMap(parameters map[string]float64) (*Config, error) {
	get := func(key string) (float64, error) {
		value, ok := parameters[key]
		if !ok {
			return 0, &LoadError{
				Code:    ErrCodeMissingParameter,
				Key:     key,
				Message: "required parameter not found",
			}
		}
		return value, nil
	}

	cfg := &Config{}
	var err error
	for _, field := range []struct {
		key string
		dst *float64
	}{
		{"foil_width", &cfg.FoilWidth},
		{"aperture_width", &cfg.ApertureWidth},
		{"p_drift_pre_aperture", &cfg.DriftPreAperture},
		{"p_drift_pre_bend", &cfg.DriftPreBend},
		{"p_drift_post_bend", &cfg.DriftPostBend},
		{"p_m5_length", &cfg.QuadLength},
		{"p_m5_radius", &cfg.QuadRadius},
		{"p_dipole_length", &cfg.DipoleLength},
		{"p_dipole_field", &cfg.DipoleField},
		{"dipole_min_bend_radius", &cfg.DipoleMinRadius},
		{"dipole_max_bend_radius", &cfg.DipoleMaxRadius},
		{"dipole_gap_height", &cfg.DipoleGapHeight},
		{"p_shape_in_1", &cfg.ShapeIn[0]},
		{"p_shape_in_2", &cfg.ShapeIn[1]},
		{"p_shape_in_3", &cfg.ShapeIn[2]},
		{"p_shape_out_1", &cfg.ShapeOut[0]},
		{"p_shape_out_2", &cfg.ShapeOut[1]},
		{"p_shape_out_3", &cfg.ShapeOut[2]},
		{"hodoscope_left", &cfg.HodoscopeLeft},
		{"hodoscope_right", &cfg.HodoscopeRight},
	} {
		if *field.dst, err = get(field.key); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the numeric sanity the geometry assumes: finite values
// everywhere, strictly positive element sizes and field, non-negative drifts
// and plane extents, and an inner pole radius below the outer one. A zero or
// negative dipole field would put the bend center at infinity or on the
// wrong side of the ray, so it is rejected here rather than left to produce
// a degenerate drawing.
func (c *Config) Validate() error {
	positive := []struct {
		key   string
		value float64
	}{
		{"foil_width", c.FoilWidth},
		{"aperture_width", c.ApertureWidth},
		{"p_m5_length", c.QuadLength},
		{"p_m5_radius", c.QuadRadius},
		{"p_dipole_length", c.DipoleLength},
		{"p_dipole_field", c.DipoleField},
		{"dipole_min_bend_radius", c.DipoleMinRadius},
		{"dipole_max_bend_radius", c.DipoleMaxRadius},
		{"dipole_gap_height", c.DipoleGapHeight},
	}
	for _, p := range positive {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return invalid(p.key, "must be finite")
		}
		if p.value <= 0 {
			return invalid(p.key, fmt.Sprintf("must be positive, got %g", p.value))
		}
	}

	nonNegative := []struct {
		key   string
		value float64
	}{
		{"p_drift_pre_aperture", c.DriftPreAperture},
		{"p_drift_pre_bend", c.DriftPreBend},
		{"p_drift_post_bend", c.DriftPostBend},
		{"hodoscope_left", c.HodoscopeLeft},
		{"hodoscope_right", c.HodoscopeRight},
	}
	for _, p := range nonNegative {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return invalid(p.key, "must be finite")
		}
		if p.value < 0 {
			return invalid(p.key, fmt.Sprintf("must not be negative, got %g", p.value))
		}
	}

	for i, v := range c.ShapeIn {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(fmt.Sprintf("p_shape_in_%d", i+1), "must be finite")
		}
	}
	for i, v := range c.ShapeOut {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(fmt.Sprintf("p_shape_out_%d", i+1), "must be finite")
		}
	}

	if c.DipoleMinRadius >= c.DipoleMaxRadius {
		return invalid("dipole_min_bend_radius",
			fmt.Sprintf("must be below dipole_max_bend_radius (%g >= %g)",
				c.DipoleMinRadius, c.DipoleMaxRadius))
	}
	return nil
}

func invalid(key, message string) error {
	return &LoadError{Code: ErrCodeInvalidParameter, Key: key, Message: message}
}
