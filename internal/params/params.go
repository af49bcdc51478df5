package params

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultParameters is the optimized MERGS ion-optics design, as emitted by
// the optimizer. It is the parameter set rendered when no overlay is given.
const DefaultParameters = `
foil_width := 0.3000000E-01;
foil_height := 0.3000000E-01;
aperture_width := 0.3000000E-01;
aperture_height := 0.3000000E-01;
p_m5_quad_field := 0.4781922E-01;
p_m5_hex_field :=  0.000000;
p_dipole_field := 0.3201551;
p_m5_radius := 0.2927906E-01;
p_m5_length := 0.1171162;
p_dipole_halfwidth := 0.1300000;
p_dipole_length := 0.1982885;
p_drift_pre_aperture := 0.5000000;
p_drift_pre_bend := 0.2240527;
p_drift_post_bend := 0.5887938;
p_shape_in_1 := 0.6509721;
p_shape_in_2 :=  5.195103;
p_shape_in_3 :=  4.456388;
p_shape_out_1 := 0.4589667;
p_shape_out_2 := -2.745608;
p_shape_out_3 := -1.355867;

dipole_bend_angle :=  77.82928;
dipole_max_bend_radius := 0.2745744;
dipole_central_bend_radius := 0.1459745;
dipole_min_bend_radius := 0.7757664E-01;
dipole_gap_height := 0.3994749E-01;
hodoscope_right := 0.5552835;
hodoscope_left := 0.1747930;
`

// Error codes for LoadError.
const (
	// ErrCodeMissingParameter indicates a required key is absent from the
	// parameter map.
	ErrCodeMissingParameter = "MISSING_PARAMETER"

	// ErrCodeInvalidParameter indicates a key is present but its value fails
	// range or finiteness validation.
	ErrCodeInvalidParameter = "INVALID_PARAMETER"

	// ErrCodeBadOverlay indicates an overlay file could not be decoded.
	ErrCodeBadOverlay = "BAD_OVERLAY"
)

// LoadError represents a parameter that could not be loaded or validated.
type LoadError struct {
	// Code identifies the error category.
	Code string

	// Key is the parameter identifier, where one is involved.
	Key string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Key, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// parameterLine matches one "identifier := value;" assignment. Lines that do
// not match (comments, blanks, optimizer chatter) carry no information and
// are skipped without error.
var parameterLine = regexp.MustCompile(`(?i)^\s*([a-z0-9_]+)\s*:=\s*([-+0-9.e]+);$`)

// Parse extracts every "identifier := value;" assignment from src into a
// name->value map. Non-matching lines are silently ignored. A later
// assignment to the same identifier overwrites the earlier one.
func Parse(src string) map[string]float64 {
	parameters := make(map[string]float64)
	for _, line := range splitLines(src) {
		m := parameterLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			// The character class admits strings like "1.2.3" that are not
			// numbers; treat them the same as any other non-matching line.
			continue
		}
		parameters[m[1]] = value
	}
	return parameters
}

// splitLines splits on \n, tolerating \r\n line endings.
func splitLines(src string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			end := i
			if end > start && src[end-1] == '\r' {
				end--
			}
			lines = append(lines, src[start:end])
			start = i + 1
		}
	}
	return append(lines, src[start:])
}

// MergeYAML decodes a flat mapping of identifier to numeric value from r and
// overlays it onto parameters, overwriting existing entries. Unknown
// identifiers are kept; Load decides which keys matter.
func MergeYAML(parameters map[string]float64, r io.Reader) error {
	overlay := make(map[string]float64)
	if err := yaml.NewDecoder(r).Decode(&overlay); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty overlay
		}
		return &LoadError{Code: ErrCodeBadOverlay, Message: err.Error()}
	}
	for key, value := range overlay {
		parameters[key] = value
	}
	return nil
}
