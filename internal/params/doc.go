// Package params loads the numeric design parameters of the MERGS
// electron-optic system.
//
// Parameters arrive as a flat text block of "identifier := value;" lines,
// the format produced by the optimizer that sizes the beamline. Parse turns
// the block into a loose name->value map; Load promotes that map to a typed
// Config with every required key checked by name and basic numeric sanity
// enforced, so a bad parameter fails at load time instead of surfacing as a
// malformed drawing later.
package params
