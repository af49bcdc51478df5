// Package beamline lays out the MERGS electron-optic system.
//
// The element sequence is fixed: production foil, drift, limiting aperture,
// M5 focusing multipole, drift, dipole bending magnet, drift, hodoscope
// plane. Layout folds the element renderers over the reference ray in that
// order, concatenating their path records; the result is deterministic for
// a given configuration.
package beamline

import (
	"io"

	"honnef.co/go/curve"

	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/optics"
	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/params"
	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/svg"
)

// The foil sits at a fixed position in the 1x1 drawing; everything else is
// laid out downstream of it.
var startPosition = curve.Pt(0.15, 0.15)

// Layout renders every element of the beamline and returns the accumulated
// path records in element order.
func Layout(cfg *params.Config) []svg.Path {
	ray := optics.Ray{Position: startPosition}
	var paths []svg.Path
	add := func(ps []svg.Path) { paths = append(paths, ps...) }

	add(optics.PlaneSym(ray, cfg.FoilWidth/2))

	ps, ray := optics.Drift(ray, cfg.DriftPreAperture)
	add(ps)

	add(optics.PlaneSym(ray, cfg.ApertureWidth/2))

	ps, ray = optics.Multipole(ray, cfg.QuadLength, cfg.QuadRadius)
	add(ps)

	ps, ray = optics.Drift(ray, cfg.DriftPreBend)
	add(ps)

	ps, ray = optics.Bend(ray, optics.BendSpec{
		Length:    cfg.DipoleLength,
		Field:     cfg.DipoleField,
		MinRadius: cfg.DipoleMinRadius,
		MaxRadius: cfg.DipoleMaxRadius,
		GapHeight: cfg.DipoleGapHeight,
		InShape:   cfg.ShapeIn,
		OutShape:  cfg.ShapeOut,
	})
	add(ps)

	ps, ray = optics.Drift(ray, cfg.DriftPostBend)
	add(ps)

	add(optics.Plane(ray, cfg.HodoscopeLeft, cfg.HodoscopeRight))

	return paths
}

// Render writes the complete schematic for cfg to w.
func Render(cfg *params.Config, w io.Writer) error {
	return svg.WriteDocument(w, Layout(cfg))
}
