package optics

import (
	"math"

	"honnef.co/go/curve"

	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/svg"
)

// Physical constants for the reference particle. Rest and kinetic energies
// are in MeV; the conversion factor takes MeV to joules.
const (
	electronRestEnergy = 0.5110
	centralEnergy      = 13.5
	mevToJoule         = 1.602e-13
	speedOfLight       = 2.998e8   // m/s
	elementaryCharge   = 1.602e-19 // C
)

// poleFaceSamples is the number of points sampled across each pole face.
const poleFaceSamples = 21

// poleOverhang extends the drawn pole faces beyond the working aperture by
// this multiple of the gap height.
const poleOverhang = 1.5

// CentralMomentum returns the reference particle's relativistic momentum in
// kg*m/s.
func CentralMomentum() float64 {
	return (electronRestEnergy + centralEnergy) * mevToJoule / speedOfLight
}

// BendRadius returns the radius of curvature the reference particle follows
// at midplane in a dipole of the given field strength.
func BendRadius(field float64) float64 {
	return CentralMomentum() / (elementaryCharge * field)
}

// BendAngle returns the bend angle, in radians, of a dipole of the given
// arc length and field strength.
func BendAngle(length, field float64) float64 {
	return length / BendRadius(field)
}

// BendSpec carries the dipole's physical parameters.
type BendSpec struct {
	Length    float64 // arc length along the central ray
	Field     float64 // midplane field strength
	MinRadius float64 // innermost pole-face radius
	MaxRadius float64 // outermost pole-face radius
	GapHeight float64 // pole gap height

	// InShape and OutShape are the entry and exit pole-face profile
	// coefficients (linear, quadratic, cubic; constant term implicitly
	// zero).
	InShape  [3]float64
	OutShape [3]float64
}

// Bend draws the dipole bending magnet and returns the ray at its exit.
//
// The iron block is one closed polygon: the entry pole face sampled across
// the extended radius range, an arc along the outer extended radius, the
// exit pole face walked back inward, and an arc along the inner extended
// radius. Three reference arcs (outer and inner aperture guides, central
// ray) overlay the block.
//
// Degenerate inputs are not checked here: a zero field divides by zero and
// the fault propagates into the geometry.
func Bend(ray Ray, spec BendSpec) ([]svg.Path, Ray) {
	centralRadius := BendRadius(spec.Field)
	bendAngle := spec.Length / centralRadius
	center := ray.Transverse(-centralRadius)
	entry := ray.Heading
	exit := ray.Heading + bendAngle

	minExtended := spec.MinRadius - poleOverhang*spec.GapHeight
	maxExtended := spec.MaxRadius + poleOverhang*spec.GapHeight

	// Radial sample offsets relative to the central radius; the shape
	// breakpoints sit at the physical aperture bounds so the profile runs
	// as a straight tangent across the overhang.
	offsets := linspace(minExtended-centralRadius, maxExtended-centralRadius, poleFaceSamples)
	lower := spec.MinRadius - centralRadius
	upper := spec.MaxRadius - centralRadius

	backShape := EvalShape(offsets, shapeCoefficients(spec.InShape), lower, upper)
	back := poleFacePoints(center, centralRadius, entry, offsets, backShape, maxExtended)

	frontShape := EvalShape(offsets, shapeCoefficients(spec.OutShape), lower, upper)
	for i := range frontShape {
		frontShape[i] = -frontShape[i]
	}
	front := poleFacePoints(center, centralRadius, exit, offsets, frontShape, maxExtended)

	largeArc := bendAngle > math.Pi

	block := svg.Path{Class: svg.ClassMagnet, ZOrder: svg.ZOrderBody}
	block.Commands = append(block.Commands,
		svg.MoveTo{P: back[len(back)-1]},
		svg.ArcTo{
			Radii:    curve.Vec(maxExtended, maxExtended),
			LargeArc: largeArc,
			Sweep:    true,
			P:        front[len(front)-1],
		},
	)
	for i := len(front) - 2; i >= 0; i-- {
		block.Commands = append(block.Commands, svg.LineTo{P: front[i]})
	}
	block.Commands = append(block.Commands,
		svg.LineTo{P: radialPoint(center, minExtended, exit)},
		svg.ArcTo{
			Radii:    curve.Vec(minExtended, minExtended),
			LargeArc: largeArc,
			Sweep:    false,
			P:        radialPoint(center, minExtended, entry),
		},
	)
	for _, p := range back {
		block.Commands = append(block.Commands, svg.LineTo{P: p})
	}
	block.Commands = append(block.Commands, svg.ClosePath{})

	paths := []svg.Path{block}
	for _, arc := range []struct {
		radius float64
		class  svg.Class
	}{
		{spec.MaxRadius, svg.ClassGuide},
		{spec.MinRadius, svg.ClassGuide},
		{centralRadius, svg.ClassCentralRay},
	} {
		paths = append(paths, svg.Path{
			Class:  arc.class,
			ZOrder: svg.ZOrderOverlay,
			Commands: []svg.Command{
				svg.MoveTo{P: radialPoint(center, arc.radius, entry)},
				svg.ArcTo{
					Radii:    curve.Vec(arc.radius, arc.radius),
					LargeArc: largeArc,
					Sweep:    true,
					P:        radialPoint(center, arc.radius, exit),
				},
			},
		})
	}

	return paths, Ray{
		Position: radialPoint(center, centralRadius, exit),
		Heading:  exit,
	}
}

// shapeCoefficients prepends the implicit zero constant term.
func shapeCoefficients(shape [3]float64) []float64 {
	return []float64{0, shape[0], shape[1], shape[2]}
}

// poleFacePoints maps each (radial offset, axial shape offset) pair into
// drawing space by rotating around the bend center at the given heading,
// dropping points the shape tails push beyond the outer extended radius.
func poleFacePoints(center curve.Point, centralRadius, heading float64, offsets, shape []float64, maxExtended float64) []curve.Point {
	points := make([]curve.Point, 0, len(offsets))
	for i, offset := range offsets {
		p := curve.Pt(
			center.X+(centralRadius+offset)*math.Sin(heading)+shape[i]*math.Cos(heading),
			center.Y-(centralRadius+offset)*math.Cos(heading)+shape[i]*math.Sin(heading),
		)
		if p.Distance(center) <= maxExtended {
			points = append(points, p)
		}
	}
	return points
}

// linspace returns n evenly spaced samples from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	step := (stop - start) / float64(n-1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)*step + start
	}
	xs[n-1] = stop
	return xs
}

// radialPoint returns the point at the given radius from center in the
// direction a ray with the given heading sweeps through.
func radialPoint(center curve.Point, radius, heading float64) curve.Point {
	return curve.Pt(
		center.X+radius*math.Sin(heading),
		center.Y-radius*math.Cos(heading),
	)
}
