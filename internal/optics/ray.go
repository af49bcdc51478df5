package optics

import (
	"math"

	"honnef.co/go/curve"
)

// Ray is the reference trajectory's state at one point along the beamline:
// a position in drawing units and a heading in radians. Heading accumulates
// the rotation applied by bending elements; straight elements leave it
// untouched.
type Ray struct {
	Position curve.Point
	Heading  float64
}

// Advanced returns the point reached by travelling length along the heading.
func (r Ray) Advanced(length float64) curve.Point {
	return r.Position.Translate(curve.Vec(
		length*math.Cos(r.Heading),
		length*math.Sin(r.Heading),
	))
}

// Transverse returns the point offset distance to the left of the heading
// (negative distance offsets to the right).
func (r Ray) Transverse(distance float64) curve.Point {
	return r.Position.Translate(curve.Vec(
		distance*math.Sin(r.Heading),
		-distance*math.Cos(r.Heading),
	))
}
