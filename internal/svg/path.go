package svg

import "honnef.co/go/curve"

// Class selects one of the fixed style rules embedded in the document.
type Class string

const (
	// ClassMagnet is a filled iron block with no stroke.
	ClassMagnet Class = "magnet"

	// ClassPlane is a thin gray marker for zero-length elements.
	ClassPlane Class = "plane"

	// ClassCentralRay is the dark red reference trajectory.
	ClassCentralRay Class = "central-ray"

	// ClassGuide is a white dashed aperture guide.
	ClassGuide Class = "guide"
)

// Z-order layers. Bodies draw first so rays and guides stay visible on top.
const (
	ZOrderBody    = 1 // magnet blocks and plane markers
	ZOrderOverlay = 2 // central rays and guides
)

// Command is a sealed interface over the draw command variants. Only
// MoveTo, LineTo, ArcTo, and ClosePath implement it. All coordinates are
// absolute drawing-space values.
type Command interface {
	command() // sealed
}

// MoveTo starts a new subpath at P.
type MoveTo struct {
	P curve.Point
}

func (MoveTo) command() {}

// LineTo draws a straight segment to P.
type LineTo struct {
	P curve.Point
}

func (LineTo) command() {}

// ArcTo draws an elliptical arc to P. LargeArc and Sweep carry the SVG
// two-point arc disambiguation flags.
type ArcTo struct {
	Radii     curve.Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
	P         curve.Point
}

func (ArcTo) command() {}

// ClosePath closes the current subpath.
type ClosePath struct{}

func (ClosePath) command() {}

// Path is one renderable path record.
type Path struct {
	Class    Class
	Commands []Command
	ZOrder   int
}

// Line builds a two-point open path.
func Line(class Class, zorder int, from, to curve.Point) Path {
	return Path{
		Class:  class,
		ZOrder: zorder,
		Commands: []Command{
			MoveTo{P: from},
			LineTo{P: to},
		},
	}
}
