package optics

import (
	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/svg"
)

// Plane draws a zero-length transverse marker (foil, aperture, detector
// plane): a straight segment perpendicular to the heading, extending left
// units to one side of the ray and right units to the other. The ray does
// not advance.
func Plane(ray Ray, left, right float64) []svg.Path {
	return []svg.Path{
		svg.Line(svg.ClassPlane, svg.ZOrderBody, ray.Transverse(left), ray.Transverse(-right)),
	}
}

// PlaneSym draws a plane extending half units symmetrically about the ray.
func PlaneSym(ray Ray, half float64) []svg.Path {
	return Plane(ray, half, half)
}

// Drift draws a field-free travel segment of the given length along the
// heading and returns the ray at its end.
func Drift(ray Ray, length float64) ([]svg.Path, Ray) {
	end := ray.Advanced(length)
	paths := []svg.Path{
		svg.Line(svg.ClassCentralRay, svg.ZOrderOverlay, ray.Position, end),
	}
	return paths, Ray{Position: end, Heading: ray.Heading}
}

// Multipole draws a focusing multipole as a rectangular block of the given
// length along the heading and radius (aperture half-width) to either side,
// with the central ray passing through its middle. Multipoles do not bend
// the reference ray, so the heading is unchanged.
func Multipole(ray Ray, length, radius float64) ([]svg.Path, Ray) {
	end := ray.Advanced(length)
	exit := Ray{Position: end, Heading: ray.Heading}

	block := svg.Path{
		Class:  svg.ClassMagnet,
		ZOrder: svg.ZOrderBody,
		Commands: []svg.Command{
			svg.MoveTo{P: ray.Transverse(radius)},
			svg.LineTo{P: ray.Transverse(-radius)},
			svg.LineTo{P: exit.Transverse(-radius)},
			svg.LineTo{P: exit.Transverse(radius)},
			svg.ClosePath{},
		},
	}
	paths := []svg.Path{
		block,
		svg.Line(svg.ClassCentralRay, svg.ZOrderOverlay, ray.Position, end),
	}
	return paths, exit
}
