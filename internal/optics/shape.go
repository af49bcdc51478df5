package optics

import "math"

// EvalShape evaluates the pole-face profile polynomial at each sample in xs.
//
// Between the breakpoints the value is the plain polynomial sum c[i]*x^i.
// Below the lower breakpoint and from the upper breakpoint on, the profile
// continues as the tangent line anchored at that breakpoint, killing all
// curvature: a physical pole face cannot keep bending arbitrarily far from
// the magnet's working aperture. The tangent shares the polynomial's value
// and first derivative at the anchor, so the pieces join C1.
//
// Breakpoints may be ±Inf, in which case the corresponding tail never
// applies. Branch selection is strict-less-than on both cuts, matching the
// seam convention the dipole geometry depends on.
func EvalShape(xs []float64, coefficients []float64, lower, upper float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		switch {
		case x < lower:
			ys[i] = tangentAt(coefficients, lower, x)
		case x < upper:
			ys[i] = polynomialAt(coefficients, x)
		default:
			ys[i] = tangentAt(coefficients, upper, x)
		}
	}
	return ys
}

func polynomialAt(coefficients []float64, x float64) float64 {
	var y float64
	for i, c := range coefficients {
		y += c * math.Pow(x, float64(i))
	}
	return y
}

// tangentAt evaluates, at x, the tangent line of the polynomial anchored at
// the breakpoint.
func tangentAt(coefficients []float64, anchor, x float64) float64 {
	var y0, m float64
	for i, c := range coefficients {
		y0 += c * math.Pow(anchor, float64(i))
		m += c * float64(i) * math.Pow(anchor, float64(i-1))
	}
	return m*(x-anchor) + y0
}
