// Package optics renders the individual beamline elements.
//
// Every renderer is a pure function: it takes the current reference ray and
// the element's physical parameters and returns the element's path records
// plus the ray state downstream of the element. Nothing is mutated, so a
// given configuration always produces byte-identical geometry.
//
// The dipole is the interesting element: it derives the bend radius from the
// reference particle's relativistic momentum and the field strength, then
// shapes the entry and exit pole faces from polynomial profiles with linear
// tails (EvalShape) and assembles the iron block as a single closed polygon
// bounded by two circular arcs.
package optics
