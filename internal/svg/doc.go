// Package svg holds the drawing's path model and renders it to an SVG
// document.
//
// A drawing is an ordered list of Path records. Each record carries a style
// class, a z-order, and a sequence of draw commands from a closed variant
// set (MoveTo, LineTo, ArcTo, ClosePath). Serialization stable-sorts the
// records by z-order so magnet bodies layer beneath reference rays and
// guides regardless of the order elements were drawn in, then writes a
// fixed 1x1 viewBox document with the four beamline style classes embedded.
package svg
