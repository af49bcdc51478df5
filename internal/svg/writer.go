package svg

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// documentHeader is fixed: the drawing lives in a 1x1 user-unit square
// rendered at one meter on a side.
const documentHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox=".00 .00 1.00 1.00" width="1m" height="1m">
  <style>
    .magnet { fill: #8b959e; stroke: none; }
    .plane { fill: none; stroke: #8b959e; stroke-width: .01; stroke-linecap: butt; }
    .central-ray { fill: none; stroke: #750014; stroke-width: .01; stroke-linecap: round; }
    .guide { fill: none; stroke: #ffffff; stroke-width: .005; stroke-linecap: butt; stroke-dasharray: .01 }
  </style>
`

// WriteDocument renders paths as a complete SVG document on w. Records are
// stable-sorted by z-order, so insertion order breaks ties.
func WriteDocument(w io.Writer, paths []Path) error {
	sorted := make([]Path, len(paths))
	copy(sorted, paths)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ZOrder < sorted[j].ZOrder
	})

	var doc strings.Builder
	doc.WriteString(documentHeader)
	for _, path := range sorted {
		fmt.Fprintf(&doc, "  <path class=%q d=%q />\n", path.Class, PathData(path.Commands))
	}
	doc.WriteString("</svg>\n")

	_, err := io.WriteString(w, doc.String())
	return err
}

// WriteFile writes the document to path.
func WriteFile(path string, paths []Path) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDocument(f, paths); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PathData renders commands as an SVG path data string: the command letter
// immediately followed by its comma-joined operands, commands separated by
// single spaces.
func PathData(commands []Command) string {
	parts := make([]string, len(commands))
	for i, command := range commands {
		switch c := command.(type) {
		case MoveTo:
			parts[i] = "M" + joinOperands(c.P.X, c.P.Y)
		case LineTo:
			parts[i] = "L" + joinOperands(c.P.X, c.P.Y)
		case ArcTo:
			parts[i] = "A" + joinOperands(
				c.Radii.X, c.Radii.Y,
				c.XRotation, flag(c.LargeArc), flag(c.Sweep),
				c.P.X, c.P.Y,
			)
		case ClosePath:
			parts[i] = "Z"
		default:
			// Command is sealed; a new variant is a programming error.
			panic(fmt.Sprintf("svg: unknown command %T", command))
		}
	}
	return strings.Join(parts, " ")
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func joinOperands(operands ...float64) string {
	parts := make([]string, len(operands))
	for i, operand := range operands {
		parts[i] = FormatNumber(operand)
	}
	return strings.Join(parts, ",")
}

// FormatNumber renders an operand as a bare integer when the value is
// exactly integral, and as a fixed 6-decimal real otherwise.
func FormatNumber(x float64) string {
	if x == math.Trunc(x) && !math.IsInf(x, 0) {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatFloat(x, 'f', 6, 64)
}
