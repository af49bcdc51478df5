package svg

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-2, "-2"},
		{0.15, "0.150000"},
		{-0.0000004, "-0.000000"},
		{0.2745744, "0.274574"},
		{1234.5, "1234.500000"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestPathData(t *testing.T) {
	commands := []Command{
		MoveTo{P: curve.Pt(0.15, 0.135)},
		LineTo{P: curve.Pt(0.15, 0.165)},
		ArcTo{
			Radii:    curve.Vec(0.25, 0.25),
			LargeArc: false,
			Sweep:    true,
			P:        curve.Pt(1, 0.5),
		},
		ClosePath{},
	}

	got := PathData(commands)

	assert.Equal(t, "M0.150000,0.135000 L0.150000,0.165000 A0.250000,0.250000,0,0,1,1,0.500000 Z", got)
}

func TestPathDataArcFlags(t *testing.T) {
	large := PathData([]Command{ArcTo{Radii: curve.Vec(1, 1), LargeArc: true, Sweep: false, P: curve.Pt(2, 0)}})
	small := PathData([]Command{ArcTo{Radii: curve.Vec(1, 1), LargeArc: false, Sweep: true, P: curve.Pt(2, 0)}})

	assert.Equal(t, "A1,1,0,1,0,2,0", large)
	assert.Equal(t, "A1,1,0,0,1,2,0", small)
}

func TestWriteDocumentSortsByZOrder(t *testing.T) {
	paths := []Path{
		Line(ClassCentralRay, ZOrderOverlay, curve.Pt(0, 0), curve.Pt(1, 1)),
		Line(ClassPlane, ZOrderBody, curve.Pt(0, 1), curve.Pt(1, 0)),
		Line(ClassGuide, ZOrderOverlay, curve.Pt(0, 0), curve.Pt(0, 1)),
	}

	var doc strings.Builder
	require.NoError(t, WriteDocument(&doc, paths))

	out := doc.String()
	plane := strings.Index(out, `class="plane"`)
	ray := strings.Index(out, `class="central-ray"`)
	guide := strings.Index(out, `class="guide"`)
	require.NotEqual(t, -1, plane)
	require.NotEqual(t, -1, ray)
	require.NotEqual(t, -1, guide)

	// Body layer precedes overlays; equal z-orders keep insertion order.
	assert.Less(t, plane, ray)
	assert.Less(t, ray, guide)
}

func TestWriteDocumentFixedFrame(t *testing.T) {
	var doc strings.Builder
	require.NoError(t, WriteDocument(&doc, nil))

	out := doc.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `viewBox=".00 .00 1.00 1.00" width="1m" height="1m"`)
	assert.Contains(t, out, ".magnet { fill: #8b959e; stroke: none; }")
	assert.Contains(t, out, ".central-ray { fill: none; stroke: #750014; stroke-width: .01; stroke-linecap: round; }")
	assert.Contains(t, out, ".guide { fill: none; stroke: #ffffff; stroke-width: .005; stroke-linecap: butt; stroke-dasharray: .01 }")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestWriteDocumentDoesNotReorderInput(t *testing.T) {
	paths := []Path{
		Line(ClassCentralRay, ZOrderOverlay, curve.Pt(0, 0), curve.Pt(1, 1)),
		Line(ClassPlane, ZOrderBody, curve.Pt(0, 1), curve.Pt(1, 0)),
	}

	var doc strings.Builder
	require.NoError(t, WriteDocument(&doc, paths))

	assert.Equal(t, ClassCentralRay, paths[0].Class)
	assert.Equal(t, ClassPlane, paths[1].Class)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	paths := []Path{Line(ClassPlane, ZOrderBody, curve.Pt(0, 0), curve.Pt(0, 1))}

	require.NoError(t, WriteFile(path, paths))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<path class="plane" d="M0,0 L0,1" />`)
}
