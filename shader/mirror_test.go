package shader

import (
	"math"
	"testing"

	"github.com/gridfx/gridfx"
)

func TestGridUV_Remap(t *testing.T) {
	tests := []struct {
		name string
		pos  gridfx.Vertex
		want gridfx.Vertex
	}{
		{"bottom-left corner", gridfx.V(-1, -1), gridfx.V(0, 0)},
		{"top-right corner", gridfx.V(1, 1), gridfx.V(1, 1)},
		{"top-left corner", gridfx.V(-1, 1), gridfx.V(0, 1)},
		{"bottom-right corner", gridfx.V(1, -1), gridfx.V(1, 0)},
		{"center", gridfx.V(0, 0), gridfx.V(0.5, 0.5)},
		{"quarter", gridfx.V(-0.5, 0.5), gridfx.V(0.25, 0.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridUV(tt.pos)
			if !approxVertex(got, tt.want, 1e-6) {
				t.Errorf("GridUV(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

// UV must land in [0,1]^2 for any clip-space position in [-1,1]^2.
func TestGridUV_Range(t *testing.T) {
	for x := float32(-1); x <= 1; x += 0.125 {
		for y := float32(-1); y <= 1; y += 0.125 {
			uv := GridUV(gridfx.V(x, y))
			if uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
				t.Fatalf("GridUV(%v, %v) = %v out of [0,1]^2", x, y, uv)
			}
		}
	}
}

func TestOverlayColor(t *testing.T) {
	tests := []struct {
		name string
		flag gridfx.CursorFlag
		want Color
	}{
		{"cursor", gridfx.FlagCursor, Color{1, 0, 0, 1}},
		{"cell", gridfx.FlagCell, Color{0.5, 0.3, 0, 1}},
		// Values other than 0 and 1 are unspecified by the contract but
		// must take the else branch.
		{"two", gridfx.CursorFlag(2), Color{0.5, 0.3, 0, 1}},
		{"seven", gridfx.CursorFlag(7), Color{0.5, 0.3, 0, 1}},
		{"max", gridfx.CursorFlag(math.MaxUint32), Color{0.5, 0.3, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlayColor(tt.flag); got != tt.want {
				t.Errorf("OverlayColor(%d) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestDiagnosticColor(t *testing.T) {
	tests := []struct {
		name string
		pos  gridfx.Vertex
		want Color
	}{
		{"bottom-left", gridfx.V(-1, -1), Color{0, 0, 0, 1}},
		{"top-right", gridfx.V(1, 1), Color{1, 1, 0, 1}},
		{"center", gridfx.V(0, 0), Color{0.5, 0.5, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiagnosticColor(tt.pos)
			if !approxColor(got, tt.want, 1e-6) {
				t.Errorf("DiagnosticColor(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

// The rg channels must stay in [0,1] for clip positions in [-1,1]^2.
func TestDiagnosticColor_Range(t *testing.T) {
	for x := float32(-1); x <= 1; x += 0.25 {
		for y := float32(-1); y <= 1; y += 0.25 {
			c := DiagnosticColor(gridfx.V(x, y))
			if c[0] < 0 || c[0] > 1 || c[1] < 0 || c[1] > 1 {
				t.Fatalf("DiagnosticColor(%v, %v) = %v out of range", x, y, c)
			}
		}
	}
}

func TestOverlayVertex_Passthrough(t *testing.T) {
	positions := []gridfx.Vertex{
		gridfx.V(0, 0),
		gridfx.V(-1, -1),
		gridfx.V(1, 1),
		gridfx.V(0.001, -0.999),
		// Near-zero components: the rejected reciprocal transform would
		// diverge here; the pass-through must not.
		gridfx.V(1e-7, -1e-7),
	}
	for _, p := range positions {
		if got := OverlayVertex(p); got != p {
			t.Errorf("OverlayVertex(%v) = %v, want identity", p, got)
		}
	}
}

func approxVertex(a, b gridfx.Vertex, eps float64) bool {
	return math.Abs(float64(a.X-b.X)) <= eps && math.Abs(float64(a.Y-b.Y)) <= eps
}

func approxColor(a, b Color, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}
