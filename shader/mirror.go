package shader

import "github.com/gridfx/gridfx"

// CPU reference mirrors of the shader stage contracts. Tests pin the
// stage semantics against these without a GPU, and hosts can use them to
// predict pixel output (e.g. picking).

// Color is an RGBA color with channels in [0,1], matching the vec4<f32>
// fragment output.
type Color [4]float32

// Overlay palette. Must match the literals in overlay.wgsl.
var (
	// CursorColor is the fs_overlay output when is_cursor == 1.
	CursorColor = Color{1, 0, 0, 1}

	// CellColor is the fs_overlay output for every other flag value.
	CellColor = Color{0.5, 0.3, 0, 1}
)

// GridUV mirrors the grid vertex stage's UV derivation:
// uv = (pos + (1,1)) * 0.5.
func GridUV(pos gridfx.Vertex) gridfx.Vertex {
	return gridfx.Vertex{
		X: (pos.X + 1) * 0.5,
		Y: (pos.Y + 1) * 0.5,
	}
}

// OverlayVertex mirrors the overlay vertex stage: a pure pass-through of
// the clip-space position.
func OverlayVertex(pos gridfx.Vertex) gridfx.Vertex {
	return pos
}

// OverlayColor mirrors fs_overlay: exactly flag value 1 selects the
// cursor color; 0 and every unspecified value take the else branch.
func OverlayColor(flag gridfx.CursorFlag) Color {
	if flag == gridfx.FlagCursor {
		return CursorColor
	}
	return CellColor
}

// DiagnosticColor mirrors fs_diagnostic: rg = clip_xy * 0.5 + 0.5.
func DiagnosticColor(pos gridfx.Vertex) Color {
	return Color{pos.X*0.5 + 0.5, pos.Y*0.5 + 0.5, 0, 1}
}
