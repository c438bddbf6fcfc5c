// Package shader holds the WGSL stages of the gridfx pipeline family,
// their entry-point names, and CPU reference mirrors of each stage's
// contract.
//
// The grid module carries the textured-grid vertex and fragment stages.
// The overlay module carries one shared pass-through vertex stage and two
// alternate fragment entry points: the push-constant-driven cursor
// highlight and the clip-space diagnostic. Pipelines are parameterized by
// entry point instead of duplicating the vertex contract per variant.
package shader

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/grid.wgsl
var gridSource string

//go:embed shaders/overlay.wgsl
var overlaySource string

// Entry-point names within the embedded modules.
const (
	// VertexEntry is the vertex entry point of both modules. The two
	// stages consume the identical vertex input contract: one Float32x2
	// position attribute at location 0.
	VertexEntry = "vs_main"

	// GridFragmentEntry samples the bound grid texture.
	GridFragmentEntry = "fs_main"

	// OverlayFragmentEntry applies the is_cursor push constant.
	OverlayFragmentEntry = "fs_overlay"

	// DiagnosticFragmentEntry visualizes clip-space position.
	DiagnosticFragmentEntry = "fs_diagnostic"
)

// Grid returns the WGSL source of the grid module.
func Grid() string { return gridSource }

// Overlay returns the WGSL source of the overlay module.
func Overlay() string { return overlaySource }

// Validate compiles every embedded module through naga and returns the
// first failure. The renderer calls this at construction so malformed
// shader text surfaces as a fatal setup error instead of a driver error
// at submission time.
func Validate() error {
	for _, m := range []struct {
		name   string
		source string
	}{
		{"grid.wgsl", gridSource},
		{"overlay.wgsl", overlaySource},
	} {
		if _, err := naga.Compile(m.source); err != nil {
			return fmt.Errorf("shader: %s: %w", m.name, err)
		}
	}
	return nil
}
