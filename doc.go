// Package gridfx provides a minimal two-pass GPU compositor for textured
// cell grids with a push-constant-driven cursor overlay.
//
// # Overview
//
// gridfx renders a frame in two passes:
//
//   - Grid pass: a full-screen (or sub-screen) textured mesh sampled from a
//     bound 2D texture. The vertex stage derives UV coordinates from clip
//     space via uv = (pos + (1,1)) * 0.5.
//   - Overlay pass: screen-space quads colored per draw call by a 32-bit
//     push constant flag. Flag value 1 paints the cursor red; every other
//     value paints the fixed cell color.
//
// # Quick Start
//
//	dev, err := render.NewDevice(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	target, err := render.NewTextureTarget(dev, 1200, 800)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer target.Close()
//
//	grid := gridfx.GridSpec{Cols: 7, Rows: 5, CellSize: 64}
//	r, err := render.NewRenderer(dev, target, render.DefaultConfig(1200, 800),
//	    render.WithGrid(grid))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	frame := r.NewFrame()
//	frame.FillCells(0, grid, cells)
//	frame.Cursor(gridfx.V(600, 400), grid.CellSize)
//	r.RecordFrame(target, frame)
//
// # Architecture
//
// The module is organized into:
//   - Root package: data model (vertices, grid geometry, cursor flags) and
//     collaborator interfaces. Pure Go, no GPU dependency at runtime.
//   - shader: embedded WGSL stages, validation, and CPU reference mirrors
//     of every stage contract.
//   - render: WebGPU host code (pipelines, bind groups, frame recording,
//     render targets).
//
// # Coordinate System
//
// Pixel space has its origin at the top-left with Y increasing downward.
// Clip space is the WebGPU convention: [-1,1] per axis, Y increasing
// upward. NDC converts between the two, flipping Y.
//
// # Logging
//
// gridfx is silent by default. Call SetLogger to enable structured logging
// via log/slog.
package gridfx
