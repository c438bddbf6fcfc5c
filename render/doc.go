// Package render hosts the gridfx pipeline family on WebGPU.
//
// # Passes
//
// A frame is recorded into one render pass in fixed program order:
//
//  1. Grid texture pass: a clip-space quad sampled from the bound grid
//     texture (group 0: binding 0 texture, binding 1 sampler).
//  2. Lattice diagnostics (optional): the raw lattice vertices as points.
//  3. Cell pass: filled lattice cells as indexed triangles, colored by
//     the overlay fragment stage with the cell flag.
//  4. Overlay quads: screen-space quads, each preceded by its own
//     push-constant write carrying the draw's cursor flag.
//
// Push constants are not double-buffered per invocation: the write and
// its draw are recorded strictly in program order, one write per draw.
// planFrame produces that order as data, so the invariant is testable
// without a GPU.
//
// # Targets
//
// Rendering goes to a Target: SurfaceTarget presents to a window
// swapchain, TextureTarget renders offscreen and can read pixels back
// for golden tests and headless use.
//
// # Setup errors
//
// Shader validation, pipeline creation, and binding mismatches surface
// as errors from NewRenderer and SetTexture. They are fatal
// configuration errors; per-frame recording does not re-validate.
package render
