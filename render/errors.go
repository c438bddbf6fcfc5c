package render

import "errors"

// Sentinel errors for the render package.
var (
	// ErrNilDevice is returned when a constructor receives a nil device.
	ErrNilDevice = errors.New("render: nil device")

	// ErrNoAdapter is returned when no compatible GPU adapter exists.
	ErrNoAdapter = errors.New("render: no compatible adapter")

	// ErrSurfaceOutdated is returned by a surface target when the
	// swapchain no longer matches the window. The target reconfigures
	// itself; the caller skips the frame and retries on the next tick.
	ErrSurfaceOutdated = errors.New("render: surface outdated")

	// ErrLatticeRange is returned when a frame references a lattice the
	// renderer was not configured with.
	ErrLatticeRange = errors.New("render: lattice index out of range")

	// ErrIndexCapacity is returned when a frame supplies more triangle
	// indices than the lattice's preallocated index buffer holds.
	ErrIndexCapacity = errors.New("render: index data exceeds buffer capacity")

	// ErrOverlayCapacity is returned when a frame carries more overlay
	// quads than the configured maximum.
	ErrOverlayCapacity = errors.New("render: too many overlay draws")

	// ErrReadback is returned when mapping the readback buffer fails.
	ErrReadback = errors.New("render: pixel readback failed")
)
