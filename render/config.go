package render

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gridfx/gridfx"
)

// defaultMaxOverlayQuads bounds the dynamic overlay vertex buffer. The
// cursor plus a handful of highlight quads fits comfortably.
const defaultMaxOverlayQuads = 16

// Config describes a renderer: viewport size, the cell lattices it
// composites, and pass behavior. Values are fixed at NewRenderer except
// the viewport, which Resize updates.
type Config struct {
	// Width and Height are the viewport size in physical pixels.
	Width  uint32
	Height uint32

	// Grids are the cell lattices composited by the cell pass. Each gets
	// its own static vertex buffer and preallocated index buffer.
	Grids []gridfx.GridSpec

	// MaxOverlayQuads caps the overlay draws per frame.
	MaxOverlayQuads int

	// Diagnostics selects the clip-space-visualizing fragment variant
	// for the overlay family instead of the cursor-flag variant.
	Diagnostics bool

	// ClearColor fills the target before the first pass.
	ClearColor wgpu.Color

	// AddressMode is the grid sampler's UV addressing outside [0,1].
	AddressMode wgpu.AddressMode

	// PresentMode applies to surface targets created from this config.
	PresentMode wgpu.PresentMode
}

// DefaultConfig returns a config for a w x h viewport with no lattices:
// dark-gray clear, repeat addressing, vsync presentation.
func DefaultConfig(w, h uint32) Config {
	return Config{
		Width:           w,
		Height:          h,
		MaxOverlayQuads: defaultMaxOverlayQuads,
		ClearColor:      wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
		AddressMode:     wgpu.AddressModeRepeat,
		PresentMode:     wgpu.PresentModeFifo,
	}
}

// Option customizes a Config.
type Option func(*Config)

// WithGrid appends a cell lattice to the composition.
func WithGrid(spec gridfx.GridSpec) Option {
	return func(c *Config) {
		c.Grids = append(c.Grids, spec)
	}
}

// WithDiagnostics switches the overlay family to the clip-space
// diagnostic fragment variant.
func WithDiagnostics() Option {
	return func(c *Config) {
		c.Diagnostics = true
	}
}

// WithClearColor sets the pass clear color.
func WithClearColor(r, g, b, a float64) Option {
	return func(c *Config) {
		c.ClearColor = wgpu.Color{R: r, G: g, B: b, A: a}
	}
}

// WithMaxOverlayQuads sets the per-frame overlay draw capacity.
func WithMaxOverlayQuads(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxOverlayQuads = n
		}
	}
}

// WithAddressMode sets the grid sampler address mode. Out-of-range UV
// behavior is entirely the sampler's; the grid pass imposes no clamping.
func WithAddressMode(m wgpu.AddressMode) Option {
	return func(c *Config) {
		c.AddressMode = m
	}
}

// WithPresentMode sets the present mode for surface targets.
func WithPresentMode(m wgpu.PresentMode) Option {
	return func(c *Config) {
		c.PresentMode = m
	}
}

// apply returns cfg with opts applied.
func (c Config) apply(opts ...Option) Config {
	for _, o := range opts {
		o(&c)
	}
	return c
}
