package gridfx

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// The interfaces below are the seams to the host application. gridfx
// renders; windowing, asset decoding, text, and audio are supplied by
// collaborators behind these contracts and are not implemented here.

// Window is the surface and frame-event source the renderer draws into.
// Implementations wrap a platform windowing layer.
type Window interface {
	// Size returns the current drawable size in physical pixels.
	Size() (width, height uint32)

	// ScaleFactor returns the DPI scale of the window.
	ScaleFactor() float64

	// SurfaceDescriptor returns the platform surface descriptor used to
	// create the WebGPU surface.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run drives the frame loop, invoking render once per frame tick and
	// resize on size changes, until the window closes.
	Run(render func() error, resize func(width, height uint32)) error
}

// AssetSource supplies decoded images for the grid texture. Decoding and
// caching happen on the host side; gridfx only uploads.
type AssetSource interface {
	// GridImage returns the image currently backing the grid texture.
	GridImage() (image.Image, error)
}

// TextLayer composites text independently of the grid and overlay passes.
// The renderer notifies it of the frame size so layout can track resizes.
type TextLayer interface {
	// Layout prepares the layer for a frame of the given pixel size.
	Layout(width, height uint32)
}

// AudioSink receives playback triggers from host events. Rendering never
// calls it; it is declared here so hosts share one contract.
type AudioSink interface {
	// Play starts playback of the named cue.
	Play(cue string) error
}
