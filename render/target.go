package render

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gridfx/gridfx"
)

// readbackAlign is the required row alignment of buffer copies from
// textures, per the WebGPU spec.
const readbackAlign = 256

// Target is a color attachment the renderer records into.
type Target interface {
	// Acquire returns the view to render into. A surface target may
	// fail with ErrSurfaceOutdated after a resize; the caller skips the
	// frame.
	Acquire() (*wgpu.TextureView, error)

	// Format is the color format pipelines must be compiled for.
	Format() wgpu.TextureFormat

	// Size returns the attachment size in pixels.
	Size() (w, h uint32)

	// Finish completes the frame: a surface target presents, an
	// offscreen target is a no-op. Must be called after submission.
	Finish()

	// Discard abandons an acquired frame without presenting it. Exactly
	// one of Finish or Discard follows every successful Acquire, so a
	// surface target never leaks the swapchain texture when recording
	// fails after acquisition.
	Discard()
}

// SurfaceTarget renders into a window swapchain.
type SurfaceTarget struct {
	dev     *Device
	surface *wgpu.Surface
	config  wgpu.SurfaceConfiguration

	frame *wgpu.Texture
	view  *wgpu.TextureView
}

// NewSurfaceTarget configures the surface for a w x h swapchain. The
// format prefers an sRGB variant when the surface offers one.
func NewSurfaceTarget(dev *Device, surface *wgpu.Surface, w, h uint32, presentMode wgpu.PresentMode) (*SurfaceTarget, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	caps := surface.GetCapabilities(dev.Adapter())
	if len(caps.Formats) == 0 {
		return nil, fmt.Errorf("render: surface reports no formats")
	}
	format := caps.Formats[0]
	for _, f := range caps.Formats {
		if f == wgpu.TextureFormatBGRA8UnormSrgb || f == wgpu.TextureFormatRGBA8UnormSrgb {
			format = f
			break
		}
	}

	t := &SurfaceTarget{
		dev:     dev,
		surface: surface,
		config: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			Width:       w,
			Height:      h,
			PresentMode: presentMode,
			AlphaMode:   caps.AlphaModes[0],
		},
	}
	t.configure()
	return t, nil
}

func (t *SurfaceTarget) configure() {
	t.surface.Configure(t.dev.Adapter(), t.dev.Handle(), &t.config)
}

// Resize reconfigures the swapchain. Zero dimensions are ignored.
func (t *SurfaceTarget) Resize(w, h uint32) {
	if w == 0 || h == 0 {
		return
	}
	t.config.Width = w
	t.config.Height = h
	t.configure()
	gridfx.Logger().Info("surface resized", "width", w, "height", h)
}

// Acquire gets the next swapchain texture. On failure the surface is
// reconfigured and ErrSurfaceOutdated returned so the caller skips the
// frame; the next tick acquires a fresh swapchain.
func (t *SurfaceTarget) Acquire() (*wgpu.TextureView, error) {
	frame, err := t.surface.GetCurrentTexture()
	if err != nil {
		gridfx.Logger().Warn("outdated surface texture", "err", err)
		t.configure()
		return nil, fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	}
	view, err := frame.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("render: swapchain view: %w", err)
	}
	t.frame = frame
	t.view = view
	return view, nil
}

// Format returns the configured swapchain format.
func (t *SurfaceTarget) Format() wgpu.TextureFormat { return t.config.Format }

// Size returns the configured swapchain size.
func (t *SurfaceTarget) Size() (w, h uint32) { return t.config.Width, t.config.Height }

// Finish presents the acquired frame and releases its handles.
func (t *SurfaceTarget) Finish() {
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	t.surface.Present()
	if t.frame != nil {
		t.frame.Release()
		t.frame = nil
	}
}

// Discard releases the acquired frame without presenting it.
func (t *SurfaceTarget) Discard() {
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.frame != nil {
		t.frame.Release()
		t.frame = nil
	}
}

// TextureTarget renders offscreen into an RGBA8 texture that supports
// pixel readback. Used for golden tests and headless composition.
type TextureTarget struct {
	dev     *Device
	texture *wgpu.Texture
	view    *wgpu.TextureView
	width   uint32
	height  uint32
}

// NewTextureTarget creates a w x h offscreen color attachment.
func NewTextureTarget(dev *Device, w, h uint32) (*TextureTarget, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	texture, err := dev.Handle().CreateTexture(&wgpu.TextureDescriptor{
		Label:     "offscreen target",
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              w,
			Height:             h,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8Unorm,
		MipLevelCount: 1,
		SampleCount:   1,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("render: offscreen texture: %w", err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("render: offscreen view: %w", err)
	}
	return &TextureTarget{dev: dev, texture: texture, view: view, width: w, height: h}, nil
}

// Acquire returns the offscreen view. It never fails.
func (t *TextureTarget) Acquire() (*wgpu.TextureView, error) { return t.view, nil }

// Format returns the offscreen color format.
func (t *TextureTarget) Format() wgpu.TextureFormat { return wgpu.TextureFormatRGBA8Unorm }

// Size returns the attachment size.
func (t *TextureTarget) Size() (w, h uint32) { return t.width, t.height }

// Finish is a no-op for offscreen targets.
func (t *TextureTarget) Finish() {}

// Discard is a no-op for offscreen targets; the view is persistent.
func (t *TextureTarget) Discard() {}

// Close releases the offscreen texture.
func (t *TextureTarget) Close() {
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

// ReadPixels copies the rendered texture into host memory and returns
// it as an RGBA image. It blocks until the GPU completes the copy.
func (t *TextureTarget) ReadPixels() (*image.RGBA, error) {
	device := t.dev.Handle()

	paddedRow := alignUp(t.width*4, readbackAlign)
	size := uint64(paddedRow) * uint64(t.height)

	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "readback buffer",
		Size:  size,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return nil, fmt.Errorf("render: readback buffer: %w", err)
	}
	defer buf.Release()

	encoder, err := device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("render: readback encoder: %w", err)
	}
	defer encoder.Release()

	encoder.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture:  t.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyBuffer{
			Buffer: buf,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  paddedRow,
				RowsPerImage: t.height,
			},
		},
		&wgpu.Extent3D{
			Width:              t.width,
			Height:             t.height,
			DepthOrArrayLayers: 1,
		},
	)

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("render: readback submit: %w", err)
	}
	t.dev.Queue().Submit(cmd)
	cmd.Release()

	var status wgpu.BufferMapAsyncStatus
	if err := buf.MapAsync(wgpu.MapModeRead, 0, size, func(s wgpu.BufferMapAsyncStatus) {
		status = s
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadback, err)
	}
	device.Poll(true, nil)
	if status != wgpu.BufferMapAsyncStatusSuccess {
		return nil, fmt.Errorf("%w: map status %d", ErrReadback, status)
	}
	defer buf.Unmap()

	data := buf.GetMappedRange(0, uint(size))
	img := image.NewRGBA(image.Rect(0, 0, int(t.width), int(t.height)))
	for y := uint32(0); y < t.height; y++ {
		src := data[y*paddedRow : y*paddedRow+t.width*4]
		dst := img.Pix[int(y)*img.Stride : int(y)*img.Stride+int(t.width)*4]
		copy(dst, src)
	}
	return img, nil
}

func alignUp(v, align uint32) uint32 {
	return (v + align - 1) / align * align
}
