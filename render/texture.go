package render

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	xdraw "golang.org/x/image/draw"

	"github.com/gridfx/gridfx"
)

// GridTexture is the bound texture+sampler pair of the grid pass. It is
// shared read-only across all fragment invocations of a frame and is
// rebound only when the underlying image changes.
type GridTexture struct {
	texture   *wgpu.Texture
	view      *wgpu.TextureView
	sampler   *wgpu.Sampler
	bindGroup *wgpu.BindGroup

	width  uint32
	height uint32
}

// newGridTexture uploads img as an RGBA8 texture and builds the grid
// pass bind group (group 0: binding 0 texture, binding 1 sampler).
// img is converted to RGBA on the CPU; decoding is the asset source's
// concern, not ours.
func newGridTexture(dev *Device, layout *wgpu.BindGroupLayout, img image.Image, addressMode wgpu.AddressMode) (*GridTexture, error) {
	bounds := img.Bounds()
	w := uint32(bounds.Dx())
	h := uint32(bounds.Dy())

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 {
		converted := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(converted, converted.Bounds(), img, bounds.Min, xdraw.Src)
		rgba = converted
	}

	device := dev.Handle()
	texture, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     "grid texture",
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              w,
			Height:             h,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("render: grid texture: %w", err)
	}

	dev.Queue().WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		rgba.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&wgpu.Extent3D{
			Width:              w,
			Height:             h,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("render: grid texture view: %w", err)
	}

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "grid sampler",
		AddressModeU:  addressMode,
		AddressModeV:  addressMode,
		AddressModeW:  addressMode,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		view.Release()
		texture.Release()
		return nil, fmt.Errorf("render: grid sampler: %w", err)
	}

	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "grid bind group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: view},
			{Binding: 1, Sampler: sampler},
		},
	})
	if err != nil {
		sampler.Release()
		view.Release()
		texture.Release()
		return nil, fmt.Errorf("render: grid bind group: %w", err)
	}

	gridfx.Logger().Debug("grid texture uploaded", "width", w, "height", h)
	return &GridTexture{
		texture:   texture,
		view:      view,
		sampler:   sampler,
		bindGroup: bindGroup,
		width:     w,
		height:    h,
	}, nil
}

// Size returns the texture dimensions in texels.
func (t *GridTexture) Size() (w, h uint32) { return t.width, t.height }

// release frees the texture's GPU objects.
func (t *GridTexture) release() {
	if t.bindGroup != nil {
		t.bindGroup.Release()
	}
	if t.sampler != nil {
		t.sampler.Release()
	}
	if t.view != nil {
		t.view.Release()
	}
	if t.texture != nil {
		t.texture.Release()
	}
}
