package render

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gridfx/gridfx"
)

// Renderer records the two-pass composition into a target: the textured
// grid pass, then the push-constant-driven overlay family (lattice
// points, filled cells, overlay quads). One Renderer serves one target
// format; pipelines are compiled once at construction.
type Renderer struct {
	dev    *Device
	cfg    Config
	format wgpu.TextureFormat

	pipelines  *pipelines
	fsQuad     *wgpu.Buffer
	lattices   []*latticeBuffers
	overlayBuf *wgpu.Buffer
	texture    *GridTexture
}

// NewRenderer compiles the pipeline family for target's format and
// allocates the static and per-frame buffers described by cfg.
func NewRenderer(dev *Device, target Target, cfg Config, opts ...Option) (*Renderer, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	cfg = cfg.apply(opts...)

	r := &Renderer{dev: dev, cfg: cfg, format: target.Format()}

	var err error
	r.pipelines, err = buildPipelines(dev, r.format, cfg.Diagnostics)
	if err != nil {
		return nil, err
	}

	r.fsQuad, err = newStaticVertexBuffer(dev, "fullscreen quad", fullscreenQuad)
	if err != nil {
		r.Close()
		return nil, err
	}

	for _, spec := range cfg.Grids {
		lb, err := newLatticeBuffers(dev, spec, cfg.Width, cfg.Height)
		if err != nil {
			r.Close()
			return nil, err
		}
		r.lattices = append(r.lattices, lb)
	}

	r.overlayBuf, err = newOverlayBuffer(dev, cfg.MaxOverlayQuads)
	if err != nil {
		r.Close()
		return nil, err
	}

	gridfx.Logger().Info("renderer ready",
		"format", r.format,
		"lattices", len(r.lattices),
		"maxOverlayQuads", cfg.MaxOverlayQuads,
	)
	return r, nil
}

// Config returns the renderer's effective configuration.
func (r *Renderer) Config() Config { return r.cfg }

// NewFrame returns an empty frame sized for this renderer's lattices.
func (r *Renderer) NewFrame() *Frame { return NewFrame(len(r.lattices)) }

// SetTexture uploads img as the grid pass texture, replacing any
// previous one. With no texture set the grid pass is skipped.
func (r *Renderer) SetTexture(img image.Image) error {
	tex, err := newGridTexture(r.dev, r.pipelines.gridLayout, img, r.cfg.AddressMode)
	if err != nil {
		return err
	}
	if r.texture != nil {
		r.texture.release()
	}
	r.texture = tex
	return nil
}

// Resize updates the viewport and re-uploads the lattice geometry, whose
// NDC positions depend on it. Surface targets are reconfigured by their
// own Resize; the two are independent.
func (r *Renderer) Resize(w, h uint32) {
	if w == 0 || h == 0 {
		return
	}
	r.cfg.Width = w
	r.cfg.Height = h
	for _, lb := range r.lattices {
		lb.rewrite(r.dev, w, h)
	}
}

// validate rejects frames that exceed the preallocated buffers before
// any GPU work is recorded.
func (r *Renderer) validate(f *Frame) error {
	if len(f.indices) != len(r.lattices) {
		return fmt.Errorf("%w: frame has %d lattices, renderer %d",
			ErrLatticeRange, len(f.indices), len(r.lattices))
	}
	for i, ix := range f.indices {
		if len(ix) > r.lattices[i].indexCap {
			return fmt.Errorf("%w: lattice %d: %d > %d",
				ErrIndexCapacity, i, len(ix), r.lattices[i].indexCap)
		}
	}
	if len(f.overlays) > r.cfg.MaxOverlayQuads {
		return fmt.Errorf("%w: %d > %d",
			ErrOverlayCapacity, len(f.overlays), r.cfg.MaxOverlayQuads)
	}
	return nil
}

// RecordFrame uploads the frame's dynamic data, records both passes, and
// submits. A surface target that has gone stale yields
// ErrSurfaceOutdated; the target has already reconfigured itself and the
// caller simply retries next tick.
//
// Once Acquire succeeds the target always sees exactly one of Finish or
// Discard: submission finishes the frame, any recording failure discards
// it so the acquired swapchain texture is released, not leaked.
func (r *Renderer) RecordFrame(target Target, f *Frame) error {
	if err := r.validate(f); err != nil {
		return err
	}

	queue := r.dev.Queue()
	for i, ix := range f.indices {
		if len(ix) > 0 {
			queue.WriteBuffer(r.lattices[i].indices, 0, gridfx.IndexBytes(ix))
		}
	}
	for i, o := range f.overlays {
		ndc := gridfx.NormalizeToNDC(o.Quad[:], r.cfg.Width, r.cfg.Height)
		queue.WriteBuffer(r.overlayBuf,
			uint64(i)*4*gridfx.VertexStride, gridfx.VertexBytes(ndc))
	}

	view, err := target.Acquire()
	if err != nil {
		return err
	}

	encoder, err := r.dev.Handle().CreateCommandEncoder(nil)
	if err != nil {
		target.Discard()
		return fmt.Errorf("render: command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "gridfx frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.cfg.ClearColor,
			},
		},
	})

	for _, op := range planFrame(f, r.texture != nil) {
		r.execute(pass, f, op)
	}

	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		target.Discard()
		return fmt.Errorf("render: finish encoder: %w", err)
	}
	queue.Submit(cmd)
	cmd.Release()

	target.Finish()
	return nil
}

// execute replays one planned op onto the pass encoder.
func (r *Renderer) execute(pass *wgpu.RenderPassEncoder, f *Frame, op recordOp) {
	switch op.kind {
	case opSetPipeline:
		switch op.pipe {
		case pipeGrid:
			pass.SetPipeline(r.pipelines.grid)
		case pipePoints:
			pass.SetPipeline(r.pipelines.points)
		case pipeCells:
			pass.SetPipeline(r.pipelines.cells)
		case pipeOverlay:
			pass.SetPipeline(r.pipelines.overlay)
		}

	case opSetBindGroup:
		pass.SetBindGroup(0, r.texture.bindGroup, nil)

	case opPushConstants:
		pass.SetPushConstants(wgpu.ShaderStageFragment, 0, op.flag.Bytes())

	case opDrawQuad:
		pass.SetVertexBuffer(0, r.fsQuad, 0, wgpu.WholeSize)
		pass.Draw(uint32(len(fullscreenQuad)), 1, 0, 0)

	case opDrawPoints:
		lb := r.lattices[op.lattice]
		pass.SetVertexBuffer(0, lb.vertices, 0, wgpu.WholeSize)
		pass.Draw(lb.vertexCount, 1, 0, 0)

	case opDrawCells:
		lb := r.lattices[op.lattice]
		pass.SetVertexBuffer(0, lb.vertices, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(lb.indices, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(op.indexCount, 1, 0, 0, 0)

	case opDrawOverlay:
		offset := uint64(op.overlay) * 4 * gridfx.VertexStride
		pass.SetVertexBuffer(0, r.overlayBuf, offset, 4*gridfx.VertexStride)
		pass.Draw(4, 1, 0, 0)
	}
}

// Close releases the renderer's GPU objects. The device is the caller's.
func (r *Renderer) Close() {
	if r.texture != nil {
		r.texture.release()
		r.texture = nil
	}
	if r.overlayBuf != nil {
		r.overlayBuf.Release()
		r.overlayBuf = nil
	}
	for _, lb := range r.lattices {
		lb.release()
	}
	r.lattices = nil
	if r.fsQuad != nil {
		r.fsQuad.Release()
		r.fsQuad = nil
	}
	if r.pipelines != nil {
		r.pipelines.release()
		r.pipelines = nil
	}
}
