package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gridfx/gridfx"
)

// latticeBuffers is the GPU residency of one cell lattice: a static
// vertex buffer holding the NDC lattice, and a preallocated dynamic
// index buffer rewritten each frame with the filled cells.
type latticeBuffers struct {
	spec        gridfx.GridSpec
	vertices    *wgpu.Buffer
	indices     *wgpu.Buffer
	vertexCount uint32
	indexCap    int // capacity in uint32 indices
}

func (l *latticeBuffers) release() {
	if l.vertices != nil {
		l.vertices.Release()
	}
	if l.indices != nil {
		l.indices.Release()
	}
}

// newLatticeBuffers uploads the lattice for the given viewport size.
func newLatticeBuffers(dev *Device, spec gridfx.GridSpec, w, h uint32) (*latticeBuffers, error) {
	ndc := gridfx.NormalizeToNDC(spec.Lattice(), w, h)

	vbuf, err := newStaticVertexBuffer(dev, "lattice vertices", ndc)
	if err != nil {
		return nil, err
	}

	ibuf, err := dev.Handle().CreateBuffer(&wgpu.BufferDescriptor{
		Label: "lattice indices",
		Size:  uint64(spec.MaxIndexCount()) * 4,
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		vbuf.Release()
		return nil, fmt.Errorf("render: lattice index buffer: %w", err)
	}

	return &latticeBuffers{
		spec:        spec,
		vertices:    vbuf,
		indices:     ibuf,
		vertexCount: uint32(len(ndc)),
		indexCap:    spec.MaxIndexCount(),
	}, nil
}

// rewrite re-uploads the lattice vertices after a viewport change. NDC
// depends on the viewport, so resize invalidates the static geometry.
func (l *latticeBuffers) rewrite(dev *Device, w, h uint32) {
	ndc := gridfx.NormalizeToNDC(l.spec.Lattice(), w, h)
	dev.Queue().WriteBuffer(l.vertices, 0, gridfx.VertexBytes(ndc))
}

// newStaticVertexBuffer creates a vertex buffer and uploads vs once.
func newStaticVertexBuffer(dev *Device, label string, vs []gridfx.Vertex) (*wgpu.Buffer, error) {
	buf, err := dev.Handle().CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(vs)) * gridfx.VertexStride,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", label, err)
	}
	dev.Queue().WriteBuffer(buf, 0, gridfx.VertexBytes(vs))
	return buf, nil
}

// newOverlayBuffer preallocates the dynamic vertex buffer shared by all
// overlay quads of a frame: four vertices per quad, rewritten per frame.
func newOverlayBuffer(dev *Device, maxQuads int) (*wgpu.Buffer, error) {
	buf, err := dev.Handle().CreateBuffer(&wgpu.BufferDescriptor{
		Label: "overlay quads",
		Size:  uint64(maxQuads) * 4 * gridfx.VertexStride,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("render: overlay buffer: %w", err)
	}
	return buf, nil
}

// fullscreenQuad is the clip-space rectangle of the grid texture pass:
// two CCW triangles spanning (-1,-1) to (1,1), so the derived UV covers
// the full texture.
var fullscreenQuad = []gridfx.Vertex{
	{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1},
	{X: -1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
}
