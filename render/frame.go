package render

import (
	"github.com/gridfx/gridfx"
)

// OverlayDraw is one quad of the overlay pass: four pixel-space corners
// in triangle-strip order and the cursor flag written to the push
// constant immediately before its draw call.
type OverlayDraw struct {
	Quad [4]gridfx.Vertex
	Flag gridfx.CursorFlag
}

// Frame is the per-frame draw list. The host rebuilds it each tick and
// hands it to Renderer.RecordFrame; nothing in a Frame touches the GPU.
type Frame struct {
	showLattice bool
	indices     [][]uint32
	overlays    []OverlayDraw
}

// NewFrame returns an empty frame for a renderer compositing
// latticeCount cell lattices.
func NewFrame(latticeCount int) *Frame {
	return &Frame{indices: make([][]uint32, latticeCount)}
}

// ShowLattice enables the lattice point pass for this frame.
func (f *Frame) ShowLattice() { f.showLattice = true }

// SetIndices supplies a prebuilt triangle index list for one lattice.
func (f *Frame) SetIndices(lattice int, indices []uint32) error {
	if lattice < 0 || lattice >= len(f.indices) {
		return ErrLatticeRange
	}
	f.indices[lattice] = indices
	return nil
}

// FillCells marks cells of a lattice as filled, expanding them to the
// triangle indices the cell pass draws.
func (f *Frame) FillCells(lattice int, spec gridfx.GridSpec, cells []gridfx.CellCoord) error {
	if lattice < 0 || lattice >= len(f.indices) {
		return ErrLatticeRange
	}
	indices, err := gridfx.IndexSpace(cells, spec.Cols, 0)
	if err != nil {
		return err
	}
	f.indices[lattice] = append(f.indices[lattice], indices...)
	return nil
}

// Overlay appends a quad to the overlay pass.
func (f *Frame) Overlay(quad [4]gridfx.Vertex, flag gridfx.CursorFlag) {
	f.overlays = append(f.overlays, OverlayDraw{Quad: quad, Flag: flag})
}

// Cursor appends the cursor highlight: a size x size quad centered on
// the pixel-space position, drawn with the cursor flag set.
func (f *Frame) Cursor(center gridfx.Vertex, size float32) {
	f.Overlay(gridfx.CursorQuad(center, size), gridfx.FlagCursor)
}

// opKind enumerates recorded operations. The plan is a flat list so the
// ordering rules are testable without a GPU.
type opKind int

const (
	opSetPipeline opKind = iota
	opSetBindGroup
	opPushConstants
	opDrawQuad    // fullscreen textured quad, 6 vertices
	opDrawPoints  // one lattice's vertices as points
	opDrawCells   // one lattice's filled cells, indexed
	opDrawOverlay // one overlay quad, 4-vertex strip
)

// pipeKind selects a member of the pipeline family.
type pipeKind int

const (
	pipeGrid pipeKind = iota
	pipePoints
	pipeCells
	pipeOverlay
)

// recordOp is one step of a frame recording.
type recordOp struct {
	kind opKind

	pipe       pipeKind          // opSetPipeline
	flag       gridfx.CursorFlag // opPushConstants
	lattice    int               // opDrawPoints, opDrawCells
	indexCount uint32            // opDrawCells
	overlay    int               // opDrawOverlay
}

// planFrame flattens a frame into the recording order:
//
//  1. textured grid quad (when a texture is bound)
//  2. lattice points (when enabled), cell flag pushed first
//  3. filled cells per lattice, cell flag pushed first
//  4. overlay quads, each preceded by its own push-constant write
//
// Every draw that reaches the overlay fragment stage has a push-constant
// write at or before it in the list, after the last preceding draw.
func planFrame(f *Frame, hasTexture bool) []recordOp {
	var ops []recordOp

	if hasTexture {
		ops = append(ops,
			recordOp{kind: opSetPipeline, pipe: pipeGrid},
			recordOp{kind: opSetBindGroup},
			recordOp{kind: opDrawQuad},
		)
	}

	if f.showLattice {
		ops = append(ops,
			recordOp{kind: opSetPipeline, pipe: pipePoints},
			recordOp{kind: opPushConstants, flag: gridfx.FlagCell},
		)
		for i := range f.indices {
			ops = append(ops, recordOp{kind: opDrawPoints, lattice: i})
		}
	}

	cellsPlanned := false
	for i, ix := range f.indices {
		if len(ix) == 0 {
			continue
		}
		if !cellsPlanned {
			ops = append(ops,
				recordOp{kind: opSetPipeline, pipe: pipeCells},
				recordOp{kind: opPushConstants, flag: gridfx.FlagCell},
			)
			cellsPlanned = true
		}
		ops = append(ops, recordOp{
			kind:       opDrawCells,
			lattice:    i,
			indexCount: uint32(len(ix)),
		})
	}

	if len(f.overlays) > 0 {
		ops = append(ops, recordOp{kind: opSetPipeline, pipe: pipeOverlay})
		for i, o := range f.overlays {
			ops = append(ops,
				recordOp{kind: opPushConstants, flag: o.Flag},
				recordOp{kind: opDrawOverlay, overlay: i},
			)
		}
	}

	return ops
}
