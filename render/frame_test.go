package render

import (
	"errors"
	"testing"

	"github.com/gridfx/gridfx"
)

func TestPlanFrameEmpty(t *testing.T) {
	ops := planFrame(NewFrame(0), false)
	if len(ops) != 0 {
		t.Errorf("empty frame planned %d ops, want 0", len(ops))
	}
}

func TestPlanFrameTextureOnly(t *testing.T) {
	ops := planFrame(NewFrame(0), true)
	want := []opKind{opSetPipeline, opSetBindGroup, opDrawQuad}
	if len(ops) != len(want) {
		t.Fatalf("planned %d ops, want %d", len(ops), len(want))
	}
	for i, k := range want {
		if ops[i].kind != k {
			t.Errorf("op %d kind = %d, want %d", i, ops[i].kind, k)
		}
	}
	if ops[0].pipe != pipeGrid {
		t.Error("texture pass must bind the grid pipeline")
	}
}

func TestPlanFramePassOrder(t *testing.T) {
	f := NewFrame(1)
	f.ShowLattice()
	if err := f.SetIndices(0, []uint32{0, 8, 9, 0, 9, 1}); err != nil {
		t.Fatal(err)
	}
	f.Cursor(gridfx.V(100, 100), 40)

	ops := planFrame(f, true)

	order := make(map[pipeKind]int)
	for i, op := range ops {
		if op.kind == opSetPipeline {
			order[op.pipe] = i
		}
	}
	for _, pair := range []struct {
		first, second pipeKind
	}{
		{pipeGrid, pipePoints},
		{pipePoints, pipeCells},
		{pipeCells, pipeOverlay},
	} {
		a, aok := order[pair.first]
		b, bok := order[pair.second]
		if !aok || !bok {
			t.Fatalf("missing pipeline binds: %v", order)
		}
		if a >= b {
			t.Errorf("pipeline %d bound at %d, after pipeline %d at %d", pair.first, a, pair.second, b)
		}
	}
}

// Every draw through the overlay fragment stage must observe a
// push-constant write that happened after the previous draw: the flag is
// per-draw state, not per-pass state.
func TestPlanFramePushConstantPerOverlayDraw(t *testing.T) {
	f := NewFrame(0)
	f.Overlay(gridfx.CursorQuad(gridfx.V(10, 10), 4), gridfx.FlagCell)
	f.Cursor(gridfx.V(50, 50), 4)
	f.Overlay(gridfx.CursorQuad(gridfx.V(90, 90), 4), gridfx.FlagCell)

	ops := planFrame(f, false)

	wantFlags := []gridfx.CursorFlag{gridfx.FlagCell, gridfx.FlagCursor, gridfx.FlagCell}
	draws := 0
	for i, op := range ops {
		if op.kind != opDrawOverlay {
			continue
		}
		if i == 0 || ops[i-1].kind != opPushConstants {
			t.Fatalf("overlay draw at op %d not immediately preceded by a push-constant write", i)
		}
		if got := ops[i-1].flag; got != wantFlags[draws] {
			t.Errorf("draw %d flag = %d, want %d", draws, got, wantFlags[draws])
		}
		draws++
	}
	if draws != 3 {
		t.Errorf("planned %d overlay draws, want 3", draws)
	}
}

func TestPlanFrameCellFlagBeforeLatticeAndCells(t *testing.T) {
	f := NewFrame(2)
	f.ShowLattice()
	if err := f.SetIndices(1, []uint32{0, 8, 9, 0, 9, 1}); err != nil {
		t.Fatal(err)
	}

	ops := planFrame(f, false)

	lastFlag := gridfx.FlagCursor // poison until the first write
	seenWrite := false
	for i, op := range ops {
		switch op.kind {
		case opPushConstants:
			lastFlag = op.flag
			seenWrite = true
		case opDrawPoints, opDrawCells:
			if !seenWrite {
				t.Fatalf("draw at op %d before any push-constant write", i)
			}
			if lastFlag != gridfx.FlagCell {
				t.Errorf("draw at op %d observes flag %d, want %d", i, lastFlag, gridfx.FlagCell)
			}
		}
	}
}

func TestPlanFrameSkipsEmptyLattices(t *testing.T) {
	f := NewFrame(3)
	if err := f.SetIndices(1, []uint32{0, 8, 9, 0, 9, 1}); err != nil {
		t.Fatal(err)
	}

	ops := planFrame(f, false)

	var cells []recordOp
	for _, op := range ops {
		if op.kind == opDrawCells {
			cells = append(cells, op)
		}
	}
	if len(cells) != 1 {
		t.Fatalf("planned %d cell draws, want 1", len(cells))
	}
	if cells[0].lattice != 1 || cells[0].indexCount != 6 {
		t.Errorf("cell draw = %+v, want lattice 1 with 6 indices", cells[0])
	}
}

func TestFrameLatticeRange(t *testing.T) {
	f := NewFrame(1)
	if err := f.SetIndices(1, nil); !errors.Is(err, ErrLatticeRange) {
		t.Errorf("SetIndices(1) = %v, want ErrLatticeRange", err)
	}
	if err := f.SetIndices(-1, nil); !errors.Is(err, ErrLatticeRange) {
		t.Errorf("SetIndices(-1) = %v, want ErrLatticeRange", err)
	}
	if err := f.FillCells(2, gridfx.GridSpec{Cols: 4, Rows: 4}, nil); !errors.Is(err, ErrLatticeRange) {
		t.Errorf("FillCells(2) = %v, want ErrLatticeRange", err)
	}
}

func TestFrameFillCells(t *testing.T) {
	spec := gridfx.GridSpec{Cols: 7, Rows: 5, CellSize: 32}
	f := NewFrame(1)
	if err := f.FillCells(0, spec, []gridfx.CellCoord{gridfx.C(0, 0), gridfx.C(1, 0)}); err != nil {
		t.Fatal(err)
	}
	if got := len(f.indices[0]); got != 12 {
		t.Errorf("filled 2 cells produced %d indices, want 12", got)
	}

	// Negative coordinates are rejected before reaching the frame.
	if err := f.FillCells(0, spec, []gridfx.CellCoord{gridfx.C(-1, 0)}); err == nil {
		t.Error("expected error for negative cell coordinate")
	}
}

func TestFrameCursor(t *testing.T) {
	f := NewFrame(0)
	f.Cursor(gridfx.V(100, 200), 40)
	if len(f.overlays) != 1 {
		t.Fatalf("got %d overlays, want 1", len(f.overlays))
	}
	o := f.overlays[0]
	if o.Flag != gridfx.FlagCursor {
		t.Errorf("cursor flag = %d, want %d", o.Flag, gridfx.FlagCursor)
	}
	if o.Quad != gridfx.CursorQuad(gridfx.V(100, 200), 40) {
		t.Errorf("cursor quad = %+v", o.Quad)
	}
}

func TestRendererValidate(t *testing.T) {
	r := &Renderer{
		cfg: Config{MaxOverlayQuads: 2},
		lattices: []*latticeBuffers{
			{spec: gridfx.GridSpec{Cols: 2, Rows: 2}, indexCap: 24},
		},
	}

	t.Run("ok", func(t *testing.T) {
		f := NewFrame(1)
		if err := f.SetIndices(0, make([]uint32, 24)); err != nil {
			t.Fatal(err)
		}
		f.Cursor(gridfx.V(0, 0), 2)
		if err := r.validate(f); err != nil {
			t.Errorf("validate = %v, want nil", err)
		}
	})

	t.Run("lattice count mismatch", func(t *testing.T) {
		if err := r.validate(NewFrame(2)); !errors.Is(err, ErrLatticeRange) {
			t.Errorf("validate = %v, want ErrLatticeRange", err)
		}
	})

	t.Run("index overflow", func(t *testing.T) {
		f := NewFrame(1)
		if err := f.SetIndices(0, make([]uint32, 30)); err != nil {
			t.Fatal(err)
		}
		if err := r.validate(f); !errors.Is(err, ErrIndexCapacity) {
			t.Errorf("validate = %v, want ErrIndexCapacity", err)
		}
	})

	t.Run("overlay overflow", func(t *testing.T) {
		f := NewFrame(1)
		for i := 0; i < 3; i++ {
			f.Cursor(gridfx.V(float32(i), 0), 2)
		}
		if err := r.validate(f); !errors.Is(err, ErrOverlayCapacity) {
			t.Errorf("validate = %v, want ErrOverlayCapacity", err)
		}
	})
}
