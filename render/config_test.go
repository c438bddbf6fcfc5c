package render

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gridfx/gridfx"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("viewport = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if len(cfg.Grids) != 0 {
		t.Errorf("default config carries %d grids, want 0", len(cfg.Grids))
	}
	if cfg.MaxOverlayQuads != defaultMaxOverlayQuads {
		t.Errorf("MaxOverlayQuads = %d, want %d", cfg.MaxOverlayQuads, defaultMaxOverlayQuads)
	}
	if cfg.Diagnostics {
		t.Error("diagnostics enabled by default")
	}
	if cfg.AddressMode != wgpu.AddressModeRepeat {
		t.Errorf("AddressMode = %v, want repeat", cfg.AddressMode)
	}
	if cfg.PresentMode != wgpu.PresentModeFifo {
		t.Errorf("PresentMode = %v, want fifo", cfg.PresentMode)
	}
}

func TestConfigOptions(t *testing.T) {
	spec := gridfx.GridSpec{Cols: 7, Rows: 5, CellSize: 32}
	cfg := DefaultConfig(640, 480).apply(
		WithGrid(spec),
		WithGrid(gridfx.GridSpec{Cols: 4, Rows: 4, CellSize: 16}),
		WithDiagnostics(),
		WithClearColor(0, 0, 0, 1),
		WithMaxOverlayQuads(4),
		WithAddressMode(wgpu.AddressModeClampToEdge),
		WithPresentMode(wgpu.PresentModeMailbox),
	)

	if len(cfg.Grids) != 2 {
		t.Fatalf("got %d grids, want 2", len(cfg.Grids))
	}
	if cfg.Grids[0] != spec {
		t.Errorf("first grid = %+v, want %+v", cfg.Grids[0], spec)
	}
	if !cfg.Diagnostics {
		t.Error("WithDiagnostics did not apply")
	}
	if cfg.ClearColor != (wgpu.Color{R: 0, G: 0, B: 0, A: 1}) {
		t.Errorf("ClearColor = %+v", cfg.ClearColor)
	}
	if cfg.MaxOverlayQuads != 4 {
		t.Errorf("MaxOverlayQuads = %d, want 4", cfg.MaxOverlayQuads)
	}
	if cfg.AddressMode != wgpu.AddressModeClampToEdge {
		t.Errorf("AddressMode = %v, want clamp", cfg.AddressMode)
	}
	if cfg.PresentMode != wgpu.PresentModeMailbox {
		t.Errorf("PresentMode = %v, want mailbox", cfg.PresentMode)
	}
}

func TestWithMaxOverlayQuadsRejectsNonPositive(t *testing.T) {
	cfg := DefaultConfig(100, 100).apply(WithMaxOverlayQuads(0))
	if cfg.MaxOverlayQuads != defaultMaxOverlayQuads {
		t.Errorf("MaxOverlayQuads = %d, want default %d", cfg.MaxOverlayQuads, defaultMaxOverlayQuads)
	}
	cfg = DefaultConfig(100, 100).apply(WithMaxOverlayQuads(-3))
	if cfg.MaxOverlayQuads != defaultMaxOverlayQuads {
		t.Errorf("MaxOverlayQuads = %d, want default %d", cfg.MaxOverlayQuads, defaultMaxOverlayQuads)
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		v, want uint32
	}{
		{0, 0},
		{1, 256},
		{255, 256},
		{256, 256},
		{257, 512},
		{1024, 1024},
	}
	for _, tt := range tests {
		if got := alignUp(tt.v, readbackAlign); got != tt.want {
			t.Errorf("alignUp(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
