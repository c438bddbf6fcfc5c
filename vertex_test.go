package gridfx

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestNDC(t *testing.T) {
	const w, h = 800, 600
	tests := []struct {
		name string
		x, y float32
		want Vertex
	}{
		{"top left", 0, 0, Vertex{X: -1, Y: 1}},
		{"top right", 800, 0, Vertex{X: 1, Y: 1}},
		{"bottom left", 0, 600, Vertex{X: -1, Y: -1}},
		{"bottom right", 800, 600, Vertex{X: 1, Y: -1}},
		{"center", 400, 300, Vertex{X: 0, Y: 0}},
		{"quarter", 200, 150, Vertex{X: -0.5, Y: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NDC(tt.x, tt.y, w, h)
			if got != tt.want {
				t.Errorf("NDC(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNDCYAxisFlips(t *testing.T) {
	// Pixel Y grows downward, clip Y grows upward.
	top := NDC(0, 0, 100, 100)
	bottom := NDC(0, 100, 100, 100)
	if top.Y <= bottom.Y {
		t.Errorf("expected top (%v) above bottom (%v) in clip space", top.Y, bottom.Y)
	}
}

func TestNDCClamped(t *testing.T) {
	tests := []struct {
		name string
		x, y float32
		want Vertex
	}{
		{"inside unchanged", 50, 50, Vertex{X: 0, Y: 0}},
		{"left overflow", -50, 50, Vertex{X: -1, Y: 0}},
		{"right overflow", 150, 50, Vertex{X: 1, Y: 0}},
		{"above overflow", 50, -50, Vertex{X: 0, Y: 1}},
		{"below overflow", 50, 150, Vertex{X: 0, Y: -1}},
		{"corner overflow", 200, 200, Vertex{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NDCClamped(tt.x, tt.y, 100, 100)
			if got != tt.want {
				t.Errorf("NDCClamped(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNormalizeToNDC(t *testing.T) {
	in := []Vertex{{X: 0, Y: 0}, {X: 100, Y: 100}}
	got := NormalizeToNDC(in, 100, 100)
	want := []Vertex{{X: -1, Y: 1}, {X: 1, Y: -1}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if in[0] != (Vertex{X: 0, Y: 0}) {
		t.Error("input slice was modified")
	}
}

func TestVertexBytes(t *testing.T) {
	got := VertexBytes([]Vertex{{X: 1, Y: -1}, {X: 0.5, Y: 0}})
	if len(got) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(got), 2*VertexStride)
	}
	words := []float32{1, -1, 0.5, 0}
	for i, w := range words {
		bits := binary.LittleEndian.Uint32(got[i*4:])
		if f := math.Float32frombits(bits); f != w {
			t.Errorf("word %d = %v, want %v", i, f, w)
		}
	}
}

func TestIndexBytes(t *testing.T) {
	got := IndexBytes([]uint32{0, 8, 9, 0x01020304})
	if len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
	if w := binary.LittleEndian.Uint32(got[4:]); w != 8 {
		t.Errorf("word 1 = %d, want 8", w)
	}
	// Little-endian byte order of the last word.
	if got[12] != 0x04 || got[15] != 0x01 {
		t.Errorf("word 3 bytes = % x, want 04 03 02 01", got[12:16])
	}
}
