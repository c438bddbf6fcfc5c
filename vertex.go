package gridfx

import (
	"encoding/binary"
	"math"
)

// VertexStride is the byte stride per vertex: 2 x float32 (x, y) = 8 bytes.
// It must match the vertex buffer layout declared by the render pipelines
// and the single @location(0) position attribute in the shader stages.
const VertexStride = 8

// Vertex is a 2D position. Depending on context it holds either pixel
// coordinates (top-left origin, Y down) or clip-space coordinates
// ([-1,1] per axis, Y up). NDC converts from the former to the latter.
type Vertex struct {
	X float32
	Y float32
}

// V returns a Vertex at (x, y).
func V(x, y float32) Vertex { return Vertex{X: x, Y: y} }

// NDC maps a pixel-space coordinate to clip space for a w x h pixel
// viewport. The Y axis is flipped: pixel y=0 (top) maps to clip y=1.
//
// Coordinates outside the viewport map outside [-1,1]; callers that need
// clamped output use NDCClamped.
func NDC(x, y float32, w, h uint32) Vertex {
	return Vertex{
		X: (x/float32(w))*2 - 1,
		Y: 1 - (y/float32(h))*2,
	}
}

// NDCClamped is NDC with the result clamped to [-1,1] per axis.
func NDCClamped(x, y float32, w, h uint32) Vertex {
	v := NDC(x, y, w, h)
	return Vertex{
		X: clamp1(v.X),
		Y: clamp1(v.Y),
	}
}

func clamp1(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeToNDC maps a slice of pixel-space vertices to clip space.
// The input slice is not modified.
func NormalizeToNDC(vs []Vertex, w, h uint32) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[i] = NDC(v.X, v.Y, w, h)
	}
	return out
}

// VertexBytes encodes vertices as little-endian float32 pairs, the exact
// layout consumed by the GPU vertex buffer (stride VertexStride).
func VertexBytes(vs []Vertex) []byte {
	buf := make([]byte, len(vs)*VertexStride)
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(v.Y))
	}
	return buf
}

// IndexBytes encodes triangle indices as little-endian uint32 words for
// upload into a Uint32 index buffer.
func IndexBytes(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, ix := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], ix)
	}
	return buf
}
