package gridfx

import "encoding/binary"

// CursorFlag is the 32-bit push-constant value read by the overlay
// fragment stage. Exactly the value 1 selects the cursor color; every
// other value selects the cell color. The flag lives for a single draw
// call: the host writes it immediately before the draw it applies to.
type CursorFlag uint32

const (
	// FlagCell marks a draw as ordinary overlay geometry.
	FlagCell CursorFlag = 0

	// FlagCursor marks a draw as the cursor highlight.
	FlagCursor CursorFlag = 1
)

// PushConstantSize is the byte size of the overlay push-constant block:
// one unsigned 32-bit field at offset 0.
const PushConstantSize = 4

// Bytes encodes the flag as the 4-byte little-endian push-constant block.
func (f CursorFlag) Bytes() []byte {
	buf := make([]byte, PushConstantSize)
	binary.LittleEndian.PutUint32(buf, uint32(f))
	return buf
}

// CursorQuad returns the four corners of a size x size quad centered on
// the pixel-space position, in the winding the overlay pipeline expects
// for a triangle-strip draw: top-left, top-right, bottom-left,
// bottom-right.
func CursorQuad(center Vertex, size float32) [4]Vertex {
	half := size / 2
	return [4]Vertex{
		{X: center.X - half, Y: center.Y - half},
		{X: center.X + half, Y: center.Y - half},
		{X: center.X - half, Y: center.Y + half},
		{X: center.X + half, Y: center.Y + half},
	}
}
