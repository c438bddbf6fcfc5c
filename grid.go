package gridfx

import "fmt"

// GridSpec describes a cell lattice in pixel space: Cols x Rows cells of
// CellSize pixels each, with the lattice's top-left corner at
// (OffsetX, OffsetY).
type GridSpec struct {
	Cols     int
	Rows     int
	CellSize float32
	OffsetX  float32
	OffsetY  float32
}

// VertexCount returns the number of lattice vertices: (Cols+1)*(Rows+1).
func (g GridSpec) VertexCount() int {
	return (g.Cols + 1) * (g.Rows + 1)
}

// MaxIndexCount returns the index capacity needed when every cell of the
// lattice is filled: six indices (two triangles) per cell.
func (g GridSpec) MaxIndexCount() int {
	return g.Cols * g.Rows * 6
}

// Lattice emits the lattice vertices in pixel space, row-major from the
// top-left corner. Vertex (col, row) sits at index row*(Cols+1)+col.
func (g GridSpec) Lattice() []Vertex {
	vs := make([]Vertex, 0, g.VertexCount())
	for row := 0; row <= g.Rows; row++ {
		for col := 0; col <= g.Cols; col++ {
			vs = append(vs, Vertex{
				X: float32(col)*g.CellSize + g.OffsetX,
				Y: float32(row)*g.CellSize + g.OffsetY,
			})
		}
	}
	return vs
}

// CellCoord addresses one cell of a lattice: column, then row, both
// zero-based from the top-left.
type CellCoord struct {
	Col int
	Row int
}

// C returns the cell at (col, row).
func C(col, row int) CellCoord { return CellCoord{Col: col, Row: row} }

// CellIndices returns the six vertex indices covering a cell with two
// counter-clockwise triangles, for a lattice that is cols cells wide
// (vertex stride cols+1):
//
//	topLeft, bottomLeft, bottomRight,
//	topLeft, bottomRight, topRight
//
// Returns an error for negative coordinates; coordinates beyond the
// lattice produce indices beyond its vertex range, which the caller is
// expected to have rejected.
func CellIndices(coord CellCoord, cols int) ([6]uint32, error) {
	if coord.Col < 0 || coord.Row < 0 {
		return [6]uint32{}, fmt.Errorf("gridfx: negative cell coordinate %+v", coord)
	}
	stride := uint32(cols + 1)
	topLeft := uint32(coord.Row)*stride + uint32(coord.Col)
	topRight := topLeft + 1
	bottomLeft := topLeft + stride
	bottomRight := bottomLeft + 1
	return [6]uint32{
		topLeft, bottomLeft, bottomRight,
		topLeft, bottomRight, topRight,
	}, nil
}

// CellQuad returns the four corner indices of a cell in clockwise order
// starting from the top-left. Used for outline and edge geometry.
func CellQuad(coord CellCoord, cols int) ([4]uint32, error) {
	if coord.Col < 0 || coord.Row < 0 {
		return [4]uint32{}, fmt.Errorf("gridfx: negative cell coordinate %+v", coord)
	}
	stride := uint32(cols + 1)
	topLeft := uint32(coord.Row)*stride + uint32(coord.Col)
	topRight := topLeft + 1
	bottomLeft := topLeft + stride
	bottomRight := bottomLeft + 1
	return [4]uint32{topLeft, topRight, bottomRight, bottomLeft}, nil
}

// IndexSpace flattens a set of filled cells into a triangle index list for
// a lattice that is cols cells wide. offset is added to every index; it is
// the base vertex of the lattice when several lattices share one vertex
// buffer (the first index of the second lattice is maxIndexOfFirst+1).
func IndexSpace(cells []CellCoord, cols int, offset uint32) ([]uint32, error) {
	indices := make([]uint32, 0, len(cells)*6)
	for _, c := range cells {
		ix, err := CellIndices(c, cols)
		if err != nil {
			return nil, err
		}
		for _, i := range ix {
			indices = append(indices, i+offset)
		}
	}
	return indices, nil
}

// WithinBounds reports whether the pixel coordinate (px, py) lies inside
// the half-open rectangle [0, xMax) x [0, yMax).
func WithinBounds(px, py, xMax, yMax float32) bool {
	return px >= 0 && px < xMax && py >= 0 && py < yMax
}

// ToCellSpace converts a pixel coordinate to the cell it falls in for a
// lattice anchored at (topLeftX, topLeftY) with the given cell size.
// Coordinates left of or above the anchor produce negative cells.
func ToCellSpace(topLeftX, topLeftY, cellSize, x, y float32) CellCoord {
	return CellCoord{
		Col: floorDiv(x-topLeftX, cellSize),
		Row: floorDiv(y-topLeftY, cellSize),
	}
}

func floorDiv(v, d float32) int {
	q := v / d
	i := int(q)
	if q < 0 && float32(i) != q {
		i--
	}
	return i
}
