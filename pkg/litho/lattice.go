package litho

import (
	"github.com/chazu/lumen/pkg/heightmap"
	"github.com/chazu/lumen/pkg/mesh"
)

// lattice tracks the two co-indexed vertex layers built from the
// heightmap: a relief-shaped front block followed by a flat back block,
// both row-major. All face construction is pure index arithmetic over
// these two blocks.
type lattice struct {
	rows, cols int
}

// frontIndex returns the arena index of the front (relief) vertex at
// (row, col).
func (l lattice) frontIndex(row, col int) int {
	return row*l.cols + col
}

// backIndex returns the arena index of the back (flat) vertex at
// (row, col). The back block starts at rows*cols.
func (l lattice) backIndex(row, col int) int {
	return l.rows*l.cols + row*l.cols + col
}

// buildLattice appends 2*rows*cols vertices to the buffer: the front
// block with z equal to the sampled thickness, then the back block at
// z=0. The buffer must be empty; the index helpers assume the lattice
// occupies the start of the arena.
func buildLattice(buf *mesh.Buffer, hm *heightmap.Heightmap) lattice {
	l := lattice{rows: hm.Rows(), cols: hm.Cols()}

	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			buf.AddVertex(mesh.Vec3{
				X: float64(col) * hm.ScaleX,
				Y: float64(row) * hm.ScaleY,
				Z: hm.At(row, col),
			})
		}
	}
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			buf.AddVertex(mesh.Vec3{
				X: float64(col) * hm.ScaleX,
				Y: float64(row) * hm.ScaleY,
				Z: 0,
			})
		}
	}
	return l
}
