package litho

import "github.com/chazu/lumen/pkg/mesh"

// stitchWalls closes the four vertical side faces between the front and
// back layers, turning the open relief surface into a watertight slab.
//
// Each boundary connects adjacent front-edge vertex pairs to the
// corresponding back-edge pairs with a ruled quad split on the
// diagonal. The four boundaries use different fixed windings: opposite
// boundaries mirror each other, each wall shares the surface layers'
// orientation, and every wall edge pairs with a surface edge in the
// opposite direction. Omitting or flipping any one wall leaves boundary
// edges that slicers reject.
func stitchWalls(buf *mesh.Buffer, l lattice) {
	// First-column wall.
	for row := 0; row < l.rows-1; row++ {
		v1 := l.frontIndex(row, 0)
		v2 := l.frontIndex(row+1, 0)
		b1 := l.backIndex(row, 0)
		b2 := l.backIndex(row+1, 0)

		buf.AddTriangle(v1, b1, v2)
		buf.AddTriangle(b1, b2, v2)
	}

	// Last-column wall, mirrored winding.
	for row := 0; row < l.rows-1; row++ {
		v1 := l.frontIndex(row, l.cols-1)
		v2 := l.frontIndex(row+1, l.cols-1)
		b1 := l.backIndex(row, l.cols-1)
		b2 := l.backIndex(row+1, l.cols-1)

		buf.AddTriangle(v1, v2, b1)
		buf.AddTriangle(b1, v2, b2)
	}

	// First-row wall.
	for col := 0; col < l.cols-1; col++ {
		v1 := l.frontIndex(0, col)
		v2 := l.frontIndex(0, col+1)
		b1 := l.backIndex(0, col)
		b2 := l.backIndex(0, col+1)

		buf.AddTriangle(v1, v2, b1)
		buf.AddTriangle(b1, v2, b2)
	}

	// Last-row wall, mirrored winding.
	for col := 0; col < l.cols-1; col++ {
		v1 := l.frontIndex(l.rows-1, col)
		v2 := l.frontIndex(l.rows-1, col+1)
		b1 := l.backIndex(l.rows-1, col)
		b2 := l.backIndex(l.rows-1, col+1)

		buf.AddTriangle(v1, b1, v2)
		buf.AddTriangle(b1, b2, v2)
	}
}
