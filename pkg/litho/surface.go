package litho

import "github.com/chazu/lumen/pkg/mesh"

// triangulateSurfaces emits two triangles per grid cell for the front
// surface and two for the back surface.
//
// The windings are a fixed contract. With v1..v4 the front corners of a
// cell (top-left, top-right, bottom-left, bottom-right in lattice
// order) the front cell is split as (v1,v3,v2),(v2,v3,v4); the back
// cell uses the reversed split (b1,b2,b3),(b2,b4,b3) so the two
// surfaces face away from each other. Flipping either split inverts the
// surface orientation and breaks the manifold for slicers, so these
// triples must not be reordered.
func triangulateSurfaces(buf *mesh.Buffer, l lattice) {
	for row := 0; row < l.rows-1; row++ {
		for col := 0; col < l.cols-1; col++ {
			v1 := l.frontIndex(row, col)
			v2 := l.frontIndex(row, col+1)
			v3 := l.frontIndex(row+1, col)
			v4 := l.frontIndex(row+1, col+1)

			buf.AddTriangle(v1, v3, v2)
			buf.AddTriangle(v2, v3, v4)

			b1 := l.backIndex(row, col)
			b2 := l.backIndex(row, col+1)
			b3 := l.backIndex(row+1, col)
			b4 := l.backIndex(row+1, col+1)

			buf.AddTriangle(b1, b2, b3)
			buf.AddTriangle(b2, b4, b3)
		}
	}
}
