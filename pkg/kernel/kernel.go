// Package kernel defines the abstract geometry kernel interface used
// for the rounded border style. The sdfx implementation provides solid
// modeling behind this interface; the direct prism constructions never
// go through a kernel.
package kernel

import "github.com/chazu/lumen/pkg/mesh"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Box creates a box with the given dimensions and its minimum corner
	// at the origin. A positive round radius fillets the edges.
	Box(x, y, z, round float64) Solid

	// Difference returns the difference a - b.
	Difference(a, b Solid) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid into a closed triangle shell.
	ToMesh(s Solid) (*mesh.Buffer, error)
}
