// Package litho builds a solid, printable triangle mesh from a
// thickness heightmap: a relief-shaped front surface, a flat back,
// stitched side walls, and an optional decorative border frame. The
// result is a closed manifold suitable for slicing.
package litho

import (
	"github.com/pkg/errors"

	"github.com/chazu/lumen/pkg/heightmap"
	"github.com/chazu/lumen/pkg/mesh"
)

// Build constructs the lithophane solid for the given heightmap. The
// returned buffer holds the indexed representation; serialization
// flattens it into the output format. Build is deterministic: identical
// input and options always produce an identical buffer.
//
// Validation runs before any vertex is generated, so a failed Build
// leaves nothing partially constructed.
func Build(hm *heightmap.Heightmap, opts Options) (*mesh.Buffer, error) {
	if hm == nil {
		return nil, errors.New("litho: nil heightmap")
	}
	if err := hm.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rows, cols := hm.Rows(), hm.Cols()
	vertexCap := 2 * rows * cols
	triangleCap := 4*(rows-1)*(cols-1) + 4*((rows-1)+(cols-1))
	if opts.Border {
		vertexCap += 16
		triangleCap += 32
	}
	buf := mesh.NewBuffer(vertexCap, triangleCap)

	opts.progress(PhaseLattice)
	l := buildLattice(buf, hm)

	opts.progress(PhaseSurfaces)
	triangulateSurfaces(buf, l)

	opts.progress(PhaseWalls)
	stitchWalls(buf, l)

	if opts.Border {
		opts.progress(PhaseFrame)
		switch opts.BorderStyle {
		case BorderRounded:
			if err := buildRoundedFrame(buf, hm, opts); err != nil {
				return nil, err
			}
		default:
			buildPrismFrame(buf, hm, opts)
		}
	}

	return buf, nil
}
