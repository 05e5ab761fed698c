package litho

import (
	"github.com/pkg/errors"

	"github.com/chazu/lumen/pkg/heightmap"
	"github.com/chazu/lumen/pkg/mesh"
)

// Frame local vertex layout, relative to the recorded base index. The
// four corners of each ring are ordered counterclockwise viewed from
// +z: (min,min), (max,min), (max,max), (min,max).
const (
	frameOuterTop    = 0  // z = border height, outer rectangle
	frameInnerTop    = 4  // z = border height, inner rectangle
	frameOuterBottom = 8  // z = 0, outer rectangle
	frameInnerBottom = 12 // z = 0, inner rectangle
)

// frameInset returns how far the frame's inner ring reaches into the
// lattice footprint. The frame and the slab are accepted as overlapping
// solids; without the inset the inner ring would sit exactly on the
// slab's boundary and share edges with it, fusing the two shells into
// one non-manifold surface. A quarter cell keeps the inset strictly
// inside the outermost cell and off every lattice line.
func frameInset(hm *heightmap.Heightmap) float64 {
	inset := hm.ScaleX
	if hm.ScaleY < inset {
		inset = hm.ScaleY
	}
	return inset / 4
}

// buildPrismFrame appends a self-contained watertight rectangular
// annulus around the lattice footprint: 16 vertices (two rings of four
// corners at the border height, the same two rings at z=0) and 32
// triangles. The inner ring reaches a quarter cell into the footprint
// so the frame interpenetrates the lithophane slab instead of touching
// its boundary; slicers union overlapping solids, so the overlap is
// accepted rather than merged.
//
// Four face groups, each two triangles per corner pair with modular
// corner indexing, each with its own outward direction: the top annulus
// faces +z, the bottom annulus -z, the outer wall faces away from the
// frame, and the inner wall faces into the cutout toward the lithophane.
func buildPrismFrame(buf *mesh.Buffer, hm *heightmap.Heightmap, opts Options) {
	mw := hm.ModelWidth()
	mh := hm.ModelHeight()
	bw := opts.BorderWidth
	bh := opts.BorderHeight

	// Corner (x, y) pairs, counterclockwise viewed from +z.
	in := frameInset(hm)
	outer := [4][2]float64{{-bw, -bw}, {mw + bw, -bw}, {mw + bw, mh + bw}, {-bw, mh + bw}}
	inner := [4][2]float64{{in, in}, {mw - in, in}, {mw - in, mh - in}, {in, mh - in}}

	base := buf.VertexCount()
	for _, c := range outer {
		buf.AddVertex(mesh.Vec3{X: c[0], Y: c[1], Z: bh})
	}
	for _, c := range inner {
		buf.AddVertex(mesh.Vec3{X: c[0], Y: c[1], Z: bh})
	}
	for _, c := range outer {
		buf.AddVertex(mesh.Vec3{X: c[0], Y: c[1], Z: 0})
	}
	for _, c := range inner {
		buf.AddVertex(mesh.Vec3{X: c[0], Y: c[1], Z: 0})
	}

	frameIndex := func(local int) int { return base + local }

	for i := 0; i < 4; i++ {
		next := (i + 1) % 4

		ot, otn := frameIndex(frameOuterTop+i), frameIndex(frameOuterTop+next)
		it, itn := frameIndex(frameInnerTop+i), frameIndex(frameInnerTop+next)
		ob, obn := frameIndex(frameOuterBottom+i), frameIndex(frameOuterBottom+next)
		ib, ibn := frameIndex(frameInnerBottom+i), frameIndex(frameInnerBottom+next)

		// Top annulus, outward +z.
		buf.AddTriangle(ot, otn, itn)
		buf.AddTriangle(ot, itn, it)

		// Bottom annulus, winding reversed relative to top, outward -z.
		buf.AddTriangle(ob, ibn, obn)
		buf.AddTriangle(ob, ib, ibn)

		// Outer wall, outward away from the frame.
		buf.AddTriangle(ot, ob, obn)
		buf.AddTriangle(ot, obn, otn)

		// Inner wall, winding reversed, outward into the cutout.
		buf.AddTriangle(it, itn, ibn)
		buf.AddTriangle(it, ibn, ib)
	}
}

// buildRoundedFrame constructs the frame with the geometry kernel: an
// outer box with filleted vertical edges minus a cutout box matching
// the lattice footprint, tessellated by marching cubes and merged into
// the arena as an independent closed shell.
func buildRoundedFrame(buf *mesh.Buffer, hm *heightmap.Heightmap, opts Options) error {
	mw := hm.ModelWidth()
	mh := hm.ModelHeight()
	bw := opts.BorderWidth
	bh := opts.BorderHeight

	k := opts.Kernel

	// Fillet radius: half the annulus width, capped by the height so the
	// rounding never consumes a whole face.
	round := bw / 2
	if bh/2 < round {
		round = bh / 2
	}

	outerBox := k.Box(mw+2*bw, mh+2*bw, bh, round)
	outerBox = k.Translate(outerBox, -bw, -bw, 0)

	// Cutout is inset into the footprint like the prism frame, so the
	// shell overlaps the slab rather than touching its boundary, and
	// overshoots the frame height so the difference leaves no coplanar
	// face skins.
	in := frameInset(hm)
	cut := k.Box(mw-2*in, mh-2*in, 3*bh, 0)
	cut = k.Translate(cut, in, in, -bh)

	shell, err := k.ToMesh(k.Difference(outerBox, cut))
	if err != nil {
		return errors.Wrap(err, "litho: tessellating rounded border")
	}
	buf.Append(shell)
	return nil
}
