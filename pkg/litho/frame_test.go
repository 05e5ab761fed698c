package litho_test

import (
	"testing"

	"github.com/chazu/lumen/pkg/kernel/sdfx"
	"github.com/chazu/lumen/pkg/litho"
	"github.com/chazu/lumen/pkg/mesh"
)

// horizontalOutwardness is the dot product of a triangle's normal with
// the horizontal direction from the frame center to its centroid.
// Positive means the triangle faces away from the center.
func horizontalOutwardness(buf *mesh.Buffer, tri mesh.Triangle, cx, cy float64) float64 {
	p0, p1, p2 := buf.Corners(tri)
	n := buf.FacetNormal(tri)
	mx := (p0.X + p1.X + p2.X) / 3
	my := (p0.Y + p1.Y + p2.Y) / 3
	return n.X*(mx-cx) + n.Y*(my-cy)
}

func TestPrismFrameFaceGroups(t *testing.T) {
	hm := testGrid(t)
	plain, err := litho.Build(hm, litho.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	bordered, err := litho.Build(hm, litho.Options{
		Border:       true,
		BorderWidth:  5,
		BorderHeight: 5,
	})
	if err != nil {
		t.Fatalf("Build(border) failed: %v", err)
	}

	tris := bordered.Triangles()[plain.TriangleCount():]
	if len(tris) != 32 {
		t.Fatalf("frame triangles: got %d, want 32", len(tris))
	}

	cx, cy := hm.ModelWidth()/2, hm.ModelHeight()/2

	// Eight triangles per corner pair: top annulus, bottom annulus,
	// outer wall, inner wall, two each.
	for c := 0; c < 4; c++ {
		g := tris[c*8 : (c+1)*8]

		for i, tri := range g[:2] {
			if n := bordered.FacetNormal(tri); n != (mesh.Vec3{Z: 1}) {
				t.Errorf("corner %d top triangle %d normal: got %+v, want +z", c, i, n)
			}
		}
		for i, tri := range g[2:4] {
			if n := bordered.FacetNormal(tri); n != (mesh.Vec3{Z: -1}) {
				t.Errorf("corner %d bottom triangle %d normal: got %+v, want -z", c, i, n)
			}
		}
		for i, tri := range g[4:6] {
			n := bordered.FacetNormal(tri)
			if n.Z != 0 || horizontalOutwardness(bordered, tri, cx, cy) <= 0 {
				t.Errorf("corner %d outer wall triangle %d normal %+v does not face away from the frame", c, i, n)
			}
		}
		for i, tri := range g[6:8] {
			n := bordered.FacetNormal(tri)
			if n.Z != 0 || horizontalOutwardness(bordered, tri, cx, cy) >= 0 {
				t.Errorf("corner %d inner wall triangle %d normal %+v does not face the cutout", c, i, n)
			}
		}
	}
}

func TestRoundedFrame(t *testing.T) {
	k := sdfx.New()
	k.Cells = 48 // coarse tessellation keeps the test fast

	plain, err := litho.Build(testGrid(t), litho.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	bordered, err := litho.Build(testGrid(t), litho.Options{
		Border:       true,
		BorderWidth:  4,
		BorderHeight: 3,
		BorderStyle:  litho.BorderRounded,
		Kernel:       k,
	})
	if err != nil {
		t.Fatalf("Build(rounded) failed: %v", err)
	}

	triDelta := bordered.TriangleCount() - plain.TriangleCount()
	vertDelta := bordered.VertexCount() - plain.VertexCount()
	if triDelta <= 0 {
		t.Fatal("rounded frame added no triangles")
	}

	// The kernel emits triangle soup: three fresh vertices per triangle.
	if vertDelta != triDelta*3 {
		t.Errorf("frame vertex delta: got %d, want %d", vertDelta, triDelta*3)
	}

	checkIndices(t, bordered)

	// The slab part of the arena is untouched by the frame append.
	for i := 0; i < plain.VertexCount(); i++ {
		if plain.Vertex(i) != bordered.Vertex(i) {
			t.Fatalf("slab vertex %d changed by frame construction", i)
		}
	}
	for i, tri := range plain.Triangles() {
		if tri != bordered.Triangles()[i] {
			t.Fatalf("slab triangle %d changed by frame construction", i)
		}
	}
}

func TestRoundedFrameDeterministic(t *testing.T) {
	k := sdfx.New()
	k.Cells = 32

	opts := litho.Options{
		Border:       true,
		BorderWidth:  3,
		BorderHeight: 3,
		BorderStyle:  litho.BorderRounded,
		Kernel:       k,
	}

	a, err := litho.Build(testGrid(t), opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, err := litho.Build(testGrid(t), opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if a.TriangleCount() != b.TriangleCount() {
		t.Fatal("repeated rounded builds differ")
	}
	for i, tri := range a.Triangles() {
		a0, a1, a2 := a.Corners(tri)
		b0, b1, b2 := b.Corners(b.Triangles()[i])
		if a0 != b0 || a1 != b1 || a2 != b2 {
			t.Fatalf("triangle %d differs between builds", i)
		}
	}
}
