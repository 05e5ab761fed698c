// Package inspect verifies generated meshes with an independent
// geometry library. The core builds watertight solids by construction
// and never repairs them; this package is the read-back oracle used by
// the -verify flag and by tests to confirm the construction holds.
package inspect

import (
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"

	"github.com/chazu/lumen/pkg/mesh"
	"github.com/chazu/lumen/pkg/stl"
)

// Report summarizes the integrity of a mesh.
type Report struct {
	Triangles int

	// Watertight is true when every edge borders exactly two triangles
	// and no vertex joins multiple surface fans.
	Watertight bool

	// Volume is the unsigned enclosed volume in mm³. Only meaningful
	// when the mesh is watertight.
	Volume float64

	// Min and Max are the axis-aligned bounding box corners in mm.
	Min, Max [3]float64
}

// Mesh inspects an in-memory buffer.
func Mesh(buf *mesh.Buffer) Report {
	m := model3d.NewMesh()
	for _, t := range buf.Triangles() {
		p0, p1, p2 := buf.Corners(t)
		m.Add(&model3d.Triangle{coord(p0), coord(p1), coord(p2)})
	}
	return report(m, buf.TriangleCount())
}

// File reads a binary STL from disk and inspects it.
func File(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, errors.Wrapf(err, "inspect: opening %s", path)
	}
	defer f.Close()

	_, tris, err := stl.Decode(f)
	if err != nil {
		return Report{}, err
	}

	m := model3d.NewMesh()
	for _, t := range tris {
		m.Add(&model3d.Triangle{
			vertex(t.Vertex[0]),
			vertex(t.Vertex[1]),
			vertex(t.Vertex[2]),
		})
	}
	return report(m, len(tris)), nil
}

func report(m *model3d.Mesh, count int) Report {
	r := Report{
		Triangles:  count,
		Watertight: !m.NeedsRepair() && len(m.SingularVertices()) == 0,
	}
	if r.Watertight {
		v := m.Volume()
		if v < 0 {
			v = -v
		}
		r.Volume = v
	}
	min, max := m.Min(), m.Max()
	r.Min = [3]float64{min.X, min.Y, min.Z}
	r.Max = [3]float64{max.X, max.Y, max.Z}
	return r
}

func coord(v mesh.Vec3) model3d.Coord3D {
	return model3d.Coord3D{X: v.X, Y: v.Y, Z: v.Z}
}

func vertex(v [3]float32) model3d.Coord3D {
	return model3d.Coord3D{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
