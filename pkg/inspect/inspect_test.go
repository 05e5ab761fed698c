package inspect_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/chazu/lumen/pkg/heightmap"
	"github.com/chazu/lumen/pkg/inspect"
	"github.com/chazu/lumen/pkg/litho"
	"github.com/chazu/lumen/pkg/mesh"
	"github.com/chazu/lumen/pkg/stl"
)

// slab builds a uniform 3x4 lithophane of the given thickness.
func slab(t *testing.T, thickness float64) *mesh.Buffer {
	t.Helper()
	grid := make([][]float64, 3)
	for r := range grid {
		grid[r] = []float64{thickness, thickness, thickness, thickness}
	}
	hm, err := heightmap.FromGrid(grid, 1, 1)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	buf, err := litho.Build(hm, litho.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return buf
}

func TestSlabIsWatertight(t *testing.T) {
	buf := slab(t, 2.0)

	report := inspect.Mesh(buf)
	if !report.Watertight {
		t.Fatal("slab should be watertight")
	}
	if report.Triangles != buf.TriangleCount() {
		t.Errorf("Triangles: got %d, want %d", report.Triangles, buf.TriangleCount())
	}

	// A uniform slab over a 3x2 footprint with thickness 2 encloses
	// exactly 12 mm³.
	if math.Abs(report.Volume-12) > 1e-6 {
		t.Errorf("Volume: got %g, want 12", report.Volume)
	}

	if report.Min != [3]float64{0, 0, 0} {
		t.Errorf("Min: got %v, want origin", report.Min)
	}
	if report.Max != [3]float64{3, 2, 2} {
		t.Errorf("Max: got %v, want (3,2,2)", report.Max)
	}
}

func TestBorderedIsWatertight(t *testing.T) {
	grid := [][]float64{
		{0.6, 3.0},
		{3.0, 0.6},
	}
	hm, err := heightmap.FromGrid(grid, 1, 1)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	buf, err := litho.Build(hm, litho.Options{
		Border:       true,
		BorderWidth:  5,
		BorderHeight: 5,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	report := inspect.Mesh(buf)
	if !report.Watertight {
		t.Fatal("bordered mesh should be watertight")
	}
}

func TestHoleDetected(t *testing.T) {
	buf := slab(t, 1.0)

	// Rebuild the buffer minus one triangle to open a hole.
	holed := mesh.NewBuffer(buf.VertexCount(), buf.TriangleCount()-1)
	for i := 0; i < buf.VertexCount(); i++ {
		holed.AddVertex(buf.Vertex(i))
	}
	for _, tri := range buf.Triangles()[1:] {
		holed.AddTriangle(tri[0], tri[1], tri[2])
	}

	if report := inspect.Mesh(holed); report.Watertight {
		t.Fatal("mesh with a missing triangle reported watertight")
	}
}

func TestFile(t *testing.T) {
	buf := slab(t, 2.0)

	path := filepath.Join(t.TempDir(), "slab.stl")
	if err := stl.WriteFile(path, "inspect test", buf); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	report, err := inspect.File(path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	if !report.Watertight {
		t.Error("round-tripped slab should be watertight")
	}
	if report.Triangles != buf.TriangleCount() {
		t.Errorf("Triangles: got %d, want %d", report.Triangles, buf.TriangleCount())
	}
}
