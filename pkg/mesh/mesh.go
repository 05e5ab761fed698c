// Package mesh provides the indexed triangle buffer shared by every
// stage of lithophane construction. Vertices live in a single
// append-only arena; triangles reference vertices by integer index.
// Indices are stable once assigned, which is what makes the offset
// arithmetic in the stitching stages safe.
package mesh

import "math"

// Vec3 is a point or direction in millimeters.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length, or the zero vector if v is
// degenerate. Degenerate facet normals are written as zeros in the
// output file, which STL consumers accept.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Triangle is an ordered triple of vertex indices. The order determines
// the facet normal via the right-hand rule.
type Triangle [3]int

// Buffer is a growable indexed triangle mesh. Vertices are append-only:
// once a triangle references an index, the vertex at that index never
// moves. All construction stages append to one shared Buffer.
type Buffer struct {
	vertices  []Vec3
	triangles []Triangle
}

// NewBuffer returns an empty Buffer with capacity for the given number
// of vertices and triangles. Counts of zero are fine; the buffer grows
// as needed.
func NewBuffer(vertexCap, triangleCap int) *Buffer {
	return &Buffer{
		vertices:  make([]Vec3, 0, vertexCap),
		triangles: make([]Triangle, 0, triangleCap),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Buffer) AddVertex(v Vec3) int {
	m.vertices = append(m.vertices, v)
	return len(m.vertices) - 1
}

// AddTriangle appends a triangle referencing previously added vertices.
func (m *Buffer) AddTriangle(a, b, c int) {
	m.triangles = append(m.triangles, Triangle{a, b, c})
}

// VertexCount returns the number of vertices.
func (m *Buffer) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles.
func (m *Buffer) TriangleCount() int {
	return len(m.triangles)
}

// IsEmpty returns true if the buffer has no geometry.
func (m *Buffer) IsEmpty() bool {
	return len(m.vertices) == 0
}

// Vertex returns the vertex at index i.
func (m *Buffer) Vertex(i int) Vec3 {
	return m.vertices[i]
}

// Triangles returns the triangle list. The returned slice is the
// buffer's backing storage and must not be mutated.
func (m *Buffer) Triangles() []Triangle {
	return m.triangles
}

// Corners resolves a triangle's indices to its three vertex positions.
func (m *Buffer) Corners(t Triangle) (Vec3, Vec3, Vec3) {
	return m.vertices[t[0]], m.vertices[t[1]], m.vertices[t[2]]
}

// FacetNormal returns the unit normal of a triangle per the right-hand
// rule, or the zero vector for a degenerate triangle.
func (m *Buffer) FacetNormal(t Triangle) Vec3 {
	p0, p1, p2 := m.Corners(t)
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}

// Append copies all of other's geometry into the receiver, offsetting
// other's triangle indices by the current vertex count. Used to merge the
// marching-cubes frame shell into the main arena.
func (m *Buffer) Append(other *Buffer) {
	base := len(m.vertices)
	m.vertices = append(m.vertices, other.vertices...)
	for _, t := range other.triangles {
		m.triangles = append(m.triangles, Triangle{t[0] + base, t[1] + base, t[2] + base})
	}
}
