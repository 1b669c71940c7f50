// Package mesh generates unit-sphere meshes by recursive triangle subdivision.
//
// Two generators are provided. GenerateSphere subdivides a 4-vertex seed into an
// indexed mesh that shares one growing vertex slice. GenerateIcosahedron subdivides
// the 20 faces of a golden-ratio icosahedron into a flat triangle soup.
// Both split every triangle into 4 children using its 3 edge midpoints.
package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh generation errors.
var (
	ErrNegativeDepth   = errors.New("negative subdivision depth")
	ErrIndexOverflow   = errors.New("vertex count exceeds index width")
	ErrIndexOutOfRange = errors.New("corner index out of range")
)

// Index is the set of element types usable for triangle indices.
type Index interface {
	~uint16 | ~uint32
}

// Triangle holds three indices into an indexed mesh's vertex slice.
type Triangle[I Index] [3]I

// Indexed is a mesh whose triangles reference a shared vertex slice.
type Indexed[I Index] struct {
	Vertices  []mgl32.Vec3
	Triangles []Triangle[I]
}

// Soup is a non-indexed triangle list.
// Every 3 consecutive vertices form one triangle.
type Soup struct {
	Vertices []mgl32.Vec3
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// TriangleCount returns the number of triangles in the soup.
func (s *Soup) TriangleCount() int {
	return len(s.Vertices) / 3
}

// Triangle returns the corners of the n-th triangle.
func (s *Soup) Triangle(n int) (a, b, c mgl32.Vec3) {
	return s.Vertices[3*n], s.Vertices[3*n+1], s.Vertices[3*n+2]
}

// Positions flattens the vertices into x, y, z triples for buffer upload.
func (s *Soup) Positions() []float32 {
	return flatten(s.Vertices)
}

// Bounds returns the bounding box of all vertices.
func (s *Soup) Bounds() Bounds {
	return boundsOf(s.Vertices)
}

// FlipWinding reverses the orientation of every triangle.
func (s *Soup) FlipWinding() {
	for i := 0; i+2 < len(s.Vertices); i += 3 {
		s.Vertices[i+1], s.Vertices[i+2] = s.Vertices[i+2], s.Vertices[i+1]
	}
}

// Positions flattens the vertices into x, y, z triples for buffer upload.
func (m *Indexed[I]) Positions() []float32 {
	return flatten(m.Vertices)
}

// Indices flattens the triangles into an element buffer.
func (m *Indexed[I]) Indices() []I {
	out := make([]I, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}

// Bounds returns the bounding box of all vertices.
func (m *Indexed[I]) Bounds() Bounds {
	return boundsOf(m.Vertices)
}

// FlipWinding reverses the orientation of every triangle.
func (m *Indexed[I]) FlipWinding() {
	for n := range m.Triangles {
		t := &m.Triangles[n]
		t[1], t[2] = t[2], t[1]
	}
}

func flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

func boundsOf(vs []mgl32.Vec3) Bounds {
	if len(vs) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		for i := range 3 {
			b.Min[i] = min(b.Min[i], v[i])
			b.Max[i] = max(b.Max[i], v[i])
		}
	}
	return b
}
