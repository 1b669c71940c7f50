package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Weld converts a triangle soup into an indexed mesh, merging vertices with
// identical positions. Triangle order and winding are kept.
//
// Midpoints on an edge shared by two faces are computed from the same pair of
// endpoints, so a welded icosahedron of depth D has 10*4^D+2 vertices.
func Weld[I Index](s *Soup) (*Indexed[I], error) {
	m := &Indexed[I]{
		Triangles: make([]Triangle[I], 0, s.TriangleCount()),
	}
	seen := make(map[mgl32.Vec3]I)

	lookup := func(v mgl32.Vec3) (I, error) {
		if idx, ok := seen[v]; ok {
			return idx, nil
		}
		if uint64(len(m.Vertices)) > maxIndex[I]() {
			return 0, fmt.Errorf("welding vertex %d with %d-bit indices: %w",
				len(m.Vertices), indexBits[I](), ErrIndexOverflow)
		}
		idx := I(len(m.Vertices))
		m.Vertices = append(m.Vertices, v)
		seen[v] = idx
		return idx, nil
	}

	for n := range s.TriangleCount() {
		var t Triangle[I]
		for c := range 3 {
			idx, err := lookup(s.Vertices[3*n+c])
			if err != nil {
				return nil, err
			}
			t[c] = idx
		}
		m.Triangles = append(m.Triangles, t)
	}
	return m, nil
}
