package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere seed vertices before normalization. Faces are listed counter-clockwise
// seen from outside.
var (
	sphereSeed = [4]mgl32.Vec3{
		{+1, 0, -0.70710678118},
		{-1, 0, -0.70710678118},
		{0, +1, +0.70710678118},
		{0, -1, +0.70710678118},
	}
	sphereFaces = [4][3]int{
		{0, 2, 3},
		{0, 3, 1},
		{1, 3, 2},
		{1, 2, 0},
	}
)

// GenerateSphere builds an indexed unit sphere from a 4-vertex seed, splitting
// each seed face to the given depth.
//
// The result has 4^(depth+1) vertices and 4*4^depth triangles. It fails with
// ErrIndexOverflow when the vertex count does not fit in I.
func GenerateSphere[I Index](depth int, opts ...Option) (*Indexed[I], error) {
	if depth < 0 {
		return nil, fmt.Errorf("sphere depth %d: %w", depth, ErrNegativeDepth)
	}
	total, ok := sphereVertexCount(depth)
	if !ok || total-1 > maxIndex[I]() {
		return nil, fmt.Errorf("sphere depth %d with %d-bit indices: %w", depth, indexBits[I](), ErrIndexOverflow)
	}

	m := &Indexed[I]{
		Vertices:  make([]mgl32.Vec3, 0, total),
		Triangles: make([]Triangle[I], 0, 4*(splitVertices(depth)+1)),
	}
	for _, v := range sphereSeed {
		m.Vertices = append(m.Vertices, v.Normalize())
	}

	for _, f := range sphereFaces {
		if err := Subdivide(m, I(f[0]), I(f[1]), I(f[2]), depth, opts...); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Subdivide splits triangle (i0, j0, k0) of m to the given depth.
//
// Every split appends the 3 edge midpoints to m.Vertices: i1 on edge j0-k0,
// j1 on edge k0-i0 and k1 on edge i0-j0. The children are visited in the order
// (i0,j1,k1), (j0,k1,i1), (k0,i1,j1), (j1,i1,k1). At depth 0 the triangle itself
// is appended to m.Triangles.
func Subdivide[I Index](m *Indexed[I], i0, j0, k0 I, depth int, opts ...Option) error {
	if depth < 0 {
		return fmt.Errorf("subdivide depth %d: %w", depth, ErrNegativeDepth)
	}
	n := uint64(len(m.Vertices))
	for _, c := range [3]I{i0, j0, k0} {
		if uint64(c) >= n {
			return fmt.Errorf("corner %d of %d vertices: %w", c, n, ErrIndexOutOfRange)
		}
	}
	added := splitVertices(depth)
	if added > math.MaxUint64-n || n+added-1 > maxIndex[I]() {
		return fmt.Errorf("subdivide depth %d from %d vertices with %d-bit indices: %w",
			depth, n, indexBits[I](), ErrIndexOverflow)
	}

	o := buildOptions(opts)
	start := len(m.Triangles)
	switch o.strategy {
	case Iterative:
		subdivideStack(m, i0, j0, k0, depth)
	default:
		subdivide(m, i0, j0, k0, depth)
	}

	if o.flip(depth) {
		tris := m.Triangles[start:]
		for t := range tris {
			tris[t][1], tris[t][2] = tris[t][2], tris[t][1]
		}
	}
	return nil
}

// split appends the midpoints of triangle (i0, j0, k0) and returns their indices.
func split[I Index](m *Indexed[I], i0, j0, k0 I) (i1, j1, k1 I) {
	a, b, c := m.Vertices[i0], m.Vertices[j0], m.Vertices[k0]
	n := I(len(m.Vertices))
	m.Vertices = append(m.Vertices, Midpoint(b, c), Midpoint(c, a), Midpoint(a, b))
	return n, n + 1, n + 2
}

func subdivide[I Index](m *Indexed[I], i0, j0, k0 I, depth int) {
	if depth == 0 {
		m.Triangles = append(m.Triangles, Triangle[I]{i0, j0, k0})
		return
	}
	i1, j1, k1 := split(m, i0, j0, k0)
	subdivide(m, i0, j1, k1, depth-1)
	subdivide(m, j0, k1, i1, depth-1)
	subdivide(m, k0, i1, j1, depth-1)
	subdivide(m, j1, i1, k1, depth-1)
}

type indexedFrame[I Index] struct {
	i, j, k I
	depth   int
}

func subdivideStack[I Index](m *Indexed[I], i0, j0, k0 I, depth int) {
	stack := make([]indexedFrame[I], 0, 3*depth+1)
	stack = append(stack, indexedFrame[I]{i0, j0, k0, depth})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth == 0 {
			m.Triangles = append(m.Triangles, Triangle[I]{f.i, f.j, f.k})
			continue
		}
		i1, j1, k1 := split(m, f.i, f.j, f.k)
		d := f.depth - 1
		// Pushed in reverse so they pop in recursive order.
		stack = append(stack,
			indexedFrame[I]{j1, i1, k1, d},
			indexedFrame[I]{f.k, i1, j1, d},
			indexedFrame[I]{f.j, k1, i1, d},
			indexedFrame[I]{f.i, j1, k1, d},
		)
	}
}

// MaxDepth returns the deepest sphere GenerateSphere can build with index type I.
func MaxDepth[I Index]() int {
	depth := 0
	for {
		total, ok := sphereVertexCount(depth + 1)
		if !ok || total-1 > maxIndex[I]() {
			return depth
		}
		depth++
	}
}

// splitVertices returns how many vertices one triangle gains when split to
// depth, saturating at math.MaxUint64.
func splitVertices(depth int) uint64 {
	if depth >= 32 {
		return math.MaxUint64
	}
	return 1<<(2*uint(depth)) - 1
}

// sphereVertexCount returns 4^(depth+1), or false if it does not fit in a uint64.
func sphereVertexCount(depth int) (uint64, bool) {
	if depth >= 31 {
		return 0, false
	}
	return 1 << (2 * uint(depth+1)), true
}

func maxIndex[I Index]() uint64 {
	var zero I
	return uint64(^zero)
}

func indexBits[I Index]() int {
	if maxIndex[I]() == math.MaxUint16 {
		return 16
	}
	return 32
}
