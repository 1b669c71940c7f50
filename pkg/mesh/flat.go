package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// IcosahedronVertices returns the 12 vertices of a golden-ratio icosahedron
// normalized onto the unit sphere.
func IcosahedronVertices() [12]mgl32.Vec3 {
	t := float32((1 + math.Sqrt(5)) / 2)
	vs := [12]mgl32.Vec3{
		{-1, t, 0}, {+1, t, 0}, {-1, -t, 0}, {+1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range vs {
		vs[i] = vs[i].Normalize()
	}
	return vs
}

// IcosahedronFaces lists the 20 icosahedron faces as indices into
// IcosahedronVertices, counter-clockwise seen from outside.
var IcosahedronFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// GenerateIcosahedron builds a unit-sphere triangle soup by splitting each
// icosahedron face to the given depth. The soup holds 20*4^depth triangles.
func GenerateIcosahedron(depth int, opts ...Option) (*Soup, error) {
	if depth < 0 {
		return nil, fmt.Errorf("icosahedron depth %d: %w", depth, ErrNegativeDepth)
	}
	vs := IcosahedronVertices()
	s := &Soup{}
	if depth < 16 {
		s.Vertices = make([]mgl32.Vec3, 0, 20*3*(splitVertices(depth)+1))
	}
	for _, f := range IcosahedronFaces {
		if err := SubdivideFlat(s, vs[f[0]], vs[f[1]], vs[f[2]], depth, opts...); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SubdivideFlat splits triangle (a, b, c) to the given depth and appends the
// resulting triangles to s. Vertices shared between triangles are stored once
// per triangle.
func SubdivideFlat(s *Soup, a, b, c mgl32.Vec3, depth int, opts ...Option) error {
	if depth < 0 {
		return fmt.Errorf("subdivide depth %d: %w", depth, ErrNegativeDepth)
	}

	o := buildOptions(opts)
	start := len(s.Vertices)
	switch o.strategy {
	case Iterative:
		subdivideFlatStack(s, a, b, c, depth)
	default:
		subdivideFlat(s, a, b, c, depth)
	}

	if o.flip(depth) {
		tail := Soup{Vertices: s.Vertices[start:]}
		tail.FlipWinding()
	}
	return nil
}

func subdivideFlat(s *Soup, a0, b0, c0 mgl32.Vec3, depth int) {
	if depth == 0 {
		s.Vertices = append(s.Vertices, a0, b0, c0)
		return
	}
	a1 := Midpoint(b0, c0)
	b1 := Midpoint(c0, a0)
	c1 := Midpoint(a0, b0)

	subdivideFlat(s, a0, b1, c1, depth-1)
	subdivideFlat(s, b0, c1, a1, depth-1)
	subdivideFlat(s, c0, a1, b1, depth-1)
	subdivideFlat(s, b1, a1, c1, depth-1)
}

type flatFrame struct {
	a, b, c mgl32.Vec3
	depth   int
}

func subdivideFlatStack(s *Soup, a0, b0, c0 mgl32.Vec3, depth int) {
	stack := make([]flatFrame, 0, 3*depth+1)
	stack = append(stack, flatFrame{a0, b0, c0, depth})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth == 0 {
			s.Vertices = append(s.Vertices, f.a, f.b, f.c)
			continue
		}
		a1 := Midpoint(f.b, f.c)
		b1 := Midpoint(f.c, f.a)
		c1 := Midpoint(f.a, f.b)
		d := f.depth - 1
		stack = append(stack,
			flatFrame{b1, a1, c1, d},
			flatFrame{f.c, a1, b1, d},
			flatFrame{f.b, c1, a1, d},
			flatFrame{f.a, b1, c1, d},
		)
	}
}
