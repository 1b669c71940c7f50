package mesh

import "github.com/go-gl/mathgl/mgl32"

// Midpoint returns the midpoint of a and b projected onto the unit sphere.
// When a and b are antipodal the midpoint is the origin and is returned as is.
func Midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	m := a.Add(b).Mul(0.5)
	if m.Len() > 0 {
		return m.Normalize()
	}
	return m
}
