// Package geom provides mesh geometry types for bathymetric surfaces.
package geom

// Point is a 3D position in a local Cartesian frame. X and Y are
// horizontal grid coordinates in meters; Z is signed depth, negative
// below the reference surface. Positions are kept in double precision
// and downcast to float32 only at serialization time.
type Point struct {
	X, Y, Z float64
}

// F32 returns the position downcast to 32-bit floats, the precision
// actually stored on the wire.
func (p Point) F32() [3]float32 {
	return [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
}

// Triangle indexes three vertices of a mesh. The winding order is
// meaningful and must be preserved.
type Triangle struct {
	V0, V1, V2 uint32
}

// Degenerate reports whether any two indices coincide.
func (t Triangle) Degenerate() bool {
	return t.V0 == t.V1 || t.V1 == t.V2 || t.V0 == t.V2
}

// Bounds is an axis-aligned bounding box in float32 precision.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Extend grows the bounds to include p.
func (b *Bounds) Extend(p [3]float32) {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}
