package geom

import "math"

// Vec3 is a simple 3D vector with float64 components.
type Vec3 struct {
	X, Y, Z float64
}

// FromSpherical returns the unit vector with the given spherical angles,
// in radians: azimuth is measured in the X-Y plane from +X toward +Y,
// elevation from that plane toward +Z.
func FromSpherical(azimuth, elevation float64) Vec3 {
	return Vec3{
		X: math.Cos(elevation) * math.Cos(azimuth),
		Y: math.Cos(elevation) * math.Sin(azimuth),
		Z: math.Sin(elevation),
	}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, it returns the zero vector (0,0,0).
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	inv := 1.0 / n
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}
