package geom

import (
	"math"
	"testing"
)

func TestFromSpherical(t *testing.T) {
	tests := []struct {
		name      string
		azimuth   float64
		elevation float64
		want      Vec3
	}{
		{"along +X", 0, 0, Vec3{1, 0, 0}},
		{"along +Y", math.Pi / 2, 0, Vec3{0, 1, 0}},
		{"north pole", 0, math.Pi / 2, Vec3{0, 0, 1}},
		{"mid elevation", math.Pi, math.Pi / 4, Vec3{-math.Sqrt2 / 2, 0, math.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSpherical(tt.azimuth, tt.elevation)
			if math.Abs(got.X-tt.want.X) > 1e-12 ||
				math.Abs(got.Y-tt.want.Y) > 1e-12 ||
				math.Abs(got.Z-tt.want.Z) > 1e-12 {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if norm := got.Norm(); math.Abs(norm-1.0) > 1e-12 {
				t.Errorf("norm = %v, want 1", norm)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if norm := v.Norm(); math.Abs(norm-1.0) > 1e-12 {
		t.Errorf("norm = %v, want 1", norm)
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("got %+v, want (0.6, 0.8, 0)", v)
	}

	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("normalizing the zero vector gave %+v", zero)
	}
}

func TestDotOrthogonal(t *testing.T) {
	a := FromSpherical(0, 0)
	b := FromSpherical(math.Pi/2, 0)
	if dot := a.Dot(b); math.Abs(dot) > 1e-12 {
		t.Errorf("dot of orthogonal unit vectors = %v, want 0", dot)
	}
}
