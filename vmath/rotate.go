package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Orientation holds rotation angles in radians around the X, Y and Z axes
type Orientation struct {
	X, Y, Z float64
}

// Add returns o offset by the given deltas
func (o Orientation) Add(dx, dy, dz float64) Orientation {
	return Orientation{X: o.X + dx, Y: o.Y + dy, Z: o.Z + dz}
}

// Rotator applies a fixed orientation to many points
// Axis matrices are built once so per-sample cost is three 3x3 multiplies
type Rotator struct {
	rx, ry, rz mgl64.Mat3
}

// Rotator precomputes the axis matrices for o
func (o Orientation) Rotator() Rotator {
	return Rotator{
		rx: mgl64.Rotate3DX(o.X),
		ry: mgl64.Rotate3DY(o.Y),
		rz: mgl64.Rotate3DZ(o.Z),
	}
}

// Apply rotates p around X, then Y, then Z
// Each step consumes the coordinates produced by the previous one
func (r Rotator) Apply(p Vec3F) Vec3F {
	v := p.ToMgl()
	v = r.rx.Mul3x1(v)
	v = r.ry.Mul3x1(v)
	v = r.rz.Mul3x1(v)
	return V3FFromMgl(v)
}

// Rotate applies o to a single point
func Rotate(p Vec3F, o Orientation) Vec3F {
	return o.Rotator().Apply(p)
}
