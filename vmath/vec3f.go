package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3F is a float64 3D point in object or camera space
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FBarycentric returns a*w0 + b*w1 + c*w2
func V3FBarycentric(a, b, c Vec3F, w0, w1, w2 float64) Vec3F {
	return Vec3F{
		X: a.X*w0 + b.X*w1 + c.X*w2,
		Y: a.Y*w0 + b.Y*w1 + c.Y*w2,
		Z: a.Z*w0 + b.Z*w1 + c.Z*w2,
	}
}

// V3FNear reports whether a and b differ by at most eps on every axis
func V3FNear(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// ToMgl converts to a mathgl vector
func (v Vec3F) ToMgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// V3FFromMgl converts a mathgl vector
func V3FFromMgl(v mgl64.Vec3) Vec3F {
	return Vec3F{X: v[0], Y: v[1], Z: v[2]}
}
