package vmath

import (
	"math"
	"testing"
)

const rotEps = 1e-9

// rotateSequential is the reference formulation: three in-place plane rotations
func rotateSequential(p Vec3F, o Orientation) Vec3F {
	x, y, z := p.X, p.Y, p.Z

	y, z = y*math.Cos(o.X)-z*math.Sin(o.X), y*math.Sin(o.X)+z*math.Cos(o.X)
	x, z = x*math.Cos(o.Y)+z*math.Sin(o.Y), -x*math.Sin(o.Y)+z*math.Cos(o.Y)
	x, y = x*math.Cos(o.Z)-y*math.Sin(o.Z), x*math.Sin(o.Z)+y*math.Cos(o.Z)

	return Vec3F{x, y, z}
}

var rotatePoints = []Vec3F{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{10, -10, 10},
	{-3.5, 7.25, -0.125},
}

func TestRotate_Identity(t *testing.T) {
	for _, p := range rotatePoints {
		got := Rotate(p, Orientation{})
		if !V3FNear(got, p, rotEps) {
			t.Errorf("Expected %v unchanged at zero orientation, got %v", p, got)
		}
	}
}

func TestRotate_Periodicity(t *testing.T) {
	angles := []float64{0.1, 0.25, 1, math.Pi / 3, 2.5, 5.9}

	for _, theta := range angles {
		axes := []struct {
			name    string
			forward Orientation
			back    Orientation
		}{
			{"X", Orientation{X: theta}, Orientation{X: 2*math.Pi - theta}},
			{"Y", Orientation{Y: theta}, Orientation{Y: 2*math.Pi - theta}},
			{"Z", Orientation{Z: theta}, Orientation{Z: 2*math.Pi - theta}},
		}
		for _, ax := range axes {
			for _, p := range rotatePoints {
				got := Rotate(Rotate(p, ax.forward), ax.back)
				if !V3FNear(got, p, 1e-9) {
					t.Errorf("axis %s theta %.3f: expected %v, got %v", ax.name, theta, p, got)
				}
			}
		}
	}
}

func TestRotate_MatchesSequentialFormula(t *testing.T) {
	orientations := []Orientation{
		{X: 0.3},
		{Y: -1.2},
		{Z: 2.2},
		{X: 0.25, Y: 0.5, Z: 0.75},
		{X: -2, Y: 3, Z: -4},
	}

	for _, o := range orientations {
		for _, p := range rotatePoints {
			want := rotateSequential(p, o)
			got := Rotate(p, o)
			if !V3FNear(got, want, rotEps) {
				t.Errorf("orientation %+v point %v: expected %v, got %v", o, p, want, got)
			}
		}
	}
}

func TestRotate_QuarterTurns(t *testing.T) {
	tests := []struct {
		name string
		o    Orientation
		in   Vec3F
		want Vec3F
	}{
		{"X turns Y into Z", Orientation{X: math.Pi / 2}, Vec3F{0, 1, 0}, Vec3F{0, 0, 1}},
		{"Y turns Z into X", Orientation{Y: math.Pi / 2}, Vec3F{0, 0, 1}, Vec3F{1, 0, 0}},
		{"Z turns X into Y", Orientation{Z: math.Pi / 2}, Vec3F{1, 0, 0}, Vec3F{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.in, tt.o)
			if !V3FNear(got, tt.want, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRotate_PreservesLength(t *testing.T) {
	o := Orientation{X: 0.7, Y: -0.4, Z: 1.9}
	r := o.Rotator()
	for _, p := range rotatePoints {
		before := V3FMag(p)
		after := V3FMag(r.Apply(p))
		if math.Abs(before-after) > 1e-9 {
			t.Errorf("Expected length %f preserved for %v, got %f", before, p, after)
		}
	}
}

func TestOrientation_Add(t *testing.T) {
	o := Orientation{X: 1, Y: 2, Z: 3}.Add(0.5, -1, 0)
	if o != (Orientation{X: 1.5, Y: 1, Z: 3}) {
		t.Errorf("Expected {1.5 1 3}, got %+v", o)
	}
}

func TestV3FBarycentric(t *testing.T) {
	a := Vec3F{0, 15, 0}
	b := Vec3F{-10, 0, -10}
	c := Vec3F{10, 0, -10}

	if got := V3FBarycentric(a, b, c, 1, 0, 0); got != a {
		t.Errorf("Expected apex %v, got %v", a, got)
	}
	mid := V3FBarycentric(a, b, c, 0, 0.5, 0.5)
	if !V3FNear(mid, Vec3F{0, 0, -10}, 1e-12) {
		t.Errorf("Expected edge midpoint {0 0 -10}, got %v", mid)
	}
}
