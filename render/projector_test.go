package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/ascii3d/vmath"
)

func TestProjector_Center(t *testing.T) {
	p := NewProjector(60, 40, 160, 44)
	x, y, invZ := p.Project(vmath.Vec3F{})
	if x != 80 || y != 22 {
		t.Errorf("Expected origin at (80,22), got (%d,%d)", x, y)
	}
	if math.Abs(invZ-1.0/60) > 1e-15 {
		t.Errorf("Expected invZ 1/60, got %f", invZ)
	}
}

func TestProjector_AspectCorrection(t *testing.T) {
	p := NewProjector(60, 40, 160, 44)
	// z' = 50: K*invZ = 0.8, x doubled
	x, y, _ := p.Project(vmath.Vec3F{X: 5, Y: 5, Z: -10})
	if x != 88 {
		t.Errorf("Expected x 88, got %d", x)
	}
	if y != 26 {
		t.Errorf("Expected y 26, got %d", y)
	}
}

func TestProjector_Monotonicity(t *testing.T) {
	p := NewProjector(60, 40, 160, 44)
	zs := []float64{-50, -20, -10, 0, 5, 10, 40, 100}

	prev := math.Inf(1)
	for _, z := range zs {
		_, _, invZ := p.Project(vmath.Vec3F{X: 3, Y: -2, Z: z})
		if invZ <= 0 {
			t.Fatalf("Expected positive invZ for z'=%f, got %f", z+60, invZ)
		}
		if invZ >= prev {
			t.Errorf("Expected invZ to decrease as z' grows: z=%f got %f after %f", z, invZ, prev)
		}
		prev = invZ
	}
}

func TestProjector_SingularityClamped(t *testing.T) {
	p := NewProjector(60, 40, 160, 44)
	tests := []struct {
		name string
		z    float64
	}{
		{"exactly zero", -60},
		{"tiny positive", -60 + 1e-12},
		{"tiny negative", -60 - 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, invZ := p.Project(vmath.Vec3F{X: 1, Y: 1, Z: tt.z})
			if math.IsInf(invZ, 0) || math.IsNaN(invZ) {
				t.Fatalf("Expected finite invZ, got %v", invZ)
			}
			if math.Abs(invZ) > 1/p.MinDepth+1 {
				t.Errorf("Expected |invZ| <= 1/MinDepth, got %v", invZ)
			}
		})
	}
}

func TestProjector_BehindCameraNeverComposites(t *testing.T) {
	p := NewProjector(60, 40, 160, 44)
	b := NewBuffer(160, 44, ' ')

	x, y, invZ := p.Project(vmath.Vec3F{X: 0, Y: 0, Z: -70})
	if invZ >= 0 {
		t.Fatalf("Expected negative invZ behind camera, got %f", invZ)
	}
	if b.Submit(x, y, invZ, '#') {
		t.Error("Expected sample behind camera to be rejected")
	}
}

func TestProjector_Deterministic(t *testing.T) {
	p := NewProjector(60, 40, 160, 44)
	pt := vmath.Vec3F{X: 1.234, Y: -5.678, Z: 3.21}
	x1, y1, d1 := p.Project(pt)
	x2, y2, d2 := p.Project(pt)
	if x1 != x2 || y1 != y2 || d1 != d2 {
		t.Error("Expected identical results for identical input")
	}
}
