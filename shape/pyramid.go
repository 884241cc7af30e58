package shape

import (
	"iter"

	"github.com/lixenwraith/ascii3d/vmath"
)

// Pyramid samples four triangular sides and a square base
// Apex sits at (0, Height, 0), base corners at (±BaseHalf, 0, ±BaseHalf)
type Pyramid struct {
	Height     float64
	BaseHalf   float64
	Step       float64 // Barycentric increment for the sides
	BaseStep   float64 // Grid increment for the base in object units
	SideGlyphs [4]rune
	BaseGlyph  rune
	Style      Style
}

// NewPyramid creates a pyramid sampler
func NewPyramid(height, baseHalf, step, baseStep float64, sides [4]rune, base rune, style Style) *Pyramid {
	return &Pyramid{
		Height:     height,
		BaseHalf:   baseHalf,
		Step:       step,
		BaseStep:   baseStep,
		SideGlyphs: sides,
		BaseGlyph:  base,
		Style:      style,
	}
}

func (p *Pyramid) Kind() Kind { return KindPyramid }

// Vertices returns the apex followed by the base corners in winding order
func (p *Pyramid) Vertices() [5]vmath.Vec3F {
	b := p.BaseHalf
	return [5]vmath.Vec3F{
		{X: 0, Y: p.Height, Z: 0},
		{X: -b, Y: 0, Z: -b},
		{X: b, Y: 0, Z: -b},
		{X: b, Y: 0, Z: b},
		{X: -b, Y: 0, Z: b},
	}
}

func (p *Pyramid) Samples() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		v := p.Vertices()
		shaded := p.Style == StyleShaded

		// Sides: t1 in [0,1], t2 in [0,1-t1]
		n := countClosed(1, p.Step) - 1
		for face := 0; face < 4; face++ {
			a, b := v[face+1], v[(face+1)%4+1]
			glyph := p.SideGlyphs[face]
			for i := 0; i <= n; i++ {
				t1 := float64(i) * p.Step
				for j := 0; j <= n-i; j++ {
					t2 := float64(j) * p.Step
					pt := vmath.V3FBarycentric(v[0], a, b, 1-t1-t2, t1, t2)
					if !yield(Sample{Point: pt, Glyph: glyph, Shaded: shaded}) {
						return
					}
				}
			}
		}

		// Base: x, z in [-BaseHalf, BaseHalf] at y = 0
		bh := p.BaseHalf
		m := countClosed(2*bh, p.BaseStep)
		for i := 0; i < m; i++ {
			x := -bh + float64(i)*p.BaseStep
			for j := 0; j < m; j++ {
				z := -bh + float64(j)*p.BaseStep
				pt := vmath.Vec3F{X: x, Y: 0, Z: z}
				if !yield(Sample{Point: pt, Glyph: p.BaseGlyph, Shaded: shaded}) {
					return
				}
			}
		}
	}
}
