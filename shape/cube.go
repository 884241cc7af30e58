package shape

import (
	"iter"

	"github.com/lixenwraith/ascii3d/vmath"
)

// Cube face order for glyph assignment
const (
	FaceFront = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
	faceCount
)

// Cube samples six faces over u, v in [-HalfWidth, HalfWidth)
type Cube struct {
	HalfWidth float64
	Step      float64
	Glyphs    [6]rune
	Style     Style
}

// NewCube creates a cube sampler
func NewCube(halfWidth, step float64, glyphs [6]rune, style Style) *Cube {
	return &Cube{
		HalfWidth: halfWidth,
		Step:      step,
		Glyphs:    glyphs,
		Style:     style,
	}
}

func (c *Cube) Kind() Kind { return KindCube }

func (c *Cube) Samples() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		h := c.HalfWidth
		n := countHalfOpen(2*h, c.Step)
		shaded := c.Style == StyleShaded

		var faces [faceCount]vmath.Vec3F
		for i := 0; i < n; i++ {
			u := -h + float64(i)*c.Step
			for j := 0; j < n; j++ {
				v := -h + float64(j)*c.Step

				faces[FaceFront] = vmath.Vec3F{X: u, Y: v, Z: -h}
				faces[FaceBack] = vmath.Vec3F{X: -u, Y: v, Z: h}
				faces[FaceLeft] = vmath.Vec3F{X: -h, Y: v, Z: u}
				faces[FaceRight] = vmath.Vec3F{X: h, Y: v, Z: -u}
				faces[FaceTop] = vmath.Vec3F{X: u, Y: h, Z: v}
				faces[FaceBottom] = vmath.Vec3F{X: u, Y: -h, Z: -v}

				for f := range faces {
					if !yield(Sample{Point: faces[f], Glyph: c.Glyphs[f], Shaded: shaded}) {
						return
					}
				}
			}
		}
	}
}
