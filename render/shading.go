package render

import (
	"math"
	"unicode/utf8"
)

// Ramp is an ordered glyph sequence from visually sparse to dense
type Ramp []rune

// NewRamp converts a ramp string into glyphs
func NewRamp(s string) Ramp {
	r := make(Ramp, 0, utf8.RuneCountInString(s))
	for _, c := range s {
		r = append(r, c)
	}
	return r
}

// Shader maps a depth value onto a Ramp
// Depth 0 maps to the sparse end and DepthRange to the dense end
type Shader struct {
	Ramp       Ramp
	DepthRange float64
}

// NewShader builds a shader whose range spans the camera distance plus the solid's full width
func NewShader(ramp Ramp, cameraDistance, halfWidth float64) Shader {
	return Shader{
		Ramp:       ramp,
		DepthRange: cameraDistance + halfWidth*2,
	}
}

// Index returns the ramp index for depth, clamped to [0, len-1]
// NaN maps to 0; infinities clamp to the nearest end
func (s Shader) Index(depth float64) int {
	n := len(s.Ramp)
	if n == 0 {
		return 0
	}
	if s.DepthRange <= 0 || math.IsNaN(depth) {
		return 0
	}
	f := depth / s.DepthRange * float64(n-1)
	if f <= 0 {
		return 0
	}
	if f >= float64(n-1) {
		return n - 1
	}
	return int(f)
}

// Glyph returns the ramp glyph for depth
func (s Shader) Glyph(depth float64) rune {
	if len(s.Ramp) == 0 {
		return ' '
	}
	return s.Ramp[s.Index(depth)]
}
