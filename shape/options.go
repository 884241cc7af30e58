package shape

import (
	"fmt"

	"github.com/lixenwraith/ascii3d/parameter"
)

// Options carries sizes, densities and glyphs for all solids
type Options struct {
	HalfWidth           float64
	PyramidHeightFactor float64

	CubeStep        float64
	SphereStep      float64
	PyramidStep     float64
	PyramidBaseStep float64

	CubeGlyphs        [6]rune
	CubeStyle         Style
	PyramidSideGlyphs [4]rune
	PyramidBaseGlyph  rune
	PyramidStyle      Style
}

// DefaultOptions returns the parameter defaults
func DefaultOptions() Options {
	o := Options{
		HalfWidth:           parameter.HalfWidth,
		PyramidHeightFactor: parameter.PyramidHeightFactor,
		CubeStep:            parameter.CubeSampleStep,
		SphereStep:          parameter.SphereSampleStep,
		PyramidStep:         parameter.PyramidSampleStep,
		PyramidBaseStep:     parameter.PyramidBaseStep,
		PyramidBaseGlyph:    parameter.PyramidBaseGlyph,
	}
	copy(o.CubeGlyphs[:], []rune(parameter.CubeFaceGlyphs))
	for i := range o.PyramidSideGlyphs {
		o.PyramidSideGlyphs[i] = parameter.PyramidSideGlyph
	}
	return o
}

// New builds the sampler for kind
func New(kind Kind, o Options) (Sampler, error) {
	switch kind {
	case KindCube:
		return NewCube(o.HalfWidth, o.CubeStep, o.CubeGlyphs, o.CubeStyle), nil
	case KindSphere:
		return NewSphere(o.HalfWidth, o.SphereStep), nil
	case KindPyramid:
		return NewPyramid(
			o.HalfWidth*o.PyramidHeightFactor,
			o.HalfWidth,
			o.PyramidStep,
			o.PyramidBaseStep,
			o.PyramidSideGlyphs,
			o.PyramidBaseGlyph,
			o.PyramidStyle,
		), nil
	}
	return nil, fmt.Errorf("no sampler for %s", kind)
}

// NewSet builds samplers for every kind, indexed by Kind
func NewSet(o Options) ([]Sampler, error) {
	set := make([]Sampler, len(Kinds))
	for _, k := range Kinds {
		s, err := New(k, o)
		if err != nil {
			return nil, err
		}
		set[k] = s
	}
	return set, nil
}
