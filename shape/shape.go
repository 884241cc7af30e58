// Package shape enumerates dense parametric samples over the surfaces of the
// supported solids and feeds them through one shared projection pipeline.
//
// Each Sampler exposes its surface as a restartable, finite iter.Seq; the
// pipeline rotates, projects and composites every sample into a
// render.Buffer. Sample density is a tuning knob: steps that are too coarse
// leave background holes between neighboring projected samples.
package shape

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/lixenwraith/ascii3d/vmath"
)

// Kind selects the active solid
type Kind uint8

const (
	KindCube Kind = iota
	KindSphere
	KindPyramid
)

// Kinds lists all solids in menu order
var Kinds = []Kind{KindCube, KindSphere, KindPyramid}

var kindNames = [...]string{
	KindCube:    "cube",
	KindSphere:  "sphere",
	KindPyramid: "pyramid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind resolves a solid by name or menu number (1-based)
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name || s == fmt.Sprint(i+1) {
			return Kind(i), nil
		}
	}
	return KindCube, fmt.Errorf("unknown shape %q", s)
}

// Style selects fixed per-face glyphs or depth-derived shading
type Style uint8

const (
	StyleFaces Style = iota
	StyleShaded
)

// ParseStyle resolves "faces" or "shaded"
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "faces":
		return StyleFaces, nil
	case "shaded":
		return StyleShaded, nil
	}
	return StyleFaces, fmt.Errorf("unknown style %q", s)
}

// Sample is one surface point with its glyph
// Shaded samples ignore Glyph; the pipeline derives it from depth
type Sample struct {
	Point  vmath.Vec3F
	Glyph  rune
	Shaded bool
}

// Sampler produces the surface of one solid
type Sampler interface {
	Kind() Kind
	// Samples returns a finite sequence that may be ranged any number of times
	Samples() iter.Seq[Sample]
}

// countHalfOpen returns how many of start, start+step, ... lie in [start, start+span)
func countHalfOpen(span, step float64) int {
	if step <= 0 || span <= 0 {
		return 0
	}
	return int(math.Ceil(span/step - 1e-9))
}

// countClosed returns how many of start, start+step, ... lie in [start, start+span]
func countClosed(span, step float64) int {
	if step <= 0 || span < 0 {
		return 0
	}
	return int(math.Floor(span/step+1e-9)) + 1
}

// Count ranges the sampler once and returns the number of samples
func Count(s Sampler) int {
	n := 0
	for range s.Samples() {
		n++
	}
	return n
}
