package shape

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ascii3d/render"
	"github.com/lixenwraith/ascii3d/vmath"
)

// DepthMode selects the depth fed to the shading function
type DepthMode uint8

const (
	// DepthObject shades by pre-rotation z plus camera distance
	// This is a proxy: shading stays fixed to the surface while the solid turns
	DepthObject DepthMode = iota

	// DepthCamera shades by post-rotation z plus camera distance
	DepthCamera
)

// ParseDepthMode resolves "object" or "camera"
func ParseDepthMode(s string) (DepthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "object":
		return DepthObject, nil
	case "camera":
		return DepthCamera, nil
	}
	return DepthObject, fmt.Errorf("unknown depth mode %q", s)
}

// DrawStats counts samples processed in one Draw
type DrawStats struct {
	Samples  int
	Accepted int // Samples that won their cell at submit time
}

// Add accumulates other into s
func (s *DrawStats) Add(other DrawStats) {
	s.Samples += other.Samples
	s.Accepted += other.Accepted
}

// Pipeline is the shared rotate → project → shade → composite path
type Pipeline struct {
	Projector render.Projector
	Shader    render.Shader
	Depth     DepthMode
}

// Draw composites every sample of s into buf at orientation o
// buf is not cleared
func (p Pipeline) Draw(buf *render.Buffer, o vmath.Orientation, s Sampler) DrawStats {
	var stats DrawStats
	rot := o.Rotator()
	dist := p.Projector.Distance

	for sm := range s.Samples() {
		stats.Samples++

		q := rot.Apply(sm.Point)
		x, y, invZ := p.Projector.Project(q)

		glyph := sm.Glyph
		if sm.Shaded {
			depth := sm.Point.Z + dist
			if p.Depth == DepthCamera {
				depth = q.Z + dist
			}
			glyph = p.Shader.Glyph(depth)
		}

		if buf.Submit(x, y, invZ, glyph) {
			stats.Accepted++
		}
	}
	return stats
}
