package render

import (
	"github.com/lixenwraith/ascii3d/parameter"
	"github.com/lixenwraith/ascii3d/vmath"
)

// Projector maps rotated object-space points to screen cells with perspective
type Projector struct {
	Distance float64 // Camera distance D added to z
	Scale    float64 // Projection scale K
	Width    int
	Height   int
	MinDepth float64 // Smallest |z'| before clamping; zero uses parameter.MinProjectionDepth
}

// NewProjector creates a projector for a width x height viewport
func NewProjector(distance, scale float64, width, height int) Projector {
	return Projector{
		Distance: distance,
		Scale:    scale,
		Width:    width,
		Height:   height,
		MinDepth: parameter.MinProjectionDepth,
	}
}

// Project returns the truncated screen cell and inverse depth of p
// z' is clamped away from zero so invZ is always finite
func (pr Projector) Project(p vmath.Vec3F) (x, y int, invZ float64) {
	z := p.Z + pr.Distance

	minDepth := pr.MinDepth
	if minDepth <= 0 {
		minDepth = parameter.MinProjectionDepth
	}
	if z < minDepth && z > -minDepth {
		if z < 0 {
			z = -minDepth
		} else {
			z = minDepth
		}
	}

	invZ = 1 / z
	sx := float64(pr.Width)/2 + pr.Scale*invZ*p.X*parameter.AspectCorrectionX
	sy := float64(pr.Height)/2 + pr.Scale*invZ*p.Y

	return int(sx), int(sy), invZ
}
