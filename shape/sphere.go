package shape

import (
	"iter"
	"math"

	"github.com/lixenwraith/ascii3d/vmath"
)

// Sphere samples theta in [0, 2π) and phi in [0, π) at a fixed radius
// All samples are shaded
type Sphere struct {
	Radius float64
	Step   float64
}

// NewSphere creates a sphere sampler
func NewSphere(radius, step float64) *Sphere {
	return &Sphere{Radius: radius, Step: step}
}

func (s *Sphere) Kind() Kind { return KindSphere }

func (s *Sphere) Samples() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		nTheta := countHalfOpen(2*math.Pi, s.Step)
		nPhi := countHalfOpen(math.Pi, s.Step)
		r := s.Radius

		for i := 0; i < nTheta; i++ {
			sinT, cosT := math.Sincos(float64(i) * s.Step)
			for j := 0; j < nPhi; j++ {
				sinP, cosP := math.Sincos(float64(j) * s.Step)
				p := vmath.Vec3F{
					X: r * sinP * cosT,
					Y: r * sinP * sinT,
					Z: r * cosP,
				}
				if !yield(Sample{Point: p, Shaded: true}) {
					return
				}
			}
		}
	}
}
