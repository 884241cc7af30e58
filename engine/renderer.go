package engine

import (
	"github.com/lixenwraith/ascii3d/render"
	"github.com/lixenwraith/ascii3d/shape"
)

// Frame is one composited grid ready for output
// Cells aliases the renderer's buffer and is valid until the next RenderFrame
type Frame struct {
	Cells  []rune
	Width  int
	Height int
	Stats  shape.DrawStats
}

// Renderer owns the compositor and one sampler per shape kind
type Renderer struct {
	buf      *render.Buffer
	pipeline shape.Pipeline
	samplers []shape.Sampler
}

// NewRenderer sizes the buffer from the projector viewport
// samplers is indexed by shape.Kind
func NewRenderer(pipeline shape.Pipeline, background rune, samplers []shape.Sampler) *Renderer {
	return &Renderer{
		buf:      render.NewBuffer(pipeline.Projector.Width, pipeline.Projector.Height, background),
		pipeline: pipeline,
		samplers: samplers,
	}
}

// Buffer exposes the compositor for text or image export
func (r *Renderer) Buffer() *render.Buffer {
	return r.buf
}

// RenderFrame clears the buffer and draws the selected solid at the state orientation
// An unknown shape yields an empty frame
func (r *Renderer) RenderFrame(st RenderState) Frame {
	r.buf.Clear()

	var stats shape.DrawStats
	if int(st.Shape) < len(r.samplers) && r.samplers[st.Shape] != nil {
		stats = r.pipeline.Draw(r.buf, st.Orientation, r.samplers[st.Shape])
	}

	return Frame{
		Cells:  r.buf.Flatten(),
		Width:  r.buf.Width(),
		Height: r.buf.Height(),
		Stats:  stats,
	}
}
