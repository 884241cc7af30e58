package render

import (
	"math"
	"strings"
)

// Buffer is the depth-buffered character compositor for one viewport
// Glyphs and inverse depths are parallel row-major slices indexed y*width + x
type Buffer struct {
	glyphs     []rune
	depth      []float64
	width      int
	height     int
	background rune
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int, background rune) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	b := &Buffer{
		glyphs:     make([]rune, size),
		depth:      make([]float64, size),
		width:      width,
		height:     height,
		background: background,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *Buffer) Height() int { return b.height }

// Background returns the glyph of uncovered cells
func (b *Buffer) Background() rune { return b.background }

// Clear resets depth to zero and glyphs to background using exponential copy
// Must run once per frame before any Submit
func (b *Buffer) Clear() {
	if len(b.glyphs) == 0 {
		return
	}
	b.glyphs[0] = b.background
	b.depth[0] = 0
	for filled := 1; filled < len(b.glyphs); filled *= 2 {
		copy(b.glyphs[filled:], b.glyphs[:filled])
	}
	for filled := 1; filled < len(b.depth); filled *= 2 {
		copy(b.depth[filled:], b.depth[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== COMPOSITOR API =====

// Submit offers a sample to cell (x, y)
// The sample wins only if strictly nearer (larger invZ) than the current owner; equal depth keeps the earlier sample
// Off-screen and non-finite samples are discarded; reports whether the cell was written
func (b *Buffer) Submit(x, y int, invZ float64, glyph rune) bool {
	if !b.inBounds(x, y) {
		return false
	}
	if math.IsNaN(invZ) || math.IsInf(invZ, 0) {
		return false
	}
	idx := y*b.width + x
	if invZ > b.depth[idx] {
		b.depth[idx] = invZ
		b.glyphs[idx] = glyph
		return true
	}
	return false
}

// ===== ACCESSORS =====

// At returns the glyph at (x, y); ok is false out of bounds
func (b *Buffer) At(x, y int) (rune, bool) {
	if !b.inBounds(x, y) {
		return 0, false
	}
	return b.glyphs[y*b.width+x], true
}

// Depth returns the inverse depth stored at (x, y); 0 means no coverage
func (b *Buffer) Depth(x, y int) (float64, bool) {
	if !b.inBounds(x, y) {
		return 0, false
	}
	return b.depth[y*b.width+x], true
}

// Covered reports whether any sample landed at (x, y) this frame
func (b *Buffer) Covered(x, y int) bool {
	d, ok := b.Depth(x, y)
	return ok && d > 0
}

// Coverage counts cells written this frame
func (b *Buffer) Coverage() int {
	n := 0
	for _, d := range b.depth {
		if d > 0 {
			n++
		}
	}
	return n
}

// ===== EXPORT =====

// Flatten returns exactly width*height glyphs in row-major order
// The slice aliases the buffer and is valid until the next Clear
func (b *Buffer) Flatten() []rune {
	return b.glyphs
}

// Lines returns one string per row
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		lines[y] = string(b.glyphs[y*b.width : (y+1)*b.width])
	}
	return lines
}

// String joins rows with newlines
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
