// Package snapshot exports a composited frame as text or a PNG raster.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/ascii3d/render"
)

// face is the fixed-cell bitmap font used for rasterizing glyphs
var face = basicfont.Face7x13

// CellSize returns the pixel size of one character cell
func CellSize() (w, h int) {
	return face.Advance, face.Height
}

// WriteText writes the frame rows separated by newlines, ending with a newline
func WriteText(w io.Writer, buf *render.Buffer) error {
	for _, line := range buf.Lines() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}
	return nil
}

// Rasterize draws every non-background cell in white on black
func Rasterize(buf *render.Buffer) *image.Gray {
	cw, ch := CellSize()
	img := image.NewGray(image.Rect(0, 0, buf.Width()*cw, buf.Height()*ch))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	var glyph [1]rune
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			r, _ := buf.At(x, y)
			if r == buf.Background() || r == ' ' {
				continue
			}
			glyph[0] = r
			d.Dot = fixed.P(x*cw, y*ch+face.Ascent)
			d.DrawString(string(glyph[:]))
		}
	}
	return img
}

// WritePNG rasterizes the frame and encodes it as PNG
func WritePNG(w io.Writer, buf *render.Buffer) error {
	if err := png.Encode(w, Rasterize(buf)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
