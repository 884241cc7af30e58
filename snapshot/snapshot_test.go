package snapshot

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/lixenwraith/ascii3d/render"
)

// litPixels counts non-black pixels inside r
func litPixels(img *image.Gray, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				n++
			}
		}
	}
	return n
}

func TestWriteText(t *testing.T) {
	buf := render.NewBuffer(3, 2, '.')
	buf.Submit(1, 0, 0.5, '#')

	var out bytes.Buffer
	if err := WriteText(&out, buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if want := ".#.\n...\n"; out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestRasterize(t *testing.T) {
	buf := render.NewBuffer(4, 3, ' ')
	buf.Submit(2, 1, 0.5, '@')

	img := Rasterize(buf)
	cw, ch := CellSize()

	if b := img.Bounds(); b.Dx() != 4*cw || b.Dy() != 3*ch {
		t.Fatalf("Expected %dx%d image, got %dx%d", 4*cw, 3*ch, b.Dx(), b.Dy())
	}

	cell := image.Rect(2*cw, ch, 3*cw, 2*ch)
	if litPixels(img, cell) == 0 {
		t.Error("Expected lit pixels in the covered cell")
	}
	if total := litPixels(img, img.Bounds()); total != litPixels(img, cell) {
		t.Errorf("Expected pixels only inside the covered cell, %d outside", total-litPixels(img, cell))
	}
}

func TestRasterize_Blank(t *testing.T) {
	img := Rasterize(render.NewBuffer(5, 5, ' '))
	if n := litPixels(img, img.Bounds()); n != 0 {
		t.Errorf("Expected blank image, got %d lit pixels", n)
	}
}

func TestWritePNG(t *testing.T) {
	buf := render.NewBuffer(2, 2, ' ')
	buf.Submit(0, 0, 1, '#')

	var out bytes.Buffer
	if err := WritePNG(&out, buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cw, ch := CellSize()
	if b := img.Bounds(); b.Dx() != 2*cw || b.Dy() != 2*ch {
		t.Errorf("Expected %dx%d, got %dx%d", 2*cw, 2*ch, b.Dx(), b.Dy())
	}
}
