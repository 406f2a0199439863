// Package icon renders the placeholder app icons: a solid square with a
// centered text label.
package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Placement describes where a label goes on a square canvas.
type Placement struct {
	// Origin is the top-left corner of the label's ink box.
	Origin image.Point
	// Width and Height are the ink box size in whole pixels.
	Width, Height int
	// Dot is the baseline start handed to the font drawer so the ink box
	// lands at Origin.
	Dot fixed.Point26_6
}

// Layout measures label under face and centers its ink box on a size×size
// canvas using floor division.
func Layout(size int, face font.Face, label string) Placement {
	b, _ := font.BoundString(face, label)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	x := floorDiv(size-w, 2)
	y := floorDiv(size-h, 2)
	return Placement{
		Origin: image.Pt(x, y),
		Width:  w,
		Height: h,
		Dot:    fixed.P(x-b.Min.X.Floor(), y-b.Min.Y.Floor()),
	}
}

// Draw returns a size×size opaque canvas filled with bg and label drawn
// centered in fg.
func Draw(size int, face font.Face, label string, bg, fg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	p := Layout(size, face, label)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  p.Dot,
	}
	d.DrawString(label)
	return img
}

// EncodePNG encodes img as PNG. A fully opaque *image.RGBA is written as
// 8-bit RGB truecolor.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
