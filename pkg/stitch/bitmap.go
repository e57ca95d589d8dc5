package stitch

import (
	"image"
	"image/color"
	"strings"
)

// Bitmap is an immutable monochrome image stored row-major.
type Bitmap struct {
	width  int
	height int
	pix    []bool
}

// Width returns the number of columns.
func (b *Bitmap) Width() int { return b.width }

// Height returns the number of rows.
func (b *Bitmap) Height() int { return b.height }

// At reports whether the pixel at row y, column x is set. Out of range
// coordinates read as clear.
func (b *Bitmap) At(y, x int) bool {
	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return false
	}
	return b.pix[y*b.width+x]
}

// Count returns the number of set pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, p := range b.pix {
		if p {
			n++
		}
	}
	return n
}

// Rows returns a copy of the pixels as a slice of rows.
func (b *Bitmap) Rows() [][]bool {
	out := make([][]bool, b.height)
	for y := range out {
		out[y] = append([]bool(nil), b.pix[y*b.width:(y+1)*b.width]...)
	}
	return out
}

// String renders the bitmap with '#' for set and '.' for clear pixels.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, p := range b.pix[y*b.width : (y+1)*b.width] {
			if p {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Image returns the bitmap as a grayscale image, black on white.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := color.Gray{Y: 0xff}
			if b.pix[y*b.width+x] {
				c.Y = 0
			}
			img.SetGray(x, y, c)
		}
	}
	return img
}
