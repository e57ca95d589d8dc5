package bitmap

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/stitch"
)

// DefaultScale is the PNG pixel size used when no scale is given.
const DefaultScale = 4

// MaxScale bounds the PNG pixel size.
const MaxScale = 64

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale  int
	invert bool
}

// WithScale sets the number of output pixels per bitmap pixel along each axis.
func WithScale(s int) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithInvert draws set pixels white on black.
func WithInvert() PNGOption {
	return func(r *pngRenderer) { r.invert = true }
}

// RenderText returns the bitmap as '#'/'.' lines ending in a newline.
func RenderText(b *stitch.Bitmap) []byte {
	return []byte(b.String() + "\n")
}

// RenderPNG encodes the bitmap as PNG.
func RenderPNG(b *stitch.Bitmap, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale < 1 || r.scale > MaxScale {
		return nil, tserr.New(tserr.ErrCodeInvalidInput, "scale must be between 1 and %d, got %d", MaxScale, r.scale)
	}
	if b.Width() == 0 || b.Height() == 0 {
		return nil, tserr.New(tserr.ErrCodeInvalidInput, "empty bitmap")
	}

	img := b.Image()
	if r.invert {
		for i, v := range img.Pix {
			img.Pix[i] = 0xff - v
		}
	}
	scaled := imaging.Resize(img, b.Width()*r.scale, b.Height()*r.scale, imaging.NearestNeighbor)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, scaled, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
