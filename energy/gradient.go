package energy

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Gradient measures local contrast as absolute luminance differences toward
// the right and bottom neighbor of each pixel. The last column and row have
// zero rightward/downward energy respectively (no neighbor to differ from).
//
// Immutable after FromImage; safe to share between field rebuilds.
type Gradient struct {
	width, height int
	lum           *image.Gray
}

// FromImage converts img to 8-bit luminance and returns a Gradient over it.
// The source image is not retained. Complexity: O(width*height).
func FromImage(img image.Image) *Gradient {
	b := img.Bounds()
	lum := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	// x/image draw.Copy performs the color-model conversion for any source.
	xdraw.Copy(lum, image.Point{}, img, b, xdraw.Src, nil)

	return &Gradient{width: b.Dx(), height: b.Dy(), lum: lum}
}

// Width returns the image width in pixels.
func (g *Gradient) Width() int { return g.width }

// Height returns the image height in pixels.
func (g *Gradient) Height() int { return g.height }

// EnergyAt returns the absolute luminance difference toward the right and
// bottom neighbor of (x, y). Values are in [0, 255].
func (g *Gradient) EnergyAt(x, y int) (right, down float64) {
	c := float64(g.lum.Pix[y*g.lum.Stride+x])
	if x+1 < g.width {
		right = math.Abs(float64(g.lum.Pix[y*g.lum.Stride+x+1]) - c)
	}
	if y+1 < g.height {
		down = math.Abs(float64(g.lum.Pix[(y+1)*g.lum.Stride+x]) - c)
	}

	return right, down
}
