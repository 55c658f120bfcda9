package weightfield

import (
	"fmt"

	"github.com/katalvlaran/livewire/grid"
)

// Field holds the precomputed traversal costs of the 4-connected pixel graph.
// right[idx] is the cost of the edge between pixel idx and its right
// neighbor; down[idx] the cost toward its bottom neighbor (row-major
// idx = y*width + x). Both arrays always have length width*height.
//
// A Field is immutable once built and safe to share across solves.
type Field struct {
	width, height int
	right, down   []float64
}

// New builds the weight field for a width x height image by sampling p at
// every pixel and inverting each energy component: weight = 1/(energy+Epsilon).
//
// Returns ErrNilProvider or ErrBadDimensions before any allocation; there is
// no other failure path.
// Complexity: O(width*height) time and memory.
func New(p EnergyProvider, width, height int) (*Field, error) {
	// 1) Validate inputs before allocating anything.
	if p == nil {
		return nil, ErrNilProvider
	}
	if width < minDimension || height < minDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}

	// 2) Allocate both dense arrays in full; the field never grows or shrinks.
	n := width * height
	f := &Field{
		width:  width,
		height: height,
		right:  make([]float64, n),
		down:   make([]float64, n),
	}

	// 3) Sample the provider once per pixel in row-major order.
	var idx int
	var eRight, eDown float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx = grid.Index(x, y, width)
			eRight, eDown = p.EnergyAt(x, y)
			f.right[idx] = 1 / (eRight + Epsilon)
			f.down[idx] = 1 / (eDown + Epsilon)
		}
	}

	return f, nil
}

// Width returns the bound image width in pixels.
func (f *Field) Width() int { return f.width }

// Height returns the bound image height in pixels.
func (f *Field) Height() int { return f.height }

// Len returns the number of pixels (width*height).
func (f *Field) Len() int { return len(f.right) }

// Right returns the traversal cost between pixel idx and its right neighbor.
// idx must be a valid row-major pixel index.
func (f *Field) Right(idx int) float64 { return f.right[idx] }

// Down returns the traversal cost between pixel idx and its bottom neighbor.
// idx must be a valid row-major pixel index.
func (f *Field) Down(idx int) float64 { return f.down[idx] }
