// Package solver defines configuration options and sentinel errors for the
// windowed shortest-path engine.
package solver

import "errors"

// Window sizing constants. The side length bounds the per-solve working set;
// the minimum keeps the window useful even under aggressive configuration.
const (
	// DefaultWindowSize is the window side length used when no option is given.
	DefaultWindowSize = 128

	// MinWindowSize is the smallest accepted window side length; smaller
	// requests are raised to it rather than rejected.
	MinWindowSize = 16
)

// parentNone marks a tree node without a predecessor (the anchor, or any
// node not yet reached).
const parentNone = int32(-1)

// Sentinel errors for solver operations.
var (
	// ErrNilField indicates SetImage was called with a nil weight field.
	ErrNilField = errors.New("solver: weight field is nil")

	// ErrImageNotSet indicates an operation that requires a bound weight
	// field was called before SetImage.
	ErrImageNotSet = errors.New("solver: image not set")

	// ErrOutOfBounds indicates a coordinate outside the current grid.
	ErrOutOfBounds = errors.New("solver: coordinate out of bounds")

	// ErrNoAnchor indicates a window or path query before SetAnchor; no valid
	// window state can be established without a Dijkstra source.
	ErrNoAnchor = errors.New("solver: no anchor set")
)

// Options configures a Solver.
//
// WindowSize – side length of the square solving window, in pixels.
// Values below MinWindowSize are raised to MinWindowSize.
type Options struct {
	WindowSize int
}

// Option is a functional option for configuring a Solver.
type Option func(*Options)

// WithWindowSize sets the window side length. Requests below MinWindowSize
// are raised to MinWindowSize; the window never exceeds the grid itself.
func WithWindowSize(size int) Option {
	return func(o *Options) {
		o.WindowSize = size
	}
}

// DefaultOptions returns the solver defaults: a DefaultWindowSize window.
func DefaultOptions() Options {
	return Options{WindowSize: DefaultWindowSize}
}
