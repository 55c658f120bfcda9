// Package weightfield defines the energy contract and sentinel errors for
// the edge-weight field.
package weightfield

import "errors"

// Epsilon is added to every energy component before inversion so that zero
// energy (a perfectly flat region) still yields a finite, positive weight.
const Epsilon = 1e-4

// minDimension is the smallest accepted image side length.
const minDimension = 1

// Sentinel errors for weight-field construction.
var (
	// ErrNilProvider indicates New was called without an energy collaborator.
	ErrNilProvider = errors.New("weightfield: energy provider is nil")

	// ErrBadDimensions indicates a non-positive image width or height.
	ErrBadDimensions = errors.New("weightfield: width and height must be positive")
)

// EnergyProvider supplies the per-pixel directional energy the field is built
// from. EnergyAt returns the edge strength toward the right neighbor and
// toward the bottom neighbor of pixel (x, y). Values must be nonnegative;
// their absolute scale is irrelevant, only relative magnitude matters.
//
// The provider is consulted exactly once per pixel during New and never
// retained afterwards.
type EnergyProvider interface {
	EnergyAt(x, y int) (right, down float64)
}
