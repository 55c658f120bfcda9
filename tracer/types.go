// SPDX-License-Identifier: MIT
// Package: livewire/tracer
//
// types.go — selection lifecycle states and assembler constants.

package tracer

// State identifies where a selection is in its lifecycle.
type State int

const (
	// StateEmpty: no anchor placed yet.
	StateEmpty State = iota

	// StateOpen: at least one anchor placed, still accepting anchors.
	StateOpen

	// StateClosed: the selection was closed; terminal.
	StateClosed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateOpen:
		return "Open"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

const (
	// MaxCommitSteps bounds the stepped-commit walk; reaching it truncates
	// the segment silently instead of hanging on pathological geometry.
	MaxCommitSteps = 2048

	// minSegmentPoints is the smallest committable segment: one edge.
	minSegmentPoints = 2

	// minAnchorsToClose is the anchor count required before closing.
	minAnchorsToClose = 2

	// minPolygonPoints is the smallest non-degenerate polygon.
	minPolygonPoints = 3
)
