// SPDX-License-Identifier: MIT
// Package: livewire/tracer
//
// tracer.go — the multi-anchor assembler: anchors, stepped commit, polygon.

package tracer

import (
	"fmt"

	"github.com/katalvlaran/livewire/grid"
	"github.com/katalvlaran/livewire/solver"
)

// Tracer is the multi-anchor path assembler. It records user clicks as
// anchors, turns the spans between them into confirmed path segments via the
// solver, and flattens a closed selection into a polygon.
type Tracer struct {
	solver   *solver.Solver
	state    State
	anchors  []grid.Point
	segments [][]grid.Point
}

// New returns an empty Tracer driving the given solver. The solver must
// already have an image bound before anchors are added.
func New(s *solver.Solver) *Tracer {
	return &Tracer{solver: s}
}

// State returns the current lifecycle state.
func (t *Tracer) State() State { return t.state }

// Anchors returns a copy of the explicitly placed anchor points, in click
// order. Anchors promoted internally by the stepped commit are not included.
func (t *Tracer) Anchors() []grid.Point {
	out := make([]grid.Point, len(t.anchors))
	copy(out, t.anchors)

	return out
}

// Segments returns a copy of the confirmed path segments, in commit order.
// Each segment runs anchor-to-target and holds at least two points.
func (t *Tracer) Segments() [][]grid.Point {
	out := make([][]grid.Point, len(t.segments))
	for i, seg := range t.segments {
		out[i] = make([]grid.Point, len(seg))
		copy(out[i], seg)
	}

	return out
}

// AddAnchor places the next explicit anchor at (x, y).
//
// In Empty it records the first anchor and opens the selection. In Open it
// first commits the path from the previous anchor toward (x, y) (stepped
// commit), then records (x, y) as the new anchor. In Closed it is a silent
// no-op: a closed selection accepts no more anchors.
//
// Solver precondition failures (ErrImageNotSet, ErrOutOfBounds) are returned
// to the caller and leave the selection unchanged.
func (t *Tracer) AddAnchor(x, y int) error {
	switch t.state {
	case StateClosed:
		return nil

	case StateEmpty:
		if err := t.solver.SetAnchor(x, y); err != nil {
			return fmt.Errorf("tracer: add first anchor: %w", err)
		}
		t.anchors = append(t.anchors, grid.Point{X: x, Y: y})
		t.state = StateOpen

		return nil

	default: // StateOpen
		// Validate before committing so a bad click cannot leave behind
		// half-walked segments.
		if !t.solver.InBounds(x, y) {
			return fmt.Errorf("tracer: add anchor (%d,%d): %w", x, y, solver.ErrOutOfBounds)
		}
		t.commitToward(x, y)
		if err := t.solver.SetAnchor(x, y); err != nil {
			return fmt.Errorf("tracer: add anchor: %w", err)
		}
		t.anchors = append(t.anchors, grid.Point{X: x, Y: y})

		return nil
	}
}

// CloseSelection commits the closing segment back to the first anchor and
// seals the selection. It requires an Open selection with at least two
// explicit anchors and is a silent no-op otherwise.
func (t *Tracer) CloseSelection() {
	if t.state != StateOpen || len(t.anchors) < minAnchorsToClose {
		return
	}
	first := t.anchors[0]
	t.commitToward(first.X, first.Y)
	t.state = StateClosed
}

// UpdateCursor drives the live preview: while the selection is open and has
// an anchor it forwards to the solver, recentering the window and returning
// the effective (possibly clamped) point the preview path should end at.
// Otherwise the input point is returned unchanged.
func (t *Tracer) UpdateCursor(x, y int) grid.Point {
	if t.state != StateOpen || len(t.anchors) == 0 {
		return grid.Point{X: x, Y: y}
	}
	effective, err := t.solver.PrepareForTarget(x, y)
	if err != nil {
		return grid.Point{X: x, Y: y}
	}

	return effective
}

// ClosedPolygon flattens a Closed selection into an ordered point list,
// dropping consecutive duplicates at segment joints and the final repeat of
// the starting point. Returns (nil, false) when the selection is not closed
// or fewer than minPolygonPoints distinct points remain (degenerate polygon).
func (t *Tracer) ClosedPolygon() ([]grid.Point, bool) {
	if t.state != StateClosed {
		return nil, false
	}

	var poly []grid.Point
	for _, seg := range t.segments {
		for _, p := range seg {
			if len(poly) > 0 && poly[len(poly)-1] == p {
				continue // segments are endpoint-contiguous; collapse the joint
			}
			poly = append(poly, p)
		}
	}
	// The closing segment ends where the polygon started.
	if len(poly) > 1 && poly[0] == poly[len(poly)-1] {
		poly = poly[:len(poly)-1]
	}
	if len(poly) < minPolygonPoints {
		return nil, false
	}

	return poly, true
}

// Clear resets the selection to Empty, discarding all anchors and confirmed
// segments, and clears the solver's anchor. The solver keeps its image.
func (t *Tracer) Clear() {
	t.state = StateEmpty
	t.anchors = nil
	t.segments = nil
	t.solver.ClearAnchor()
}

// commitToward materializes the path from the current solver anchor to the
// target, hopping the window across long distances: each iteration commits
// the in-window segment and, when the effective point fell short of the
// target, promotes it to be the next anchor. Bounded by MaxCommitSteps;
// hitting the bound truncates the walk silently.
func (t *Tracer) commitToward(targetX, targetY int) {
	for step := 0; step < MaxCommitSteps; step++ {
		points, effective := t.solver.PathToAnchor(targetX, targetY)
		if len(points) < minSegmentPoints {
			return // nothing to commit
		}

		// Reverse target→anchor into anchor→target order before appending.
		seg := make([]grid.Point, len(points))
		for i, p := range points {
			seg[len(points)-1-i] = p
		}
		t.segments = append(t.segments, seg)

		if effective.X == targetX && effective.Y == targetY {
			return // the window reached the true target
		}

		// Walk the window forward: the clamped point becomes the new source.
		if err := t.solver.SetAnchor(effective.X, effective.Y); err != nil {
			return
		}
	}
}
