// Package solver implements the windowed single-source shortest-path engine
// at the heart of livewire boundary tracing.
//
// What:
//
//   - Solver binds a static weightfield.Field (the graph), one anchor point
//     (the Dijkstra source) and a bounded rectangular window of the grid.
//   - PrepareForTarget recenters the window around a moving cursor target
//     while keeping the anchor inside, and re-solves Dijkstra over the window
//     only when the window or the anchor actually changed.
//   - PathToAnchor walks the resulting shortest-path tree from an effective
//     (window-clamped) target back to the anchor.
//
// Why a window:
//
//	Re-solving the whole image on every mouse movement is hopeless for large
//	images. Confining Dijkstra to a window of configurable side length keeps
//	each solve within an interactive frame budget using a fixed-size working
//	set: O(windowArea log windowArea) per solve, independent of image size.
//	The price is that a target outside the window is clamped to its edge;
//	callers must use the returned effective point for path queries.
//
// Window placement rules:
//
//	The window is centered on the target, clamped to the grid, then shifted
//	so the anchor is forced inside. Anchor containment takes precedence over
//	target containment: when both cannot fit, the target is the one that ends
//	up clamped, never the anchor. Whenever a tree is valid the anchor lies
//	inside the current window.
//
// The search relaxes the window-local 4-neighborhood only; edges crossing the
// window boundary are never traversed. It runs to heap exhaustion rather than
// early-exiting on a particular target, because the same tree must answer
// path queries for any point the cursor later lands on inside the window.
//
// Errors:
//
//   - ErrNilField: SetImage called with a nil weight field.
//   - ErrImageNotSet: an operation requiring a bound field before one exists.
//   - ErrOutOfBounds: a coordinate outside the current grid.
//   - ErrNoAnchor: a window/tree query before any anchor was placed.
//
// Path queries degrade gracefully to an empty result instead of failing:
// "no path yet" is a normal interactive state.
//
// Not safe for concurrent use: a Solver is owned by a single (UI) thread and
// all operations run to completion before returning.
package solver
