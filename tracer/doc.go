// Package tracer assembles the multi-anchor selection a user traces around
// an object: it owns the sequence of explicitly clicked anchors, drives the
// windowed solver to materialize path segments between them, and closes the
// confirmed segments into a polygon.
//
// State machine:
//
//	Empty --AddAnchor--> Open --AddAnchor--> Open --CloseSelection--> Closed
//
// Closed is terminal: further anchor additions and closes are silent no-ops,
// and only a Closed selection can be flattened into a polygon. Clear returns
// to Empty from any state.
//
// Stepped commit:
//
//	A click target can lie farther away than a single window reaches from the
//	current anchor. Committing therefore loops: solve, append the returned
//	segment, and when the effective (window-clamped) point falls short of the
//	true target, promote it to be the new anchor and solve again. The window
//	walks toward the target in window-sized hops while the appended segments
//	form one continuous, energy-following path. A fixed step bound
//	(MaxCommitSteps) converts pathological geometry into silent truncation
//	rather than a hang.
//
// Confirmed segments are immutable once appended and are stored in
// anchor-to-target order, so consecutive segments are endpoint-contiguous.
//
// Like the solver it drives, a Tracer is single-threaded and not safe for
// concurrent use.
package tracer
