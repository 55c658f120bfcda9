package tracer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/livewire/grid"
	"github.com/katalvlaran/livewire/solver"
	"github.com/katalvlaran/livewire/tracer"
	"github.com/katalvlaran/livewire/weightfield"
)

// flatEnergy yields epsilon-only weights: all edges cost the same, so paths
// are monotone staircases and point counts are exactly Manhattan+1.
type flatEnergy struct{}

func (flatEnergy) EnergyAt(_, _ int) (float64, float64) { return 0, 0 }

// newTracer builds a tracer over a width x height uniform image with the
// given window size.
func newTracer(t *testing.T, width, height, window int) *tracer.Tracer {
	t.Helper()
	field, err := weightfield.New(flatEnergy{}, width, height)
	require.NoError(t, err)
	s := solver.New(solver.WithWindowSize(window))
	require.NoError(t, s.SetImage(field))

	return tracer.New(s)
}

func TestAddAnchor_RequiresImage(t *testing.T) {
	tr := tracer.New(solver.New())
	err := tr.AddAnchor(1, 1)
	require.ErrorIs(t, err, solver.ErrImageNotSet)
	assert.Equal(t, tracer.StateEmpty, tr.State())
}

func TestAddAnchor_OutOfBounds(t *testing.T) {
	tr := newTracer(t, 32, 32, 16)
	require.ErrorIs(t, tr.AddAnchor(40, 2), solver.ErrOutOfBounds)
	assert.Equal(t, tracer.StateEmpty, tr.State())

	// Same rejection while Open, without committing anything.
	require.NoError(t, tr.AddAnchor(1, 1))
	require.ErrorIs(t, tr.AddAnchor(-5, 0), solver.ErrOutOfBounds)
	assert.Equal(t, tracer.StateOpen, tr.State())
	assert.Empty(t, tr.Segments())
	assert.Len(t, tr.Anchors(), 1)
}

// TestLifecycle_EmptyOpenClosed walks the full state machine and verifies
// Closed is terminal.
func TestLifecycle_EmptyOpenClosed(t *testing.T) {
	tr := newTracer(t, 32, 32, 16)
	assert.Equal(t, tracer.StateEmpty, tr.State())

	require.NoError(t, tr.AddAnchor(2, 2))
	assert.Equal(t, tracer.StateOpen, tr.State())
	assert.Empty(t, tr.Segments(), "first anchor commits nothing")

	require.NoError(t, tr.AddAnchor(10, 2))
	assert.Equal(t, tracer.StateOpen, tr.State())
	require.Len(t, tr.Segments(), 1)

	tr.CloseSelection()
	assert.Equal(t, tracer.StateClosed, tr.State())

	// Terminal: further additions and closes change nothing.
	segments := len(tr.Segments())
	require.NoError(t, tr.AddAnchor(20, 20))
	tr.CloseSelection()
	assert.Equal(t, tracer.StateClosed, tr.State())
	assert.Len(t, tr.Segments(), segments)
	assert.Len(t, tr.Anchors(), 2)
}

func TestCloseSelection_NeedsTwoAnchors(t *testing.T) {
	tr := newTracer(t, 32, 32, 16)

	tr.CloseSelection() // Empty: no-op
	assert.Equal(t, tracer.StateEmpty, tr.State())

	require.NoError(t, tr.AddAnchor(3, 3))
	tr.CloseSelection() // one anchor: no-op
	assert.Equal(t, tracer.StateOpen, tr.State())
}

// TestSegments_EndpointContiguous commits two spans and checks each segment
// runs anchor-to-target with consecutive segments sharing an endpoint.
func TestSegments_EndpointContiguous(t *testing.T) {
	tr := newTracer(t, 64, 64, 128)
	require.NoError(t, tr.AddAnchor(5, 5))
	require.NoError(t, tr.AddAnchor(15, 5))
	require.NoError(t, tr.AddAnchor(15, 20))

	segments := tr.Segments()
	require.Len(t, segments, 2)

	assert.Equal(t, grid.Point{X: 5, Y: 5}, segments[0][0])
	assert.Equal(t, grid.Point{X: 15, Y: 5}, segments[0][len(segments[0])-1])
	assert.Len(t, segments[0], 11) // Manhattan 10 + 1

	assert.Equal(t, grid.Point{X: 15, Y: 5}, segments[1][0])
	assert.Equal(t, grid.Point{X: 15, Y: 20}, segments[1][len(segments[1])-1])
	assert.Len(t, segments[1], 16)
}

// TestSteppedCommit_WalksAcrossWindows clicks a target far beyond one
// window's reach: the commit must hop the window forward, producing several
// endpoint-contiguous segments that together span the whole distance.
func TestSteppedCommit_WalksAcrossWindows(t *testing.T) {
	tr := newTracer(t, 200, 24, 16)
	require.NoError(t, tr.AddAnchor(0, 10))
	require.NoError(t, tr.AddAnchor(180, 10))

	segments := tr.Segments()
	require.Greater(t, len(segments), 1, "a 180px span cannot fit one 16px window")

	// Continuous chain from the first anchor to the clicked target.
	assert.Equal(t, grid.Point{X: 0, Y: 10}, segments[0][0])
	last := segments[len(segments)-1]
	assert.Equal(t, grid.Point{X: 180, Y: 10}, last[len(last)-1])
	for i := 1; i < len(segments); i++ {
		prev := segments[i-1]
		assert.Equal(t, prev[len(prev)-1], segments[i][0],
			"segment %d does not start where segment %d ended", i, i-1)
	}

	// Total point count: spans sum to Manhattan distance, joints overlap.
	total := 0
	for _, seg := range segments {
		total += len(seg) - 1
	}
	assert.Equal(t, 180, total)
}

// TestUpdateCursor only forwards while Open with an anchor.
func TestUpdateCursor(t *testing.T) {
	tr := newTracer(t, 64, 64, 16)

	// Empty: input returned unchanged, even out-of-grid input.
	assert.Equal(t, grid.Point{X: 99, Y: 99}, tr.UpdateCursor(99, 99))

	require.NoError(t, tr.AddAnchor(0, 0))
	// Open: the far cursor is clamped to the window edge.
	assert.Equal(t, grid.Point{X: 15, Y: 15}, tr.UpdateCursor(63, 63))

	require.NoError(t, tr.AddAnchor(10, 10))
	tr.CloseSelection()
	// Closed: no more preview, input returned unchanged.
	assert.Equal(t, grid.Point{X: 5, Y: 5}, tr.UpdateCursor(5, 5))
}

// TestClosedPolygon_Square traces a small square and flattens it: distinct
// points, no consecutive duplicates, correct corner membership.
func TestClosedPolygon_Square(t *testing.T) {
	tr := newTracer(t, 32, 32, 128)
	require.NoError(t, tr.AddAnchor(2, 2))
	require.NoError(t, tr.AddAnchor(12, 2))
	require.NoError(t, tr.AddAnchor(12, 12))
	require.NoError(t, tr.AddAnchor(2, 12))
	tr.CloseSelection()

	poly, ok := tr.ClosedPolygon()
	require.True(t, ok)
	// Perimeter of a 10x10 square: 40 distinct points.
	assert.Len(t, poly, 40)

	for i := 1; i < len(poly); i++ {
		assert.NotEqual(t, poly[i-1], poly[i], "consecutive duplicate at %d", i)
	}
	assert.NotEqual(t, poly[0], poly[len(poly)-1], "closing point must not repeat the start")
	for _, corner := range []grid.Point{{X: 2, Y: 2}, {X: 12, Y: 2}, {X: 12, Y: 12}, {X: 2, Y: 12}} {
		assert.Contains(t, poly, corner)
	}
}

func TestClosedPolygon_NotClosed(t *testing.T) {
	tr := newTracer(t, 32, 32, 16)
	require.NoError(t, tr.AddAnchor(2, 2))
	require.NoError(t, tr.AddAnchor(10, 2))

	poly, ok := tr.ClosedPolygon()
	assert.False(t, ok)
	assert.Nil(t, poly)
}

// TestClosedPolygon_Degenerate: two coincident anchors commit no segments, so
// closing produces no polygon.
func TestClosedPolygon_Degenerate(t *testing.T) {
	tr := newTracer(t, 32, 32, 16)
	require.NoError(t, tr.AddAnchor(4, 4))
	require.NoError(t, tr.AddAnchor(4, 4)) // zero-length span: nothing committed
	tr.CloseSelection()

	require.Equal(t, tracer.StateClosed, tr.State())
	poly, ok := tr.ClosedPolygon()
	assert.False(t, ok)
	assert.Nil(t, poly)
}

// TestClear returns to Empty and allows a fresh trace on the same image.
func TestClear(t *testing.T) {
	tr := newTracer(t, 32, 32, 16)
	require.NoError(t, tr.AddAnchor(2, 2))
	require.NoError(t, tr.AddAnchor(10, 2))
	tr.CloseSelection()

	tr.Clear()
	assert.Equal(t, tracer.StateEmpty, tr.State())
	assert.Empty(t, tr.Anchors())
	assert.Empty(t, tr.Segments())

	require.NoError(t, tr.AddAnchor(1, 1))
	assert.Equal(t, tracer.StateOpen, tr.State())
}
