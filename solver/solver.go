package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/livewire/grid"
	"github.com/katalvlaran/livewire/minheap"
	"github.com/katalvlaran/livewire/weightfield"
)

// Solver is the windowed shortest-path engine. It owns the current window,
// the anchor (Dijkstra source) and the shortest-path tree for that pair, and
// rebuilds the tree only when window or anchor change.
//
// All buffers (distance, parent, heap storage) are resized on growth only and
// reused across solves to avoid allocation churn during interactive use.
// Not safe for concurrent use.
type Solver struct {
	opts Options

	field *weightfield.Field // static graph; nil until SetImage

	anchor    grid.Point // Dijkstra source, global coordinates
	anchorSet bool

	win      grid.Window // current solving window; meaningful when winValid
	winValid bool

	// Shortest-path tree for (win, anchor), window-local index space.
	dist      []float64
	parent    []int32
	treeValid bool

	pq *minheap.Heap
}

// New constructs a Solver with the given options applied over DefaultOptions.
func New(opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WindowSize < MinWindowSize {
		cfg.WindowSize = MinWindowSize
	}

	return &Solver{
		opts: cfg,
		pq:   minheap.New(),
	}
}

// WindowSize returns the configured window side length.
func (s *Solver) WindowSize() int { return s.opts.WindowSize }

// SetImage binds the static weight field the solver searches and clears any
// existing window, anchor and tree state. Fails with ErrNilField on nil.
func (s *Solver) SetImage(f *weightfield.Field) error {
	if f == nil {
		return ErrNilField
	}
	s.field = f
	s.anchorSet = false
	s.winValid = false
	s.treeValid = false

	return nil
}

// InBounds reports whether (x, y) lies inside the bound image grid.
// Always false before SetImage.
func (s *Solver) InBounds(x, y int) bool {
	return s.field != nil &&
		x >= 0 && x < s.field.Width() &&
		y >= 0 && y < s.field.Height()
}

// SetAnchor records (x, y) as the Dijkstra source and invalidates the current
// window and tree: any existing tree answers paths for the old anchor only.
//
// Fails with ErrImageNotSet before SetImage and ErrOutOfBounds for
// coordinates outside the grid; both leave solver state untouched.
func (s *Solver) SetAnchor(x, y int) error {
	if s.field == nil {
		return ErrImageNotSet
	}
	if !s.InBounds(x, y) {
		return fmt.Errorf("%w: anchor (%d,%d) outside %dx%d grid",
			ErrOutOfBounds, x, y, s.field.Width(), s.field.Height())
	}

	s.anchor = grid.Point{X: x, Y: y}
	s.anchorSet = true
	s.winValid = false
	s.treeValid = false

	return nil
}

// Anchor returns the current anchor and whether one is set.
func (s *Solver) Anchor() (grid.Point, bool) {
	return s.anchor, s.anchorSet
}

// Window returns the current solving window and whether one is established.
func (s *Solver) Window() (grid.Window, bool) {
	return s.win, s.winValid
}

// ClearAnchor resets anchor, window and tree state. The bound weight field is
// kept: the next SetAnchor starts a fresh trace on the same image.
func (s *Solver) ClearAnchor() {
	s.anchorSet = false
	s.winValid = false
	s.treeValid = false
}

// PrepareForTarget is the central per-cursor-move operation. It
//
//  1. keeps the existing window when it still contains both anchor and
//     target, otherwise recenters a new window on the target and shifts it so
//     the anchor stays inside (anchor containment wins over target
//     containment);
//  2. invalidates the tree only when the window bounds actually changed;
//  3. clamps the target into the window, producing the effective point;
//  4. runs windowed Dijkstra when no valid tree exists for the current
//     window/anchor pair.
//
// The returned effective point equals the input when the target was already
// inside the window, otherwise its projection onto the nearest window edge.
// Callers must use it instead of the raw cursor position for path queries.
//
// Calling PrepareForTarget twice with the same target and no intervening
// anchor change yields the same effective point without re-running Dijkstra.
func (s *Solver) PrepareForTarget(x, y int) (grid.Point, error) {
	if s.field == nil {
		return grid.Point{}, ErrImageNotSet
	}
	if !s.anchorSet {
		return grid.Point{}, ErrNoAnchor
	}

	// 1) Pull the raw target into the grid; far-away cursor positions are a
	//    normal input, not an error.
	tx := grid.Clamp(x, 0, s.field.Width()-1)
	ty := grid.Clamp(y, 0, s.field.Height()-1)

	// 2) Reuse the window only when it holds both anchor and target.
	if !s.winValid || !s.win.Contains(s.anchor.X, s.anchor.Y) || !s.win.Contains(tx, ty) {
		next := s.windowFor(tx, ty)
		if !s.winValid || next != s.win {
			s.win = next
			s.winValid = true
			s.treeValid = false
		}
	}

	// 3) The effective target: identical to the request inside the window,
	//    otherwise projected onto the nearest window edge.
	effective := s.win.ClampPoint(tx, ty)

	// 4) Solve only when the tree does not match the current window/anchor.
	if !s.treeValid {
		s.solve()
		s.treeValid = true
	}

	return effective, nil
}

// PathToAnchor prepares for (x, y) and backtracks the shortest-path tree from
// the effective point to the anchor, emitting global coordinates in
// target-to-anchor order (first point = effective target, last = anchor).
//
// Degrades gracefully: returns an empty sequence when the image or anchor is
// unset or the target cannot be resolved inside a valid window, since "no
// path yet" is a normal interactive state.
func (s *Solver) PathToAnchor(x, y int) (points []grid.Point, effective grid.Point) {
	effective, err := s.PrepareForTarget(x, y)
	if err != nil {
		return nil, grid.Point{X: x, Y: y}
	}

	local := s.win.LocalIndex(effective.X, effective.Y)
	if math.IsInf(s.dist[local], 1) {
		// Unreachable inside the window; cannot happen on a 4-connected grid
		// with finite weights, kept as a defensive empty result.
		return nil, effective
	}

	points = make([]grid.Point, 0, s.win.Width+s.win.Height)
	v := local
	for {
		points = append(points, s.win.GlobalAt(v))
		p := s.parent[v]
		if p == parentNone {
			break
		}
		v = int(p)
	}

	return points, effective
}

// windowFor computes window bounds for the given in-grid target: centered on
// the target, clamped to the grid, then shifted so the anchor is inside.
// Pure rectangle arithmetic; no solver state is touched.
func (s *Solver) windowFor(tx, ty int) grid.Window {
	gw, gh := s.field.Width(), s.field.Height()
	ww := min(s.opts.WindowSize, gw)
	wh := min(s.opts.WindowSize, gh)

	// Center on the target, clamped so the window stays inside the grid.
	minX := grid.Clamp(tx-ww/2, 0, gw-ww)
	minY := grid.Clamp(ty-wh/2, 0, gh-wh)

	// Force anchor containment; the anchor is in-grid, so the shifted window
	// stays in-grid as well. The target may end up clamped, never the anchor.
	if s.anchor.X < minX {
		minX = s.anchor.X
	} else if s.anchor.X > minX+ww-1 {
		minX = s.anchor.X - ww + 1
	}
	if s.anchor.Y < minY {
		minY = s.anchor.Y
	} else if s.anchor.Y > minY+wh-1 {
		minY = s.anchor.Y - wh + 1
	}

	return grid.Window{MinX: minX, MinY: minY, Width: ww, Height: wh}
}
