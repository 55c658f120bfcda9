package solver

import (
	"math"

	"github.com/katalvlaran/livewire/grid"
)

// solve runs single-source Dijkstra from the anchor over the current window,
// filling dist and parent for every window-local node. It always runs to heap
// exhaustion: the resulting tree must answer path queries for any point the
// cursor later lands on inside the window without re-solving.
//
// Complexity: O(windowArea log windowArea) time, O(windowArea) memory
// (amortized zero allocation once the buffers reached their high-water mark).
func (s *Solver) solve() {
	// 1) Size the tree buffers to the window, growing but never shrinking.
	area := s.win.Area()
	if cap(s.dist) < area {
		s.dist = make([]float64, area)
		s.parent = make([]int32, area)
	} else {
		s.dist = s.dist[:area]
		s.parent = s.parent[:area]
	}
	for i := range s.dist {
		s.dist[i] = math.Inf(1)
		s.parent[i] = parentNone
	}

	// 2) Seed the search with the anchor at distance zero.
	src := s.win.LocalIndex(s.anchor.X, s.anchor.Y)
	s.dist[src] = 0
	s.pq.Clear()
	s.pq.Insert(src, 0)

	// 3) Main loop: extract the closest unsettled node, skip stale entries,
	//    relax its in-window 4-neighborhood. Len guards the extract, so the
	//    empty-queue failure cannot occur here.
	for s.pq.Len() > 0 {
		u, d, _ := s.pq.ExtractMin()
		if d > s.dist[u] {
			continue // stale lazy-deletion entry, superseded by a re-insert
		}
		s.relax(u, d)
	}
}

// relax attempts to improve the distance of every in-window neighbor of local
// node u, whose distance du is final. Edge costs come from the global weight
// field through the window's local-to-global mapping: the edge between a
// pixel and its right neighbor is Right(idx) of the left pixel, the edge to
// its bottom neighbor is Down(idx) of the upper pixel, whichever direction it
// is traversed in.
func (s *Solver) relax(u int, du float64) {
	g := s.win.GlobalAt(u)
	gw := s.field.Width()

	// Right neighbor (u+1).
	if g.X+1 <= s.win.MaxX() {
		s.relaxEdge(u, u+1, du, s.field.Right(grid.Index(g.X, g.Y, gw)))
	}
	// Left neighbor (u-1): same physical edge, keyed by the left pixel.
	if g.X-1 >= s.win.MinX {
		s.relaxEdge(u, u-1, du, s.field.Right(grid.Index(g.X-1, g.Y, gw)))
	}
	// Bottom neighbor (u+Width).
	if g.Y+1 <= s.win.MaxY() {
		s.relaxEdge(u, u+s.win.Width, du, s.field.Down(grid.Index(g.X, g.Y, gw)))
	}
	// Top neighbor (u-Width): keyed by the upper pixel.
	if g.Y-1 >= s.win.MinY {
		s.relaxEdge(u, u-s.win.Width, du, s.field.Down(grid.Index(g.X, g.Y-1, gw)))
	}
}

// relaxEdge applies one relaxation step u→v with edge weight w. Only strict
// improvements are recorded and re-inserted, so equal-distance ties never
// spawn duplicate heap entries.
func (s *Solver) relaxEdge(u, v int, du, w float64) {
	nd := du + w
	if nd >= s.dist[v] {
		return
	}
	s.dist[v] = nd
	s.parent[v] = int32(u)
	s.pq.Insert(v, nd)
}
