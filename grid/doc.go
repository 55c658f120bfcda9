// Package grid defines the small coordinate vocabulary shared by the
// livewire engine: pixel points, row-major index conversions, and the
// Window value type describing the bounded sub-rectangle the solver
// operates on.
//
// What:
//
//   - Point: an integer pixel coordinate (origin top-left, X = column, Y = row).
//   - Index / Coordinate: pure row-major conversions between (x, y) and a
//     flat array index.
//   - Window: an axis-aligned sub-rectangle of the image grid, carrying its
//     own local index space plus the mapping to and from global coordinates.
//
// Why:
//
//	The solver runs Dijkstra over a window-local node space (small, dense,
//	reusable buffers) while edge weights live in global image space. Keeping
//	both coordinate systems as two pure conversion functions on a value type
//	avoids any cache layer or polymorphism: there is exactly one concrete
//	graph shape, the 4-connected rectangular grid.
//
// Complexity:
//
//   - All operations are O(1) pure arithmetic with no allocation.
//
// Windows are replaced, never mutated: equality is plain value comparison,
// which is how the solver detects that recentering actually changed bounds.
package grid
