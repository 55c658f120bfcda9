// Package weightfield converts per-pixel directional edge energy into the
// static traversal-cost graph the livewire solver searches.
//
// What:
//
//   - EnergyProvider: the abstract collaborator supplying a two-component
//     energy vector (rightward, downward) per pixel.
//   - Field: two dense row-major arrays of edge weights, one entry per pixel,
//     computed once per loaded image as weight = 1/(energy + Epsilon).
//
// Why:
//
//	Weight is inversely proportional to local contrast: strong edges (high
//	energy) get low traversal cost, flat regions get high cost, so shortest
//	paths hug image edges. The +Epsilon term keeps every weight finite and
//	strictly positive even on perfectly uniform regions.
//
// Complexity:
//
//   - New: O(width*height) time and memory; accessors are O(1).
//
// A Field is bound to exactly one image: it is rebuilt in full whenever a new
// image is set and is read-only afterwards. Partial reuse across different
// images is a correctness bug, so no incremental update API exists.
//
// Errors:
//
//   - ErrNilProvider: no energy collaborator was supplied.
//   - ErrBadDimensions: width or height is not positive.
package weightfield
