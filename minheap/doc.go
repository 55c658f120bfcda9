// Package minheap provides the reusable indexed priority queue driving the
// livewire solver's Dijkstra loop.
//
// What:
//
//   - Heap: a flat, array-backed binary min-heap over (node, priority) pairs,
//     ordered by ascending priority.
//   - Insert and ExtractMin in O(log n); Clear in O(1), retaining the backing
//     storage so repeated window solves do not reallocate.
//
// Why lazy deletion:
//
//	The heap deliberately supports neither decrease-key nor removal of an
//	arbitrary node. When the solver improves a node's distance it simply
//	inserts the node again with the better priority; the superseded entry
//	stays behind and is detected at extraction time by comparing the popped
//	priority against the authoritative distance array, then skipped. This
//	avoids maintaining a node-to-slot index at the cost of extra entries,
//	acceptable because the graph is bounded by the window area.
//
// Entries are plain values, not pointer nodes, so a solve produces no
// per-entry allocations once the backing array has grown to its high-water
// mark.
//
// Errors:
//
//   - ErrEmptyQueue: ExtractMin on an empty heap. Correct solver sequencing
//     never triggers it; surfacing it indicates a programming error.
package minheap
