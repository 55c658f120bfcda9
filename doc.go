// Package livewire is an interactive boundary-tracing ("intelligent
// scissors") engine: drop anchor points near an object's edge and the
// engine snaps the path between them to the strongest nearby image edge,
// in real time, using a fixed-size working set no matter how large the
// image is.
//
// 🚀 What is livewire?
//
//	A small, focused library built from four pieces:
//		• weightfield — converts per-pixel directional energy into the static
//		  traversal-cost graph (weight = 1/(energy+ε))
//		• minheap     — a reusable, lazy-deletion indexed priority queue
//		• solver      — the windowed single-source Dijkstra engine that
//		  re-centers a bounded window around the moving cursor
//		• tracer      — the multi-anchor assembler that stitches per-window
//		  solutions into confirmed segments and closes them into a polygon
//
// ✨ Why windowed?
//
//   - Bounded latency – each solve costs O(windowArea log windowArea),
//     independent of image size: one interactive frame, every frame
//   - Fixed memory – distance/parent/heap buffers grow to the window's
//     high-water mark once and are reused forever after
//   - Honest clamping – targets beyond the window are projected onto its
//     edge; the assembler walks the window across long spans in hops
//
// Supporting packages:
//
//	grid/   — points, row-major index math, and the Window value type
//	energy/ — reference energy providers (luminance gradient, uniform)
//
// Quick sketch (anchor A, cursor C, window W):
//
//	+--------------------+
//	|        image       |
//	|   +—————W—————+    |
//	|   | A~~~~~~~~e|....C
//	|   +———————————+    |
//	+--------------------+
//
// The cursor C is outside W, so the path query runs to the clamped point e;
// click-committing promotes e to the next anchor and W slides toward C.
package livewire
