package minheap

import "errors"

// ErrEmptyQueue indicates ExtractMin was called on an empty heap.
var ErrEmptyQueue = errors.New("minheap: extract from empty queue")

// entry is a single heap element: an integer node id and its priority.
type entry struct {
	node     int
	priority float64
}

// Heap is a binary min-heap of (node, priority) entries ordered by ascending
// priority. The zero value is ready to use. Not safe for concurrent use.
type Heap struct {
	items []entry
}

// New returns an empty heap.
func New() *Heap {
	return &Heap{}
}

// Len returns the number of entries currently held, including stale ones.
func (h *Heap) Len() int { return len(h.items) }

// Clear logically empties the heap in O(1). The backing storage is retained
// so subsequent inserts reuse it instead of reallocating.
func (h *Heap) Clear() { h.items = h.items[:0] }

// Insert adds node with the given priority.
// Duplicate inserts of the same node are allowed; older entries become stale
// and are skipped by the caller on extraction.
// Complexity: O(log n).
func (h *Heap) Insert(node int, priority float64) {
	h.items = append(h.items, entry{node: node, priority: priority})
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes and returns the entry with the smallest priority.
// Fails with ErrEmptyQueue when the heap is empty.
// Complexity: O(log n).
func (h *Heap) ExtractMin() (node int, priority float64, err error) {
	if len(h.items) == 0 {
		return 0, 0, ErrEmptyQueue
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top.node, top.priority, nil
}

// siftUp restores the heap invariant after appending at index i.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].priority <= h.items[i].priority {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// siftDown restores the heap invariant after replacing the root at index i.
func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.items[right].priority < h.items[left].priority {
			smallest = right
		}
		if h.items[i].priority <= h.items[smallest].priority {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
