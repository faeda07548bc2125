// Package minheap implements the indexed priority queue that drives the
// causally ordered fast-marching sweep: insert, extract-minimum, and
// in-place decrease-key, all in O(log n), with O(1) membership tests via a
// back-pointer array from node id to heap slot.
package minheap

import "fmt"

// New allocates a heap able to queue node ids in [0, numNodes).
// Returns ErrBadCapacity if numNodes is not positive.
// Complexity: O(numNodes) time and memory.
func New(numNodes int) (*Heap, error) {
	if numNodes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, numNodes)
	}
	h := &Heap{
		entries: make([]entry, 0, numNodes),
		slot:    make([]int, numNodes),
	}
	for i := range h.slot {
		h.slot[i] = absent
	}

	return h, nil
}

// Len returns the number of queued entries. Complexity: O(1).
func (h *Heap) Len() int { return len(h.entries) }

// Contains reports whether node id is currently queued. Complexity: O(1).
func (h *Heap) Contains(id int) bool {
	return id >= 0 && id < len(h.slot) && h.slot[id] != absent
}

// Insert queues node id with the given key.
// Returns ErrNodeRange for an id outside [0, capacity) and
// ErrDuplicateNode if the id is already queued.
// Complexity: O(log n).
func (h *Heap) Insert(id int, key float64) error {
	if id < 0 || id >= len(h.slot) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeRange, id, len(h.slot))
	}
	if h.slot[id] != absent {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	h.entries = append(h.entries, entry{id: id, key: key})
	h.slot[id] = len(h.entries) - 1
	h.up(len(h.entries) - 1)

	return nil
}

// ExtractMin removes and returns the entry with the smallest key.
// Returns ErrEmptyHeap if nothing is queued.
// Complexity: O(log n).
func (h *Heap) ExtractMin() (id int, key float64, err error) {
	if len(h.entries) == 0 {
		return 0, 0, ErrEmptyHeap
	}
	top := h.entries[0]
	last := len(h.entries) - 1
	h.swap(0, last)
	h.entries = h.entries[:last]
	h.slot[top.id] = absent
	if last > 0 {
		h.down(0)
	}

	return top.id, top.key, nil
}

// DecreaseKey lowers the key of a queued node and repositions it upward.
// Returns ErrUnknownNode if the id is not queued and ErrKeyIncrease if the
// new key exceeds the current one (equal keys are accepted).
// Complexity: O(log n).
func (h *Heap) DecreaseKey(id int, key float64) error {
	if !h.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	i := h.slot[id]
	if key > h.entries[i].key {
		return fmt.Errorf("%w: node %d, %g > %g", ErrKeyIncrease, id, key, h.entries[i].key)
	}
	h.entries[i].key = key
	h.up(i)

	return nil
}

// Reset empties the heap for reuse on the same node range.
// Complexity: O(capacity).
func (h *Heap) Reset() {
	h.entries = h.entries[:0]
	for i := range h.slot {
		h.slot[i] = absent
	}
}

// Validate walks the whole structure verifying the min-heap property and
// back-pointer consistency. It never mutates state and is intended for
// test/validation runs only; production sweeps do not need it.
// Returns a wrapped ErrCorrupt describing the first violation found.
// Complexity: O(n).
func (h *Heap) Validate() error {
	n := len(h.entries)
	for i := 0; i < n; i++ {
		e := h.entries[i]
		if e.id < 0 || e.id >= len(h.slot) {
			return fmt.Errorf("%w: slot %d holds out-of-range id %d", ErrCorrupt, i, e.id)
		}
		if h.slot[e.id] != i {
			return fmt.Errorf("%w: back-pointer of node %d is %d, want %d", ErrCorrupt, e.id, h.slot[e.id], i)
		}
		for _, child := range [2]int{2*i + 1, 2*i + 2} {
			if child < n && h.entries[child].key < e.key {
				return fmt.Errorf("%w: key(%d)=%g below parent key(%d)=%g",
					ErrCorrupt, child, h.entries[child].key, i, e.key)
			}
		}
	}
	queued := 0
	for _, s := range h.slot {
		if s != absent {
			queued++
		}
	}
	if queued != n {
		return fmt.Errorf("%w: %d live back-pointers for %d entries", ErrCorrupt, queued, n)
	}

	return nil
}

// swap exchanges slots i and j, keeping the back-pointer array consistent.
func (h *Heap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slot[h.entries[i].id] = i
	h.slot[h.entries[j].id] = j
}

// up restores heap order by sifting slot i toward the root.
func (h *Heap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].key <= h.entries[i].key {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down restores heap order by sifting slot i toward the leaves.
func (h *Heap) down(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		least := i
		if left < n && h.entries[left].key < h.entries[least].key {
			least = left
		}
		if right < n && h.entries[right].key < h.entries[least].key {
			least = right
		}
		if least == i {
			return
		}
		h.swap(i, least)
		i = least
	}
}
