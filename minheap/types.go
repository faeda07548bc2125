// Package minheap defines the types and sentinel errors for the indexed
// binary min-heap used by the fast-marching sweep.
package minheap

import "errors"

// Sentinel errors for heap operations.
var (
	// ErrBadCapacity indicates New received a non-positive node count.
	ErrBadCapacity = errors.New("minheap: node capacity must be positive")
	// ErrNodeRange indicates a node id outside [0, capacity).
	ErrNodeRange = errors.New("minheap: node id out of range")
	// ErrDuplicateNode indicates Insert of a node already in the heap.
	ErrDuplicateNode = errors.New("minheap: node already queued")
	// ErrUnknownNode indicates DecreaseKey of a node not in the heap.
	ErrUnknownNode = errors.New("minheap: node not queued")
	// ErrEmptyHeap indicates ExtractMin on an empty heap.
	ErrEmptyHeap = errors.New("minheap: heap is empty")
	// ErrKeyIncrease indicates DecreaseKey with a key above the current one.
	ErrKeyIncrease = errors.New("minheap: new key exceeds current key")
	// ErrCorrupt indicates a Validate pass found a heap-order or
	// back-pointer violation. This is an implementation defect, not a data
	// problem; callers must abort rather than continue.
	ErrCorrupt = errors.New("minheap: invariant violated")
)

// absent marks a node id with no slot in the heap.
const absent = -1

// entry pairs a node id with its ordering key.
type entry struct {
	id  int
	key float64
}

// Heap is an indexed binary min-heap over node ids [0, capacity), keyed by
// float64. A back-pointer array maps node id → slot, giving O(1) Contains
// and true in-place DecreaseKey. One consumer per Heap; not safe for
// concurrent use.
type Heap struct {
	entries []entry
	slot    []int // node id → index into entries, absent when not queued
}
