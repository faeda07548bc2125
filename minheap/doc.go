// Package minheap provides the indexed binary min-heap behind the
// fast-marching sweep's causal ordering.
//
// What:
//
//   - Heap queues node ids keyed by absolute tentative distance.
//   - Insert / ExtractMin / DecreaseKey in O(log n), Contains in O(1).
//   - A back-pointer array maps each node id to its current slot, kept
//     consistent across every insert, swap, and removal, which is what
//     makes true in-place decrease-key possible.
//   - Validate performs a full read-only invariant check for test builds.
//
// Why not container/heap:
//
//   - The stdlib interface cannot look up an element's position, so
//     lowering a queued node's key needs either heap.Fix with externally
//     tracked indices or the lazy-duplicate workaround. The sweep requires
//     each node to appear at most once with its best key, so the back
//     pointers live inside the structure where every swap maintains them.
//
// Complexity:
//
//   - Insert / ExtractMin / DecreaseKey: O(log n).
//   - Contains / Len: O(1).
//   - Validate / Reset: O(n).
//
// Errors:
//
//   - ErrBadCapacity: New with a non-positive node count.
//   - ErrNodeRange: Insert of an id outside [0, capacity).
//   - ErrDuplicateNode: Insert of an already-queued id.
//   - ErrEmptyHeap: ExtractMin on an empty heap.
//   - ErrUnknownNode: DecreaseKey of an id not queued.
//   - ErrKeyIncrease: DecreaseKey with a larger key.
//   - ErrCorrupt: Validate found a heap-order or back-pointer violation;
//     this signals an implementation defect and must halt the caller.
package minheap
