// Package grid supplies the fixed rectangular lattice topology that the
// fast-marching engine sweeps over.
//
// What:
//
//   - Grid wraps a Width×Height node lattice with uniform unit spacing.
//   - Row-major Index/Coordinate mapping between node ids and (x,y).
//   - 4-neighbour adjacency via Neighbour(id, Direction) with the explicit
//     NoNeighbour sentinel at domain edges.
//   - Per-node mask flags (Mask / IsMasked) to carve regions a sweep must
//     never touch, plus WithPinnedBorder for fixed-boundary pinning.
//
// Why:
//
//   - Level-set reinitialization: the marching engine queries adjacency on
//     demand instead of duplicating topology per node.
//   - Domain carving: masked nodes are skipped as neighbours and never
//     enqueued, so callers can pin boundaries or exclude holes.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - Neighbour:  O(1), no allocation.
//   - Index/Coordinate/InBounds/IsMasked: O(1).
//   - Mask:       O(len(ids)).
//
// Concurrency:
//
//   - Topology is immutable after New. Mask mutates the flag array, so
//     finish all masking before sharing a Grid across readers; after that
//     concurrent reads are safe.
//
// Errors:
//
//   - ErrBadDimensions: width or height below 2.
//   - ErrNodeRange: Mask received a node id outside [0, NumNodes).
package grid
