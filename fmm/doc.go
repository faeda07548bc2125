// Package fmm provides a fast marching method for reinitializing a level-set
// signed-distance field and extending companion scalar fields off the
// interface.
//
// What:
//
//   - March(signedDistance): solve |∇T| = 1/F with a single causally
//     ordered sweep, rewriting the array in place as true signed distance
//     to its own zero contour. Interface-adjacent seeds keep their original
//     values; the interface itself never moves.
//   - Extend(signedDistance, velocity): the same sweep, simultaneously
//     propagating a companion field by ∇f·∇T = 0 so boundary data (for
//     example interface-normal velocities from a sensitivity analysis)
//     becomes defined on every reachable node.
//   - Node states per sweep: None → Trial → Frozen, with Masked nodes carved
//     out entirely (never read as neighbours, never written).
//
// Why:
//
//   - Level-set shape/topology optimization: after each boundary move the
//     distance field degrades and must be reinitialized, and per-boundary
//     velocities must be extended into the narrow band.
//   - Any front-propagation problem needing distance-from-contour on a
//     fixed rectangular grid.
//
// How (causality):
//
//   - Nodes are finalized in ascending |T| via an indexed min-heap
//     (package minheap). A node's final value depends only on neighbours
//     with strictly smaller finalized values, so one O(N log N) pass
//     replaces iterative relaxation. The per-axis upwind stencil feeds a
//     quadratic whose larger root is the causal solution; a negative
//     discriminant falls back to the single-axis rule locally, counted in
//     Stats.AxisFallbacks, and is never escalated.
//
// Concurrency:
//
//   - A march is strictly sequential and runs to completion synchronously.
//     The engine requires exclusive access to the caller's arrays for the
//     duration of the call; the grid is only read and may be shared.
//
// Errors:
//
//   - ErrNilGrid:        New received a nil grid.
//   - ErrLengthMismatch: array length differs from the grid node count.
//   - ErrBadSpeed:       speed array of wrong length or non-positive entry.
//   - ErrNoInterface:    no sign change anywhere; arrays left untouched.
//   - ErrHeapCorrupt:    heap invariant violation under WithHeapValidation;
//     an implementation defect, aborts immediately.
package fmm
