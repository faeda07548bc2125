// Package eikonal is the fast-marching numerical core of a level-set
// shape/topology-optimization pipeline: it reinitializes an implicit
// interface (a signed-distance field on a fixed rectangular grid) by
// solving the Eikonal equation |∇T| = 1/F in a single causally ordered
// sweep, and extends companion scalar fields off the interface by solving
// ∇f·∇T = 0 simultaneously.
//
// 🚀 What is eikonal?
//
//	A small, focused library built from three packages:
//		• grid/    — rectangular lattice topology: index↔coordinate mapping,
//		  4-neighbour adjacency with an explicit off-grid sentinel, masking
//		• minheap/ — indexed binary min-heap with back pointers: insert,
//		  extract-min, and true in-place decrease-key in O(log n)
//		• fmm/     — the fast-marching engine: March (reinitialization)
//		  and Extend (reinitialization + field extension)
//
// ✨ Why choose eikonal?
//
//   - Single-pass – causal ordering finalizes each node exactly once,
//     O(N log N) instead of iterative relaxation
//   - Predictable – strictly sequential, synchronous, no hidden goroutines
//   - In-place – writes into caller-owned arrays, snapshots only what it
//     needs for sign/seed reference
//   - Pure Go – no cgo; testify is the only (test-time) dependency
//
// Quick sketch of a march:
//
//	g, _ := grid.New(128, 128)
//	m, _ := fmm.New(g)
//	_ = m.March(signedDistance)           // reinitialise
//	_ = m.Extend(signedDistance, speed)   // ...or extend a velocity too
//
// Boundary discretization, sensitivity analysis, and the optimizer that
// produce/consume these arrays are deliberately out of scope; this module
// is the marching engine and its queue substrate only.
package eikonal
