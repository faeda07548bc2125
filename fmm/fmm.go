// Package fmm implements the fast marching method for boundary value
// problems of the Eikonal equation
//
//	F(x) |∇T(x)| = 1
//
// on a fixed rectangular grid. It reinitializes a signed-distance field to
// true distance-from-interface, and can simultaneously extend a companion
// scalar field (for example an interface-normal velocity) off the interface
// by solving the transport equation ∇f·∇T = 0.
//
// The sweep is causally ordered: nodes are finalized in ascending absolute
// distance, each from already-finalized neighbours only, which makes a
// single O(N log N) pass sufficient.
package fmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/minheap"
)

// distanceMax is the "not yet reached" sentinel magnitude.
const distanceMax = math.MaxFloat64

// epsilon is machine epsilon for float64, used in discriminant-sign and
// degeneracy checks.
var epsilon = math.Nextafter(1, 2) - 1

// Marcher binds the fast-marching engine to one grid. A Marcher is cheap;
// all per-call state lives in a private runner allocated by each march, so
// a Marcher may be reused across calls (one per optimization iteration).
// Calls require exclusive access to the passed arrays; see package doc.
type Marcher struct {
	g     *grid.Grid
	opts  Options
	stats Stats

	// trace, when set, observes each freeze in extraction order.
	// Test hook only; never set in production use.
	trace func(id int, key float64)
}

// New constructs a Marcher over g. Returns ErrNilGrid if g is nil.
func New(g *grid.Grid, opts ...Option) (*Marcher, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Marcher{g: g, opts: cfg}, nil
}

// March reinitializes signedDistance in place to a signed distance function
// of its own zero contour. Interface-adjacent nodes keep their original
// values verbatim; every other reachable, non-masked node receives the
// fast-marching distance with the sign of its original value. Unreachable
// nodes receive a signed infinite sentinel; masked nodes are untouched.
//
// Returns ErrLengthMismatch, ErrBadSpeed, ErrNoInterface (arrays untouched
// in all three cases), or ErrHeapCorrupt under WithHeapValidation.
//
// Complexity: O(N log N) time, O(N) memory, N = grid node count.
func (m *Marcher) March(signedDistance []float64) error {
	return m.march(signedDistance, nil)
}

// Extend behaves like March and additionally extends velocity off the
// interface so that ∇f·∇T = 0 holds to first order: the moment a node's
// distance is frozen, its velocity is finalized as a gradient-weighted
// combination of already-frozen upwind neighbours. Frozen interface seeds
// keep their original velocity values, which is how the caller supplies
// boundary data.
//
// Complexity: O(N log N) time, O(N) memory.
func (m *Marcher) Extend(signedDistance, velocity []float64) error {
	if velocity == nil {
		return m.march(signedDistance, nil)
	}

	return m.march(signedDistance, velocity)
}

// LastStats returns diagnostics for the most recent march.
func (m *Marcher) LastStats() Stats {
	return m.stats
}

// march validates inputs, runs one full sweep, and stores diagnostics.
func (m *Marcher) march(signedDistance, velocity []float64) error {
	n := m.g.NumNodes()
	if len(signedDistance) != n {
		return fmt.Errorf("%w: len(signedDistance)=%d, nodes=%d", ErrLengthMismatch, len(signedDistance), n)
	}
	if velocity != nil && len(velocity) != n {
		return fmt.Errorf("%w: len(velocity)=%d, nodes=%d", ErrLengthMismatch, len(velocity), n)
	}
	if m.opts.Speed != nil {
		if len(m.opts.Speed) != n {
			return fmt.Errorf("%w: len(speed)=%d, nodes=%d", ErrBadSpeed, len(m.opts.Speed), n)
		}
		for id, f := range m.opts.Speed {
			if f <= 0 {
				return fmt.Errorf("%w: speed[%d]=%g", ErrBadSpeed, id, f)
			}
		}
	}

	heap, err := minheap.New(n)
	if err != nil {
		return err
	}
	r := &runner{
		g:        m.g,
		opts:     m.opts,
		dist:     signedDistance,
		vel:      velocity,
		distCopy: append([]float64(nil), signedDistance...),
		mag:      make([]float64, n),
		status:   make([]Status, n),
		heap:     heap,
		trace:    m.trace,
	}
	if velocity != nil {
		r.velCopy = append([]float64(nil), velocity...)
	}

	if err = r.initialiseFrozen(); err != nil {
		return err
	}
	if err = r.initialiseTrial(); err != nil {
		return err
	}
	if err = r.solve(); err != nil {
		return err
	}
	r.finish()
	m.stats = r.stats

	return nil
}

// runner holds the mutable state for a single march execution.
type runner struct {
	g    *grid.Grid
	opts Options

	dist []float64 // caller's signed-distance array, written in place
	vel  []float64 // caller's companion array, nil in pure reinitialization

	distCopy []float64 // snapshot of the original distances (sign reference)
	velCopy  []float64 // snapshot of the original velocities (seed reference)

	mag    []float64 // working unsigned tentative distances
	status []Status  // per-node sweep state
	heap   *minheap.Heap
	stats  Stats

	trace func(id int, key float64)
}

// initialiseFrozen tags masked nodes, finds the interface crossing, and
// freezes interface-adjacent nodes at their original values. A node is
// frozen when its value differs in sign from at least one grid neighbour
// (zero counts as non-negative), or when it borders a masked node and
// FreezeMaskAdjacent is set. Returns ErrNoInterface when no sign change
// exists anywhere; nothing has been written to the caller's arrays yet.
func (r *runner) initialiseFrozen() error {
	n := r.g.NumNodes()
	for id := 0; id < n; id++ {
		if r.g.IsMasked(id) {
			r.status[id] = Masked
			continue
		}
		r.mag[id] = distanceMax
	}

	crossings := 0
	for id := 0; id < n; id++ {
		if r.status[id] == Masked {
			continue
		}
		negative := r.distCopy[id] < 0
		frozen := false
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			nb := r.g.Neighbour(id, d)
			if nb == grid.NoNeighbour {
				continue
			}
			if r.status[nb] == Masked {
				if r.opts.FreezeMaskAdjacent {
					frozen = true
				}
				continue
			}
			if (r.distCopy[nb] < 0) != negative {
				frozen = true
				crossings++
			}
		}
		if frozen {
			r.status[id] = Frozen
			r.mag[id] = math.Abs(r.distCopy[id])
			r.stats.Seeds++
		}
	}
	if crossings == 0 {
		return ErrNoInterface
	}

	return nil
}

// initialiseTrial evaluates every non-frozen, non-masked neighbour of a
// frozen node once via the update rule and queues it as Trial. The None
// check guarantees no node is queued twice; evaluating on first sight is
// complete because the frozen set does not grow during initialization.
func (r *runner) initialiseTrial() error {
	n := r.g.NumNodes()
	for id := 0; id < n; id++ {
		if r.status[id] != Frozen {
			continue
		}
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			nb := r.g.Neighbour(id, d)
			if nb == grid.NoNeighbour || r.status[nb] != None {
				continue
			}
			val := r.updateNode(nb)
			if val >= distanceMax {
				continue
			}
			r.status[nb] = Trial
			r.mag[nb] = val
			if err := r.heap.Insert(nb, val); err != nil {
				return fmt.Errorf("%w: %v", ErrHeapCorrupt, err)
			}
		}
	}
	if r.opts.ValidateHeap {
		if err := r.heap.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrHeapCorrupt, err)
		}
	}

	return nil
}

// solve runs the main causal sweep: extract the minimum-keyed trial node,
// freeze it, finalize its companion value, and re-evaluate its non-frozen,
// non-masked neighbours. Frozen values are never revisited; this monotonic
// freeze is what keeps the march single-pass.
func (r *runner) solve() error {
	for r.heap.Len() > 0 {
		id, key, err := r.heap.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrHeapCorrupt, err)
		}
		r.status[id] = Frozen
		r.mag[id] = key
		r.dist[id] = math.Copysign(key, r.distCopy[id])
		r.stats.Extracted++
		if r.trace != nil {
			r.trace(id, key)
		}
		if r.vel != nil {
			r.finaliseVelocity(id)
		}

		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			nb := r.g.Neighbour(id, d)
			if nb == grid.NoNeighbour {
				continue
			}
			switch r.status[nb] {
			case Trial:
				if val := r.updateNode(nb); val < r.mag[nb] {
					r.mag[nb] = val
					if err = r.heap.DecreaseKey(nb, val); err != nil {
						return fmt.Errorf("%w: %v", ErrHeapCorrupt, err)
					}
				}
			case None:
				val := r.updateNode(nb)
				if val >= distanceMax {
					continue
				}
				r.status[nb] = Trial
				r.mag[nb] = val
				if err = r.heap.Insert(nb, val); err != nil {
					return fmt.Errorf("%w: %v", ErrHeapCorrupt, err)
				}
			}
		}

		if r.opts.ValidateHeap {
			if err = r.heap.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrHeapCorrupt, err)
			}
		}
	}

	return nil
}

// finish writes the signed infinite sentinel into unreachable nodes
// (possible only on disconnected or fully masked-off regions). Frozen
// seeds already hold their original values and masked nodes are never
// written.
func (r *runner) finish() {
	for id := range r.status {
		if r.status[id] == None {
			r.dist[id] = math.Copysign(distanceMax, r.distCopy[id])
		}
	}
}
