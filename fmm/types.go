// Package fmm defines the node-status model, configuration options, and
// sentinel errors for the fast-marching engine.
package fmm

import "errors"

// Sentinel errors returned by March and Extend.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("fmm: grid is nil")

	// ErrLengthMismatch indicates an input array whose length differs from
	// the grid's node count.
	ErrLengthMismatch = errors.New("fmm: array length does not match grid node count")

	// ErrBadSpeed indicates a speed array of wrong length or with a
	// non-positive entry; the Eikonal right-hand side 1/F needs F > 0.
	ErrBadSpeed = errors.New("fmm: speed must be positive at every node")

	// ErrNoInterface indicates the signed-distance array has no sign change
	// anywhere, so no seed can be frozen and the march cannot start. The
	// caller's arrays are left untouched.
	ErrNoInterface = errors.New("fmm: no interface crossing in signed distance array")

	// ErrHeapCorrupt indicates the validation pass found the priority queue
	// in an inconsistent state mid-march. This is an internal-consistency
	// failure, not a data problem; the march aborts immediately.
	ErrHeapCorrupt = errors.New("fmm: priority queue invariant violated")
)

// Status tags a node's role in the sweep. The only legal runtime
// transitions are None→Trial→Frozen; Masked is a pre-condition set before
// the march, never a transition out of another state.
type Status uint8

const (
	// None marks a node not yet reached by the front.
	None Status = iota
	// Trial marks a node queued with a tentative distance.
	Trial
	// Frozen marks a node whose distance is final.
	Frozen
	// Masked marks a node permanently excluded from the sweep.
	Masked
)

// String implements fmt.Stringer for diagnostics and test output.
func (s Status) String() string {
	switch s {
	case None:
		return "None"
	case Trial:
		return "Trial"
	case Frozen:
		return "Frozen"
	case Masked:
		return "Masked"
	default:
		return "Unknown"
	}
}

// Stats reports what a single march did. Quadratic fallbacks are expected
// near grid features and are absorbed locally; the counter makes the
// degradation observable without changing the error contract.
type Stats struct {
	// Seeds is the number of interface-adjacent nodes frozen at
	// initialization.
	Seeds int
	// Extracted is the number of nodes finalized by the sweep proper.
	Extracted int
	// AxisFallbacks counts quadratic solves that degraded to the
	// single-axis upwind rule because of a negative discriminant.
	AxisFallbacks int
}

// Options configures a Marcher.
type Options struct {
	// ValidateHeap runs a full heap invariant check after every sweep
	// step; violations abort the march with ErrHeapCorrupt.
	// Intended for tests; production marches leave it off.
	ValidateHeap bool

	// Speed is an optional per-node front speed F for weighted
	// reinitialization (|∇T| = 1/F). Nil means F ≡ 1.
	Speed []float64

	// FreezeMaskAdjacent also freezes non-masked nodes adjacent to
	// masked nodes at their original values, seeding the sweep along a
	// pinned boundary.
	FreezeMaskAdjacent bool
}

// Option represents a functional option for configuring a Marcher.
type Option func(*Options)

// WithHeapValidation enables the per-step heap invariant check.
// A violation aborts the march with ErrHeapCorrupt instead of being
// swallowed: it indicates an implementation defect, not bad input.
func WithHeapValidation() Option {
	return func(o *Options) { o.ValidateHeap = true }
}

// WithSpeed sets a per-node front speed F for weighted reinitialization.
// The slice is validated at march time: its length must equal the grid's
// node count and every entry must be positive (ErrBadSpeed otherwise).
func WithSpeed(speeds []float64) Option {
	return func(o *Options) { o.Speed = speeds }
}

// WithFrozenMaskBoundary freezes non-masked nodes adjacent to masked nodes
// at their original values, so a pinned boundary also seeds the sweep.
func WithFrozenMaskBoundary() Option {
	return func(o *Options) { o.FreezeMaskAdjacent = true }
}

// DefaultOptions returns an Options with defaults: no heap validation,
// unit speed everywhere, no mask-adjacent freezing.
func DefaultOptions() Options {
	return Options{}
}
