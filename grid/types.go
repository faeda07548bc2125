// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/eikonal.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a grid with fewer than two nodes per axis.
	ErrBadDimensions = errors.New("grid: width and height must each be at least 2")
	// ErrNodeRange indicates a node id outside [0, NumNodes).
	ErrNodeRange = errors.New("grid: node id out of range")
)

// NoNeighbour is the sentinel returned by Neighbour for a side that lies
// off-grid. Callers must treat that axis direction as absent.
const NoNeighbour = -1

// Direction enumerates the four orthogonal neighbour directions.
// West/East share axis 0, South/North share axis 1.
type Direction int

const (
	// West is the neighbour at (x-1, y).
	West Direction = iota
	// East is the neighbour at (x+1, y).
	East
	// South is the neighbour at (x, y-1).
	South
	// North is the neighbour at (x, y+1).
	North

	// NumDirections is the number of orthogonal directions (4).
	NumDirections
)

// Axis returns the grid axis a direction moves along:
// 0 for West/East, 1 for South/North. Complexity: O(1).
func (d Direction) Axis() int { return int(d) >> 1 }

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction { return d ^ 1 }

// Options contains tunable parameters for grid construction.
type Options struct {
	// PinnedBorder masks every node on the outer boundary ring at
	// construction, excluding it from any sweep that honours masks.
	PinnedBorder bool
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithPinnedBorder masks the outer boundary ring of nodes at construction.
// Use it when the owning level-set representation pins its domain boundary.
func WithPinnedBorder() Option {
	return func(o *Options) { o.PinnedBorder = true }
}

// DefaultOptions returns an Options with default settings:
// no pinned border, no masked nodes.
func DefaultOptions() Options {
	return Options{}
}

// Grid is a fixed rectangular lattice of Width×Height nodes with uniform
// unit spacing. Topology (dimensions, adjacency) is immutable once built;
// only the per-node mask flags may be set afterwards via Mask.
type Grid struct {
	// Width and Height are the node counts along each axis.
	Width, Height int

	masked []bool
}
