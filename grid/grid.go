// Package grid provides the rectangular lattice topology consumed by the
// fast-marching engine: node count, 2D index↔coordinate mapping, 4-neighbour
// adjacency with an explicit absent-neighbour sentinel, and per-node masking.
package grid

import "fmt"

// New constructs a Width×Height node grid with uniform unit spacing.
// Returns ErrBadDimensions if either dimension is below 2 (a single row or
// column cannot host an interface crossing on both axes).
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}

	g := &Grid{
		Width:  width,
		Height: height,
		masked: make([]bool, width*height),
	}

	if cfg.PinnedBorder {
		for x := 0; x < width; x++ {
			g.masked[g.Index(x, 0)] = true
			g.masked[g.Index(x, height-1)] = true
		}
		for y := 0; y < height; y++ {
			g.masked[g.Index(0, y)] = true
			g.masked[g.Index(width-1, y)] = true
		}
	}

	return g, nil
}

// NumNodes returns the total node count Width×Height. Complexity: O(1).
func (g *Grid) NumNodes() int {
	return g.Width * g.Height
}

// Index maps (x,y) to a row-major node id: y*Width + x. Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major node id back to (x,y). Complexity: O(1).
func (g *Grid) Coordinate(id int) (x, y int) {
	return id % g.Width, id / g.Width
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Neighbour returns the id of the node adjacent to id in direction d,
// or NoNeighbour when that side lies off-grid (or id itself is invalid).
// Complexity: O(1).
func (g *Grid) Neighbour(id int, d Direction) int {
	if id < 0 || id >= g.NumNodes() {
		return NoNeighbour
	}
	x, y := g.Coordinate(id)
	switch d {
	case West:
		x--
	case East:
		x++
	case South:
		y--
	case North:
		y++
	default:
		return NoNeighbour
	}
	if !g.InBounds(x, y) {
		return NoNeighbour
	}

	return g.Index(x, y)
}

// Mask marks the given nodes as masked, permanently excluding them from any
// sweep that honours masks. Returns ErrNodeRange on the first invalid id;
// ids preceding it are still applied.
// Complexity: O(len(ids)).
func (g *Grid) Mask(ids ...int) error {
	for _, id := range ids {
		if id < 0 || id >= g.NumNodes() {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeRange, id, g.NumNodes())
		}
		g.masked[id] = true
	}

	return nil
}

// IsMasked reports whether node id is masked. Out-of-range ids report false.
// Complexity: O(1).
func (g *Grid) IsMasked(id int) bool {
	return id >= 0 && id < len(g.masked) && g.masked[id]
}
