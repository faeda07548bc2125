package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/eikonal/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"SingleColumn", 1, 5},
		{"SingleRow", 5, 1},
		{"Negative", -3, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h)
			if !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", tc.w, tc.h, err)
			}
		})
	}
}

// TestIndexCoordinate_RoundTrip checks Index and Coordinate are inverses
// over every node of a 4×3 grid.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := grid.New(4, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.NumNodes() != 12 {
		t.Fatalf("NumNodes = %d; want 12", g.NumNodes())
	}
	for id := 0; id < g.NumNodes(); id++ {
		x, y := g.Coordinate(id)
		if !g.InBounds(x, y) {
			t.Errorf("Coordinate(%d)=(%d,%d) out of bounds", id, x, y)
		}
		if back := g.Index(x, y); back != id {
			t.Errorf("Index(Coordinate(%d)) = %d; want %d", id, back, id)
		}
	}
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

// TestNeighbour_Interior verifies all four neighbours of an interior node.
func TestNeighbour_Interior(t *testing.T) {
	g, _ := grid.New(4, 3)
	id := g.Index(1, 1)

	want := map[grid.Direction]int{
		grid.West:  g.Index(0, 1),
		grid.East:  g.Index(2, 1),
		grid.South: g.Index(1, 0),
		grid.North: g.Index(1, 2),
	}
	for d, exp := range want {
		if got := g.Neighbour(id, d); got != exp {
			t.Errorf("Neighbour(%d,%v) = %d; want %d", id, d, got, exp)
		}
	}
}

// TestNeighbour_EdgeSentinel verifies off-grid sides report NoNeighbour.
func TestNeighbour_EdgeSentinel(t *testing.T) {
	g, _ := grid.New(4, 3)

	cases := []struct {
		name string
		id   int
		dir  grid.Direction
	}{
		{"WestOfOrigin", g.Index(0, 0), grid.West},
		{"SouthOfOrigin", g.Index(0, 0), grid.South},
		{"EastOfFarCorner", g.Index(3, 2), grid.East},
		{"NorthOfFarCorner", g.Index(3, 2), grid.North},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Neighbour(tc.id, tc.dir); got != grid.NoNeighbour {
				t.Errorf("Neighbour(%d,%v) = %d; want NoNeighbour", tc.id, tc.dir, got)
			}
		})
	}

	// An invalid id never resolves to a neighbour.
	if got := g.Neighbour(-1, grid.East); got != grid.NoNeighbour {
		t.Errorf("Neighbour(-1,East) = %d; want NoNeighbour", got)
	}
}

// TestDirection_AxisOpposite checks axis pairing and opposites.
func TestDirection_AxisOpposite(t *testing.T) {
	if grid.West.Axis() != 0 || grid.East.Axis() != 0 {
		t.Error("West/East must share axis 0")
	}
	if grid.South.Axis() != 1 || grid.North.Axis() != 1 {
		t.Error("South/North must share axis 1")
	}
	if grid.West.Opposite() != grid.East || grid.South.Opposite() != grid.North {
		t.Error("Opposite must flip within the axis pair")
	}
}

//----------------------------------------------------------------------------//
// Masking Tests
//----------------------------------------------------------------------------//

// TestMask verifies Mask/IsMasked bookkeeping and range errors.
func TestMask(t *testing.T) {
	g, _ := grid.New(4, 3)

	if err := g.Mask(g.Index(2, 1), g.Index(3, 0)); err != nil {
		t.Fatalf("Mask error: %v", err)
	}
	if !g.IsMasked(g.Index(2, 1)) || !g.IsMasked(g.Index(3, 0)) {
		t.Error("masked nodes must report IsMasked=true")
	}
	if g.IsMasked(g.Index(0, 0)) {
		t.Error("unmasked node reports IsMasked=true")
	}
	if g.IsMasked(-1) || g.IsMasked(g.NumNodes()) {
		t.Error("out-of-range ids must report IsMasked=false")
	}

	if err := g.Mask(g.NumNodes()); !errors.Is(err, grid.ErrNodeRange) {
		t.Errorf("Mask(out-of-range) error = %v; want ErrNodeRange", err)
	}
}

// TestWithPinnedBorder verifies the outer ring is masked and the interior is not.
func TestWithPinnedBorder(t *testing.T) {
	g, err := grid.New(5, 4, grid.WithPinnedBorder())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for id := 0; id < g.NumNodes(); id++ {
		x, y := g.Coordinate(id)
		border := x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
		if g.IsMasked(id) != border {
			t.Errorf("IsMasked(%d,%d) = %v; want %v", x, y, g.IsMasked(id), border)
		}
	}
}
