// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/eikonal/grid"
)

// ExampleGrid_Neighbour demonstrates 4-neighbour lookups and the
// NoNeighbour sentinel at a domain edge.
// Scenario:
//
//   - 3×3 grid, row-major ids 0..8
//   - Interior node (1,1) has all four neighbours
//   - Corner node (0,0) reports NoNeighbour to the West and South
//
// Complexity: O(1) per lookup
func ExampleGrid_Neighbour() {
	g, _ := grid.New(3, 3)

	centre := g.Index(1, 1)
	fmt.Println("west of centre: ", g.Neighbour(centre, grid.West))
	fmt.Println("north of centre:", g.Neighbour(centre, grid.North))

	corner := g.Index(0, 0)
	fmt.Println("west of corner: ", g.Neighbour(corner, grid.West))
	fmt.Println("south of corner:", g.Neighbour(corner, grid.South))

	// Output:
	// west of centre:  3
	// north of centre: 7
	// west of corner:  -1
	// south of corner: -1
}
