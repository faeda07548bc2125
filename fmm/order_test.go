package fmm

// White-box check of the causality law: nodes leave the queue in
// non-decreasing key order. The extraction trace is not part of the
// exported surface, so this test lives in-package.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eikonal/grid"
)

// TestMarch_MonotoneExtraction verifies finalized magnitudes are
// non-decreasing in extraction order; a violation indicates an
// upwind-selection bug.
func TestMarch_MonotoneExtraction(t *testing.T) {
	g, err := grid.New(31, 31)
	require.NoError(t, err)
	m, err := New(g)
	require.NoError(t, err)

	var keys []float64
	m.trace = func(_ int, key float64) { keys = append(keys, key) }

	d := make([]float64, g.NumNodes())
	for id := range d {
		x, y := g.Coordinate(id)
		// Two interfaces: a circle and an off-centre blob, to force
		// wavefront collisions mid-grid.
		c1 := math.Hypot(float64(x)-9, float64(y)-9) - 4
		c2 := math.Hypot(float64(x)-22, float64(y)-20) - 6
		d[id] = math.Min(c1, c2)
	}

	require.NoError(t, m.March(d))
	require.NotEmpty(t, keys)
	assert.Equal(t, m.stats.Extracted, len(keys))

	for i := 1; i < len(keys); i++ {
		assert.GreaterOrEqual(t, keys[i], keys[i-1],
			"extraction %d out of causal order", i)
	}
}
