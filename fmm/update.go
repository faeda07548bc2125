package fmm

import (
	"math"

	"github.com/katalvlaran/eikonal/grid"
)

// invSpeed returns 1/F at a node; F ≡ 1 without WithSpeed.
func (r *runner) invSpeed(id int) float64 {
	if r.opts.Speed == nil {
		return 1
	}

	return 1 / r.opts.Speed[id]
}

// upwindAxis scans both directions of one axis for the frozen neighbour
// with the smallest magnitude strictly below cur, returning its value and
// id. The strict bound enforces causality: only neighbours the front has
// already passed may feed a node.
func (r *runner) upwindAxis(node, axis int, cur float64) (u float64, up int, ok bool) {
	u, up = distanceMax, grid.NoNeighbour
	lo := grid.Direction(2 * axis)
	for _, d := range [2]grid.Direction{lo, lo.Opposite()} {
		nb := r.g.Neighbour(node, d)
		if nb == grid.NoNeighbour || r.status[nb] != Frozen {
			continue
		}
		if v := r.mag[nb]; v < cur && v < u {
			u, up, ok = v, nb, true
		}
	}

	return u, up, ok
}

// updateNode computes a node's tentative unsigned distance from its frozen
// upwind neighbours via the first-order discretization of |∇T| = 1/F.
// Each present axis with upwind value u contributes (T-u)² to the squared
// gradient, giving the quadratic a·T² + b·T + c = 0 with a += 1, b -= 2u,
// c += u², and finally c -= 1/F². Degenerate stencils never escalate:
// no axis present yields the unreached sentinel, a single axis degenerates
// to the linear rule T = u + 1/F.
func (r *runner) updateNode(node int) float64 {
	cur := r.mag[node]

	var a, b, c float64
	uLow := distanceMax
	present := 0
	for axis := 0; axis < 2; axis++ {
		u, _, ok := r.upwindAxis(node, axis, cur)
		if !ok {
			continue
		}
		a++
		b -= 2 * u
		c += u * u
		if u < uLow {
			uLow = u
		}
		present++
	}

	if present == 0 {
		return distanceMax
	}
	invF := r.invSpeed(node)
	if present == 1 {
		return uLow + invF
	}
	c -= invF * invF

	return r.solveQuadratic(a, b, c, uLow+invF)
}

// solveQuadratic returns the larger root of a·T² + b·T + c = 0. The larger
// root is the causal one: the front must already have passed both upwind
// neighbours, so T exceeds them. A negative discriminant means the two
// upwind values are too far apart for a consistent diagonal wavefront; the
// solve then drops to the single-axis Godunov value built from the smaller
// upwind neighbour (fallback), counted in Stats.AxisFallbacks.
func (r *runner) solveQuadratic(a, b, c, fallback float64) float64 {
	disc := b*b - 4*a*c
	if disc < -epsilon {
		r.stats.AxisFallbacks++

		return fallback
	}
	if disc < 0 {
		disc = 0
	}
	root := (-b + math.Sqrt(disc)) / (2 * a)
	if root > distanceMax {
		return distanceMax
	}

	return root
}

// finaliseVelocity extends the companion field to a freshly frozen node as
// the gradient-weighted mean of its frozen upwind neighbours' values, with
// per-axis weights (T - u) taken from the distance field. This satisfies
// ∇f·∇T = 0 to first order. With no frozen upwind neighbour on either axis
// or vanishing weights the node keeps its seed value.
func (r *runner) finaliseVelocity(node int) {
	cur := r.mag[node]

	var num, den float64
	for axis := 0; axis < 2; axis++ {
		u, up, ok := r.upwindAxis(node, axis, cur)
		if !ok {
			continue
		}
		w := cur - u
		num += w * r.vel[up]
		den += w
	}
	if den > epsilon {
		r.vel[node] = num / den
	}
}
