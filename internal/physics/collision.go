package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/core"
)

// edge is one side of the rectangle as an implicit line.
type edge struct {
	side   Side
	line   core.Line
	normal mgl32.Vec2 // unit, pointing into the rectangle for TL,TR,BR,BL winding
	ok     bool       // false for zero-length edges
}

func (o *BouncyObject) edges() [sideCount]edge {
	var es [sideCount]edge
	for i := 0; i < sideCount; i++ {
		a, b := o.points[i], o.points[(i+1)%sideCount]
		dir, ok := core.SafeNormalize(b.Sub(a))
		es[i].side = Side(i)
		if !ok {
			continue
		}
		n := core.Perpendicular(dir)
		es[i] = edge{side: Side(i), line: core.LineThrough(a, n), normal: n, ok: true}
	}
	return es
}

// onSegment reports whether p, already on the edge's line, lies between the
// edge's endpoints along the edge's dominant axis.
func (o *BouncyObject) onSegment(i int, p mgl32.Vec2) bool {
	a, b := o.points[i], o.points[(i+1)%sideCount]
	axis := 1
	if mgl32.Abs(b[0]-a[0]) > mgl32.Abs(b[1]-a[1]) {
		axis = 0
	}
	lo, hi := min(a[axis], b[axis]), max(a[axis], b[axis])
	return p[axis] >= lo && p[axis] <= hi
}

// CheckBallCollision tests the ball against each edge of the rectangle.
func (o *BouncyObject) CheckBallCollision(b *Ball, unitSize float32) (Side, bool) {
	es := o.edges()
	r := b.Radius()

	var dist [sideCount]float32
	var near [sideCount]bool
	var candidate [sideCount]bool
	var candidates []Side

	for i, e := range es {
		if !e.ok {
			dist[i] = float32(math.Inf(1))
			continue
		}
		d := e.line.Distance(b.Midpoint)
		dist[i] = d
		if d >= r {
			continue
		}
		near[i] = true
		for _, sign := range [2]float32{1, -1} {
			cp := b.Midpoint.Add(e.normal.Mul(sign * d))
			if math.Round(float64(e.line.Eval(cp))) != 0 {
				continue
			}
			if o.onSegment(i, cp) {
				candidate[i] = true
				candidates = append(candidates, Side(i))
				break
			}
		}
	}

	tol := o.tuning.CornerTolerance * unitSize
	for i := 0; i < sideCount; i++ {
		j := (i + sideCount - 1) % sideCount
		if !near[i] || !near[j] {
			continue
		}
		if mgl32.Abs(dist[i]-dist[j]) > tol {
			continue
		}
		// Corner i is shared by edges j and i. Both infinite lines pass
		// within the radius, which also happens when the ball is well clear
		// of the corner, so require actual proximity or a segment hit.
		if core.Distance(o.points[i], b.Midpoint) > r && !candidate[i] && !candidate[j] {
			continue
		}
		pair := []Side{Side(min(i, j)), Side(max(i, j))}
		return o.bestSide(b, pair, min(dist[i], dist[j])), true
	}

	switch len(candidates) {
	case 0:
		return 0, false
	case 1:
		return candidates[0], true
	}
	smallest := dist[candidates[0]]
	for _, s := range candidates[1:] {
		smallest = min(smallest, dist[s])
	}
	return o.bestSide(b, candidates, smallest), true
}

// bestSide steps the ball back along its path and returns the candidate
// whose line the rewound centre sits nearest to. Ties keep the earlier
// candidate, and candidates are always in ascending side order.
func (o *BouncyObject) bestSide(b *Ball, candidates []Side, smallest float32) Side {
	rewind := max(smallest-o.tuning.CornerRewind, 0)
	back := b.Midpoint.Sub(core.ToWorld(b.Direction()).Mul(rewind))

	es := o.edges()
	best := candidates[0]
	bestDist := float32(math.Inf(1))
	for _, s := range candidates {
		e := es[s]
		if !e.ok {
			continue
		}
		if d := e.line.Distance(back); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
