package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

// Rotation steps for the ghost, in degrees.
const (
	rotateStep       = 1
	rotateFineDiv    = 5
	rotateCoarseMult = 3
)

// Ghost is the object the player is about to place.
type Ghost struct {
	Item     Item
	Center   mgl32.Vec2 // world units
	Rotation float32    // degrees, clockwise on screen
}

// Rotate turns the ghost one step. dir is -1 for counter-clockwise and +1
// for clockwise. fine divides the step by five, coarse triples it.
func (g *Ghost) Rotate(dir int, fine, coarse bool) {
	step := float32(dir) * rotateStep
	switch {
	case fine:
		step /= rotateFineDiv
	case coarse:
		step *= rotateCoarseMult
	}
	g.Rotation += step
	for g.Rotation >= 360 {
		g.Rotation -= 360
	}
	for g.Rotation < 0 {
		g.Rotation += 360
	}
}

// Build turns the ghost into an obstacle using spec and the unit size.
func (g Ghost) Build(spec ItemSpec, unit float32) physics.Obstacle {
	w, h := spec.SizeTiles[0]*unit, spec.SizeTiles[1]*unit
	if spec.Kind == physics.KindBooster {
		return physics.NewRotatedBooster(g.Center, w, h, g.Rotation, spec.BoostExtra)
	}
	return physics.NewRotatedBox(g.Center, w, h, g.Rotation, spec.COR, spec.Kind)
}

// Placed is a player-placed obstacle.
type Placed struct {
	Ghost    Ghost
	Obstacle physics.Obstacle
}

// Contains reports whether p lies inside the placed object's bounding box.
func (p Placed) Contains(pt mgl32.Vec2) bool {
	pts := p.Obstacle.Points()
	lo, hi := pts[0], pts[0]
	for _, q := range pts[1:] {
		lo = mgl32.Vec2{min(lo[0], q[0]), min(lo[1], q[1])}
		hi = mgl32.Vec2{max(hi[0], q[0]), max(hi[1], q[1])}
	}
	return pt[0] >= lo[0] && pt[0] <= hi[0] && pt[1] >= lo[1] && pt[1] <= hi[1]
}
