package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

// wallThickness is how far the boundary walls extend outside the playfield.
const wallThickness = 100

// MakeWalls returns the boundary of a size×size playfield: floor, right
// wall, the two ceiling pieces either side of the entry gap, and the left
// wall, in that order. Every wall sits half a tile inside the playfield edge.
func MakeWalls(size, unit, cor float32) []physics.Obstacle {
	m := 0.5 * unit
	box := func(ax, ay, bx, by float32) physics.Obstacle {
		return physics.NewBox(mgl32.Vec2{ax, ay}, mgl32.Vec2{bx, by}, cor, physics.KindWall)
	}
	return []physics.Obstacle{
		box(m, size-m, size-m, size+wallThickness), // floor
		box(size-m, m, size+wallThickness, size-m), // right wall
		box(m, -wallThickness, 1.5*unit, m),        // ceiling left of the gap
		box(2.5*unit, -wallThickness, size-m, m),   // ceiling right of the gap
		box(-wallThickness, m, m, size-m),          // left wall
	}
}
