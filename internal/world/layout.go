package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

// ObstacleSpec is a level-defined obstacle in tile coordinates. The box
// spans from Start-½ to End+½ on both axes, so Start == End is one tile.
type ObstacleSpec struct {
	Start       mgl32.Vec2
	End         mgl32.Vec2
	COR         float32
	Orientation mgl32.Vec2 // zero means (1, 0)
	Kind        physics.Kind
	BoostExtra  float32
}

// Build converts the spec to world units.
func (s ObstacleSpec) Build(unit float32) physics.Obstacle {
	half := mgl32.Vec2{0.5 * unit, 0.5 * unit}
	a := s.Start.Mul(unit).Sub(half)
	b := s.End.Mul(unit).Add(half)
	pts := physics.BoxPoints(a, b)
	o := s.Orientation
	if o == (mgl32.Vec2{}) {
		o = mgl32.Vec2{1, 0}
	}
	if s.Kind == physics.KindBooster {
		return physics.NewBooster(pts, o, s.BoostExtra)
	}
	return physics.NewBouncyObject(pts, o, s.COR, s.Kind)
}

// Layout is everything a level contributes to the world.
type Layout struct {
	Obstacles       []ObstacleSpec
	MoneyBags       []mgl32.Vec2 // tile coordinates
	MoneyBagsNeeded int
	Inventory       map[Item]int
}
