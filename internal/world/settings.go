package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

// Settings are the tunables of a World. Lengths ending in "Tiles" are in
// unit sizes; everything else is in world units.
type Settings struct {
	UnitSize     float32 // world units per tile
	Tiles        int     // tiles per side of the level grid
	Gravity      float32 // acceleration; the applied force is mass·Gravity
	MaxDeltaTime float32 // larger (or negative) steps are treated as 0
	SettleSpeed  float32 // below this while touching something, the run is over
	MaxRunTime   float32 // seconds before a run is stopped regardless

	BallMass        float32
	BallRadiusTiles float32
	OriginTiles     mgl32.Vec2

	WallCOR    float32
	MoneyValue int

	Tuning physics.Tuning
	Items  map[Item]ItemSpec
}

// DefaultSettings returns the values the game ships with.
func DefaultSettings() Settings {
	return Settings{
		UnitSize:     40,
		Tiles:        18,
		Gravity:      20 * 9.81,
		MaxDeltaTime: 1,
		SettleSpeed:  25,
		MaxRunTime:   120,

		BallMass:        2,
		BallRadiusTiles: 0.3,
		OriginTiles:     mgl32.Vec2{2, 0.25},

		WallCOR:    0.8,
		MoneyValue: 100,

		Tuning: physics.DefaultTuning(),
		Items:  DefaultItems(),
	}
}

// Size returns the playfield side length in world units.
func (s Settings) Size() float32 {
	return float32(s.Tiles-1) * s.UnitSize
}

// Origin returns the ball's start position in world units.
func (s Settings) Origin() mgl32.Vec2 {
	return s.OriginTiles.Mul(s.UnitSize)
}

// TileToWorld converts tile coordinates to world units.
func (s Settings) TileToWorld(p mgl32.Vec2) mgl32.Vec2 {
	return p.Mul(s.UnitSize)
}

// WorldToTile converts world units to tile coordinates.
func (s Settings) WorldToTile(p mgl32.Vec2) mgl32.Vec2 {
	if s.UnitSize == 0 {
		return mgl32.Vec2{}
	}
	return p.Mul(1 / s.UnitSize)
}
