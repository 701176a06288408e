// Package config provides YAML-based game configuration loading and
// difficulty presets for ricochet.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/physics"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Ball     BallConfig     `yaml:"ball"`
	Surfaces SurfaceConfig  `yaml:"surfaces"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Render   RenderConfig   `yaml:"render"`
	Audio    AudioConfig    `yaml:"audio"`
}

// PhysicsConfig defines simulation parameters.
type PhysicsConfig struct {
	UnitSize        float64 `yaml:"unit_size"`        // World units per tile
	Tiles           int     `yaml:"tiles"`            // Tiles per side of a level
	Gravity         float64 `yaml:"gravity"`          // Units/s²
	MaxDeltaTime    float64 `yaml:"max_delta_time"`   // Longer frames are skipped
	SettleSpeed     float64 `yaml:"settle_speed"`     // Speed below which a touching ball has stopped
	CornerTolerance float64 `yaml:"corner_tolerance"` // In unit sizes
	CornerRewind    float64 `yaml:"corner_rewind"`    // World units
}

// BallConfig defines the ball.
type BallConfig struct {
	Mass   float64    `yaml:"mass"`
	Radius float64    `yaml:"radius"` // In unit sizes
	Origin [2]float64 `yaml:"origin"` // Tile coordinates
}

// SurfaceConfig defines obstacles and placeable items. Sizes are in unit sizes.
type SurfaceConfig struct {
	WallCOR      float64    `yaml:"wall_cor"`
	PadCOR       float64    `yaml:"pad_cor"`
	PlankCOR     float64    `yaml:"plank_cor"`
	BoosterExtra float64    `yaml:"booster_extra"`
	PadSize      [2]float64 `yaml:"pad_size"`
	PlankSize    [2]float64 `yaml:"plank_size"`
	BoosterSize  [2]float64 `yaml:"booster_size"`
}

// GameplayConfig defines scoring and run limits.
type GameplayConfig struct {
	MoneyValue     int     `yaml:"money_value"`
	MaxRunTime     float64 `yaml:"max_run_time"`    // Seconds, 0 disables
	InventoryBonus int     `yaml:"inventory_bonus"` // Extra items of each kind per level
}

// RenderConfig defines how the playfield maps onto terminal cells.
type RenderConfig struct {
	ColsPerTile int `yaml:"cols_per_tile"`
	RowsPerTile int `yaml:"rows_per_tile"`
}

// AudioConfig defines sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Gain in [0,1]
}

// Validate checks the values the simulation cannot run without.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Physics.UnitSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.unit_size must be positive, got %v", c.Physics.UnitSize))
	}
	if c.Physics.Tiles < 4 {
		errs = append(errs, fmt.Errorf("physics.tiles must be at least 4, got %d", c.Physics.Tiles))
	}
	if c.Ball.Mass <= 0 {
		errs = append(errs, fmt.Errorf("ball.mass must be positive, got %v", c.Ball.Mass))
	}
	if c.Ball.Radius <= 0 || c.Ball.Radius >= 0.5 {
		errs = append(errs, fmt.Errorf("ball.radius must be in (0, 0.5), got %v", c.Ball.Radius))
	}
	if c.Render.ColsPerTile <= 0 || c.Render.RowsPerTile <= 0 {
		errs = append(errs, errors.New("render cells per tile must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func vec(v [2]float64) mgl32.Vec2 {
	return mgl32.Vec2{float32(v[0]), float32(v[1])}
}

// WorldSettings converts the configuration into simulation settings.
func (c GameConfig) WorldSettings() world.Settings {
	s := world.DefaultSettings()
	s.UnitSize = float32(c.Physics.UnitSize)
	s.Tiles = c.Physics.Tiles
	s.Gravity = float32(c.Physics.Gravity)
	s.MaxDeltaTime = float32(c.Physics.MaxDeltaTime)
	s.SettleSpeed = float32(c.Physics.SettleSpeed)
	s.MaxRunTime = float32(c.Gameplay.MaxRunTime)
	s.Tuning = physics.Tuning{
		CornerTolerance: float32(c.Physics.CornerTolerance),
		CornerRewind:    float32(c.Physics.CornerRewind),
	}

	s.BallMass = float32(c.Ball.Mass)
	s.BallRadiusTiles = float32(c.Ball.Radius)
	s.OriginTiles = vec(c.Ball.Origin)

	s.WallCOR = float32(c.Surfaces.WallCOR)
	s.MoneyValue = c.Gameplay.MoneyValue
	s.Items = map[world.Item]world.ItemSpec{
		world.ItemPad: {
			SizeTiles: vec(c.Surfaces.PadSize),
			COR:       float32(c.Surfaces.PadCOR),
			Kind:      physics.KindPad,
		},
		world.ItemPlank: {
			SizeTiles: vec(c.Surfaces.PlankSize),
			COR:       float32(c.Surfaces.PlankCOR),
			Kind:      physics.KindWall,
		},
		world.ItemBooster: {
			SizeTiles:  vec(c.Surfaces.BoosterSize),
			Kind:       physics.KindBooster,
			BoostExtra: float32(c.Surfaces.BoosterExtra),
		},
	}
	return s
}

// ApplyInventoryBonus adds the configured bonus to every item in inv.
func (c GameConfig) ApplyInventoryBonus(inv map[world.Item]int) map[world.Item]int {
	out := make(map[world.Item]int, len(inv))
	for it, n := range inv {
		out[it] = n + c.Gameplay.InventoryBonus
	}
	return out
}
