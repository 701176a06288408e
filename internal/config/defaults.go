package config

import (
	_ "embed"
)

//go:embed defaults/ricochet.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			UnitSize:        40,
			Tiles:           18,
			Gravity:         196.2,
			MaxDeltaTime:    1,
			SettleSpeed:     25,
			CornerTolerance: 0.1,
			CornerRewind:    3,
		},
		Ball: BallConfig{
			Mass:   2,
			Radius: 0.3,
			Origin: [2]float64{2, 0.25},
		},
		Surfaces: SurfaceConfig{
			WallCOR:      0.8,
			PadCOR:       0.95,
			PlankCOR:     0.8,
			BoosterExtra: 0.5,
			PadSize:      [2]float64{2, 0.5},
			PlankSize:    [2]float64{3, 0.25},
			BoosterSize:  [2]float64{2, 0.5},
		},
		Gameplay: GameplayConfig{
			MoneyValue: 100,
			MaxRunTime: 120,
		},
		Render: RenderConfig{
			ColsPerTile: 4,
			RowsPerTile: 2,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
