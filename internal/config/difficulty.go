package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy hands out an extra item of each kind and livelier walls; hard
// deadens every surface.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.InventoryBonus++
		cfg.Surfaces.WallCOR = min(cfg.Surfaces.WallCOR+0.05, 1)
	case DifficultyHard:
		cfg.Surfaces.WallCOR = max(cfg.Surfaces.WallCOR-0.1, 0)
		cfg.Surfaces.PadCOR = max(cfg.Surfaces.PadCOR-0.05, 0)
		cfg.Surfaces.PlankCOR = max(cfg.Surfaces.PlankCOR-0.1, 0)
	}
}
