package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Tilemap   []string          `yaml:"tilemap,omitempty"`
	Obstacles []YAMLObstacle    `yaml:"obstacles,omitempty"`
	MoneyBags [][2]float32      `yaml:"money_bags,omitempty"`
	Needed    int               `yaml:"needed"`
	Inventory map[string]int    `yaml:"inventory,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLObstacle is one obstacle entry.
type YAMLObstacle struct {
	Start       [2]float32 `yaml:"start"`
	End         [2]float32 `yaml:"end"`
	COR         *float32   `yaml:"cor,omitempty"`
	Orientation [2]float32 `yaml:"orientation,omitempty"`
	Kind        string     `yaml:"kind,omitempty"`
	Boost       float32    `yaml:"boost,omitempty"`
}

// defaultCOR applies when an obstacle omits cor.
const defaultCOR = 0.8

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		MoneyBags: yl.MoneyBags,
		Needed:    yl.Needed,
		Inventory: yl.Inventory,
		Metadata:  yl.Metadata,
	}
	if level.Needed < 0 {
		return Level{}, fmt.Errorf("needed must not be negative, got %d", level.Needed)
	}

	for i, row := range yl.Tilemap {
		ids, err := ParseTileRow(row)
		if err != nil {
			return Level{}, fmt.Errorf("tilemap row %d: %w", i, err)
		}
		level.Tilemap = append(level.Tilemap, ids)
	}

	for _, o := range yl.Obstacles {
		cor := float32(defaultCOR)
		if o.COR != nil {
			cor = *o.COR
		}
		level.Obstacles = append(level.Obstacles, Obstacle{
			Start:       o.Start,
			End:         o.End,
			COR:         cor,
			Orientation: o.Orientation,
			Kind:        strings.ToLower(o.Kind),
			Boost:       o.Boost,
		})
	}

	return level, nil
}
