// Package formats provides pluggable level file format parsers.
package formats

// Obstacle is a level-defined obstacle in tile coordinates.
type Obstacle struct {
	Start       [2]float32
	End         [2]float32
	COR         float32
	Orientation [2]float32
	Kind        string
	Boost       float32
}

// Level represents a parsed level ready for conversion.
type Level struct {
	ID        string
	Name      string
	Tilemap   [][]int
	Obstacles []Obstacle
	MoneyBags [][2]float32
	Needed    int
	Inventory map[string]int
	Metadata  map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".ql"}
}
