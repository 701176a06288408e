package levels

// Tile id ranges.
const (
	numWalls = 16
	numPipes = 6
)

// TileKind is the rendering class of a tile id.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileWall
	TilePipe
	TileProp
)

// ClassifyTile maps a tile id to its kind: 0 is empty, 1..16 are walls,
// 17..22 are pipes, anything above is a prop.
func ClassifyTile(id int) TileKind {
	switch {
	case id <= 0:
		return TileEmpty
	case id <= numWalls:
		return TileWall
	case id <= numWalls+numPipes:
		return TilePipe
	default:
		return TileProp
	}
}

// Tilemap is the level background, indexed [row][col]. It is decorative
// only; collisions come from the level's obstacles and the boundary walls.
type Tilemap struct {
	rows [][]int
}

// NewTilemap wraps rows of tile ids. Ragged rows are allowed.
func NewTilemap(rows [][]int) Tilemap {
	return Tilemap{rows: rows}
}

// Rows returns the number of rows.
func (t Tilemap) Rows() int {
	return len(t.rows)
}

// At returns the tile id at (col, row), or 0 outside the map.
func (t Tilemap) At(col, row int) int {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.rows[row]) {
		return 0
	}
	return t.rows[row][col]
}

// Kind returns the kind of the tile at (col, row).
func (t Tilemap) Kind(col, row int) TileKind {
	return ClassifyTile(t.At(col, row))
}
