package ricochet

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/levels"
	"github.com/vovakirdan/tui-ricochet/internal/physics"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// Visual characters for rendering
const (
	BallChar    = '●'
	BagChar     = '$'
	PlankChar   = '█'
	PadChar     = '▓'
	BoosterChar = '»'
	GhostChar   = '░'
	CursorChar  = '+'
	WallTile    = '▒'
	PipeTile    = '║'
	PropTile    = '·'
)

const hudRows = 2

// fieldLayout maps world units onto screen cells.
type fieldLayout struct {
	ox, oy   int // top-left cell of the playfield
	cpt, rpt int // cells per tile
	unit     float32
	tooSmall bool
}

// layoutFor fits the playfield into a w×h screen, shrinking below the
// configured cells per tile when needed.
func (g *Game) layoutFor(w, h int) fieldLayout {
	s := g.world.Settings()
	tiles := s.Tiles - 1
	cpt := min(g.cfg.Render.ColsPerTile, (w-2)/tiles)
	rpt := min(g.cfg.Render.RowsPerTile, (h-hudRows-3)/tiles)
	l := fieldLayout{cpt: cpt, rpt: rpt, unit: s.UnitSize}
	if cpt < 1 || rpt < 1 {
		l.tooSmall = true
		return l
	}
	l.ox = (w - tiles*cpt) / 2
	l.oy = hudRows + 1
	return l
}

func (l fieldLayout) toScreen(p mgl32.Vec2) (int, int) {
	x := l.ox + int(math.Floor(float64(p[0]/l.unit*float32(l.cpt))))
	y := l.oy + int(math.Floor(float64(p[1]/l.unit*float32(l.rpt))))
	return x, y
}

// cellCenter returns the world point at the centre of a screen cell.
func (l fieldLayout) cellCenter(x, y int) mgl32.Vec2 {
	return mgl32.Vec2{
		(float32(x-l.ox) + 0.5) / float32(l.cpt) * l.unit,
		(float32(y-l.oy) + 0.5) / float32(l.rpt) * l.unit,
	}
}

// insideQuad reports whether p is inside the convex quad pts.
func insideQuad(pts [4]mgl32.Vec2, p mgl32.Vec2) bool {
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%4]
		cross := (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
	}
	return !(pos && neg)
}

func quadBounds(pts [4]mgl32.Vec2) (lo, hi mgl32.Vec2) {
	lo, hi = pts[0], pts[0]
	for _, q := range pts[1:] {
		lo = mgl32.Vec2{min(lo[0], q[0]), min(lo[1], q[1])}
		hi = mgl32.Vec2{max(hi[0], q[0]), max(hi[1], q[1])}
	}
	return lo, hi
}

// fillQuad draws every cell whose centre lies inside pts.
func (l fieldLayout) fillQuad(dst *core.Screen, pts [4]mgl32.Vec2, ch rune, c core.Color) {
	lo, hi := quadBounds(pts)
	x0, y0 := l.toScreen(lo)
	x1, y1 := l.toScreen(hi)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideQuad(pts, l.cellCenter(x, y)) {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == StateError || g.world == nil {
		g.drawCenteredBox(dst, "CANNOT LOAD LEVELS", g.message)
		return
	}

	l := g.layoutFor(dst.Width(), dst.Height())
	if l.tooSmall {
		tiles := g.world.Settings().Tiles - 1
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", tiles+2, tiles+hudRows+3))
		return
	}

	g.renderBorder(dst, l)
	g.renderTilemap(dst, l)
	g.renderObstacles(dst, l)
	g.renderBags(dst, l)
	if g.state == StateBuild {
		g.renderGhost(dst, l)
	}
	g.renderBall(dst, l)
	g.renderHUD(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderBorder frames the playfield, leaving the entry gap open.
func (g *Game) renderBorder(dst *core.Screen, l fieldLayout) {
	s := g.world.Settings()
	tiles := s.Tiles - 1
	dst.DrawBox(core.NewRect(l.ox-1, l.oy-1, tiles*l.cpt+2, tiles*l.rpt+2), core.ColorGray)

	gapL, _ := l.toScreen(mgl32.Vec2{s.OriginTiles[0]*s.UnitSize - s.UnitSize/2, 0})
	gapR, _ := l.toScreen(mgl32.Vec2{s.OriginTiles[0]*s.UnitSize + s.UnitSize/2, 0})
	for x := gapL; x < gapR; x++ {
		dst.Set(x, l.oy-1, ' ')
	}
}

// renderTilemap draws the decorative background.
func (g *Game) renderTilemap(dst *core.Screen, l fieldLayout) {
	tm := g.levels[g.levelIndex].Tilemap
	tiles := g.world.Settings().Tiles - 1
	for y := l.oy; y < l.oy+tiles*l.rpt; y++ {
		for x := l.ox; x < l.ox+tiles*l.cpt; x++ {
			p := l.cellCenter(x, y).Mul(1 / l.unit)
			col := int(math.Round(float64(p[0])))
			row := int(math.Round(float64(p[1])))
			switch tm.Kind(col, row) {
			case levels.TileWall:
				dst.SetColored(x, y, WallTile, core.ColorGray)
			case levels.TilePipe:
				dst.SetColored(x, y, PipeTile, core.ColorGreen)
			case levels.TileProp:
				dst.SetColored(x, y, PropTile, core.ColorYellow)
			}
		}
	}
}

func kindGlyph(k physics.Kind) (rune, core.Color) {
	switch k {
	case physics.KindPad:
		return PadChar, core.ColorBrightCyan
	case physics.KindBooster:
		return BoosterChar, core.ColorBrightMagenta
	default:
		return PlankChar, core.ColorWhite
	}
}

// renderObstacles draws level and placed obstacles. The boundary walls
// lie outside the playfield and are represented by the border.
func (g *Game) renderObstacles(dst *core.Screen, l fieldLayout) {
	for _, e := range g.world.Entries() {
		if e.Source == world.SourceWall {
			continue
		}
		ch, c := kindGlyph(e.Obstacle.Kind())
		l.fillQuad(dst, e.Obstacle.Points(), ch, c)
	}
}

func (g *Game) renderBags(dst *core.Screen, l fieldLayout) {
	for _, b := range g.world.MoneyBags() {
		if !b.Visible() {
			continue
		}
		c := core.ColorBrightGreen
		if b.Falling() {
			c = core.ColorGreen
		}
		x, y := l.toScreen(b.Pos)
		dst.SetColored(x, y, BagChar, c)
	}
}

func (g *Game) renderGhost(dst *core.Screen, l fieldLayout) {
	if g.hasItem {
		spec := g.world.Settings().Items[g.ghost.Item]
		u := l.unit
		pts, _ := physics.RotatedBoxPoints(g.ghost.Center, spec.SizeTiles[0]*u, spec.SizeTiles[1]*u, g.ghost.Rotation)
		l.fillQuad(dst, pts, GhostChar, core.ColorGray)
	}
	x, y := l.toScreen(g.ghost.Center)
	dst.SetColored(x, y, CursorChar, core.ColorBrightYellow)
}

func (g *Game) renderBall(dst *core.Screen, l fieldLayout) {
	x, y := l.toScreen(g.world.Ball().Midpoint)
	dst.SetColored(x, y, BallChar, core.ColorBrightYellow)
}

// renderHUD draws level, score, bags and the selected item.
func (g *Game) renderHUD(dst *core.Screen) {
	lvl := g.levels[g.levelIndex]
	dst.DrawText(1, 0, fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.levels), lvl.Title()))

	scoreText := fmt.Sprintf("Score: $%d", g.score)
	dst.DrawText(dst.Width()-len(scoreText)-1, 0, scoreText)

	w := g.world
	dst.DrawTextColored(1, 1, fmt.Sprintf("Bags %d/%d  Runs %d", w.Collected(), w.Needed(), w.Runs()), core.ColorBrightGreen)

	itemText := "Inventory empty"
	if g.hasItem {
		tile := w.Settings().WorldToTile(g.ghost.Center)
		itemText = fmt.Sprintf("%s x%d  %5.1f°  @%.2f,%.2f",
			g.ghost.Item, w.Inventory().Count(g.ghost.Item), g.ghost.Rotation, tile[0], tile[1])
	}
	dst.DrawText(dst.Width()-len([]rune(itemText))-1, 1, itemText)
}

func (g *Game) renderFooter(dst *core.Screen) {
	text := g.message
	if text == "" {
		switch g.state {
		case StateBuild:
			text = "Arrows move  Tab item  R/T rotate  Enter place  X remove  Space run"
		case StateRunning:
			text = "Space stop  P pause"
		}
	}
	dst.DrawTextCentered(dst.Height()-1, text)
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateComplete:
		g.drawCenteredBox(dst, "LEVEL COMPLETE", g.message+"  |  Enter for next level")
	case StateWin:
		g.drawCenteredBox(dst, "ALL LEVELS CLEARED", fmt.Sprintf("Score: $%d  |  Ctrl+R to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
