// Package ricochet implements the physics puzzle: the player places pads,
// planks and boosters, then drops the ball through the level to collect
// money bags.
package ricochet

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/audio"
	"github.com/vovakirdan/tui-ricochet/internal/config"
	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/levels"
	"github.com/vovakirdan/tui-ricochet/internal/registry"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// Game states
const (
	StateBuild    = "build"    // Placing items, ball at the origin
	StateRunning  = "running"  // Ball in flight
	StatePaused   = "paused"   // Run paused
	StateComplete = "complete" // Level goal reached, waiting to continue
	StateWin      = "win"      // Every level completed
	StateError    = "error"    // Levels or world could not be loaded
)

// Mode selects how levels are played.
type Mode int

const (
	ModeCampaign Mode = iota // Levels in order, inventories as designed
	ModeSandbox              // Same levels with a deep inventory, separate scores
)

// sandboxBonus is added to every inventory count in sandbox mode.
const sandboxBonus = 9

// maxSubstep bounds a single simulation step so fast balls don't skip
// through thin planks when the frame rate drops.
const maxSubstep = float32(1.0 / 120)

// cursorStep is how far one key press moves the ghost, in unit sizes.
const cursorStep = 0.25

var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	levelsDir        string
	logger           = log.New(io.Discard)
	sound            = audio.Silent()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetLevelsDir loads levels from a directory instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLogger sets the logger used for run and contact events.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// SetAudio sets the effect player.
func SetAudio(p *audio.Player) {
	if p != nil {
		sound = p
	}
}

// RunHook is called after every finished run with the level it was played on.
type RunHook func(levelID string, r world.RunReport)

// Game implements the ricochet puzzle.
type Game struct {
	mode Mode

	runtime core.RuntimeConfig
	cfg     config.GameConfig

	levels     []levels.Level
	levelIndex int
	world      *world.World
	ghost      world.Ghost
	hasItem    bool

	state        string
	score        int
	message      string
	completedNow bool
	hook         RunHook
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewSandbox creates a sandbox game.
func NewSandbox() *Game {
	return &Game{mode: ModeSandbox}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeSandbox {
		return "ricochet_sandbox"
	}
	return "ricochet"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Ricochet (Sandbox)"
	}
	return "Ricochet"
}

// SetRunHook registers a callback for finished runs.
func (g *Game) SetRunHook(h RunHook) {
	g.hook = h
}

// Reset loads configuration and levels and starts from the first level,
// or from runtime.LevelID when it names a known level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.score = 0
	g.message = ""

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultGameConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	if g.mode == ModeSandbox {
		cfg.Gameplay.InventoryBonus += sandboxBonus
	}
	g.cfg = cfg

	lvls, err := loadLevels()
	if err != nil {
		g.fail(err)
		return
	}
	g.levels = lvls

	g.levelIndex = 0
	for i, l := range lvls {
		if l.ID == runtime.LevelID {
			g.levelIndex = i
			break
		}
	}
	g.loadLevel(g.levelIndex)
}

func loadLevels() ([]levels.Level, error) {
	loader := levels.Builtin()
	if levelsDir != "" {
		loader = levels.NewLoader(levelsDir)
	}
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, errors.New("no levels found")
	}
	return lvls, nil
}

func (g *Game) fail(err error) {
	logger.Error("cannot start level", "err", err)
	g.state = StateError
	g.message = err.Error()
	g.world = nil
}

// loadLevel builds a fresh world for the level at index.
func (g *Game) loadLevel(index int) {
	lvl := g.levels[index]
	layout := lvl.Layout
	layout.Inventory = g.cfg.ApplyInventoryBonus(layout.Inventory)

	w, err := world.New(g.cfg.WorldSettings(), layout)
	if err != nil {
		g.fail(fmt.Errorf("level %s: %w", lvl.ID, err))
		return
	}
	w.SetObserver(g)
	g.world = w

	s := w.Settings()
	g.ghost = world.Ghost{Center: mgl32.Vec2{s.Size() / 2, s.Size() / 2}}
	g.hasItem = false
	g.selectItem(0)

	g.state = StateBuild
	g.message = ""
	if hint := lvl.Metadata["hint"]; hint != "" {
		g.message = hint
	}
	logger.Info("level loaded", "level", lvl.ID, "bags", len(w.MoneyBags()), "needed", w.Needed())
}

// selectItem selects the next item in stock, starting the search after
// the current one when step is 1, or at the current one when step is 0.
func (g *Game) selectItem(step int) {
	inv := g.world.Inventory()
	items := inv.Items()
	if len(items) == 0 {
		g.hasItem = false
		return
	}
	start := 0
	if g.hasItem {
		for i, it := range items {
			if it == g.ghost.Item {
				start = i + step
				break
			}
		}
	}
	for k := range items {
		it := items[(start+k)%len(items)]
		if inv.Count(it) > 0 {
			g.ghost.Item = it
			g.hasItem = true
			return
		}
	}
	g.hasItem = false
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float32) core.StepResult {
	g.completedNow = false

	if in.Has(core.ActionRestart) && len(g.levels) > 0 {
		if g.state == StateWin {
			g.Reset(g.runtime)
		} else {
			g.loadLevel(g.levelIndex)
		}
		return g.result()
	}

	if g.state == StateError {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StateRunning:
			g.state = StatePaused
		case StatePaused:
			g.state = StateRunning
		}
	}

	switch g.state {
	case StateBuild:
		g.updateBuild(in)
	case StateRunning:
		if in.Has(core.ActionRun) {
			g.world.Stop()
			g.state = StateBuild
			g.message = "Run stopped"
			break
		}
		g.updateRun(dt)
	case StateComplete:
		if in.Has(core.ActionPlace) || in.Has(core.ActionConfirm) || in.Has(core.ActionRun) {
			g.nextLevel()
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), LevelCompleted: g.completedNow}
}

// updateBuild handles cursor, rotation, placement and launch.
func (g *Game) updateBuild(in core.InputFrame) {
	s := g.world.Settings()
	step := cursorStep * s.UnitSize

	if in.Has(core.ActionLeft) {
		g.ghost.Center[0] -= step
	}
	if in.Has(core.ActionRight) {
		g.ghost.Center[0] += step
	}
	if in.Has(core.ActionUp) {
		g.ghost.Center[1] -= step
	}
	if in.Has(core.ActionDown) {
		g.ghost.Center[1] += step
	}
	g.ghost.Center[0] = core.ClampF(g.ghost.Center[0], 0, s.Size())
	g.ghost.Center[1] = core.ClampF(g.ghost.Center[1], 0, s.Size())

	fine, coarse := in.Has(core.ActionRotateFine), in.Has(core.ActionRotateCoarse)
	if in.Has(core.ActionRotateLeft) {
		g.ghost.Rotate(-1, fine, coarse)
	}
	if in.Has(core.ActionRotateRight) {
		g.ghost.Rotate(1, fine, coarse)
	}

	if in.Has(core.ActionNextItem) {
		g.selectItem(1)
	}

	if in.Has(core.ActionPlace) {
		g.place()
	}
	if in.Has(core.ActionRemove) {
		removed, err := g.world.RemoveAt(g.ghost.Center)
		switch {
		case err != nil:
			g.message = err.Error()
		case removed:
			g.message = "Removed"
			if !g.hasItem {
				g.selectItem(0)
			}
		default:
			g.message = "Nothing to remove here"
		}
	}

	if in.Has(core.ActionRun) {
		g.world.Launch()
		g.state = StateRunning
		g.message = ""
	}
}

func (g *Game) place() {
	if !g.hasItem {
		g.message = "Inventory empty"
		return
	}
	idx, err := g.world.Place(g.ghost)
	switch {
	case errors.Is(err, world.ErrOutOfStock):
		g.message = fmt.Sprintf("No %s left", g.ghost.Item)
	case err != nil:
		g.message = err.Error()
	default:
		logger.Debug("placed", "item", g.ghost.Item, "index", idx,
			"x", g.ghost.Center[0], "y", g.ghost.Center[1], "rotation", g.ghost.Rotation)
		g.message = fmt.Sprintf("Placed %s", g.ghost.Item)
	}
	if g.world.Inventory().Count(g.ghost.Item) == 0 {
		g.selectItem(1)
	}
}

// updateRun advances the simulation in bounded substeps.
func (g *Game) updateRun(dt float32) {
	if dt <= 0 || dt > g.world.Settings().MaxDeltaTime {
		return
	}
	n := int(math.Ceil(float64(dt / maxSubstep)))
	sub := dt / float32(n)
	for i := 0; i < n && g.state == StateRunning; i++ {
		res := g.world.Step(sub)
		for _, c := range res.Contacts {
			sound.Bounce(c.Kind)
			logger.Debug("contact", "obstacle", c.Index, "kind", c.Kind, "side", c.Side)
		}
		for _, idx := range res.Collected {
			sound.Collect()
			logger.Debug("money collected", "bag", idx)
		}
	}
}

// RunEnded implements world.RunObserver.
func (g *Game) RunEnded(r world.RunReport) {
	id := g.levels[g.levelIndex].ID
	logger.Info("run ended",
		"level", id,
		"run", r.Run,
		"outcome", r.Outcome,
		"duration", r.Duration,
		"contacts", r.Contacts,
		"collected", r.Collected,
		"needed", r.Needed,
	)

	if r.Completed {
		g.score += r.Money
		g.completedNow = true
		g.state = StateComplete
		g.message = fmt.Sprintf("Level complete! +$%d", r.Money)
		sound.LevelComplete()
	} else {
		g.state = StateBuild
		g.message = fmt.Sprintf("Run %d %s: %d/%d bags", r.Run, r.Outcome, r.Collected, r.Needed)
		sound.RunFailed()
	}

	if g.hook != nil {
		g.hook(id, r)
	}
}

func (g *Game) nextLevel() {
	if g.levelIndex+1 >= len(g.levels) {
		g.state = StateWin
		logger.Info("all levels completed", "score", g.score)
		return
	}
	g.levelIndex++
	g.loadLevel(g.levelIndex)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		Running:  g.state == StateRunning,
		GameOver: g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
	if len(g.levels) > 0 {
		st.LevelID = g.levels[g.levelIndex].ID
	}
	return st
}

// World exposes the current simulation, nil in the error state.
func (g *Game) World() *world.World {
	return g.world
}

// Ghost returns the object about to be placed and whether any item is in stock.
func (g *Game) Ghost() (world.Ghost, bool) {
	return g.ghost, g.hasItem
}

// Register the modes with the registry
func init() {
	registry.Register("ricochet", func() registry.Game {
		return New()
	})
	registry.Register("ricochet_sandbox", func() registry.Game {
		return NewSandbox()
	})
}
