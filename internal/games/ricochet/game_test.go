package ricochet

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

const frame = float32(1.0 / 60)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newGame(t *testing.T, levelID string) *Game {
	t.Helper()
	g := New()
	cfg := core.DefaultConfig()
	cfg.LevelID = levelID
	g.Reset(cfg)
	if g.state != StateBuild {
		t.Fatalf("state after Reset = %q (%s), want build", g.state, g.message)
	}
	return g
}

// runUntilSettled steps until the run ends or the frame budget is spent.
func runUntilSettled(g *Game, frames int) (completed bool) {
	idle := core.NewInputFrame()
	for i := 0; i < frames && g.state == StateRunning; i++ {
		if g.Step(idle, frame).LevelCompleted {
			completed = true
		}
	}
	return completed
}

func TestResetStartsOnFirstLevel(t *testing.T) {
	g := newGame(t, "")
	st := g.State()
	if st.LevelID != "01-first-drop" || st.Score != 0 || st.Running || st.GameOver {
		t.Errorf("State() = %+v", st)
	}
	if g.ID() != "ricochet" || NewSandbox().ID() != "ricochet_sandbox" {
		t.Error("mode IDs are wrong")
	}
}

func TestResetHonorsLevelID(t *testing.T) {
	g := newGame(t, "02-side-step")
	if got := g.State().LevelID; got != "02-side-step" {
		t.Errorf("LevelID = %q, want 02-side-step", got)
	}
}

func TestFirstLevelCompletesAndAdvances(t *testing.T) {
	g := newGame(t, "")
	var reports []world.RunReport
	g.SetRunHook(func(id string, r world.RunReport) {
		if id != "01-first-drop" {
			t.Errorf("hook level = %q", id)
		}
		reports = append(reports, r)
	})

	g.Step(press(core.ActionRun), frame)
	if !g.State().Running {
		t.Fatal("Run did not launch the ball")
	}
	if !runUntilSettled(g, 60*60) {
		t.Fatalf("level not completed, state %q: %s", g.state, g.message)
	}
	if g.state != StateComplete {
		t.Fatalf("state = %q, want complete", g.state)
	}
	if len(reports) != 1 || !reports[0].Completed || reports[0].Money != 200 {
		t.Errorf("reports = %+v", reports)
	}
	if g.State().Score != 200 {
		t.Errorf("score = %d, want 200", g.State().Score)
	}

	g.Step(press(core.ActionPlace), frame)
	if got := g.State().LevelID; got != "02-side-step" {
		t.Errorf("after continue LevelID = %q, want 02-side-step", got)
	}
	if g.State().Score != 200 {
		t.Error("score should carry across levels")
	}
}

func TestStopReturnsToBuild(t *testing.T) {
	g := newGame(t, "")
	g.Step(press(core.ActionRun), frame)
	g.Step(core.NewInputFrame(), frame)
	g.Step(press(core.ActionRun), frame)

	if g.state != StateBuild || g.world.Active() {
		t.Errorf("state = %q active = %v after stop", g.state, g.world.Active())
	}
	if g.world.Runs() != 0 {
		t.Error("a stopped run should not be counted")
	}
}

func TestPauseFreezesBall(t *testing.T) {
	g := newGame(t, "")
	g.Step(press(core.ActionRun), frame)
	g.Step(core.NewInputFrame(), frame)
	g.Step(press(core.ActionPause), frame)
	before := g.world.Ball().Midpoint

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	if g.world.Ball().Midpoint != before || !g.State().Paused {
		t.Error("ball moved while paused")
	}
	g.Step(press(core.ActionPause), frame)
	if g.state != StateRunning {
		t.Errorf("state = %q after unpause", g.state)
	}
}

func TestPlaceMoveAndRemove(t *testing.T) {
	g := newGame(t, "")
	ghost, ok := g.Ghost()
	if !ok || ghost.Item != world.ItemPad {
		t.Fatalf("Ghost() = %+v, %v; want a pad", ghost, ok)
	}

	start := ghost.Center
	g.Step(press(core.ActionRight, core.ActionDown), frame)
	ghost, _ = g.Ghost()
	step := cursorStep * g.world.Settings().UnitSize
	if ghost.Center[0] != start[0]+step || ghost.Center[1] != start[1]+step {
		t.Errorf("cursor moved to %v from %v", ghost.Center, start)
	}

	entries := len(g.world.Entries())
	g.Step(press(core.ActionPlace), frame)
	if len(g.world.Entries()) != entries+1 {
		t.Fatal("Place did not add an obstacle")
	}
	if _, ok := g.Ghost(); ok {
		t.Error("inventory should be empty after placing the only pad")
	}

	g.Step(press(core.ActionPlace), frame)
	if g.message != "Inventory empty" {
		t.Errorf("message = %q", g.message)
	}

	g.Step(press(core.ActionRemove), frame)
	if len(g.world.Entries()) != entries {
		t.Error("Remove did not take the obstacle back")
	}
	if _, ok := g.Ghost(); !ok {
		t.Error("removed item should be selectable again")
	}
}

func TestRotateAndCycleItems(t *testing.T) {
	g := newGame(t, "03-boost-lane")
	first, _ := g.Ghost()

	g.Step(press(core.ActionRotateRight, core.ActionRotateCoarse), frame)
	g.Step(press(core.ActionRotateLeft, core.ActionRotateFine), frame)
	ghost, _ := g.Ghost()
	if d := ghost.Rotation - 2.8; d > 1e-4 || d < -1e-4 {
		t.Errorf("rotation = %v, want 2.8", ghost.Rotation)
	}

	g.Step(press(core.ActionNextItem), frame)
	next, _ := g.Ghost()
	if next.Item == first.Item {
		t.Error("NextItem did not change the selection")
	}
}

func TestRestartReloadsLevel(t *testing.T) {
	g := newGame(t, "")
	g.Step(press(core.ActionPlace), frame)
	g.Step(press(core.ActionRestart), frame)

	if g.world.Inventory().Count(world.ItemPad) != 1 {
		t.Error("restart should restore the level inventory")
	}
	for _, e := range g.world.Entries() {
		if e.Source == world.SourcePlaced {
			t.Error("restart should clear placed objects")
		}
	}
}

func TestSandboxHasDeepInventory(t *testing.T) {
	g := NewSandbox()
	g.Reset(core.DefaultConfig())
	if n := g.world.Inventory().Count(world.ItemPad); n != 1+sandboxBonus {
		t.Errorf("sandbox pad count = %d, want %d", n, 1+sandboxBonus)
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := newGame(t, "")
	scr := core.NewScreen(80, 40)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"Level 1/3", "First Drop", "Score: $0", "Bags 0/2"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, BallChar) || !strings.ContainsRune(out, BagChar) {
		t.Error("render missing ball or money bags")
	}
	if !strings.ContainsRune(out, PlankChar) {
		t.Error("render missing the level plank")
	}
	if !strings.ContainsRune(out, GhostChar) {
		t.Error("render missing the ghost")
	}
}

func TestRenderShowsCursorTile(t *testing.T) {
	g := newGame(t, "")
	scr := core.NewScreen(80, 40)
	g.Render(scr)
	if !strings.Contains(scr.Row(1), "@9.00,9.00") {
		t.Errorf("HUD row = %q, want cursor at tile 9,9", scr.Row(1))
	}

	g.Step(press(core.ActionRight, core.ActionDown), frame)
	g.Render(scr)
	if !strings.Contains(scr.Row(1), "@9.25,9.25") {
		t.Errorf("HUD row = %q, want cursor at tile 9.25,9.25", scr.Row(1))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, "")
	scr := core.NewScreen(10, 5)
	g.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Error("expected a too-small message")
	}
}

func TestLayoutMapping(t *testing.T) {
	g := newGame(t, "")
	l := g.layoutFor(80, 40)
	if l.tooSmall || l.cpt != 4 || l.rpt != 2 {
		t.Fatalf("layout = %+v", l)
	}
	x, y := l.toScreen(l.cellCenter(10, 10))
	if x != 10 || y != 10 {
		t.Errorf("toScreen(cellCenter(10,10)) = (%d,%d)", x, y)
	}
}

func TestDeterminism(t *testing.T) {
	play := func() uint64 {
		g := newGame(t, "02-side-step")
		g.Step(press(core.ActionLeft, core.ActionLeft), frame)
		g.Step(press(core.ActionRotateRight, core.ActionRotateCoarse), frame)
		g.Step(press(core.ActionPlace), frame)
		g.Step(press(core.ActionRun), frame)
		runUntilSettled(g, 600)
		snap := g.world.Snapshot()
		return snap.Hash()
	}
	if a, b := play(), play(); a != b {
		t.Errorf("hashes differ: %d vs %d", a, b)
	}
}

func TestInsideQuad(t *testing.T) {
	sq := [4]mgl32.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tests := []struct {
		p    mgl32.Vec2
		want bool
	}{
		{mgl32.Vec2{5, 5}, true},
		{mgl32.Vec2{0, 5}, true},
		{mgl32.Vec2{-1, 5}, false},
		{mgl32.Vec2{5, 11}, false},
	}
	for _, tt := range tests {
		if got := insideQuad(sq, tt.p); got != tt.want {
			t.Errorf("insideQuad(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
