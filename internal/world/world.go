// Package world drives the simulation: it owns the ball, the ordered list
// of obstacles, the money bags and the inventory, and advances them one
// step at a time.
package world

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

// Source says where an obstacle came from.
type Source int

const (
	SourceWall Source = iota
	SourceLevel
	SourcePlaced
)

// Entry is one obstacle in the world's ordered list.
type Entry struct {
	Obstacle physics.Obstacle
	Source   Source
	Placed   *Placed // nil unless Source is SourcePlaced
}

// Outcome classifies why a run ended.
type Outcome int

const (
	OutcomeSettled Outcome = iota
	OutcomeOutOfBounds
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSettled:
		return "settled"
	case OutcomeOutOfBounds:
		return "out of bounds"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// ContactEvent is emitted whenever an obstacle affected the ball.
type ContactEvent struct {
	Index int
	Kind  physics.Kind
	Side  physics.Side
	COR   float32
}

// RunReport describes a finished run.
type RunReport struct {
	Run       int
	Outcome   Outcome
	Duration  float32 // simulated seconds
	Contacts  int
	Collected int
	Needed    int
	Money     int
	Completed bool
}

// RunObserver is notified when a run ends.
type RunObserver interface {
	RunEnded(r RunReport)
}

// RunObserverFunc adapts a function to RunObserver.
type RunObserverFunc func(r RunReport)

// RunEnded calls f(r).
func (f RunObserverFunc) RunEnded(r RunReport) { f(r) }

// StepResult is what happened during one Step.
type StepResult struct {
	Contacts  []ContactEvent
	Collected []int // indices of bags collected this step
	Ended     *RunReport
}

var (
	// ErrSimulationActive is returned when editing the world mid-run.
	ErrSimulationActive = errors.New("world: simulation is running")
	// ErrOutsidePlayfield is returned when placing outside the walls.
	ErrOutsidePlayfield = errors.New("world: position outside the playfield")
)

// World is the simulation context.
type World struct {
	settings  Settings
	ball      *physics.Ball
	entries   []Entry
	bags      []*MoneyBag
	needed    int
	inventory *Inventory
	observer  RunObserver

	active    bool
	completed bool
	runs      int
	runTime   float32
	contacts  int
	tick      uint64
}

// New builds a world from settings and a level layout.
func New(s Settings, layout Layout) (*World, error) {
	if s.UnitSize <= 0 {
		return nil, fmt.Errorf("world: unit size must be positive, got %v", s.UnitSize)
	}
	if s.Tiles < 2 {
		return nil, fmt.Errorf("world: need at least 2 tiles, got %d", s.Tiles)
	}
	ball, err := physics.NewBall(s.Origin(), s.BallMass, s.BallRadiusTiles*s.UnitSize)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if s.Items == nil {
		s.Items = DefaultItems()
	}

	w := &World{
		settings:  s,
		ball:      ball,
		needed:    layout.MoneyBagsNeeded,
		inventory: NewInventory(layout.Inventory),
	}
	for _, o := range MakeWalls(s.Size(), s.UnitSize, s.WallCOR) {
		w.add(o, SourceWall, nil)
	}
	for _, spec := range layout.Obstacles {
		w.add(spec.Build(s.UnitSize), SourceLevel, nil)
	}
	for _, p := range layout.MoneyBags {
		w.bags = append(w.bags, NewMoneyBag(s.TileToWorld(p), s.MoneyValue))
	}
	return w, nil
}

func (w *World) add(o physics.Obstacle, src Source, p *Placed) {
	o.SetTuning(w.settings.Tuning)
	w.entries = append(w.entries, Entry{Obstacle: o, Source: src, Placed: p})
}

// AddObstacle appends an obstacle; it is checked after every existing one.
func (w *World) AddObstacle(o physics.Obstacle) {
	w.add(o, SourceLevel, nil)
}

// SetObserver registers the collaborator told about finished runs.
func (w *World) SetObserver(o RunObserver) {
	w.observer = o
}

// Settings returns the settings the world was built with.
func (w *World) Settings() Settings { return w.settings }

// Ball returns the simulated ball.
func (w *World) Ball() *physics.Ball { return w.ball }

// Entries returns every obstacle in step order.
func (w *World) Entries() []Entry { return w.entries }

// MoneyBags returns the level's bags.
func (w *World) MoneyBags() []*MoneyBag { return w.bags }

// Inventory returns the items left to place.
func (w *World) Inventory() *Inventory { return w.inventory }

// Needed is how many bags complete the level.
func (w *World) Needed() int { return w.needed }

// Active reports whether a run is in progress.
func (w *World) Active() bool { return w.active }

// Completed reports whether the level has been cleared.
func (w *World) Completed() bool { return w.completed }

// Runs counts finished runs.
func (w *World) Runs() int { return w.runs }

// Obstacles returns the obstacles in check order.
func (w *World) Obstacles() []physics.Obstacle {
	out := make([]physics.Obstacle, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.Obstacle
	}
	return out
}

// Collected returns how many bags the current run has picked up.
func (w *World) Collected() int {
	n := 0
	for _, b := range w.bags {
		if b.Collected {
			n++
		}
	}
	return n
}

// Money returns the value of the bags collected this run.
func (w *World) Money() int {
	m := 0
	for _, b := range w.bags {
		if b.Collected {
			m += b.Value
		}
	}
	return m
}

// Launch starts a run from the origin. It is a no-op while running or
// once the level is complete.
func (w *World) Launch() {
	if w.active || w.completed {
		return
	}
	w.ball.Reset(w.settings.Origin())
	w.runTime = 0
	w.contacts = 0
	w.active = true
}

// Stop aborts the current run without reporting it.
func (w *World) Stop() {
	if !w.active {
		return
	}
	w.resetRun()
}

func (w *World) resetRun() {
	w.ball.Reset(w.settings.Origin())
	w.active = false
	for _, e := range w.entries {
		e.Obstacle.ReleaseContact()
	}
	for _, b := range w.bags {
		b.Reset()
	}
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float32) StepResult {
	var res StepResult
	if dt < 0 || dt > w.settings.MaxDeltaTime {
		dt = 0
	}
	if !w.active {
		return res
	}
	w.tick++
	w.runTime += dt

	b := w.ball
	b.ApplyForce(dt, b.Mass()*w.settings.Gravity, mgl32.Vec2{0, -1})
	b.UpdatePosition(dt)

	latched := false
	for i, e := range w.entries {
		side, hit := e.Obstacle.CheckBallCollision(b, w.settings.UnitSize)
		if e.Obstacle.Resolve(b, side, hit) {
			w.contacts++
			res.Contacts = append(res.Contacts, ContactEvent{
				Index: i,
				Kind:  e.Obstacle.Kind(),
				Side:  side,
				COR:   e.Obstacle.COR(),
			})
		}
		if e.Obstacle.Latched() {
			latched = true
		}
	}

	for i, bag := range w.bags {
		if !bag.Collected && bag.Intersects(b, w.settings.UnitSize) {
			bag.Collect(b)
			res.Collected = append(res.Collected, i)
		}
		bag.advance(dt, w.settings.Size(), w.settings.UnitSize)
	}

	if outcome, over := w.terminated(latched); over {
		res.Ended = w.endRun(outcome)
	}
	return res
}

func (w *World) terminated(latched bool) (Outcome, bool) {
	b := w.ball
	size := w.settings.Size()
	if b.Midpoint[0] < 0 || b.Midpoint[0] > size || b.Midpoint[1] < 0 || b.Midpoint[1] > size {
		return OutcomeOutOfBounds, true
	}
	if latched && b.Speed() < w.settings.SettleSpeed {
		return OutcomeSettled, true
	}
	if w.settings.MaxRunTime > 0 && w.runTime >= w.settings.MaxRunTime {
		return OutcomeTimedOut, true
	}
	return 0, false
}

func (w *World) endRun(outcome Outcome) *RunReport {
	w.runs++
	collected := w.Collected()
	r := RunReport{
		Run:       w.runs,
		Outcome:   outcome,
		Duration:  w.runTime,
		Contacts:  w.contacts,
		Collected: collected,
		Needed:    w.needed,
		Money:     w.Money(),
		Completed: collected >= w.needed,
	}
	if r.Completed {
		w.completed = true
		w.ball.Reset(w.settings.Origin())
		w.active = false
		for _, e := range w.entries {
			e.Obstacle.ReleaseContact()
		}
	} else {
		w.resetRun()
	}
	if w.observer != nil {
		w.observer.RunEnded(r)
	}
	return &r
}

// Place puts g into the world, taking one item from the inventory.
// It returns the new obstacle's index.
func (w *World) Place(g Ghost) (int, error) {
	if w.active {
		return -1, ErrSimulationActive
	}
	size := w.settings.Size()
	if g.Center[0] < 0 || g.Center[0] > size || g.Center[1] < 0 || g.Center[1] > size {
		return -1, ErrOutsidePlayfield
	}
	spec, ok := w.settings.Items[g.Item]
	if !ok {
		return -1, fmt.Errorf("world: no spec for item %s", g.Item)
	}
	if err := w.inventory.Take(g.Item); err != nil {
		return -1, err
	}
	p := &Placed{Ghost: g, Obstacle: g.Build(spec, w.settings.UnitSize)}
	w.add(p.Obstacle, SourcePlaced, p)
	return len(w.entries) - 1, nil
}

// RemoveAt removes the placed object under pt whose centre is nearest to
// pt and refunds it. Overlapping objects at the same distance lose the
// most recently placed one first.
func (w *World) RemoveAt(pt mgl32.Vec2) (bool, error) {
	if w.active {
		return false, ErrSimulationActive
	}
	found := -1
	var nearest float32
	for i := len(w.entries) - 1; i >= 0; i-- {
		e := w.entries[i]
		if e.Placed == nil || !e.Placed.Contains(pt) {
			continue
		}
		if d := core.Distance(e.Obstacle.Center(), pt); found < 0 || d < nearest {
			found, nearest = i, d
		}
	}
	if found < 0 {
		return false, nil
	}
	item := w.entries[found].Placed.Ghost.Item
	w.entries = append(w.entries[:found], w.entries[found+1:]...)
	w.inventory.Give(item)
	return true, nil
}
