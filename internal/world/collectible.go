package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

// Money bag box half extents, in unit sizes.
const (
	bagHalfWidth  = 0.3
	bagHalfHeight = 0.5
)

// Falling bag motion, in world units.
const (
	bagLaunchSpeed = 200
	bagFallAccel   = 981
)

// MoneyBag is a collectible. Once collected it falls off the playfield.
type MoneyBag struct {
	Home      mgl32.Vec2 // world units
	Pos       mgl32.Vec2
	Value     int
	Collected bool

	vel     mgl32.Vec2 // physics frame
	falling bool
}

// NewMoneyBag places a bag at home.
func NewMoneyBag(home mgl32.Vec2, value int) *MoneyBag {
	return &MoneyBag{Home: home, Pos: home, Value: value}
}

// Intersects reports whether any of eight points spaced 45° apart on the
// ball's circumference lies inside the bag's box.
func (m *MoneyBag) Intersects(b *physics.Ball, unit float32) bool {
	hw, hh := bagHalfWidth*unit, bagHalfHeight*unit
	spoke := mgl32.Vec2{b.Radius(), 0}
	for i := 0; i < 8; i++ {
		p := b.Midpoint.Add(core.Rotate(spoke, float32(i)*45))
		if p[0] >= m.Pos[0]-hw && p[0] <= m.Pos[0]+hw &&
			p[1] >= m.Pos[1]-hh && p[1] <= m.Pos[1]+hh {
			return true
		}
	}
	return false
}

// Collect marks the bag collected and starts it falling in the ball's
// direction of travel.
func (m *MoneyBag) Collect(b *physics.Ball) {
	m.Collected = true
	m.falling = true
	m.vel = b.Direction().Mul(bagLaunchSpeed)
}

// Falling reports whether the bag is still animating.
func (m *MoneyBag) Falling() bool {
	return m.falling
}

// Visible reports whether the bag should be drawn.
func (m *MoneyBag) Visible() bool {
	return !m.Collected || m.falling
}

// advance moves a falling bag; it stops once below floorY.
func (m *MoneyBag) advance(dt, floorY, unit float32) {
	if !m.falling {
		return
	}
	m.vel[1] -= bagFallAccel * dt
	m.Pos[0] += m.vel[0] * dt
	m.Pos[1] -= m.vel[1] * dt
	if m.Pos[1] > floorY+bagHalfHeight*unit {
		m.falling = false
	}
}

// Reset puts the bag back where it started.
func (m *MoneyBag) Reset() {
	m.Pos = m.Home
	m.Collected = false
	m.falling = false
	m.vel = mgl32.Vec2{}
}
