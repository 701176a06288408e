// Package physics implements the ball and the oriented rectangular obstacles
// it collides with. Everything here is plain data plus synchronous functions
// of (state, dt); the package performs no I/O.
package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/core"
)

// Ball is the kinematic body driven through the level.
// Midpoint is in the world frame (y down), Velocity in the physics frame (y up).
type Ball struct {
	Midpoint mgl32.Vec2
	Velocity mgl32.Vec2

	mass   float32
	radius float32
}

// NewBall creates a ball at rest.
func NewBall(mid mgl32.Vec2, mass, radius float32) (*Ball, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("physics: ball mass must be positive, got %v", mass)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("physics: ball radius must be positive, got %v", radius)
	}
	return &Ball{Midpoint: mid, mass: mass, radius: radius}, nil
}

// Mass returns the ball mass.
func (b *Ball) Mass() float32 { return b.mass }

// Radius returns the ball radius in world units.
func (b *Ball) Radius() float32 { return b.radius }

// SetRadius changes the ball radius. Non-positive values are ignored.
func (b *Ball) SetRadius(r float32) {
	if r > 0 {
		b.radius = r
	}
}

// Speed returns |Velocity|.
func (b *Ball) Speed() float32 {
	return b.Velocity.Len()
}

// Direction returns the unit direction of travel, or the zero vector at rest.
func (b *Ball) Direction() mgl32.Vec2 {
	d, _ := core.SafeNormalize(b.Velocity)
	return d
}

// ApplyForce accelerates the ball by force/mass along dir for dt seconds.
func (b *Ball) ApplyForce(dt, force float32, dir mgl32.Vec2) {
	a := force / b.mass
	b.Velocity = b.Velocity.Add(dir.Mul(a * dt))
}

// UpdatePosition integrates the midpoint. Positive Velocity.y moves the
// ball toward smaller rows.
func (b *Ball) UpdatePosition(dt float32) {
	b.Midpoint[0] += b.Velocity[0] * dt
	b.Midpoint[1] -= b.Velocity[1] * dt
}

// SetVelocity replaces the velocity.
func (b *Ball) SetVelocity(v mgl32.Vec2) {
	b.Velocity = v
}

// Reset moves the ball to mid and stops it.
func (b *Ball) Reset(mid mgl32.Vec2) {
	b.Midpoint = mid
	b.Velocity = mgl32.Vec2{}
}
