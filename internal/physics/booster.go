package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Booster is a rectangle that speeds the ball up along its orientation
// instead of reflecting it.
type Booster struct {
	*BouncyObject

	boostExtra float32
	boosted    bool
}

// NewBooster builds a booster from its corners. boostExtra is the fraction
// of the current speed added on contact.
func NewBooster(points [4]mgl32.Vec2, orientation mgl32.Vec2, boostExtra float32) *Booster {
	return &Booster{
		BouncyObject: NewBouncyObject(points, orientation, 1, KindBooster),
		boostExtra:   boostExtra,
	}
}

// NewRotatedBooster builds a w×h booster centred on c, turned by degrees.
func NewRotatedBooster(c mgl32.Vec2, w, h, degrees, boostExtra float32) *Booster {
	pts, o := RotatedBoxPoints(c, w, h, degrees)
	return NewBooster(pts, o, boostExtra)
}

// BoostExtra returns the fraction of speed added per boost.
func (bo *Booster) BoostExtra() float32 { return bo.boostExtra }

// Boosted reports whether the booster is latched.
func (bo *Booster) Boosted() bool { return bo.boosted }

// Latched reports whether the booster is latched.
func (bo *Booster) Latched() bool { return bo.boosted }

// ReleaseContact clears the latch.
func (bo *Booster) ReleaseContact() { bo.boosted = false }

// Boost adds boostExtra·speed along the orientation, once per contact.
func (bo *Booster) Boost(b *Ball) bool {
	if bo.boosted {
		return false
	}
	bo.boosted = true
	speed := b.Speed()
	b.SetVelocity(b.Velocity.Add(bo.orientation.Mul(bo.boostExtra * speed)))
	return true
}

// Resolve boosts on first contact and releases once the ball is clear.
func (bo *Booster) Resolve(b *Ball, _ Side, hit bool) bool {
	if !hit {
		bo.boosted = false
		return false
	}
	return bo.Boost(b)
}
