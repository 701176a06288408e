package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/core"
)

// BouncyObject is an oriented rectangle that reflects the ball.
type BouncyObject struct {
	points      [4]mgl32.Vec2 // world frame, wound TL, TR, BR, BL
	orientation mgl32.Vec2    // physics frame, unit length
	cor         float32
	kind        Kind
	contact     ContactState
	tuning      Tuning
}

// NewBouncyObject builds an obstacle from its corners.
// A zero orientation falls back to (1, 0); cor is clamped to [0, 1].
func NewBouncyObject(points [4]mgl32.Vec2, orientation mgl32.Vec2, cor float32, kind Kind) *BouncyObject {
	o, ok := core.SafeNormalize(orientation)
	if !ok {
		o = mgl32.Vec2{1, 0}
	}
	return &BouncyObject{
		points:      points,
		orientation: o,
		cor:         core.ClampF(cor, 0, 1),
		kind:        kind,
		tuning:      DefaultTuning(),
	}
}

// BoxPoints returns the corners of the axis-aligned box spanned by a and b.
func BoxPoints(a, b mgl32.Vec2) [4]mgl32.Vec2 {
	minX, maxX := min(a[0], b[0]), max(a[0], b[0])
	minY, maxY := min(a[1], b[1]), max(a[1], b[1])
	return [4]mgl32.Vec2{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}
}

// RotatedBoxPoints returns the corners of a w×h box centred on c and turned
// clockwise on screen by degrees, along with its physics-frame orientation.
func RotatedBoxPoints(c mgl32.Vec2, w, h, degrees float32) ([4]mgl32.Vec2, mgl32.Vec2) {
	rot := mgl32.Rotate2D(mgl32.DegToRad(degrees))
	hw, hh := w/2, h/2
	local := [4]mgl32.Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var pts [4]mgl32.Vec2
	for i, p := range local {
		pts[i] = c.Add(rot.Mul2x1(p))
	}
	right := rot.Mul2x1(mgl32.Vec2{1, 0})
	return pts, core.ToPhysics(right)
}

// NewBox builds an unrotated obstacle spanning a and b.
func NewBox(a, b mgl32.Vec2, cor float32, kind Kind) *BouncyObject {
	return NewBouncyObject(BoxPoints(a, b), mgl32.Vec2{1, 0}, cor, kind)
}

// NewRotatedBox builds a w×h obstacle centred on c, turned by degrees.
func NewRotatedBox(c mgl32.Vec2, w, h, degrees, cor float32, kind Kind) *BouncyObject {
	pts, o := RotatedBoxPoints(c, w, h, degrees)
	return NewBouncyObject(pts, o, cor, kind)
}

// Kind reports what sort of surface the object is.
func (o *BouncyObject) Kind() Kind { return o.kind }

// COR returns the coefficient of restitution.
func (o *BouncyObject) COR() float32 { return o.cor }

// Points returns the corners in top-left, top-right, bottom-right, bottom-left order.
func (o *BouncyObject) Points() [4]mgl32.Vec2 { return o.points }

// Orientation returns the unit reference vector the side axes derive from.
func (o *BouncyObject) Orientation() mgl32.Vec2 { return o.orientation }

// Contact returns the current latch.
func (o *BouncyObject) Contact() ContactState { return o.contact }

// Latched reports whether a contact is held.
func (o *BouncyObject) Latched() bool { return o.contact.IsTouching() }

// ReleaseContact clears the latch.
func (o *BouncyObject) ReleaseContact() { o.contact = NotTouching() }

// SetTuning replaces the corner heuristics.
func (o *BouncyObject) SetTuning(t Tuning) { o.tuning = t }

// Center returns the mean of the four corners.
func (o *BouncyObject) Center() mgl32.Vec2 {
	var c mgl32.Vec2
	for _, p := range o.points {
		c = c.Add(p)
	}
	return c.Mul(0.25)
}

// ReflectionAxis returns the physics-frame axis the ball is mirrored about
// when it bounces off side s.
func (o *BouncyObject) ReflectionAxis(s Side) mgl32.Vec2 {
	return core.Rotate(o.orientation, s.AxisRotation())
}

// Bounce reflects the ball off side s and latches the contact.
// A ball at rest is left untouched.
func (o *BouncyObject) Bounce(b *Ball, s Side) {
	o.contact = Touching(s)
	if b.Speed() == 0 {
		return
	}
	inv := b.Velocity.Mul(-1)
	axis := o.ReflectionAxis(s)
	angle := core.SignedAngle(inv, axis)
	out := mgl32.Rotate2D(2 * angle).Mul2x1(inv)
	b.SetVelocity(out.Mul(o.cor))
}

// Resolve bounces on a new contact or on a contact that moved to another
// side, and releases the latch once the ball is clear.
func (o *BouncyObject) Resolve(b *Ball, s Side, hit bool) bool {
	if !hit {
		o.contact = NotTouching()
		return false
	}
	if latched, ok := o.contact.Side(); ok && latched == s {
		return false
	}
	o.Bounce(b, s)
	return true
}
