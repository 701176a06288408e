package physics

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const unit = 40

func unitSquare(cor float32) *BouncyObject {
	return NewBouncyObject([4]mgl32.Vec2{
		{0, 0}, {unit, 0}, {unit, unit}, {0, unit},
	}, mgl32.Vec2{1, 0}, cor, KindWall)
}

func ballAt(x, y float32, v mgl32.Vec2) *Ball {
	b, _ := NewBall(mgl32.Vec2{x, y}, 1, 0.25*unit)
	b.SetVelocity(v)
	return b
}

func TestCheckBallCollisionSides(t *testing.T) {
	tests := []struct {
		name string
		x, y float32
		v    mgl32.Vec2
		want Side
		hit  bool
	}{
		{"above top", 20, -8, mgl32.Vec2{0, -20}, SideTop, true},
		{"right of right", 48, 20, mgl32.Vec2{-20, 0}, SideRight, true},
		{"below bottom", 20, 48, mgl32.Vec2{0, 20}, SideBottom, true},
		{"left of left", -8, 20, mgl32.Vec2{20, 0}, SideLeft, true},
		{"clear above", 20, -30, mgl32.Vec2{0, -20}, 0, false},
		{"beside the top line", 80, -8, mgl32.Vec2{0, -20}, 0, false},
	}
	o := unitSquare(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := o.CheckBallCollision(ballAt(tt.x, tt.y, tt.v), unit)
			if hit != tt.hit || (hit && got != tt.want) {
				t.Errorf("CheckBallCollision() = %v,%v want %v,%v", got, hit, tt.want, tt.hit)
			}
		})
	}
}

func TestBounceTopScenario(t *testing.T) {
	o := unitSquare(0.8)
	b := ballAt(0.5*unit, -0.2*unit, mgl32.Vec2{0, -20})

	side, hit := o.CheckBallCollision(b, unit)
	if !hit || side != SideTop {
		t.Fatalf("CheckBallCollision() = %v,%v want top", side, hit)
	}
	if !o.Resolve(b, side, hit) {
		t.Fatal("Resolve() did not bounce")
	}
	if !b.Velocity.ApproxEqualThreshold(mgl32.Vec2{0, 16}, eps) {
		t.Errorf("Velocity = %v, want (0,16)", b.Velocity)
	}
	if s, ok := o.Contact().Side(); !ok || s != SideTop {
		t.Errorf("Contact() = %v, want touching top", o.Contact())
	}
}

func TestBounceSymmetry(t *testing.T) {
	tests := []struct {
		side Side
		in   mgl32.Vec2
		want mgl32.Vec2
	}{
		{SideTop, mgl32.Vec2{0, -10}, mgl32.Vec2{0, 10}},
		{SideLeft, mgl32.Vec2{10, 0}, mgl32.Vec2{-10, 0}},
		{SideRight, mgl32.Vec2{-10, 0}, mgl32.Vec2{10, 0}},
		{SideBottom, mgl32.Vec2{0, 10}, mgl32.Vec2{0, -10}},
		{SideTop, mgl32.Vec2{3, -4}, mgl32.Vec2{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			o := unitSquare(1)
			b := ballAt(0, 0, tt.in)
			o.Bounce(b, tt.side)
			if !b.Velocity.ApproxEqualThreshold(tt.want, eps) {
				t.Errorf("Bounce(%v) = %v, want %v", tt.side, b.Velocity, tt.want)
			}
		})
	}
}

func TestBounceNeverCreatesEnergy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		cor := rng.Float32()
		deg := rng.Float32()*360 - 180
		o := NewRotatedBox(mgl32.Vec2{}, unit, unit/4, deg, cor, KindWall)
		v := mgl32.Vec2{rng.Float32()*400 - 200, rng.Float32()*400 - 200}
		for s := SideTop; s <= SideLeft; s++ {
			b := ballAt(0, 0, v)
			before := b.Speed()
			o.Bounce(b, s)
			if b.Speed() > cor*before+eps*before {
				t.Fatalf("side %v cor %v: speed %v -> %v", s, cor, before, b.Speed())
			}
		}
	}
}

func TestBounceAtRestIsNoop(t *testing.T) {
	o := unitSquare(0.8)
	b := ballAt(20, -8, mgl32.Vec2{})
	o.Bounce(b, SideTop)
	if b.Velocity != (mgl32.Vec2{}) {
		t.Errorf("Velocity = %v, want zero", b.Velocity)
	}
	if !o.Latched() {
		t.Error("Bounce() at rest should still latch")
	}
}

func TestBounceOffSlopedPlank(t *testing.T) {
	// Right end lower than left: a falling ball is sent to the right.
	o := NewRotatedBox(mgl32.Vec2{0, 0}, 2*unit, unit/4, 45, 1, KindWall)
	b := ballAt(0, 0, mgl32.Vec2{0, -10})
	o.Bounce(b, SideTop)
	if !b.Velocity.ApproxEqualThreshold(mgl32.Vec2{10, 0}, eps) {
		t.Errorf("Velocity = %v, want (10,0)", b.Velocity)
	}
}

func TestResolveLatch(t *testing.T) {
	o := unitSquare(0.8)
	b := ballAt(20, -8, mgl32.Vec2{0, -5})

	bounces := 0
	for i := 0; i < 30; i++ {
		// Hold the ball in contact, moving slowly.
		b.Midpoint = mgl32.Vec2{20, -8}
		side, hit := o.CheckBallCollision(b, unit)
		if o.Resolve(b, side, hit) {
			bounces++
		}
	}
	if bounces != 1 {
		t.Fatalf("bounced %d times during one contact, want 1", bounces)
	}

	b.Midpoint = mgl32.Vec2{20, -40}
	side, hit := o.CheckBallCollision(b, unit)
	o.Resolve(b, side, hit)
	if o.Latched() {
		t.Fatal("latch should clear once the ball is clear")
	}

	b.Midpoint = mgl32.Vec2{20, -8}
	side, hit = o.CheckBallCollision(b, unit)
	if !o.Resolve(b, side, hit) {
		t.Error("re-entering contact should bounce again")
	}
}

func TestResolveSideChangeBouncesAgain(t *testing.T) {
	o := unitSquare(1)
	b := ballAt(0, 0, mgl32.Vec2{0, -10})
	o.Resolve(b, SideTop, true)
	if !o.Resolve(b, SideLeft, true) {
		t.Error("contact moving to another side should bounce")
	}
}

func TestCornerDeterminism(t *testing.T) {
	o := unitSquare(1)
	// Equidistant from top and left, travelling along the bisector.
	v := mgl32.Vec2{10, -10}

	first, hit := o.CheckBallCollision(ballAt(-7, -7, v), unit)
	if !hit {
		t.Fatal("corner contact not detected")
	}
	// The rewound centre is equidistant from both lines; the tie keeps top.
	if first != SideTop {
		t.Fatalf("corner resolved to %v, want top", first)
	}
	for i := 0; i < 50; i++ {
		got, _ := o.CheckBallCollision(ballAt(-7, -7, v), unit)
		if got != first {
			t.Fatalf("call %d resolved to %v, first was %v", i, got, first)
		}
	}
}

func TestCornerResolvesToNearerLineAfterRewind(t *testing.T) {
	tests := []struct {
		name string
		x, y float32
		v    mgl32.Vec2
		want Side
	}{
		// Rewound centre (-5.1,-10): 5.1 from the left line, 10 from the top line.
		{"steep fall past the corner", -5, -8, mgl32.Vec2{2, -40}, SideLeft},
		// Rewound centre (-10,-5.1): 5.1 from the top line, 10 from the left line.
		{"flat approach past the corner", -8, -5, mgl32.Vec2{40, -2}, SideTop},
	}
	o := unitSquare(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := o.CheckBallCollision(ballAt(tt.x, tt.y, tt.v), unit)
			if !hit || got != tt.want {
				t.Errorf("CheckBallCollision() = %v,%v want %v", got, hit, tt.want)
			}
		})
	}
}

func TestDegenerateObstacle(t *testing.T) {
	var pts [4]mgl32.Vec2
	o := NewBouncyObject(pts, mgl32.Vec2{}, 2, KindPad)
	if o.COR() != 1 {
		t.Errorf("COR() = %v, want clamped to 1", o.COR())
	}
	if o.Orientation() != (mgl32.Vec2{1, 0}) {
		t.Errorf("Orientation() = %v, want (1,0)", o.Orientation())
	}
	if _, hit := o.CheckBallCollision(ballAt(0, 0, mgl32.Vec2{1, 1}), unit); hit {
		t.Error("zero-size obstacle should never collide")
	}
}

func TestRotatedBoxPoints(t *testing.T) {
	pts, o := RotatedBoxPoints(mgl32.Vec2{0, 0}, 2, 1, 90)
	if !pts[0].ApproxEqualThreshold(mgl32.Vec2{0.5, -1}, eps) {
		t.Errorf("top-left = %v, want (0.5,-1)", pts[0])
	}
	if !o.ApproxEqualThreshold(mgl32.Vec2{0, -1}, eps) {
		t.Errorf("orientation = %v, want (0,-1)", o)
	}
}
