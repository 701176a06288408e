package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-3

func approx(a, b float32) bool {
	return mgl32.Abs(a-b) <= eps
}

func TestNewBallRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		mass   float32
		radius float32
		ok     bool
	}{
		{"valid", 1, 10, true},
		{"zero mass", 0, 10, false},
		{"negative radius", 1, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBall(mgl32.Vec2{}, tt.mass, tt.radius)
			if (err == nil) != tt.ok {
				t.Errorf("NewBall() err = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestBallApplyForce(t *testing.T) {
	b, _ := NewBall(mgl32.Vec2{}, 2, 1)
	b.ApplyForce(0.5, 8, mgl32.Vec2{0, -1})

	// a = 8/2 = 4, Δv = 4·0.5 = 2
	if !b.Velocity.ApproxEqualThreshold(mgl32.Vec2{0, -2}, eps) {
		t.Errorf("Velocity = %v, want (0,-2)", b.Velocity)
	}
}

func TestBallUpdatePositionSignConvention(t *testing.T) {
	b, _ := NewBall(mgl32.Vec2{10, 10}, 1, 1)
	b.SetVelocity(mgl32.Vec2{4, 6})
	b.UpdatePosition(0.5)

	// Positive physics y moves toward smaller rows.
	want := mgl32.Vec2{12, 7}
	if !b.Midpoint.ApproxEqualThreshold(want, eps) {
		t.Errorf("Midpoint = %v, want %v", b.Midpoint, want)
	}
}

func TestBallDirection(t *testing.T) {
	b, _ := NewBall(mgl32.Vec2{}, 1, 1)
	if d := b.Direction(); d != (mgl32.Vec2{}) {
		t.Errorf("Direction() at rest = %v, want zero", d)
	}

	b.SetVelocity(mgl32.Vec2{3, 4})
	if !approx(b.Speed(), 5) {
		t.Errorf("Speed() = %v, want 5", b.Speed())
	}
	if !b.Direction().ApproxEqualThreshold(mgl32.Vec2{0.6, 0.8}, eps) {
		t.Errorf("Direction() = %v", b.Direction())
	}
}

func TestBallResetAndRadius(t *testing.T) {
	b, _ := NewBall(mgl32.Vec2{5, 5}, 1, 1)
	b.SetVelocity(mgl32.Vec2{1, 1})
	b.Reset(mgl32.Vec2{1, 2})

	if b.Midpoint != (mgl32.Vec2{1, 2}) || b.Velocity != (mgl32.Vec2{}) {
		t.Errorf("Reset() left %v / %v", b.Midpoint, b.Velocity)
	}

	b.SetRadius(3)
	b.SetRadius(0)
	if b.Radius() != 3 {
		t.Errorf("Radius() = %v, want 3", b.Radius())
	}
}
