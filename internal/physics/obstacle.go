package physics

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags what an obstacle is, independent of its restitution.
// Sounds and rendering key off Kind, never off COR.
type Kind int

const (
	KindWall Kind = iota
	KindPad
	KindBooster
)

// String returns the kind name used in level files and logs.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPad:
		return "pad"
	case KindBooster:
		return "booster"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name as written by String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wall", "plank", "":
		return KindWall, nil
	case "pad":
		return KindPad, nil
	case "booster":
		return KindBooster, nil
	default:
		return KindWall, fmt.Errorf("physics: unknown obstacle kind %q", s)
	}
}

// Tuning holds the thresholds of the corner heuristic.
type Tuning struct {
	// CornerTolerance is the largest difference, in unit sizes, between the
	// distances to two adjacent edges for the contact to count as a corner hit.
	CornerTolerance float32
	// CornerRewind is subtracted from the smallest edge distance to get the
	// distance the ball is stepped back before choosing a side.
	CornerRewind float32
}

// DefaultTuning returns the thresholds the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		CornerTolerance: 0.1,
		CornerRewind:    3,
	}
}

// Obstacle is anything the world checks the ball against every step.
type Obstacle interface {
	Kind() Kind
	COR() float32
	Points() [4]mgl32.Vec2
	Orientation() mgl32.Vec2
	Center() mgl32.Vec2

	// CheckBallCollision returns the side the ball is touching, if any.
	CheckBallCollision(b *Ball, unitSize float32) (Side, bool)
	// Resolve advances the contact latch with this step's collision result
	// and applies the response. It reports whether the ball was affected.
	Resolve(b *Ball, side Side, hit bool) bool
	// Latched reports whether the obstacle currently holds a contact.
	Latched() bool
	// ReleaseContact clears the latch.
	ReleaseContact()
	SetTuning(t Tuning)
}

var (
	_ Obstacle = (*BouncyObject)(nil)
	_ Obstacle = (*Booster)(nil)
)
