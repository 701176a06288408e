package physics

// Side identifies one edge of a rectangle. Edge i runs from corner i to
// corner (i+1)%4 with corners wound top-left, top-right, bottom-right,
// bottom-left.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

const sideCount = 4

// sideAxisRotation maps a side to the rotation (degrees, counter-clockwise)
// applied to the object's orientation to obtain that side's reflection axis.
var sideAxisRotation = [sideCount]float32{
	SideTop:    90,
	SideRight:  0,
	SideBottom: -90,
	SideLeft:   -180,
}

// Valid reports whether s names one of the four edges.
func (s Side) Valid() bool {
	return s >= SideTop && s <= SideLeft
}

// AxisRotation returns the rotation offset for the side's reflection axis.
func (s Side) AxisRotation() float32 {
	if !s.Valid() {
		return 0
	}
	return sideAxisRotation[s]
}

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "invalid"
	}
}

// ContactState is the per-obstacle debounce latch.
// The zero value is NotTouching.
type ContactState struct {
	touching bool
	side     Side
}

// NotTouching returns the released latch.
func NotTouching() ContactState {
	return ContactState{}
}

// Touching returns a latch held on side s.
func Touching(s Side) ContactState {
	return ContactState{touching: true, side: s}
}

// IsTouching reports whether the latch is held.
func (c ContactState) IsTouching() bool {
	return c.touching
}

// Side returns the latched side and whether the latch is held.
func (c ContactState) Side() (Side, bool) {
	return c.side, c.touching
}

func (c ContactState) String() string {
	if !c.touching {
		return "not touching"
	}
	return "touching " + c.side.String()
}
