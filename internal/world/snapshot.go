package world

import (
	"math"
)

// Snapshot is the world state flattened to integers for determinism checks
// and run logs. Positions and velocities are stored in thousandths.
type Snapshot struct {
	Tick      uint64
	Runs      int
	Active    bool
	Completed bool
	BallX     int
	BallY     int
	BallVX    int
	BallVY    int

	// One entry per obstacle: 1 when latched.
	Latches []int

	// Each bag is 3 ints: X, Y, Collected.
	BagData []int

	Inventory []int // count per item in id order
}

func milli(v float32) int {
	return int(math.Round(float64(v) * 1000))
}

// Snapshot captures the current state.
func (w *World) Snapshot() Snapshot {
	latches := make([]int, len(w.entries))
	for i, e := range w.entries {
		if e.Obstacle.Latched() {
			latches[i] = 1
		}
	}

	bagData := make([]int, len(w.bags)*3)
	for i, b := range w.bags {
		idx := i * 3
		bagData[idx] = milli(b.Pos[0])
		bagData[idx+1] = milli(b.Pos[1])
		if b.Collected {
			bagData[idx+2] = 1
		}
	}

	items := w.inventory.Items()
	inv := make([]int, len(items))
	for i, it := range items {
		inv[i] = w.inventory.Count(it)
	}

	return Snapshot{
		Tick:      w.tick,
		Runs:      w.runs,
		Active:    w.active,
		Completed: w.completed,
		BallX:     milli(w.ball.Midpoint[0]),
		BallY:     milli(w.ball.Midpoint[1]),
		BallVX:    milli(w.ball.Velocity[0]),
		BallVY:    milli(w.ball.Velocity[1]),
		Latches:   latches,
		BagData:   bagData,
		Inventory: inv,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Runs) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Active)
	h = h*31 + boolBit(snap.Completed)
	h = h*31 + uint64(snap.BallX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY) //#nosec G115 -- hash computation

	for _, v := range snap.Latches {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BagData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Inventory {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
