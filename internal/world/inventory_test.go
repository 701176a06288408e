package world

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInventoryTakeGive(t *testing.T) {
	inv := NewInventory(map[Item]int{ItemPlank: 1, ItemPad: 2, ItemBooster: -4})

	if got := inv.Items(); len(got) != 3 || got[0] != ItemPad || got[2] != ItemPlank {
		t.Errorf("Items() = %v, want id order", got)
	}
	if inv.Count(ItemBooster) != 0 {
		t.Errorf("negative count should clamp to 0, got %d", inv.Count(ItemBooster))
	}
	if err := inv.Take(ItemBooster); !errors.Is(err, ErrOutOfStock) {
		t.Errorf("Take() error = %v, want ErrOutOfStock", err)
	}
	if err := inv.Take(ItemPad); err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	inv.Give(ItemBooster)
	if inv.Total() != 3 {
		t.Errorf("Total() = %d, want 3", inv.Total())
	}
}

func TestParseItem(t *testing.T) {
	tests := []struct {
		in      string
		want    Item
		wantErr bool
	}{
		{"pad", ItemPad, false},
		{" Booster ", ItemBooster, false},
		{"2", ItemPlank, false},
		{"0", ItemPad, false},
		{"9", 0, true},
		{"trampoline", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseItem(tt.in)
		if (err != nil) != tt.wantErr || (!tt.wantErr && got != tt.want) {
			t.Errorf("ParseItem(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestGhostRotate(t *testing.T) {
	tests := []struct {
		name   string
		dir    int
		fine   bool
		coarse bool
		want   float32
	}{
		{"clockwise", 1, false, false, 1},
		{"counter-clockwise wraps", -1, false, false, 359},
		{"fine", 1, true, false, 0.2},
		{"coarse", 1, false, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Ghost
			g.Rotate(tt.dir, tt.fine, tt.coarse)
			if mgl32.Abs(g.Rotation-tt.want) > 1e-4 {
				t.Errorf("Rotation = %v, want %v", g.Rotation, tt.want)
			}
		})
	}
}

func TestObstacleSpecBuild(t *testing.T) {
	spec := ObstacleSpec{Start: mgl32.Vec2{3, 4}, End: mgl32.Vec2{5, 4}, COR: 0.8}
	o := spec.Build(40)
	pts := o.Points()
	if pts[0] != (mgl32.Vec2{100, 140}) || pts[2] != (mgl32.Vec2{220, 180}) {
		t.Errorf("Points() = %v", pts)
	}
	if o.Orientation() != (mgl32.Vec2{1, 0}) {
		t.Errorf("Orientation() = %v, want (1,0)", o.Orientation())
	}
}

func TestMoneyBagIntersects(t *testing.T) {
	bag := NewMoneyBag(mgl32.Vec2{100, 100}, 100)
	tests := []struct {
		name string
		mid  mgl32.Vec2
		want bool
	}{
		{"overlapping", mgl32.Vec2{100, 100}, true},
		{"touching from the left", mgl32.Vec2{80, 100}, true},
		{"far away", mgl32.Vec2{200, 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(t, tt.mid)
			if got := bag.Intersects(b, 40); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}
