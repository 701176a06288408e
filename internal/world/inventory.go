package world

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

// Item is a placeable object from the inventory.
// The numeric values are the ids used in .ql level files.
type Item int

const (
	ItemPad Item = iota
	ItemBooster
	ItemPlank
)

var itemNames = map[Item]string{
	ItemPad:     "pad",
	ItemBooster: "booster",
	ItemPlank:   "plank",
}

func (i Item) String() string {
	if n, ok := itemNames[i]; ok {
		return n
	}
	return "item" + strconv.Itoa(int(i))
}

// ParseItem accepts an item name or its numeric id.
func ParseItem(s string) (Item, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for it, n := range itemNames {
		if n == s {
			return it, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := itemNames[Item(n)]; ok {
			return Item(n), nil
		}
	}
	return 0, fmt.Errorf("world: unknown item %q", s)
}

// ItemSpec describes what a placed item turns into.
type ItemSpec struct {
	SizeTiles  mgl32.Vec2
	COR        float32
	Kind       physics.Kind
	BoostExtra float32
}

// DefaultItems returns the built-in item table.
func DefaultItems() map[Item]ItemSpec {
	return map[Item]ItemSpec{
		ItemPad:     {SizeTiles: mgl32.Vec2{2, 0.5}, COR: 0.95, Kind: physics.KindPad},
		ItemBooster: {SizeTiles: mgl32.Vec2{2, 0.5}, Kind: physics.KindBooster, BoostExtra: 0.5},
		ItemPlank:   {SizeTiles: mgl32.Vec2{3, 0.25}, COR: 0.8, Kind: physics.KindWall},
	}
}

// ErrOutOfStock is returned when taking an item whose count is zero.
var ErrOutOfStock = errors.New("world: item out of stock")

// Inventory counts the items the player may still place.
type Inventory struct {
	counts map[Item]int
}

// NewInventory copies counts into a new inventory. Negative counts become 0.
func NewInventory(counts map[Item]int) *Inventory {
	inv := &Inventory{counts: make(map[Item]int, len(counts))}
	for it, n := range counts {
		inv.counts[it] = max(n, 0)
	}
	return inv
}

// Items returns every item the inventory knows about, in id order,
// including those with a count of zero.
func (inv *Inventory) Items() []Item {
	items := make([]Item, 0, len(inv.counts))
	for it := range inv.counts {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// Count returns how many of it are left.
func (inv *Inventory) Count(it Item) int {
	return inv.counts[it]
}

// Take removes one of it.
func (inv *Inventory) Take(it Item) error {
	if inv.counts[it] <= 0 {
		return fmt.Errorf("%w: %s", ErrOutOfStock, it)
	}
	inv.counts[it]--
	return nil
}

// Give returns one of it to the inventory.
func (inv *Inventory) Give(it Item) {
	inv.counts[it]++
}

// Total returns the number of items left across all kinds.
func (inv *Inventory) Total() int {
	n := 0
	for _, c := range inv.counts {
		n += c
	}
	return n
}
