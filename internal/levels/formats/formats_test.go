package formats

import (
	"strings"
	"testing"
)

const sampleQL = `# comment
[Meta]
id = sample
name = Sample Level

[Tilemap]
1 0 h
0 z 0

[BouncyObjects]
(1,2) (3,2) 0.8 (1,0)
(4, 5) (4, 9) 0.95 (0.6,0.8) pad
(2,12) (6,12) 1 (1,0) booster 0.4

[Inventory]
(0,2)
(2,1)

[MoneyBags]
(2,6)
(2.5,11)

[MoneyBagsNeeded]
1
`

func TestParseQL(t *testing.T) {
	lvl, err := ParseQL([]byte(sampleQL))
	if err != nil {
		t.Fatalf("ParseQL() error = %v", err)
	}

	if lvl.ID != "sample" || lvl.Name != "Sample Level" {
		t.Errorf("ID/Name = %q/%q", lvl.ID, lvl.Name)
	}
	if len(lvl.Tilemap) != 2 || lvl.Tilemap[0][2] != 17 || lvl.Tilemap[1][1] != 35 {
		t.Errorf("Tilemap = %v", lvl.Tilemap)
	}
	if len(lvl.Obstacles) != 3 {
		t.Fatalf("got %d obstacles, want 3", len(lvl.Obstacles))
	}

	first := lvl.Obstacles[0]
	if first.Start != [2]float32{1, 2} || first.End != [2]float32{3, 2} || first.COR != 0.8 {
		t.Errorf("first obstacle = %+v", first)
	}
	if pad := lvl.Obstacles[1]; pad.Kind != "pad" || pad.Orientation != [2]float32{0.6, 0.8} {
		t.Errorf("second obstacle = %+v", pad)
	}
	if b := lvl.Obstacles[2]; b.Kind != "booster" || b.Boost != 0.4 {
		t.Errorf("third obstacle = %+v", b)
	}

	if lvl.Inventory["0"] != 2 || lvl.Inventory["2"] != 1 {
		t.Errorf("Inventory = %v", lvl.Inventory)
	}
	if len(lvl.MoneyBags) != 2 || lvl.MoneyBags[1] != [2]float32{2.5, 11} {
		t.Errorf("MoneyBags = %v", lvl.MoneyBags)
	}
	if lvl.Needed != 1 {
		t.Errorf("Needed = %d, want 1", lvl.Needed)
	}
}

func TestParseQLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad tile", "[Tilemap]\n1 ! 0\n", "line 2"},
		{"short obstacle", "[BouncyObjects]\n(1,2) 0.8 (1,0)\n", "expected"},
		{"bad cor", "[BouncyObjects]\n(1,2) (3,2) bouncy (1,0)\n", "cor"},
		{"bad needed", "[MoneyBagsNeeded]\nmany\n", "MoneyBagsNeeded"},
		{"negative needed", "[MoneyBagsNeeded]\n-1\n", "negative"},
		{"bad meta", "[Meta]\njust text\n", "key=value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQL([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseQL() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := `
id: y1
name: YAML level
tilemap:
  - "1 2 3"
obstacles:
  - start: [1, 2]
    end: [3, 2]
  - start: [4, 4]
    end: [4, 4]
    cor: 0.5
    kind: Pad
money_bags:
  - [2, 6]
needed: 1
inventory:
  pad: 2
`
	lvl, err := ParseYAML([]byte(data))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if lvl.ID != "y1" || len(lvl.Tilemap) != 1 || lvl.Tilemap[0][2] != 3 {
		t.Errorf("level = %+v", lvl)
	}
	if lvl.Obstacles[0].COR != defaultCOR {
		t.Errorf("missing cor should default to %v, got %v", defaultCOR, lvl.Obstacles[0].COR)
	}
	if lvl.Obstacles[1].COR != 0.5 || lvl.Obstacles[1].Kind != "pad" {
		t.Errorf("second obstacle = %+v", lvl.Obstacles[1])
	}
	if lvl.Inventory["pad"] != 2 || lvl.Needed != 1 {
		t.Errorf("inventory/needed = %v/%d", lvl.Inventory, lvl.Needed)
	}
}

func TestParseYAMLRejectsGarbage(t *testing.T) {
	if _, err := ParseYAML([]byte("id: [unterminated")); err == nil {
		t.Error("ParseYAML() should fail on invalid YAML")
	}
	if _, err := ParseYAML([]byte("needed: -2")); err == nil {
		t.Error("ParseYAML() should reject negative needed")
	}
}
