package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ricochet/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
		quit bool
	}{
		{"space runs", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionRun}, false},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionPlace, core.ActionConfirm}, false},
		{"fine rotate", runeKey('T'), []core.Action{core.ActionRotateRight, core.ActionRotateFine}, false},
		{"coarse rotate", runeKey('['), []core.Action{core.ActionRotateLeft, core.ActionRotateCoarse}, false},
		{"restart", tea.KeyMsg{Type: tea.KeyCtrlR}, []core.Action{core.ActionRestart}, false},
		{"quit", runeKey('q'), []core.Action{core.ActionQuit}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if quit := km.MapKeyToFrame(tt.msg, &frame); quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("%q: missing %s", tt.msg.String(), a)
				}
			}
			if len(frame.Actions) != len(tt.want) {
				t.Errorf("%q: got %d actions, want %d", tt.msg.String(), len(frame.Actions), len(tt.want))
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(runeKey('j')); got != MenuActionDown {
		t.Errorf("j = %v, want down", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(runeKey('z')); got != MenuActionNone {
		t.Errorf("z = %v, want none", got)
	}
}

func TestFrameDelta(t *testing.T) {
	now := time.Now()
	if got := frameDelta(time.Time{}, now, 50); got != 0.02 {
		t.Errorf("first frame dt = %v, want 0.02", got)
	}
	if got := frameDelta(now, now.Add(25*time.Millisecond), 60); got < 0.0249 || got > 0.0251 {
		t.Errorf("dt = %v, want 0.025", got)
	}
	if got := frameDelta(now, now.Add(-time.Second), 60); got <= 0 {
		t.Errorf("backwards clock dt = %v, want nominal", got)
	}
}
