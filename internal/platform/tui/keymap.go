package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ricochet/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions. One key may produce
// several actions, e.g. a modified rotation. isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	case "w", "up":
		return []core.Action{core.ActionUp}, false
	case "s", "down":
		return []core.Action{core.ActionDown}, false
	case "a", "left":
		return []core.Action{core.ActionLeft}, false
	case "d", "right":
		return []core.Action{core.ActionRight}, false
	case " ":
		return []core.Action{core.ActionRun}, false
	case "enter":
		return []core.Action{core.ActionPlace, core.ActionConfirm}, false
	case "x", "backspace", "delete":
		return []core.Action{core.ActionRemove}, false
	case "tab":
		return []core.Action{core.ActionNextItem}, false
	case "r":
		return []core.Action{core.ActionRotateLeft}, false
	case "t":
		return []core.Action{core.ActionRotateRight}, false
	case "R":
		return []core.Action{core.ActionRotateLeft, core.ActionRotateFine}, false
	case "T":
		return []core.Action{core.ActionRotateRight, core.ActionRotateFine}, false
	case "[":
		return []core.Action{core.ActionRotateLeft, core.ActionRotateCoarse}, false
	case "]":
		return []core.Action{core.ActionRotateRight, core.ActionRotateCoarse}, false
	case "ctrl+r":
		return []core.Action{core.ActionRestart}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
