package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow - move build cursor up
	ActionDown                // S, Down arrow - move build cursor down
	ActionLeft                // A, Left arrow - move build cursor left
	ActionRight               // D, Right arrow - move build cursor right
	ActionRun                 // Space - launch / stop the ball
	ActionPlace               // Enter - place the selected item at the cursor
	ActionRemove              // X, Backspace - remove a placed item under the cursor
	ActionNextItem            // Tab - cycle inventory selection
	ActionRotateLeft          // R - rotate ghost counter-clockwise
	ActionRotateRight         // T - rotate ghost clockwise
	ActionRotateFine          // Shift modifier - rotate in fifths
	ActionRotateCoarse        // Ctrl modifier - rotate three times faster
	ActionConfirm             // Enter in menus
	ActionBack                // B, Escape - go back to menu
	ActionRestart             // Ctrl+R - reload the level
	ActionQuit                // Q, Ctrl+C - exit game/session
	ActionPause               // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRun:
		return "Run"
	case ActionPlace:
		return "Place"
	case ActionRemove:
		return "Remove"
	case ActionNextItem:
		return "NextItem"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionRotateFine:
		return "RotateFine"
	case ActionRotateCoarse:
		return "RotateCoarse"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one frame.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
