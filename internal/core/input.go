package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionTiltLeft         // A, Left arrow
	ActionTiltRight        // D, Right arrow
	ActionTiltUp           // W, Up arrow
	ActionTiltDown         // S, Down arrow
	ActionLevel            // Space - flatten the board
	ActionConfirm          // Enter
	ActionBack             // B, Escape
	ActionRestart          // R
	ActionPause            // P
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTiltLeft:
		return "TiltLeft"
	case ActionTiltRight:
		return "TiltRight"
	case ActionTiltUp:
		return "TiltUp"
	case ActionTiltDown:
		return "TiltDown"
	case ActionLevel:
		return "Level"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsTilt reports whether a nudges the board.
func (a Action) IsTilt() bool {
	return a >= ActionTiltLeft && a <= ActionTiltDown
}

// InputFrame collects the actions triggered between two frames.
// Repeated presses are counted so fast key repeat tilts further.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]int)}
}

// Set records one press of a.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a] > 0
}

// Count returns how many times a was pressed this frame.
func (f InputFrame) Count(a Action) int {
	return f.Actions[a]
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
