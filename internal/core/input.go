package core

// Action represents a semantic simulation action, abstracted from physical
// key presses and mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - send the emitter up
	ActionDown           // Down arrow - send the emitter down
	ActionLeft           // Left arrow - send the emitter left
	ActionRight          // Right arrow - send the emitter right
	ActionPlace          // Left click - move the emitter to InputFrame.Pointer
	ActionAim            // A - aim the rays at the arena corners
	ActionFan            // F - restore the evenly spaced fan
	ActionAddWall        // N - append a random wall
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - rebuild the arena with a new seed
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Space - pause/unpause
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
	case ActionPlace:
		return "Place"
	case ActionAim:
		return "Aim"
	case ActionFan:
		return "Fan"
	case ActionAddWall:
		return "AddWall"
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

// Pointer is a screen cell selected by the mouse.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Pointer is the last clicked cell; set together with ActionPlace.
	Pointer *Pointer
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

// Place records a click at cell (x, y). A later click in the same frame wins.
func (f *InputFrame) Place(x, y int) {
	f.Set(ActionPlace)
	f.Pointer = &Pointer{X: x, Y: y}
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
	f.Pointer = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
