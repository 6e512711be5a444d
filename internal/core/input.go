package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Button identifies a pointer button. Each button is bound to one launcher:
// left button fires the left launcher, middle the center, right the right.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	default:
		return "None"
	}
}

// Pointer is the continuous pointer position in screen cells.
// Valid is false until the first motion event arrives.
type Pointer struct {
	X, Y  int
	Valid bool
}

// FireEvent is a discrete pointer-button press at a screen cell.
// The game translates the cell to field units and fires the launcher
// bound to the button toward it.
type FireEvent struct {
	Button Button
	X, Y   int
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions and fire events triggered during this frame, plus
// the latest pointer position, which persists across frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the most recent pointer position.
	Pointer Pointer

	// Fires lists pointer-button presses received this frame, in order.
	Fires []FireEvent
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

// SetPointer updates the pointer position.
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
}

// AddFire records a pointer-button press at the given cell.
func (f *InputFrame) AddFire(b Button, x, y int) {
	f.Fires = append(f.Fires, FireEvent{Button: b, X: x, Y: y})
}

// Clear resets actions and fire events for the next frame.
// The pointer position is kept: it is state, not an event.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Fires = f.Fires[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Fires = append(clone.Fires, f.Fires...)
	return clone
}
