package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows game logic to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - start game / confirm selection
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
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

// InputFrame represents the input state for a single simulation tick.
// The platform layer maps raw terminal events into this form once per tick;
// game logic never sees raw key or mouse events.
//
// Click is edge-triggered: it is set only on the tick the primary pointer
// button went down, never while the button is held.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the pointer position in world coordinates.
	Pointer Vec2

	// Click reports a primary-button press that happened this frame.
	Click bool
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

// Has reports whether the action was triggered this frame.
func (f *InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetClick records an edge-triggered primary-button press at the given position.
func (f *InputFrame) SetClick(pos Vec2) {
	f.Pointer = pos
	f.Click = true
}

// MovePointer updates the pointer position without registering a click.
func (f *InputFrame) MovePointer(pos Vec2) {
	f.Pointer = pos
}

// Clear resets the frame for the next tick. The pointer position is kept so
// the game always knows where the pointer last was; actions and the click
// edge are consumed.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = false
}
