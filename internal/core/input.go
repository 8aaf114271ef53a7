package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionColor1        // 1, h - first palette color
	ActionColor2        // 2, j - second palette color
	ActionColor3        // 3, k - third palette color
	ActionColor4        // 4, l - fourth palette color
	ActionStart         // Space, Enter, R - start or restart a round
	ActionQuit          // Q, Ctrl+C - exit
)

// ColorActions lists the color selection actions in palette order.
var ColorActions = [...]Action{ActionColor1, ActionColor2, ActionColor3, ActionColor4}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionColor1:
		return "Color1"
	case ActionColor2:
		return "Color2"
	case ActionColor3:
		return "Color3"
	case ActionColor4:
		return "Color4"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single frame.
// It contains all actions that were triggered since the previous frame.
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
