package core

// Action is a semantic input, abstracted from physical keys, so the game
// works the same from a local terminal, SSH or a test.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // k, Up arrow - move cursor up
	ActionDown           // j, Down arrow - move cursor down
	ActionLeft           // h, Left arrow - move cursor left
	ActionRight          // l, Right arrow - move cursor right
	ActionReveal         // Space, Enter - open the cell under the cursor
	ActionFlag           // f - toggle a flag under the cursor
	ActionRestart        // r - new game with the same settings
	ActionPause          // p - hide the board
	ActionConfirm        // Enter - confirm a menu selection
	ActionBack           // Esc, b - back to the preset menu
	ActionQuit           // q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionReveal:  "Reveal",
	ActionFlag:    "Flag",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one update.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// FrameOf creates a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
