package core

// PlayerID identifies one of the two seats at the keyboard.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// String returns the short HUD label of the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Other returns the opposing player.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota

	// Steering. Held every frame the key repeats.
	ActionLeft
	ActionRight
	ActionForward
	ActionBackward

	// Discrete per-player events, applied in arrival order.
	ActionFire
	ActionRotateLeft
	ActionRotateRight
	ActionExplode

	// Session actions, not tied to a craft.
	ActionSave
	ActionLoad
	ActionPause
	ActionRestart
	ActionConfirm
	ActionBack
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionForward:     "Forward",
	ActionBackward:    "Backward",
	ActionFire:        "Fire",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionExplode:     "Explode",
	ActionSave:        "Save",
	ActionLoad:        "Load",
	ActionPause:       "Pause",
	ActionRestart:     "Restart",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsSteering reports whether the action is one of the four movement directions.
func (a Action) IsSteering() bool {
	return a >= ActionLeft && a <= ActionBackward
}

// InputFrame represents the input state for a single player during one simulation tick.
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

// PlayerAction is one discrete input event with the seat it came from.
type PlayerAction struct {
	Player PlayerID
	Action Action
}

// MultiInputFrame contains input from both players for a single tick.
// ByPlayer answers "was this held"; Events keeps discrete presses in the
// order the terminal delivered them.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
	Events   []PlayerAction
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// Press records an action for a player. Steering actions only mark the
// player's frame; everything else is also queued as an ordered event.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	if a == ActionNone {
		return
	}
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	frame := m.ByPlayer[id]
	frame.Set(a)
	m.ByPlayer[id] = frame
	if !a.IsSteering() {
		m.Events = append(m.Events, PlayerAction{Player: id, Action: a})
	}
}

// Has reports whether any player triggered the action this frame.
func (m MultiInputFrame) Has(a Action) bool {
	for _, frame := range m.ByPlayer {
		if frame.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
	m.Events = m.Events[:0]
}
