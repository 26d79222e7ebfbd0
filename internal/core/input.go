package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow - hop one lane toward the goal
	ActionDown         // S, J, Down arrow - hop one lane back
	ActionLeft         // A, H, Left arrow - hop one column left
	ActionRight        // D, L, Right arrow - hop one column right

	ActionConfirm // Enter - confirm selection in menus
	ActionBack    // B, Escape - go back
	ActionRestart // R - rebuild the board and zero the scoreboard
	ActionQuit    // Q, Ctrl+C - exit game/session
	ActionPause   // P - pause/unpause

	// Settings commands. Each applies the grid clamp rules; a change that
	// actually lands triggers a full board rebuild before the next tick.
	ActionMoreLanes     // ] - add a traffic lane
	ActionFewerLanes    // [ - remove a traffic lane
	ActionMoreCols      // } - widen the grid by one column
	ActionFewerCols     // { - narrow the grid by one column
	ActionMoreVehicles  // > - add a vehicle
	ActionFewerVehicles // < - remove a vehicle
	ActionHarder        // + - raise difficulty
	ActionEasier        // - - lower difficulty
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
	case ActionMoreLanes:
		return "MoreLanes"
	case ActionFewerLanes:
		return "FewerLanes"
	case ActionMoreCols:
		return "MoreCols"
	case ActionFewerCols:
		return "FewerCols"
	case ActionMoreVehicles:
		return "MoreVehicles"
	case ActionFewerVehicles:
		return "FewerVehicles"
	case ActionHarder:
		return "Harder"
	case ActionEasier:
		return "Easier"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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
