package core

// Action represents a player intent, abstracted from physical key presses.
// The engine works with these high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow - shift piece one column left
	ActionMoveRight        // Right arrow - shift piece one column right
	ActionSoftDrop         // Down arrow - shift piece one row down
	ActionRotate           // Up arrow - rotate piece clockwise
	ActionQuit             // Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputQueue buffers actions between simulation ticks.
// Keys can arrive faster than the tick rate; each tick consumes at most one
// action, in arrival order, the same way a terminal key buffer is drained one
// getch at a time.
type InputQueue struct {
	pending []Action
}

// NewInputQueue creates an empty input queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends an action. ActionNone is not queued.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Poll removes and returns the oldest pending action.
// Returns ActionNone immediately when nothing is pending.
func (q *InputQueue) Poll() Action {
	if len(q.pending) == 0 {
		return ActionNone
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Clear drops all pending actions.
func (q *InputQueue) Clear() {
	q.pending = q.pending[:0]
}
