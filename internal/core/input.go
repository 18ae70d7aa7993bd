package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionRestart        // R key or restart trigger
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement keys.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// EventKind classifies a discrete input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventRestart
)

// Event is a single input delivery from the platform. Pointer events carry
// a position already mapped into canvas coordinates.
type Event struct {
	Kind   EventKind
	Action Action
	Point  Vec2
}

// KeyDown returns a key press event for the action.
func KeyDown(a Action) Event {
	return Event{Kind: EventKeyDown, Action: a}
}

// KeyUp returns a key release event for the action.
func KeyUp(a Action) Event {
	return Event{Kind: EventKeyUp, Action: a}
}

// PointerDown returns a touch/press event at a canvas point.
func PointerDown(p Vec2) Event {
	return Event{Kind: EventPointerDown, Point: p}
}

// PointerMove returns a drag event at a canvas point.
func PointerMove(p Vec2) Event {
	return Event{Kind: EventPointerMove, Point: p}
}

// PointerUp returns a touch-end event.
func PointerUp() Event {
	return Event{Kind: EventPointerUp}
}

// Restart returns an external restart trigger (e.g. a button).
func Restart() Event {
	return Event{Kind: EventRestart, Action: ActionRestart}
}
