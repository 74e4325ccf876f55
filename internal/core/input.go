package core

import "time"

// Key is one of the few physical keys games react to. Anything else the
// platform receives is dropped before it reaches a game.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace

	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	default:
		return "None"
	}
}

// Button identifies which pointer button was pressed.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// EventKind tells apart the input events a surface can deliver.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerDown
	EventPointerMove
	EventPointerUp
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	default:
		return "unknown"
	}
}

// InputEvent is a single key or pointer event. Pointer positions are in
// world units relative to the play surface.
type InputEvent struct {
	Kind   EventKind
	Key    Key
	Pos    Vec
	Button Button
}

// IsKey reports whether the event is a key press or release.
func (e InputEvent) IsKey() bool {
	return e.Kind == EventKeyDown || e.Kind == EventKeyUp
}

// KeyPress builds a key press event.
func KeyPress(k Key) InputEvent {
	return InputEvent{Kind: EventKeyDown, Key: k}
}

// KeyRelease builds a key release event.
func KeyRelease(k Key) InputEvent {
	return InputEvent{Kind: EventKeyUp, Key: k}
}

// PointerDown builds a pointer press event at world position p.
func PointerDown(p Vec, b Button) InputEvent {
	return InputEvent{Kind: EventPointerDown, Pos: p, Button: b}
}

// PointerMove builds a pointer motion event at world position p.
func PointerMove(p Vec) InputEvent {
	return InputEvent{Kind: EventPointerMove, Pos: p}
}

// PointerUp builds a pointer release event at world position p.
func PointerUp(p Vec, b Button) InputEvent {
	return InputEvent{Kind: EventPointerUp, Pos: p, Button: b}
}

// InputFrame is what a game sees during one tick: the held keys and the
// pointer as sampled right before the step, plus the time since the
// previous tick.
type InputFrame struct {
	held       [keyCount]bool
	Pointer    Vec
	HasPointer bool
	Dt         time.Duration
}

// Held reports whether k was held when the frame was sampled.
func (f InputFrame) Held(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return f.held[k]
}

// SetHeld marks k as held. Used by the sampler and by tests.
func (f *InputFrame) SetHeld(k Key, held bool) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	f.held[k] = held
}

// WithPointer returns a copy of the frame carrying pointer position p.
func (f InputFrame) WithPointer(p Vec) InputFrame {
	f.Pointer = p
	f.HasPointer = true
	return f
}

// HeldFrame builds an InputFrame with the given keys held, handy in tests.
func HeldFrame(dt time.Duration, keys ...Key) InputFrame {
	var f InputFrame
	f.Dt = dt
	for _, k := range keys {
		f.SetHeld(k, true)
	}
	return f
}
