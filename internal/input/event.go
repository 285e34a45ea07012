package input

// EventKind identifies a raw device event.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	MouseDown
	MouseUp
	MouseMove
	ContextMenu
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// DragButton is the button that steers the orbit camera while held.
const DragButton = ButtonRight

// Event is one raw device event posted by the platform adapter.
// Key is set for key events, Button for mouse button and context-menu events, DX/DY for moves.
type Event struct {
	Kind   EventKind
	Key    string
	Button MouseButton
	DX, DY float32
}

// Mailbox hands events from the platform adapter (single writer) to the controller
// (single reader). The adapter posts between ticks; the controller drains once per tick.
type Mailbox struct {
	pending []Event
}

// Post queues ev for the next Sample.
func (m *Mailbox) Post(ev Event) {
	m.pending = append(m.pending, ev)
}

// Drain returns the queued events in arrival order and empties the mailbox.
func (m *Mailbox) Drain() []Event {
	out := m.pending
	m.pending = nil
	return out
}

// Len returns the number of queued events.
func (m *Mailbox) Len() int {
	return len(m.pending)
}
