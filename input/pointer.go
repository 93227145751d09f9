package input

// Kind is the phase of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Cancel
)

// Device is the kind of pointer that produced an event.
type Device int

const (
	Mouse Device = iota
	Touch
	Pen
)

// Button identifies a mouse button. Only the primary button registers
// a mouse contact; touch and pen contacts carry ButtonNone.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is one event on the input boundary. IDs are opaque
// integers scoped to the lifetime of one physical contact; the adapter
// never reuses an id while its contact is active.
type PointerEvent struct {
	ID     int
	Kind   Kind
	X, Y   int
	Device Device
	Button Button
}

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}
