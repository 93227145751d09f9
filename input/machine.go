package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/last-touch/events"
)

// buttonSlot maps a tcell mouse button to a device presented on the
// pointer boundary. A terminal has one physical pointer; presenting
// each button as its own contact lets a mouse exercise multi-contact
// play.
var buttonSlots = []struct {
	mask   tcell.ButtonMask
	device Device
	button Button
}{
	{tcell.Button1, Mouse, ButtonPrimary},
	{tcell.Button2, Touch, ButtonNone},
	{tcell.Button3, Pen, ButtonNone},
}

// Machine translates raw tcell events into pointer and control events.
// It owns contact id allocation: ids increase monotonically and are
// never reused while a contact is live.
//
// Pure state machine, no screen access; the Adapter feeds it from the
// poll goroutine.
type Machine struct {
	nextID int

	held    [3]int // contact id per button slot, 0 = not held
	mouseX  int
	mouseY  int
	havePos bool

	digits map[rune]int // synthetic touch contacts toggled by digit keys

	width, height int
}

// NewMachine creates a translation machine for a surface of the given size.
func NewMachine(width, height int) *Machine {
	return &Machine{
		nextID: 1,
		digits: make(map[rune]int),
		width:  width,
		height: height,
	}
}

// Translate converts one tcell event into zero or more game events.
func (m *Machine) Translate(ev tcell.Event) []events.GameEvent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return m.translateMouse(ev)
	case *tcell.EventKey:
		return m.translateKey(ev)
	case *tcell.EventResize:
		m.width, m.height = ev.Size()
		return []events.GameEvent{{Type: events.EventResize, Timestamp: time.Now()}}
	}
	return nil
}

func (m *Machine) translateMouse(ev *tcell.EventMouse) []events.GameEvent {
	x, y := ev.Position()
	buttons := ev.Buttons()

	moved := !m.havePos || x != m.mouseX || y != m.mouseY
	m.mouseX, m.mouseY = x, y
	m.havePos = true

	var out []events.GameEvent
	for slot, def := range buttonSlots {
		pressed := buttons&def.mask != 0
		id := m.held[slot]

		switch {
		case pressed && id == 0:
			id = m.allocID()
			m.held[slot] = id
			out = append(out, pointerEvent(PointerEvent{
				ID: id, Kind: Down, X: x, Y: y, Device: def.device, Button: def.button,
			}))
		case pressed && moved:
			out = append(out, pointerEvent(PointerEvent{
				ID: id, Kind: Move, X: x, Y: y, Device: def.device, Button: def.button,
			}))
		case !pressed && id != 0:
			m.held[slot] = 0
			out = append(out, pointerEvent(PointerEvent{
				ID: id, Kind: Up, X: x, Y: y, Device: def.device, Button: def.button,
			}))
		}
	}
	return out
}

func (m *Machine) translateKey(ev *tcell.EventKey) []events.GameEvent {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		out := m.cancelAll()
		return append(out, events.GameEvent{Type: events.EventQuit, Timestamp: time.Now()})
	}

	if ev.Key() != tcell.KeyRune {
		return nil
	}

	r := ev.Rune()
	switch {
	case r == 'm':
		return []events.GameEvent{{Type: events.EventMuteToggle, Timestamp: time.Now()}}

	case r >= '0' && r <= '9':
		// Digit keys toggle synthetic touch contacts so a single
		// physical pointer can stage a full game.
		if id, live := m.digits[r]; live {
			delete(m.digits, r)
			x, y := m.digitPosition(r)
			return []events.GameEvent{pointerEvent(PointerEvent{
				ID: id, Kind: Up, X: x, Y: y, Device: Touch,
			})}
		}
		id := m.allocID()
		m.digits[r] = id
		x, y := m.digitPosition(r)
		return []events.GameEvent{pointerEvent(PointerEvent{
			ID: id, Kind: Down, X: x, Y: y, Device: Touch,
		})}
	}
	return nil
}

// digitPosition spreads synthetic contacts across the surface midline.
func (m *Machine) digitPosition(r rune) (int, int) {
	d := int(r - '0')
	x := (m.width / 11) * (d + 1)
	y := m.height / 2
	if m.havePos {
		x, y = m.mouseX+(d-5)*3, m.mouseY
	}
	return x, y
}

// cancelAll emits Cancel for every live contact this machine created.
func (m *Machine) cancelAll() []events.GameEvent {
	var out []events.GameEvent
	for slot, def := range buttonSlots {
		if id := m.held[slot]; id != 0 {
			m.held[slot] = 0
			out = append(out, pointerEvent(PointerEvent{
				ID: id, Kind: Cancel, X: m.mouseX, Y: m.mouseY, Device: def.device, Button: def.button,
			}))
		}
	}
	for r, id := range m.digits {
		delete(m.digits, r)
		out = append(out, pointerEvent(PointerEvent{
			ID: id, Kind: Cancel, X: m.mouseX, Y: m.mouseY, Device: Touch,
		}))
	}
	return out
}

func (m *Machine) allocID() int {
	id := m.nextID
	m.nextID++
	return id
}

func pointerEvent(pe PointerEvent) events.GameEvent {
	return events.GameEvent{
		Type:      events.EventPointer,
		Payload:   pe,
		Timestamp: time.Now(),
	}
}
