package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/last-touch/events"
)

// Adapter polls the terminal event stream on its own goroutine and
// pushes translated events into the game queue. The game loop is the
// only consumer; ordering is the terminal delivery order.
type Adapter struct {
	screen  tcell.Screen
	machine *Machine
	queue   *events.Queue
	stop    chan struct{}
}

// NewAdapter creates an input adapter for the given screen and queue.
func NewAdapter(screen tcell.Screen, queue *events.Queue) *Adapter {
	w, h := screen.Size()
	return &Adapter{
		screen:  screen,
		machine: NewMachine(w, h),
		queue:   queue,
		stop:    make(chan struct{}),
	}
}

// Start launches the poll goroutine.
func (a *Adapter) Start() {
	go a.pollLoop()
}

// Stop interrupts the poll goroutine. Safe to call once.
func (a *Adapter) Stop() {
	close(a.stop)
	// PostEvent unblocks PollEvent so the goroutine can observe stop.
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Capture pins the input stream for a contact id to this adapter.
// Terminal input is already exclusively attributed, so this is a no-op
// that always succeeds; it exists to satisfy the capture contract of
// the controller.
func (a *Adapter) Capture(id int) error { return nil }

// Release releases a captured stream. Best-effort, never fails.
func (a *Adapter) Release(id int) error { return nil }

func (a *Adapter) pollLoop() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case <-a.stop:
			return
		default:
		}

		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}
		for _, out := range a.machine.Translate(ev) {
			a.queue.Push(out)
		}
	}
}
