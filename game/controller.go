package game

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/last-touch/core"
	"github.com/lixenwraith/last-touch/events"
	"github.com/lixenwraith/last-touch/input"
)

// Capturer pins the host input stream for a contact id so later events
// for the same physical contact stay attributed to it. Both calls are
// best-effort; errors are ignored.
type Capturer interface {
	Capture(id int) error
	Release(id int) error
}

// Snapshot is the render view of the game: the ordered contact list,
// the optional winner, and the background. Copies only, no live state.
type Snapshot struct {
	Contacts   []Contact
	WinnerID   int
	HasWinner  bool
	Background core.Color
	// HasBackground marks a winner-colored background; rendering falls
	// back to the default surface color otherwise.
	HasBackground bool
}

// Controller binds pointer input to the registry, owns winner and
// background state, and keeps the elimination scheduler reconciled
// with the registry size. It runs entirely on the game loop goroutine.
type Controller struct {
	registry *Registry
	sched    *Scheduler
	rng      *rand.Rand
	queue    *events.Queue
	clock    core.Clock
	capturer Capturer // may be nil

	winnerID      int
	hasWinner     bool
	background    core.Color
	hasBackground bool
}

// NewController wires the controller. rng drives the uniform
// elimination draw; tests inject a seeded source.
func NewController(registry *Registry, sched *Scheduler, rng *rand.Rand, queue *events.Queue, clock core.Clock, capturer Capturer) *Controller {
	return &Controller{
		registry: registry,
		sched:    sched,
		rng:      rng,
		queue:    queue,
		clock:    clock,
		capturer: capturer,
	}
}

// HandleEvent implements events.Handler for raw pointer events.
func (c *Controller) HandleEvent(ev events.GameEvent) {
	pe, ok := ev.Payload.(input.PointerEvent)
	if !ok {
		return
	}

	switch pe.Kind {
	case input.Down:
		c.handleDown(pe)
	case input.Move:
		c.registry.UpdatePosition(pe.ID, pe.X, pe.Y)
	case input.Up, input.Cancel:
		c.handleUp(pe)
	}
}

// EventTypes implements events.Handler.
func (c *Controller) EventTypes() []events.EventType {
	return []events.EventType{events.EventPointer}
}

func (c *Controller) handleDown(pe input.PointerEvent) {
	// Secondary mouse buttons never register a contact; touch and pen
	// always do.
	if pe.Device == input.Mouse && pe.Button != input.ButtonPrimary {
		return
	}

	if c.capturer != nil {
		_ = c.capturer.Capture(pe.ID)
	}

	if !c.registry.Upsert(pe.ID, pe.X, pe.Y) {
		// Duplicate down for a live id: position updated, no signal,
		// no size change, timer untouched.
		return
	}

	contact := c.registry.Get(pe.ID)
	c.emit(events.EventContactAdded, &events.ContactPayload{
		ID:        contact.ID,
		Color:     contact.Color,
		Survivors: c.registry.Size(),
	})
	c.sched.Reconcile(c.registry.Size())
}

func (c *Controller) handleUp(pe input.PointerEvent) {
	if c.capturer != nil {
		_ = c.capturer.Release(pe.ID)
	}

	contact := c.registry.Get(pe.ID)
	removed, signal := c.registry.Remove(pe.ID)
	if !removed {
		return
	}

	if signal {
		c.emit(events.EventContactRemoved, &events.ContactPayload{
			ID:        contact.ID,
			Color:     contact.Color,
			Survivors: c.registry.Size(),
		})
	}
	c.afterRemoval()
}

// EliminationTick removes one contact uniformly at random. Called by
// the game loop when the scheduler timer fires.
func (c *Controller) EliminationTick() {
	ids := c.registry.IDs()
	if len(ids) <= 1 {
		// Should not happen: size 1 already disarms the scheduler.
		c.sched.Stop()
		return
	}

	victim := ids[c.rng.Intn(len(ids))]
	contact := c.registry.Get(victim)
	c.registry.Remove(victim)

	if c.registry.Size() == 1 {
		c.declareWinner()
	} else {
		c.emit(events.EventContactRemoved, &events.ContactPayload{
			ID:        contact.ID,
			Color:     contact.Color,
			Survivors: c.registry.Size(),
		})
	}
	c.afterRemoval()
}

// afterRemoval reconciles scheduler state and resets on empty.
func (c *Controller) afterRemoval() {
	c.sched.Reconcile(c.registry.Size())
	if c.registry.Size() == 0 {
		c.reset()
	}
}

func (c *Controller) declareWinner() {
	survivor := c.registry.Contacts()[0]
	c.winnerID = survivor.ID
	c.hasWinner = true
	c.background = survivor.Color.Scale(0.35)
	c.hasBackground = true
	c.emit(events.EventWinnerDeclared, &events.WinnerPayload{
		ID:    survivor.ID,
		Color: survivor.Color,
	})
}

// reset clears winner and transient visual state when the surface
// empties.
func (c *Controller) reset() {
	c.winnerID = 0
	c.hasWinner = false
	c.background = core.Color{}
	c.hasBackground = false
	c.emit(events.EventGameReset, nil)
}

// Teardown stops the scheduler. The registry is left as-is; the
// process is exiting.
func (c *Controller) Teardown() {
	c.sched.Stop()
}

// TimerC exposes the scheduler channel for the game loop select.
func (c *Controller) TimerC() <-chan time.Time {
	return c.sched.C()
}

// SchedulerActive reports whether elimination is armed (HUD display).
func (c *Controller) SchedulerActive() bool {
	return c.sched.Active()
}

// Winner returns the declared winner id, if any.
func (c *Controller) Winner() (int, bool) {
	return c.winnerID, c.hasWinner
}

// Snapshot returns the current render view.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Contacts:      c.registry.Contacts(),
		WinnerID:      c.winnerID,
		HasWinner:     c.hasWinner,
		Background:    c.background,
		HasBackground: c.hasBackground,
	}
}

func (c *Controller) emit(t events.EventType, payload any) {
	c.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: c.clock.Now(),
	})
}
