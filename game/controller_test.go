package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/last-touch/core"
	"github.com/lixenwraith/last-touch/events"
	"github.com/lixenwraith/last-touch/input"
)

type testCapturer struct {
	captured []int
	released []int
	fail     bool
}

func (tc *testCapturer) Capture(id int) error {
	tc.captured = append(tc.captured, id)
	if tc.fail {
		return errors.New("capture unavailable")
	}
	return nil
}

func (tc *testCapturer) Release(id int) error {
	tc.released = append(tc.released, id)
	if tc.fail {
		return errors.New("release unavailable")
	}
	return nil
}

type fixture struct {
	queue    *events.Queue
	clock    *core.MockClock
	registry *Registry
	sched    *Scheduler
	ctrl     *Controller
	capturer *testCapturer
}

func newFixture(seed int64) *fixture {
	rng := rand.New(rand.NewSource(seed))
	clock := core.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	queue := events.NewQueue()
	registry := NewRegistry(NewAllocator(rng), clock)
	sched := NewScheduler(time.Hour) // never fires in tests; ticks are driven manually
	capturer := &testCapturer{}
	ctrl := NewController(registry, sched, rng, queue, clock, capturer)
	return &fixture{queue: queue, clock: clock, registry: registry, sched: sched, ctrl: ctrl, capturer: capturer}
}

func (f *fixture) pointer(pe input.PointerEvent) {
	f.ctrl.HandleEvent(events.GameEvent{Type: events.EventPointer, Payload: pe})
}

func (f *fixture) down(id, x, y int) {
	f.pointer(input.PointerEvent{ID: id, Kind: input.Down, X: x, Y: y, Device: input.Touch})
}

func (f *fixture) move(id, x, y int) {
	f.pointer(input.PointerEvent{ID: id, Kind: input.Move, X: x, Y: y, Device: input.Touch})
}

func (f *fixture) up(id int) {
	f.pointer(input.PointerEvent{ID: id, Kind: input.Up, Device: input.Touch})
}

// drain consumes all emitted events and tallies them by type.
func (f *fixture) drain() map[events.EventType][]events.GameEvent {
	out := make(map[events.EventType][]events.GameEvent)
	for {
		batch := f.queue.Consume()
		if batch == nil {
			return out
		}
		for _, ev := range batch {
			out[ev.Type] = append(out[ev.Type], ev)
		}
	}
}

func TestControllerFullGameScenario(t *testing.T) {
	f := newFixture(11)
	defer f.ctrl.Teardown()

	// 1. Three contacts join: scheduler arms, no winner.
	f.down(1, 10, 10)
	f.down(2, 20, 20)
	f.down(3, 30, 30)

	got := f.drain()
	if n := len(got[events.EventContactAdded]); n != 3 {
		t.Fatalf("Expected 3 added events, got %d", n)
	}
	if f.registry.Size() != 3 {
		t.Fatalf("Expected size 3, got %d", f.registry.Size())
	}
	if !f.sched.Active() {
		t.Fatal("Scheduler must be active at size 3")
	}
	if _, has := f.ctrl.Winner(); has {
		t.Fatal("No winner before elimination")
	}

	// 2. Manual removal to size 2: still active, still no winner.
	f.up(2)
	got = f.drain()
	if n := len(got[events.EventContactRemoved]); n != 1 {
		t.Fatalf("Expected 1 removed event, got %d", n)
	}
	if len(got[events.EventWinnerDeclared]) != 0 {
		t.Fatal("Manual removal must never declare a winner")
	}
	if !f.sched.Active() {
		t.Fatal("Scheduler must stay active at size 2")
	}

	// 3. One elimination tick: winner declared, scheduler idle.
	f.ctrl.EliminationTick()
	got = f.drain()
	if n := len(got[events.EventWinnerDeclared]); n != 1 {
		t.Fatalf("Expected exactly 1 winner event, got %d", n)
	}
	if len(got[events.EventContactRemoved]) != 0 {
		t.Error("Winner tick must not also emit a removed event")
	}
	winnerID, has := f.ctrl.Winner()
	if !has {
		t.Fatal("Winner flag not set")
	}
	if !f.registry.Contains(winnerID) {
		t.Errorf("Winner id %d not in registry", winnerID)
	}
	if f.sched.Active() {
		t.Error("Scheduler must idle once one contact remains")
	}
	snap := f.ctrl.Snapshot()
	if !snap.HasBackground {
		t.Error("Winner declaration should set the background")
	}

	// 4. Winner lifts: registry empty, state reset, final removal silent.
	f.up(winnerID)
	got = f.drain()
	if len(got[events.EventContactRemoved]) != 0 {
		t.Error("The removal that empties the registry must be silent")
	}
	if n := len(got[events.EventGameReset]); n != 1 {
		t.Errorf("Expected 1 reset event, got %d", n)
	}
	if _, has := f.ctrl.Winner(); has {
		t.Error("Winner must clear when the registry empties")
	}
	if snap := f.ctrl.Snapshot(); snap.HasBackground {
		t.Error("Background must reset when the registry empties")
	}

	// 5. A single new contact never starts elimination.
	f.down(4, 5, 5)
	if f.sched.Active() {
		t.Error("Scheduler must not arm with one contact")
	}

	// 6. Two simultaneous joins get distinct colors.
	f.down(5, 1, 1)
	f.down(6, 2, 2)
	if a, b := f.registry.Get(5).Color, f.registry.Get(6).Color; a.Hue == b.Hue {
		t.Errorf("Contacts 5 and 6 share hue %d", a.Hue)
	}
}

func TestControllerDuplicateDownIsPositionUpdate(t *testing.T) {
	f := newFixture(12)
	defer f.ctrl.Teardown()

	f.down(1, 0, 0)
	f.drain()

	f.down(1, 42, 24)
	got := f.drain()
	if len(got[events.EventContactAdded]) != 0 {
		t.Error("Duplicate down must not fire added again")
	}
	if c := f.registry.Get(1); c.X != 42 || c.Y != 24 {
		t.Errorf("Expected position (42,24), got (%d,%d)", c.X, c.Y)
	}
	if f.registry.Size() != 1 {
		t.Errorf("Duplicate down grew registry to %d", f.registry.Size())
	}
}

func TestControllerSecondaryMouseButtonIgnored(t *testing.T) {
	f := newFixture(13)
	defer f.ctrl.Teardown()

	f.pointer(input.PointerEvent{ID: 1, Kind: input.Down, Device: input.Mouse, Button: input.ButtonSecondary})
	if f.registry.Size() != 0 {
		t.Error("Secondary mouse button registered a contact")
	}

	f.pointer(input.PointerEvent{ID: 2, Kind: input.Down, Device: input.Mouse, Button: input.ButtonPrimary})
	if f.registry.Size() != 1 {
		t.Error("Primary mouse button should register a contact")
	}
}

func TestControllerMoveForUntrackedPointerIgnored(t *testing.T) {
	f := newFixture(14)
	defer f.ctrl.Teardown()

	f.move(9, 10, 10)
	if f.registry.Size() != 0 {
		t.Error("Move for unknown id created a contact")
	}

	// Move after release is equally stale.
	f.down(1, 0, 0)
	f.up(1)
	f.move(1, 99, 99)
	if f.registry.Size() != 0 {
		t.Error("Move after release resurrected the contact")
	}
}

func TestControllerCaptureFailuresNonFatal(t *testing.T) {
	f := newFixture(15)
	defer f.ctrl.Teardown()
	f.capturer.fail = true

	f.down(1, 0, 0)
	f.down(2, 1, 1)
	f.up(1)

	if f.registry.Size() != 1 {
		t.Errorf("Capture failures changed game state: size %d", f.registry.Size())
	}
	if len(f.capturer.captured) != 2 || len(f.capturer.released) != 1 {
		t.Errorf("Capture/release not attempted: %d/%d", len(f.capturer.captured), len(f.capturer.released))
	}
}

func TestControllerEliminationKeepsCadenceAboveTwo(t *testing.T) {
	f := newFixture(16)
	defer f.ctrl.Teardown()

	for id := 1; id <= 4; id++ {
		f.down(id, id, id)
	}
	f.drain()

	f.ctrl.EliminationTick()
	got := f.drain()
	if len(got[events.EventContactRemoved]) != 1 {
		t.Error("Elimination above two survivors must emit removed")
	}
	if len(got[events.EventWinnerDeclared]) != 0 {
		t.Error("No winner with three survivors")
	}
	if f.registry.Size() != 3 {
		t.Errorf("Expected 3 survivors, got %d", f.registry.Size())
	}
	if !f.sched.Active() {
		t.Error("Scheduler must re-arm while two or more remain")
	}
}

func TestControllerDefensiveTickAtLowSize(t *testing.T) {
	f := newFixture(17)
	defer f.ctrl.Teardown()

	// Tick against an empty registry: no-op, stays idle.
	f.ctrl.EliminationTick()
	if f.registry.Size() != 0 || f.sched.Active() {
		t.Error("Tick on empty registry must be a defensive no-op")
	}

	f.down(1, 0, 0)
	f.drain()
	f.ctrl.EliminationTick()
	if f.registry.Size() != 1 {
		t.Error("Tick with one contact must not eliminate")
	}
	if f.sched.Active() {
		t.Error("Defensive tick must leave the scheduler idle")
	}
}

func TestControllerNoEliminationAfterIdle(t *testing.T) {
	f := newFixture(18)
	defer f.ctrl.Teardown()

	f.down(1, 0, 0)
	f.down(2, 1, 1)
	f.up(2)

	// Size 1: even as time passes, no timer channel exists to fire.
	f.clock.Advance(time.Minute)
	if f.ctrl.TimerC() != nil {
		t.Error("Idle controller exposed a live timer channel")
	}

	// Returning to size 2 re-arms.
	f.down(3, 2, 2)
	if f.ctrl.TimerC() == nil {
		t.Error("Scheduler must re-arm at size 2")
	}
}

func TestControllerWinnerSurvivesUntilEmpty(t *testing.T) {
	f := newFixture(19)
	defer f.ctrl.Teardown()

	f.down(1, 0, 0)
	f.down(2, 1, 1)
	f.ctrl.EliminationTick()
	winnerID, has := f.ctrl.Winner()
	if !has {
		t.Fatal("Expected a winner")
	}
	f.drain()

	// A new contact joining does not clear the winner display.
	f.down(3, 2, 2)
	if id, has := f.ctrl.Winner(); !has || id != winnerID {
		t.Error("Winner cleared before the registry emptied")
	}

	f.up(3)
	f.up(winnerID)
	if _, has := f.ctrl.Winner(); has {
		t.Error("Winner must clear once the registry is empty")
	}
}

func TestControllerSnapshotIsCopy(t *testing.T) {
	f := newFixture(20)
	defer f.ctrl.Teardown()

	f.down(1, 10, 10)
	snap := f.ctrl.Snapshot()
	snap.Contacts[0].X = 999

	if f.registry.Get(1).X != 10 {
		t.Error("Snapshot mutation leaked into the registry")
	}
}
