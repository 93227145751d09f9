package game

import (
	"time"

	"github.com/lixenwraith/last-touch/constants"
)

// Scheduler is the elimination timer state machine. Two states: Idle
// (no timer) and Active (one armed timer). It never fires by itself;
// the game loop selects on C() and calls back into the controller, so
// every mutation stays on the loop goroutine.
type Scheduler struct {
	interval time.Duration
	timer    *time.Timer
	active   bool
}

// NewScheduler creates an idle scheduler with the given tick interval.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = constants.EliminationInterval
	}
	return &Scheduler{interval: interval}
}

// Reconcile derives the desired state from the registry size and
// applies it. Any armed timer is disarmed first, so a qualifying size
// always restarts the countdown from zero: adding or removing a
// contact resets the elimination clock.
func (s *Scheduler) Reconcile(size int) {
	s.disarm()
	if size >= constants.MinContactsForElimination {
		s.timer = time.NewTimer(s.interval)
		s.active = true
	}
}

// Stop forces Idle. Called on teardown and defensively from the tick
// path; mandatory whenever the registry drops to one contact or fewer.
func (s *Scheduler) Stop() {
	s.disarm()
}

// Active reports whether an elimination timer is armed.
func (s *Scheduler) Active() bool {
	return s.active
}

// C returns the armed timer's channel, or nil when Idle. A nil channel
// blocks forever in select, which is exactly the idle behavior.
func (s *Scheduler) C() <-chan time.Time {
	if !s.active || s.timer == nil {
		return nil
	}
	return s.timer.C
}

// Interval returns the elimination cadence.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// disarm stops and drains the timer so a pending fire from a dead
// generation can never be read.
func (s *Scheduler) disarm() {
	if s.timer != nil {
		if !s.timer.Stop() {
			select {
			case <-s.timer.C:
			default:
			}
		}
		s.timer = nil
	}
	s.active = false
}
