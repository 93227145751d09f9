package game

import (
	"testing"
	"time"
)

func TestSchedulerActiveIffQualifyingSize(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		active bool
	}{
		{"Empty", 0, false},
		{"Single contact", 1, false},
		{"Two contacts", 2, true},
		{"Many contacts", 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(time.Hour)
			defer s.Stop()

			s.Reconcile(tt.size)
			if s.Active() != tt.active {
				t.Errorf("Reconcile(%d): active=%v, want %v", tt.size, s.Active(), tt.active)
			}
			if tt.active && s.C() == nil {
				t.Error("Active scheduler must expose a timer channel")
			}
			if !tt.active && s.C() != nil {
				t.Error("Idle scheduler must expose a nil channel")
			}
		})
	}
}

func TestSchedulerStopFromActive(t *testing.T) {
	s := NewScheduler(time.Hour)
	s.Reconcile(3)
	if !s.Active() {
		t.Fatal("Expected active after Reconcile(3)")
	}

	s.Reconcile(1)
	if s.Active() {
		t.Error("Size 1 must transition to Idle")
	}
	if s.C() != nil {
		t.Error("Disarmed scheduler leaked a timer channel")
	}

	// Stop is idempotent.
	s.Stop()
	s.Stop()
	if s.Active() {
		t.Error("Stop left scheduler active")
	}
}

func TestSchedulerReconcileRestartsCountdown(t *testing.T) {
	s := NewScheduler(300 * time.Millisecond)
	defer s.Stop()

	s.Reconcile(2)
	time.Sleep(150 * time.Millisecond)
	// A mutation resets the clock before the first fire.
	s.Reconcile(3)
	time.Sleep(100 * time.Millisecond)

	// Only ~100ms elapsed since the restart; the timer must not have
	// fired yet.
	select {
	case <-s.C():
		t.Error("Timer fired from the stale countdown")
	default:
	}

	// The restarted timer fires on its own schedule.
	select {
	case <-s.C():
	case <-time.After(time.Second):
		t.Error("Restarted timer never fired")
	}
}

func TestSchedulerNoFireAfterDisarm(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)

	s.Reconcile(2)
	s.Reconcile(1)

	time.Sleep(30 * time.Millisecond)
	select {
	case <-s.C():
		t.Error("Disarmed scheduler delivered a tick")
	default:
	}
}

func TestSchedulerDefaultInterval(t *testing.T) {
	s := NewScheduler(0)
	if s.Interval() != 4000*time.Millisecond {
		t.Errorf("Expected 4000ms default, got %v", s.Interval())
	}
}
