package core

import (
	"sync"
	"time"
)

// Clock provides the current time. Game state records timestamps
// through this interface so tests can control them.
type Clock interface {
	Now() time.Time
}

// MonotonicClock is the real system clock with monotonic readings.
type MonotonicClock struct{}

// NewMonotonicClock creates a new monotonic clock.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading.
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}

// MockClock provides a controllable time source for testing.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockClock creates a new mock clock with the given start time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{currentTime: startTime}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock.
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
