package shared

import "time"

// Clock abstracts the time source so task deadlines and discovery
// timestamps are controllable in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time
type RealClock struct{}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time in UTC
func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a manually advanced clock for tests
type MockClock struct {
	now time.Time
}

// NewMockClock creates a MockClock starting at the given time.
// A zero start time means "now".
func NewMockClock(startTime time.Time) *MockClock {
	if startTime.IsZero() {
		startTime = time.Now()
	}
	return &MockClock{now: startTime}
}

// Now returns the mock's current time
func (m *MockClock) Now() time.Time {
	return m.now
}

// Advance moves the mock clock forward by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
