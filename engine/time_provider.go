package engine

import "time"

// TimeProvider abstracts the wall clock for the scheduler
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
