package timer

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/showdown/internal/common/timer Scheduler

// Scheduler arranges a single future invocation of a callback. The
// engine uses it for readiness and per-turn deadlines, so the contract
// matters: the callback runs at most once, on its own goroutine, and a
// successful Cancel before firing prevents it entirely.
type Scheduler interface {
	// Schedule invokes fn once after delay
	Schedule(delay time.Duration, fn func()) Handle
}

// Handle identifies a scheduled callback so it can be cancelled
type Handle interface {
	// Cancel prevents a not-yet-fired callback from firing. It reports
	// whether the callback was stopped before running; cancelling a
	// fired or already-cancelled handle is a no-op returning false.
	Cancel() bool
}

// DefaultScheduler implements Scheduler using the runtime timer heap
type DefaultScheduler struct{}

// New creates a new scheduler
func New() *DefaultScheduler {
	return &DefaultScheduler{}
}

// Schedule invokes fn once after delay
func (s *DefaultScheduler) Schedule(delay time.Duration, fn func()) Handle {
	return &handle{timer: time.AfterFunc(delay, fn)}
}

type handle struct {
	timer *time.Timer
}

func (h *handle) Cancel() bool {
	return h.timer.Stop()
}
