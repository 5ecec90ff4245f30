package timeout

import "time"

// Clock defines the minimal interface required to create and control timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is the opaque handle a Clock hands back for a scheduled callback.
// Only the cancel half of the scheduling pair ever looks at it.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return &realTimer{t: time.AfterFunc(d, fn)}
}

type realTimer struct {
	t *time.Timer
}

func (rt *realTimer) Stop() bool {
	return rt.t.Stop()
}

// DefaultSchedule returns the schedule primitive used whenever an override
// does not supply one, built on the given clock.
func DefaultSchedule(c Clock) ScheduleFunc {
	return func(fn TimerFunc, delay time.Duration, args ...any) any {
		return c.AfterFunc(delay, func() {
			fn(args...)
		})
	}
}

// DefaultCancel returns the cancel primitive paired with DefaultSchedule.
// Handles produced by a foreign schedule primitive are ignored.
func DefaultCancel() CancelFunc {
	return func(handle any) {
		if t, ok := handle.(Timer); ok {
			t.Stop()
		}
	}
}
