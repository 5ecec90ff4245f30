package timeout

import "time"

// TimerFunc is the user callback invoked when a timer fires. It receives the
// extra arguments that were passed to the factory, in the same order.
type TimerFunc func(args ...any)

// ScheduleFunc starts a one-shot timer that invokes fn with args once delay
// has elapsed. The returned value is an opaque handle meaningful only to the
// paired CancelFunc.
type ScheduleFunc func(fn TimerFunc, delay time.Duration, args ...any) any

// CancelFunc stops the pending timer identified by handle, if it can.
type CancelFunc func(handle any)

// TimerOverrides supplies replacement scheduling primitives for a timer.
// Either half may be nil; a nil half falls back to the platform default, so
// the zero value behaves exactly like not overriding at all.
type TimerOverrides struct {
	Schedule ScheduleFunc
	Cancel   CancelFunc
}

// resolve normalizes ov into an always-callable schedule/cancel pair.
// Normalization happens once, at handle construction, never per call.
func (ov TimerOverrides) resolve(c Clock) (ScheduleFunc, CancelFunc) {
	schedule := ov.Schedule
	if schedule == nil {
		schedule = DefaultSchedule(c)
	}

	cancel := ov.Cancel
	if cancel == nil {
		cancel = DefaultCancel()
	}

	return schedule, cancel
}
